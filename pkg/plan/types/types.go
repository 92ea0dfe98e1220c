package types

import "github.com/yashcodes29/Farm-wise/pkg/agro"

type PlanEntry struct {
	Date            string                `json:"date"`
	Temperature     float64               `json:"temperature"`
	Rainfall        float64               `json:"rainfall"`
	Stage           string                `json:"stage"`
	Recommendations []agro.Recommendation `json:"recommendations"`
}

type PlanRequest struct {
	Crop      string   `json:"crop"`
	Location  string   `json:"location"`
	StartDate string   `json:"startDate"`
	Resources []string `json:"resources"`
	FarmSize  float64  `json:"farmSize,omitempty"` // later-variant field, echoed only
}
