package entities

// CropObservation is what the dashboard's health-check form submits.
type CropObservation struct {
	CropName      string `json:"cropName"`
	Color         string `json:"color"`
	LeafSpots     string `json:"leafSpots"`
	GrowthSpeed   string `json:"growthSpeed"`
	SoilCondition string `json:"soilCondition"`
}
