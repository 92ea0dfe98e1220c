package serviceImp

import (
	"math/rand"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/yashcodes29/Farm-wise/pkg/agro"
	"github.com/yashcodes29/Farm-wise/pkg/plan/service"
	"github.com/yashcodes29/Farm-wise/pkg/plan/types"
)

var (
	namePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`) // syntactic only; 2024-13-40 passes
)

type PlanSvc struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPlanService() service.PlanService {
	return &PlanSvc{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewPlanServiceWithSource pins the weather source for reproducible output.
func NewPlanServiceWithSource(src rand.Source) service.PlanService {
	return &PlanSvc{rng: rand.New(src)}
}

func Validate(req types.PlanRequest) error {
	if req.Crop == "" || !namePattern.MatchString(req.Crop) {
		return service.ErrInvalidInput
	}
	if req.Location == "" || !namePattern.MatchString(req.Location) {
		return service.ErrInvalidInput
	}
	if !datePattern.MatchString(req.StartDate) {
		return service.ErrInvalidInput
	}
	if len(req.Resources) == 0 {
		return service.ErrInvalidInput
	}
	return nil
}

func (s *PlanSvc) Generate(req types.PlanRequest) ([]types.PlanEntry, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	year, _ := strconv.Atoi(req.StartDate[:4])

	s.mu.Lock()
	weather := agro.YearWeather(year, s.rng)
	s.mu.Unlock()

	return BuildPlan(weather, req.Resources), nil
}

// BuildPlan assumes pre-validated input: one entry per month, one
// recommendation per requested resource in request order.
func BuildPlan(weather []agro.WeatherSample, resources []string) []types.PlanEntry {
	plan := make([]types.PlanEntry, 0, len(weather))
	for i, w := range weather {
		recs := make([]agro.Recommendation, 0, len(resources))
		for _, r := range resources {
			recs = append(recs, agro.Recommend(w, agro.ResourceKind(r)))
		}
		plan = append(plan, types.PlanEntry{
			Date:            w.Date,
			Temperature:     w.Temperature,
			Rainfall:        w.Rainfall,
			Stage:           agro.StageFor(i),
			Recommendations: recs,
		})
	}
	return plan
}
