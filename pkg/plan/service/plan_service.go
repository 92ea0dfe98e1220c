package service

import (
	"errors"

	"github.com/yashcodes29/Farm-wise/pkg/plan/types"
)

// ErrInvalidInput carries the original API's message verbatim; the
// dashboard shows it to the user as-is.
var ErrInvalidInput = errors.New("Invalid input. Please enter valid crop name, location, date, and resources.")

type PlanService interface {
	Generate(req types.PlanRequest) ([]types.PlanEntry, error)
}
