package ai

import (
	"context"
	"errors"

	"github.com/yashcodes29/Farm-wise/entities"
)

// ErrUnavailable is returned by the disabled client when no API key is
// configured. Controllers map it to 503.
var ErrUnavailable = errors.New("AI analysis service unavailable - GROQ_API_KEY not configured")

type Client interface {
	// AnalyzeCrop returns a free-text health assessment for one observation.
	AnalyzeCrop(ctx context.Context, obs entities.CropObservation) (string, error)

	// PriceSummary returns free-text market prices for the given commodities.
	// Deprecated path: the tabular market source is authoritative.
	PriceSummary(ctx context.Context, commodities []string) (string, error)
}

type disabled struct{}

// NewDisabled stands in for the real client when GROQ_API_KEY is absent,
// so handlers never carry nil checks.
func NewDisabled() Client { return disabled{} }

func (disabled) AnalyzeCrop(context.Context, entities.CropObservation) (string, error) {
	return "", ErrUnavailable
}

func (disabled) PriceSummary(context.Context, []string) (string, error) {
	return "", ErrUnavailable
}
