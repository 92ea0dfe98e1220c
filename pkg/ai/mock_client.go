package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/yashcodes29/Farm-wise/entities"
)

type mockClient struct{}

// NewMock returns a client with canned output for local dev and tests.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) AnalyzeCrop(_ context.Context, obs entities.CropObservation) (string, error) {
	return fmt.Sprintf(
		"Health status for %s: fair. Observed %s leaves with %s spots; growth is %s on %s soil. Overall score: 72/100. (mock)",
		obs.CropName, obs.Color, obs.LeafSpots, obs.GrowthSpeed, obs.SoilCondition,
	), nil
}

func (m *mockClient) PriceSummary(_ context.Context, commodities []string) (string, error) {
	var b strings.Builder
	for _, c := range commodities {
		fmt.Fprintf(&b, "- %s: Rs 2400/quintal\n", c)
	}
	if b.Len() == 0 {
		b.WriteString("- no commodities requested\n")
	}
	return b.String(), nil
}
