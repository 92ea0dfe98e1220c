package market

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("Market price service unavailable - MARKET_API_KEY not configured")

type PriceRecord struct {
	Commodity string  `json:"commodity"`
	Market    string  `json:"market"`
	State     string  `json:"state"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	Date      string  `json:"date"`
}

// Source yields the latest known prices for the requested commodities.
// An empty commodity list means "everything the source has".
type Source interface {
	Latest(ctx context.Context, commodities []string) ([]PriceRecord, error)
}
