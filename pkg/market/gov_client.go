package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultEndpoint = "https://api.data.gov.in"

	// Daily mandi market prices dataset.
	DefaultResourceID = "c6e3688b-d2a7-479a-9b06-02b6a6a0a7b2"
)

// govSource queries the data.gov.in tabular resource API. Prices come back
// in Rs/quintal.
type govSource struct {
	endpoint   string
	key        string
	resourceID string
	httpc      *http.Client
}

func NewGov(endpoint, key, resourceID string) Source {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if resourceID == "" {
		resourceID = DefaultResourceID
	}
	return &govSource{
		endpoint:   endpoint,
		key:        key,
		resourceID: resourceID,
		httpc:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *govSource) Latest(ctx context.Context, commodities []string) ([]PriceRecord, error) {
	if len(commodities) == 0 {
		return s.fetch(ctx, "")
	}
	var out []PriceRecord
	for _, c := range commodities {
		recs, err := s.fetch(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

func (s *govSource) fetch(ctx context.Context, commodity string) ([]PriceRecord, error) {
	q := url.Values{
		"api-key": {s.key},
		"format":  {"json"},
		"limit":   {"50"},
	}
	if commodity != "" {
		q.Set("filters[commodity]", commodity)
	}
	u := fmt.Sprintf("%s/resource/%s?%s", strings.TrimRight(s.endpoint, "/"), s.resourceID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("data.gov.in: status %d", resp.StatusCode)
	}

	var body struct {
		Records []struct {
			State       string `json:"state"`
			Market      string `json:"market"`
			Commodity   string `json:"commodity"`
			ArrivalDate string `json:"arrival_date"`
			ModalPrice  string `json:"modal_price"`
		} `json:"records"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	recs := make([]PriceRecord, 0, len(body.Records))
	for _, r := range body.Records {
		var price float64
		fmt.Sscanf(r.ModalPrice, "%f", &price)
		recs = append(recs, PriceRecord{
			Commodity: r.Commodity,
			Market:    r.Market,
			State:     r.State,
			Unit:      "Rs/quintal",
			Price:     price,
			Date:      r.ArrivalDate,
		})
	}
	return recs, nil
}
