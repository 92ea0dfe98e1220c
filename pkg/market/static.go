package market

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// staticSource serves the dashboard's built-in sample series, optionally
// replaced by a price workbook. It is the fallback when no market API key
// is configured.
type staticSource struct {
	records []PriceRecord
}

var sampleRecords = []PriceRecord{
	{Commodity: "Wheat", Market: "sample", State: "", Unit: "Rs/kg", Price: 95},
	{Commodity: "Rice", Market: "sample", State: "", Unit: "Rs/kg", Price: 27},
	{Commodity: "Onion", Market: "sample", State: "", Unit: "Rs/kg", Price: 45},
	{Commodity: "Tomato", Market: "sample", State: "", Unit: "Rs/kg", Price: 32},
	{Commodity: "Potato", Market: "sample", State: "", Unit: "Rs/kg", Price: 22},
}

// NewStatic loads the workbook at xlsxPath when it exists; otherwise the
// built-in sample series is used.
func NewStatic(xlsxPath string) Source {
	s := &staticSource{}
	if xlsxPath != "" {
		if recs, err := loadPriceXLSX(xlsxPath); err != nil {
			log.Printf("market: price workbook %s: %v (using built-in samples)", xlsxPath, err)
		} else if len(recs) > 0 {
			s.records = recs
		}
	}
	if len(s.records) == 0 {
		today := time.Now().Format("2006-01-02")
		for _, r := range sampleRecords {
			r.Date = today
			s.records = append(s.records, r)
		}
	}
	return s
}

func (s *staticSource) Latest(_ context.Context, commodities []string) ([]PriceRecord, error) {
	if len(commodities) == 0 {
		return s.records, nil
	}
	var out []PriceRecord
	for _, want := range commodities {
		for _, r := range s.records {
			if strings.EqualFold(r.Commodity, want) {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

// loadPriceXLSX reads the first sheet: Commodity | Market | State | Unit |
// Price | Date, with a header row. Rows without a parseable price are
// skipped.
func loadPriceXLSX(path string) ([]PriceRecord, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var recs []PriceRecord
	for i, row := range rows {
		if i == 0 || len(row) < 5 {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
		if err != nil {
			continue
		}
		rec := PriceRecord{
			Commodity: strings.TrimSpace(row[0]),
			Market:    strings.TrimSpace(row[1]),
			State:     strings.TrimSpace(row[2]),
			Unit:      strings.TrimSpace(row[3]),
			Price:     price,
		}
		if len(row) > 5 {
			rec.Date = strings.TrimSpace(row[5])
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
