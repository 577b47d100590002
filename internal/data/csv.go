package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"portfolio-montecarlo/internal/model"
)

// LoadPriceCSV reads a date-indexed price table:
//
//	date,AAPL,MSFT
//	2024-01-02,187.15,372.52
//	2024-01-03,184.25,370.60
//
// The first column is a YYYY-MM-DD date; every other column is one asset.
func LoadPriceCSV(path string) (*model.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: expected a header row and at least one price row", path)
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%s: expected a date column plus at least one asset column", path)
	}
	assets := make([]string, len(header)-1)
	copy(assets, header[1:])

	dates := make([]time.Time, 0, len(records)-1)
	prices := make([][]float64, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%s: row %d has %d fields, expected %d", path, i+2, len(rec), len(header))
		}
		d, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: bad date %q: %w", path, i+2, rec[0], err)
		}
		row := make([]float64, len(assets))
		for j, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: bad price %q for %s: %w", path, i+2, field, assets[j], err)
			}
			row[j] = v
		}
		dates = append(dates, d)
		prices = append(prices, row)
	}

	return model.NewPriceSeries(assets, dates, prices)
}
