package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"portfolio-montecarlo/internal/model"
)

// PriceTable is the JSON shape of a price file, and also the inline price
// payload accepted by the API.
//
// Example:
//
//	{
//	  "assets": ["AAPL", "MSFT"],
//	  "dates": ["2024-01-02", "2024-01-03"],
//	  "prices": [[187.15, 372.52], [184.25, 370.60]]
//	}
type PriceTable struct {
	Assets []string    `json:"assets"`
	Dates  []string    `json:"dates"`
	Prices [][]float64 `json:"prices"`
}

// ToSeries converts the table into a validated PriceSeries.
func (t PriceTable) ToSeries() (*model.PriceSeries, error) {
	dates := make([]time.Time, len(t.Dates))
	for i, s := range t.Dates {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("bad date %q: %w", s, err)
		}
		dates[i] = d
	}
	return model.NewPriceSeries(t.Assets, dates, t.Prices)
}

func LoadPriceJSON(path string) (*model.PriceSeries, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t PriceTable
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t.ToSeries()
}

// LoadPriceFile dispatches on the file extension (.csv or .json).
func LoadPriceFile(path string) (*model.PriceSeries, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadPriceCSV(path)
	case ".json":
		return LoadPriceJSON(path)
	default:
		return nil, fmt.Errorf("unsupported price file extension %q (want .csv or .json)", filepath.Ext(path))
	}
}
