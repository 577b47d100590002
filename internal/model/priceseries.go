package model

import (
	"fmt"
	"math"
	"time"
)

// PriceSeries is a date-indexed table of per-asset prices.
// Prices has one row per date and one column per asset, in the order of
// Assets. The series is treated as immutable after construction; derived
// views (returns, weights) are recomputed from it on demand.
type PriceSeries struct {
	Assets []string
	Dates  []time.Time
	Prices [][]float64
}

func NewPriceSeries(assets []string, dates []time.Time, prices [][]float64) (*PriceSeries, error) {
	s := &PriceSeries{Assets: assets, Dates: dates, Prices: prices}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PriceSeries) Validate() error {
	if len(s.Assets) == 0 {
		return fmt.Errorf("%w: price series has no assets", ErrConfiguration)
	}
	seen := make(map[string]bool, len(s.Assets))
	for _, a := range s.Assets {
		if a == "" {
			return fmt.Errorf("%w: empty asset identifier", ErrConfiguration)
		}
		if seen[a] {
			return fmt.Errorf("%w: duplicate asset %q", ErrConfiguration, a)
		}
		seen[a] = true
	}
	if len(s.Dates) < 2 {
		return fmt.Errorf("%w: need at least 2 price observations, got %d", ErrInsufficientData, len(s.Dates))
	}
	if len(s.Prices) != len(s.Dates) {
		return fmt.Errorf("%w: %d price rows for %d dates", ErrConfiguration, len(s.Prices), len(s.Dates))
	}
	for i, d := range s.Dates {
		if i > 0 && !s.Dates[i-1].Before(d) {
			return fmt.Errorf("%w: dates must be strictly increasing (row %d)", ErrConfiguration, i)
		}
		row := s.Prices[i]
		if len(row) != len(s.Assets) {
			return fmt.Errorf("%w: row %d has %d prices for %d assets", ErrConfiguration, i, len(row), len(s.Assets))
		}
		for j, p := range row {
			if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
				return fmt.Errorf("%w: invalid price %v for %s at %s", ErrConfiguration, p, s.Assets[j], d.Format("2006-01-02"))
			}
		}
	}
	return nil
}

func (s *PriceSeries) Len() int { return len(s.Dates) }

func (s *PriceSeries) Start() time.Time { return s.Dates[0] }

func (s *PriceSeries) End() time.Time { return s.Dates[len(s.Dates)-1] }

// AssetIndex returns the column index for an asset, or -1 if not tracked.
func (s *PriceSeries) AssetIndex(asset string) int {
	for i, a := range s.Assets {
		if a == asset {
			return i
		}
	}
	return -1
}

// InitialPrices returns a copy of the first observation row.
func (s *PriceSeries) InitialPrices() []float64 {
	out := make([]float64, len(s.Assets))
	copy(out, s.Prices[0])
	return out
}

// PriceRowAt returns the price row in effect at date: the last observation at
// or before it. Dates outside [Start, End] fail with ErrDateOutOfRange.
func (s *PriceSeries) PriceRowAt(date time.Time) ([]float64, error) {
	if date.Before(s.Start()) || date.After(s.End()) {
		return nil, fmt.Errorf("%w: %s outside [%s, %s]",
			ErrDateOutOfRange,
			date.Format("2006-01-02"),
			s.Start().Format("2006-01-02"),
			s.End().Format("2006-01-02"))
	}
	idx := 0
	for i, d := range s.Dates {
		if d.After(date) {
			break
		}
		idx = i
	}
	out := make([]float64, len(s.Assets))
	copy(out, s.Prices[idx])
	return out, nil
}

// Returns derives the simple per-period return table: one row per period
// (len(Dates)-1), one column per asset, where each entry is the percentage
// change between consecutive observations.
func (s *PriceSeries) Returns() ([][]float64, error) {
	if len(s.Dates) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 price observations to derive returns", ErrInsufficientData)
	}
	out := make([][]float64, len(s.Prices)-1)
	for i := 1; i < len(s.Prices); i++ {
		row := make([]float64, len(s.Assets))
		for j := range row {
			row[j] = s.Prices[i][j]/s.Prices[i-1][j] - 1
		}
		out[i-1] = row
	}
	return out, nil
}
