package model

import (
	"fmt"
	"time"
)

// Portfolio is a named collection of holdings (asset -> quantity) over a
// price series. Weights and values are derived views over the series; the
// portfolio holds no mutable state of its own.
type Portfolio struct {
	Name     string
	Series   *PriceSeries
	Holdings map[string]float64
}

func NewPortfolio(name string, series *PriceSeries, holdings map[string]float64) (*Portfolio, error) {
	p := &Portfolio{Name: name, Series: series, Holdings: holdings}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Portfolio) Validate() error {
	if p.Series == nil {
		return fmt.Errorf("%w: portfolio has no price series", ErrConfiguration)
	}
	if len(p.Holdings) == 0 {
		return fmt.Errorf("%w: portfolio has no holdings", ErrConfiguration)
	}
	for asset, qty := range p.Holdings {
		if p.Series.AssetIndex(asset) < 0 {
			return fmt.Errorf("%w: holding %q not present in price series", ErrConfiguration, asset)
		}
		if qty < 0 {
			return fmt.Errorf("%w: negative quantity %v for %q", ErrConfiguration, qty, asset)
		}
	}
	return nil
}

// Weights returns asset -> share of the initial portfolio value
// (quantity * initial price over total). Fails with ErrConfiguration when the
// total initial value is zero.
func (p *Portfolio) Weights() (map[string]float64, error) {
	initial := p.Series.InitialPrices()
	total := 0.0
	values := make(map[string]float64, len(p.Holdings))
	for asset, qty := range p.Holdings {
		v := qty * initial[p.Series.AssetIndex(asset)]
		values[asset] = v
		total += v
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: total initial portfolio value is zero", ErrConfiguration)
	}
	out := make(map[string]float64, len(values))
	for asset, v := range values {
		out[asset] = v / total
	}
	return out, nil
}

// WeightVector returns the initial weights in series asset order, with zero
// entries for assets the portfolio does not hold.
func (p *Portfolio) WeightVector() ([]float64, error) {
	byAsset, err := p.Weights()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(p.Series.Assets))
	for asset, w := range byAsset {
		out[p.Series.AssetIndex(asset)] = w
	}
	return out, nil
}

// TotalValue sums quantity * price at the given date.
func (p *Portfolio) TotalValue(date time.Time) (float64, error) {
	row, err := p.Series.PriceRowAt(date)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for asset, qty := range p.Holdings {
		total += qty * row[p.Series.AssetIndex(asset)]
	}
	return total, nil
}

// InitialValue is the portfolio value at the first observation.
func (p *Portfolio) InitialValue() (float64, error) {
	return p.TotalValue(p.Series.Start())
}

// Returns is the historical per-period return table of the underlying series.
func (p *Portfolio) Returns() ([][]float64, error) {
	return p.Series.Returns()
}
