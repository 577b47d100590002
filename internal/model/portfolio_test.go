package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries(t *testing.T) *PriceSeries {
	t.Helper()
	dates := []time.Time{
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	}
	s, err := NewPriceSeries(
		[]string{"AAA", "BBB"},
		dates,
		[][]float64{{100, 50}, {110, 49}, {99, 51}},
	)
	require.NoError(t, err)
	return s
}

func TestPriceSeriesValidate(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}

	_, err := NewPriceSeries([]string{"AAA", "AAA"}, dates, [][]float64{{1, 1}, {1, 1}})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewPriceSeries([]string{"AAA"}, dates[:1], [][]float64{{1}})
	assert.ErrorIs(t, err, ErrInsufficientData)

	// dates must be strictly increasing
	_, err = NewPriceSeries([]string{"AAA"}, []time.Time{dates[1], dates[0]}, [][]float64{{1}, {2}})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewPriceSeries([]string{"AAA"}, dates, [][]float64{{1}, {-3}})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestPriceSeriesReturns(t *testing.T) {
	s := testSeries(t)
	returns, err := s.Returns()
	require.NoError(t, err)
	require.Len(t, returns, 2)
	assert.InDelta(t, 0.10, returns[0][0], 1e-12)
	assert.InDelta(t, -0.02, returns[0][1], 1e-12)
	assert.InDelta(t, -0.10, returns[1][0], 1e-12)
}

func TestPriceRowAt(t *testing.T) {
	s := testSeries(t)

	row, err := s.PriceRowAt(s.Start())
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 50}, row)

	// a date between observations resolves to the prior row
	row, err = s.PriceRowAt(s.Start().Add(30 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []float64{110, 49}, row)

	_, err = s.PriceRowAt(s.Start().AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrDateOutOfRange)
	_, err = s.PriceRowAt(s.End().AddDate(0, 0, 1))
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}

func TestPortfolioWeights(t *testing.T) {
	s := testSeries(t)
	p, err := NewPortfolio("test", s, map[string]float64{"AAA": 1, "BBB": 2})
	require.NoError(t, err)

	weights, err := p.Weights()
	require.NoError(t, err)
	// initial values: 100*1 and 50*2, equal halves
	assert.InDelta(t, 0.5, weights["AAA"], 1e-12)
	assert.InDelta(t, 0.5, weights["BBB"], 1e-12)

	vec, err := p.WeightVector()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, vec)
}

func TestPortfolioWeightsZeroValue(t *testing.T) {
	s := testSeries(t)
	p, err := NewPortfolio("empty", s, map[string]float64{"AAA": 0, "BBB": 0})
	require.NoError(t, err)

	_, err = p.Weights()
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestPortfolioUnknownHolding(t *testing.T) {
	s := testSeries(t)
	_, err := NewPortfolio("bad", s, map[string]float64{"ZZZ": 1})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestPortfolioTotalValue(t *testing.T) {
	s := testSeries(t)
	p, err := NewPortfolio("test", s, map[string]float64{"AAA": 1, "BBB": 2})
	require.NoError(t, err)

	v, err := p.TotalValue(s.Start())
	require.NoError(t, err)
	assert.InDelta(t, 200, v, 1e-12)

	v, err = p.TotalValue(s.End())
	require.NoError(t, err)
	assert.InDelta(t, 99+2*51, v, 1e-12)

	_, err = p.TotalValue(s.End().AddDate(0, 0, 7))
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}
