package risk

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"portfolio-montecarlo/internal/model"
	"portfolio-montecarlo/internal/montecarlo"
)

// Calculator derives risk metrics from a simulation result. All methods are
// pure reads over the stored matrix.
type Calculator struct {
	res *montecarlo.Result
}

func NewCalculator(res *montecarlo.Result) (*Calculator, error) {
	if res == nil || len(res.Values) == 0 {
		return nil, fmt.Errorf("%w: simulation result is empty", model.ErrInsufficientData)
	}
	return &Calculator{res: res}, nil
}

// Summary describes the terminal-value distribution.
type Summary struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P05    float64 `json:"p05"`
	P25    float64 `json:"p25"`
	P50    float64 `json:"p50"`
	P75    float64 `json:"p75"`
	P95    float64 `json:"p95"`
	Sharpe float64 `json:"sharpe"`
}

// BasicStatistics summarizes the terminal-value distribution. Sharpe is the
// mean terminal return in excess of the configured risk-free rate over its
// standard deviation (0 when volatility degenerates to zero).
func (c *Calculator) BasicStatistics() Summary {
	terminal := c.res.Terminal()
	sorted := append([]float64(nil), terminal...)
	sort.Float64s(sorted)

	s := Summary{
		Mean: stat.Mean(terminal, nil),
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		P05:  percentileSorted(sorted, 0.05),
		P25:  percentileSorted(sorted, 0.25),
		P50:  percentileSorted(sorted, 0.50),
		P75:  percentileSorted(sorted, 0.75),
		P95:  percentileSorted(sorted, 0.95),
	}
	if len(terminal) > 1 {
		s.Std = stat.StdDev(terminal, nil)
	}

	returns := c.res.TerminalReturns()
	meanR := stat.Mean(returns, nil)
	stdR := 0.0
	if len(returns) > 1 {
		stdR = stat.StdDev(returns, nil)
	}
	if stdR > 0 {
		s.Sharpe = (meanR - c.res.Config.RiskFreeRate) / stdR
	}
	return s
}

// VaRCVaR holds tail-risk metrics on the terminal return distribution.
// VaR is the alpha-quantile (a negative value is a loss); CVaR is the mean
// of all outcomes at or below it, so CVaR <= VaR.
type VaRCVaR struct {
	Alpha float64 `json:"alpha"`
	VaR   float64 `json:"VaR"`
	CVaR  float64 `json:"CVaR"`
}

// VaRCVaR computes Value at Risk and Conditional Value at Risk at the given
// significance level. The quantile uses linear interpolation between order
// statistics; CVaR is sensitive to that choice at small sample counts.
func (c *Calculator) VaRCVaR(alpha float64) (VaRCVaR, error) {
	if alpha <= 0 || alpha >= 1 {
		return VaRCVaR{}, fmt.Errorf("%w: alpha must be strictly between 0 and 1, got %v", model.ErrConfiguration, alpha)
	}
	sorted := append([]float64(nil), c.res.TerminalReturns()...)
	sort.Float64s(sorted)

	v := percentileSorted(sorted, alpha)

	sum, n := 0.0, 0
	for _, r := range sorted {
		if r > v {
			break
		}
		sum += r
		n++
	}
	cv := v
	if n > 0 {
		cv = sum / float64(n)
	}
	return VaRCVaR{Alpha: alpha, VaR: v, CVaR: cv}, nil
}

// StepStatistic is the cross-sectional mean and standard deviation of the
// simulated values at one time step.
type StepStatistic struct {
	Step int     `json:"step"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// PortfolioStatistics returns per-step mean and standard deviation across
// all simulated paths.
func (c *Calculator) PortfolioStatistics() []StepStatistic {
	nSteps := c.res.Config.NSteps
	out := make([]StepStatistic, nSteps)
	col := make([]float64, len(c.res.Values))
	for t := 0; t < nSteps; t++ {
		for sim, path := range c.res.Values {
			col[sim] = path[t]
		}
		st := StepStatistic{Step: t + 1, Mean: stat.Mean(col, nil)}
		if len(col) > 1 {
			st.Std = stat.StdDev(col, nil)
		}
		out[t] = st
	}
	return out
}

// Correlations computes the pairwise Pearson correlation of per-asset
// terminal outcomes across simulations. Pairs with degenerate variance are
// reported as 0. Fails with ErrInsufficientData below 2 simulations or 2
// assets.
func (c *Calculator) Correlations() ([][]float64, error) {
	nSims := len(c.res.AssetTerminals)
	nAssets := len(c.res.Assets)
	if nSims < 2 {
		return nil, fmt.Errorf("%w: need at least 2 simulations for correlations, got %d", model.ErrInsufficientData, nSims)
	}
	if nAssets < 2 {
		return nil, fmt.Errorf("%w: need at least 2 assets for correlations, got %d", model.ErrInsufficientData, nAssets)
	}

	cols := make([][]float64, nAssets)
	for j := range cols {
		col := make([]float64, nSims)
		for sim := range col {
			col[sim] = c.res.AssetTerminals[sim][j]
		}
		cols[j] = col
	}

	m := make([][]float64, nAssets)
	for i := range m {
		m[i] = make([]float64, nAssets)
		m[i][i] = 1
	}
	for i := 0; i < nAssets; i++ {
		for j := i + 1; j < nAssets; j++ {
			r := stat.Correlation(cols[i], cols[j], nil)
			if math.IsNaN(r) {
				r = 0
			}
			m[i][j] = r
			m[j][i] = r
		}
	}
	return m, nil
}

// DrawdownReport holds the per-path maximum drawdown distribution. Every
// drawdown is <= 0; a monotonically increasing path has drawdown exactly 0.
type DrawdownReport struct {
	PerPath []float64 `json:"per_path"`
	Max     float64   `json:"max_drawdown"`
	Mean    float64   `json:"mean_drawdown"`
	Std     float64   `json:"std_drawdown"`
}

// Drawdowns computes, for each simulated path, the maximum peak-to-trough
// decline: min over time of value / running-maximum - 1. The running maximum
// is taken over the simulated values only, so the first path value starts the
// peak and a monotonically increasing path has drawdown exactly 0.
func (c *Calculator) Drawdowns() DrawdownReport {
	perPath := make([]float64, len(c.res.Values))
	for sim, path := range c.res.Values {
		peak := path[0]
		worst := 0.0
		for _, v := range path {
			if v > peak {
				peak = v
			}
			if peak > 0 {
				if dd := v/peak - 1; dd < worst {
					worst = dd
				}
			}
		}
		perPath[sim] = worst
	}

	rep := DrawdownReport{PerPath: perPath, Max: 0}
	for _, dd := range perPath {
		if dd < rep.Max {
			rep.Max = dd
		}
	}
	rep.Mean = stat.Mean(perPath, nil)
	if len(perPath) > 1 {
		rep.Std = stat.StdDev(perPath, nil)
	}
	return rep
}

// percentileSorted interpolates linearly between order statistics of an
// ascending-sorted sample.
func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
