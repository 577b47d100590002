package risk

import (
	"errors"

	"portfolio-montecarlo/internal/model"
)

// Report is the stable-named metric mapping handed to presentation layers.
// Field names are part of the contract; report and plot collaborators key on
// them and can be swapped without touching the core.
type Report struct {
	Mode            string          `json:"mode"`
	Assets          []string        `json:"assets"`
	BasicStatistics Summary         `json:"basic_statistics"`
	Alpha           float64         `json:"alpha"`
	VaR             float64         `json:"VaR"`
	CVaR            float64         `json:"CVaR"`
	MaxDrawdown     float64         `json:"max_drawdown"`
	MeanDrawdown    float64         `json:"mean_drawdown"`
	StdDrawdown     float64         `json:"std_drawdown"`
	Drawdowns       []float64       `json:"drawdowns"`
	StepStatistics  []StepStatistic `json:"step_statistics"`
	// CorrelationMatrix follows the order of Assets. Empty when the run has
	// fewer than 2 simulations or 2 assets.
	CorrelationMatrix [][]float64 `json:"correlation_matrix,omitempty"`
}

// BuildReport assembles the full risk report at the significance level the
// simulation was configured with.
func BuildReport(c *Calculator) (*Report, error) {
	vc, err := c.VaRCVaR(c.res.Config.Alpha)
	if err != nil {
		return nil, err
	}
	dd := c.Drawdowns()

	rep := &Report{
		Mode:            string(c.res.Mode),
		Assets:          c.res.Assets,
		BasicStatistics: c.BasicStatistics(),
		Alpha:           vc.Alpha,
		VaR:             vc.VaR,
		CVaR:            vc.CVaR,
		MaxDrawdown:     dd.Max,
		MeanDrawdown:    dd.Mean,
		StdDrawdown:     dd.Std,
		Drawdowns:       dd.PerPath,
		StepStatistics:  c.PortfolioStatistics(),
	}

	corr, err := c.Correlations()
	switch {
	case err == nil:
		rep.CorrelationMatrix = corr
	case errors.Is(err, model.ErrInsufficientData):
		// Single asset or single simulation: correlations are undefined,
		// the rest of the report still stands.
	default:
		return nil, err
	}
	return rep, nil
}
