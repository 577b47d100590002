package montecarlo

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"portfolio-montecarlo/internal/model"
)

// Mode selects the path-generation strategy for a run. The bootstrap over
// historical returns is shared by all modes; only the accumulation of values
// per simulation differs.
type Mode string

const (
	// ModeReturn compounds each asset's bootstrapped returns onto its
	// initial price, keeping the portfolio's fixed weights.
	ModeReturn Mode = "return"
	// ModePortfolio applies the portfolio's fixed weight vector to each
	// bootstrapped multi-asset return row.
	ModePortfolio Mode = "portfolio"
	// ModeCombined additionally draws an independent random weight vector
	// per simulation, exploring allocation choices alongside market outcomes.
	ModeCombined Mode = "combined"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeReturn, ModePortfolio, ModeCombined:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: unknown simulation mode %q", model.ErrConfiguration, s)
	}
}

// Config holds the immutable parameters of a simulation run.
type Config struct {
	NSimulations   int
	NSteps         int
	RiskFreeRate   float64
	Alpha          float64
	InitialCapital float64
	// Seed fixes the random source for reproducible runs; 0 seeds from the clock.
	Seed int64
}

func (c Config) Validate() error {
	if c.NSimulations <= 0 {
		return fmt.Errorf("%w: number of simulations must be positive, got %d", model.ErrConfiguration, c.NSimulations)
	}
	if c.NSteps <= 0 {
		return fmt.Errorf("%w: number of steps must be positive, got %d", model.ErrConfiguration, c.NSteps)
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf("%w: alpha must be strictly between 0 and 1, got %v", model.ErrConfiguration, c.Alpha)
	}
	if c.InitialCapital < 0 {
		return fmt.Errorf("%w: initial capital must be >= 0, got %v", model.ErrConfiguration, c.InitialCapital)
	}
	if c.RiskFreeRate < -1 {
		return fmt.Errorf("%w: risk-free rate cannot be below -100%%, got %v", model.ErrConfiguration, c.RiskFreeRate)
	}
	return nil
}

// Engine drives Monte Carlo simulations over a portfolio's historical
// returns. Engines carry only the immutable configuration; every Run is
// independent and safe to call concurrently.
type Engine struct {
	cfg  Config
	mode Mode
}

func New(cfg Config, mode Mode) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, mode: mode}, nil
}

func (e *Engine) Config() Config { return e.cfg }
func (e *Engine) Mode() Mode     { return e.mode }

// Run executes the configured number of simulations over the portfolio's
// historical returns and returns the simulated value matrix.
func (e *Engine) Run(p *model.Portfolio) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: portfolio is nil", model.ErrConfiguration)
	}
	hist, err := p.Returns()
	if err != nil {
		return nil, err
	}
	if len(hist) == 0 {
		return nil, fmt.Errorf("%w: historical return table is empty", model.ErrInsufficientData)
	}

	fixed, err := p.WeightVector()
	if err != nil {
		return nil, err
	}
	initial := p.Series.InitialPrices()
	nAssets := len(p.Series.Assets)

	rng := rand.New(rand.NewSource(e.seed()))

	res := &Result{
		Mode:           e.mode,
		Config:         e.cfg,
		Assets:         append([]string(nil), p.Series.Assets...),
		Values:         make([][]float64, e.cfg.NSimulations),
		Weights:        make([][]float64, e.cfg.NSimulations),
		AssetTerminals: make([][]float64, e.cfg.NSimulations),
	}
	if e.mode == ModeReturn {
		res.AssetValues = make([][][]float64, e.cfg.NSimulations)
	}

	for sim := 0; sim < e.cfg.NSimulations; sim++ {
		weights := fixed
		if e.mode == ModeCombined {
			weights = generateWeights(rng, nAssets)
		}
		returns := e.generateSimulatedReturns(rng, hist)

		values := make([]float64, e.cfg.NSteps)
		growth := make([]float64, nAssets)
		for j := range growth {
			growth[j] = 1
		}
		var assetPath [][]float64
		if e.mode == ModeReturn {
			assetPath = make([][]float64, e.cfg.NSteps)
		}

		value := e.cfg.InitialCapital
		for t, row := range returns {
			portfolioReturn := 0.0
			for j, r := range row {
				growth[j] *= 1 + r
				portfolioReturn += weights[j] * r
			}
			value *= 1 + portfolioReturn
			values[t] = value
			if assetPath != nil {
				prices := make([]float64, nAssets)
				for j := range prices {
					prices[j] = initial[j] * growth[j]
				}
				assetPath[t] = prices
			}
		}

		terminals := make([]float64, nAssets)
		for j := range terminals {
			if e.mode == ModeReturn {
				terminals[j] = initial[j] * growth[j]
			} else {
				terminals[j] = e.cfg.InitialCapital * weights[j] * growth[j]
			}
		}

		res.Values[sim] = values
		res.Weights[sim] = append([]float64(nil), weights...)
		res.AssetTerminals[sim] = terminals
		if assetPath != nil {
			res.AssetValues[sim] = assetPath
		}
	}

	return res, nil
}

// generateSimulatedReturns bootstraps one path: NSteps rows drawn uniformly
// with replacement from the historical table. Drawing whole rows preserves
// cross-asset correlation within a period but not across draws.
func (e *Engine) generateSimulatedReturns(rng *rand.Rand, hist [][]float64) [][]float64 {
	out := make([][]float64, e.cfg.NSteps)
	for t := range out {
		out[t] = hist[rng.Intn(len(hist))]
	}
	return out
}

// generateWeights draws a random non-negative weight vector summing to 1:
// |N(0,1)| per asset, normalized. The distribution is exchangeable across
// assets.
func generateWeights(rng *rand.Rand, n int) []float64 {
	w := make([]float64, n)
	for {
		sum := 0.0
		for i := range w {
			w[i] = math.Abs(rng.NormFloat64())
			sum += w[i]
		}
		if sum > 0 {
			for i := range w {
				w[i] /= sum
			}
			return w
		}
	}
}

func (e *Engine) seed() int64 {
	if e.cfg.Seed != 0 {
		return e.cfg.Seed
	}
	return time.Now().UnixNano()
}
