package montecarlo

// Result is the output of one Run. It is recomputed fresh on every run and
// is read-only for consumers; the risk calculator never mutates it.
type Result struct {
	Mode   Mode
	Config Config
	Assets []string

	// Values is the simulated portfolio value matrix: NSimulations rows,
	// NSteps columns.
	Values [][]float64

	// Weights holds the weight vector each simulation used, in asset
	// order. Drawn per simulation in combined mode, the portfolio's fixed
	// weights otherwise.
	Weights [][]float64

	// AssetTerminals holds each asset's terminal outcome per simulation:
	// the compounded price in return mode, the weighted terminal capital
	// share otherwise.
	AssetTerminals [][]float64

	// AssetValues holds per-asset price paths, populated in return mode
	// only: [simulation][step][asset].
	AssetValues [][][]float64
}

// Terminal returns the terminal-value distribution (last column of Values).
func (r *Result) Terminal() []float64 {
	out := make([]float64, len(r.Values))
	for i, path := range r.Values {
		out[i] = path[len(path)-1]
	}
	return out
}

// TerminalReturns expresses terminal values as simple returns on the initial
// capital. With a zero initial capital the terminal values themselves are
// returned, since no relative return is defined.
func (r *Result) TerminalReturns() []float64 {
	if r.Config.InitialCapital == 0 {
		return r.Terminal()
	}
	out := make([]float64, len(r.Values))
	for i, path := range r.Values {
		out[i] = path[len(path)-1]/r.Config.InitialCapital - 1
	}
	return out
}
