package models

import "portfolio-montecarlo/internal/data"

// SimulateRequest is the request body for running a simulation.
// Prices are supplied inline; the server never fetches market data.
type SimulateRequest struct {
	Prices   data.PriceTable    `json:"prices" binding:"required"`
	Holdings map[string]float64 `json:"holdings" binding:"required"`
	Name     string             `json:"name,omitempty"`

	Simulation SimulationOptions `json:"simulation,omitempty"`
	Options    SimulateOptions   `json:"options,omitempty"`
}

// SimulationOptions overrides individual simulation parameters; omitted
// fields fall back to the server defaults. A zero value counts as omitted,
// so an explicit zero alpha or zero initial capital cannot be requested
// over the API.
type SimulationOptions struct {
	Mode           string  `json:"mode,omitempty"`
	NSimulations   int     `json:"n_simulations,omitempty"`
	NSteps         int     `json:"n_steps,omitempty"`
	RiskFreeRate   float64 `json:"risk_free_rate,omitempty"`
	Alpha          float64 `json:"alpha,omitempty"`
	InitialCapital float64 `json:"initial_capital,omitempty"`
	Seed           int64   `json:"seed,omitempty"`
}

// SimulateOptions controls the response payload.
type SimulateOptions struct {
	// IncludeValues embeds the full simulated value matrix. Off by default;
	// with large runs the matrix dominates the response size.
	IncludeValues bool `json:"include_values,omitempty"`
}
