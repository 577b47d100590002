package models

import "portfolio-montecarlo/internal/risk"

// SimulateResponse is the result payload for a simulation run.
type SimulateResponse struct {
	Status string       `json:"status"`
	Report *risk.Report `json:"report"`
	// Values is the simulated value matrix, present only when requested.
	Values [][]float64 `json:"values,omitempty"`
}

// ModeInfo describes one simulation mode.
type ModeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DatasetInfo describes one price file available on the server. Path is the
// file name relative to the server's data directory; the server's filesystem
// layout is never exposed.
type DatasetInfo struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Format string `json:"format"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
