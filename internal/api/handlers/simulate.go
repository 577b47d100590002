package handlers

import (
	"errors"
	"net/http"

	"portfolio-montecarlo/internal/api/models"
	"portfolio-montecarlo/internal/config"
	"portfolio-montecarlo/internal/model"
	"portfolio-montecarlo/internal/montecarlo"
	"portfolio-montecarlo/internal/risk"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation requests.
type SimulateHandler struct{}

func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	series, err := req.Prices.ToSeries()
	if err != nil {
		respondError(c, "INVALID_PRICES", err)
		return
	}

	portfolio, err := model.NewPortfolio(req.Name, series, req.Holdings)
	if err != nil {
		respondError(c, "INVALID_PORTFOLIO", err)
		return
	}

	sim := config.MergeSimulation(config.DefaultSimulation(), config.SimulationConfig{
		Mode:           req.Simulation.Mode,
		NSimulations:   req.Simulation.NSimulations,
		NSteps:         req.Simulation.NSteps,
		RiskFreeRate:   req.Simulation.RiskFreeRate,
		Alpha:          req.Simulation.Alpha,
		InitialCapital: req.Simulation.InitialCapital,
		Seed:           req.Simulation.Seed,
	})

	engine, err := montecarlo.New(sim.ToEngineConfig(), montecarlo.Mode(sim.Mode))
	if err != nil {
		respondError(c, "INVALID_CONFIG", err)
		return
	}

	result, err := engine.Run(portfolio)
	if err != nil {
		respondError(c, "SIMULATION_ERROR", err)
		return
	}

	calc, err := risk.NewCalculator(result)
	if err != nil {
		respondError(c, "RISK_ERROR", err)
		return
	}
	report, err := risk.BuildReport(calc)
	if err != nil {
		respondError(c, "RISK_ERROR", err)
		return
	}

	resp := models.SimulateResponse{
		Status: "completed",
		Report: report,
	}
	if req.Options.IncludeValues {
		resp.Values = result.Values
	}
	c.JSON(http.StatusOK, resp)
}

// respondError maps core error kinds onto stable codes and HTTP statuses.
func respondError(c *gin.Context, fallbackCode string, err error) {
	code := fallbackCode
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, model.ErrConfiguration):
		code = "INVALID_CONFIG"
	case errors.Is(err, model.ErrInsufficientData):
		code = "INSUFFICIENT_DATA"
		status = http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrDateOutOfRange):
		code = "DATE_OUT_OF_RANGE"
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
