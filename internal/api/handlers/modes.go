package handlers

import (
	"net/http"

	"portfolio-montecarlo/internal/api/models"
	"portfolio-montecarlo/internal/montecarlo"

	"github.com/gin-gonic/gin"
)

// ListModes handles GET /api/v1/modes
func ListModes(c *gin.Context) {
	modes := []models.ModeInfo{
		{
			Name:        string(montecarlo.ModeReturn),
			Description: "Bootstrap asset returns, fixed portfolio weights; per-asset price paths from initial prices.",
		},
		{
			Name:        string(montecarlo.ModePortfolio),
			Description: "Bootstrap asset returns, fixed weight vector applied per period from initial capital.",
		},
		{
			Name:        string(montecarlo.ModeCombined),
			Description: "Bootstrap asset returns plus an independent random weight vector per simulation.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"modes": modes})
}
