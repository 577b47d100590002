package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"portfolio-montecarlo/internal/api/models"

	"github.com/gin-gonic/gin"
)

// DatasetHandler lists local price files the server can describe to clients.
type DatasetHandler struct {
	dataDir string
}

func NewDatasetHandler() *DatasetHandler {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples")
		} else {
			dir = "./examples"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	log.Printf("DatasetHandler: using data directory: %s", dir)
	return &DatasetHandler{dataDir: dir}
}

// ListDatasets handles GET /api/v1/datasets
func (h *DatasetHandler) ListDatasets(c *gin.Context) {
	datasets := []models.DatasetInfo{}

	entries, err := os.ReadDir(h.dataDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATASETS_LOAD_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".csv" && ext != ".json" {
			continue
		}
		datasets = append(datasets, models.DatasetInfo{
			Name:   strings.TrimSuffix(e.Name(), ext),
			Path:   e.Name(),
			Format: strings.TrimPrefix(ext, "."),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"datasets": datasets,
		"count":    len(datasets),
	})
}
