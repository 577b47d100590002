package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-montecarlo/internal/api/models"
)

func TestListDatasets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tech.csv"), []byte("date,AAPL\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crypto.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	t.Setenv("DATA_DIR", dir)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/datasets", NewDatasetHandler().ListDatasets)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/datasets", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Datasets []models.DatasetInfo `json:"datasets"`
		Count    int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Datasets, 2)
	for _, ds := range resp.Datasets {
		// paths are file names relative to the data directory, never
		// server filesystem paths
		assert.False(t, filepath.IsAbs(ds.Path), "path %q must not be absolute", ds.Path)
		assert.Equal(t, ds.Path, filepath.Base(ds.Path))
	}
}
