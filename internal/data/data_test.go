package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-montecarlo/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPriceCSV(t *testing.T) {
	path := writeFile(t, "prices.csv", `date,AAPL,MSFT
2024-01-02,187.15,372.52
2024-01-03,184.25,370.60
2024-01-04,181.91,367.94
`)
	s, err := LoadPriceCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "MSFT"}, s.Assets)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), s.Start())
	assert.InDelta(t, 372.52, s.Prices[0][1], 1e-9)
}

func TestLoadPriceCSVErrors(t *testing.T) {
	_, err := LoadPriceCSV(writeFile(t, "bad.csv", "date,AAPL\n"))
	assert.Error(t, err, "header only")

	_, err = LoadPriceCSV(writeFile(t, "bad.csv", "date,AAPL\nnot-a-date,1\n2024-01-03,2\n"))
	assert.Error(t, err, "bad date")

	_, err = LoadPriceCSV(writeFile(t, "bad.csv", "date,AAPL\n2024-01-02,x\n2024-01-03,2\n"))
	assert.Error(t, err, "bad price")

	// duplicate asset columns are rejected by series validation
	_, err = LoadPriceCSV(writeFile(t, "bad.csv", "date,AAPL,AAPL\n2024-01-02,1,1\n2024-01-03,2,2\n"))
	assert.ErrorIs(t, err, model.ErrConfiguration)
}

func TestLoadPriceJSON(t *testing.T) {
	path := writeFile(t, "prices.json", `{
  "assets": ["AAPL", "MSFT"],
  "dates": ["2024-01-02", "2024-01-03"],
  "prices": [[187.15, 372.52], [184.25, 370.60]]
}`)
	s, err := LoadPriceJSON(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, s.Assets)
	assert.Equal(t, 2, s.Len())
}

func TestLoadPriceFileDispatch(t *testing.T) {
	_, err := LoadPriceFile("prices.parquet")
	assert.Error(t, err)

	path := writeFile(t, "prices.csv", "date,AAPL\n2024-01-02,1\n2024-01-03,2\n")
	s, err := LoadPriceFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}
