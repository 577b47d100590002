package montecarlo

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteValuesCSV(t *testing.T) {
	res := &Result{
		Config: Config{NSimulations: 2, NSteps: 3, Alpha: 0.05, InitialCapital: 100},
		Values: [][]float64{
			{101, 102.5, 99},
			{100, 98, 103},
		},
	}

	path := filepath.Join(t.TempDir(), "values.csv")
	require.NoError(t, WriteValuesCSV(path, res))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"simulation", "step_1", "step_2", "step_3"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "102.500000", records[1][2])
	assert.Equal(t, "2", records[2][0])
}

func TestResultTerminal(t *testing.T) {
	res := &Result{
		Config: Config{NSimulations: 2, NSteps: 2, Alpha: 0.05, InitialCapital: 100},
		Values: [][]float64{{101, 110}, {99, 90}},
	}
	assert.Equal(t, []float64{110, 90}, res.Terminal())
	assert.InDelta(t, 0.1, res.TerminalReturns()[0], 1e-12)
	assert.InDelta(t, -0.1, res.TerminalReturns()[1], 1e-12)
}

func TestResultTerminalReturnsZeroCapital(t *testing.T) {
	// No relative return exists from zero capital; terminal values stand in.
	res := &Result{
		Config: Config{NSimulations: 1, NSteps: 1, Alpha: 0.05},
		Values: [][]float64{{0}},
	}
	assert.Equal(t, []float64{0}, res.TerminalReturns())
}
