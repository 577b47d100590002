package montecarlo

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteValuesCSV writes the simulated value matrix, one row per simulation.
func WriteValuesCSV(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, 0, res.Config.NSteps+1)
	header = append(header, "simulation")
	for t := 1; t <= res.Config.NSteps; t++ {
		header = append(header, "step_"+strconv.Itoa(t))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for sim, path := range res.Values {
		row := make([]string, 0, len(path)+1)
		row = append(row, strconv.Itoa(sim+1))
		for _, v := range path {
			row = append(row, fmtFloat(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
