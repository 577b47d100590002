package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"portfolio-montecarlo/internal/config"
	"portfolio-montecarlo/internal/data"
	"portfolio-montecarlo/internal/model"
	"portfolio-montecarlo/internal/montecarlo"
	"portfolio-montecarlo/internal/risk"

	"gonum.org/v1/gonum/stat"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "inspect":
		cmdInspect(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml [--data prices.csv] [--out results/values.csv]")
	fmt.Println("  cli inspect --config examples/config.yaml [--data prices.csv]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate runs the configured Monte Carlo mode and prints the risk report")
	fmt.Println("  - inspect prints portfolio weights and historical return statistics")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	dataPath := fs.String("data", "", "Price file (CSV or JSON); overrides config data_file")
	outPath := fs.String("out", "", "Optional CSV path for the simulated value matrix")
	_ = fs.Parse(args)

	cfg, portfolio := loadPortfolio(*cfgPath, *dataPath)

	engine, err := montecarlo.New(cfg.Simulation.ToEngineConfig(), montecarlo.Mode(cfg.Simulation.Mode))
	if err != nil {
		panic(err)
	}
	result, err := engine.Run(portfolio)
	if err != nil {
		panic(err)
	}

	calc, err := risk.NewCalculator(result)
	if err != nil {
		panic(err)
	}
	report, err := risk.BuildReport(calc)
	if err != nil {
		panic(err)
	}

	printReport(report)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := montecarlo.WriteValuesCSV(*outPath, result); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote %d paths to %s\n", len(result.Values), *outPath)
	}
}

func cmdInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	dataPath := fs.String("data", "", "Price file (CSV or JSON); overrides config data_file")
	_ = fs.Parse(args)

	_, portfolio := loadPortfolio(*cfgPath, *dataPath)

	weights, err := portfolio.Weights()
	if err != nil {
		panic(err)
	}
	initial, err := portfolio.InitialValue()
	if err != nil {
		panic(err)
	}
	returns, err := portfolio.Returns()
	if err != nil {
		panic(err)
	}

	fmt.Printf("Portfolio %q: %d assets, %d observations, initial value %.2f\n\n",
		portfolio.Name, len(portfolio.Series.Assets), portfolio.Series.Len(), initial)

	assets := append([]string(nil), portfolio.Series.Assets...)
	sort.Strings(assets)
	for _, asset := range assets {
		col := make([]float64, len(returns))
		j := portfolio.Series.AssetIndex(asset)
		for i, row := range returns {
			col[i] = row[j]
		}
		std := 0.0
		if len(col) > 1 {
			std = stat.StdDev(col, nil)
		}
		fmt.Printf("%-8s weight=%.4f  mean_return=%+.5f  volatility=%.5f\n",
			asset, weights[asset], stat.Mean(col, nil), std)
	}
}

func loadPortfolio(cfgPath, dataPath string) (*config.Config, *model.Portfolio) {
	if cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	if dataPath == "" {
		dataPath = cfg.DataFile
	}
	if dataPath == "" {
		fmt.Println("no price data: set --data or data_file in the config")
		os.Exit(2)
	}

	series, err := data.LoadPriceFile(dataPath)
	if err != nil {
		panic(err)
	}
	portfolio, err := model.NewPortfolio(cfg.Portfolio.Name, series, cfg.Portfolio.Holdings)
	if err != nil {
		panic(err)
	}
	return cfg, portfolio
}

func printReport(r *risk.Report) {
	s := r.BasicStatistics
	fmt.Printf("Mode=%s  simulations=%d\n\n", r.Mode, len(r.Drawdowns))
	fmt.Printf("Terminal value: mean=%.2f std=%.2f min=%.2f max=%.2f\n", s.Mean, s.Std, s.Min, s.Max)
	fmt.Printf("Percentiles:    p05=%.2f p25=%.2f p50=%.2f p75=%.2f p95=%.2f\n", s.P05, s.P25, s.P50, s.P75, s.P95)
	fmt.Printf("Sharpe=%.4f\n\n", s.Sharpe)
	fmt.Printf("VaR(%.0f%%)=%.5f  CVaR=%.5f\n", r.Alpha*100, r.VaR, r.CVaR)
	fmt.Printf("Drawdown: max=%.5f mean=%.5f std=%.5f\n", r.MaxDrawdown, r.MeanDrawdown, r.StdDrawdown)

	if len(r.CorrelationMatrix) > 0 {
		fmt.Printf("\nCorrelations (%v):\n", r.Assets)
		for _, row := range r.CorrelationMatrix {
			for _, v := range row {
				fmt.Printf("%8.4f", v)
			}
			fmt.Println()
		}
	}
}
