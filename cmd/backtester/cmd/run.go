package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/config"
	"github.com/rustyeddy/backtester/journal"
	"github.com/rustyeddy/backtester/market"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an EMA-crossover backtest over a daily-bar CSV dataset",
	Long: `Run loads a CSV dataset (date,open,high,low,close,volume), derives the
fast/slow EMA crossover signal, simulates a long/flat fully-invested strategy
and prints the resulting metrics. Gzip- and xz-compressed datasets are read
transparently.

Example:
  backtester run --bars data/spy_daily.csv --fast 13 --slow 21 --capital 100000`,
	RunE: runBacktest,
}

var (
	runBarsPath   string
	runConfigPath string
	runFast       int
	runSlow       int
	runCapital    float64
	runShowTrades bool
	runOrgPath    string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runBarsPath, "bars", "b", "", "path to daily-bar CSV (date,open,high,low,close,volume) (required)")
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to config file (YAML or JSON)")
	runCmd.Flags().IntVar(&runFast, "fast", 0, "fast EMA period (overrides config)")
	runCmd.Flags().IntVar(&runSlow, "slow", 0, "slow EMA period (overrides config)")
	runCmd.Flags().Float64Var(&runCapital, "capital", 0, "starting capital (overrides config)")
	runCmd.Flags().BoolVar(&runShowTrades, "trades", false, "print the full trade ledger")
	runCmd.Flags().StringVar(&runOrgPath, "org", "", "write an org-mode run report to this path")

	runCmd.MarkFlagRequired("bars")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.LoadFromFile(runConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if runFast > 0 {
		cfg.Strategy.FastPeriod = runFast
	}
	if runSlow > 0 {
		cfg.Strategy.SlowPeriod = runSlow
	}
	if runCapital > 0 {
		cfg.Account.Capital = runCapital
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	bars, stats, err := market.LoadBars(runBarsPath)
	if err != nil {
		return fmt.Errorf("load bars: %w", err)
	}
	if stats.Excluded > 0 || stats.BadFields > 0 || stats.BadRows > 0 {
		fmt.Fprintf(os.Stderr, "ingest warnings: excluded=%d badFields=%d badRows=%d\n",
			stats.Excluded, stats.BadFields, stats.BadRows)
	}

	engine := backtest.New(cfg.Strategy.FastPeriod, cfg.Strategy.SlowPeriod, cfg.Account.Capital)
	result, err := engine.Run(bars)
	if err != nil {
		return err
	}

	backtest.PrintResult(os.Stdout, result, cfg.Account.Capital)
	if runShowTrades {
		backtest.PrintTrades(os.Stdout, result.Ledger)
	}

	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
		runID, err := backtest.Record(j, runBarsPath, result, cfg.Account.Capital)
		if err != nil {
			return fmt.Errorf("journal: %w", err)
		}
		fmt.Printf("Run ID: %s\n", runID)

		if runOrgPath != "" {
			if err := writeOrg(cfg, runID, runOrgPath); err != nil {
				return fmt.Errorf("org report: %w", err)
			}
			fmt.Printf("Org Report: %s\n", runOrgPath)
		}
	}

	return nil
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	case "csv":
		return journal.NewCSV(cfg.Journal.TradesFile, cfg.Journal.RunsFile)
	}
	return nil, nil
}

func writeOrg(cfg *config.Config, runID, path string) error {
	if cfg.Journal.Type != "sqlite" {
		return fmt.Errorf("org export needs the sqlite journal")
	}
	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return err
	}
	defer j.Close()

	run, err := j.GetRun(runID)
	if err != nil {
		return err
	}
	return run.WriteOrg(path)
}
