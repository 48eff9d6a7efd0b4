package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "backtester",
	Short: "A deterministic EMA-crossover backtesting engine for daily bars",
	Long: `Backtester runs a single-position, fully-invested EMA crossover strategy
against a daily-bar dataset and reports performance against buy-and-hold.

It provides tools for:
  - Running crossover backtests over OHLCV CSV datasets
  - Journaling trade ledgers and run summaries (CSV or SQLite)
  - Exporting org-mode research notes per run
  - Unpacking archived datasets`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
