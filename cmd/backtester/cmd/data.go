package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xyproto/unzip"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Manage daily-bar datasets",
}

var dataUnpackCmd = &cobra.Command{
	Use:   "unpack <archive.zip>",
	Short: "Extract a zipped dataset archive",
	Long: `Unpack extracts a dataset archive into the output directory. Individual
.csv.gz and .csv.xz files do not need unpacking; the run command reads those
directly.`,
	Args: cobra.ExactArgs(1),
	RunE: runDataUnpack,
}

var dataOutDir string

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataUnpackCmd)

	dataUnpackCmd.Flags().StringVarP(&dataOutDir, "out", "o", ".", "output directory")
}

func runDataUnpack(cmd *cobra.Command, args []string) error {
	src := args[0]
	if err := unzip.Extract(src, dataOutDir); err != nil {
		return fmt.Errorf("unpack %s: %w", src, err)
	}
	fmt.Printf("Extracted %s -> %s\n", src, dataOutDir)
	return nil
}
