// Package main provides the CLI entry point for retwall.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/retwall-go/pkg/retwall"
)

var (
	pretty  bool
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "retwall",
		Short: "Retaining wall quantity takeoff and drawings",
		Long: `retwall computes earthwork, stone soling, PCC and stone masonry quantities
for a retaining wall segment, exports the bill of quantities to xlsx and
draws the front elevation and cross section as DXF and image files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(inspectCmd())

	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func reportError(err error) {
	var inputErr *retwall.InvalidInputError
	if errors.As(err, &inputErr) {
		fmt.Fprintf(os.Stderr, "Input Error: Please enter valid numeric values. (%s = %q)\n",
			inputErr.Field, inputErr.Value)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
