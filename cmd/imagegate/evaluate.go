package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rhels/imagegate"
	"github.com/rhels/imagegate/config"
)

var (
	outputFormat string
	evalTimeout  time.Duration
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate IMAGE",
	Short: "Evaluate a single image and exit with its disposition",
	Long: `Evaluate one image reference and print the evaluation report.

The exit code is the disposition: 0 auto-approve, 2 needs-human-review,
3 auto-reject, 1 internal error. Automation branches on these codes.`,
	Example: `  # human-readable report
  imagegate evaluate registry.example.com/ns/app:v1

  # machine-readable report for automation
  imagegate evaluate --output json vendor/app:v2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image := ""
		if len(args) > 0 {
			image = args[0]
		}
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), evalTimeout)
		defer cancel()

		report, err := imagegate.Evaluate(ctx, image, cfg)
		if err != nil {
			return err
		}
		switch outputFormat {
		case "json":
			err = report.WriteJSON(os.Stdout)
		case "table":
			err = report.WriteTable(os.Stdout)
		default:
			return fmt.Errorf("unknown output format: %s", outputFormat)
		}
		if err != nil {
			return err
		}
		os.Exit(imagegate.ExitCode(report.Decision))
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table or json")
	evaluateCmd.Flags().DurationVar(&evalTimeout, "timeout", 2*time.Minute, "Overall evaluation deadline")
	rootCmd.AddCommand(evaluateCmd)
}
