package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brokerbase/validata/internal/config"
	"github.com/brokerbase/validata/internal/consolidate"
	"github.com/brokerbase/validata/internal/core/report"
)

func main() {
	root := &cobra.Command{
		Use:   "consolidate",
		Short: "Validate, clean, and report on scraped broker records",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newCheckCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var inputDir, outputDir, cfgPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline and write cleaned records plus reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := resolveDirs(inputDir, outputDir, cfgPath)
			if input == "" || output == "" {
				return fmt.Errorf("input and output directories are required (flags or config file)")
			}

			res, err := consolidate.Run(input, output)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.RenderText(res.Report))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cleaned records to %s\n", len(res.Cleaned), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "directory of scraped *.json record files")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory for cleaned records and reports")
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "TOML config file")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var inputDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Print the validation summary without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputDir == "" {
				return fmt.Errorf("--input is required")
			}

			records, err := consolidate.LoadRecords(inputDir)
			if err != nil {
				return err
			}

			rep := report.Generate(records)
			fmt.Fprintln(cmd.OutOrStdout(), report.RenderText(rep))
			if rep.NeedsAttention > 0 {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "directory of scraped *.json record files")
	return cmd
}

func resolveDirs(inputDir, outputDir, cfgPath string) (string, string) {
	if cfgPath != "" {
		if cfg, err := config.Load(cfgPath); err == nil {
			if inputDir == "" {
				inputDir = cfg.Consolidate.InputDir
			}
			if outputDir == "" {
				outputDir = cfg.Consolidate.OutputDir
			}
		}
	}
	return inputDir, outputDir
}
