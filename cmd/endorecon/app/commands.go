package app

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/endorecon/internal/workbook"
	"github.com/agentstation/endorecon/pkg/constants"
	"github.com/agentstation/endorecon/pkg/logging"
	"github.com/agentstation/endorecon/pkg/records"
	"github.com/agentstation/endorecon/pkg/validate"
)

// NewRunCommand creates the run command that executes a full reconciliation
// over an input workbook and writes the classified results back out.
func (a *App) NewRunCommand() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reconcile the workbook feeds and write the result sheets",
		Long: `Run loads the input workbook, reconciles the HR, insurer, and active
roster feeds, and writes the add, edit, and offboard sheets to the
output workbook. When --output is omitted the input file is updated
in place.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), a.logger)
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			in := firstNonEmpty(inputPath, a.config.InputPath)
			if in == "" {
				return fmt.Errorf("no input workbook: pass --input or set input in the config file")
			}
			out := firstNonEmpty(outputPath, a.config.OutputPath, in)

			outcome, err := a.runner.RunFile(ctx, in, out)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), outcome.Message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input workbook path")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output workbook path (defaults to the input path)")
	cmd.Flags().DurationVar(&timeout, "timeout", constants.DefaultRunTimeout, "maximum duration for the run")

	return cmd
}

// NewValidateCommand creates the validate command that reports data quality
// issues in the input feeds without running a reconciliation.
func (a *App) NewValidateCommand() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the workbook feeds for data quality issues",
		Long: `Validate loads the input workbook and reports every record that fails
a data quality check. Validation is advisory: the run command will
still reconcile records that fail these checks.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := firstNonEmpty(inputPath, a.config.InputPath)
			if in == "" {
				return fmt.Errorf("no input workbook: pass --input or set input in the config file")
			}

			wb, err := workbook.Load(in)
			if err != nil {
				return err
			}

			slabs := records.DefaultSlabTable()
			normalizer := records.NewNormalizer(slabs)
			validator := validate.New(slabs)

			out := cmd.OutOrStdout()
			invalid := 0
			for _, source := range []records.Source{records.SourceHR, records.SourceInsurer, records.SourceRoster} {
				rows := wb.Rows(string(source))
				if rows == nil {
					continue
				}
				view := normalizer.View(source, rows)
				for _, result := range validator.View(view) {
					if result.Valid {
						continue
					}
					invalid++
					for _, msg := range result.Errors {
						fmt.Fprintf(out, "%s %s: %s\n", source, result.Record.Key(), msg)
					}
				}
			}

			if invalid == 0 {
				fmt.Fprintln(out, "All records passed validation")
				return nil
			}
			fmt.Fprintf(out, "%d record(s) failed validation\n", invalid)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input workbook path")

	return cmd
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if !verbose {
				fmt.Fprintf(out, "endorecon %s\n", a.version)
				return
			}
			fmt.Fprintf(out, "endorecon %s\n", a.version)
			fmt.Fprintf(out, "  commit:   %s\n", a.commit)
			fmt.Fprintf(out, "  built:    %s\n", a.date)
			fmt.Fprintf(out, "  built by: %s\n", a.builtBy)
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "include build details")

	return cmd
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
