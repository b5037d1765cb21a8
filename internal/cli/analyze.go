package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/slopez1023/ProyectoDiana/internal/analyzer"
	"github.com/slopez1023/ProyectoDiana/internal/loader"
	"github.com/slopez1023/ProyectoDiana/internal/models"
	"github.com/slopez1023/ProyectoDiana/internal/report"
)

// Export is the document written by the analyze command and alongside reports
type Export struct {
	Meta     report.Meta              `json:"meta" yaml:"meta"`
	Analyses []*models.AnalysisRecord `json:"analyses" yaml:"analyses"`
	Failures []*analyzer.Failure      `json:"failures,omitempty" yaml:"failures,omitempty"`
}

func newExport(meta report.Meta, result *analyzer.BatchResult) *Export {
	return &Export{
		Meta:     meta,
		Analyses: result.Records,
		Failures: result.Failures,
	}
}

// writeFile writes v to path in format
func writeFile(path, format string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return writeAndClose(f, path, format, v)
}

// writeAndClose writes v to wc and reports a failed close, which is where
// buffered file data is flushed.
func writeAndClose(wc io.WriteCloser, name, format string, v interface{}) error {
	if err := report.Write(wc, format, v); err != nil {
		wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}

func analyzeCmd(a *app) *cobra.Command {
	var (
		input  string
		format string
		out    string
		opts   loader.Options
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze indicators and export the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.Format
			}
			if format != report.FormatJSON && format != report.FormatYAML {
				return fmt.Errorf("unsupported format %q: use json or yaml", format)
			}

			_, result, err := a.analyze(input, opts)
			if err != nil {
				return err
			}

			meta := report.NewMeta(a.cfg.Report.Title, a.cfg.Report.Entity)
			export := newExport(meta, result)
			if out == "" {
				err = report.Write(cmd.OutOrStdout(), format, export)
			} else {
				err = writeFile(out, format, export)
			}
			if err != nil {
				return err
			}

			a.logger.Info("Analyses exported", "format", format, "count", len(result.Records), "run_id", meta.RunID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "indicator source (.xlsx, .xlsm, .json, .yaml)")
	cmd.Flags().BoolVar(&opts.Battery, "battery", false, "read the input as a sector battery workbook")
	cmd.Flags().BoolVar(&opts.History, "history", false, "merge per-indicator history sheets")
	cmd.Flags().StringVarP(&format, "format", "f", "", "export format: json or yaml (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
