package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slopez1023/ProyectoDiana/internal/charts"
	"github.com/slopez1023/ProyectoDiana/internal/loader"
	"github.com/slopez1023/ProyectoDiana/internal/report"
)

// Files written by the report command
const (
	ReportPDF      = "report.pdf"
	ReportHTML     = "report.html"
	ReportMarkdown = "report.md"
	AnalysesJSON   = "analyses.json"
)

func reportCmd(a *app) *cobra.Command {
	var (
		input  string
		outDir string
		opts   loader.Options
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Analyze indicators and generate charts and reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir != "" {
				a.cfg.Output.Dir = outDir
			}
			if err := a.cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to create output directories: %w", err)
			}

			records, result, err := a.analyze(input, opts)
			if err != nil {
				return err
			}

			if a.cfg.Report.Charts {
				renderer := charts.NewRenderer(a.cfg.ChartsDir(), a.logger)
				if _, err := renderer.RenderAll(records, result.Records); err != nil {
					return fmt.Errorf("failed to render charts: %w", err)
				}
			}

			meta := report.NewMeta(a.cfg.Report.Title, a.cfg.Report.Entity)
			summary := report.Summarize(result.Records, a.cfg.Report.MaxCritical)

			var pdf bytes.Buffer
			if err := report.WritePDF(&pdf, summary, meta); err != nil {
				return err
			}
			page, err := report.HTML(summary, meta)
			if err != nil {
				return err
			}
			var export bytes.Buffer
			if err := report.WriteJSON(&export, newExport(meta, result)); err != nil {
				return err
			}

			files := map[string][]byte{
				ReportPDF:      pdf.Bytes(),
				ReportHTML:     page,
				ReportMarkdown: []byte(report.Markdown(summary, meta)),
				AnalysesJSON:   export.Bytes(),
			}
			for name, data := range files {
				path := a.cfg.GetOutputPath(name)
				if err := os.WriteFile(path, data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
			}

			a.logger.Info("Report generated",
				"dir", filepath.Clean(a.cfg.Output.Dir),
				"indicators", summary.Total,
				"critical", summary.CriticalCount,
				"run_id", meta.RunID)
			fmt.Fprintln(cmd.OutOrStdout(), a.cfg.GetOutputPath(ReportPDF))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "indicator source (.xlsx, .xlsm, .json, .yaml)")
	cmd.Flags().BoolVar(&opts.Battery, "battery", false, "read the input as a sector battery workbook")
	cmd.Flags().BoolVar(&opts.History, "history", false, "merge per-indicator history sheets")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "output directory (default from config)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
