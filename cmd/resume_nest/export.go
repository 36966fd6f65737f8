package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-nest/internal/config"
	"github.com/jonathan/resume-nest/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print resume data to an A4 PDF",
	Long:  "Render a resume data JSON document and print it to a single A4 PDF with a headless browser.",
	RunE:  runExport,
}

var (
	exportInput    string
	exportTemplate string
	exportOutput   string
	exportHTML     string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "in", "i", "", "Path to resume data JSON, or - for stdin (required)")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", string(types.DefaultTemplate), "Template: modern, minimal, creative or professional")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "resume.pdf", "Output PDF path")
	exportCmd.Flags().StringVar(&exportHTML, "html", "", "Also write the mounted print surface to this path")
	_ = exportCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	t, err := types.ParseTemplateType(exportTemplate)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg.Log)

	data, err := loadResume(exportInput, cmd.InOrStdin())
	if err != nil {
		return err
	}

	result, err := newExportPipeline(cfg, logger).ExportData(commandContext(cmd), data, t)
	if err != nil {
		return err
	}
	if exportHTML != "" && len(result.HTML) > 0 {
		if err := writeOutput(exportHTML, result.HTML, nil); err != nil {
			return err
		}
	}
	if !result.Printed {
		return fmt.Errorf("no print driver available, set CHROME_PATH or install Chrome")
	}
	if err := writeOutput(exportOutput, result.PDF, cmd.OutOrStdout()); err != nil {
		return err
	}

	logger.Info("resume exported",
		slog.String("template", t.Slug()),
		slog.String("path", exportOutput),
		slog.Int("bytes", len(result.PDF)),
	)
	return nil
}
