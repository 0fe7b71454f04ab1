package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/sheet-metrics/pkg/runtime/terminal/export"
	"github.com/de-tools/sheet-metrics/pkg/services/pipeline"
)

type AnalyzeCmd struct {
	outputDir string
	processor pipeline.Processor
	reporter  *export.Reporter
}

func NewAnalyzeCmd(processor pipeline.Processor, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{processor: processor, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze <workbook>",
		Short: "Compute per-sheet statistics and write the report workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  ac.run,
	}

	cmd.Flags().StringVarP(&ac.outputDir, "output", "o", "",
		"Directory for the report workbook (defaults to the input's directory)")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	result, err := ac.processor.ProcessWorkbook(ctx, filepath.Base(path), content)
	if err != nil {
		return fmt.Errorf("failed to analyze %q: %w", path, err)
	}

	if err := ac.reporter.Handle(result); err != nil {
		return err
	}

	if len(result.Report) == 0 {
		return nil
	}

	dir := ac.outputDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	target := filepath.Join(dir, result.ReportFilename)
	if err := os.WriteFile(target, result.Report, 0o644); err != nil {
		return fmt.Errorf("failed to write report %q: %w", target, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", target)
	return nil
}
