package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/de-tools/sheet-metrics/pkg/services/workbook"
)

type SheetsCmd struct {
	loader workbook.Loader
}

func NewSheetsCmd(loader workbook.Loader) *cobra.Command {
	sc := &SheetsCmd{loader: loader}
	cmd := &cobra.Command{
		Use:   "sheets <workbook>",
		Short: "List the sheet names of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  sc.run,
	}
	return cmd
}

func (sc *SheetsCmd) run(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	wb, err := sc.loader.Open(cmd.Context(), content)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.Sheets()
	if len(sheets) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No sheets found in %s\n", path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Sheets in %s:\n%s\n", path, strings.Join(sheets, "\n"))
	return nil
}
