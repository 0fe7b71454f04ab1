package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/sheet-metrics/pkg/runtime/terminal/commands"
	"github.com/de-tools/sheet-metrics/pkg/runtime/terminal/export"
	"github.com/de-tools/sheet-metrics/pkg/services/pipeline"
	"github.com/de-tools/sheet-metrics/pkg/services/workbook"
)

// CLI represents the command-line interface
type CLI struct {
	processor pipeline.Processor
	loader    workbook.Loader
	reporter  *export.Reporter
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Processor pipeline.Processor
	Loader    workbook.Loader
	Output    io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Processor == nil {
		opts.Processor = pipeline.NewDefault()
	}
	if opts.Loader == nil {
		opts.Loader = workbook.NewLoader()
	}

	cli := &CLI{
		processor: opts.Processor,
		loader:    opts.Loader,
		reporter:  export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workbook",
		Short: "Workbook statistics tool",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.processor, cli.reporter))
	cmd.AddCommand(commands.NewSheetsCmd(cli.loader))

	return cmd
}
