package terminal

import (
	"io"
	"os"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/runtime/terminal/commands"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/runtime/terminal/export"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/analysis"
	"github.com/spf13/cobra"
)

// ServiceFactory builds an analysis service from a resolved configuration.
type ServiceFactory func(cfg analysis.Config) analysis.Service

// CLI represents the command-line interface
type CLI struct {
	factory  ServiceFactory
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Factory ServiceFactory
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Factory == nil {
		opts.Factory = analysis.NewController
	}

	cli := &CLI{
		factory:  opts.Factory,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Automation ROI analysis over pharmacy order-history logs",
	}

	factory := commands.ServiceFactory(cli.factory)
	cmd.AddCommand(commands.NewAnalyzeCmd(factory, cli.reporter))
	cmd.AddCommand(commands.NewProductsCmd(factory))
	cmd.AddCommand(commands.NewAuditCmd(factory))

	return cmd
}
