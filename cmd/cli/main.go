package main

import (
	"fmt"
	"os"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/runtime/terminal"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/analysis"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Factory: analysis.NewController,
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
