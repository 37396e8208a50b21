// Command horacli runs the weekday and chart computations from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/siamhora/siamhora/internal/interfaces/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "horacli: %v\n", err)
		os.Exit(1)
	}
}

//Personal.AI order the ending
