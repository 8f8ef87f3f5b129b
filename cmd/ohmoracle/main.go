// Command ohmoracle picks the pair of standard resistor values whose
// voltage divider output is closest to a target voltage.
package main

import (
	"fmt"
	"os"

	"github.com/ohmtools/ohmoracle/internal/cli"
	"github.com/ohmtools/ohmoracle/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps any failure to exit code 1.
// Errors are reported once, to stderr, with no partial table on stdout.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
