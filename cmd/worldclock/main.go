// Command worldclock serves and prints rows of clocks for a list of IANA
// zones.
package main

import (
	"fmt"
	"os"
)

var (
	// Version can be set with the Go linker.
	Version = "dev"
	// AppName is shown in the help text of the root command.
	AppName = "worldclock"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}
