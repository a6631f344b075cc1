// Command monitorctl registers the built-in monitoring sections in the local process
// and prints what is discoverable.
package main

import (
	"os"

	"github.com/ygrebnov/monitoring"
)

var version = "dev"

func main() {
	if err := newRootCmd(monitoring.Default()).Execute(); err != nil {
		os.Exit(1)
	}
}
