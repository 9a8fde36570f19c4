// Command lunar is the Lunar Health terminal app. The same binary is also
// buildable from ./cmd/lunar.
package main

import (
	"os"

	"github.com/idilsaglam/lunar/internal/cli"
)

func main() {
	// Hand everything to the CLI runner; it prints its own errors.
	os.Exit(cli.Run(os.Args[1:]))
}
