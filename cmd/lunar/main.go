package main

import (
	"os"

	"github.com/idilsaglam/lunar/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
