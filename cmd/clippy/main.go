package main

import (
	"os"

	"github.com/ironsheep/clippy/internal/clipboard"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(execute(os.Args[1:], clipboard.System{}, os.Stdin, os.Stdout))
}
