// Command cbh2pgn converts a ChessBase CBH/CBG/CBP/CBT database into a
// single PGN file.
package main

import (
	"os"
	"runtime"

	"github.com/op/go-logging"

	"github.com/asdfjkl/cbh2pgn/internal/cliapp"
	"github.com/asdfjkl/cbh2pgn/internal/xlog"
)

func main() {
	xlog.Init(logging.WARNING)

	args, code := cliapp.Parse(os.Args[1:], os.Stderr)
	if code != cliapp.ExitOK {
		os.Exit(code)
	}

	os.Exit(cliapp.Run(args, runtime.NumCPU(), os.Stdout))
}
