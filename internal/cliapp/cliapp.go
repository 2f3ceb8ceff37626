/*
Package cliapp implements the cbh2pgn command line: argument parsing,
exit-code policy, and the run-summary report. It is kept separate from
package main so it can be exercised directly by tests instead of only
through an os.Exit-driven binary.
*/
package cliapp

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/message"

	"github.com/asdfjkl/cbh2pgn/internal/batch"
)

// Exit codes per the converter's external interface.
const (
	ExitOK       = 0
	ExitArgError = 1
	ExitIOError  = 2
)

// Args is the parsed command line.
type Args struct {
	Input  string // .cbh base path, extension stripped
	Output string // .pgn output path, extension appended
}

// Parse parses argv (excluding the program name) into Args. It never
// touches the filesystem.
func Parse(argv []string, stderr io.Writer) (Args, int) {
	fs := flag.NewFlagSet("cbh2pgn", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var input, output string
	fs.StringVar(&input, "i", "", "path to the .cbh database (extension optional)")
	fs.StringVar(&input, "input", "", "path to the .cbh database (extension optional)")
	fs.StringVar(&output, "o", "", "output .pgn path (extension appended if missing)")
	fs.StringVar(&output, "output", "", "output .pgn path (extension appended if missing)")

	if err := fs.Parse(argv); err != nil {
		return Args{}, ExitArgError
	}
	if input == "" || output == "" {
		fmt.Fprintln(stderr, "cbh2pgn: both -i/--input and -o/--output are required")
		return Args{}, ExitArgError
	}

	return Args{
		Input:  strings.TrimSuffix(input, ".cbh"),
		Output: ensureSuffix(output, ".pgn"),
	}, ExitOK
}

func ensureSuffix(s, suffix string) string {
	if strings.HasSuffix(s, suffix) {
		return s
	}
	return s + suffix
}

// Run opens the database named by args.Input, converts it, and writes
// PGN to args.Output, printing a locale-formatted run summary to
// stdout. It returns the process exit code.
func Run(args Args, workers int, stdout io.Writer) int {
	files, err := batch.Open(args.Input)
	if err != nil {
		fmt.Fprintf(stdout, "cbh2pgn: %v\n", err)
		return ExitIOError
	}
	defer files.Close()

	summary, err := batch.Run(files, args.Output, workers)
	if err != nil {
		fmt.Fprintf(stdout, "cbh2pgn: %v\n", err)
		return ExitIOError
	}

	printSummary(stdout, summary)
	return ExitOK
}

func printSummary(w io.Writer, s batch.Summary) {
	p := message.NewPrinter(message.MatchLanguage("en"))
	p.Fprintf(w, "%d games converted\n", s.Converted)
	if s.Errors > 0 {
		p.Fprintf(w, "%d games failed to decode\n", s.Errors)
	}
	for reason, count := range s.Skipped {
		p.Fprintf(w, "%d records skipped: %s\n", count, reason)
	}
}
