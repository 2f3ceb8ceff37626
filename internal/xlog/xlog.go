// Package xlog is the process-wide logging setup every layer of
// cbh2pgn logs through: a thin wrapper around github.com/op/go-logging
// so packages depend only on xlog.Get, never on the backend directly.
package xlog

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
)

// Init wires a single stderr backend with the shared formatter and
// sets the process-wide logging level. Call it once from the CLI
// entrypoint before any package logs.
func Init(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

// Get returns a named logger. Call it once per package and keep the
// result in a package-level var, the way callers of MustGetLogger do.
func Get(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}
