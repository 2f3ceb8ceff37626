/*
Package batch walks an entire .cbh database and converts every surviving
game record to PGN, the way the reference converter's read_cbh.py script
does for a single game but fanned out across a bounded worker pool. Each
worker owns its own decoder state; a single goroutine writes results to
the output file in CBH record order once every worker has reported back,
mirroring the teacher's codegen worker pool (chan jobs + sync.WaitGroup)
generalized to the structured errgroup idiom.
*/
package batch

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/asdfjkl/cbh2pgn/internal/cbg"
	"github.com/asdfjkl/cbh2pgn/internal/cbh"
	"github.com/asdfjkl/cbh2pgn/internal/cbp"
	"github.com/asdfjkl/cbh2pgn/internal/cbt"
	"github.com/asdfjkl/cbh2pgn/internal/game"
	"github.com/asdfjkl/cbh2pgn/internal/xlog"
)

var log = xlog.Get("batch")

// Summary counts what happened to every record in the database.
type Summary struct {
	Converted int
	Skipped   map[string]int // skip reason -> count
	Errors    int
}

// record is one slot in the ordered result buffer: at most one of pgn
// and err is non-empty/non-nil; a skipped record carries a *game.Skip
// in err.
type record struct {
	pgn string
	err error
}

// Files bundles the four mmap'd input files a batch run reads from.
type Files struct {
	CBH *cbh.File
	CBG *cbg.File
	CBP *cbp.File
	CBT *cbt.File
}

// Open memory-maps all four companion files for basePath (no
// extension): basePath+".cbh", ".cbg", ".cbp", ".cbt".
func Open(basePath string) (*Files, error) {
	h, err := cbh.Open(basePath + ".cbh")
	if err != nil {
		return nil, err
	}
	g, err := cbg.Open(basePath + ".cbg")
	if err != nil {
		h.Close()
		return nil, err
	}
	p, err := cbp.Open(basePath + ".cbp")
	if err != nil {
		h.Close()
		g.Close()
		return nil, err
	}
	t, err := cbt.Open(basePath + ".cbt")
	if err != nil {
		h.Close()
		g.Close()
		p.Close()
		return nil, err
	}
	return &Files{CBH: h, CBG: g, CBP: p, CBT: t}, nil
}

// Close releases all four mappings.
func (f *Files) Close() {
	f.CBH.Close()
	f.CBG.Close()
	f.CBP.Close()
	f.CBT.Close()
}

// Run converts every game record in f and writes PGN text to outPath,
// fanning decode work out across workers goroutines while preserving
// CBH record order in the output. Per-record policy skips and decode
// errors are counted and logged; only a failure to create, write or
// flush the output file is returned as an error.
func Run(f *Files, outPath string, workers int) (Summary, error) {
	n := f.CBH.RecordCount()
	results := make([]record, n)

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			results[i] = convertOne(f, i)
			return nil
		})
	}
	_ = g.Wait() // convertOne never returns an error; nothing to propagate

	out, err := os.Create(outPath)
	if err != nil {
		return Summary{}, fmt.Errorf("batch: creating output file: %w", err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	summary := Summary{Skipped: make(map[string]int)}
	for i, r := range results {
		switch {
		case isSkip(r.err):
			summary.Skipped[r.err.Error()]++
			log.Debugf("record %d: %v", i, r.err)
		case r.err != nil:
			summary.Errors++
			log.Warningf("record %d: %v", i, r.err)
		default:
			summary.Converted++
			if _, err := w.WriteString(r.pgn); err != nil {
				return summary, fmt.Errorf("batch: writing game %d: %w", i, err)
			}
			if _, err := w.WriteString("\n"); err != nil {
				return summary, fmt.Errorf("batch: writing game %d: %w", i, err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return summary, fmt.Errorf("batch: flushing output: %w", err)
	}
	return summary, nil
}

func convertOne(f *Files, i int) record {
	raw, err := f.CBH.Record(i)
	if err != nil {
		return record{err: fmt.Errorf("reading cbh record %d: %w", i, err)}
	}
	h := cbh.Decode(raw)

	pgnText, err := game.Convert(h, game.Sources{CBG: f.CBG, CBP: f.CBP, CBT: f.CBT})
	if err != nil {
		return record{err: err}
	}
	return record{pgn: pgnText}
}

func isSkip(err error) bool {
	_, ok := err.(*game.Skip)
	return ok
}
