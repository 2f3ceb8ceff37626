// Package cbt reads the .cbt tournament file: same versioned header as
// .cbp, followed by fixed-length 99-byte tournament records.
package cbt

import (
	"fmt"

	"golang.org/x/exp/mmap"
	"golang.org/x/text/encoding/charmap"
)

const recordSize = 99

const (
	titleOffset = 9
	titleLen    = 40
	siteOffset  = 49
	siteLen     = 30
)

// File is a read-only, memory-mapped view over a .cbt file.
type File struct {
	r         *mmap.ReaderAt
	dataStart int64
}

// Open memory-maps path and detects its header layout version.
func Open(path string) (*File, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cbt: open %s: %w", path, err)
	}
	start, err := dataStart(r)
	if err != nil {
		r.Close()
		return nil, err
	}
	return &File{r: r, dataStart: start}, nil
}

// Close releases the underlying mapping.
func (f *File) Close() error { return f.r.Close() }

// EventSite returns the decoded title and site fields for the
// tournament at tournamentNo.
func (f *File) EventSite(tournamentNo uint32) (title, site string, err error) {
	off := f.dataStart + int64(tournamentNo)*recordSize
	buf := make([]byte, recordSize)
	if n, e := f.r.ReadAt(buf, off); e != nil || n != recordSize {
		return "", "", fmt.Errorf("cbt: truncated record for tournament %d: %w", tournamentNo, e)
	}

	title, err = decodeLatin1(trimNUL(buf[titleOffset : titleOffset+titleLen]))
	if err != nil {
		return "", "", fmt.Errorf("cbt: decode title for tournament %d: %w", tournamentNo, err)
	}
	site, err = decodeLatin1(trimNUL(buf[siteOffset : siteOffset+siteLen]))
	if err != nil {
		return "", "", fmt.Errorf("cbt: decode site for tournament %d: %w", tournamentNo, err)
	}
	return title, site, nil
}

func dataStart(r *mmap.ReaderAt) (int64, error) {
	var vb [1]byte
	if _, err := r.ReadAt(vb[:], 0x18); err != nil {
		return 0, fmt.Errorf("cbt: reading layout version: %w", err)
	}
	switch vb[0] {
	case 4:
		return 32, nil
	case 0:
		return 28, nil
	default:
		return 0, fmt.Errorf("cbt: unknown file layout version %d", vb[0])
	}
}

func trimNUL(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

func decodeLatin1(b []byte) (string, error) {
	return charmap.ISO8859_1.NewDecoder().String(string(b))
}
