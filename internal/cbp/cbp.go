// Package cbp reads the .cbp player file: a 28- or 32-byte file header
// (layout version given by the byte at 0x18) followed by fixed-length
// 67-byte player records.
package cbp

import (
	"fmt"

	"golang.org/x/exp/mmap"
	"golang.org/x/text/encoding/charmap"
)

const recordSize = 67

const (
	lastNameOffset  = 9
	lastNameLen     = 30
	firstNameOffset = 39
	firstNameLen    = 20
)

// File is a read-only, memory-mapped view over a .cbp file.
type File struct {
	r         *mmap.ReaderAt
	dataStart int64
}

// Open memory-maps path and detects its header layout version.
func Open(path string) (*File, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cbp: open %s: %w", path, err)
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

// Name returns "Last, First" for the player at playerNo, decoded from
// Latin-1 NUL-padded fields.
func (f *File) Name(playerNo uint32) (string, error) {
	off := f.dataStart + int64(playerNo)*recordSize
	buf := make([]byte, recordSize)
	if n, err := f.r.ReadAt(buf, off); err != nil || n != recordSize {
		return "", fmt.Errorf("cbp: truncated record for player %d: %w", playerNo, err)
	}

	last, err := decodeLatin1(trimNUL(buf[lastNameOffset : lastNameOffset+lastNameLen]))
	if err != nil {
		return "", fmt.Errorf("cbp: decode last name for player %d: %w", playerNo, err)
	}
	first, err := decodeLatin1(trimNUL(buf[firstNameOffset : firstNameOffset+firstNameLen]))
	if err != nil {
		return "", fmt.Errorf("cbp: decode first name for player %d: %w", playerNo, err)
	}
	return last + ", " + first, nil
}

// dataStart reads the version byte at 0x18 and returns where fixed
// records begin: 32 for version 4, 28 for version 0.
func dataStart(r *mmap.ReaderAt) (int64, error) {
	var vb [1]byte
	if _, err := r.ReadAt(vb[:], 0x18); err != nil {
		return 0, fmt.Errorf("cbp: reading layout version: %w", err)
	}
	switch vb[0] {
	case 4:
		return 32, nil
	case 0:
		return 28, nil
	default:
		return 0, fmt.Errorf("cbp: unknown file layout version %d", vb[0])
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
