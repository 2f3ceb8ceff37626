// Package cbg reads the .cbg game-stream file: for each game, a 4-byte
// header word, an optional 28-byte setup block, and the obfuscated move
// stream consumed by internal/decoder.
package cbg

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/mmap"
)

const (
	maskNotEncoded     = 0x80000000 // bit 31
	maskNotInitial     = 0x40000000 // bit 30
	maskSpecialEncoded = 0x04000000 // bit 26
	maskIs960          = 0x00A00000
	maskLength         = 0x00FFFFFF // bits 0..23
)

// SetupBlockSize is the length of the optional non-initial start-position
// block immediately following the header word.
const SetupBlockSize = 28

// Header is the decoded 4-byte game-record header.
type Header struct {
	NotEncoded     bool // true: this record is not an encoded game
	NotInitial     bool // true: game does not start from the standard initial position
	SpecialEncoded bool // true: "special encoding", unknown obfuscation variant
	Is960          bool
	// Length is the byte offset, measured from the header's own offset,
	// of the end of this game's record (header word + setup block, if
	// any + move stream). Adding it to the header offset yields the
	// slice end directly; the reference decoder computes it as the
	// masked length field minus one.
	Length uint32
}

// File is a read-only, memory-mapped view over a .cbg file.
type File struct {
	r *mmap.ReaderAt
}

// Open memory-maps path for reading.
func Open(path string) (*File, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cbg: open %s: %w", path, err)
	}
	return &File{r: r}, nil
}

// Close releases the underlying mapping.
func (f *File) Close() error { return f.r.Close() }

// Header reads and decodes the 4-byte header word at offset.
func (f *File) Header(offset uint32) (Header, error) {
	var buf [4]byte
	if _, err := f.r.ReadAt(buf[:], int64(offset)); err != nil {
		return Header{}, fmt.Errorf("cbg: truncated header at offset %d: %w", offset, err)
	}
	return decodeHeader(buf), nil
}

func decodeHeader(buf [4]byte) Header {
	word := binary.BigEndian.Uint32(buf[:])
	return Header{
		NotEncoded:     word&maskNotEncoded != 0,
		NotInitial:     word&maskNotInitial != 0,
		SpecialEncoded: word&maskSpecialEncoded != 0,
		Is960:          word&maskIs960 != 0,
		Length:         (word & maskLength) - 1,
	}
}

// Slice reads length bytes starting at offset. Used to carve out the
// setup block and move-stream bytes once the header has been decoded.
func (f *File) Slice(offset uint32, length uint32) ([]byte, error) {
	buf := make([]byte, length)
	n, err := f.r.ReadAt(buf, int64(offset))
	if err != nil || uint32(n) != length {
		return nil, fmt.Errorf("cbg: truncated read at offset %d, length %d: %w", offset, length, err)
	}
	return buf, nil
}
