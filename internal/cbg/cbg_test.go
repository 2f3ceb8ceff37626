package cbg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHeaderDecodeFlags(t *testing.T) {
	// bit30 (not-initial) set, length field = 35
	word := uint32(maskNotInitial) | 35
	var buf [4]byte
	buf[0] = byte(word >> 24)
	buf[1] = byte(word >> 16)
	buf[2] = byte(word >> 8)
	buf[3] = byte(word)

	h := decodeHeader(buf)
	if !h.NotInitial {
		t.Fatalf("expected NotInitial set")
	}
	if h.NotEncoded || h.SpecialEncoded || h.Is960 {
		t.Fatalf("expected all other flags clear, got %+v", h)
	}
	if h.Length != 34 {
		t.Fatalf("expected length 34 (35-1), got %d", h.Length)
	}
}

func TestHeaderDecodeNotEncodedSkip(t *testing.T) {
	word := uint32(maskNotEncoded) | 10
	var buf [4]byte
	buf[0] = byte(word >> 24)
	buf[1] = byte(word >> 16)
	buf[2] = byte(word >> 8)
	buf[3] = byte(word)

	h := decodeHeader(buf)
	if !h.NotEncoded {
		t.Fatalf("expected NotEncoded set")
	}
}

func TestOpenHeaderAndSlice(t *testing.T) {
	word := uint32(maskNotInitial) | 37 // header(4) + setup(28) + 4 move bytes, +1
	data := make([]byte, 4+SetupBlockSize+4)
	data[0] = byte(word >> 24)
	data[1] = byte(word >> 16)
	data[2] = byte(word >> 8)
	data[3] = byte(word)
	data[4+SetupBlockSize] = 0xAA
	data[4+SetupBlockSize+1] = 0xBB

	path := filepath.Join(t.TempDir(), "test.cbg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	h, err := f.Header(0)
	if err != nil {
		t.Fatalf("Header: %v", err)
	}
	if !h.NotInitial {
		t.Fatalf("expected NotInitial set")
	}

	setup, err := f.Slice(4, SetupBlockSize)
	if err != nil {
		t.Fatalf("Slice(setup): %v", err)
	}
	if len(setup) != SetupBlockSize {
		t.Fatalf("expected %d setup bytes, got %d", SetupBlockSize, len(setup))
	}

	moves, err := f.Slice(4+SetupBlockSize, 2)
	if err != nil {
		t.Fatalf("Slice(moves): %v", err)
	}
	if moves[0] != 0xAA || moves[1] != 0xBB {
		t.Fatalf("unexpected move bytes: %x", moves)
	}
}
