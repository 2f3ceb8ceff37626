// Package cbh reads the fixed-layout .cbh index file: a sequence of
// 46-byte records, record 0 a database header and records 1..N one per
// game, each pointing into the companion .cbg/.cbp/.cbt files.
package cbh

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/mmap"
)

// RecordSize is the fixed length of every .cbh record, header included.
const RecordSize = 46

const (
	maskIsGame            = 0x01
	maskMarkedForDeletion = 0x80

	maskDay   = 0x00001F
	maskMonth = 0x0001E0
)

// File is a read-only, memory-mapped view over a .cbh file.
type File struct {
	r *mmap.ReaderAt
}

// Open memory-maps path for reading.
func Open(path string) (*File, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cbh: open %s: %w", path, err)
	}
	return &File{r: r}, nil
}

// Close releases the underlying mapping.
func (f *File) Close() error { return f.r.Close() }

// RecordCount returns the number of game records, excluding the
// record-0 database header.
func (f *File) RecordCount() int {
	n := f.r.Len() / RecordSize
	if n == 0 {
		return 0
	}
	return n - 1
}

// Record reads the raw bytes of game record i (0-based: i=0 is the
// first game, stored at file offset RecordSize).
func (f *File) Record(i int) ([RecordSize]byte, error) {
	var buf [RecordSize]byte
	off := int64((i + 1) * RecordSize)
	n, err := f.r.ReadAt(buf[:], off)
	if err != nil || n != RecordSize {
		return buf, fmt.Errorf("cbh: truncated record %d: %w", i, err)
	}
	return buf, nil
}

// Header is the decoded subset of a single game record's fields
// consumed by the converter.
type Header struct {
	IsGame        bool
	MarkedDeleted bool

	GameOffset    uint32
	WhitePlayerNo uint32
	BlackPlayerNo uint32
	TournamentNo  uint32

	Year, Month, Day int
	Result           string
	Round, Subround  int
	WhiteElo         uint16
	BlackElo         uint16
}

// Decode parses a raw record into a Header.
func Decode(rec [RecordSize]byte) Header {
	h := Header{
		IsGame:        rec[0]&maskIsGame != 0,
		MarkedDeleted: rec[0]&maskMarkedForDeletion != 0,
		GameOffset:    binary.BigEndian.Uint32(rec[1:5]),
		WhitePlayerNo: be24(rec[9], rec[10], rec[11]),
		BlackPlayerNo: be24(rec[12], rec[13], rec[14]),
		TournamentNo:  be24(rec[15], rec[16], rec[17]),
		Round:         int(rec[29]),
		Subround:      int(rec[30]),
		WhiteElo:      binary.BigEndian.Uint16(rec[31:33]),
		BlackElo:      binary.BigEndian.Uint16(rec[33:35]),
		Result:        resultString(rec[27]),
	}
	yymmdd := be24(rec[24], rec[25], rec[26])
	h.Year = int(yymmdd >> 9)
	h.Month = int((yymmdd & maskMonth) >> 5)
	h.Day = int(yymmdd & maskDay)
	return h
}

func be24(b0, b1, b2 byte) uint32 {
	return uint32(b0)<<16 | uint32(b1)<<8 | uint32(b2)
}

func resultString(code byte) string {
	switch code {
	case 2:
		return "1-0"
	case 1:
		return "1/2-1/2"
	case 0:
		return "0-1"
	}
	return "*"
}
