package cbh

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeFields(t *testing.T) {
	var rec [RecordSize]byte
	rec[0] = 0x01 // is-game, not deleted
	rec[1], rec[2], rec[3], rec[4] = 0x00, 0x00, 0x01, 0x2C // game offset 0x12C
	rec[9], rec[10], rec[11] = 0x00, 0x00, 0x05             // white player 5
	rec[12], rec[13], rec[14] = 0x00, 0x00, 0x07            // black player 7
	rec[15], rec[16], rec[17] = 0x00, 0x00, 0x01            // tournament 1
	rec[27] = 2                                             // result 1-0
	rec[29] = 3                                             // round
	rec[30] = 1                                             // subround
	rec[31], rec[32] = 0x08, 0x9C                           // white elo 2204
	rec[33], rec[34] = 0x08, 0x50                           // black elo 2128

	// date: year 2024, month 7, day 30 packed as (year<<9)|(month<<5)|day
	yymmdd := uint32(2024)<<9 | uint32(7)<<5 | uint32(30)
	rec[24] = byte(yymmdd >> 16)
	rec[25] = byte(yymmdd >> 8)
	rec[26] = byte(yymmdd)

	h := Decode(rec)

	if !h.IsGame || h.MarkedDeleted {
		t.Fatalf("expected is-game set and deleted clear, got %+v", h)
	}
	if h.GameOffset != 0x12C {
		t.Fatalf("expected game offset 0x12C, got 0x%x", h.GameOffset)
	}
	if h.WhitePlayerNo != 5 || h.BlackPlayerNo != 7 || h.TournamentNo != 1 {
		t.Fatalf("unexpected offsets: %+v", h)
	}
	if h.Result != "1-0" {
		t.Fatalf("expected 1-0, got %s", h.Result)
	}
	if h.Round != 3 || h.Subround != 1 {
		t.Fatalf("expected round 3 subround 1, got %d/%d", h.Round, h.Subround)
	}
	if h.WhiteElo != 2204 || h.BlackElo != 2128 {
		t.Fatalf("unexpected elo: %d/%d", h.WhiteElo, h.BlackElo)
	}
	if h.Year != 2024 || h.Month != 7 || h.Day != 30 {
		t.Fatalf("unexpected date: %d-%d-%d", h.Year, h.Month, h.Day)
	}
}

func TestDecodeDeletedAndNotGame(t *testing.T) {
	var rec [RecordSize]byte
	rec[0] = 0x80 // deleted, is-game clear
	h := Decode(rec)
	if h.IsGame {
		t.Fatalf("expected is-game clear")
	}
	if !h.MarkedDeleted {
		t.Fatalf("expected marked-deleted set")
	}
}

func TestResultCodes(t *testing.T) {
	cases := map[byte]string{2: "1-0", 1: "1/2-1/2", 0: "0-1", 9: "*"}
	for code, want := range cases {
		if got := resultString(code); got != want {
			t.Fatalf("resultString(%d) = %s, want %s", code, got, want)
		}
	}
}

func TestOpenAndRecordCount(t *testing.T) {
	dbHeader := make([]byte, RecordSize)
	game1 := make([]byte, RecordSize)
	game1[0] = 0x01
	game2 := make([]byte, RecordSize)
	game2[0] = 0x01

	path := filepath.Join(t.TempDir(), "test.cbh")
	data := append(append(dbHeader, game1...), game2...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	if f.RecordCount() != 2 {
		t.Fatalf("expected 2 records, got %d", f.RecordCount())
	}
	rec, err := f.Record(1)
	if err != nil {
		t.Fatalf("Record(1): %v", err)
	}
	if rec[0] != 0x01 {
		t.Fatalf("expected second game record to carry is-game bit")
	}
}
