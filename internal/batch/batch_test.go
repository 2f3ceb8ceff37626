package batch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// buildDatabase writes a minimal four-file database with a record-0
// header, one deleted record, and one real game played from the
// standard initial position.
func buildDatabase(t *testing.T, dir, base string) {
	t.Helper()

	cbhData := make([]byte, 46*3) // header + deleted record + one game
	// record 1: deleted
	cbhData[46] = 0x80
	// record 2: a real game, offset 0 into .cbg, player/tournament 0
	rec2 := 46 * 2
	cbhData[rec2] = 0x01 // is-game, offset bytes left at zero: game starts at .cbg offset 0
	cbhData[rec2+27] = 2 // result 1-0
	writeFile(t, filepath.Join(dir, base+".cbh"), cbhData)

	// .cbg: one game at offset 0: header word=6 (length field), then one move byte
	word := uint32(6)
	cbgData := []byte{byte(word >> 24), byte(word >> 16), byte(word >> 8), byte(word), 0x84}
	writeFile(t, filepath.Join(dir, base+".cbg"), cbgData)

	// .cbp: version 4 header + one player record
	cbpHeader := make([]byte, 32)
	cbpHeader[0x18] = 4
	cbpRec := make([]byte, 67)
	copy(cbpRec[9:], "Doe")
	copy(cbpRec[39:], "Jane")
	writeFile(t, filepath.Join(dir, base+".cbp"), append(cbpHeader, cbpRec...))

	// .cbt: version 4 header + one tournament record
	cbtHeader := make([]byte, 32)
	cbtHeader[0x18] = 4
	cbtRec := make([]byte, 99)
	copy(cbtRec[9:], "Test Championship")
	copy(cbtRec[49:], "Test City")
	writeFile(t, filepath.Join(dir, base+".cbt"), append(cbtHeader, cbtRec...))
}

func TestRunConvertsAndSkips(t *testing.T) {
	dir := t.TempDir()
	buildDatabase(t, dir, "test")

	files, err := Open(filepath.Join(dir, "test"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer files.Close()

	outPath := filepath.Join(dir, "out.pgn")
	summary, err := Run(files, outPath, 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Converted != 1 {
		t.Fatalf("expected 1 converted game, got %d (summary=%+v)", summary.Converted, summary)
	}
	if summary.Errors != 0 {
		t.Fatalf("expected 0 errors, got %d", summary.Errors)
	}
	total := 0
	for _, c := range summary.Skipped {
		total += c
	}
	if total != 1 {
		t.Fatalf("expected 1 skipped record, got %d", total)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(out), "[White \"Doe, Jane\"]") {
		t.Fatalf("expected white player tag in output, got:\n%s", out)
	}
}
