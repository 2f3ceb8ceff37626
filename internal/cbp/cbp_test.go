package cbp

import (
	"os"
	"path/filepath"
	"testing"
)

func buildCBPFile(t *testing.T, version byte, last, first string) string {
	t.Helper()
	headerLen := 28
	if version == 4 {
		headerLen = 32
	}
	header := make([]byte, headerLen)
	header[0x18] = version

	rec := make([]byte, recordSize)
	copy(rec[lastNameOffset:], last)
	copy(rec[firstNameOffset:], first)

	path := filepath.Join(t.TempDir(), "test.cbp")
	if err := os.WriteFile(path, append(header, rec...), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestNameVersion4Layout(t *testing.T) {
	path := buildCBPFile(t, 4, "Carlsen", "Magnus")
	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	name, err := f.Name(0)
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	if name != "Carlsen, Magnus" {
		t.Fatalf("expected 'Carlsen, Magnus', got %q", name)
	}
}

func TestNameVersion0Layout(t *testing.T) {
	path := buildCBPFile(t, 0, "Fischer", "Bobby")
	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	name, err := f.Name(0)
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	if name != "Fischer, Bobby" {
		t.Fatalf("expected 'Fischer, Bobby', got %q", name)
	}
}

func TestTrimNUL(t *testing.T) {
	b := append([]byte("abc"), make([]byte, 10)...)
	got := trimNUL(b)
	if string(got) != "abc" {
		t.Fatalf("expected 'abc', got %q", got)
	}
}
