package opcode

import "testing"

func TestTableOpcodesAreGloballyUnique(t *testing.T) {
	raws := []map[byte][2]int{
		kingENC, queen1ENC, queen2ENC, queen3ENC,
		rook1ENC, rook2ENC, rook3ENC,
		bishop1ENC, bishop2ENC, bishop3ENC,
		knight1ENC, knight2ENC, knight3ENC,
		pawnAENC, pawnBENC, pawnCENC, pawnDENC,
		pawnEENC, pawnFENC, pawnGENC, pawnHENC,
	}
	seen := make(map[byte]bool)
	for i, raw := range raws {
		for code := range raw {
			if seen[code] {
				t.Fatalf("opcode 0x%02X appears in more than one physical table (table index %d)", code, i)
			}
			seen[code] = true
		}
	}
}

func TestTableDoesNotOverlapSpecialCodes(t *testing.T) {
	special := []byte{TwoByteEscape, PushVariation, PopVariation, Filler, NullMove}
	for _, code := range special {
		if _, ok := Table[code]; ok {
			t.Fatalf("special code 0x%02X also appears in the move table", code)
		}
	}
}

func TestTableEntryLookup(t *testing.T) {
	e, ok := Table[0x76]
	if !ok {
		t.Fatal("expected 0x76 (castle short) to be present")
	}
	if e.Role != King || e.DFile != 2 || e.DRank != 0 {
		t.Fatalf("unexpected entry for 0x76: %+v", e)
	}

	e, ok = Table[0x4A]
	if !ok {
		t.Fatal("expected 0x4A to be present")
	}
	if e.Role != Knight || e.Instance != 0 {
		t.Fatalf("0x4A should resolve to the first knight table, got %+v", e)
	}
}

func TestLookupSquare2BIsIdentity(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		file, rank := LookupSquare2B[sq][0], LookupSquare2B[sq][1]
		if file*8+rank != sq {
			t.Fatalf("square %d maps to (%d,%d), not the identity", sq, file, rank)
		}
	}
}

func TestDeobf2BIsPermutation(t *testing.T) {
	var seen [256]bool
	for _, v := range Deobf2B {
		if seen[v] {
			t.Fatalf("value 0x%02X repeated in Deobf2B, not a permutation", v)
		}
		seen[v] = true
	}
}
