// Package board implements the parallel board representation the CBG
// decoder keeps alongside the byte stream: an 8x8 grid of (kind, instance)
// cells plus a piece list indexed by kind and instance.
package board

// Kind identifies one of the twelve piece kinds, or the empty sentinel.
// Kind is an alias type to avoid bothersome conversion between int and Kind,
// the same convention the reference engine uses for its Piece type.
type Kind = int

const (
	WhiteQueen Kind = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	BlackQueen
	BlackKnight
	BlackBishop
	BlackRook
	WhiteKing
	BlackKing
	WhitePawn
	BlackPawn
	numKinds
	// None marks an empty cell or an absent piece-list slot.
	None Kind = -1
)

// Color is white or black.
type Color = int

const (
	White Color = iota
	Black
)

// IsWhite reports whether kind belongs to White.  Panics on None.
func IsWhite(kind Kind) bool {
	switch kind {
	case WhiteQueen, WhiteKnight, WhiteBishop, WhiteRook, WhiteKing, WhitePawn:
		return true
	case BlackQueen, BlackKnight, BlackBishop, BlackRook, BlackKing, BlackPawn:
		return false
	}
	panic("board: IsWhite called on None")
}

// KindSymbols maps each piece kind to its FEN/SAN letter.
var KindSymbols = [numKinds]byte{
	'Q', 'N', 'B', 'R', 'q', 'n', 'b', 'r', 'K', 'k', 'P', 'p',
}

// FileLetters is used to render a Square's file as 'a'..'h'.
const FileLetters = "abcdefgh"

// Square is a packed (file, rank) pair: file*8+rank, file and rank in 0..7.
// File 0 is the a-file; rank 0 is White's first rank.
type Square int

// NoSquare marks an absent piece-list entry.
const NoSquare Square = -1

// NewSquare builds a Square from file/rank, wrapping both modulo 8 the way
// the decoder's delta arithmetic does.
func NewSquare(file, rank int) Square {
	return Square(mod8(file)*8 + mod8(rank))
}

func mod8(n int) int {
	n %= 8
	if n < 0 {
		n += 8
	}
	return n
}

// File returns the square's file, 0..7.
func (s Square) File() int { return int(s) / 8 }

// Rank returns the square's rank, 0..7.
func (s Square) Rank() int { return int(s) % 8 }

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return string(FileLetters[s.File()]) + string(rune('1'+s.Rank()))
}

// Cell is a single grid slot: a piece kind and its instance index, or the
// empty sentinel (None, 0).
type Cell struct {
	Kind     Kind
	Instance int
}

var emptyCell = Cell{Kind: None}

// Move is a decoded move: source and destination square, and an optional
// promotion kind (None if the move is not a promotion).  Null moves carry
// Src == Dst == NoSquare.
type Move struct {
	Src, Dst  Square
	Promotion Kind
	Null      bool
}
