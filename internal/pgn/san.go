/*
san.go renders a decoded ply into Standard Algebraic Notation, following
the disambiguation rules of the reference engine's own Move2SAN
(piece letter, then file/rank disambiguation only when needed, capture
marker, destination square, promotion suffix). Check and checkmate
suffixes are not rendered: detecting them needs full move legality
(whether the side to move has any legal reply), which this decoder
deliberately does not implement.
*/
package pgn

import (
	"strings"

	"github.com/asdfjkl/cbh2pgn/internal/board"
	"github.com/asdfjkl/cbh2pgn/internal/decoder"
)

func renderSAN(ev decoder.Event) string {
	if ev.Move.Null {
		return "--"
	}

	if ev.Kind == board.WhiteKing || ev.Kind == board.BlackKing {
		df := ev.Move.Dst.File() - ev.Move.Src.File()
		if df == 2 {
			return "O-O"
		}
		if df == -2 {
			return "O-O-O"
		}
	}

	var b strings.Builder

	switch ev.Kind {
	case board.WhiteKnight, board.BlackKnight:
		b.WriteByte('N')
	case board.WhiteBishop, board.BlackBishop:
		b.WriteByte('B')
	case board.WhiteRook, board.BlackRook:
		b.WriteByte('R')
	case board.WhiteQueen, board.BlackQueen:
		b.WriteByte('Q')
	case board.WhiteKing, board.BlackKing:
		b.WriteByte('K')
	}

	isPawn := ev.Kind == board.WhitePawn || ev.Kind == board.BlackPawn

	if !isPawn && len(ev.Siblings) > 0 {
		b.WriteString(disambiguate(ev.Move.Src, ev.Siblings))
	}

	if ev.IsCapture {
		if isPawn {
			b.WriteByte(board.FileLetters[ev.Move.Src.File()])
		}
		b.WriteByte('x')
	}

	b.WriteString(ev.Move.Dst.String())

	if ev.Move.Promotion != board.None {
		b.WriteByte('=')
		b.WriteByte(board.KindSymbols[promotionLetterKind(ev.Move.Promotion)])
	}

	return b.String()
}

// promotionLetterKind normalizes a promotion kind to its uppercase
// (white) counterpart so KindSymbols always yields an uppercase letter,
// matching PGN's convention of an uppercase promotion suffix for both
// colors.
func promotionLetterKind(k board.Kind) board.Kind {
	switch k {
	case board.BlackQueen:
		return board.WhiteQueen
	case board.BlackRook:
		return board.WhiteRook
	case board.BlackBishop:
		return board.WhiteBishop
	case board.BlackKnight:
		return board.WhiteKnight
	}
	return k
}

// disambiguate picks the file, or failing that the rank, that sets src
// apart from every candidate sibling square; if some sibling shares src's
// file and another (or the same) shares its rank, neither alone tells the
// squares apart, so it falls back to the full source square.
func disambiguate(src board.Square, siblings []board.Square) string {
	fileCollides, rankCollides := false, false
	for _, s := range siblings {
		if s.File() == src.File() {
			fileCollides = true
		}
		if s.Rank() == src.Rank() {
			rankCollides = true
		}
	}
	switch {
	case !fileCollides:
		return string(board.FileLetters[src.File()])
	case !rankCollides:
		return string(byte('1' + src.Rank()))
	default:
		return src.String()
	}
}
