/*
Package startpos decodes the 28-byte CBG setup block that precedes a
game's move stream whenever the game does not start from the regular
initial position. It reproduces the reference decoder's
decode_position/decode_position_bitstream pair: a 4-byte flag/count word
(consumed by the caller, see internal/cbg), one byte of en-passant file
and side-to-move, one byte of castling rights, one byte holding the next
move number, and a 24-byte bit-packed board stream.
*/
package startpos

import (
	"fmt"

	"github.com/asdfjkl/cbh2pgn/internal/bitreader"
	"github.com/asdfjkl/cbh2pgn/internal/board"
)

const (
	maskEPFile       = 0x07
	maskTurn         = 0x10
	maskWhiteCastleL = 1
	maskWhiteCastleS = 2
	maskBlackCastleL = 4
	maskBlackCastleS = 8
)

// Result is everything the setup block yields: the board it describes,
// the side to move, and the FEN string rendering of the same data (the
// FEN is what PgnTreeBuilder emits as the SetUp/FEN tag pair).
type Result struct {
	Board      board.Model
	SideToMove board.Color
	NextMoveNo int
	FEN        string
}

// SetupBlock is the 28-byte structure found at gameOffset+4 in the .cbg
// file: byte 0 is unused padding, bytes 1-3 hold turn/castling/move-number
// flags, and the remaining 24 bytes are the board bitstream.
type SetupBlock [28]byte

// Decode parses a setup block into a Result.
func Decode(sb SetupBlock) (Result, error) {
	epByte := sb[1]
	castleByte := sb[2]
	nextMoveNo := int(sb[3])

	epFile := int(epByte & maskEPFile)
	blackToMove := (epByte & maskTurn) != 0

	wCastleLong := castleByte&maskWhiteCastleL != 0
	wCastleShort := castleByte&maskWhiteCastleS != 0
	bCastleLong := castleByte&maskBlackCastleL != 0
	bCastleShort := castleByte&maskBlackCastleS != 0

	m := board.New()
	var grid [8][8]board.Kind // [file][rank], board.None for empty
	for f := range grid {
		for r := range grid[f] {
			grid[f][r] = board.None
		}
	}

	r := bitreader.New(sb[4:28])
	sq := 0
	for sq < 64 && r.Len() > 0 {
		bit, err := r.ReadBit()
		if err != nil {
			return Result{}, fmt.Errorf("startpos: %w", err)
		}
		if bit == 0 {
			sq++
			continue
		}
		if r.Len() < 4 {
			return Result{}, fmt.Errorf("startpos: truncated piece code at square %d", sq)
		}
		rest, err := r.ReadBits(4)
		if err != nil {
			return Result{}, fmt.Errorf("startpos: %w", err)
		}
		code := 0x10 | rest
		kind, ok := pieceCodeToKind[code]
		if !ok {
			return Result{}, fmt.Errorf("startpos: unrecognized piece code %05b at square %d", code, sq)
		}
		grid[sq/8][sq%8] = kind
		sq++
	}

	for f := 0; f < 8; f++ {
		for rk := 0; rk < 8; rk++ {
			kind := grid[f][rk]
			if kind == board.None {
				continue
			}
			m.Place(kind, board.NewSquare(f, rk))
		}
	}

	side := board.White
	if blackToMove {
		side = board.Black
	}

	fen := renderFEN(grid, side, wCastleShort, wCastleLong, bCastleShort, bCastleLong, epFile, blackToMove, nextMoveNo)

	return Result{Board: m, SideToMove: side, NextMoveNo: nextMoveNo, FEN: fen}, nil
}

// pieceCodeToKind maps the five-bit piece codes used by the setup
// bitstream (always of the form 1xxxx) to board.Kind.
var pieceCodeToKind = map[int]board.Kind{
	0b10001: board.WhiteKing,
	0b10010: board.WhiteQueen,
	0b10011: board.WhiteKnight,
	0b10100: board.WhiteBishop,
	0b10101: board.WhiteRook,
	0b10110: board.WhitePawn,
	0b11001: board.BlackKing,
	0b11010: board.BlackQueen,
	0b11011: board.BlackKnight,
	0b11100: board.BlackBishop,
	0b11101: board.BlackRook,
	0b11110: board.BlackPawn,
}

func renderFEN(grid [8][8]board.Kind, side board.Color, wShort, wLong, bShort, bLong bool, epFile int, blackToMove bool, nextMoveNo int) string {
	var out []byte
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			kind := grid[file][rank]
			if kind == board.None {
				empty++
				continue
			}
			if empty > 0 {
				out = append(out, byte('0'+empty))
				empty = 0
			}
			out = append(out, board.KindSymbols[kind])
		}
		if empty > 0 {
			out = append(out, byte('0'+empty))
		}
		if rank > 0 {
			out = append(out, '/')
		}
	}

	if blackToMove {
		out = append(out, ' ', 'b')
	} else {
		out = append(out, ' ', 'w')
	}

	out = append(out, ' ')
	castleStart := len(out)
	if wShort {
		out = append(out, 'K')
	}
	if wLong {
		out = append(out, 'Q')
	}
	if bShort {
		out = append(out, 'k')
	}
	if bLong {
		out = append(out, 'q')
	}
	if len(out) == castleStart {
		out = append(out, '-')
	}

	out = append(out, ' ')
	if epFile > 0 && epFile <= 8 {
		out = append(out, board.FileLetters[epFile-1])
		if blackToMove {
			out = append(out, '3')
		} else {
			out = append(out, '6')
		}
	} else {
		out = append(out, '-')
	}

	out = append(out, ' ', '0', ' ')
	out = append(out, []byte(fmt.Sprintf("%d", nextMoveNo))...)

	return string(out)
}
