/*
Package decoder implements the CBG move-stream interpreter: a stateful,
position-aware byte-code reader that de-obfuscates each opcode with a
running counter, dispatches it against the twenty-one physical per-role
tables, and drives a board.Model through the game. It reports what it
decodes to a Sink rather than building a move tree itself, the same way
the reference Python decoder keeps the byte-stream walk and the
python-chess tree construction (node.add_variation) as separate
concerns threaded through one loop.
*/
package decoder

import (
	"fmt"

	"github.com/asdfjkl/cbh2pgn/internal/board"
	"github.com/asdfjkl/cbh2pgn/internal/opcode"
)

// Event describes one decoded ply, already resolved against the board
// state immediately before it was played.
type Event struct {
	Kind      board.Kind
	Move      board.Move
	IsCapture bool
	// Siblings holds the squares of other pieces of the same kind and
	// color that could also reach Move.Dst, for SAN disambiguation.
	Siblings []board.Square
}

// Sink receives decoded events in byte-stream order. PushVariation and
// PopVariation bracket an alternate continuation that starts from the
// position active when PushVariation was called; the decoder itself
// restores its board state across the bracket, and a Sink is expected to
// restore its own notion of "current node" in the same way.
type Sink interface {
	Move(ev Event)
	PushVariation()
	PopVariation()
}

type frame struct {
	board board.Model
	side  board.Color
}

// Decoder walks a CBG move-stream byte slice against a starting board
// position, calling a Sink for every decoded ply.
type Decoder struct {
	board   board.Model
	side    board.Color
	counter byte
	stack   []frame
}

// New creates a Decoder starting from the given board and side to move.
func New(initial board.Model, side board.Color) *Decoder {
	return &Decoder{board: initial, side: side}
}

// Decode walks stream and reports every decoded ply to sink. It returns
// an error wrapping the byte offset and de-obfuscated value of any opcode that
// matches no physical table and no special code — a structural decode
// failure, per the game-level error class.
func (d *Decoder) Decode(stream []byte, sink Sink) error {
	i := 0
	for i < len(stream) {
		raw := stream[i]
		tkn := byte(int(raw) - int(d.counter))

		switch tkn {
		case opcode.Filler:
			i++
			continue

		case opcode.PushVariation:
			d.stack = append(d.stack, frame{board: d.board.Snapshot(), side: d.side})
			sink.PushVariation()
			i++
			continue

		case opcode.PopVariation:
			if len(d.stack) > 0 {
				top := d.stack[len(d.stack)-1]
				d.stack = d.stack[:len(d.stack)-1]
				d.board = top.board
				d.side = top.side
			}
			sink.PopVariation()
			i++
			continue

		case opcode.NullMove:
			d.counter++
			sink.Move(Event{Move: board.Move{Src: board.NoSquare, Dst: board.NoSquare, Promotion: board.None, Null: true}})
			d.side = opponent(d.side)
			i++
			continue

		case opcode.TwoByteEscape:
			if i+2 >= len(stream) {
				return fmt.Errorf("decoder: truncated two-byte escape at offset %d", i)
			}
			b0 := opcode.Deobf2B[byte(int(stream[i+1])-int(d.counter))]
			b1 := opcode.Deobf2B[byte(int(stream[i+2])-int(d.counter))]
			word := int(b0)<<8 | int(b1)
			srcIdx := word & 0x3F
			dstIdx := (word >> 6) & 0x3F
			promoCode := (word >> 12) & 0x3

			srcF, srcR := opcode.LookupSquare2B[srcIdx][0], opcode.LookupSquare2B[srcIdx][1]
			dstF, dstR := opcode.LookupSquare2B[dstIdx][0], opcode.LookupSquare2B[dstIdx][1]
			src := board.NewSquare(srcF, srcR)
			dst := board.NewSquare(dstF, dstR)

			ev, err := d.applyAt(src, dst, promoCode)
			if err != nil {
				return fmt.Errorf("decoder: two-byte escape at offset %d: %w", i, err)
			}
			sink.Move(ev)
			d.counter++
			d.side = opponent(d.side)
			i += 3
			continue
		}

		entry, ok := opcode.Table[tkn]
		if !ok {
			return fmt.Errorf("decoder: unrecognized opcode 0x%02X at offset %d", tkn, i)
		}
		d.counter++

		kind := roleToKind(entry.Role, d.side)
		src, ok := d.findInstanceSquare(kind, entry.Instance)
		if !ok {
			return fmt.Errorf("decoder: no piece for role %d instance %d at offset %d", entry.Role, entry.Instance, i)
		}

		dFile, dRank := entry.DFile, entry.DRank
		if kind == board.BlackPawn {
			dFile, dRank = -dFile, -dRank
		}
		dst := board.NewSquare(src.File()+dFile, src.Rank()+dRank)

		ev, err := d.applyKnownSquare(kind, src, dst, board.None)
		if err != nil {
			return fmt.Errorf("decoder: opcode 0x%02X at offset %d: %w", tkn, i, err)
		}
		sink.Move(ev)
		d.side = opponent(d.side)
		i++
	}
	return nil
}

func opponent(c board.Color) board.Color {
	if c == board.White {
		return board.Black
	}
	return board.White
}

// roleToKind resolves a color-independent table role plus the side to
// move into the concrete board.Kind: the same byte range means different
// kinds depending on whose turn it is, never different table rows.
func roleToKind(role opcode.Role, side board.Color) board.Kind {
	white := side == board.White
	switch role {
	case opcode.King:
		if white {
			return board.WhiteKing
		}
		return board.BlackKing
	case opcode.Queen:
		if white {
			return board.WhiteQueen
		}
		return board.BlackQueen
	case opcode.Rook:
		if white {
			return board.WhiteRook
		}
		return board.BlackRook
	case opcode.Bishop:
		if white {
			return board.WhiteBishop
		}
		return board.BlackBishop
	case opcode.Knight:
		if white {
			return board.WhiteKnight
		}
		return board.BlackKnight
	case opcode.Pawn:
		if white {
			return board.WhitePawn
		}
		return board.BlackPawn
	}
	return board.None
}

func (d *Decoder) findInstanceSquare(kind board.Kind, instance int) (board.Square, bool) {
	sq := d.board.Pieces[kind][instance]
	if sq == board.NoSquare {
		return board.NoSquare, false
	}
	return sq, true
}

// applyKnownSquare builds the Event for a move whose source/destination
// are already resolved, computing captured-piece and disambiguation
// information from the board state just before the move is applied.
func (d *Decoder) applyKnownSquare(kind board.Kind, src, dst board.Square, promotion board.Kind) (Event, error) {
	victim := d.board.At(dst)
	isCapture := victim.Kind != board.None

	var siblings []board.Square
	for _, sq := range d.board.Pieces[kind] {
		if sq == board.NoSquare || sq == src {
			continue
		}
		if d.board.CanReach(kind, sq, dst) {
			siblings = append(siblings, sq)
		}
	}

	mv := board.Move{Src: src, Dst: dst, Promotion: promotion}
	if err := d.board.ApplyMove(mv); err != nil {
		return Event{}, err
	}

	return Event{Kind: kind, Move: mv, IsCapture: isCapture, Siblings: siblings}, nil
}

// applyAt resolves and applies a two-byte escape move, which names both
// squares explicitly rather than a table delta.
func (d *Decoder) applyAt(src, dst board.Square, promoCode int) (Event, error) {
	cell := d.board.At(src)
	if cell.Kind == board.None {
		return Event{}, fmt.Errorf("empty source square %s", src)
	}
	kind := cell.Kind

	promotion := board.None
	if (kind == board.WhitePawn && dst.Rank() == 7) || (kind == board.BlackPawn && dst.Rank() == 0) {
		switch promoCode {
		case 0:
			promotion = pickColor(kind, board.WhiteQueen, board.BlackQueen)
		case 1:
			promotion = pickColor(kind, board.WhiteRook, board.BlackRook)
		case 2:
			promotion = pickColor(kind, board.WhiteBishop, board.BlackBishop)
		case 3:
			promotion = pickColor(kind, board.WhiteKnight, board.BlackKnight)
		default:
			return Event{}, fmt.Errorf("unknown promotion code %d", promoCode)
		}
	}

	return d.applyKnownSquare(kind, src, dst, promotion)
}

func pickColor(mover board.Kind, white, black board.Kind) board.Kind {
	if board.IsWhite(mover) {
		return white
	}
	return black
}
