// Package game assembles a single converted game: given one .cbh
// record and the three companion files it points into, it decodes the
// move stream and renders the result as PGN text. This is the unit of
// work the batch pipeline fans out across goroutines.
package game

import (
	"fmt"

	"github.com/asdfjkl/cbh2pgn/internal/board"
	"github.com/asdfjkl/cbh2pgn/internal/cbg"
	"github.com/asdfjkl/cbh2pgn/internal/cbh"
	"github.com/asdfjkl/cbh2pgn/internal/cbp"
	"github.com/asdfjkl/cbh2pgn/internal/cbt"
	"github.com/asdfjkl/cbh2pgn/internal/decoder"
	"github.com/asdfjkl/cbh2pgn/internal/pgn"
	"github.com/asdfjkl/cbh2pgn/internal/startpos"
)

// Skip classifies a policy skip: the record is well-formed but the
// batch is told to leave it out of the output, per spec.md §7.
type Skip struct {
	Reason string
}

func (s *Skip) Error() string { return "game: skipped: " + s.Reason }

// Sources bundles the three companion files a game record reads from,
// besides the .cbh record itself.
type Sources struct {
	CBG *cbg.File
	CBP *cbp.File
	CBT *cbt.File
}

// Convert decodes and renders one game record to PGN text. It returns a
// *Skip error for policy skips (deleted, not-a-game, Chess960, special
// encoding) and a plain error for structural or decode failures.
func Convert(h cbh.Header, src Sources) (string, error) {
	if h.MarkedDeleted {
		return "", &Skip{Reason: "marked for deletion"}
	}
	if !h.IsGame {
		return "", &Skip{Reason: "not a game record"}
	}

	cbgHeader, err := src.CBG.Header(h.GameOffset)
	if err != nil {
		return "", fmt.Errorf("game: reading cbg header: %w", err)
	}
	if cbgHeader.NotEncoded {
		return "", &Skip{Reason: "record is not an encoded game"}
	}
	if cbgHeader.SpecialEncoded {
		return "", &Skip{Reason: "special encoding not supported"}
	}
	if cbgHeader.Is960 {
		return "", &Skip{Reason: "Chess960 not supported"}
	}

	initial, side, nextMoveNo, fen, err := startingPosition(src.CBG, h.GameOffset, cbgHeader)
	if err != nil {
		return "", fmt.Errorf("game: decoding starting position: %w", err)
	}

	moveBytes, err := moveStreamBytes(src.CBG, h.GameOffset, cbgHeader)
	if err != nil {
		return "", fmt.Errorf("game: reading move stream: %w", err)
	}

	builder := pgn.NewBuilder()
	d := decoder.New(initial, side)
	if err := d.Decode(moveBytes, builder); err != nil {
		return "", fmt.Errorf("game: decoding moves: %w", err)
	}

	tags, err := buildTags(h, src, fen)
	if err != nil {
		return "", fmt.Errorf("game: building tags: %w", err)
	}

	return pgn.Serialize(tags, builder.Root(), side, nextMoveNo, tags.Result), nil
}

func startingPosition(f *cbg.File, gameOffset uint32, h cbg.Header) (board.Model, board.Color, int, string, error) {
	if !h.NotInitial {
		return board.Initial(), board.White, 1, "", nil
	}

	raw, err := f.Slice(gameOffset+4, cbg.SetupBlockSize)
	if err != nil {
		return board.Model{}, board.White, 1, "", err
	}
	var sb startpos.SetupBlock
	copy(sb[:], raw)

	res, err := startpos.Decode(sb)
	if err != nil {
		return board.Model{}, board.White, 1, "", err
	}
	return res.Board, res.SideToMove, res.NextMoveNo, res.FEN, nil
}

func moveStreamBytes(f *cbg.File, gameOffset uint32, h cbg.Header) ([]byte, error) {
	start := gameOffset + 4
	if h.NotInitial {
		start += cbg.SetupBlockSize
	}
	end := gameOffset + h.Length
	if end < start {
		return nil, fmt.Errorf("move stream end %d precedes start %d", end, start)
	}
	return f.Slice(start, end-start)
}

func buildTags(h cbh.Header, src Sources, fen string) (pgn.Tags, error) {
	white, err := src.CBP.Name(h.WhitePlayerNo)
	if err != nil {
		return pgn.Tags{}, err
	}
	black, err := src.CBP.Name(h.BlackPlayerNo)
	if err != nil {
		return pgn.Tags{}, err
	}
	event, site, err := src.CBT.EventSite(h.TournamentNo)
	if err != nil {
		return pgn.Tags{}, err
	}

	tags := pgn.Tags{
		Event:  event,
		Site:   site,
		Date:   formatDate(h.Year, h.Month, h.Day),
		Round:  pgn.Round(h.Round, h.Subround),
		White:  white,
		Black:  black,
		Result: h.Result,
		FEN:    fen,
	}
	if h.WhiteElo != 0 {
		tags.WhiteElo = fmt.Sprintf("%d", h.WhiteElo)
	}
	if h.BlackElo != 0 {
		tags.BlackElo = fmt.Sprintf("%d", h.BlackElo)
	}
	return tags, nil
}

func formatDate(year, month, day int) string {
	y, m, d := "????", "??", "??"
	if year != 0 {
		y = fmt.Sprintf("%04d", year)
	}
	if month != 0 {
		m = fmt.Sprintf("%02d", month)
	}
	if day != 0 {
		d = fmt.Sprintf("%02d", day)
	}
	return y + "." + m + "." + d
}
