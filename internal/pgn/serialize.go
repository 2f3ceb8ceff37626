/*
serialize.go renders a decoded game tree into PGN text: the tag roster
followed by movetext with move numbers, parenthesized variations, and a
trailing result token. Comments, NAGs, and clock annotations are never
emitted; the decoder that builds the tree never records them.
*/
package pgn

import (
	"fmt"
	"strings"

	"github.com/asdfjkl/cbh2pgn/internal/board"
)

// Serialize renders tags and the move tree rooted at root (as produced by
// a Builder) into a complete PGN game, starting from startSide to move at
// startMoveNo and ending with the result token.
func Serialize(tags Tags, root *Node, startSide board.Color, startMoveNo int, result string) string {
	var sb strings.Builder
	sb.WriteString(tags.render())
	sb.WriteString("\n")

	movetext := strings.TrimSpace(renderFrom(root, startSide, startMoveNo, true))
	if movetext != "" {
		sb.WriteString(movetext)
		sb.WriteString(" ")
	}
	sb.WriteString(result)
	sb.WriteString("\n")
	return sb.String()
}

func renderFrom(node *Node, side board.Color, moveNo int, needNumber bool) string {
	if len(node.Children) == 0 {
		return ""
	}
	mainline := node.Children[0]

	var sb strings.Builder
	sb.WriteString(moveLabel(side, moveNo, needNumber))
	sb.WriteString(mainline.SAN)
	sb.WriteByte(' ')

	for _, v := range node.Children[1:] {
		sb.WriteByte('(')
		var vb strings.Builder
		vb.WriteString(moveLabel(side, moveNo, true))
		vb.WriteString(v.SAN)
		vb.WriteByte(' ')
		vb.WriteString(renderFrom(v, opponentSide(side), nextMoveNo(side, moveNo), false))
		sb.WriteString(strings.TrimSpace(vb.String()))
		sb.WriteString(") ")
	}

	needNumberNext := len(node.Children) > 1
	sb.WriteString(renderFrom(mainline, opponentSide(side), nextMoveNo(side, moveNo), needNumberNext))
	return sb.String()
}

func moveLabel(side board.Color, moveNo int, needNumber bool) string {
	if side == board.White {
		return fmt.Sprintf("%d. ", moveNo)
	}
	if needNumber {
		return fmt.Sprintf("%d... ", moveNo)
	}
	return ""
}

func opponentSide(c board.Color) board.Color {
	if c == board.White {
		return board.Black
	}
	return board.White
}

func nextMoveNo(side board.Color, moveNo int) int {
	if side == board.Black {
		return moveNo + 1
	}
	return moveNo
}
