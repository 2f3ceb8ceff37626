package pgn

import "github.com/asdfjkl/cbh2pgn/internal/decoder"

// Node is one ply in the decoded game tree. Children holds every
// continuation recorded at this point, mainline first: Children[0] is the
// line that was actually played on (the mainline from this node's
// perspective), and any remaining entries are variations, in the order
// their brackets were encountered in the byte stream.
type Node struct {
	SAN      string
	Ply      int
	Children []*Node

	// pendingVariations holds variation subtrees pushed from this node
	// before the real continuation (if any) was decoded. The stream
	// visits a variation bracket before the move it is an alternative
	// to, so these can't be appended to Children until either the real
	// continuation arrives (Move merges them in behind it) or the game
	// ends without one (Root flushes what's left).
	pendingVariations []*Node
}

// Builder implements decoder.Sink, turning a flat stream of decoded plies
// back into a tree shaped by the stream's own variation markers.
type Builder struct {
	root       *Node
	stack      []*Node
	justPushed bool // true only for the one Move() immediately after a PushVariation
}

// NewBuilder returns a Builder rooted at an empty pre-game node.
func NewBuilder() *Builder {
	root := &Node{Ply: 0}
	return &Builder{root: root, stack: []*Node{root}}
}

func (b *Builder) current() *Node { return b.stack[len(b.stack)-1] }

// Move implements decoder.Sink. A move decoded right after PushVariation
// is the first ply of a variation branching off the current node, and is
// held in that node's pendingVariations until the node's real
// continuation (if any) is known. Every other move is that continuation:
// it takes Children[0], with any variations already recorded for this
// node following it.
func (b *Builder) Move(ev decoder.Event) {
	parent := b.current()
	n := &Node{SAN: renderSAN(ev), Ply: parent.Ply + 1}
	if b.justPushed {
		parent.pendingVariations = append(parent.pendingVariations, n)
		b.justPushed = false
	} else {
		parent.Children = append([]*Node{n}, parent.pendingVariations...)
		parent.pendingVariations = nil
	}
	b.stack[len(b.stack)-1] = n
}

// PushVariation implements decoder.Sink: the next moves branch as
// siblings of whatever currently follows the node active when the push
// happened, so the saved frame is that same node, not its parent.
func (b *Builder) PushVariation() {
	b.stack = append(b.stack, b.current())
	b.justPushed = true
}

// PopVariation implements decoder.Sink.
func (b *Builder) PopVariation() {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
	b.justPushed = false
}

// Root returns the tree's root node (Ply 0, no SAN of its own), with
// every node's leftover pendingVariations (forks whose real continuation
// never came, because the game or an enclosing variation ended first)
// folded into Children.
func (b *Builder) Root() *Node {
	finalize(b.root)
	return b.root
}

func finalize(n *Node) {
	if len(n.pendingVariations) > 0 {
		n.Children = append(n.Children, n.pendingVariations...)
		n.pendingVariations = nil
	}
	for _, c := range n.Children {
		finalize(c)
	}
}
