package pgn

import "fmt"

// Tags is the PGN tag roster this converter emits: the standard seven,
// plus the optional Elo and starting-position tags the reference header
// formats carry.
type Tags struct {
	Event  string
	Site   string
	Date   string // "YYYY.MM.DD", unknown parts as "????" or "??"
	Round  string // "r" or "r(s)" for sub-rounds
	White  string
	Black  string
	Result string

	WhiteElo string // empty means omit the tag entirely
	BlackElo string
	FEN      string // empty means the game starts from the initial position
}

// Round renders a round and optional sub-round the way the reference
// converter does: "12" or "12(3)".
func Round(round, subround int) string {
	if subround == 0 {
		return fmt.Sprintf("%d", round)
	}
	return fmt.Sprintf("%d(%d)", round, subround)
}

func (t Tags) render() string {
	var out string
	out += tag("Event", t.Event)
	out += tag("Site", t.Site)
	out += tag("Date", t.Date)
	out += tag("Round", t.Round)
	out += tag("White", t.White)
	out += tag("Black", t.Black)
	out += tag("Result", t.Result)
	if t.WhiteElo != "" {
		out += tag("WhiteElo", t.WhiteElo)
	}
	if t.BlackElo != "" {
		out += tag("BlackElo", t.BlackElo)
	}
	if t.FEN != "" {
		out += tag("SetUp", "1")
		out += tag("FEN", t.FEN)
	}
	return out
}

func tag(name, value string) string {
	return fmt.Sprintf("[%s \"%s\"]\n", name, value)
}
