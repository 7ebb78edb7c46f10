package history

import (
	"strconv"
	"strings"
	"unicode"
)

const bang = '!'

// Event is a parsed history designator. The concrete types are Literal,
// Repeat, ByIndex, ByOffset and ByPrefix.
type Event interface {
	// Designator returns the event as the user typed it.
	Designator() string

	event()
}

// Literal is a line without any history reference.
type Literal struct {
	Text string
}

// Repeat is "!!", the most recent entry.
type Repeat struct {
	// Rest holds any words typed after the designator.
	Rest string
}

// ByIndex is "!N", the entry with absolute index N.
type ByIndex struct {
	N    int
	Rest string
}

// ByOffset is "!-N", the entry N back from the most recent one.
type ByOffset struct {
	N    int
	Rest string
}

// ByPrefix is "!prefix", the most recent entry starting with Prefix.
type ByPrefix struct {
	Prefix string
	Rest   string
}

func (Literal) event()  {}
func (Repeat) event()   {}
func (ByIndex) event()  {}
func (ByOffset) event() {}
func (ByPrefix) event() {}

func (e Literal) Designator() string  { return e.Text }
func (Repeat) Designator() string     { return "!!" }
func (e ByIndex) Designator() string  { return "!" + strconv.Itoa(e.N) }
func (e ByOffset) Designator() string { return "!-" + strconv.Itoa(e.N) }
func (e ByPrefix) Designator() string { return "!" + e.Prefix }

var (
	_ Event = Literal{}
	_ Event = Repeat{}
	_ Event = ByIndex{}
	_ Event = ByOffset{}
	_ Event = ByPrefix{}
)

// ParseEvent classifies a command line. A designator is only recognized at the
// start of the line, anything typed after it (separated by whitespace) is kept
// in the event's Rest field.
func ParseEvent(line string) Event {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 || trimmed[0] != bang {
		return Literal{Text: line}
	}

	word, rest := splitWord(trimmed)
	if len(word) < 2 {
		return Literal{Text: line}
	}
	body := word[1:]

	switch {
	case isLiteralBang(rune(body[0])):
		return Literal{Text: line}

	case body == string(bang):
		return Repeat{Rest: rest}

	case body[0] == bang:
		// "!!foo" isn't part of the grammar.
		return Literal{Text: line}

	case isDigits(body):
		return ByIndex{N: atoiSaturated(body), Rest: rest}

	case body[0] == '-' && isDigits(body[1:]):
		return ByOffset{N: atoiSaturated(body[1:]), Rest: rest}

	default:
		return ByPrefix{Prefix: body, Rest: rest}
	}
}

// isLiteralBang reports whether a '!' followed by r stays a plain character,
// matching bash.
func isLiteralBang(r rune) bool {
	return unicode.IsSpace(r) || r == '=' || r == '('
}

func splitWord(s string) (word, rest string) {
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx:])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// atoiSaturated parses a string of digits, clamping values that overflow an
// int. Such an index can never exist in a store.
func atoiSaturated(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
