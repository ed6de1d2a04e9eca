package rsmd

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Parser converts Markdown source into a document tree. It holds only
// immutable configuration, so one Parser may serve any number of
// concurrent Parse calls.
type Parser struct {
	tabSize int
}

// NewParser returns a Parser configured by cfg.
func NewParser(cfg Config) *Parser {
	tabSize := cfg.Lexer.TabSize
	if tabSize <= 0 {
		tabSize = 4
	}
	return &Parser{tabSize: tabSize}
}

// Parse runs the full pipeline over a document: split into lines,
// tokenize, group, parse.
func (p *Parser) Parse(src string) []Block {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")
	tokenized := make([][]Token, len(lines))
	for i, line := range lines {
		tokenized[i] = p.Tokenize(line)
	}
	return p.ParseBlocks(p.GroupLines(tokenized))
}

// Tokenize converts one line into tokens. It walks grapheme clusters,
// so combining characters and multi-codepoint emoji stay intact. The
// result always ends with exactly one Newline token; an empty line
// yields just that.
//
// Tokenize is total: it classifies any input and never fails.
func (p *Parser) Tokenize(line string) []Token {
	gs := splitGraphemes(line)

	var tokens []Token
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, textToken(buf.String()))
			buf.Reset()
		}
	}
	emit := func(t Token) {
		flush()
		tokens = append(tokens, t)
	}
	// Ordered-list markers only count at the start of the line or right
	// after indentation; "item 1. above" must stay plain text.
	markerContext := func() bool {
		if buf.Len() > 0 {
			return false
		}
		return len(tokens) == 0 || tokens[len(tokens)-1].Kind == TokenTab
	}
	// '>' is a quote marker only while everything before it is
	// indentation or more quote markers.
	quoteContext := func() bool {
		if buf.Len() > 0 {
			return false
		}
		for _, t := range tokens {
			switch t.Kind {
			case TokenWhitespace, TokenTab, TokenBlockQuoteMarker:
			default:
				return false
			}
		}
		return true
	}

	for i := 0; i < len(gs); {
		g := gs[i]
		switch {
		case g == "*" || g == "_":
			n := 1
			for i+n < len(gs) && gs[i+n] == g {
				n++
			}
			emit(emphasisToken([]rune(g)[0], n))
			i += n
		case g == "`":
			if i+2 < len(gs) && gs[i+1] == "`" && gs[i+2] == "`" {
				emit(kindToken(TokenCodeFence))
				i += 3
			} else {
				emit(kindToken(TokenCodeTick))
				i++
			}
		case g == "\\":
			if i+1 < len(gs) {
				emit(escapeToken(gs[i+1]))
				i += 2
			} else {
				// Trailing backslash with nothing to escape.
				buf.WriteString(g)
				i++
			}
		case g == "-":
			if i+2 < len(gs) && gs[i+1] == "-" && gs[i+2] == "-" {
				emit(kindToken(TokenThematicBreak))
				i += 3
			} else {
				emit(punctToken("-"))
				i++
			}
		case g == "[":
			emit(kindToken(TokenOpenBracket))
			i++
		case g == "]":
			emit(kindToken(TokenCloseBracket))
			i++
		case g == "(":
			emit(kindToken(TokenOpenParen))
			i++
		case g == ")":
			emit(kindToken(TokenCloseParen))
			i++
		case isASCIIDigit(g) && i+2 < len(gs) && gs[i+1] == "." && gs[i+2] == " " && markerContext():
			emit(orderedMarkerToken(g + "."))
			i += 2
		case g == "\t":
			emit(kindToken(TokenTab))
			i++
		case g == " ":
			if spaceRun(gs, i) >= p.tabSize {
				emit(kindToken(TokenTab))
				i += p.tabSize
			} else {
				emit(kindToken(TokenWhitespace))
				i++
			}
		case g == "\n":
			emit(kindToken(TokenNewline))
			i++
		case g == ">":
			if quoteContext() {
				emit(kindToken(TokenBlockQuoteMarker))
			} else {
				emit(punctToken(">"))
			}
			i++
		case g == "<":
			if tag, width, ok := scanRawHTMLTag(gs, i); ok {
				emit(rawHTMLToken(tag))
				i += width
			} else {
				emit(punctToken("<"))
				i++
			}
		case g == "|":
			emit(kindToken(TokenTableCellSeparator))
			i++
		case isPunctuationGrapheme(g):
			emit(punctToken(g))
			i++
		default:
			buf.WriteString(g)
			i++
		}
	}
	flush()
	if n := len(tokens); n == 0 || tokens[n-1].Kind != TokenNewline {
		tokens = append(tokens, kindToken(TokenNewline))
	}
	return tokens
}

func splitGraphemes(s string) []string {
	var gs []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		gs = append(gs, cluster)
	}
	return gs
}

func spaceRun(gs []string, start int) int {
	n := 0
	for start+n < len(gs) && gs[start+n] == " " {
		n++
	}
	return n
}

// scanRawHTMLTag recognizes "<tag ...>" or "</tag ...>" beginning at
// start, returning the full tag text and its width in graphemes. The
// first character after "<" (and an optional "/") must be an ASCII
// letter; the tag extends to the first ">".
func scanRawHTMLTag(gs []string, start int) (string, int, bool) {
	i := start + 1
	if i < len(gs) && gs[i] == "/" {
		i++
	}
	if i >= len(gs) || !isASCIILetter(gs[i]) {
		return "", 0, false
	}
	for j := i; j < len(gs); j++ {
		if gs[j] == ">" {
			return strings.Join(gs[start:j+1], ""), j + 1 - start, true
		}
	}
	return "", 0, false
}

func isASCIIDigit(g string) bool {
	return len(g) == 1 && g[0] >= '0' && g[0] <= '9'
}

func isASCIILetter(g string) bool {
	return len(g) == 1 &&
		(g[0] >= 'a' && g[0] <= 'z' || g[0] >= 'A' && g[0] <= 'Z')
}

// isPunctuationGrapheme reports whether g is a single punctuation or
// currency-symbol character. Math symbols like '+' and '=' are not
// punctuation and stay in plain text.
func isPunctuationGrapheme(g string) bool {
	r, size := utf8.DecodeRuneInString(g)
	if size != len(g) {
		return false
	}
	return unicode.IsPunct(r) || unicode.Is(unicode.Sc, r)
}
