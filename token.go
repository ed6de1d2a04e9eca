package rsmd

import "strings"

// Token is a lexical unit of a single Markdown line.
type Token struct {
	Kind TokenKind
	// Text carries the payload for Text, Punctuation, OrderedListMarker,
	// Escape (the escaped grapheme, without the backslash) and RawHTMLTag
	// (the full tag including angle brackets).
	Text string
	// Delim and Length describe an EmphasisRun.
	Delim  rune
	Length int
}

type TokenKind uint8

const (
	// TokenText is a run of plain text graphemes.
	TokenText TokenKind = iota
	// TokenEmphasisRun is a maximal run of '*' or '_'.
	TokenEmphasisRun
	// TokenPunctuation is a single punctuation grapheme.
	TokenPunctuation
	TokenOpenBracket
	TokenCloseBracket
	TokenOpenParen
	TokenCloseParen
	// TokenOrderedListMarker is a digit followed by a period, e.g. "1.".
	TokenOrderedListMarker
	TokenWhitespace
	TokenCodeTick
	TokenCodeFence
	TokenThematicBreak
	// TokenEscape is a backslash-escaped grapheme.
	TokenEscape
	TokenTab
	TokenNewline
	TokenBlockQuoteMarker
	// TokenRawHTMLTag is a complete HTML tag, e.g. "<div>" or "</span>".
	TokenRawHTMLTag
	TokenTableCellSeparator
)

func textToken(s string) Token    { return Token{Kind: TokenText, Text: s} }
func punctToken(s string) Token   { return Token{Kind: TokenPunctuation, Text: s} }
func escapeToken(s string) Token  { return Token{Kind: TokenEscape, Text: s} }
func rawHTMLToken(s string) Token { return Token{Kind: TokenRawHTMLTag, Text: s} }

func orderedMarkerToken(s string) Token {
	return Token{Kind: TokenOrderedListMarker, Text: s}
}
func emphasisToken(delim rune, length int) Token {
	return Token{Kind: TokenEmphasisRun, Delim: delim, Length: length}
}
func kindToken(k TokenKind) Token { return Token{Kind: k} }

// isWhitespaceToken reports whether t separates words.
func isWhitespaceToken(t Token) bool {
	switch t.Kind {
	case TokenWhitespace, TokenNewline, TokenTab:
		return true
	}
	return false
}

// isPunctuationToken reports whether t counts as punctuation for
// flanking classification.
func isPunctuationToken(t Token) bool {
	switch t.Kind {
	case TokenPunctuation, TokenEmphasisRun,
		TokenOpenBracket, TokenCloseBracket,
		TokenOpenParen, TokenCloseParen:
		return true
	}
	return false
}

// sourceText reconstructs the source form of a token. Tabs expand to
// tabSize spaces; the original column information is not retained.
func sourceText(t Token, tabSize int) string {
	switch t.Kind {
	case TokenText, TokenPunctuation, TokenOrderedListMarker, TokenRawHTMLTag:
		return t.Text
	case TokenEmphasisRun:
		return strings.Repeat(string(t.Delim), t.Length)
	case TokenOpenBracket:
		return "["
	case TokenCloseBracket:
		return "]"
	case TokenOpenParen:
		return "("
	case TokenCloseParen:
		return ")"
	case TokenWhitespace:
		return " "
	case TokenCodeTick:
		return "`"
	case TokenCodeFence:
		return "```"
	case TokenThematicBreak:
		return "---"
	case TokenEscape:
		return "\\" + t.Text
	case TokenTab:
		return strings.Repeat(" ", tabSize)
	case TokenNewline:
		return "\n"
	case TokenBlockQuoteMarker:
		return ">"
	case TokenTableCellSeparator:
		return "|"
	}
	return ""
}

// sourceLine reconstructs a token span, excluding any trailing newline.
func sourceLine(tokens []Token, tabSize int) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Kind == TokenNewline {
			continue
		}
		b.WriteString(sourceText(t, tabSize))
	}
	return b.String()
}
