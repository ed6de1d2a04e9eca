package rsmd

// TokenCursor is an index-tracking view over a token slice.
type TokenCursor struct {
	tokens []Token
	pos    int
}

// NewTokenCursor returns a cursor positioned at the first token.
func NewTokenCursor(tokens []Token) *TokenCursor {
	return &TokenCursor{tokens: tokens}
}

// Current returns the token under the cursor. ok is false at EOF.
func (c *TokenCursor) Current() (Token, bool) {
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[c.pos], true
}

// Peek returns the token n positions ahead without moving the cursor.
func (c *TokenCursor) Peek(n int) (Token, bool) {
	if c.pos+n >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[c.pos+n], true
}

// Advance moves the cursor forward one token. Advancing past the end is
// a no-op.
func (c *TokenCursor) Advance() {
	if c.pos < len(c.tokens) {
		c.pos++
	}
}

// Position returns the cursor's index into the token slice.
func (c *TokenCursor) Position() int {
	return c.pos
}

// SetPosition moves the cursor to pos. It panics if pos is out of
// bounds; that is a parser bug, not an input error.
func (c *TokenCursor) SetPosition(pos int) {
	if pos > len(c.tokens) {
		panic("rsmd: cursor position out of bounds")
	}
	c.pos = pos
}

// AtEOF reports whether the cursor has consumed every token.
func (c *TokenCursor) AtEOF() bool {
	return c.pos >= len(c.tokens)
}
