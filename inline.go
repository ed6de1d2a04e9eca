package rsmd

import "strings"

// ParseInline parses the inline content of one block: emphasis via the
// delimiter stack, links, images, code spans and escapes. Malformed
// constructs degrade to their literal source text.
func (p *Parser) ParseInline(tokens []Token) []Inline {
	var (
		out    []Inline
		delims []*delimiter
		buf    strings.Builder
	)
	cursor := NewTokenCursor(tokens)

	flush := func() {
		if buf.Len() > 0 {
			out = append(out, &Text{Content: buf.String()})
			buf.Reset()
		}
	}

	for !cursor.AtEOF() {
		tok, _ := cursor.Current()
		switch tok.Kind {
		case TokenEmphasisRun:
			flush()
			d := &delimiter{
				ch:        tok.Delim,
				length:    tok.Length,
				tokenPos:  cursor.Position(),
				parsedPos: len(out),
				active:    true,
			}
			out = append(out, &placeholder{delim: d})
			delims = append(delims, d)
			cursor.Advance()
		case TokenOpenBracket:
			flush()
			start := cursor.Position()
			if link, ok := p.parseLink(cursor); ok {
				out = append(out, link)
			} else {
				cursor.SetPosition(start + 1)
				buf.WriteString("[")
			}
		case TokenPunctuation:
			if next, ok := cursor.Peek(1); tok.Text == "!" && ok && next.Kind == TokenOpenBracket {
				flush()
				start := cursor.Position()
				cursor.Advance()
				if img, ok := p.parseImage(cursor); ok {
					out = append(out, img)
				} else {
					cursor.SetPosition(start + 2)
					buf.WriteString("![")
				}
				continue
			}
			buf.WriteString(tok.Text)
			cursor.Advance()
		case TokenCodeTick:
			end := -1
			for j := cursor.Position() + 1; j < len(tokens); j++ {
				if tokens[j].Kind == TokenCodeTick {
					end = j
					break
				}
			}
			if end < 0 {
				// No closing tick on this block; literal backtick.
				buf.WriteString("`")
				cursor.Advance()
				continue
			}
			flush()
			var code strings.Builder
			for _, t := range tokens[cursor.Position()+1 : end] {
				code.WriteString(sourceText(t, p.tabSize))
			}
			out = append(out, &Code{Content: code.String()})
			cursor.SetPosition(end + 1)
		case TokenEscape:
			// The backslash stays visible in output.
			buf.WriteString("\\")
			buf.WriteString(tok.Text)
			cursor.Advance()
		case TokenNewline:
			flush()
			cursor.Advance()
		case TokenWhitespace:
			buf.WriteString(" ")
			cursor.Advance()
		case TokenTab:
			buf.WriteString(strings.Repeat(" ", p.tabSize))
			cursor.Advance()
		default:
			buf.WriteString(sourceText(tok, p.tabSize))
			cursor.Advance()
		}
	}
	flush()

	for _, d := range delims {
		d.classifyFlanking(tokens)
	}
	return resolveEmphasis(out, delims)
}

// resolveEmphasis pairs delimiter runs into Bold and Italic wrappers.
// Each closer scans backwards for the nearest eligible opener, subject
// to the rule of three; two delimiter characters pair as Bold when both
// runs allow it, otherwise one pairs as Italic. Every placeholder is
// gone from the returned slice: spliced into a wrapper, textified, or
// dropped when its run was fully consumed.
func resolveEmphasis(out []Inline, delims []*delimiter) []Inline {
	for i, closer := range delims {
		if !closer.active || !closer.canClose {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			opener := delims[j]
			if !opener.active || !opener.canOpen || opener.ch != closer.ch {
				continue
			}
			if ruleOfThreeRejects(opener, closer) {
				continue
			}
			used := 1
			if opener.length >= 2 && closer.length >= 2 {
				used = 2
			}
			pj, pi := opener.parsedPos, closer.parsedPos

			inner := make([]Inline, 0, pi-pj-1)
			for _, el := range out[pj+1 : pi] {
				if ph, isPh := el.(*placeholder); isPh {
					// A run trapped inside the pair can never match
					// across it; degrade what is left of it.
					d := ph.delim
					if d.active && d.length > 0 {
						inner = append(inner, &Text{Content: strings.Repeat(string(d.ch), d.length)})
					}
					d.active = false
					continue
				}
				inner = append(inner, el)
			}
			var wrapped Inline
			if used == 2 {
				wrapped = &Bold{Content: inner}
			} else {
				wrapped = &Italic{Content: inner}
			}

			// Both placeholders stay in place around the wrapper; any
			// residual run on them is textified or re-paired later.
			shrink := (pi - pj - 1) - 1
			spliced := make([]Inline, 0, len(out)-shrink)
			spliced = append(spliced, out[:pj+1]...)
			spliced = append(spliced, wrapped)
			spliced = append(spliced, out[pi:]...)
			out = spliced
			for _, d := range delims {
				if d.parsedPos >= pi {
					d.parsedPos -= shrink
				}
			}

			opener.length -= used
			closer.length -= used
			if opener.length <= 0 {
				opener.active = false
			}
			if closer.length <= 0 {
				closer.active = false
			}
			break
		}
	}

	// Unmatched runs degrade to their literal characters; spent runs
	// vanish. No placeholder survives this pass.
	cleaned := make([]Inline, 0, len(out))
	for _, el := range out {
		if ph, isPh := el.(*placeholder); isPh {
			if d := ph.delim; d.length > 0 {
				cleaned = append(cleaned, &Text{Content: strings.Repeat(string(d.ch), d.length)})
			}
			continue
		}
		cleaned = append(cleaned, el)
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}

// ruleOfThreeRejects applies CommonMark's rule preventing degenerate
// matches like "***a*b**": when either side could both open and close,
// run lengths summing to a multiple of three cannot pair unless one of
// them is itself a multiple of three.
func ruleOfThreeRejects(opener, closer *delimiter) bool {
	if !(opener.canOpen && opener.canClose || closer.canOpen && closer.canClose) {
		return false
	}
	return (opener.length+closer.length)%3 == 0 &&
		opener.length%3 != 0 && closer.length%3 != 0
}

// parseLink parses "[label](url \"title\")" with the cursor on the
// opening bracket. On failure the cursor position is meaningless; the
// caller restores it and degrades to literal text.
func (p *Parser) parseLink(c *TokenCursor) (*Link, bool) {
	label, ok := parseBracketedLabel(c)
	if !ok {
		return nil, false
	}
	url, title, ok := p.parseLinkTarget(c)
	if !ok {
		return nil, false
	}
	return &Link{Text: p.ParseInline(label), Title: title, URL: url}, true
}

// parseImage parses the bracketed part of "![alt](url)" with the cursor
// on the opening bracket. Only the flattened text of the label survives
// as alt text.
func (p *Parser) parseImage(c *TokenCursor) (*Image, bool) {
	label, ok := parseBracketedLabel(c)
	if !ok {
		return nil, false
	}
	url, title, ok := p.parseLinkTarget(c)
	if !ok {
		return nil, false
	}
	return &Image{Alt: Flatten(p.ParseInline(label)), Title: title, URL: url}, true
}

func parseBracketedLabel(c *TokenCursor) ([]Token, bool) {
	c.Advance() // opening bracket
	start := c.Position()
	for {
		tok, ok := c.Current()
		if !ok {
			return nil, false
		}
		if tok.Kind == TokenCloseBracket {
			label := c.tokens[start:c.Position()]
			c.Advance()
			return label, true
		}
		c.Advance()
	}
}

// parseLinkTarget parses "(url)" or "(url \"title\")". The URL is the
// literal token text up to the first space or closing paren; a newline
// before the paren closes means the construct is malformed.
func (p *Parser) parseLinkTarget(c *TokenCursor) (url, title string, ok bool) {
	tok, exists := c.Current()
	if !exists || tok.Kind != TokenOpenParen {
		return "", "", false
	}
	c.Advance()

	var urlBuf strings.Builder
scan:
	for {
		tok, exists = c.Current()
		if !exists {
			return "", "", false
		}
		switch tok.Kind {
		case TokenCloseParen, TokenWhitespace:
			break scan
		case TokenNewline:
			return "", "", false
		}
		urlBuf.WriteString(sourceText(tok, p.tabSize))
		c.Advance()
	}

	for tok, exists = c.Current(); exists && tok.Kind == TokenWhitespace; tok, exists = c.Current() {
		c.Advance()
	}
	if exists && tok.Kind == TokenPunctuation && tok.Text == `"` {
		c.Advance()
		var titleBuf strings.Builder
		for {
			tok, exists = c.Current()
			if !exists {
				return "", "", false
			}
			if tok.Kind == TokenPunctuation && tok.Text == `"` {
				c.Advance()
				break
			}
			titleBuf.WriteString(sourceText(tok, p.tabSize))
			c.Advance()
		}
		title = titleBuf.String()
		for tok, exists = c.Current(); exists && tok.Kind == TokenWhitespace; tok, exists = c.Current() {
			c.Advance()
		}
	}

	if tok, exists = c.Current(); !exists || tok.Kind != TokenCloseParen {
		return "", "", false
	}
	c.Advance()
	return urlBuf.String(), title, true
}
