package rsmd

// GroupLines merges tokenized lines into block-sized token groups, one
// group per construct. It resolves every lookahead-dependent rule: list
// and blockquote continuation, fenced-code accumulation, table rows,
// setext reclassification and paragraph joining. Each line must end
// with a Newline token, as produced by Tokenize.
func (p *Parser) GroupLines(lines [][]Token) [][]Token {
	var blocks [][]Token
	insideCode := false

	last := func() []Token {
		if len(blocks) == 0 {
			return nil
		}
		return blocks[len(blocks)-1]
	}
	appendToLast := func(line []Token) {
		blocks[len(blocks)-1] = append(blocks[len(blocks)-1], line...)
	}
	newBlock := func(line []Token) {
		blocks = append(blocks, line)
	}
	// Paragraph continuation joins with a single space in place of the
	// previous line's newline.
	mergeIntoLast := func(line []Token) {
		prev := blocks[len(blocks)-1]
		if n := len(prev); n > 0 && prev[n-1].Kind == TokenNewline {
			prev[n-1] = kindToken(TokenWhitespace)
		}
		blocks[len(blocks)-1] = append(prev, line...)
	}
	// Setext underlines rewrite the previous block into an ATX heading
	// of the given level.
	reclassifySetext := func(level int) {
		prefix := make([]Token, 0, level+1)
		for i := 0; i < level; i++ {
			prefix = append(prefix, punctToken("#"))
		}
		prefix = append(prefix, kindToken(TokenWhitespace))
		blocks[len(blocks)-1] = append(prefix, blocks[len(blocks)-1]...)
	}

	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		lead := line[0]

		if insideCode {
			appendToLast(line)
			if lead.Kind == TokenCodeFence {
				insideCode = false
			}
			continue
		}

		switch {
		case lead.Kind == TokenNewline:
			// Blank line: its own group, so nothing continues across it.
			newBlock(line)
		case lead.Kind == TokenPunctuation && lead.Text == "#":
			newBlock(line)
		case lead.Kind == TokenPunctuation && lead.Text == "-":
			switch {
			case leadMatches(last(), TokenPunctuation, "-"):
				appendToLast(line)
			case plainLed(last()) && lineIsOnlyDash(line):
				reclassifySetext(2)
			default:
				newBlock(line)
			}
		case lead.Kind == TokenTab:
			if listLed(last()) && hasContent(line) {
				appendToLast(line)
			} else {
				newBlock(line)
			}
		case lead.Kind == TokenOrderedListMarker:
			if leadKind(last()) == TokenOrderedListMarker {
				appendToLast(line)
			} else {
				newBlock(line)
			}
		case lead.Kind == TokenThematicBreak:
			if plainLed(last()) {
				reclassifySetext(2)
			} else {
				newBlock(line)
			}
		case lead.Kind == TokenCodeFence:
			newBlock(line)
			insideCode = true
		case lead.Kind == TokenBlockQuoteMarker:
			if leadKind(last()) == TokenBlockQuoteMarker {
				appendToLast(line)
			} else {
				newBlock(line)
			}
		case lead.Kind == TokenTableCellSeparator:
			if leadKind(last()) == TokenTableCellSeparator {
				appendToLast(line)
			} else {
				newBlock(line)
			}
		case lead.Kind == TokenRawHTMLTag:
			// Raw HTML passes through line by line.
			newBlock(line)
		case lead.Kind == TokenText && len(lead.Text) > 0 && lead.Text[0] == '=' && plainLed(last()):
			reclassifySetext(1)
		default:
			if plainLed(last()) {
				mergeIntoLast(line)
			} else {
				newBlock(line)
			}
		}
	}
	return blocks
}

func leadKind(block []Token) TokenKind {
	if len(block) == 0 {
		return TokenNewline
	}
	return block[0].Kind
}

func leadMatches(block []Token, kind TokenKind, text string) bool {
	return len(block) > 0 && block[0].Kind == kind && block[0].Text == text
}

// plainLed reports whether a block begins with paragraph content rather
// than a structural marker.
func plainLed(block []Token) bool {
	if len(block) == 0 {
		return false
	}
	switch block[0].Kind {
	case TokenNewline, TokenCodeFence, TokenThematicBreak, TokenTab,
		TokenOrderedListMarker, TokenBlockQuoteMarker,
		TokenTableCellSeparator, TokenRawHTMLTag:
		return false
	case TokenPunctuation:
		return block[0].Text != "#" && block[0].Text != "-"
	}
	return true
}

func listLed(block []Token) bool {
	if len(block) == 0 {
		return false
	}
	if block[0].Kind == TokenOrderedListMarker {
		return true
	}
	return block[0].Kind == TokenPunctuation && block[0].Text == "-"
}

func lineIsOnlyDash(line []Token) bool {
	return len(line) == 2 &&
		line[0].Kind == TokenPunctuation && line[0].Text == "-" &&
		line[1].Kind == TokenNewline
}

func hasContent(line []Token) bool {
	for _, t := range line {
		if !isWhitespaceToken(t) {
			return true
		}
	}
	return false
}
