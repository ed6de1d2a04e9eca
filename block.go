package rsmd

import "strings"

// ParseBlocks classifies each token group into a block element. Groups
// holding only newlines (blank lines) produce nothing.
func (p *Parser) ParseBlocks(groups [][]Token) []Block {
	var out []Block
	for _, group := range groups {
		if b := p.parseBlock(group); b != nil {
			out = append(out, b)
		}
	}
	return out
}

// parseBlock classifies one group by its leading token. Anything that
// fails its construct's shape falls back to a paragraph.
func (p *Parser) parseBlock(group []Token) Block {
	if blankGroup(group) {
		return nil
	}
	switch group[0].Kind {
	case TokenPunctuation:
		switch group[0].Text {
		case "#":
			return p.parseHeading(group)
		case "-":
			return p.parseList(group, false)
		}
	case TokenOrderedListMarker:
		return p.parseList(group, true)
	case TokenCodeFence:
		return p.parseCodeBlock(group)
	case TokenThematicBreak:
		if len(group) == 2 && group[1].Kind == TokenNewline {
			return &ThematicBreak{}
		}
	case TokenBlockQuoteMarker:
		return p.parseBlockQuote(group)
	case TokenTableCellSeparator:
		if t := p.parseTable(group); t != nil {
			return t
		}
	case TokenRawHTMLTag:
		return &RawHTML{Content: sourceLine(group, p.tabSize)}
	}
	return &Paragraph{Content: p.ParseInline(group)}
}

func blankGroup(group []Token) bool {
	for _, t := range group {
		if t.Kind != TokenNewline {
			return false
		}
	}
	return true
}

// splitLines cuts a group back into lines; every line keeps its
// terminating Newline token.
func splitLines(group []Token) [][]Token {
	var lines [][]Token
	start := 0
	for i, t := range group {
		if t.Kind == TokenNewline {
			lines = append(lines, group[start:i+1])
			start = i + 1
		}
	}
	if start < len(group) {
		lines = append(lines, group[start:])
	}
	return lines
}

// parseHeading parses an ATX heading: a run of '#' followed by a space.
// A missing space ("#heading") keeps the group a paragraph.
func (p *Parser) parseHeading(group []Token) Block {
	level := 0
	for level < len(group) && group[level].Kind == TokenPunctuation && group[level].Text == "#" {
		level++
	}
	if level >= len(group) || group[level].Kind != TokenWhitespace {
		return &Paragraph{Content: p.ParseInline(group)}
	}
	return &Heading{Level: level, Content: p.ParseInline(group[level+1:])}
}

// parseCodeBlock collects the literal lines between the fences. The
// content is reconstructed token by token so it is never reinterpreted
// as Markdown; an unclosed fence runs to the end of the group.
func (p *Parser) parseCodeBlock(group []Token) Block {
	lines := splitLines(group)
	var language string
	if first := lines[0]; len(first) > 1 && first[1].Kind == TokenText {
		language = first[1].Text
	}
	var body []string
	for _, line := range lines[1:] {
		if leadKind(line) == TokenCodeFence {
			break
		}
		body = append(body, sourceLine(line, p.tabSize))
	}
	return &CodeBlock{Language: language, Lines: body}
}

// parseBlockQuote strips one quote marker (and one space after it) per
// line, then re-groups and re-parses the dedented content.
func (p *Parser) parseBlockQuote(group []Token) Block {
	var inner [][]Token
	for _, line := range splitLines(group) {
		if leadKind(line) == TokenBlockQuoteMarker {
			line = line[1:]
			if len(line) > 0 && line[0].Kind == TokenWhitespace {
				line = line[1:]
			}
		}
		inner = append(inner, line)
	}
	return &BlockQuote{Content: p.ParseBlocks(p.GroupLines(inner))}
}

// parseList parses a dash or ordered list group. A run of tab-indented
// lines after an item is de-tabbed one level and re-parsed as a nested
// list, appended as one extra item.
func (p *Parser) parseList(group []Token, ordered bool) Block {
	lines := splitLines(group)
	var items []*ListItem
	for i := 0; i < len(lines); {
		line := lines[i]
		if listMarkerLine(line, ordered) {
			items = append(items, &ListItem{Content: p.parseBlock(line[2:])})
			i++
			var nested []Token
			nestedOrdered := false
			for i < len(lines) && leadKind(lines[i]) == TokenTab {
				detabbed := lines[i][1:]
				if len(nested) == 0 {
					nestedOrdered = leadKind(detabbed) == TokenOrderedListMarker
				}
				nested = append(nested, detabbed...)
				i++
			}
			if len(nested) > 0 {
				items = append(items, &ListItem{Content: p.parseList(nested, nestedOrdered)})
			}
			continue
		}
		i++
	}
	if ordered {
		return &OrderedList{Items: items}
	}
	return &UnorderedList{Items: items}
}

func listMarkerLine(line []Token, ordered bool) bool {
	if len(line) < 2 || line[1].Kind != TokenWhitespace {
		return false
	}
	if ordered {
		return line[0].Kind == TokenOrderedListMarker
	}
	return line[0].Kind == TokenPunctuation && line[0].Text == "-"
}

// parseTable builds a pipe table from a group whose second line is a
// valid alignment row. It returns nil when the shape does not hold, so
// the group degrades to a paragraph.
func (p *Parser) parseTable(group []Token) *Table {
	lines := splitLines(group)
	if len(lines) < 2 {
		return nil
	}
	aligns, ok := p.parseAlignmentRow(lines[1])
	if !ok {
		return nil
	}
	alignFor := func(col int) Alignment {
		if col < len(aligns) {
			return aligns[col]
		}
		return AlignNone
	}

	var headers []*TableCell
	for col, cell := range rowCells(lines[0]) {
		headers = append(headers, &TableCell{
			Content:   p.ParseInline(cell),
			Alignment: alignFor(col),
			IsHeader:  true,
		})
	}
	var body [][]*TableCell
	for _, line := range lines[2:] {
		var row []*TableCell
		for col, cell := range rowCells(line) {
			row = append(row, &TableCell{
				Content:   p.ParseInline(cell),
				Alignment: alignFor(col),
			})
		}
		if row != nil {
			body = append(body, row)
		}
	}
	return &Table{Headers: headers, Body: body}
}

// rowCells splits a table row on its pipes. The fragments before the
// first pipe and after the last one sit outside the table and are
// dropped; interior empty fragments are real empty cells.
func rowCells(line []Token) [][]Token {
	var cells [][]Token
	start := 0
	for i, t := range line {
		if t.Kind == TokenTableCellSeparator {
			cells = append(cells, line[start:i])
			start = i + 1
		}
	}
	cells = append(cells, line[start:])
	if len(cells) <= 2 {
		return nil
	}
	return cells[1 : len(cells)-1]
}

// parseAlignmentRow validates ":--"-style cells: optional colons around
// one or more dashes, nothing else.
func (p *Parser) parseAlignmentRow(line []Token) ([]Alignment, bool) {
	cells := rowCells(line)
	if cells == nil {
		return nil, false
	}
	aligns := make([]Alignment, 0, len(cells))
	for _, cell := range cells {
		spec := strings.TrimSpace(sourceLine(cell, p.tabSize))
		left := strings.HasPrefix(spec, ":")
		right := strings.HasSuffix(spec, ":") && len(spec) > 1
		dashes := strings.TrimSuffix(strings.TrimPrefix(spec, ":"), ":")
		if dashes == "" || strings.Count(dashes, "-") != len(dashes) {
			return nil, false
		}
		switch {
		case left && right:
			aligns = append(aligns, AlignCenter)
		case left:
			aligns = append(aligns, AlignLeft)
		case right:
			aligns = append(aligns, AlignRight)
		default:
			aligns = append(aligns, AlignNone)
		}
	}
	return aligns, true
}
