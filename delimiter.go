package rsmd

// delimiter tracks one emphasis run during inline parsing.
//
// tokenPos is the index of the run's token in the line; parsedPos is the
// index of its placeholder in the partially built inline slice. length
// shrinks as pairings consume delimiter characters; a run with length
// zero is spent.
type delimiter struct {
	ch        rune
	length    int
	tokenPos  int
	parsedPos int
	active    bool
	canOpen   bool
	canClose  bool
}

// classifyFlanking sets canOpen and canClose from the tokens adjacent to
// the run, per the CommonMark flanking rules. Underscore runs get the
// extra intraword restriction: they cannot open when right-flanking into
// a word, nor close when left-flanking out of one, unless punctuation
// sits on the relevant side.
func (d *delimiter) classifyFlanking(tokens []Token) {
	var before, after Token
	hasBefore := d.tokenPos > 0
	if hasBefore {
		before = tokens[d.tokenPos-1]
	}
	hasAfter := d.tokenPos+1 < len(tokens)
	if hasAfter {
		after = tokens[d.tokenPos+1]
	}

	followedByWhitespace := !hasAfter || isWhitespaceToken(after)
	followedByPunctuation := hasAfter && isPunctuationToken(after)
	precededByWhitespace := !hasBefore || isWhitespaceToken(before)
	precededByPunctuation := hasBefore && isPunctuationToken(before)

	leftFlanking := !followedByWhitespace &&
		(!followedByPunctuation || precededByWhitespace || precededByPunctuation)
	rightFlanking := !precededByWhitespace &&
		(!precededByPunctuation || followedByWhitespace || followedByPunctuation)

	if d.ch == '_' {
		d.canOpen = leftFlanking && (!rightFlanking || followedByPunctuation)
		d.canClose = rightFlanking && (!leftFlanking || precededByPunctuation)
	} else {
		d.canOpen = leftFlanking
		d.canClose = rightFlanking
	}
}
