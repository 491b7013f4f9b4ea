package wrap

import "unicode"

// Word wraps at whitespace and hyphen boundaries. Whitespace is preserved,
// so concatenating the display lines still reproduces the input; a word is
// split mid-way only when it alone exceeds the limit.
type Word struct{}

// Wrap implements Strategy.
func (Word) Wrap(line []rune, limit int) [][]rune {
	if len(line) <= limit {
		return [][]rune{line}
	}

	var chunks [][]rune
	var cur []rune
	for _, tok := range tokenize(line) {
		switch {
		case len(cur)+len(tok) <= limit:
			cur = append(cur, tok...)
		case len(tok) <= limit:
			chunks = append(chunks, cur)
			cur = append([]rune(nil), tok...)
		default:
			// The token alone exceeds the limit; hard-split it.
			if len(cur) > 0 {
				chunks = append(chunks, cur)
			}
			for len(tok) > limit {
				chunks = append(chunks, tok[:limit])
				tok = tok[limit:]
			}
			cur = append([]rune(nil), tok...)
		}
	}
	if len(cur) > 0 || len(chunks) == 0 {
		chunks = append(chunks, cur)
	}
	return chunks
}

// tokenize splits a line into indivisible units: runs of whitespace, and
// word fragments that end at a hyphen or before whitespace.
func tokenize(line []rune) [][]rune {
	var toks [][]rune
	i := 0
	for i < len(line) {
		j := i
		if unicode.IsSpace(line[i]) {
			for j < len(line) && unicode.IsSpace(line[j]) {
				j++
			}
		} else {
			for j < len(line) && !unicode.IsSpace(line[j]) {
				j++
				if line[j-1] == '-' {
					break
				}
			}
		}
		toks = append(toks, line[i:j])
		i = j
	}
	return toks
}
