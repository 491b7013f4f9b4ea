// Package wrap provides the soft line-wrapping strategies used by the
// editor core. A strategy partitions a single logical line (no newlines)
// into display lines of at most limit runes.
//
// Strategies are pure and total for any limit > 0. Two invariants hold for
// every implementation:
//
//   - The result is never empty: an empty line yields one empty display line.
//   - Concatenating the result reproduces the input exactly; no runes are
//     dropped or duplicated.
package wrap

// Strategy partitions a logical line into display lines.
type Strategy interface {
	// Wrap splits line into chunks of at most limit runes.
	Wrap(line []rune, limit int) [][]rune
}

// Greedy wraps by fixed-size chunking: limit-sized prefixes are taken while
// the remainder still exceeds limit, then the remainder (possibly empty)
// becomes the final display line. A line whose length is an exact multiple
// of limit produces no trailing empty chunk.
type Greedy struct{}

// Wrap implements Strategy.
func (Greedy) Wrap(line []rune, limit int) [][]rune {
	var chunks [][]rune
	for len(line) > limit {
		chunks = append(chunks, line[:limit])
		line = line[limit:]
	}
	return append(chunks, line)
}
