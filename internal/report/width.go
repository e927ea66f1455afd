package report

// singleWidthLimit is the first code point counted as double width.
const singleWidthLimit = 127

// DisplayWidth returns the number of monospace cells s occupies:
// one per rune below U+007F and two for every other rune.
//
// Unlike East Asian Width tables, every non-ASCII rune counts as two cells,
// including narrow ones such as "é".
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r < singleWidthLimit {
			w++
		} else {
			w += 2
		}
	}
	return w
}
