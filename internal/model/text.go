package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText converts externally supplied text into the canonical form
// used by the report: invalid UTF-8 sequences are replaced with U+FFFD and
// the result is NFC-normalized so that composed and decomposed glyphs
// measure the same display width.
//
// It must be applied wherever text enters the system (problem titles,
// assignees, the report title) and nowhere else.
func NormalizeText(s string) string {
	if s == "" {
		return s
	}
	return norm.NFC.String(strings.ToValidUTF8(s, "�"))
}
