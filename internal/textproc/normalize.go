// Package textproc provides the text normalization, tokenization, and
// sectionization stages of the resume analysis pipeline. All functions are
// pure: they never fail, and empty input yields empty output.
package textproc

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var horizontalWS = regexp.MustCompile(`[ \t]+`)

// Normalize applies Unicode NFKC normalization, collapses runs of horizontal
// whitespace to a single space, and trims leading/trailing whitespace.
// Newlines are preserved so that line-oriented stages can run afterwards.
func Normalize(text string) string {
	text = norm.NFKC.String(text)
	text = horizontalWS.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
