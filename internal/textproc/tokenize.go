package textproc

import (
	"sort"
	"strings"
	"unicode"
)

// minTokenLength filters out short tokens that carry little signal ("an",
// "of", two-letter abbreviations).
const minTokenLength = 3

// Tokenize lowercases the text, splits it on non-alphabetic boundaries, and
// returns the tokens that are purely alphabetic, at least minTokenLength runes
// long, and not English stop words. The result preserves document order and
// may contain duplicates.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < minTokenLength {
			continue
		}
		if stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// TokenSet returns the distinct tokens of the text as a set.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}

// SortedTokenSet returns the distinct tokens of the text in lexicographic
// order. Used where deterministic iteration matters (fuzzy candidate scans).
func SortedTokenSet(text string) []string {
	set := TokenSet(text)
	out := make([]string, 0, len(set))
	for tok := range set {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
