package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CollapsesHorizontalWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("a \t b\t\tc"))
}

func TestNormalize_PreservesNewlines(t *testing.T) {
	assert.Equal(t, "line one\nline two", Normalize("line one  \nline two"))
}

func TestNormalize_TrimsEdges(t *testing.T) {
	assert.Equal(t, "resume", Normalize("  \t resume \n "))
}

func TestNormalize_AppliesNFKC(t *testing.T) {
	// Fullwidth letters and the ﬁ ligature decompose to plain ASCII
	assert.Equal(t, "ABC", Normalize("ＡＢＣ"))
	assert.Equal(t, "fit", Normalize("ﬁt"))
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}
