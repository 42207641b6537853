package ingestion

import (
	"os"
	"regexp"
	"strings"
)

var excessiveBlankLines = regexp.MustCompile(`\n\n\n+`)

// CleanText normalizes extracted text while preserving line structure:
// CRLF/CR become LF, trailing whitespace is trimmed per line, runs of blank
// lines collapse to one, and the whole text is trimmed.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// ExtractFile reads and extracts a resume document from disk, inferring the
// kind from the file extension.
func ExtractFile(path string) (*Document, error) {
	kind, err := KindForFilename(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Extract(data, kind)
}

// ReadText loads a plain-text file (e.g. a pasted job description saved to
// disk) and cleans it.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return CleanText(string(data)), nil
}
