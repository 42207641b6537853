// Package ingestion extracts plain text from uploaded resume documents. The
// analysis core only ever sees already-extracted text; extraction failures
// are owned here. Multi-column layouts and scanned images degrade extraction
// quality, so downstream stages assume best-effort text, not completeness.
package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Document kinds accepted by Extract.
const (
	KindPDF  = "pdf"
	KindDOCX = "docx"
)

// Document is the result of extracting a resume file: its plain text and,
// for PDFs, the page count (DOCX page counts are layout-dependent, so a
// single page is assumed).
type Document struct {
	Text  string
	Pages int
}

// KindForFilename maps a file name to a document kind by extension.
func KindForFilename(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	default:
		return "", fmt.Errorf("unsupported file type %q: only .pdf and .docx are accepted", filepath.Ext(name))
	}
}

// Extract returns the cleaned plain text and page count of a document.
func Extract(data []byte, kind string) (*Document, error) {
	switch kind {
	case KindPDF:
		return extractPDF(data)
	case KindDOCX:
		return extractDOCX(data)
	default:
		return nil, fmt.Errorf("unsupported document kind %q", kind)
	}
}

// extractPDF concatenates the plain text of every page. Pages whose content
// cannot be decoded are skipped rather than failing the whole document.
func extractPDF(data []byte) (*Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return &Document{Text: CleanText(b.String()), Pages: pages}, nil
}

var (
	docxParagraph = regexp.MustCompile(`</w:p>`)
	docxTag       = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX pulls the document body and strips WordprocessingML markup,
// turning paragraph boundaries into newlines so sectionization still works.
func extractDOCX(data []byte) (*Document, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParagraph.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	return &Document{Text: CleanText(content), Pages: 1}, nil
}

// CandidateLevel derives a rough experience level from resume length.
func CandidateLevel(pages int) string {
	switch {
	case pages <= 1:
		return "Fresher"
	case pages == 2:
		return "Intermediate"
	default:
		return "Experienced"
	}
}
