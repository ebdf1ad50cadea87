package services

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFParserService extracts plain text from an uploaded resume PDF.
type PDFParserService interface {
	ExtractText(filePath string) (string, error)
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText reads every page and concatenates the text with newline
// separators. Pages that fail to decode are skipped; a document that yields
// no text at all is treated as unreadable.
func (p *pdfParserService) ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %v", ErrDocumentParse, err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text content found in PDF", ErrDocumentParse)
	}

	return text, nil
}

// CleanText collapses text to non-blank, trimmed lines rejoined with
// newlines. Whitespace normalization only.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
