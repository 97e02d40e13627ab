// Package pdftext is the text-extraction collaborator: it turns PDF files
// into plain text for the pipeline, which never inspects document bytes
// itself.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPages caps processing for very large PDFs.
const maxPages = 100

// ExtractText extracts plain text from a PDF file, page by page. Pages that
// fail to decode are skipped; the error is returned only when no page
// yields text.
func ExtractText(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	var sb strings.Builder
	extracted := 0
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
		extracted++
	}

	if extracted == 0 {
		return "", pages, fmt.Errorf("no extractable text in %d pages", pages)
	}
	return sb.String(), pages, nil
}
