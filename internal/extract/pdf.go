// Package extract turns uploaded resume documents into plain text and
// scrapes contact details out of that text.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/hollis-cloud/resumerag/internal/domain"
)

// PDFText extracts plain text from a PDF document, pages in order,
// newline-joined. A document that yields no text at all is an extraction
// failure, not an empty success.
func PDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w: %w", err, domain.ErrExtractionFailed)
	}

	var pages []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}

	out := strings.TrimSpace(strings.Join(pages, "\n"))
	if out == "" {
		return "", fmt.Errorf("no text in document: %w", domain.ErrExtractionFailed)
	}
	return out, nil
}
