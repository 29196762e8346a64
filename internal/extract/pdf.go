// Package extract converts document payloads into plain text.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/lectern-io/lectern/internal/domain"
)

// PDF extracts plain text from PDF payloads page by page.
type PDF struct{}

// NewPDF creates a PDF text extractor.
func NewPDF() *PDF { return &PDF{} }

// Text concatenates the extracted text of every page, separated by a
// single space. A page that fails to extract contributes nothing; the
// call fails only when the payload is not a parseable PDF container,
// with an error wrapping domain.ErrInvalidDocument.
func (e *PDF) Text(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty payload: %w", domain.ErrInvalidDocument)
	}

	// The parser panics on certain malformed xref tables; those payloads
	// are unparseable containers like any other.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parse pdf: %v: %w", r, domain.ErrInvalidDocument)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %v: %w", err, domain.ErrInvalidDocument)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := extractPageText(page)
		if pageErr != nil || pageText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(pageText)
	}

	return strings.TrimSpace(sb.String()), nil
}

func extractPageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("extract page: %v", r)
		}
	}()
	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
