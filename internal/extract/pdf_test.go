package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lectern-io/lectern/internal/domain"
)

func TestText_EmptyPayload(t *testing.T) {
	e := NewPDF()

	_, err := e.Text(nil)
	if !errors.Is(err, domain.ErrInvalidDocument) {
		t.Errorf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestText_GarbagePayload(t *testing.T) {
	e := NewPDF()

	_, err := e.Text([]byte("this is not a pdf at all, just plain text"))
	if !errors.Is(err, domain.ErrInvalidDocument) {
		t.Errorf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestText_TruncatedPayload(t *testing.T) {
	e := NewPDF()

	// A valid header with nothing behind it. The parser may error or
	// panic here; both must surface as ErrInvalidDocument.
	_, err := e.Text([]byte("%PDF-1.4\n1 0 obj\n<<"))
	if !errors.Is(err, domain.ErrInvalidDocument) {
		t.Errorf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestText_MinimalDocument(t *testing.T) {
	e := NewPDF()

	text, err := e.Text(minimalPDF(t, "Hello lectern"))
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if !strings.Contains(text, "Hello lectern") {
		t.Errorf("Text() = %q, want it to contain %q", text, "Hello lectern")
	}
}

func TestText_Deterministic(t *testing.T) {
	e := NewPDF()
	data := minimalPDF(t, "same input same output")

	first, err := e.Text(data)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	second, err := e.Text(data)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if first != second {
		t.Errorf("extraction not deterministic: %q vs %q", first, second)
	}
}

// minimalPDF builds a one-page PDF with the given text, computing the
// cross-reference table offsets so the file is structurally valid.
func minimalPDF(t *testing.T, text string) []byte {
	t.Helper()

	stream := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n",
		fmt.Sprintf("4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
		"5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, 0, len(objects))
	for _, obj := range objects {
		offsets = append(offsets, buf.Len())
		buf.WriteString(obj)
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f\r\n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n\r\n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefStart)

	return buf.Bytes()
}
