package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF extracts plain text from PDF documents.
type PDF struct{}

// Text concatenates the extracted text of each page in page order. The pdf
// library panics on some malformed inputs, so parsing is fenced with a
// recover that reports a ParseError instead.
func (PDF) Text(r io.ReaderAt, size int64) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &ParseError{Err: fmt.Errorf("pdf reader panic: %v", p)}
		}
	}()

	rd, rdErr := pdf.NewReader(r, size)
	if rdErr != nil {
		return "", &ParseError{Err: rdErr}
	}

	var b strings.Builder
	for i := 1; i <= rd.NumPage(); i++ {
		page := rd.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			// Unextractable pages contribute empty text, never an error.
			continue
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}
