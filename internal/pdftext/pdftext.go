// Package pdftext implements the page-text collaborator with a pure-Go
// PDF reader. Pages without a text layer come back empty; OCR is out of
// scope.
package pdftext

import (
	"github.com/ledongthuc/pdf"
)

type Source struct{}

// PageCount returns the number of pages in the document.
func (Source) PageCount(path string) (int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return r.NumPage(), nil
}

// PageText returns the plain text of the zero-based page index, or "" when
// the page has no extractable text.
func (Source) PageText(path string, page int) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if page < 0 || page >= r.NumPage() {
		return "", nil
	}

	p := r.Page(page + 1) // reader pages are 1-based
	if p.V.IsNull() {
		return "", nil
	}

	text, err := p.GetPlainText(nil)
	if err != nil {
		// A page that cannot be decoded is treated the same as one with
		// no text layer; the filename fallback covers identity.
		return "", nil
	}
	return text, nil
}
