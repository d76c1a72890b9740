// Package pdftest builds small, valid PDF documents for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// newDocument lays out a document with one labeled page per page number
func newDocument(pages int) *gofpdf.Fpdf {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 24)
	for i := 1; i <= pages; i++ {
		doc.AddPage()
		doc.SetXY(20, 40)
		doc.Cell(0, 15, fmt.Sprintf("Page %d of %d", i, pages))
	}
	return doc
}

// Bytes returns a PDF document with the given number of pages.
func Bytes(pages int) []byte {
	var buf bytes.Buffer
	if err := newDocument(pages).Output(&buf); err != nil {
		panic(fmt.Sprintf("pdftest: building %d page PDF: %v", pages, err))
	}
	return buf.Bytes()
}

// Write stores a PDF with the given number of pages at dir/name and returns its path.
func Write(t testing.TB, dir, name string, pages int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := newDocument(pages).OutputFileAndClose(path); err != nil {
		t.Fatalf("writing test PDF: %v", err)
	}
	return path
}
