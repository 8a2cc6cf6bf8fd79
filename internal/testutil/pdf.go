// Package testutil builds small PDF fixtures for tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

const PageHeight = 300

// PageWidth gives every page of a numbered fixture a distinct width so pages
// can be told apart after being moved between documents.
func PageWidth(page int) float64 {
	return float64(100 + page*10)
}

// Widths returns the widths of the given numbered pages.
func Widths(pages ...int) []float64 {
	widths := make([]float64, len(pages))
	for i, p := range pages {
		widths[i] = PageWidth(p)
	}
	return widths
}

func NumberedWidths(from, to int) []float64 {
	widths := []float64{}
	for p := from; p <= to; p++ {
		widths = append(widths, PageWidth(p))
	}
	return widths
}

func SameWidths(n int, width float64) []float64 {
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = width
	}
	return widths
}

// WritePDF writes a minimal PDF with one page per width to dir/name and returns its path.
func WritePDF(t testing.TB, dir, name string, widths ...float64) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, BuildPDF(widths...), 0644); err != nil {
		t.Fatalf("failed to write test pdf: %v", err)
	}
	return path
}

// WriteNumberedPDF writes a document whose page k has width PageWidth(k).
func WriteNumberedPDF(t testing.TB, dir, name string, pageCount int) string {
	t.Helper()
	return WritePDF(t, dir, name, NumberedWidths(1, pageCount)...)
}

// BuildPDF returns the bytes of a PDF with one page per width, all PageHeight high.
func BuildPDF(widths ...float64) []byte {
	var buf bytes.Buffer
	offsets := []int{}
	addObject := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := ""
	for i := range widths {
		kids += fmt.Sprintf("%d 0 R ", 3+2*i)
	}

	addObject("<< /Type /Catalog /Pages 2 0 R >>")
	addObject(fmt.Sprintf("<< /Type /Pages /Kids [ %s] /Count %d >>", kids, len(widths)))
	for i, w := range widths {
		content := fmt.Sprintf("0 0 m %d %d l S", int(w), PageHeight)
		addObject(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << >> /Contents %d 0 R >>", int(w), PageHeight, 4+2*i))
		addObject(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}
