package pdfpress

import (
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/SeakMengs/PdfPress/internal/testutil"
)

func TestSplit(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteNumberedPDF(t, dir, "report.pdf", 4)
	outDir := filepath.Join(dir, "nested", "out")

	c := NewComposer(testConfig(t), nil)
	outFiles, err := c.Split(in, outDir)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	if len(outFiles) != 4 {
		t.Fatalf("expected 4 files, got %d", len(outFiles))
	}

	for i, f := range outFiles {
		page := i + 1
		if want := filepath.Join(outDir, fmt.Sprintf("report_p%d.pdf", page)); f != want {
			t.Errorf("expected file %s, got %s", want, f)
		}
		if got, want := pageWidths(t, f), testutil.Widths(page); !reflect.DeepEqual(got, want) {
			t.Errorf("file %d: expected page widths %v, got %v", page, want, got)
		}
	}
}

func TestSplitDefaultsToInputDir(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteNumberedPDF(t, dir, "doc.pdf", 2)

	c := NewComposer(testConfig(t), nil)
	outFiles, err := c.Split(in, "")
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	expected := []string{filepath.Join(dir, "doc_p1.pdf"), filepath.Join(dir, "doc_p2.pdf")}
	if !reflect.DeepEqual(outFiles, expected) {
		t.Errorf("expected %v, got %v", expected, outFiles)
	}
}

func TestSplitByPages(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteNumberedPDF(t, dir, "book.pdf", 5)

	c := NewComposer(testConfig(t), nil)
	outFiles, err := c.SplitByPages(in, 2, dir)
	if err != nil {
		t.Fatalf("SplitByPages failed: %v", err)
	}

	expected := [][]float64{testutil.Widths(1, 2), testutil.Widths(3, 4), testutil.Widths(5)}
	if len(outFiles) != len(expected) {
		t.Fatalf("expected %d files, got %d", len(expected), len(outFiles))
	}

	for i, f := range outFiles {
		if want := filepath.Join(dir, fmt.Sprintf("book_%d.pdf", i+1)); f != want {
			t.Errorf("expected file %s, got %s", want, f)
		}
		if got := pageWidths(t, f); !reflect.DeepEqual(got, expected[i]) {
			t.Errorf("file %d: expected page widths %v, got %v", i+1, expected[i], got)
		}
	}
}

func TestSplitByPagesInvalidCount(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteNumberedPDF(t, dir, "book.pdf", 2)

	c := NewComposer(testConfig(t), nil)
	if _, err := c.SplitByPages(in, 0, dir); err == nil {
		t.Errorf("expected an error for 0 pages per document")
	}
}

func TestPageBlocks(t *testing.T) {
	tests := []struct {
		name      string
		pageCount int
		size      int
		expected  []int
	}{
		{name: "Uneven", pageCount: 5, size: 2, expected: []int{2, 2, 1}},
		{name: "Exact", pageCount: 6, size: 3, expected: []int{3, 3}},
		{name: "Larger than document", pageCount: 4, size: 10, expected: []int{4}},
		{name: "Single pages", pageCount: 3, size: 1, expected: []int{1, 1, 1}},
		{name: "Empty document", pageCount: 0, size: 10, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := PageBlocks(tt.pageCount, tt.size)
			sizes := make([]int, len(blocks))
			next := 1
			for i, block := range blocks {
				sizes[i] = len(block)
				for _, p := range block {
					if p != next {
						t.Fatalf("expected page %d, got %d", next, p)
					}
					next++
				}
			}
			if !reflect.DeepEqual(sizes, tt.expected) {
				t.Errorf("expected block sizes %v, got %v", tt.expected, sizes)
			}
		})
	}
}
