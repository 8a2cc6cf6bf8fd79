package pdfpress

import (
	"errors"
	"io"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/SeakMengs/PdfPress/internal/testutil"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// n-up draws source page k as form /Fmk, placed by the cm matrix before it
var placedForm = regexp.MustCompile(`q (\S+) (\S+) (\S+) (\S+) (\S+) (\S+) cm /Fm(\d+) Do Q`)

type placement struct {
	page   int
	x      float64
	skewed bool
}

// placements lists the source pages drawn on every output page, in drawing order.
func placements(t *testing.T, path string) [][]placement {
	t.Helper()

	doc, err := Open(path, testConfig(t))
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer doc.Close()

	sheets := make([][]placement, doc.PageCount())
	for i := range sheets {
		r, err := pdfcpu.ExtractPageContent(doc.ctx, i+1)
		if err != nil {
			t.Fatalf("failed to read content of page %d: %v", i+1, err)
		}
		content, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("failed to read content of page %d: %v", i+1, err)
		}

		for _, m := range placedForm.FindAllStringSubmatch(string(content), -1) {
			b, _ := strconv.ParseFloat(m[2], 64)
			x, _ := strconv.ParseFloat(m[5], 64)
			page, _ := strconv.Atoi(m[7])
			sheets[i] = append(sheets[i], placement{page: page, x: x, skewed: b != 0})
		}
	}
	return sheets
}

func TestCompose2In1PageCount(t *testing.T) {
	for _, n := range []int{1, 2, 5, 6} {
		dir := t.TempDir()
		in := testutil.WritePDF(t, dir, "in.pdf", testutil.SameWidths(n, 200)...)
		out := filepath.Join(dir, "out.pdf")

		c := NewComposer(testConfig(t), nil)
		if err := c.Compose2In1(FromPath(in), out); err != nil {
			t.Fatalf("Compose2In1 with %d pages failed: %v", n, err)
		}

		doc, err := Open(out, testConfig(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := (n + 1) / 2; doc.PageCount() != want {
			t.Errorf("%d pages: expected %d output pages, got %d", n, want, doc.PageCount())
		}

		dim, err := doc.PageSize(1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(dim.Width-400) > 1 || math.Abs(dim.Height-testutil.PageHeight) > 1 {
			t.Errorf("expected 400x%d output page, got %.2fx%.2f", testutil.PageHeight, dim.Width, dim.Height)
		}
		doc.Close()
	}
}

func TestCompose2In1FromDocument(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)
	in := testutil.WritePDF(t, dir, "in.pdf", testutil.SameWidths(3, 250)...)
	out := filepath.Join(dir, "out.pdf")

	doc, err := Open(in, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Close()

	c := NewComposer(cfg, nil)
	if err := c.Compose2In1(FromDocument(doc), out); err != nil {
		t.Fatalf("Compose2In1 failed: %v", err)
	}

	if doc.PageCount() != 3 {
		t.Errorf("expected source to keep 3 pages, got %d", doc.PageCount())
	}
	if got := pageWidths(t, out); len(got) != 2 {
		t.Errorf("expected 2 output pages, got %d", len(got))
	}
}

func TestCompose2In1InvalidSource(t *testing.T) {
	c := NewComposer(testConfig(t), nil)
	err := c.Compose2In1(Source{}, filepath.Join(t.TempDir(), "out.pdf"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCompose2In1Layout(t *testing.T) {
	dir := t.TempDir()
	// page 1 sets the cell to 200x300, the others are narrower and get centered in their cell
	in := testutil.WritePDF(t, dir, "in.pdf", 200, 180, 190)
	out := filepath.Join(dir, "out.pdf")

	c := NewComposer(testConfig(t), nil)
	if err := c.Compose2In1(FromPath(in), out); err != nil {
		t.Fatalf("Compose2In1 failed: %v", err)
	}

	sheets := placements(t, out)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 output pages, got %d", len(sheets))
	}

	tests := []struct {
		sheet, page int
		minX, maxX  float64
	}{
		{sheet: 0, page: 1, minX: 0, maxX: 200},
		{sheet: 0, page: 2, minX: 200, maxX: 400},
		{sheet: 1, page: 3, minX: 0, maxX: 200},
	}

	for _, tt := range tests {
		found := false
		for _, p := range sheets[tt.sheet] {
			if p.page != tt.page {
				continue
			}
			found = true
			if p.skewed {
				t.Errorf("page %d is rotated", tt.page)
			}
			if p.x < tt.minX || p.x >= tt.maxX {
				t.Errorf("page %d placed at x=%.2f, expected within [%v, %v)", tt.page, p.x, tt.minX, tt.maxX)
			}
		}
		if !found {
			t.Errorf("page %d not drawn on output page %d, got %+v", tt.page, tt.sheet+1, sheets[tt.sheet])
		}
	}

	if len(sheets[0]) != 2 {
		t.Errorf("expected 2 pages on the first output page, got %+v", sheets[0])
	}
	// the odd last page leaves the right half empty
	if len(sheets[1]) != 1 {
		t.Errorf("expected only page 3 on the last output page, got %+v", sheets[1])
	}
}

func TestCompose2In1FromDocumentRepeatedly(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)
	doc, err := Open(testutil.WriteNumberedPDF(t, dir, "in.pdf", 3), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Close()

	c := NewComposer(cfg, nil)
	for _, name := range []string{"first.pdf", "second.pdf"} {
		out := filepath.Join(dir, name)
		if err := c.Compose2In1(FromDocument(doc), out); err != nil {
			t.Fatalf("Compose2In1 into %s failed: %v", name, err)
		}
		if got := pageWidths(t, out); len(got) != 2 {
			t.Errorf("%s: expected 2 output pages, got %d", name, len(got))
		}
	}
}
