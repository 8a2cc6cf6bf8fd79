package pdfpress

import (
	"math"
	"testing"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{TmpDir: t.TempDir(), ValidationMode: "relaxed"}
}

func pageWidths(t *testing.T, path string) []float64 {
	t.Helper()

	doc, err := Open(path, testConfig(t))
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer doc.Close()

	dims, err := doc.PageSizes()
	if err != nil {
		t.Fatalf("failed to read page sizes of %s: %v", path, err)
	}

	widths := make([]float64, len(dims))
	for i, d := range dims {
		widths[i] = math.Round(d.Width)
	}
	return widths
}
