package util

import (
	"testing"

	"github.com/SeakMengs/PdfPress/internal/config"
)

func TestDetermineWorkers(t *testing.T) {
	tests := []struct {
		jobCount   int
		maxWorkers int
		expected   int
	}{
		{0, 3, 3},
		{1, 3, 1},
		{10, 3, 3},
		{5, 0, 1},
		{0, -2, 1},
	}

	for _, tt := range tests {
		if got := DetermineWorkers(tt.jobCount, tt.maxWorkers); got != tt.expected {
			t.Errorf("DetermineWorkers(%d, %d) = %d, expected %d", tt.jobCount, tt.maxWorkers, got, tt.expected)
		}
	}
}

func TestNewPdfConfig(t *testing.T) {
	cfg := config.Config{PDF: config.PDFConfig{TMP_DIR: "/tmp/x", VALIDATION_MODE: "strict"}}

	pdfCfg := NewPdfConfig(cfg)
	if pdfCfg.TmpDir != "/tmp/x" || pdfCfg.ValidationMode != "strict" {
		t.Errorf("unexpected pdf config %+v", pdfCfg)
	}
}
