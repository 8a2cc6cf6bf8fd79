package util

import (
	"github.com/SeakMengs/PdfPress/internal/config"
	"github.com/SeakMengs/PdfPress/pkg/pdfpress"
)

func GetAppName() string {
	return "PdfPress"
}

// NewPdfConfig maps the application config onto the library config.
func NewPdfConfig(cfg config.Config) pdfpress.Config {
	return pdfpress.Config{
		TmpDir:         cfg.PDF.TMP_DIR,
		ValidationMode: cfg.PDF.VALIDATION_MODE,
	}
}

func DetermineWorkers(jobCount int, maxWorkers int) int {
	if jobCount <= 0 {
		return max(maxWorkers, 1)
	}

	return min(max(maxWorkers, 1), jobCount)
}
