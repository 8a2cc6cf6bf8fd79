package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func GetTempDir() string {
	return fmt.Sprintf("%s/pdfpress", os.TempDir())
}

func MkdirTemp(pattern string) (string, error) {
	tempDir := GetTempDir()
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	return os.MkdirTemp(tempDir, pattern)
}

// Example output for "/tmp/report.pdf": "report"
func FileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// SanitizeFileName keeps only the base name of an uploaded file, so a client
// supplied name cannot escape the directory it is written to.
func SanitizeFileName(name string) string {
	base := filepath.Base(filepath.Clean("/" + strings.ReplaceAll(name, "\\", "/")))
	if base == "/" || base == "." || base == "" {
		return "file.pdf"
	}
	return base
}
