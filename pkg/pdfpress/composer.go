package pdfpress

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// Composer performs page level restructuring of PDF documents.
// Every operation is a sequential file to file transform; nothing is kept
// between calls.
type Composer struct {
	Cfg    Config
	logger *zap.SugaredLogger
	conf   *model.Configuration
}

func NewComposer(cfg Config, logger *zap.SugaredLogger) *Composer {
	// For unit test
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Composer{
		Cfg:    cfg,
		logger: logger,
		conf:   cfg.pdfcpuConfig(),
	}
}

func (c *Composer) extractTo(doc *Document, pages []int, outFile string) error {
	return writeFile(outFile, func(w io.Writer) error {
		return doc.writePages(pages, w)
	})
}

func (c *Composer) saveTemp(doc *Document) (string, error) {
	if err := os.MkdirAll(c.Cfg.TmpDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create tmp directory: %w", err)
	}

	tmp, err := os.CreateTemp(c.Cfg.TmpDir, "pdfpress_*.pdf")
	if err != nil {
		return "", err
	}
	tmp.Close()

	if err := doc.Save(tmp.Name()); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}

// outputLocation returns the file stem of inFile and the directory outputs go to,
// creating outDir if needed.
func outputLocation(inFile, outDir string) (string, string, error) {
	stem := strings.TrimSuffix(filepath.Base(inFile), filepath.Ext(inFile))

	if outDir == "" {
		return stem, filepath.Dir(inFile), nil
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	return stem, outDir, nil
}
