package pdfpress

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Compose2In1 writes a document where every page holds two consecutive source
// pages side by side. Output pages are twice as wide as the first source page
// and as high; later pages of a different size are scaled into the same cells.
func (c *Composer) Compose2In1(src Source, outFile string) error {
	doc, owned, err := Resolve(src, c.Cfg)
	if err != nil {
		return err
	}
	if owned {
		defer doc.Close()
	}

	if doc.PageCount() == 0 {
		return ErrNoPages
	}

	first, err := doc.PageSize(1)
	if err != nil {
		return err
	}

	inFile := src.Path
	if inFile == "" {
		tmp, err := c.saveTemp(doc)
		if err != nil {
			return err
		}
		defer os.Remove(tmp)
		inFile = tmp
	}

	// In pdfcpu n-up a landscape sheet with n=2 yields a 2x1 grid, so each cell is exactly w x h
	description := fmt.Sprintf("dimensions:%.2f %.2f, margin:0, border:off", first.Width*2, first.Height)
	nup, err := api.PDFNUpConfig(2, description, c.conf)
	if err != nil {
		return fmt.Errorf("failed to build 2-up configuration: %w", err)
	}

	if err := api.NUpFile([]string{inFile}, outFile, nil, nup, c.conf); err != nil {
		return fmt.Errorf("failed to compose 2in1: %w", err)
	}

	c.logger.Infof("Saved: %s", outFile)
	return nil
}
