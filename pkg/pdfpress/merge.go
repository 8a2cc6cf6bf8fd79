package pdfpress

import (
	"fmt"
	"os"
	"slices"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merge concatenates base (optional) and the documents in inFiles, in list
// order, into outFile. base is copied and never modified.
func (c *Composer) Merge(base *Document, inFiles []string, outFile string) error {
	files := slices.Clone(inFiles)

	if base != nil {
		tmp, err := c.saveTemp(base)
		if err != nil {
			return err
		}
		defer os.Remove(tmp)
		files = append([]string{tmp}, files...)
	}

	switch len(files) {
	case 0:
		return fmt.Errorf("%w: nothing to merge", ErrInvalidArgument)
	case 1:
		// pdfcpu merges need at least two inputs, a single one is just re-written
		doc, err := Open(files[0], c.Cfg)
		if err != nil {
			return err
		}
		defer doc.Close()

		if err := doc.Save(outFile); err != nil {
			return err
		}
	default:
		if err := api.MergeCreateFile(files, outFile, false, c.conf); err != nil {
			return fmt.Errorf("failed to merge pdfs: %w", err)
		}
	}

	c.logger.Infof("Saved: %s", outFile)
	return nil
}
