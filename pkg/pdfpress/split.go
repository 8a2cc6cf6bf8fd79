package pdfpress

import (
	"fmt"
	"path/filepath"
)

// Split writes every page of inFile to its own document named {stem}_p{page}.pdf.
// outDir defaults to the directory of inFile.
func (c *Composer) Split(inFile, outDir string) ([]string, error) {
	stem, dir, err := outputLocation(inFile, outDir)
	if err != nil {
		return nil, err
	}

	doc, err := Open(inFile, c.Cfg)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pageCount := doc.PageCount()
	outFiles := make([]string, 0, pageCount)

	for page := 1; page <= pageCount; page++ {
		outFile := filepath.Join(dir, fmt.Sprintf("%s_p%d.pdf", stem, page))
		if err := c.extractTo(doc, []int{page}, outFile); err != nil {
			return outFiles, err
		}

		outFiles = append(outFiles, outFile)
		c.logger.Infof("%d/%d  Saved: %s", page, pageCount, outFile)
	}

	return outFiles, nil
}

// SplitByPages writes consecutive blocks of pagesPerDoc pages of inFile to
// documents named {stem}_{n}.pdf, n starting at 1. The last block may be shorter.
func (c *Composer) SplitByPages(inFile string, pagesPerDoc int, outDir string) ([]string, error) {
	if pagesPerDoc < 1 {
		return nil, fmt.Errorf("%w: pages per document must be at least 1, got %d", ErrInvalidArgument, pagesPerDoc)
	}

	stem, dir, err := outputLocation(inFile, outDir)
	if err != nil {
		return nil, err
	}

	doc, err := Open(inFile, c.Cfg)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	blocks := PageBlocks(doc.PageCount(), pagesPerDoc)
	outFiles := make([]string, 0, len(blocks))

	for i, block := range blocks {
		outFile := filepath.Join(dir, fmt.Sprintf("%s_%d.pdf", stem, i+1))
		if err := c.extractTo(doc, block, outFile); err != nil {
			return outFiles, err
		}

		outFiles = append(outFiles, outFile)
		c.logger.Infof("Document %d (pages %d-%d): Saved: %s", i+1, block[0], block[len(block)-1], outFile)
	}

	return outFiles, nil
}

// PageBlocks partitions pages 1..pageCount into consecutive blocks of at most size pages.
func PageBlocks(pageCount, size int) [][]int {
	if size < 1 {
		return nil
	}

	blocks := make([][]int, 0, (pageCount+size-1)/size)
	for start := 1; start <= pageCount; start += size {
		end := min(start+size-1, pageCount)

		block := make([]int, 0, end-start+1)
		for p := start; p <= end; p++ {
			block = append(block, p)
		}
		blocks = append(blocks, block)
	}

	return blocks
}
