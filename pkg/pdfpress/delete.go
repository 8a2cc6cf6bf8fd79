package pdfpress

import "fmt"

// DeletePages removes the given 1-based pages from the document named by src
// and saves the result to outFile. The resolved document is modified in place.
//
// Instead of deleting index by index, the pages to keep are selected into a
// new document, so the order of pages does not matter.
func (c *Composer) DeletePages(src Source, pages []int, outFile string) error {
	if len(pages) == 0 {
		return fmt.Errorf("%w: no pages to delete", ErrInvalidPageList)
	}

	doc, owned, err := Resolve(src, c.Cfg)
	if err != nil {
		return err
	}
	if owned {
		defer doc.Close()
	}

	keep, err := RemainingPages(doc.PageCount(), pages)
	if err != nil {
		return err
	}

	result, err := doc.Extract(keep)
	if err != nil {
		return err
	}
	doc.replace(result)

	if err := doc.Save(outFile); err != nil {
		return err
	}

	c.logger.Infof("Saved: %s", outFile)
	return nil
}

// RemainingPages returns, in order, the 1-based pages of a pageCount page
// document that are not listed in del.
func RemainingPages(pageCount int, del []int) ([]int, error) {
	remove := make(map[int]bool, len(del))
	for _, p := range del {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, p, pageCount)
		}
		remove[p] = true
	}

	keep := make([]int, 0, pageCount)
	for p := 1; p <= pageCount; p++ {
		if !remove[p] {
			keep = append(keep, p)
		}
	}

	if len(keep) == 0 {
		return nil, fmt.Errorf("%w: all %d pages selected for deletion", ErrNoPages, pageCount)
	}

	return keep, nil
}
