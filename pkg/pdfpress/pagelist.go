package pdfpress

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxPageListLength caps the number of pages a page list may expand to.
const MaxPageListLength = 100000

// ParsePageList parses a comma or space separated list of 1-based page
// numbers and inclusive ranges, e.g. "1,3,5" or "2-4 7".
// An empty string yields an empty list. Numbers are not deduplicated nor
// checked against any document, but lists expanding to more than
// MaxPageListLength pages are rejected before anything is allocated.
//
// Example:
//
//	ParsePageList("1, 4-6") // [1 4 5 6]
func ParsePageList(s string) ([]int, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	pages := make([]int, 0, len(fields))

	for _, field := range fields {
		from, to, isRange := strings.Cut(field, "-")
		if !isRange {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid page %q", ErrInvalidArgument, field)
			}
			if len(pages) >= MaxPageListLength {
				return nil, fmt.Errorf("%w: page list longer than %d pages", ErrInvalidArgument, MaxPageListLength)
			}
			pages = append(pages, n)
			continue
		}

		a, err := strconv.Atoi(from)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid range start in %q", ErrInvalidArgument, field)
		}
		b, err := strconv.Atoi(to)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid range end in %q", ErrInvalidArgument, field)
		}

		if b >= a && b-a >= MaxPageListLength-len(pages) {
			return nil, fmt.Errorf("%w: range %q longer than %d pages", ErrInvalidArgument, field, MaxPageListLength)
		}

		for n := a; n <= b; n++ {
			pages = append(pages, n)
		}
	}

	return pages, nil
}
