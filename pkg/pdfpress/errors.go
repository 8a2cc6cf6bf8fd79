package pdfpress

import "errors"

var (
	// ErrInvalidArgument is returned when an operation receives arguments of the wrong shape,
	// e.g. a Source with neither or both of Document and Path set.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidPageList is returned by DeletePages when there is nothing to delete.
	// Callers treat it as a user error and skip writing output.
	ErrInvalidPageList = errors.New("invalid page list")
	// ErrPageOutOfRange is returned when a page number falls outside 1..PageCount.
	ErrPageOutOfRange = errors.New("page out of range")
	// ErrNoPages is returned when an operation would read from or write a document without pages,
	// e.g. deleting every page.
	ErrNoPages = errors.New("document has no pages")
	// ErrDocumentClosed is returned by Document methods called after Close.
	ErrDocumentClosed = errors.New("document is closed")
)
