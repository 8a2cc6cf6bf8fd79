package pdfpress

import "fmt"

// Source names the document an operation works on: either an already open
// Document or a path to open. Exactly one of the two must be set.
type Source struct {
	Document *Document
	Path     string
}

func FromDocument(doc *Document) Source {
	return Source{Document: doc}
}

func FromPath(path string) Source {
	return Source{Path: path}
}

// Resolve returns a usable Document for src. When the document was opened from
// a path, owned is true and the caller is responsible for closing it.
func Resolve(src Source, cfg Config) (doc *Document, owned bool, err error) {
	switch {
	case src.Document != nil && src.Path == "":
		if src.Document.ctx == nil {
			return nil, false, ErrDocumentClosed
		}
		return src.Document, false, nil
	case src.Document == nil && src.Path != "":
		doc, err := Open(src.Path, cfg)
		if err != nil {
			return nil, false, err
		}
		return doc, true, nil
	default:
		return nil, false, fmt.Errorf("%w: document or path must be specified, not both", ErrInvalidArgument)
	}
}
