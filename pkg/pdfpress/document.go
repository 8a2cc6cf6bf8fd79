package pdfpress

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Document is an ordered sequence of pages held in memory by pdfcpu.
//
// A pdfcpu context can be written only once, so the document keeps the bytes
// it was read from and every Write serializes a freshly read context. ctx
// answers page queries and is never written.
type Document struct {
	ctx  *model.Context
	raw  []byte
	conf *model.Configuration
}

// Open reads and validates the PDF at path. The file is not kept open.
func Open(path string, cfg Config) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}

	doc, err := fromBytes(raw, cfg.pdfcpuConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf %s: %w", path, err)
	}

	return doc, nil
}

// OpenReader reads and validates a PDF from rs. The reader is not closed by the document.
func OpenReader(rs io.ReadSeeker, cfg Config) (*Document, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind pdf reader: %w", err)
	}

	raw, err := io.ReadAll(rs)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}

	return fromBytes(raw, cfg.pdfcpuConfig())
}

func fromBytes(raw []byte, conf *model.Configuration) (*Document, error) {
	ctx, err := readContext(raw, conf)
	if err != nil {
		return nil, err
	}

	return &Document{ctx: ctx, raw: raw, conf: conf}, nil
}

// readContext parses raw into a validated and optimized context ready to be written.
func readContext(raw []byte, conf *model.Configuration) (*model.Context, error) {
	ctx, err := api.ReadContext(bytes.NewReader(raw), conf)
	if err != nil {
		return nil, err
	}

	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to validate pdf: %w", err)
	}

	if err := api.OptimizeContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to optimize pdf: %w", err)
	}

	return ctx, nil
}

func (d *Document) PageCount() int {
	if d == nil || d.ctx == nil {
		return 0
	}
	return d.ctx.PageCount
}

// PageSize returns the dimensions in points of the 1-based page pageNr.
func (d *Document) PageSize(pageNr int) (types.Dim, error) {
	dims, err := d.PageSizes()
	if err != nil {
		return types.Dim{}, err
	}

	if pageNr < 1 || pageNr > len(dims) {
		return types.Dim{}, fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, pageNr, len(dims))
	}

	return dims[pageNr-1], nil
}

func (d *Document) PageSizes() ([]types.Dim, error) {
	if d == nil || d.ctx == nil {
		return nil, ErrDocumentClosed
	}
	return d.ctx.PageDims()
}

// Extract builds a new document containing the given 1-based pages in the given order.
// The receiver is left untouched.
func (d *Document) Extract(pageNrs []int) (*Document, error) {
	// The extracted context has no page count or page table yet,
	// a write and re-read gives a complete document.
	var buf bytes.Buffer
	if err := d.writePages(pageNrs, &buf); err != nil {
		return nil, err
	}

	doc, err := fromBytes(buf.Bytes(), d.conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read extracted pages: %w", err)
	}

	return doc, nil
}

// writePages serializes the given 1-based pages, in order, as a new PDF to w.
func (d *Document) writePages(pageNrs []int, w io.Writer) error {
	if d == nil || d.ctx == nil {
		return ErrDocumentClosed
	}

	if len(pageNrs) == 0 {
		return ErrNoPages
	}

	for _, p := range pageNrs {
		if p < 1 || p > d.ctx.PageCount {
			return fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, p, d.ctx.PageCount)
		}
	}

	// extract from a private copy, AddPages rewrites the named destinations of its source
	src, err := readContext(d.raw, d.conf)
	if err != nil {
		return fmt.Errorf("failed to reload pdf: %w", err)
	}

	part, err := pdfcpu.ExtractPages(src, pageNrs, false)
	if err != nil {
		return fmt.Errorf("failed to extract pages: %w", err)
	}

	if err := api.WriteContext(part, w); err != nil {
		return fmt.Errorf("failed to write extracted pages: %w", err)
	}

	return nil
}

// Write serializes the document to w. It may be called any number of times.
func (d *Document) Write(w io.Writer) error {
	if d == nil || d.ctx == nil {
		return ErrDocumentClosed
	}

	ctx, err := readContext(d.raw, d.conf)
	if err != nil {
		return fmt.Errorf("failed to reload pdf: %w", err)
	}

	if err := api.WriteContext(ctx, w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}

	return nil
}

// Save writes the document to path, replacing any existing file.
func (d *Document) Save(path string) error {
	if d == nil || d.ctx == nil {
		return ErrDocumentClosed
	}

	return writeFile(path, d.Write)
}

// writeFile creates path and fills it with write, removing it again on failure.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write pdf %s: %w", path, err)
	}

	return f.Close()
}

// Close releases the in-memory document.
// Calling Close more than once is a no-op.
func (d *Document) Close() error {
	if d == nil {
		return nil
	}

	d.ctx = nil
	d.raw = nil
	return nil
}

// replace swaps the content of d for that of other, taking ownership of other.
func (d *Document) replace(other *Document) {
	d.ctx, d.raw, d.conf = other.ctx, other.raw, other.conf
	other.ctx, other.raw = nil, nil
}
