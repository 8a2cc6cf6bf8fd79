package processor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeakMengs/PdfPress/internal/constant"
	"github.com/SeakMengs/PdfPress/pkg/pdfpress"
	"go.uber.org/zap"
)

// Request describes one page operation on local files, as received by the api or the queue.
type Request struct {
	Operation constant.Operation
	// Local input files, more than one only for merge
	Inputs []string
	// Page list for delpages, e.g. "2,4-6"
	Pages string
	// Pages per output document for split_by_pages, DefaultPagesPerDoc when 0
	PagesPerDoc int
	// Directory outputs are written to
	OutDir string
	// File name of the single output of 2in1, merge and delpages
	OutName string
}

var errUnsupportedOperation = fmt.Errorf("%w: unsupported operation", pdfpress.ErrInvalidArgument)

type Processor struct {
	composer *pdfpress.Composer
	logger   *zap.SugaredLogger
}

func NewProcessor(cfg pdfpress.Config, logger *zap.SugaredLogger) *Processor {
	// For unit test
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Processor{
		composer: pdfpress.NewComposer(cfg, logger),
		logger:   logger,
	}
}

// Run performs req and returns the written files in order.
func (p *Processor) Run(req Request) ([]string, error) {
	if !req.Operation.Valid() {
		return nil, fmt.Errorf("%w: unknown operation %q", pdfpress.ErrInvalidArgument, req.Operation)
	}

	if len(req.Inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one input file is required", pdfpress.ErrInvalidArgument)
	}

	if req.Operation != constant.OperationMerge && len(req.Inputs) != 1 {
		return nil, fmt.Errorf("%w: %s takes exactly one input file, got %d", pdfpress.ErrInvalidArgument, req.Operation, len(req.Inputs))
	}

	outName := req.OutName
	if outName == "" {
		outName = pdfpress.DefaultOutputFile
	}
	outFile := filepath.Join(req.OutDir, outName)

	if req.OutDir != "" {
		if err := os.MkdirAll(req.OutDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	p.logger.Debugf("Running %s on %v", req.Operation, req.Inputs)
	return p.dispatch(req, outFile)
}

func (p *Processor) dispatch(req Request, outFile string) ([]string, error) {
	switch req.Operation {
	case constant.Operation2In1:
		if err := p.composer.Compose2In1(pdfpress.FromPath(req.Inputs[0]), outFile); err != nil {
			return nil, err
		}
		return []string{outFile}, nil
	case constant.OperationMerge:
		if err := p.composer.Merge(nil, req.Inputs, outFile); err != nil {
			return nil, err
		}
		return []string{outFile}, nil
	case constant.OperationDeletePages:
		pages, err := pdfpress.ParsePageList(req.Pages)
		if err != nil {
			return nil, err
		}
		if err := p.composer.DeletePages(pdfpress.FromPath(req.Inputs[0]), pages, outFile); err != nil {
			return nil, err
		}
		return []string{outFile}, nil
	case constant.OperationSplit:
		return p.composer.Split(req.Inputs[0], req.OutDir)
	case constant.OperationSplitByPages:
		pagesPerDoc := req.PagesPerDoc
		if pagesPerDoc == 0 {
			pagesPerDoc = pdfpress.DefaultPagesPerDoc
		}
		return p.composer.SplitByPages(req.Inputs[0], pagesPerDoc, req.OutDir)
	}

	return nil, fmt.Errorf("%w %q", errUnsupportedOperation, req.Operation)
}

// IsClientError reports whether err was caused by the request rather than by
// the engine or the environment.
func IsClientError(err error) bool {
	for _, target := range []error{
		pdfpress.ErrInvalidArgument,
		pdfpress.ErrInvalidPageList,
		pdfpress.ErrPageOutOfRange,
		pdfpress.ErrNoPages,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Info reports the page count and page sizes of input.
func (p *Processor) Info(input string) (*pdfpress.DocumentInfo, error) {
	return pdfpress.Info(pdfpress.FromPath(input), p.composer.Cfg)
}
