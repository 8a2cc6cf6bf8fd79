package controller

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	appcontext "github.com/SeakMengs/PdfPress/internal/app_context"
	"github.com/SeakMengs/PdfPress/internal/util"
	"github.com/gin-gonic/gin"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index *IndexController
	Pdf   *PdfController
	Job   *JobController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index: &IndexController{baseController: bc},
		Pdf:   &PdfController{baseController: bc},
		Job:   &JobController{baseController: bc},
	}
}

const (
	ErrFilesRequired     = "at least one pdf file is required in the files field"
	ErrRequestTooLarge   = "request body exceeds the upload limit of %d bytes"
	ErrJobsNotConfigured = "background jobs require minio and rabbitmq to be configured"
)

// bindForm binds the text fields of a multipart request into body and returns
// the uploaded files. It writes the error response itself and returns false
// on failure.
func (b *baseController) bindForm(ctx *gin.Context, body any) ([]*multipart.FileHeader, bool) {
	if body != nil {
		if err := ctx.ShouldBind(body); err != nil {
			b.responseBindError(ctx, err)
			return nil, false
		}
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		b.responseBindError(ctx, err)
		return nil, false
	}

	files := form.File["files"]
	if len(files) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(errors.New(ErrFilesRequired), "files"), nil)
		return nil, false
	}

	return files, true
}

func (b *baseController) responseBindError(ctx *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		util.ResponseFailed(ctx, http.StatusRequestEntityTooLarge, "Request too large", util.GenerateErrorMessages(fmt.Errorf(ErrRequestTooLarge, maxBytesErr.Limit), "files"), nil)
		return
	}

	b.app.Logger.Debugf("Invalid request: %v", err)
	util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err, map[string]string{
		"Pages":     "pages",
		"NPages":    "npages",
		"Operation": "operation",
		"Output":    "output",
	}), nil)
}

// saveUploads writes every uploaded file to its own directory under dir, in upload order.
func saveUploads(ctx *gin.Context, files []*multipart.FileHeader, dir string) ([]string, error) {
	paths := make([]string, 0, len(files))

	for i, fh := range files {
		// one directory per upload, clients may send several files with the same name
		p := filepath.Join(dir, "in", strconv.Itoa(i), util.SanitizeFileName(fh.Filename))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return nil, err
		}

		if err := ctx.SaveUploadedFile(fh, p); err != nil {
			return nil, fmt.Errorf("failed to save uploaded file %s: %w", fh.Filename, err)
		}
		paths = append(paths, p)
	}

	return paths, nil
}
