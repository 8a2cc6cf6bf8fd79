package controller

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/SeakMengs/PdfPress/internal/constant"
	"github.com/SeakMengs/PdfPress/internal/processor"
	"github.com/SeakMengs/PdfPress/internal/util"
	"github.com/gin-gonic/gin"
)

type PdfController struct {
	*baseController
}

// run saves the uploads, runs req on them and returns the outputs with the
// working directory the caller must remove.
func (pc PdfController) run(ctx *gin.Context, files []*multipart.FileHeader, req processor.Request) ([]string, string, bool) {
	workDir, err := util.MkdirTemp("pdfpress-api-*")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create temp directory", util.GenerateErrorMessages(err), nil)
		return nil, "", false
	}

	inputs, err := saveUploads(ctx, files, workDir)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save uploaded files", util.GenerateErrorMessages(err, "files"), nil)
		return nil, workDir, false
	}

	req.Inputs = inputs
	req.OutDir = filepath.Join(workDir, "out")

	outFiles, err := pc.app.Processor.Run(req)
	if err != nil {
		pc.responseProcessError(ctx, req.Operation, err)
		return nil, workDir, false
	}

	return outFiles, workDir, true
}

func (pc PdfController) responseProcessError(ctx *gin.Context, operation constant.Operation, err error) {
	if processor.IsClientError(err) {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	pc.app.Logger.Errorf("Failed to run %s: %v", operation, err)
	util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to process pdf", util.GenerateErrorMessages(err, "files"), nil)
}

func (pc PdfController) single(ctx *gin.Context, files []*multipart.FileHeader, req processor.Request) {
	outFiles, workDir, ok := pc.run(ctx, files, req)
	if workDir != "" {
		defer os.RemoveAll(workDir)
	}
	if !ok {
		return
	}

	ctx.FileAttachment(outFiles[0], filepath.Base(outFiles[0]))
}

// zipped answers with every output bundled into {stem}.zip, stem taken from the upload.
func (pc PdfController) zipped(ctx *gin.Context, files []*multipart.FileHeader, req processor.Request) {
	outFiles, workDir, ok := pc.run(ctx, files, req)
	if workDir != "" {
		defer os.RemoveAll(workDir)
	}
	if !ok {
		return
	}

	zipName := util.FileStem(util.SanitizeFileName(files[0].Filename)) + ".zip"
	zipPath := filepath.Join(workDir, zipName)
	if err := util.ZipFiles(outFiles, zipPath); err != nil {
		pc.app.Logger.Errorf("Failed to zip outputs: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to zip pdf files", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.FileAttachment(zipPath, zipName)
}

func (pc PdfController) Compose2In1(ctx *gin.Context) {
	files, ok := pc.bindForm(ctx, nil)
	if !ok {
		return
	}

	pc.single(ctx, files, processor.Request{Operation: constant.Operation2In1})
}

func (pc PdfController) Merge(ctx *gin.Context) {
	files, ok := pc.bindForm(ctx, nil)
	if !ok {
		return
	}

	pc.single(ctx, files, processor.Request{Operation: constant.OperationMerge})
}

func (pc PdfController) DeletePages(ctx *gin.Context) {
	type Request struct {
		Pages string `form:"pages" binding:"required,strNotEmpty,pageList"`
	}
	var body Request

	files, ok := pc.bindForm(ctx, &body)
	if !ok {
		return
	}

	pc.single(ctx, files, processor.Request{Operation: constant.OperationDeletePages, Pages: body.Pages})
}

func (pc PdfController) Split(ctx *gin.Context) {
	files, ok := pc.bindForm(ctx, nil)
	if !ok {
		return
	}

	pc.zipped(ctx, files, processor.Request{Operation: constant.OperationSplit})
}

func (pc PdfController) SplitByPages(ctx *gin.Context) {
	type Request struct {
		// 0 when omitted, the processor then uses the default block size
		NPages int `form:"npages" binding:"omitempty,gte=1"`
	}
	var body Request

	files, ok := pc.bindForm(ctx, &body)
	if !ok {
		return
	}

	pc.zipped(ctx, files, processor.Request{Operation: constant.OperationSplitByPages, PagesPerDoc: body.NPages})
}

func (pc PdfController) Info(ctx *gin.Context) {
	files, ok := pc.bindForm(ctx, nil)
	if !ok {
		return
	}

	if len(files) != 1 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(errors.New("info takes exactly one file"), "files"), nil)
		return
	}

	workDir, err := util.MkdirTemp("pdfpress-api-*")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create temp directory", util.GenerateErrorMessages(err), nil)
		return
	}
	defer os.RemoveAll(workDir)

	inputs, err := saveUploads(ctx, files, workDir)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save uploaded files", util.GenerateErrorMessages(err, "files"), nil)
		return
	}

	info, err := pc.app.Processor.Info(inputs[0])
	if err != nil {
		pc.app.Logger.Errorf("Failed to read pdf info: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read pdf", util.GenerateErrorMessages(err, "files"), nil)
		return
	}

	util.ResponseSuccess(ctx, info)
}
