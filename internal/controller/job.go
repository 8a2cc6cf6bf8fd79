package controller

import (
	"errors"
	"net/http"
	"os"
	"path"
	"strconv"

	"github.com/SeakMengs/PdfPress/internal/constant"
	"github.com/SeakMengs/PdfPress/internal/queue"
	"github.com/SeakMengs/PdfPress/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobController struct {
	*baseController
}

// CreateJob uploads the files to the bucket and queues the operation for the
// consumer. Outputs appear under jobs/{id}/ once the job is done.
func (jc JobController) CreateJob(ctx *gin.Context) {
	type Request struct {
		Operation string `form:"operation" binding:"required,oneof=2in1 merge delpages split split_by_pages"`
		Pages     string `form:"pages" binding:"omitempty,pageList"`
		NPages    int    `form:"npages" binding:"omitempty,gte=1"`
		Output    string `form:"output" binding:"omitempty,strNotEmpty"`
	}
	var body Request

	if !jc.app.JobsEnabled() {
		util.ResponseFailed(ctx, http.StatusServiceUnavailable, "Jobs unavailable", util.GenerateErrorMessages(errors.New(ErrJobsNotConfigured), "jobs"), nil)
		return
	}

	files, ok := jc.bindForm(ctx, &body)
	if !ok {
		return
	}

	workDir, err := util.MkdirTemp("pdfpress-job-upload-*")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create temp directory", util.GenerateErrorMessages(err), nil)
		return
	}
	defer os.RemoveAll(workDir)

	localFiles, err := saveUploads(ctx, files, workDir)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save uploaded files", util.GenerateErrorMessages(err, "files"), nil)
		return
	}

	id := uuid.NewString()
	jobDir := util.GetJobDirectoryPath(id)

	inputs := make([]string, 0, len(localFiles))
	for i, f := range localFiles {
		keys, err := jc.app.Storage.UploadAll(ctx, []string{f}, path.Join(jobDir, "inputs", strconv.Itoa(i)))
		if err != nil {
			jc.app.Logger.Errorf("Failed to upload job input: %v", err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload files", util.GenerateErrorMessages(err, "files"), nil)
			return
		}
		inputs = append(inputs, keys...)
	}

	payload := queue.NewPdfJobPayload(id, constant.Operation(body.Operation), inputs, body.Output, body.Pages, body.NPages)
	if err := jc.app.Queue.PublishPdfJob(ctx, payload); err != nil {
		jc.app.Logger.Errorf("Failed to queue job %s: %v", id, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to queue job", util.GenerateErrorMessages(err), nil)
		return
	}

	jc.app.Logger.Infof("Queued %s job %s with %d input(s)", body.Operation, id, len(inputs))
	util.ResponseAccepted(ctx, gin.H{
		"id":               id,
		"operation":        body.Operation,
		"inputs":           inputs,
		"outputsDirectory": jobDir,
	})
}
