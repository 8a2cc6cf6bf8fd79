package queue

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/SeakMengs/PdfPress/internal/processor"
	"github.com/SeakMengs/PdfPress/internal/util"
)

// HandlePdfJob downloads the job inputs, runs the operation and uploads the
// outputs under jobs/{id}/. Request errors are not retried.
func HandlePdfJob(ctx context.Context, jobPayload PdfJobPayload, app *ConsumerContext) (bool, error) {
	var queueWaitDuration string
	createdAtTime, err := time.Parse(time.RFC3339, jobPayload.CreatedAt)
	if err != nil {
		queueWaitDuration = "unknown"
	} else {
		queueWaitDuration = time.Since(createdAtTime).String()
	}

	workDir, err := util.MkdirTemp("pdfpress-job-*")
	if err != nil {
		return true, fmt.Errorf("failed to create job directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	inputs := make([]string, 0, len(jobPayload.Inputs))
	for i, key := range jobPayload.Inputs {
		// one directory per input, merge may list objects sharing a base name
		localPath := filepath.Join(workDir, "in", strconv.Itoa(i), util.SanitizeFileName(path.Base(key)))
		if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
			return true, err
		}

		if err := app.Storage.Download(ctx, key, localPath); err != nil {
			return true, fmt.Errorf("failed to download %s: %w", key, err)
		}
		inputs = append(inputs, localPath)
	}

	outName := ""
	if jobPayload.Output != "" {
		outName = util.SanitizeFileName(jobPayload.Output)
	}

	nowProcess := time.Now()
	outFiles, err := app.Processor.Run(processor.Request{
		Operation:   jobPayload.Operation,
		Inputs:      inputs,
		Pages:       jobPayload.Pages,
		PagesPerDoc: jobPayload.NPages,
		OutDir:      filepath.Join(workDir, "out"),
		OutName:     outName,
	})
	if err != nil {
		return !processor.IsClientError(err), fmt.Errorf("failed to run %s: %w", jobPayload.Operation, err)
	}
	thenProcess := time.Now()

	keys, err := app.Storage.UploadAll(ctx, outFiles, util.GetJobDirectoryPath(jobPayload.ID))
	if err != nil {
		return true, fmt.Errorf("failed to upload outputs: %w", err)
	}

	app.Logger.Infof(
		"Job %s: %s wrote %d file(s) in %s, upload in %s, waited in queue %s: %v",
		jobPayload.ID,
		jobPayload.Operation,
		len(keys),
		thenProcess.Sub(nowProcess).String(),
		time.Since(thenProcess).String(),
		queueWaitDuration,
		keys,
	)
	return false, nil
}
