package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SeakMengs/PdfPress/internal/config"
	"github.com/SeakMengs/PdfPress/internal/constant"
	"github.com/SeakMengs/PdfPress/internal/processor"
	"github.com/SeakMengs/PdfPress/internal/util"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ObjectStorage is the part of the bucket client a pdf job needs.
type ObjectStorage interface {
	Download(ctx context.Context, objectName, localPath string) error
	UploadAll(ctx context.Context, files []string, directoryPath string) ([]string, error)
}

type ConsumerContext struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Storage holds job inputs and receives job outputs.
	Storage ObjectStorage

	Processor *processor.Processor
}

type PdfJobPayload struct {
	ID        string             `json:"id" validate:"required,strNotEmpty"`
	Operation constant.Operation `json:"operation" validate:"required,oneof=2in1 merge delpages split split_by_pages"`
	// Object keys in the bucket, in merge order
	Inputs []string `json:"inputs" validate:"required,min=1,dive,strNotEmpty"`
	// File name of the single output of 2in1, merge and delpages
	Output    string `json:"output"`
	Pages     string `json:"pages" validate:"omitempty,pageList"`
	NPages    int    `json:"npages" validate:"gte=0"`
	CreatedAt string `json:"created_at"`
	Retry     int    `json:"retry" default:"0"`
}

var payloadValidator = func() *validator.Validate {
	v := validator.New()
	if err := util.RegisterCustomValidations(v); err != nil {
		panic(err)
	}
	return v
}()

func (p PdfJobPayload) Validate() error {
	if err := payloadValidator.Struct(p); err != nil {
		return errors.New(util.GenerateErrorMessagesAsString(err, map[string]string{
			"ID":        "id",
			"Operation": "operation",
			"Inputs":    "inputs",
			"Pages":     "pages",
			"NPages":    "npages",
		}))
	}
	return nil
}

// Return shouldRequeue, err
type PdfJobHandler func(ctx context.Context, jobPayload PdfJobPayload, app *ConsumerContext) (bool, error)

type jobOutcome int

const (
	jobDone jobOutcome = iota
	jobDropped
	jobRetry
)

var errEmptyBody = errors.New("empty message body")

// runPdfJob decodes one delivery, counts the attempt and runs handler on it.
// The returned payload carries the updated retry count.
func runPdfJob(ctx context.Context, body []byte, handler PdfJobHandler, app *ConsumerContext) (PdfJobPayload, jobOutcome, error) {
	var jobPayload PdfJobPayload

	if len(body) == 0 {
		return jobPayload, jobDropped, errEmptyBody
	}

	if err := json.Unmarshal(body, &jobPayload); err != nil {
		return jobPayload, jobDropped, fmt.Errorf("invalid payload: %w", err)
	}

	if err := jobPayload.Validate(); err != nil {
		return jobPayload, jobDropped, fmt.Errorf("invalid payload: %w", err)
	}

	jobPayload.Retry++
	if jobPayload.Retry > MAX_QUEUE_RETRY {
		return jobPayload, jobDropped, errors.New("max retries reached")
	}
	lastRetry := jobPayload.Retry == MAX_QUEUE_RETRY

	shouldRequeue, err := handler(ctx, jobPayload, app)
	if err != nil {
		if !shouldRequeue || lastRetry {
			return jobPayload, jobDropped, err
		}
		return jobPayload, jobRetry, err
	}

	return jobPayload, jobDone, nil
}

func (r *RabbitMQ) ConsumePdfJob(ctx context.Context, handler PdfJobHandler, maxWorker int, app *ConsumerContext) error {
	msgs, err := r.Consume(QueuePdfJob, maxWorker)
	if err != nil {
		return err
	}

	for i := range maxWorker {
		go func(workerID int) {
			for msg := range msgs {
				jobPayload, outcome, err := runPdfJob(ctx, msg.Body, handler, app)

				switch outcome {
				case jobDone:
					app.Logger.Infof("[Worker %d] Successfully processed %s job %s", workerID, jobPayload.Operation, jobPayload.ID)
					_ = r.Ack(msg)
				case jobDropped:
					app.Logger.Errorf("[Worker %d] Dropped job %s: %v", workerID, jobPayload.ID, err)
					// Remove the message from the queue
					_ = r.Nack(msg, false)
				case jobRetry:
					app.Logger.Warnf("[Worker %d] Handler error on job %s: %v", workerID, jobPayload.ID, err)

					payloadBytes, err := json.Marshal(jobPayload)
					if err != nil {
						app.Logger.Errorf("[Worker %d] Failed to marshal job payload: %v", workerID, err)
						_ = r.Nack(msg, false)
						continue
					}

					// requeue with updated retry count
					if err := r.Publish(ctx, QueuePdfJob, jobPayload.ID, payloadBytes); err != nil {
						app.Logger.Errorf("[Worker %d] Failed to requeue job: %v", workerID, err)
						_ = r.Nack(msg, false)
						continue
					}

					app.Logger.Infof("[Worker %d] Requeued job %s, Retry: %d", workerID, jobPayload.ID, jobPayload.Retry)
					_ = r.Ack(msg)
				}
			}
		}(i + 1)
	}

	return nil
}

// PublishPdfJob enqueues jobPayload as a fresh job.
func (r *RabbitMQ) PublishPdfJob(ctx context.Context, jobPayload PdfJobPayload) error {
	jobPayload.Retry = 0
	if err := jobPayload.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(jobPayload)
	if err != nil {
		return fmt.Errorf("failed to marshal job payload: %w", err)
	}

	return r.Publish(ctx, QueuePdfJob, jobPayload.ID, body)
}

func NewPdfJobPayload(id string, operation constant.Operation, inputs []string, output, pages string, npages int) PdfJobPayload {
	return PdfJobPayload{
		ID:        id,
		Operation: operation,
		Inputs:    inputs,
		Output:    output,
		Pages:     pages,
		NPages:    npages,
		CreatedAt: time.Now().Format(time.RFC3339),
		Retry:     0,
	}
}
