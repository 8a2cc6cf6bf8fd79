package appcontext

import (
	"context"

	"github.com/SeakMengs/PdfPress/internal/config"
	"github.com/SeakMengs/PdfPress/internal/processor"
	"github.com/SeakMengs/PdfPress/internal/queue"
	"go.uber.org/zap"
)

type JobPublisher interface {
	PublishPdfJob(ctx context.Context, jobPayload queue.PdfJobPayload) error
}

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Processor runs page operations on local files.
	Processor *processor.Processor

	// Storage and Queue are nil when minio or rabbitmq is not configured,
	// background jobs are then unavailable.
	Storage queue.ObjectStorage
	Queue   JobPublisher
}

func (a *Application) JobsEnabled() bool {
	return a.Storage != nil && a.Queue != nil
}
