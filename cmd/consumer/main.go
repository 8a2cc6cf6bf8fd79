package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/SeakMengs/PdfPress/internal/config"
	"github.com/SeakMengs/PdfPress/internal/env"
	filestorage "github.com/SeakMengs/PdfPress/internal/file_storage"
	"github.com/SeakMengs/PdfPress/internal/processor"
	"github.com/SeakMengs/PdfPress/internal/queue"
	"github.com/SeakMengs/PdfPress/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	storage, err := filestorage.NewStorage(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	app := queue.ConsumerContext{
		Config:    &cfg,
		Logger:    logger,
		Storage:   storage,
		Processor: processor.NewProcessor(util.NewPdfConfig(cfg), logger),
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
	if err != nil {
		logger.Panic("Error connecting to RabbitMQ: ", err)
	}
	logger.Info("RabbitMQ connected \n")
	defer func() {
		if err := rabbitMQ.Close(); err != nil {
			logger.Errorf("Failed to close RabbitMQ connection: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	maxWorker := util.DetermineWorkers(0, cfg.Consumer.MaxWorkers)
	if err := rabbitMQ.ConsumePdfJob(ctx, queue.HandlePdfJob, maxWorker, &app); err != nil {
		logger.Fatalf("Failed to consume pdf job: %v", err)
	}

	logger.Infof("Started consuming %s with %d worker(s)", queue.QueuePdfJob, maxWorker)

	<-ctx.Done()
	logger.Info("Shutting down consumer")
}
