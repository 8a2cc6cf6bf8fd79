package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/SeakMengs/PdfPress/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	PDF         PDFConfig
	RateLimiter RateLimiterConfig
	Minio       MinioConfig
	RabbitMQ    RabbitMQConfig
	Consumer    ConsumerConfig
}

type PDFConfig struct {
	TMP_DIR         string
	VALIDATION_MODE string
	// Upload limit for a single request to the api, in bytes
	MAX_UPLOAD_SIZE int64
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	BUCKET     string
	USE_SSL    bool
}

type RabbitMQConfig struct {
	HOST     string
	PORT     string
	USER     string
	PASSWORD string
}

type ConsumerConfig struct {
	MaxWorkers int
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func (m MinioConfig) Enabled() bool {
	return m.ENDPOINT != "" && m.BUCKET != ""
}

func (r RabbitMQConfig) GetConnectionString() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.USER, r.PASSWORD, r.HOST, r.PORT)
}

func GetConfig() Config {
	rateLimiteTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimiteTimeFrame = 60 * time.Second
	}

	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		PDF: PDFConfig{
			TMP_DIR:         env.GetString("PDF_TMP_DIR", fmt.Sprintf("%s/pdfpress/tmp", os.TempDir())),
			VALIDATION_MODE: env.GetString("PDF_VALIDATION_MODE", "relaxed"),
			// 64 MiB by default
			MAX_UPLOAD_SIZE: int64(env.GetInt("PDF_MAX_UPLOAD_SIZE", 64<<20)),
		},
		// By default if not specified, we allow 100 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 100),
			TimeFrame:            rateLimiteTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Minio: MinioConfig{
			ENDPOINT:   env.GetString("MINIO_ENDPOINT", ""),
			ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
			BUCKET:     env.GetString("MINIO_BUCKET", "pdfpress"),
			USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQConfig{
			HOST:     env.GetString("RABBITMQ_HOST", "127.0.0.1"),
			PORT:     env.GetString("RABBITMQ_PORT", "5672"),
			USER:     env.GetString("RABBITMQ_USER", "guest"),
			PASSWORD: env.GetString("RABBITMQ_PASSWORD", "guest"),
		},
		Consumer: ConsumerConfig{
			MaxWorkers: env.GetInt("CONSUMER_MAX_WORKERS", 3),
		},
	}
}
