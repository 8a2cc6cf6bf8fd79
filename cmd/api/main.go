package main

import (
	appcontext "github.com/SeakMengs/PdfPress/internal/app_context"
	"github.com/SeakMengs/PdfPress/internal/config"
	"github.com/SeakMengs/PdfPress/internal/controller"
	"github.com/SeakMengs/PdfPress/internal/env"
	filestorage "github.com/SeakMengs/PdfPress/internal/file_storage"
	"github.com/SeakMengs/PdfPress/internal/middleware"
	"github.com/SeakMengs/PdfPress/internal/processor"
	"github.com/SeakMengs/PdfPress/internal/queue"
	ratelimiter "github.com/SeakMengs/PdfPress/internal/rate_limiter"
	"github.com/SeakMengs/PdfPress/internal/route"
	"github.com/SeakMengs/PdfPress/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	app := appcontext.Application{
		Config:    &cfg,
		Logger:    logger,
		Processor: processor.NewProcessor(util.NewPdfConfig(cfg), logger),
	}

	// Background jobs are optional, the synchronous routes work without them
	if cfg.Minio.Enabled() {
		storage, err := filestorage.NewStorage(&cfg.Minio)
		if err != nil {
			logger.Error("Error connecting to minio")
			logger.Panic(err)
		}

		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
		if err != nil {
			logger.Warnf("RabbitMQ unavailable, background jobs disabled: %v", err)
		} else {
			logger.Info("RabbitMQ connected \n")
			defer func() {
				if err := rabbitMQ.Close(); err != nil {
					logger.Errorf("Failed to close RabbitMQ connection: %v", err)
				}
			}()

			app.Storage = storage
			app.Queue = rabbitMQ
		}
	}

	// Custom validation
	if err := util.RegisterBindingValidations(); err != nil {
		logger.Panic(err)
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Requested-With", "Accept"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "Retry-After"}
	r.Use(cors.New(corsConfig))

	_controller := controller.NewController(&app)
	route.Register(r, _controller, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
