package route

import (
	"github.com/SeakMengs/PdfPress/internal/controller"
	"github.com/SeakMengs/PdfPress/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Register mounts every route of the api on r.
func Register(r *gin.Engine, _controller *controller.Controller, _middleware *middleware.Middleware) {
	r.Use(_middleware.RateLimiterMiddleware)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	V1_Pdf(rApi, _controller.Pdf, _middleware)
	V1_Jobs(rApi, _controller.Job, _middleware)
}
