package route

import (
	"github.com/SeakMengs/PdfPress/internal/controller"
	"github.com/SeakMengs/PdfPress/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Jobs(r *gin.RouterGroup, jobController *controller.JobController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/pdf/jobs")
	v1.Use(middleware.MaxUploadSize)
	{
		v1.POST("", jobController.CreateJob)
	}
}
