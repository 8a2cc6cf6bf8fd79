package route

import (
	"github.com/SeakMengs/PdfPress/internal/controller"
	"github.com/SeakMengs/PdfPress/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Pdf(r *gin.RouterGroup, pdfController *controller.PdfController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/pdf")
	v1.Use(middleware.MaxUploadSize)
	{
		v1.POST("/2in1", pdfController.Compose2In1)
		v1.POST("/merge", pdfController.Merge)
		v1.POST("/delpages", pdfController.DeletePages)
		v1.POST("/split", pdfController.Split)
		v1.POST("/split_by_pages", pdfController.SplitByPages)
		v1.POST("/info", pdfController.Info)
	}
}
