package controller

import (
	"github.com/SeakMengs/PdfPress/internal/constant"
	"github.com/SeakMengs/PdfPress/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"message":    "Welcome to the " + util.GetAppName() + " api",
		"operations": constant.Operations(),
		"jobs":       ic.app.JobsEnabled(),
	})
}
