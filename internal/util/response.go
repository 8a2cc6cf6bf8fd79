package util

import (
	"net/http"

	constant "github.com/SeakMengs/PdfPress/internal/constant"
	"github.com/gin-gonic/gin"
)

// Response is the envelope every json endpoint replies with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func orEmpty(v any) any {
	if v == nil {
		return gin.H{}
	}
	return v
}

func BuildResponseSuccess(data any) Response {
	return Response{
		Success: true,
		Message: constant.REQUEST_SUCCESSFUL,
		Data:    orEmpty(data),
	}
}

func ResponseSuccess(ctx *gin.Context, data any) {
	ResponseSuccessWithStatus(ctx, http.StatusOK, data)
}

// ResponseAccepted is used when work was queued rather than done in the request.
func ResponseAccepted(ctx *gin.Context, data any) {
	ResponseSuccessWithStatus(ctx, http.StatusAccepted, data)
}

func ResponseSuccessWithStatus(ctx *gin.Context, code int, data any) {
	ctx.JSON(code, BuildResponseSuccess(data))
	ctx.Abort()
}

// BuildResponseFailed accepts either prepared []ApiError or a plain error,
// the latter is converted with GenerateErrorMessages.
func BuildResponseFailed(message string, err any, data any) Response {
	if message == "" {
		message = constant.REQUEST_UNSUCCESSFUL
	}

	if e, ok := err.(error); ok {
		err = GenerateErrorMessages(e)
	}

	return Response{
		Success: false,
		Message: message,
		Errors:  orEmpty(err),
		Data:    orEmpty(data),
	}
}

func ResponseFailed(ctx *gin.Context, code int, message string, err any, data any) {
	ctx.JSON(code, BuildResponseFailed(message, err, data))
	ctx.Abort()
}
