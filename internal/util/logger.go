package util

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a json logger in production and a colored console
// logger otherwise. Both are named after the application.
func NewLogger(env string) *zap.SugaredLogger {
	if strings.EqualFold(env, "production") {
		return zap.Must(zap.NewProduction()).Named(GetAppName()).Sugar()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zap.Must(cfg.Build()).Named(GetAppName()).Sugar()
}
