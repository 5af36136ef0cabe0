package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"jarcafe/internal/config"
	"os"
	"strings"
)

// New builds the service logger. Development and text format use the
// colored console encoder, everything else logs JSON.
func New(cfg config.Config) *zap.Logger {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.LoggerLevel))

	core := zapcore.NewCore(buildEncoder(cfg), zapcore.AddSync(os.Stdout), level)
	log := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	log.Info("Logger initialized successfully",
		zap.String("level", strings.ToUpper(cfg.LoggerLevel)),
		zap.String("format", cfg.LoggerFormat),
		zap.String("environment", cfg.Environment),
	)
	return log
}

func buildEncoder(cfg config.Config) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	if cfg.IsDevelopment() || strings.EqualFold(cfg.LoggerFormat, "text") {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig)
	}

	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Writer adapts the logger to an io.Writer for line-oriented sources such
// as HTTP access logs. Each write is logged at info level.
type Writer struct {
	Log *zap.Logger
}

func (w Writer) Write(p []byte) (int, error) {
	w.Log.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
