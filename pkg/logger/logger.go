package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/affiliate/internal/config"
)

const (
	timeLayout  = "15:04:05 02-01-2006"
	serviceName = "affiliate"
)

var logLvlMap = map[string]zapcore.Level{
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"debug": zapcore.DebugLevel,
}

func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[strings.ToLower(conf.LogLvl)]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	encoding := strings.ToLower(conf.LogFormat)
	switch encoding {
	case "":
		encoding = "console"
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", conf.LogFormat)
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if encoding == "json" {
		encodeConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Sampling:         nil,
		Encoding:         encoding,
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger.With(zap.String("service", serviceName)))

	return nil
}
