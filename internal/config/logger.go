package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger from LOG_* settings.
func NewLogger(env Env) (*logrus.Logger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(env.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	switch env.LogFormat {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	var output io.Writer = os.Stdout
	if env.LogOutput == "file" {
		if err := os.MkdirAll(filepath.Dir(env.LogFilePath), 0o755); err != nil {
			return nil, err
		}
		output = &lumberjack.Logger{
			Filename:   env.LogFilePath,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
	}
	logger.SetOutput(output)

	return logger, nil
}
