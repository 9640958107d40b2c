package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params configures the process-wide logrus logger
type Params struct {
	FileName string
	Level    string
	JSON     bool
}

// Setup points logrus at a rotating log file. The terminal belongs to the
// TUI, so without a file name logs are discarded. When the log directory
// cannot be created logs are discarded and the error is returned.
func Setup(params Params) (io.Closer, error) {
	if params.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	logrus.SetLevel(GetLevel(params.Level))

	if params.FileName == "" {
		logrus.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	if !strings.HasSuffix(params.FileName, ".log") {
		params.FileName += ".log"
	}

	if err := os.MkdirAll(filepath.Dir(params.FileName), 0755); err != nil {
		logrus.SetOutput(io.Discard)
		return nopCloser{}, fmt.Errorf("creating log directory: %w", err)
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.FileName,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		LocalTime:  false, // false -> use UTC
		Compress:   true,
	}
	logrus.SetOutput(lumberJackLogger)

	return lumberJackLogger, nil
}

// GetLevel maps a config string to a logrus level, defaulting to info
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
