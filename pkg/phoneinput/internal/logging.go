package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogPath = "logs/phoneinput.log"

var (
	logPath string
	logFile *os.File

	sinkOnce sync.Once
	sink     io.Writer

	appLog      = newLazyLogger()
	internalLog = newLazyLogger()
)

// lazyLogger builds its slog.Logger on first use so the log path can be
// changed any time before then.
type lazyLogger struct {
	once   sync.Once
	level  *slog.LevelVar
	logger *slog.Logger
}

func newLazyLogger() *lazyLogger {
	return &lazyLogger{level: &slog.LevelVar{}}
}

func (l *lazyLogger) get() *slog.Logger {
	l.once.Do(func() {
		l.logger = slog.New(slog.NewJSONHandler(openSink(), &slog.HandlerOptions{
			Level: l.level,
		}))
	})
	return l.logger
}

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created when the first logger is built.
func SetLogPath(path string) {
	logPath = path
}

func openSink() io.Writer {
	sinkOnce.Do(func() {
		target := logPath
		if target == "" {
			target = defaultLogPath
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			sink = os.Stdout
			return
		}

		f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			sink = os.Stdout
			return
		}

		logFile = f
		sink = io.MultiWriter(os.Stdout, f)
	})
	return sink
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return appLog.get()
}

// GetInternalLogger returns the logger used by the widget itself.
func GetInternalLogger() *slog.Logger {
	return internalLog.get()
}

func SetLogLevel(level slog.Level) {
	appLog.level.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLog.level.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
// Anything else yields info and false.
func ParseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func SetRawLogLevel(raw string) {
	level, _ := ParseLevel(raw)
	SetLogLevel(level)
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
