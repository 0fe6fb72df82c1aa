package logger

import (
	"context"
	"log"
	"os"
	"strings"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = map[string]int{
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

type implLogger struct {
	logger *log.Logger
	level  int
}

// New creates a Logger filtering below the given level. Unknown levels
// fall back to info.
func New(level string) Logger {
	lvl, ok := levelNames[strings.ToLower(level)]
	if !ok {
		lvl = levelInfo
	}

	return &implLogger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
		level:  lvl,
	}
}

func (l *implLogger) enabled(level int) bool {
	return level >= l.level
}

func (l *implLogger) logf(level int, tag, msg string, args ...interface{}) {
	if l.enabled(level) {
		l.logger.Printf(tag+" "+msg, args...)
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelDebug, "[DEBUG]", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelInfo, "[INFO]", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelWarn, "[WARN]", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelError, "[ERROR]", msg, args...)
}
