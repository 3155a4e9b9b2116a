package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fadedpez/blackjack/internal/types"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

// String returns the level name
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level
func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if strings.EqualFold(levelName, name) {
			return level, nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", name)
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger is a leveled printf-style logger backed by zap
type Logger struct {
	sugar *zap.SugaredLogger
	level Level
}

// NewLogger creates a console logger writing to stderr at the given level
func NewLogger(level Level) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	return build(cfg, level)
}

// NewProductionLogger creates a JSON logger writing to stderr at the given level
func NewProductionLogger(level Level) *Logger {
	return build(zap.NewProductionConfig(), level)
}

func build(cfg zap.Config, level Level) *Logger {
	cfg.Level = zap.NewAtomicLevelAt(level.zapLevel())
	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		base = zap.NewNop()
	}
	return &Logger{sugar: base.Sugar(), level: level}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar(), level: ERROR}
}

// FromZap wraps an existing zap logger
func FromZap(base *zap.Logger, level Level) *Logger {
	return &Logger{sugar: base.WithOptions(zap.AddCallerSkip(1)).Sugar(), level: level}
}

// With returns a child logger carrying the given key/value pairs on every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...), level: l.level}
}

// Level returns the minimum level this logger emits
func (l *Logger) Level() Level {
	return l.level
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level <= DEBUG {
		l.sugar.Debugf(format, v...)
	}
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level <= INFO {
		l.sugar.Infof(format, v...)
	}
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	if l.level <= WARN {
		l.sugar.Warnf(format, v...)
	}
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	if l.level <= ERROR {
		l.sugar.Errorf(format, v...)
	}
}

// LogError logs err, expanding the code and cause of a GameError
func (l *Logger) LogError(err error) {
	var gameErr *types.GameError
	if !types.As(err, &gameErr) {
		l.Error("Unexpected error: %v", err)
		return
	}

	context := []string{
		fmt.Sprintf("Code: %s", gameErr.Code),
		fmt.Sprintf("Message: %s", gameErr.Message),
	}
	if gameErr.Err != nil {
		context = append(context, fmt.Sprintf("Cause: %v", gameErr.Err))
	}

	l.Error("Game error occurred:\n\t%s", strings.Join(context, "\n\t"))
}

// Sync flushes buffered log entries
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// Default logger instance
var Default = NewLogger(INFO)
