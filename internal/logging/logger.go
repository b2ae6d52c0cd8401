// Package logging provides leveled, optionally colored logging backed by
// zap, with an optional append-mode file sink.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/tvruntime/internal/config"
	"github.com/backmassage/tvruntime/internal/term"
)

const timeLayout = "2006-01-02 15:04:05"

// Logger wraps a zap SugaredLogger with printf-style helpers.
type Logger struct {
	sugar *zap.SugaredLogger
	file  *os.File
}

// NewLogger configures colors from cfg and builds a logger that writes
// every level to stdout, and to cfg.LogFile as plain text when set. DEBUG
// is enabled by cfg.Verbose. Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	level := zapcore.InfoLevel
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	console := successEncoder{
		Encoder: zapcore.NewConsoleEncoder(encoderConfig(term.Enabled())),
		color:   term.Green,
	}
	cores := []zapcore.Core{
		zapcore.NewCore(console, zapcore.Lock(os.Stdout), level),
	}

	l := &Logger{}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		plain := successEncoder{Encoder: zapcore.NewConsoleEncoder(encoderConfig(false))}
		cores = append(cores, zapcore.NewCore(plain, zapcore.AddSync(f), level))
	}

	l.sugar = zap.New(zapcore.NewTee(cores...)).Sugar()
	return l, nil
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// New wraps an existing zap logger, e.g. one built by zaptest or an observer.
func New(z *zap.Logger) *Logger {
	return &Logger{sugar: z.Sugar()}
}

func encoderConfig(color bool) zapcore.EncoderConfig {
	ec := zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return ec
}

// With returns a child logger that attaches key/value context to every entry.
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(args...), file: l.file}
}

// Close flushes buffered entries and closes the log file if one was opened.
func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Success logs a completion message at INFO level. The console shows it
// in green when colors are enabled; the log file gets it plain.
func (l *Logger) Success(format string, args ...interface{}) {
	l.sugar.Infow(fmt.Sprintf(format, args...), successKey, true)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Debug logs at DEBUG level; dropped unless verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}
