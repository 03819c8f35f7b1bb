// Package logger builds the zap loggers used by the CLI and adapts them
// to the calculation engine's logging port.
package logger

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/firecalc/firecalc/internal/calculation"
)

// Terminal colors for console output
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// New creates a console logger writing to stderr. Debug enables the
// debug level and verbose timestamps.
func New(debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		consoleEncoder(),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core), nil
}

// consoleEncoder formats entries as "HH:MM:SS [LEVEL] message" with
// colored levels, suppressing caller and stacktrace noise.
func consoleEncoder() zapcore.Encoder {
	config := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		CallerKey:      "",
		StacktraceKey:  "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	return zapcore.NewConsoleEncoder(config)
}

func levelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch level {
	case zapcore.DebugLevel:
		enc.AppendString(fmt.Sprintf("%s[DEBUG]%s", colorCyan, colorReset))
	case zapcore.InfoLevel:
		enc.AppendString(fmt.Sprintf("%s[INFO]%s", colorGreen, colorReset))
	case zapcore.WarnLevel:
		enc.AppendString(fmt.Sprintf("%s[WARN]%s", colorYellow, colorReset))
	case zapcore.ErrorLevel:
		enc.AppendString(fmt.Sprintf("%s[ERROR]%s", colorRed, colorReset))
	case zapcore.FatalLevel:
		enc.AppendString(fmt.Sprintf("%s[FATAL]%s", colorRed+colorBold, colorReset))
	default:
		enc.AppendString(fmt.Sprintf("[%s]", level.CapitalString()))
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05"))
}

// CalcLogger adapts a zap logger to the calculation.Logger interface.
type CalcLogger struct {
	sugar *zap.SugaredLogger
}

// NewCalcLogger wraps z for use by the calculation engine.
func NewCalcLogger(z *zap.Logger) *CalcLogger {
	return &CalcLogger{sugar: z.Sugar()}
}

var _ calculation.Logger = (*CalcLogger)(nil)

func (l *CalcLogger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *CalcLogger) Infof(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *CalcLogger) Warnf(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *CalcLogger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }
