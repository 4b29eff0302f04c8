package cli

import (
	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tmpkeep/tmpkeep/logging"
)

var (
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgHiRed)
)

// loggerFactory builds the console logger factory honoring the log-level and
// color flags. Output goes to stderr so command results on stdout stay clean.
func (c *App) loggerFactory() logging.LoggerFactory {
	if c.disableColor {
		color.NoColor = true
	}

	if c.forceColor {
		color.NoColor = false
	}

	level := consoleLogLevel(c.logLevel)
	sink := zapcore.Lock(zapcore.AddSync(c.stderrWriter))

	return func(module string) logging.Logger {
		return zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
				TimeKey:        zapcore.OmitKey,
				LevelKey:       "L",
				NameKey:        zapcore.OmitKey,
				CallerKey:      zapcore.OmitKey,
				FunctionKey:    zapcore.OmitKey,
				MessageKey:     "M",
				LineEnding:     zapcore.DefaultLineEnding,
				EncodeLevel:    colorizedLevelEncoder,
				EncodeDuration: zapcore.StringDurationEncoder,
			}),
			sink,
			level,
		)).Sugar().Named(module)
	}
}

func consoleLogLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func colorizedLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.WarnLevel:
		enc.AppendString(warningColor.Sprint(l.CapitalString()))
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		enc.AppendString(errorColor.Sprint(l.CapitalString()))
	default:
		enc.AppendString(l.CapitalString())
	}
}
