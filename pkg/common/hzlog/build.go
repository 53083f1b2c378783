package hzlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-slog/otelslog"
	"github.com/pkg/errors"
	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	infoTag        = "[INFO]"
	verboseInfoTag = "[INFORMATION]"
	warnTag        = "[WARN]"
	errorTag       = "[ERR ]"
)

// Logger writes one line per message. In console mode a line is the level tag,
// a single space and the message.
type Logger struct {
	zl *zap.Logger
	l  *slog.Logger
}

func (l *Logger) Info(ctx context.Context, msg string) {
	l.l.InfoContext(ctx, msg)
}

func (l *Logger) Warning(ctx context.Context, msg string) {
	l.l.WarnContext(ctx, msg)
}

func (l *Logger) Error(ctx context.Context, msg string) {
	l.l.ErrorContext(ctx, msg)
}

func (l *Logger) Slog() *slog.Logger {
	return l.l
}

func (l *Logger) Sync() error {
	return l.zl.Sync()
}

func MustBuild(c Config, w io.Writer) *Logger {
	logger, err := Build(c, w)
	if err != nil {
		panic("cannot build logger: " + err.Error())
	}

	return logger
}

func Build(c Config, w io.Writer) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse level")
	}

	if c.Mode == "" {
		c.Mode = ModeConsole
	}

	var enc zapcore.Encoder
	switch c.Mode {
	case ModeConsole:
		enc = zapcore.NewConsoleEncoder(consoleEncoderConfig(c.Verbose))
	case ModeJSON:
		encConf := zap.NewProductionEncoderConfig()
		encConf.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		enc = zapcore.NewJSONEncoder(encConf)
	default:
		return nil, errors.Errorf("cannot build zap logger, unknown mode %s, allowed options are only [console, json]", c.Mode)
	}

	zapLogger := zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl))

	slogLvl := zapLevelToSlogLevel(lvl)
	base := slogzap.Option{Level: slogLvl, Logger: zapLogger}.NewZapHandler()

	return &Logger{
		zl: zapLogger,
		l:  slog.New(otelslog.NewHandler(base)),
	}, nil
}

// NewFX builds the logger for the fx graph and flushes it on stop.
func NewFX(c Config, w io.Writer, lc fx.Lifecycle) (*Logger, error) {
	l, err := Build(c, w)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() {
		// syncing a terminal fails on some platforms, nothing to do about it
		_ = l.Sync()
	}))

	return l, nil
}

func consoleEncoderConfig(verbose bool) zapcore.EncoderConfig {
	info := infoTag
	if verbose {
		info = verboseInfoTag
	}

	return zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		ConsoleSeparator: " ",
		EncodeLevel: func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			switch {
			case lvl >= zapcore.ErrorLevel:
				enc.AppendString(errorTag)
			case lvl == zapcore.WarnLevel:
				enc.AppendString(warnTag)
			case lvl == zapcore.InfoLevel:
				enc.AppendString(info)
			default:
				enc.AppendString("[" + lvl.CapitalString() + "]")
			}
		},
	}
}

func zapLevelToSlogLevel(lvl zapcore.Level) slog.Level {
	zapLvlToSlogLvl := reverseMap(slogzap.LogLevels)
	if slogLvl, found := zapLvlToSlogLvl[lvl]; found {
		return slogLvl
	}

	panic(fmt.Sprintf("unknown zap level %s provided, cannot be mapped to slog level", lvl))
}

func reverseMap[TKey comparable, TValue comparable](mp map[TKey]TValue) map[TValue]TKey {
	ret := make(map[TValue]TKey, len(mp))
	for k, v := range mp {
		ret[v] = k
	}

	return ret
}
