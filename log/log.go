package log

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

type AttrOption func(l zerolog.Context) zerolog.Context

func Scope(s string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("s", s)
	}
}

func Operation(op string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("op", op)
	}
}

// ListKind attaches the list backing name.
func ListKind(kind string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("kind", kind)
	}
}

// Case attaches the scenario name as "suite.case".
func Case(suite, name string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		if name == "" {
			return l.Str("case", suite)
		}
		return l.Str("case", suite+"."+name)
	}
}

// Step attaches the position of a scenario step.
func Step(i int) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Int("step", i)
	}
}

// Logger wraps zerolog.Logger with printf-style helpers.
type Logger struct {
	zl *zerolog.Logger
}

// New returns the global logger with the scope attribute set.
func New(scope string) *Logger {
	l := zlog.Logger.With().Str("s", scope).Logger()
	return &Logger{&l}
}

// Ctx returns the logger stored in ctx, or the default context logger.
func Ctx(ctx context.Context) *Logger {
	return &Logger{zerolog.Ctx(ctx)}
}

// With returns a child logger with the attributes applied.
func (l *Logger) With(opts ...AttrOption) *Logger {
	c := l.zl.With()
	for _, opt := range opts {
		c = opt(c)
	}

	zl := c.Logger()
	return &Logger{&zl}
}

// WithContext stores the logger in a copy of ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.zl.WithContext(ctx)
}

// Unwrap returns the underlying zerolog.Logger.
func (l *Logger) Unwrap() *zerolog.Logger {
	return l.zl
}

func (l *Logger) Trace(msg string) {
	l.zl.Trace().Msg(msg)
}

func (l *Logger) Tracef(msg string, args ...any) {
	l.zl.Trace().Msgf(msg, args...)
}

func (l *Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

func (l *Logger) Debugf(msg string, args ...any) {
	l.zl.Debug().Msgf(msg, args...)
}

func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

func (l *Logger) Infof(msg string, args ...any) {
	l.zl.Info().Msgf(msg, args...)
}

func (l *Logger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

func (l *Logger) Warnf(msg string, args ...any) {
	l.zl.Warn().Msgf(msg, args...)
}

func (l *Logger) Error(err error, msg string) {
	l.zl.Error().Err(err).Msg(msg)
}

func (l *Logger) Errorf(err error, msg string, args ...any) {
	l.zl.Error().Err(err).Msgf(msg, args...)
}

// InitGlobals configures the global and the default context loggers.
func InitGlobals(level zerolog.Level, json, noColor bool) *zerolog.Logger {
	return initGlobals(os.Stderr, level, json, noColor)
}

func initGlobals(out io.Writer, level zerolog.Level, json, noColor bool) *zerolog.Logger {
	w := out
	if !json {
		w = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = out
			w.NoColor = noColor
			w.TimeFormat = time.DateTime
		})
	}

	l := zerolog.New(w).Level(level).With().Timestamp().Logger()

	zerolog.SetGlobalLevel(level)
	zlog.Logger = l
	zerolog.DefaultContextLogger = &l

	return &l
}
