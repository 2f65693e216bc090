package logging

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts zerolog to Logger. Key–value args are attached as
// fields; a trailing key without a value is logged under "!BADKEY", the same
// convention slog uses.
type ZerologLogger struct {
	l zerolog.Logger
}

func NewZerologLogger(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{l: l}
}

// NewZerologConsole returns a human-friendly console logger.
func NewZerologConsole(w io.Writer, level string) *ZerologLogger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	l := zerolog.New(output).Level(lvl).With().Timestamp().Logger()
	return NewZerologLogger(l)
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Debug(), ctx, msg, args)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Info(), ctx, msg, args)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Warn(), ctx, msg, args)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Error(), ctx, msg, args)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.l.With()
	for i := 0; i < len(args); i += 2 {
		key, val := pair(args, i)
		c = c.Interface(key, val)
	}
	return &ZerologLogger{l: c.Logger()}
}

func (z *ZerologLogger) emit(e *zerolog.Event, ctx context.Context, msg string, args []any) {
	if e == nil {
		return
	}
	e = e.Ctx(ctx)
	for i := 0; i < len(args); i += 2 {
		key, val := pair(args, i)
		e = e.Interface(key, val)
	}
	e.Msg(msg)
}

func pair(args []any, i int) (string, any) {
	if i+1 >= len(args) {
		return "!BADKEY", args[i]
	}
	key, ok := args[i].(string)
	if !ok {
		key = fmt.Sprint(args[i])
	}
	return key, args[i+1]
}
