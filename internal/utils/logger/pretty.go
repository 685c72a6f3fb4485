package logger

import (
	"context"
	"encoding/json"
	"io"
	stdLog "log"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"
)

type PrettyHandlerOptions struct {
	SlogOpts *slog.HandlerOptions
}

// PrettyHandler renders records as a colored level, the message and an
// indented JSON dump of the attributes. Local development only; JSON
// handlers serve the other environments.
type PrettyHandler struct {
	opts  PrettyHandlerOptions
	l     *stdLog.Logger
	attrs []slog.Attr
}

func (opts PrettyHandlerOptions) NewPrettyHandler(out io.Writer) *PrettyHandler {
	return &PrettyHandler{
		opts: opts,
		l:    stdLog.New(out, "", 0),
	}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.SlogOpts != nil && h.opts.SlogOpts.Level != nil {
		minLevel = h.opts.SlogOpts.Level.Level()
	}
	return level >= minLevel
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	fields := make(map[string]interface{}, r.NumAttrs()+len(h.attrs))
	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.Any()
		return true
	})
	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}

	var b []byte
	if len(fields) > 0 {
		var err error
		b, err = json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
	}

	timeStr := r.Time.Format("[15:04:05.000]")
	msg := color.CyanString(r.Message)

	h.l.Println(timeStr, level, msg, color.WhiteString(string(b)))

	return nil
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		opts:  h.opts,
		l:     h.l,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *PrettyHandler) WithGroup(_ string) slog.Handler {
	// Groups are flattened; good enough for local output.
	return h
}
