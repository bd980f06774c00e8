// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that colors the level of each record
// using the color profile of its output, and otherwise formats
// records like [slog.TextHandler].
type Handler struct {
	text   slog.Handler
	output *termenv.Output
	mu     *sync.Mutex
}

// NewHandler returns a new [Handler] writing to w at the given minimum level.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	out := termenv.NewOutput(w)
	return &Handler{
		text: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) > 0 {
					return a
				}
				switch a.Key {
				case slog.TimeKey:
					return slog.Attr{}
				case slog.LevelKey:
					lv, ok := a.Value.Any().(slog.Level)
					if ok {
						a.Value = slog.StringValue(levelString(out, lv))
					}
				}
				return a
			},
		}),
		output: out,
		mu:     &sync.Mutex{},
	}
}

// SetDefaultLogger sets the default logger to a [Handler] on
// [os.Stderr] at the current [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.text.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.text.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{text: h.text.WithAttrs(attrs), output: h.output, mu: h.mu}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{text: h.text.WithGroup(name), output: h.output, mu: h.mu}
}

// levelString returns the name of the level styled with
// the color for that level.
func levelString(out *termenv.Output, lv slog.Level) string {
	s := out.String(lv.String())
	switch {
	case lv >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case lv >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case lv >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Faint()
	}
	return s.String()
}
