// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default [slog] logger for command line tools,
// with a user level set from verbosity flags and colored level labels.
package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown.
var UserLevel = slog.LevelInfo

// UseColor is whether to use color in log messages. It is on by default.
var UseColor = true

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - quiet: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so vv takes
// precedence over v, which takes precedence over quiet.
func LevelFromFlags(vv, v, quiet bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default logger to a [Handler] writing to
// [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// Handler is a [slog.Handler] that writes one line per record,
// with the level label colored by severity when [UseColor] is on.
type Handler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  string // preformatted attributes from WithAttrs
	groups []string
	mu     *sync.Mutex
}

// NewHandler returns a new [Handler] writing to w at the given level.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	opts := []termenv.OutputOption{}
	if !UseColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Handler{out: termenv.NewOutput(w, opts...), level: level, mu: &sync.Mutex{}}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelLabel(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, prefix, a)
		return true
	})
	sb.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	var sb strings.Builder
	sb.WriteString(h.attrs)
	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}
	for _, a := range attrs {
		writeAttr(&sb, prefix, a)
	}
	nh.attrs = sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

// levelLabel returns the level name styled for the output profile.
func (h *Handler) levelLabel(level slog.Level) string {
	st := h.out.String(level.String())
	switch {
	case level >= slog.LevelError:
		st = st.Foreground(h.out.Color("1")).Bold()
	case level >= slog.LevelWarn:
		st = st.Foreground(h.out.Color("3"))
	case level >= slog.LevelInfo:
		st = st.Foreground(h.out.Color("4"))
	default:
		st = st.Faint()
	}
	return st.String()
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(sb, prefix+a.Key+".", ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
