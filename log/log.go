// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log provides the structured logger shared by all packages.
// Output is discarded unless a handler is installed, so library use
// stays silent by default.
package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Logger writes key/value structured log records.
type Logger interface {
	With(ctx ...any) Logger
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
}

// root holds the installed handler. Derived loggers resolve it on every
// call, so handlers installed after package init still take effect.
var root atomic.Pointer[slog.Logger]

func init() {
	root.Store(slog.New(DiscardHandler()))
}

// SetDefault installs the handler backing all loggers derived from this
// package.
func SetDefault(h slog.Handler) {
	root.Store(slog.New(h))
}

// WithContext derives a logger carrying the given context pairs.
func WithContext(ctx ...any) Logger {
	return &logger{ctx}
}

type logger struct {
	ctx []any
}

func (l *logger) With(ctx ...any) Logger {
	merged := make([]any, 0, len(l.ctx)+len(ctx))
	merged = append(merged, l.ctx...)
	merged = append(merged, ctx...)
	return &logger{merged}
}

func (l *logger) Debug(msg string, ctx ...any) { root.Load().With(l.ctx...).Debug(msg, ctx...) }
func (l *logger) Info(msg string, ctx ...any)  { root.Load().With(l.ctx...).Info(msg, ctx...) }
func (l *logger) Warn(msg string, ctx ...any)  { root.Load().With(l.ctx...).Warn(msg, ctx...) }
func (l *logger) Error(msg string, ctx ...any) { root.Load().With(l.ctx...).Error(msg, ctx...) }

type discardHandler struct{}

// DiscardHandler returns a no-op handler.
func DiscardHandler() slog.Handler {
	return &discardHandler{}
}

func (h *discardHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (h *discardHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (h *discardHandler) WithGroup(_ string) slog.Handler {
	return &discardHandler{}
}

func (h *discardHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return &discardHandler{}
}
