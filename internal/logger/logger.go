// Package logger sets up diagnostic logging for the CLI.
//
// Diagnostics always go to the writer passed to Initialize (stderr in practice)
// so that stdout carries nothing but the secret listing. client-go reports
// through klog; Initialize routes klog into the same slog handler.
package logger

import (
	"io"
	"log/slog"

	"github.com/go-logr/logr"
	"k8s.io/klog/v2"
)

// New creates a text logger writing to w. Without debug only warnings and errors are emitted.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Initialize installs a logger from New as the slog default and as klog's backend
func Initialize(w io.Writer, debug bool) *slog.Logger {
	l := New(w, debug)
	slog.SetDefault(l)
	klog.SetLogger(NewLogr(l))
	return l
}

// NewLogr returns a logr.Logger backed by l's handler
func NewLogr(l *slog.Logger) logr.Logger {
	return logr.FromSlogHandler(l.Handler())
}
