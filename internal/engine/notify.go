package engine

import (
	"context"
	"log/slog"
)

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification tells an observer how a Book operation went.
type Notification struct {
	Level     Level
	Operation string
	Message   string
	Err       error
}

// Notifier observes the outcome of every Book operation.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (l LogNotifier) Notify(n Notification) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	level := slog.LevelInfo
	attrs := []slog.Attr{slog.String("operation", n.Operation)}
	if n.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", n.Err.Error()))
	}
	logger.LogAttrs(context.Background(), level, n.Message, attrs...)
}
