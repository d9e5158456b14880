// Package notify collects the messages a view shows its user.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"table-booking/internal/pkg/clock"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelFailure Level = "failure"
)

type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

// Inbox keeps notifications until the presentation drains them.
type Inbox struct {
	clock  clock.Clock
	logger *slog.Logger

	mu    sync.Mutex
	items []Notification
}

func NewInbox(clk clock.Clock, logger *slog.Logger) *Inbox {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inbox{clock: clk, logger: logger}
}

func (i *Inbox) NotifySuccess(ctx context.Context, message string) {
	i.logger.InfoContext(ctx, "User notified", "level", LevelSuccess, "message", message)
	i.push(LevelSuccess, message)
}

// NotifyFailure shows message only; cause goes to the log.
func (i *Inbox) NotifyFailure(ctx context.Context, message string, cause error) {
	i.logger.WarnContext(ctx, "User notified", "level", LevelFailure, "message", message, "cause", cause)
	i.push(LevelFailure, message)
}

func (i *Inbox) Drain() []Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := i.items
	i.items = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

func (i *Inbox) Pending() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.items)
}

func (i *Inbox) push(level Level, message string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.items = append(i.items, Notification{Level: level, Message: message, At: i.clock.Now()})
}
