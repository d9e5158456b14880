//go:build unit

package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"table-booking/internal/infra/notify"
	"table-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestInbox(t *testing.T) {
	now := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	inbox := notify.NewInbox(clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	assert.Empty(t, inbox.Drain())

	inbox.NotifySuccess(ctx, "reservation saved!")
	clk.Add(time.Minute)
	inbox.NotifyFailure(ctx, "something went wrong!", errors.New("status 500"))

	assert.Equal(t, 2, inbox.Pending())
	assert.Equal(t, []notify.Notification{
		{Level: notify.LevelSuccess, Message: "reservation saved!", At: now},
		{Level: notify.LevelFailure, Message: "something went wrong!", At: now.Add(time.Minute)},
	}, inbox.Drain())

	assert.Zero(t, inbox.Pending())
	assert.Empty(t, inbox.Drain())
}
