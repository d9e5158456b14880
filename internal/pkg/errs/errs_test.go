//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"table-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		marked := errs.Mark(cause, errs.ErrTransportFailure)

		assert.True(t, errs.Is(marked, errs.ErrTransportFailure))
		assert.True(t, errs.Is(marked, cause))
		assert.False(t, errs.Is(marked, errs.ErrServiceRejection))
	})

	t.Run("nil error yields the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrServiceRejection, errs.Mark(nil, errs.ErrServiceRejection))
	})

	t.Run("wrap keeps the mark", func(t *testing.T) {
		marked := errs.Mark(errors.New("timeout"), errs.ErrTransportFailure)
		wrapped := errs.Wrap(marked, "create reservation")

		assert.True(t, errs.Is(wrapped, errs.ErrTransportFailure))
		assert.Contains(t, wrapped.Error(), "create reservation")
		assert.Nil(t, errs.Wrap(nil, "noop"))
	})

	t.Run("stack lines are capped", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.New("boom"), 3)
		assert.LessOrEqual(t, len(lines), 3)
		assert.Nil(t, errs.ExtractStackLines(nil, 3))
	})
}
