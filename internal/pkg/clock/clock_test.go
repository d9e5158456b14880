//go:build unit

package clock_test

import (
	"sync"
	"testing"
	"time"

	"table-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)
	assert.Equal(t, start, clk.Now())

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clk.Add(time.Minute)
		}()
	}
	wg.Wait()
	assert.Equal(t, start.Add(10*time.Minute), clk.Now())

	clk.Set(start)
	assert.Equal(t, start, clk.Now())
}
