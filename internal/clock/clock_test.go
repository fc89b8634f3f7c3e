package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MartianPotato_Go/internal/testing/leaktest"
)

var start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestRealClockNow(t *testing.T) {
	clk := RealClock{}
	if clk.Now().IsZero() {
		t.Fatalf("expected non-zero time")
	}
}

func TestRealClockEveryStops(t *testing.T) {
	var fired atomic.Int32
	done := make(chan struct{}, 1)

	timer := RealClock{}.Every(5*time.Millisecond, func() {
		if fired.Add(1) == 2 {
			done <- struct{}{}
		}
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for ticks")
	}

	timer.Stop()
	timer.Stop()
	after := fired.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, fired.Load(), after+1, "at most one in-flight tick after Stop")
}

func TestFakeClockAdvance(t *testing.T) {
	clk := NewFake(start)

	require.True(t, clk.Now().Equal(start))

	clk.Advance(1500 * time.Millisecond)
	want := start.Add(1500 * time.Millisecond)
	assert.True(t, clk.Now().Equal(want), "expected %v got %v", want, clk.Now())
}

func TestFakeEveryFiresPerInterval(t *testing.T) {
	clk := NewFake(start)
	count := 0
	clk.Every(time.Second, func() { count++ })

	clk.Advance(999 * time.Millisecond)
	assert.Equal(t, 0, count)

	clk.Advance(time.Millisecond)
	assert.Equal(t, 1, count)

	clk.Advance(5 * time.Second)
	assert.Equal(t, 6, count)
}

func TestFakeTimerStopInsideCallback(t *testing.T) {
	clk := NewFake(start)
	count := 0
	var timer Timer
	timer = clk.Every(time.Second, func() {
		count++
		if count == 3 {
			timer.Stop()
		}
	})

	clk.Advance(10 * time.Second)
	assert.Equal(t, 3, count)
	assert.Equal(t, 0, clk.ActiveTimers())
}

func TestFakeOrdersTimersByDueTime(t *testing.T) {
	clk := NewFake(start)
	var order []string
	clk.Every(2*time.Second, func() { order = append(order, "slow") })
	clk.Every(time.Second, func() { order = append(order, "fast") })

	clk.Advance(2 * time.Second)
	assert.Equal(t, []string{"fast", "slow", "fast"}, order)
}

func TestFakeCallbackSeesDueTime(t *testing.T) {
	clk := NewFake(start)
	var seen []time.Time
	clk.Every(time.Second, func() { seen = append(seen, clk.Now()) })

	clk.Advance(2 * time.Second)
	require.Len(t, seen, 2)
	assert.True(t, seen[0].Equal(start.Add(time.Second)))
	assert.True(t, seen[1].Equal(start.Add(2*time.Second)))
}

func TestRealClockEveryNoLeak(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		timers := make([]Timer, 0, 3)
		for i := 0; i < 3; i++ {
			timers = append(timers, RealClock{}.Every(time.Millisecond, func() {}))
		}
		for _, timer := range timers {
			timer.Stop()
		}
	})
}
