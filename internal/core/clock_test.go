package core

import (
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(250 * time.Millisecond)
	c.Advance(250 * time.Millisecond)

	if got := c.Now().Sub(start); got != 500*time.Millisecond {
		t.Errorf("elapsed = %v, expected 500ms", got)
	}
}
