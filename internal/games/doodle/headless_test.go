package doodle

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/config"
)

func TestRunHeadless(t *testing.T) {
	opts := HeadlessOptions{Width: 400, Height: 800, MaxTicks: 2000}
	cfg := config.DefaultDoodleConfig()
	cfg.Monsters.SpawnChance = 0

	a, err := RunHeadless(cfg, 5, opts)
	if err != nil {
		t.Fatalf("RunHeadless() failed: %v", err)
	}
	if a.Ticks == 0 || a.Ticks > opts.MaxTicks {
		t.Errorf("ticks = %d, expected 1..%d", a.Ticks, opts.MaxTicks)
	}
	if a.Cause == CauseNone && a.Ticks != opts.MaxTicks {
		t.Errorf("run stopped after %d ticks without a cause", a.Ticks)
	}
	if a.Cause != CauseNone && a.Events[EventGameOver] != 1 {
		t.Errorf("game over events = %d, expected 1", a.Events[EventGameOver])
	}
	if a.Events[EventJump]+a.Events[EventBreak]+a.Events[EventBounce] == 0 {
		t.Error("autopilot never landed on a platform")
	}

	b, err := RunHeadless(cfg, 5, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave different results: %+v vs %+v", a, b)
	}
}

func TestRunHeadlessInvalidViewport(t *testing.T) {
	_, err := RunHeadless(config.DefaultDoodleConfig(), 1, HeadlessOptions{Width: math.NaN(), Height: 800, MaxTicks: 10})
	if !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("error = %v, expected ErrInvalidViewport", err)
	}
}
