package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected := startTime.Add(45 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}
}

// TestDriverWholeSteps verifies elapsed time converts to whole steps and keeps the remainder
func TestDriverWholeSteps(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	d := NewDriverWithStep(clock, 10*time.Millisecond, 5)
	count := 0
	step := func() { count++ }

	if n := d.Advance(step); n != 0 {
		t.Errorf("Expected 0 steps with no elapsed time, got %d", n)
	}

	clock.Advance(25 * time.Millisecond)
	if n := d.Advance(step); n != 2 {
		t.Errorf("Expected 2 steps for 25ms, got %d", n)
	}
	if d.Pending() != 5*time.Millisecond {
		t.Errorf("Expected 5ms pending, got %v", d.Pending())
	}

	clock.Advance(6 * time.Millisecond)
	if n := d.Advance(step); n != 1 {
		t.Errorf("Expected remainder to complete a step, got %d", n)
	}
	if count != 3 {
		t.Errorf("Expected 3 total steps, got %d", count)
	}
}

// TestDriverCatchUpCap verifies a stall is bounded to the catch-up limit and the excess dropped
func TestDriverCatchUpCap(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	d := NewDriverWithStep(clock, 10*time.Millisecond, 5)

	clock.Advance(time.Second)
	if n := d.Advance(func() {}); n != 5 {
		t.Errorf("Expected 5 steps after a stall, got %d", n)
	}
	if d.Pending() != 0 {
		t.Errorf("Expected surplus discarded, got %v pending", d.Pending())
	}

	clock.Advance(10 * time.Millisecond)
	if n := d.Advance(func() {}); n != 1 {
		t.Errorf("Expected normal pacing after a stall, got %d", n)
	}
}

// TestDriverDefaultRate verifies the default driver runs at 30 steps per second
func TestDriverDefaultRate(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	d := NewDriver(clock)
	total := 0

	for i := 0; i < 60; i++ {
		clock.Advance(time.Second / 60)
		total += d.Advance(func() {})
	}

	if total < 29 || total > 30 {
		t.Errorf("Expected about 30 steps per simulated second, got %d", total)
	}
}
