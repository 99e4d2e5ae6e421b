package player

import (
	"errors"
	"testing"
)

// fakeMedia records calls so tests can assert idempotency.
type fakeMedia struct {
	playCalls  int
	pauseCalls int
	seekCalls  []float64
	err        error
}

func (m *fakeMedia) Play() error {
	m.playCalls++
	return m.err
}

func (m *fakeMedia) Pause() error {
	m.pauseCalls++
	return m.err
}

func (m *fakeMedia) Seek(seconds float64) error {
	m.seekCalls = append(m.seekCalls, seconds)
	return m.err
}

func TestPlayPauseIdempotent(t *testing.T) {
	media := &fakeMedia{}
	clock := NewClock(media)

	if err := clock.Play(); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if err := clock.Play(); err != nil {
		t.Fatalf("second play failed: %v", err)
	}
	if media.playCalls != 1 {
		t.Errorf("play reached media %d times, want 1", media.playCalls)
	}
	if !clock.Playing() {
		t.Error("clock should be playing")
	}

	if err := clock.Pause(); err != nil {
		t.Fatalf("pause failed: %v", err)
	}
	if err := clock.Pause(); err != nil {
		t.Fatalf("second pause failed: %v", err)
	}
	if media.pauseCalls != 1 {
		t.Errorf("pause reached media %d times, want 1", media.pauseCalls)
	}
	if clock.Playing() {
		t.Error("clock should be paused")
	}
}

func TestSeekClamping(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		target   float64
		want     float64
	}{
		{"within range", 100, 42.5, 42.5},
		{"negative", 100, -5, 0},
		{"beyond end", 100, 250, 100},
		{"exactly end", 100, 100, 100},
		{"zero", 100, 0, 0},
		{"unknown duration clamps lower only", 0, 1e9, 1e9},
		{"unknown duration negative", 0, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			media := &fakeMedia{}
			clock := NewClock(media)
			clock.HandleMetadataLoaded(tt.duration)

			if err := clock.Seek(tt.target); err != nil {
				t.Fatalf("seek failed: %v", err)
			}

			// position reflects the clamped target immediately
			if got := clock.Position(); got != tt.want {
				t.Errorf("position: got %v, want %v", got, tt.want)
			}
			if len(media.seekCalls) != 1 || media.seekCalls[0] != tt.want {
				t.Errorf("media seek calls: got %v, want [%v]", media.seekCalls, tt.want)
			}
		})
	}
}

func TestNoMedia(t *testing.T) {
	clock := NewClock(nil)

	if err := clock.Play(); !errors.Is(err, ErrNoMedia) {
		t.Errorf("play: got %v, want ErrNoMedia", err)
	}
	if err := clock.Pause(); !errors.Is(err, ErrNoMedia) {
		t.Errorf("pause: got %v, want ErrNoMedia", err)
	}
	if err := clock.Seek(10); !errors.Is(err, ErrNoMedia) {
		t.Errorf("seek: got %v, want ErrNoMedia", err)
	}
}

func TestMediaErrorsPropagate(t *testing.T) {
	media := &fakeMedia{err: errors.New("device gone")}
	clock := NewClock(media)

	if err := clock.Play(); err == nil {
		t.Error("expected play error")
	}
	if clock.Playing() {
		t.Error("failed play must not flip state")
	}
	if err := clock.Seek(5); err == nil {
		t.Error("expected seek error")
	}
	if clock.Position() != 0 {
		t.Errorf("failed seek must not move position, got %v", clock.Position())
	}
}

func TestEndedLeavesPosition(t *testing.T) {
	media := &fakeMedia{}
	clock := NewClock(media)
	clock.HandleMetadataLoaded(60)

	if err := clock.Play(); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	clock.HandleTimeUpdate(60)
	clock.HandleEnded()

	if clock.Playing() {
		t.Error("ended clock should not be playing")
	}
	if !clock.Ended() {
		t.Error("ended flag should be set")
	}
	if clock.Position() != 60 {
		t.Errorf("position rewound: got %v, want 60", clock.Position())
	}

	// seeking clears the ended flag
	if err := clock.Seek(10); err != nil {
		t.Fatalf("seek failed: %v", err)
	}
	if clock.Ended() {
		t.Error("seek should clear ended")
	}
}

func TestOnTimeUpdateDispatch(t *testing.T) {
	clock := NewClock(&fakeMedia{})

	var order []int
	clock.OnTimeUpdate(func(seconds float64) {
		order = append(order, 1)
	})
	clock.OnTimeUpdate(func(seconds float64) {
		order = append(order, 2)
		if got := clock.Position(); got != seconds {
			t.Errorf("position during tick: got %v, want %v", got, seconds)
		}
	})

	clock.HandleTimeUpdate(12.5)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("callbacks ran as %v, want [1 2]", order)
	}
	if clock.Position() != 12.5 {
		t.Errorf("position: got %v, want 12.5", clock.Position())
	}
}
