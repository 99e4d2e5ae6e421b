package player

import (
	"fmt"

	"github.com/kasetapp/kaset/internal/transcript"
)

// Sync binds the playback clock to segment lookups: it answers "which
// segment is active at time t" and turns segment activations into seeks.
type Sync struct {
	store *transcript.Store
	clock *Clock
}

func NewSync(store *transcript.Store, clock *Clock) *Sync {
	return &Sync{store: store, clock: clock}
}

// ActiveSegmentIndex returns the index of the first segment whose
// [start, end) interval contains t, or -1 when t falls before the first
// segment, after the last one, or in an inter-segment gap.
//
// The scan runs in store order, so when a broken diarization result
// delivers overlapping segments the earliest stored one wins. Segment
// counts are small enough that a fresh linear scan per position update
// is cheaper than maintaining an index.
func (s *Sync) ActiveSegmentIndex(t float64) int {
	for i, seg := range s.store.Segments() {
		if t >= seg.Start && t < seg.End {
			return i
		}
	}
	return -1
}

// ActivateSegment seeks playback to the segment's start. Play state is
// left alone; the caller decides separately whether to start playback.
func (s *Sync) ActivateSegment(i int) error {
	seg, ok := s.store.Segment(i)
	if !ok {
		return fmt.Errorf("segment index %d out of range", i)
	}
	return s.clock.Seek(seg.Start)
}

// Skip moves playback by delta seconds; negative values rewind. The
// clock clamps, so skipping past either edge is safe. Skips are not
// segment aware and do not snap to boundaries.
func (s *Sync) Skip(delta float64) error {
	return s.clock.Seek(s.clock.Position() + delta)
}

// Follow invokes fn on every clock tick with the freshly recomputed
// active segment index. Nothing is cached or coalesced: one notification,
// one scan, one callback.
func (s *Sync) Follow(fn func(seconds float64, active int)) {
	s.clock.OnTimeUpdate(func(seconds float64) {
		fn(seconds, s.ActiveSegmentIndex(seconds))
	})
}
