package player

import "time"

// Simulated is a Media whose position advances with wall time instead of
// decoded audio. It lets a terminal session follow a transcript in real
// time without any playback stack.
type Simulated struct {
	duration float64
	position float64
	playing  bool
	anchor   time.Time
}

// NewSimulated creates a stopped simulated media with the given duration
// in seconds (0 for unknown).
func NewSimulated(duration float64) *Simulated {
	if duration < 0 {
		duration = 0
	}
	return &Simulated{duration: duration}
}

func (m *Simulated) Play() error {
	if m.playing {
		return nil
	}
	m.playing = true
	m.anchor = time.Now()
	return nil
}

func (m *Simulated) Pause() error {
	if !m.playing {
		return nil
	}
	m.position = m.at(time.Now())
	m.playing = false
	return nil
}

func (m *Simulated) Seek(seconds float64) error {
	if seconds < 0 {
		seconds = 0
	}
	m.position = seconds
	m.anchor = time.Now()
	return nil
}

// Advance reports the playback position as of now, stopping at the end
// of the media. The caller feeds the result into the clock as a
// time-update event.
func (m *Simulated) Advance(now time.Time) float64 {
	pos := m.at(now)
	if m.duration > 0 && pos >= m.duration {
		pos = m.duration
		m.position = pos
		m.playing = false
	}
	return pos
}

// Done reports whether playback ran to the end of the media.
func (m *Simulated) Done() bool {
	return m.duration > 0 && !m.playing && m.position >= m.duration
}

func (m *Simulated) at(now time.Time) float64 {
	if !m.playing {
		return m.position
	}
	return m.position + now.Sub(m.anchor).Seconds()
}
