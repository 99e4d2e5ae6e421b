package player

import "errors"

// ErrNoMedia is reported when a playback operation is requested before
// the media resource is available (for example while the transcription
// is still processing).
var ErrNoMedia = errors.New("media resource unavailable")

// Media is the external playback primitive the clock wraps. It is the
// only thing in this package that touches actual media.
type Media interface {
	Play() error
	Pause() error
	Seek(seconds float64) error
}

// Clock normalizes a Media into a position model: it is the sole writer
// of position, duration, play state, and the ended flag, which every
// other component reads but never writes.
//
// The clock is event driven and not safe for concurrent use; feed it
// media notifications from one goroutine, and each handler runs to
// completion before the next event is dispatched.
type Clock struct {
	media    Media
	current  float64
	duration float64 // 0 until metadata loads
	playing  bool
	ended    bool
	onTick   []func(seconds float64)
}

func NewClock(media Media) *Clock {
	return &Clock{media: media}
}

// Play starts playback. Calling it while already playing is a no-op.
func (c *Clock) Play() error {
	if c.media == nil {
		return ErrNoMedia
	}
	if c.playing {
		return nil
	}
	if err := c.media.Play(); err != nil {
		return err
	}
	c.playing = true
	c.ended = false
	return nil
}

// Pause stops playback. Calling it while already paused is a no-op.
func (c *Clock) Pause() error {
	if c.media == nil {
		return ErrNoMedia
	}
	if !c.playing {
		return nil
	}
	if err := c.media.Pause(); err != nil {
		return err
	}
	c.playing = false
	return nil
}

// Seek clamps the target into [0, duration] and updates the position
// immediately, before the media catches up, so anything reflecting the
// position never lags the user's intent. While the duration is unknown
// only the lower bound is clamped.
func (c *Clock) Seek(seconds float64) error {
	if c.media == nil {
		return ErrNoMedia
	}
	target := clamp(seconds, c.duration)
	if err := c.media.Seek(target); err != nil {
		return err
	}
	c.current = target
	c.ended = false
	return nil
}

func (c *Clock) Position() float64 { return c.current }
func (c *Clock) Duration() float64 { return c.duration }
func (c *Clock) Playing() bool     { return c.playing }
func (c *Clock) Ended() bool       { return c.ended }

// OnTimeUpdate registers fn for every position notification. Callbacks
// run synchronously in registration order.
func (c *Clock) OnTimeUpdate(fn func(seconds float64)) {
	c.onTick = append(c.onTick, fn)
}

// HandleTimeUpdate is the media "time advanced" notification.
func (c *Clock) HandleTimeUpdate(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	c.current = seconds
	for _, fn := range c.onTick {
		fn(seconds)
	}
}

// HandleMetadataLoaded is the media "metadata loaded" notification,
// carrying the now-known duration.
func (c *Clock) HandleMetadataLoaded(duration float64) {
	if duration < 0 {
		duration = 0
	}
	c.duration = duration
}

// HandleEnded is the media "playback finished" notification. The
// position stays at its final value; there is no auto-rewind.
func (c *Clock) HandleEnded() {
	c.playing = false
	c.ended = true
}

func clamp(seconds, duration float64) float64 {
	if seconds < 0 {
		return 0
	}
	if duration > 0 && seconds > duration {
		return duration
	}
	return seconds
}
