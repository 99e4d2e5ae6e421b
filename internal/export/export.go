// Package export renders transcript snapshots into exchange formats.
// All renderers are pure: they read a snapshot and return a text payload,
// leaving any file or download handling to the caller.
package export

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/kasetapp/kaset/internal/transcript"
)

// Format identifies an export output format.
type Format string

const (
	FormatTXT Format = "txt"
	FormatSRT Format = "srt"
)

// ErrNoSegments is returned when subtitle export is requested for a
// transcript without timed segments; SRT has no empty representation.
var ErrNoSegments = errors.New("transcript has no timed segments")

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTXT:
		return FormatTXT, nil
	case FormatSRT:
		return FormatSRT, nil
	}
	return "", fmt.Errorf("unsupported export format %q: use txt or srt", s)
}

// Render produces the payload for the requested format.
func Render(snap transcript.Snapshot, format Format) (string, error) {
	switch format {
	case FormatTXT:
		return Text(snap), nil
	case FormatSRT:
		return SRT(snap)
	}
	return "", fmt.Errorf("unsupported export format: %s", format)
}

// Text renders each segment as "{displayName}: {text}" joined by blank
// lines, in store order. Without segments it falls back to the flat text
// verbatim, or the empty string. The title is never embedded; it only
// appears in the suggested filename.
func Text(snap transcript.Snapshot) string {
	if len(snap.Segments) == 0 {
		return snap.FlatText
	}

	lines := make([]string, 0, len(snap.Segments))
	for _, seg := range snap.Segments {
		lines = append(lines, fmt.Sprintf("%s: %s", displayName(snap, seg.SpeakerID), seg.Text))
	}
	return strings.Join(lines, "\n\n")
}

// SRT renders one numbered cue per segment in store order. Sequence
// numbers start at 1 and never skip, regardless of gaps in time.
func SRT(snap transcript.Snapshot) (string, error) {
	if len(snap.Segments) == 0 {
		return "", ErrNoSegments
	}

	var sb strings.Builder
	for i, seg := range snap.Segments {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n", Timecode(seg.Start), Timecode(seg.End)))
		sb.WriteString(fmt.Sprintf("%s: %s\n\n", displayName(snap, seg.SpeakerID), seg.Text))
	}
	return sb.String(), nil
}

// Timecode formats a seconds offset as an SRT timestamp (HH:MM:SS,mmm).
// The conversion truncates at the millisecond, never rounds: 1.9995
// renders as 00:00:01,999, which is what subtitle tooling expects.
// All fields derive from one microsecond integer so that binary float
// drift (3661.2 sits just below the decimal value) cannot push a
// millisecond down to ,199 where the decimal arithmetic says ,200.
func Timecode(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	us := int64(math.Round(seconds * 1e6))

	hours := us / 3_600_000_000
	minutes := us / 60_000_000 % 60
	secs := us / 1_000_000 % 60
	millis := us / 1000 % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// Filename suggests a name for the export sink.
func Filename(title string, format Format) string {
	return fmt.Sprintf("%s.%s", title, format)
}

// displayName resolves a speaker id through the snapshot's alias table,
// mirroring the store: alias if present (even when empty), raw id
// otherwise.
func displayName(snap transcript.Snapshot, id string) string {
	if name, ok := snap.Aliases[id]; ok {
		return name
	}
	return id
}
