// Package media wraps ffprobe lookups for local media files.
package media

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ProbeDuration reads the duration of an audio/video file in seconds.
func ProbeDuration(path string) (float64, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, fmt.Errorf("file not found: %s", path)
	}

	data, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	duration := gjson.Get(data, "format.duration")
	if !duration.Exists() {
		return 0, fmt.Errorf("no duration in probe output for %s", path)
	}
	if duration.Float() <= 0 {
		return 0, fmt.Errorf("invalid duration %q for %s", duration.String(), path)
	}
	return duration.Float(), nil
}
