package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/kasetapp/kaset/internal/export"
	"github.com/kasetapp/kaset/internal/media"
	"github.com/kasetapp/kaset/internal/player"
	"github.com/spf13/cobra"
)

var followCmd = &cobra.Command{
	Use:   "follow [snapshot_file | transcription_id]",
	Short: "Play the transcript against a real-time clock",
	Long: `Follow simulates playback: a clock advances in real time and each segment
is printed the moment it becomes active, the way the web player highlights
the line under the playhead.

No audio is decoded. The clock duration comes from --media (probed with
ffprobe), then the backend-reported duration, then the end of the last
segment.

Examples:
  kaset follow interview.json
  kaset follow interview.json --from 90
  kaset follow interview.json --media interview.mp3`,
	Args: cobra.ExactArgs(1),
	RunE: runFollow,
}

func init() {
	rootCmd.AddCommand(followCmd)

	followCmd.Flags().String("media", "", "Local media file to probe for duration")
	followCmd.Flags().Float64("from", 0, "Start position in seconds")
	followCmd.Flags().
		StringArrayP("rename", "r", nil, "Rename a speaker (id=name, repeatable)")
	followCmd.Flags().
		Duration("tick", 250*time.Millisecond, "Position update interval")
}

func runFollow(cmd *cobra.Command, args []string) error {
	store, err := loadStore(cmd, args[0])
	if err != nil {
		return err
	}
	if store.Len() == 0 {
		return fmt.Errorf("nothing to follow: transcript has no timed segments")
	}

	renames, _ := cmd.Flags().GetStringArray("rename")
	if err := applyRenames(store, renames); err != nil {
		return err
	}

	// duration preference: probed media file, then the backend-reported
	// value, then the end of the last segment
	duration := store.Duration()
	if duration == 0 {
		duration = store.Segments()[store.Len()-1].End
	}
	if mediaPath, _ := cmd.Flags().GetString("media"); mediaPath != "" {
		duration, err = media.ProbeDuration(mediaPath)
		if err != nil {
			return err
		}
	}

	sim := player.NewSimulated(duration)
	clock := player.NewClock(sim)
	clock.HandleMetadataLoaded(duration)
	ctrl := player.NewSync(store, clock)

	palette := speakerPalette(store.Speakers())
	timecode := color.New(color.Faint).SprintFunc()

	lastActive := -1
	ctrl.Follow(func(seconds float64, active int) {
		if active == lastActive {
			return
		}
		lastActive = active
		if active < 0 {
			return
		}
		seg, _ := store.Segment(active)
		fmt.Printf("%s %s %s\n",
			timecode("["+export.Timecode(seg.Start)+"]"),
			palette[seg.SpeakerID](speakerLabel(store, seg.SpeakerID)+":"),
			seg.Text,
		)
	})

	if from, _ := cmd.Flags().GetFloat64("from"); from > 0 {
		if err := clock.Seek(from); err != nil {
			return err
		}
	}
	if err := clock.Play(); err != nil {
		return err
	}

	logger.Infow("Following transcript",
		"title", store.Title(),
		"segments", store.Len(),
		"duration", duration,
	)

	interval, _ := cmd.Flags().GetDuration("tick")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// one goroutine consumes the ticks, so every clock event runs to
	// completion before the next one is dispatched
	for now := range ticker.C {
		clock.HandleTimeUpdate(sim.Advance(now))
		if sim.Done() {
			clock.HandleEnded()
			break
		}
	}

	logger.Infow("Playback finished", "position", clock.Position())
	return nil
}
