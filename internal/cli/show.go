package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kasetapp/kaset/internal/export"
	"github.com/kasetapp/kaset/internal/transcript"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [snapshot_file | transcription_id]",
	Short: "Print a transcript with speaker labels and timecodes",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().
		StringArrayP("rename", "r", nil, "Rename a speaker (id=name, repeatable)")
	showCmd.Flags().Bool("no-color", false, "Disable colored output")
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := loadStore(cmd, args[0])
	if err != nil {
		return err
	}

	renames, _ := cmd.Flags().GetStringArray("rename")
	if err := applyRenames(store, renames); err != nil {
		return err
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	fmt.Println(color.New(color.Bold).Sprint(store.Title()))
	fmt.Println()

	if store.Len() == 0 {
		fmt.Println(store.FlatText())
		printSummary(store)
		return nil
	}

	palette := speakerPalette(store.Speakers())
	timecode := color.New(color.Faint).SprintFunc()
	for _, seg := range store.Segments() {
		label := speakerLabel(store, seg.SpeakerID)
		fmt.Printf("%s %s %s\n",
			timecode("["+export.Timecode(seg.Start)+"]"),
			palette[seg.SpeakerID](label+":"),
			seg.Text,
		)
	}
	printSummary(store)
	return nil
}

// printSummary shows the backend-generated summary when one exists,
// matching the summary card on the web project page.
func printSummary(store *transcript.Store) {
	if store.Summary() == "" {
		return
	}
	fmt.Println()
	fmt.Println(color.New(color.Bold).Sprint("Summary"))
	fmt.Println(store.Summary())
}

// speakerLabel is the display fallback: a cleared alias still exports as
// empty, but on screen the raw id is more useful than a blank label.
func speakerLabel(store *transcript.Store, id string) string {
	if name := store.DisplayName(id); name != "" {
		return name
	}
	return id
}

// speakerPalette assigns each distinct speaker a stable terminal color.
func speakerPalette(ids []string) map[string]func(a ...interface{}) string {
	colors := []*color.Color{
		color.New(color.FgCyan, color.Bold),
		color.New(color.FgGreen, color.Bold),
		color.New(color.FgMagenta, color.Bold),
		color.New(color.FgYellow, color.Bold),
		color.New(color.FgBlue, color.Bold),
	}

	palette := make(map[string]func(a ...interface{}) string, len(ids))
	for i, id := range ids {
		palette[id] = colors[i%len(colors)].SprintFunc()
	}
	return palette
}
