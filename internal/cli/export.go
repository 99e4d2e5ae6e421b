package cli

import (
	"fmt"
	"os"

	"github.com/kasetapp/kaset/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [snapshot_file | transcription_id]",
	Short: "Export a transcript to plain text or SRT subtitles",
	Long: `Export renders a transcript into an exchange format: plain text with one
"Speaker: text" paragraph per segment, or numbered SRT subtitle cues.

A transcript without timed segments exports its flat text in txt mode;
srt mode requires segments.

Examples:
  kaset export interview.json
  kaset export interview.json -f srt -o subs.srt
  kaset export interview.json -r SPEAKER_00=Ali -r SPEAKER_01=Beth
  kaset export 3f2a... --server https://backend.example -f srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "txt", "Output format (txt, srt)")
	exportCmd.Flags().
		StringArrayP("rename", "r", nil, "Rename a speaker (id=name, repeatable)")
}

func runExport(cmd *cobra.Command, args []string) error {
	formatStr, _ := cmd.Flags().GetString("format")
	format, err := export.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	store, err := loadStore(cmd, args[0])
	if err != nil {
		return err
	}

	renames, _ := cmd.Flags().GetStringArray("rename")
	if err := applyRenames(store, renames); err != nil {
		return err
	}

	content, err := export.Render(store.Snapshot(), format)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = export.Filename(store.Title(), format)
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	logger.Infow("Export written",
		"path", outputPath,
		"format", string(format),
		"segments", store.Len(),
	)
	return nil
}
