package cli

import (
	"fmt"

	"github.com/kasetapp/kaset/internal/api"
	"github.com/kasetapp/kaset/internal/transcript"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [transcription_id]",
	Short: "Download a completed transcription as a local snapshot",
	Long: `Fetch retrieves a transcription record from the backend, decodes its
speaker data, and saves a snapshot file that the other commands work on.

Only completed transcriptions can be fetched; uploaded and processing ones
are reported with their current status.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	server, token, err := serverFlags(cmd)
	if err != nil {
		return err
	}

	store, err := fetchStore(cmd, api.New(server, token), args[0])
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = store.Title() + ".json"
	}

	if err := transcript.SaveFile(outputPath, store.Snapshot()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	logger.Infow("Snapshot saved",
		"path", outputPath,
		"title", store.Title(),
		"segments", store.Len(),
	)
	return nil
}
