package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/kasetapp/kaset/internal/api"
	"github.com/kasetapp/kaset/internal/logging"
	"github.com/kasetapp/kaset/internal/transcript"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kaset",
	Short: "Playback-synced transcript viewer and exporter",
	Long: `Kaset works with transcription snapshots produced by the kaset backend:
it follows a transcript against a playback clock, renames speakers, and
exports the result to plain text or SRT subtitles.

Commands accept either a local snapshot file or a backend transcription id.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		String("server", "", "Backend URL (or set KASET_SERVER env var)")
	rootCmd.PersistentFlags().
		String("token", "", "Backend access token (or set KASET_TOKEN env var)")
}

// serverFlags resolves the backend connection settings from flags and
// environment, in that order.
func serverFlags(cmd *cobra.Command) (server, token string, err error) {
	server, _ = cmd.Flags().GetString("server")
	if server == "" {
		server = os.Getenv("KASET_SERVER")
	}
	if server == "" {
		return "", "", fmt.Errorf("backend URL is required: use --server flag or set KASET_SERVER environment variable")
	}
	token, _ = cmd.Flags().GetString("token")
	if token == "" {
		token = os.Getenv("KASET_TOKEN")
	}
	return server, token, nil
}

// applyRenames parses --rename id=name pairs and applies them to the
// store. Renames for unknown speaker ids are silently ignored, matching
// the store contract.
func applyRenames(store *transcript.Store, pairs []string) error {
	for _, pair := range pairs {
		id, name, ok := strings.Cut(pair, "=")
		if !ok || id == "" {
			return fmt.Errorf("invalid rename %q: expected id=name", pair)
		}
		store.RenameSpeaker(id, name)
	}
	return nil
}

// loadStore resolves an argument as a local snapshot file first, then as
// a backend transcription id.
func loadStore(cmd *cobra.Command, arg string) (*transcript.Store, error) {
	if _, err := os.Stat(arg); err == nil {
		return transcript.LoadFile(arg)
	}

	server, token, err := serverFlags(cmd)
	if err != nil {
		return nil, fmt.Errorf("%q is not a local snapshot and no backend is configured: %w", arg, err)
	}
	return fetchStore(cmd, api.New(server, token), arg)
}

// fetchStore retrieves a transcription record and loads it into a fresh
// store. Only completed records carry usable segments or flat text.
func fetchStore(cmd *cobra.Command, client *api.Client, id string) (*transcript.Store, error) {
	record, err := client.Transcription(cmd.Context(), id)
	if err != nil {
		return nil, err
	}

	status, err := transcript.ParseStatus(record.Status)
	if err != nil {
		return nil, err
	}
	switch status {
	case transcript.StatusCompleted:
	case transcript.StatusUploaded, transcript.StatusProcessing:
		return nil, fmt.Errorf("transcription %s is not ready yet (status %s)", id, status)
	case transcript.StatusError:
		return nil, fmt.Errorf("transcription %s failed on the backend", id)
	}

	segments, err := record.Segments()
	if err != nil {
		return nil, fmt.Errorf("transcription %s has malformed speaker data: %w", id, err)
	}

	store := transcript.NewStore()
	store.Load(record.Title, segments, record.ResultText)
	store.SetSummary(record.Summary)
	store.SetDuration(record.Duration)
	return store, nil
}
