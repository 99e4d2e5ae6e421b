package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kasetapp/kaset/internal/api"
	"github.com/kasetapp/kaset/internal/transcript"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transcriptions on the backend, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	server, token, err := serverFlags(cmd)
	if err != nil {
		return err
	}

	records, err := api.New(server, token).List(cmd.Context())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no transcriptions")
		return nil
	}

	for _, r := range records {
		fmt.Printf("%-36s  %-12s  %-4s  %-20s  %s\n",
			r.ID,
			statusLabel(r.Status),
			r.Language,
			r.DateCreated,
			r.Title,
		)
	}
	return nil
}

// statusLabel colors a status the way the dashboard badges do. An
// unknown wire value is printed raw rather than dropped.
func statusLabel(raw string) string {
	status, err := transcript.ParseStatus(raw)
	if err != nil {
		return raw
	}
	switch status {
	case transcript.StatusCompleted:
		return color.GreenString(string(status))
	case transcript.StatusProcessing:
		return color.YellowString(string(status))
	case transcript.StatusError:
		return color.RedString(string(status))
	case transcript.StatusUploaded:
		return string(status)
	}
	return raw
}
