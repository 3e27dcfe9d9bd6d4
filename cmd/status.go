package cmd

import (
	"encoding/json"
	"errors"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vlctrack/vlctrack/icon"
	"github.com/vlctrack/vlctrack/log"
	"github.com/vlctrack/vlctrack/nowplaying"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/style"
)

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolP("json", "j", false, "Print the status as JSON")
	statusCmd.Flags().Bool("poll", false, "Ask VLC directly even if a watcher is running")
}

// statusCmd prints what is playing right now.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what VLC is playing",
	Long: `Show what VLC is playing.
When a watcher is running its last snapshot is used, otherwise VLC is asked directly.`,
	Run: func(cmd *cobra.Command, args []string) {
		current := currentStatus(cmd)

		if lo.Must(cmd.Flags().GetBool("json")) {
			status, ok := current.Get()
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(nowplaying.Snapshot{Playing: ok, Status: status}))
			return
		}

		status, ok := current.Get()
		if !ok {
			cmd.Printf("%s %s\n", icon.Get(icon.Stopped), style.Faint("Nothing is playing"))
			return
		}

		cmd.Printf("%s %s\n", stateIcon(status.State), status)
	},
}

func currentStatus(cmd *cobra.Command) mo.Option[player.Status] {
	if !lo.Must(cmd.Flags().GetBool("poll")) {
		snapshot, fresh, err := nowplaying.New("").Get()
		if err != nil {
			log.Warnf("read now playing: %v", err)
		} else if fresh {
			return snapshot.Current()
		}
	}

	result := newPoller().Poll(cmd.Context())
	switch result.Outcome {
	case player.Loaded:
		return mo.Some(result.Status)
	case player.Absent:
		return mo.None[player.Status]()
	default:
		if errors.Is(result.Err, player.ErrNothingPlaying) {
			return mo.None[player.Status]()
		}
		handleErr(result.Err)
		return mo.None[player.Status]()
	}
}
