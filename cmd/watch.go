package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/api"
	"github.com/vlctrack/vlctrack/color"
	"github.com/vlctrack/vlctrack/icon"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/style"
	"github.com/vlctrack/vlctrack/tracker"
	"github.com/vlctrack/vlctrack/util"
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("listen", "l", "", "Serve the HTTP API on this address, e.g. 127.0.0.1:8420")
	lo.Must0(viper.BindPFlag(key.APIListen, watchCmd.Flags().Lookup("listen")))

	watchCmd.Flags().BoolP("json", "j", false, "Print events as JSON lines")
}

// watchCmd tracks VLC without the terminal UI.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Track VLC in the foreground and print what gets recorded",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signalContext()
		defer stop()

		store := openStore()
		defer util.Ignore(store.Close)

		t, poller := newTracker(store)

		if addr := viper.GetString(key.APIListen); addr != "" {
			server := api.New(addr, t)
			go func() {
				if err := server.Start(); err != nil {
					handleErr(fmt.Errorf("api: %w", err))
				}
			}()
			defer func() {
				_ = server.Shutdown(cmd.Context())
			}()

			cmd.Printf("%s serving api on %s\n", icon.Get(icon.Link), style.Fg(color.Cyan)("http://"+addr+"/api/v1"))
		}

		cmd.Printf("%s waiting for VLC on %s\n", icon.Get(icon.Info), style.Fg(color.Yellow)(poller.Address()))

		done := runTracker(ctx, t)

		var (
			asJson  = lo.Must(cmd.Flags().GetBool("json"))
			printer = newEventPrinter(cmd)
			encoder = json.NewEncoder(cmd.OutOrStdout())
		)

		for event := range t.Events() {
			if asJson {
				handleErr(encoder.Encode(event))
				continue
			}

			printer.print(event)
		}

		<-done
	},
}

// eventPrinter prints tracker events, collapsing repeated now-playing polls.
type eventPrinter struct {
	cmd  *cobra.Command
	last player.Status
}

func newEventPrinter(cmd *cobra.Command) *eventPrinter {
	return &eventPrinter{cmd: cmd}
}

func (p *eventPrinter) print(event tracker.Event) {
	switch event.Type {
	case tracker.EventNowPlaying:
		status := event.Status
		if status.File == p.last.File && status.State == p.last.State {
			p.last = status
			return
		}

		p.last = status
		p.cmd.Printf("%s %s\n", stateIcon(status.State), status)
	case tracker.EventStopped:
		p.last = player.Status{}

		entry, ok := event.Entry.Get()
		if !ok {
			p.cmd.Printf("%s stopped, nothing recorded\n", icon.Get(icon.Stopped))
			return
		}

		if entry.Watched {
			p.cmd.Printf("%s %s %s\n", icon.Get(icon.Watched), style.Fg(color.Green)("watched"), entry.Name())
			return
		}

		p.cmd.Printf("%s %s %s at %s\n", icon.Get(icon.Stopped), style.Fg(color.Yellow)("stopped"), entry.Name(), style.Bold(entry.Timestamp))
	}
}

func stateIcon(state player.State) string {
	if state == player.Paused {
		return icon.Get(icon.Paused)
	}
	return icon.Get(icon.Playing)
}
