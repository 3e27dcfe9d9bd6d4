package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/icon"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/style"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd tries one poll and explains what went wrong.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that VLC can be reached over its telnet interface",
	Run: func(cmd *cobra.Command, args []string) {
		poller := newPoller()
		result := poller.Poll(cmd.Context())

		switch {
		case result.Outcome == player.Loaded:
			cmd.Printf("%s connected to %s\n%s %s\n", icon.Get(icon.Success), poller.Address(), stateIcon(result.Status.State), result.Status)
		case errors.Is(result.Err, player.ErrNothingPlaying):
			cmd.Printf("%s connected to %s, nothing is playing\n", icon.Get(icon.Success), poller.Address())
		case result.Outcome == player.Absent:
			printCheckFailure(
				fmt.Sprintf("No %q process is running.", viper.GetString(key.PlayerProcess)),
				"Start VLC, or clear the check with:\n  "+style.New().Foreground(style.AccentColor).Bold(true).Render(`vlctrack config set player.process ""`),
			)
		case errors.Is(result.Err, player.ErrWrongPassword):
			printCheckFailure(
				"VLC rejected the password.",
				"Store the right one with:\n  "+style.New().Foreground(style.AccentColor).Bold(true).Render("vlctrack auth set"),
			)
		default:
			printCheckFailure(
				fmt.Sprintf("Could not talk to VLC on %s: %v", poller.Address(), result.Err),
				"Enable the telnet interface in VLC, or start it with:\n  "+
					style.New().Foreground(style.AccentColor).Bold(true).Render("vlc --extraintf telnet --telnet-password <password>"),
			)
		}
	},
}

func printCheckFailure(problem, suggestion string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: VLC Unreachable", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(problem)

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			"\n",
			suggestion,
		),
	))
}
