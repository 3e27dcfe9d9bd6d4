// Package cmd implements the command-line interface for vlctrack.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/auth"
	"github.com/vlctrack/vlctrack/color"
	"github.com/vlctrack/vlctrack/config"
	"github.com/vlctrack/vlctrack/constant"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/icon"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/log"
	"github.com/vlctrack/vlctrack/nowplaying"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/style"
	"github.com/vlctrack/vlctrack/tracker"
	"github.com/vlctrack/vlctrack/tui"
	"github.com/vlctrack/vlctrack/util"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("host", "", "Host of the VLC telnet interface")
	lo.Must0(viper.BindPFlag(key.PlayerHost, rootCmd.PersistentFlags().Lookup("host")))

	rootCmd.PersistentFlags().IntP("port", "p", 0, "Port of the VLC telnet interface")
	lo.Must0(viper.BindPFlag(key.PlayerPort, rootCmd.PersistentFlags().Lookup("port")))

	rootCmd.PersistentFlags().StringP("backend", "B", "", "History storage backend (json, sqlite)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("backend", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return history.Backends, cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.HistoryBackend, rootCmd.PersistentFlags().Lookup("backend")))

	rootCmd.Flags().BoolP("history", "H", false, "Open the history tab first")
}

// rootCmd tracks VLC in the terminal UI.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Remember where you stopped watching in VLC",
	Long: constant.Logo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Remember where you stopped watching in VLC"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		ctx, stop := signalContext()
		defer stop()

		store := openStore()
		defer util.Ignore(store.Close)

		t, poller := newTracker(store)
		done := runTracker(ctx, t)

		err := tui.Run(ctx, t, &tui.Options{
			History: lo.Must(cmd.Flags().GetBool("history")),
			Address: poller.Address(),
		})

		stop()
		<-done
		handleErr(err)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func historyBackend() string {
	return viper.GetString(key.HistoryBackend)
}

func historyPath() string {
	return viper.GetString(key.HistoryPath)
}

func openStore() history.Store {
	field := config.Default[key.HistoryBackend]
	handleErr(field.Validate(historyBackend()))

	store, err := history.Open(historyBackend(), historyPath())
	handleErr(err)
	return store
}

func newPoller() *player.Poller {
	return player.NewPoller(auth.Password())
}

// newTracker wires the poller and the now-playing snapshot to store.
func newTracker(store history.Store) (*tracker.Tracker, *player.Poller) {
	poller := newPoller()

	options := tracker.OptionsFromConfig()
	options.Publisher = nowplaying.New("")

	return tracker.New(poller, store, options), poller
}

// runTracker starts t in the background. The returned channel closes once
// the loop has exited.
func runTracker(ctx context.Context, t *tracker.Tracker) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := t.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error(err)
		}
	}()

	return done
}
