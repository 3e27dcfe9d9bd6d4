package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/dustin/go-humanize"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/api"
	"github.com/vlctrack/vlctrack/color"
	"github.com/vlctrack/vlctrack/filesystem"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/icon"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/log"
	"github.com/vlctrack/vlctrack/open"
	"github.com/vlctrack/vlctrack/progress"
	"github.com/vlctrack/vlctrack/rename"
	"github.com/vlctrack/vlctrack/style"
	"github.com/vlctrack/vlctrack/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)
}

// historyEditor applies deletions to the history.
type historyEditor interface {
	Delete(ctx context.Context, path string, removeFile bool) error
	Clear(ctx context.Context) error
}

type storeEditor struct {
	store history.Store
}

func (e storeEditor) Delete(_ context.Context, path string, removeFile bool) error {
	return e.store.Delete(path, removeFile)
}

func (e storeEditor) Clear(context.Context) error {
	return e.store.Clear()
}

// newHistoryEditor edits through a watcher serving api.listen when one
// answers, so its owner loop stays the only writer. Otherwise store is edited.
func newHistoryEditor(ctx context.Context, store history.Store) historyEditor {
	addr := viper.GetString(key.APIListen)
	if addr == "" {
		return storeEditor{store: store}
	}

	client := api.NewClient(addr)
	if err := client.Health(ctx); err != nil {
		log.Debugf("no watcher on %s, editing the history directly: %v", addr, err)
		return storeEditor{store: store}
	}

	log.Infof("editing the history through the watcher on %s", addr)
	return client
}

// historyCmd is the parent of the history management commands.
var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Inspect and edit the viewing history",
}

func printEntries(cmd *cobra.Command, entries []history.Entry, asJson bool) {
	if asJson {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "    ")
		handleErr(encoder.Encode(entries))
		return
	}

	if len(entries) == 0 {
		cmd.Println(style.Faint("History is empty"))
		return
	}

	for _, entry := range entries {
		line := style.Fg(style.LevelColor(entry.Level()))(entry.String())
		if entry.Length > 0 && !entry.Watched {
			line += style.Faint(" / " + progress.Timestamp(entry.Length))
		}
		cmd.Println(line)
	}
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().BoolP("json", "j", false, "Print the history as JSON")
	historyListCmd.Flags().BoolP("reverse", "r", false, "Newest entries first")
}

// historyListCmd prints every history entry.
var historyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the viewing history",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer util.Ignore(store.Close)

		entries, err := store.Load()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("reverse")) {
			entries = lo.Reverse(entries)
		}

		printEntries(cmd, entries, lo.Must(cmd.Flags().GetBool("json")))
	},
}

func init() {
	historyCmd.AddCommand(historySearchCmd)
	historySearchCmd.Flags().BoolP("json", "j", false, "Print the matches as JSON")
}

// historySearchCmd fuzzy-matches file names in the history.
var historySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search the viewing history by file name",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer util.Ignore(store.Close)

		entries, err := store.Load()
		handleErr(err)

		printEntries(cmd, history.Search(entries, strings.Join(args, " ")), lo.Must(cmd.Flags().GetBool("json")))
	},
}

func init() {
	historyCmd.AddCommand(historyDeleteCmd)
	historyDeleteCmd.Flags().StringP("file", "f", "", "File of the entry to delete, exactly as recorded")
	historyDeleteCmd.Flags().BoolP("remove", "r", false, "Also delete the media file from disk")
	historyDeleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	lo.Must0(historyDeleteCmd.MarkFlagRequired("file"))
	lo.Must0(historyDeleteCmd.RegisterFlagCompletionFunc("file", completionHistoryFiles))
}

func completionHistoryFiles(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	store, err := history.Open(historyBackend(), historyPath())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer util.Ignore(store.Close)

	entries, err := store.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return lo.Map(entries, func(e history.Entry, _ int) string {
		return e.File
	}), cobra.ShellCompDirectiveNoFileComp
}

// historyDeleteCmd removes one entry and optionally its file.
var historyDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"rm"},
	Short:   "Delete a history entry",
	Long: `Delete a history entry.
With --remove the media file is deleted first. If that fails the entry is kept.
When a watcher serves api.listen the deletion is sent to it.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			file       = lo.Must(cmd.Flags().GetString("file"))
			removeFile = lo.Must(cmd.Flags().GetBool("remove"))
			yes        = lo.Must(cmd.Flags().GetBool("yes"))
		)

		store := openStore()
		defer util.Ignore(store.Close)

		entries, err := store.Load()
		handleErr(err)

		entry, found := lo.Find(entries, func(e history.Entry) bool {
			return e.File == file
		})
		if !found {
			cmd.Printf("%s %s is not in the history\n", icon.Get(icon.Warn), style.Fg(color.Yellow)(file))
			return
		}

		if removeFile && !yes {
			confirm := survey.Confirm{
				Message: deletePrompt(entry),
				Default: false,
			}
			var response bool
			handleErr(survey.AskOne(&confirm, &response))

			if !response {
				return
			}
		}

		err = newHistoryEditor(cmd.Context(), store).Delete(cmd.Context(), file, removeFile)
		var deletionErr *history.DeletionError
		if errors.As(err, &deletionErr) {
			handleErr(fmt.Errorf("could not delete %s, the history entry was kept: %w", deletionErr.File, deletionErr.Err))
		}
		handleErr(err)

		cmd.Printf("%s deleted %s\n", icon.Get(icon.Trash), style.Fg(color.Purple)(entry.Name()))
	},
}

// deletePrompt names the file and its size, e.g. "Delete Foo.mp4 (1.2 GB) from disk?".
func deletePrompt(entry history.Entry) string {
	name := entry.Name()

	info, err := filesystem.API().Stat(rename.LocalPath(entry.File))
	if err != nil {
		return fmt.Sprintf("Delete %s from disk?", name)
	}

	return fmt.Sprintf("Delete %s (%s) from disk?", name, humanize.Bytes(uint64(info.Size())))
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	historyClearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// historyClearCmd removes every entry, leaving media files alone.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every history entry",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer util.Ignore(store.Close)

		entries, err := store.Load()
		handleErr(err)

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			confirm := survey.Confirm{
				Message: fmt.Sprintf("Remove %s from the history?", util.Quantify(len(entries), "entry", "entries")),
				Default: false,
			}
			var response bool
			handleErr(survey.AskOne(&confirm, &response))

			if !response {
				return
			}
		}

		handleErr(newHistoryEditor(cmd.Context(), store).Clear(cmd.Context()))
		cmd.Printf("%s history cleared\n", icon.Get(icon.Success))
	},
}

func init() {
	historyCmd.AddCommand(historyOpenCmd)
	historyOpenCmd.Flags().StringP("file", "f", "", "File of the entry to open, exactly as recorded")
	historyOpenCmd.Flags().StringP("with", "w", "", "Application to open it with")
	lo.Must0(viper.BindPFlag(key.PlayerOpenWith, historyOpenCmd.Flags().Lookup("with")))
	lo.Must0(historyOpenCmd.RegisterFlagCompletionFunc("file", completionHistoryFiles))
}

// historyOpenCmd launches an entry's file, the last entry by default.
var historyOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the file of a history entry, the last one by default",
	Run: func(cmd *cobra.Command, args []string) {
		file := lo.Must(cmd.Flags().GetString("file"))

		store := openStore()
		defer util.Ignore(store.Close)

		entries, err := store.Load()
		handleErr(err)

		if len(entries) == 0 {
			handleErr(errors.New("history is empty"))
		}

		entry, found := entries[len(entries)-1], true
		if file != "" {
			entry, found = lo.Find(entries, func(e history.Entry) bool {
				return e.File == file
			})
		}

		if !found {
			handleErr(fmt.Errorf("%s is not in the history", file))
		}

		handleErr(open.Media(entry.File))
		cmd.Printf("%s opened %s at %s\n", icon.Get(icon.Playing), style.Fg(color.Purple)(entry.Name()), style.Bold(entry.Timestamp))
	},
}

func init() {
	historyCmd.AddCommand(historySchemaCmd)
}

// historySchemaCmd prints the JSON schema of the history file.
var historySchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the history file",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			if t == reflect.TypeOf(history.Entry{}) {
				return "history.Entry"
			}
			return t.Name()
		}

		schema := reflector.Reflect([]history.Entry{})

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
