package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/color"
	"github.com/vlctrack/vlctrack/config"
	"github.com/vlctrack/vlctrack/constant"
	"github.com/vlctrack/vlctrack/filesystem"
	"github.com/vlctrack/vlctrack/icon"
	"github.com/vlctrack/vlctrack/style"
	"github.com/vlctrack/vlctrack/where"
	"golang.org/x/exp/slices"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func configFile() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// lookupField returns the registered field or a suggestion for a misspelled key.
func lookupField(key string) (config.Field, error) {
	field, ok := config.Default[key]
	if !ok {
		return config.Field{}, errUnknownKey(key)
	}
	return field, nil
}

// keyArg takes the key from the first argument, falling back to --key.
func keyArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if key, _ := cmd.Flags().GetString("key"); key != "" {
		return key, nil
	}

	return "", errors.New("key is required as an argument or --key flag")
}

// changedFields lists fields whose current value differs from the default.
func changedFields() []config.Field {
	return lo.Filter(lo.Values(config.Default), func(f config.Field, _ int) bool {
		return fmt.Sprint(viper.Get(f.Key)) != fmt.Sprint(f.Value)
	})
}

func saveConfig() error {
	err := viper.WriteConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return viper.SafeWriteConfig()
	}
	return err
}

func printSet(cmd *cobra.Command, verb, key string, value any) {
	cmd.Printf(
		"%s %s %s to %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		verb,
		style.Fg(color.Purple)(key),
		style.Fg(color.Yellow)(fmt.Sprint(value)),
	)
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configCmd is the parent of the configuration commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage configuration.
A running watcher reads its settings on start, restart it to apply changes.`,
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only show these keys")
	configInfoCmd.Flags().BoolP("changed", "c", false, "Only show keys that differ from their default")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print the fields as JSON")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

// configInfoCmd describes configuration fields with their current values.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields and their current values",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys    = lo.Must(cmd.Flags().GetStringSlice("key"))
			changed = lo.Must(cmd.Flags().GetBool("changed"))
			fields  = lo.Values(config.Default)
		)

		if changed {
			fields = changedFields()
		}

		if len(keys) > 0 {
			fields = lo.Map(keys, func(key string, _ int) config.Field {
				field, err := lookupField(key)
				handleErr(err)
				return field
			})
		}

		slices.SortFunc(fields, func(a, b config.Field) int {
			return strings.Compare(a.Key, b.Key)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		if len(fields) == 0 {
			cmd.Println(style.Faint("Every key has its default value"))
			return
		}

		for i, field := range fields {
			cmd.Print(field.Pretty())

			if i < len(fields)-1 {
				cmd.Print("\n\n")
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "Key to update")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "New value")
	lo.Must0(configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

// configSetCmd writes one value to the config file.
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value.
Timeouts and the polling interval take milliseconds or a duration such as 1.5s.`,
	Example:           "  vlctrack config set tracker.interval 1s\n  vlctrack config set history.backend sqlite",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := keyArg(cmd, args)
		handleErr(err)

		field, err := lookupField(key)
		handleErr(err)

		words := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			words = args[1:]
		}

		value, err := field.Parse(words)
		handleErr(err)
		handleErr(field.Validate(value))

		viper.Set(key, value)
		handleErr(saveConfig())
		printSet(cmd, "set", key, value)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "Key to read")
	lo.Must0(configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

// configGetCmd prints the effective value of a key.
var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the effective value of a configuration key",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := keyArg(cmd, args)
		handleErr(err)

		_, err = lookupField(key)
		handleErr(err)

		cmd.Println(viper.Get(key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

// configWriteCmd writes the effective configuration to the config file.
var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the effective configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			err := filesystem.API().Remove(path)
			if err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		cmd.Printf("%s wrote config to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

// configDeleteCmd removes the config file, falling back to defaults.
var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Delete the config file",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		cmd.Printf("%s deleted config\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringP("key", "k", "", "Key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	lo.Must0(configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

// configResetCmd restores default values.
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default configuration values",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("key") && !cmd.Flags().Changed("all") {
			handleErr(errors.New("either --key or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for key, field := range config.Default {
				viper.Set(key, field.Value)
			}
			handleErr(saveConfig())
			cmd.Printf("%s reset all config values\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		field, err := lookupField(lo.Must(cmd.Flags().GetString("key")))
		handleErr(err)

		viper.Set(field.Key, field.Value)
		handleErr(saveConfig())
		printSet(cmd, "reset", field.Key, field.Value)
	},
}
