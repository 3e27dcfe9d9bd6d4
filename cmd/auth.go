package cmd

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/auth"
	"github.com/vlctrack/vlctrack/icon"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd manages the rc password kept in the OS keyring.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the VLC telnet password stored in the system keyring",
	Long: `Manage the VLC telnet password stored in the system keyring.
A non-empty player.password config value takes precedence over the keyring.`,
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().String("password", "", "Password to store instead of prompting for it")
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the VLC telnet password",
	Run: func(cmd *cobra.Command, args []string) {
		password := lo.Must(cmd.Flags().GetString("password"))

		if password == "" {
			prompt := survey.Password{
				Message: "VLC telnet password",
			}
			handleErr(survey.AskOne(&prompt, &password, survey.WithValidator(survey.Required)))
		}

		if password == "" {
			handleErr(errors.New("password is empty"))
		}

		handleErr(auth.SetPassword(password))
		cmd.Printf("%s password saved to the keyring\n", icon.Get(icon.Key))

		if viper.GetString(key.PlayerPassword) != "" {
			cmd.Printf("%s %s is set and will be used instead\n", icon.Get(icon.Warn), style.Bold(key.PlayerPassword))
		}
	},
}

func init() {
	authCmd.AddCommand(authClearCmd)
}

var authClearCmd = &cobra.Command{
	Use:     "clear",
	Aliases: []string{"logout"},
	Short:   "Remove the stored VLC telnet password",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeletePassword())
		cmd.Printf("%s password removed from the keyring\n", icon.Get(icon.Success))
	},
}
