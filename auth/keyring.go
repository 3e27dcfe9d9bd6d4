// Package auth stores the VLC rc password in the system keyring so it does
// not have to live in the config file.
package auth

import (
	"errors"

	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/constant"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/log"
	"github.com/zalando/go-keyring"
)

const user = "vlc-rc-password"

// SetPassword persists the rc password to the system keyring.
func SetPassword(password string) error {
	return keyring.Set(constant.App, user, password)
}

// GetPassword retrieves the rc password from the system keyring.
func GetPassword() (string, error) {
	return keyring.Get(constant.App, user)
}

// DeletePassword removes the rc password from the system keyring.
// A password that was never stored is not an error.
func DeletePassword() error {
	if err := keyring.Delete(constant.App, user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// Password resolves the rc password: the config value wins, then the
// keyring, then empty.
func Password() string {
	if password := viper.GetString(key.PlayerPassword); password != "" {
		return password
	}

	password, err := GetPassword()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Warnf("keyring unavailable: %v", err)
		}
		return ""
	}

	return password
}
