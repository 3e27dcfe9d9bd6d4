// Package open launches media files from the history, either with the
// system's default handler or with a named application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/constant"
	"github.com/vlctrack/vlctrack/filesystem"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/log"
	"github.com/vlctrack/vlctrack/rename"
)

// Launcher builds the command that opens a file. Replaced in tests.
var Launcher = command

// Media starts the file recorded at path without waiting for it to exit.
// The player.open_with key selects the application; empty uses the default handler.
func Media(path string) error {
	local := rename.LocalPath(path)

	if _, err := filesystem.API().Stat(local); err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(local), err)
	}

	cmd, ok := Launcher(local, viper.GetString(key.PlayerOpenWith))
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	log.Infof("opening %s", local)
	return cmd.Start()
}

func command(input, app string) (*exec.Cmd, bool) {
	if app != "" {
		return commandWith(input, app)
	}

	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	default:
		return nil, false
	}
}

func commandWith(input, app string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		return exec.Command("cmd", "/C", "start", "", app, input), true
	case constant.Darwin:
		return exec.Command("open", "-a", app, input), true
	case constant.Linux:
		return exec.Command(app, input), true
	default:
		return nil, false
	}
}
