package rename

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/constant"
	"github.com/vlctrack/vlctrack/filesystem"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/log"
)

// Target computes the path original would be renamed to without touching the filesystem.
func Target(original string, watched bool, marker string) string {
	path := LocalPath(original)
	dir, filename := filepath.Split(path)
	ext := filepath.Ext(filename)
	stem := stripMarker(strings.TrimSuffix(filename, ext))

	prefix := constant.WatchedMarker
	if !watched {
		prefix = fmt.Sprintf("[%s]", marker)
	}

	return filepath.Join(dir, fmt.Sprintf("%s %s%s", prefix, stem, ext))
}

// Apply renames original so its filename carries the watched marker or the
// progress marker, and returns the path the file now lives at.
//
// Renaming is best effort: when disabled, when the source is missing, or when
// the rename fails, the normalized original path is returned.
func Apply(original string, watched bool, marker string) string {
	path := LocalPath(original)

	if !viper.GetBool(key.RenameEnabled) {
		return path
	}

	exists, err := filesystem.API().Exists(path)
	if err != nil || !exists {
		log.Debugf("rename skipped, %s does not exist", path)
		return path
	}

	target := Target(path, watched, marker)
	if target == path {
		return path
	}

	if err := filesystem.API().Rename(path, target); err != nil {
		log.Warnf("rename %s -> %s: %v", path, target, err)
		return path
	}

	log.Infof("renamed %s -> %s", filepath.Base(path), filepath.Base(target))
	return target
}
