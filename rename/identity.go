// Package rename embeds viewing progress into media filenames and derives the
// identity that survives those renames.
package rename

import (
	"net/url"
	"path/filepath"
	"strings"
)

const fileScheme = "file://"

// BaseIdentity returns the filename of path with a leading bracketed marker
// removed, so "[12-34] Show.mkv" and "[WATCHED] Show.mkv" both map to "Show.mkv".
// Comparison is case-sensitive and only the first bracket group is stripped.
func BaseIdentity(path string) string {
	return stripMarker(filepath.Base(LocalPath(path)))
}

func stripMarker(name string) string {
	if !strings.HasPrefix(name, "[") {
		return name
	}

	if i := strings.IndexByte(name, ']'); i >= 0 {
		name = name[i+1:]
	}

	return strings.TrimSpace(name)
}

// LocalPath converts a file:// URI as reported by VLC into a cleaned local
// path. Anything else is only cleaned.
func LocalPath(path string) string {
	if !strings.HasPrefix(path, fileScheme) {
		return filepath.Clean(path)
	}

	p := strings.TrimPrefix(path, fileScheme)
	if u, err := url.Parse(path); err == nil {
		p = u.Path
		if u.Host != "" && u.Host != "localhost" {
			// UNC share
			p = "//" + u.Host + p
		}
	} else if unescaped, err := url.PathUnescape(p); err == nil {
		p = unescaped
	}

	// file:///C:/Videos -> C:/Videos
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' && isLetter(p[1]) {
		p = p[1:]
	}

	return filepath.Clean(filepath.FromSlash(p))
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
