// Package constant defines immutable application-level identifiers and protocol markers.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "vlctrack"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// WatchedMarker is the bracketed prefix applied to finished media files and
// stored as the history timestamp of watched entries.
const WatchedMarker = "[WATCHED]"
