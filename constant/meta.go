// Package constant holds application-wide identifiers.
package constant

const (
	// Clipdeck is the application name used for paths, env prefixes and branding.
	Clipdeck = "clipdeck"

	// Version is the current semantic version.
	Version = "0.1.0"

	// UserAgent is sent with every request to the media service.
	UserAgent = Clipdeck + "/" + Version
)

// DefaultAPIURL is the media service base used when nothing else is configured.
const DefaultAPIURL = "http://localhost:8080/api/v1/videos"

// Repository hosts releases checked by the version notifier.
const Repository = "clipdeck/clipdeck"

// Set at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
