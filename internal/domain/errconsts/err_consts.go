// Package errconsts holds constant error messages
package errconsts

// Programs
const (
	YTDLPFailure    = "yt-dlp command failed: %w"
	YTDLPNotFound   = "could not invoke yt-dlp at %q: %w"
	MetadataFailure = "metadata fetch failed for %q: %w"
)

// Requests
const (
	InvalidCRFRange = "custom crf %d outside valid range %d-%d"
)
