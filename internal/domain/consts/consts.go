// Package consts holds shared program constants.
package consts

// Preferred output containers. Container degrades before quality
// degrades in the format fallback chain.
const (
	PreferredVideoExt = "mp4"
	PreferredAudioExt = "m4a"
)

// AllVidExtensions are extensions recognized as finished video downloads.
var AllVidExtensions = []string{
	".mp4", ".mkv", ".webm", ".avi", ".mov", ".flv", ".m4v", ".ts",
}

// AllAudioExtensions are extensions recognized as finished audio downloads.
var AllAudioExtensions = []string{
	".mp3", ".m4a", ".opus", ".ogg", ".flac", ".wav", ".aac",
}

// MaxUserMessageLen caps user facing error messages.
const MaxUserMessageLen = 250
