// Package keys holds Viper key names for user input flags.
package keys

// Terminal keys
const (
	URL              string = "url"
	Mode             string = "mode"
	Quality          string = "quality"
	Compression      string = "compression"
	CustomCRF        string = "crf"
	AudioQuality     string = "audio-quality"
	OutputDir        string = "output-dir"
	FilenameTemplate string = "filename-template"

	CookieSource string = "cookie-source"
	CookiePath   string = "cookie-file"

	YtdlpPath   string = "ytdlp-path"
	DLRetries   string = "dl-retries"
	DLTimeout   string = "dl-timeout"
	SkipSizeEst string = "no-size-estimate"
	ShowDetails string = "show-details"
)

// Logging
const (
	DebugLevel string = "debug"
)
