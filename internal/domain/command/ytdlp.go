// Package command holds argument constants for the external executables.
package command

// General
const (
	YTDLP = "yt-dlp"

	AfterMove          = "after_move:%(filepath)s"
	CookiesFromBrowser = "--cookies-from-browser"
	CookiePath         = "--cookies"
	FilenameSyntax     = "%(title)s.%(ext)s"
	Format             = "-f"
	Newline            = "--newline"
	NoPlaylist         = "--no-playlist"
	Output             = "-o"
	Print              = "--print"
	RestrictFilenames  = "--restrict-filenames"
	Retries            = "--retries"
	FragmentRetries    = "--fragment-retries"
	RetrySleep         = "--retry-sleep"
	YtDLPOutputExt     = "--merge-output-format"
)

// Audio extraction
const (
	ExtractAudio = "-x"
	AudioFormat  = "--audio-format"
	AudioQuality = "--audio-quality"
)

// Post-processing
const (
	PostprocessorArgs = "--postprocessor-args"
)

// Metadata only
const (
	SkipVideo  = "--skip-download"
	OutputJSON = "-J"
)

// Rotate player clients to dodge upstream restriction failures.
var ClientRotation = []string{"--extractor-args", "youtube:player_client=default,web_safari,android"}
