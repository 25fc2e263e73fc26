package cfg

import (
	"grabarr/internal/domain/command"
	"grabarr/internal/domain/consts"
	"grabarr/internal/domain/keys"

	"github.com/spf13/viper"
)

// initDownloadFlags initializes user flag settings shaping the download itself.
func initDownloadFlags() {

	// Target URL (also accepted as the positional argument)
	rootCmd.PersistentFlags().StringP(keys.URL, "u", "", "URL of the media to download")
	viper.BindPFlag(keys.URL, rootCmd.PersistentFlags().Lookup(keys.URL))

	// Acquisition mode
	rootCmd.PersistentFlags().StringP(keys.Mode, "m", "video+audio", "Download mode (video+audio, video-only, mp3, m4a)")
	viper.BindPFlag(keys.Mode, rootCmd.PersistentFlags().Lookup(keys.Mode))

	// Quality ceiling
	rootCmd.PersistentFlags().StringP(keys.Quality, "q", "best", "Quality ceiling (best, 2160p, 1440p, 1080p, 720p, 480p)")
	viper.BindPFlag(keys.Quality, rootCmd.PersistentFlags().Lookup(keys.Quality))

	// Compression level
	rootCmd.PersistentFlags().StringP(keys.Compression, "c", "none", "Compression level (none, light, medium, high, custom)")
	viper.BindPFlag(keys.Compression, rootCmd.PersistentFlags().Lookup(keys.Compression))

	rootCmd.PersistentFlags().Int(keys.CustomCRF, 0, "Constant rate factor for custom compression (18-30)")
	viper.BindPFlag(keys.CustomCRF, rootCmd.PersistentFlags().Lookup(keys.CustomCRF))

	// Audio quality code, only meaningful for audio modes
	rootCmd.PersistentFlags().String(keys.AudioQuality, "0", "Audio quality code (0, 2, 5, or 320K)")
	viper.BindPFlag(keys.AudioQuality, rootCmd.PersistentFlags().Lookup(keys.AudioQuality))

	// Output directory (can be external)
	rootCmd.PersistentFlags().StringP(keys.OutputDir, "o", ".", "Directory to save the finished file into")
	viper.BindPFlag(keys.OutputDir, rootCmd.PersistentFlags().Lookup(keys.OutputDir))

	rootCmd.PersistentFlags().String(keys.FilenameTemplate, "", "Output filename template (yt-dlp template syntax)")
	viper.BindPFlag(keys.FilenameTemplate, rootCmd.PersistentFlags().Lookup(keys.FilenameTemplate))

	// Cookie handling
	rootCmd.PersistentFlags().String(keys.CookieSource, "", "Browser to source cookies from (e.g. firefox, chrome)")
	viper.BindPFlag(keys.CookieSource, rootCmd.PersistentFlags().Lookup(keys.CookieSource))

	rootCmd.PersistentFlags().String(keys.CookiePath, "", "Path to a Netscape format cookie file")
	viper.BindPFlag(keys.CookiePath, rootCmd.PersistentFlags().Lookup(keys.CookiePath))
}

// initProgramFlags initializes flags governing program behavior rather than
// the download request.
func initProgramFlags() {

	rootCmd.PersistentFlags().String(keys.YtdlpPath, command.YTDLP, "Path to the yt-dlp executable")
	viper.BindPFlag(keys.YtdlpPath, rootCmd.PersistentFlags().Lookup(keys.YtdlpPath))

	rootCmd.PersistentFlags().Int(keys.DLRetries, consts.DefaultDLRetries, "Number of extraction retries before giving up")
	viper.BindPFlag(keys.DLRetries, rootCmd.PersistentFlags().Lookup(keys.DLRetries))

	rootCmd.PersistentFlags().Int(keys.DLTimeout, int(consts.DownloadTimeout.Seconds()), "Download timeout in seconds")
	viper.BindPFlag(keys.DLTimeout, rootCmd.PersistentFlags().Lookup(keys.DLTimeout))

	rootCmd.PersistentFlags().Bool(keys.SkipSizeEst, false, "Skip the pre-download size estimate")
	viper.BindPFlag(keys.SkipSizeEst, rootCmd.PersistentFlags().Lookup(keys.SkipSizeEst))

	rootCmd.PersistentFlags().Bool(keys.ShowDetails, false, "Show raw extractor diagnostics on failure")
	viper.BindPFlag(keys.ShowDetails, rootCmd.PersistentFlags().Lookup(keys.ShowDetails))

	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debug level (0-5)")
	viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel))
}
