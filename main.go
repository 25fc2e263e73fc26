package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grabarr/internal/cfg"
	"grabarr/internal/cookies"
	"grabarr/internal/domain/command"
	"grabarr/internal/domain/keys"
	"grabarr/internal/downloads"
	"grabarr/internal/estimate"
	"grabarr/internal/models"
	"grabarr/internal/utils/logging"

	"github.com/spf13/viper"
)

var startTime time.Time

func init() {
	startTime = time.Now()
}

// main is the program entrypoint.
func main() {
	if err := cfg.InitCommands(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cfg.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !viper.GetBool("execute") {
		return // Exit early if not meant to execute (e.g. help)
	}

	logging.Setup(viper.GetInt(keys.DebugLevel))
	logging.I("grabarr started at: %v", startTime.Format("2006-01-02 15:04:05.00 MST"))

	if err := run(); err != nil {
		logging.E("%v", err)
		os.Exit(1)
	}

	endTime := time.Now()
	logging.I("grabarr finished at: %v", endTime.Format("2006-01-02 15:04:05.00 MST"))
	logging.I("Time elapsed: %.2f seconds", endTime.Sub(startTime).Seconds())
}

// run drives one download request from flag parsing to outcome reporting.
func run() error {
	req, err := cfg.BuildRequest()
	if err != nil {
		return err
	}

	ctx := context.Background()
	ytdlpPath := viper.GetString(keys.YtdlpPath)

	cookieArgs := resolveCookieArgs(ctx, req)

	if !viper.GetBool(keys.SkipSizeEst) {
		printEstimate(ctx, ytdlpPath, req, cookieArgs)
	}

	d := downloads.NewVideoDownload(req, ytdlpPath)
	d.CookieArgs = cookieArgs
	if secs := viper.GetInt(keys.DLTimeout); secs > 0 {
		d.Timeout = time.Duration(secs) * time.Second
	}
	if retries := viper.GetInt(keys.DLRetries); retries > 0 {
		d.Retries = retries
	}
	d.OnProgress = printProgress

	// Ctrl-C cancels the in-flight download instead of orphaning it.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logging.W("Interrupt received, cancelling download...")
		d.Cancel()
	}()
	defer signal.Stop(sigChan)

	outcome := d.Execute(ctx)
	fmt.Println() // Progress output leaves the cursor mid-line

	return report(d, outcome)
}

// resolveCookieArgs decides how the subprocess should authenticate:
// explicit cookie file, explicit browser passthrough, or the automatic
// browser-store scan.
func resolveCookieArgs(ctx context.Context, req *models.DownloadRequest) []string {
	if path := viper.GetString(keys.CookiePath); path != "" {
		return []string{command.CookiePath, path}
	}
	if browser := viper.GetString(keys.CookieSource); browser != "" {
		return []string{command.CookiesFromBrowser, browser}
	}

	m := cookies.NewManager()
	found, err := m.GetCookies(ctx, req.URL)
	if err != nil || len(found) == 0 {
		return nil
	}

	path, err := cookies.WriteNetscapeFile(found, cookies.NetscapeFilePath(req.ID))
	if err != nil {
		logging.W("Failed writing cookie file, continuing without cookies: %v", err)
		return nil
	}
	if path == "" {
		return nil
	}
	return []string{command.CookiePath, path}
}

// printEstimate fetches metadata and prints the expected output size.
// Metadata failures only suppress the estimate, never the download.
func printEstimate(ctx context.Context, ytdlpPath string, req *models.DownloadRequest, cookieArgs []string) {
	meta, err := downloads.FetchMetadata(ctx, ytdlpPath, req.URL, cookieArgs)
	if err != nil {
		logging.W("Size estimate unavailable: %v", err)
		return
	}

	if meta.Title != "" {
		logging.I("Found: %s", meta.Title)
	}
	if bytes := estimate.Bytes(meta.DurationSecs, req.Mode, req.Quality,
		req.Compression, req.CustomCRF, req.AudioQuality); bytes > 0 {
		logging.I("Estimated size: %s", estimate.FormatSize(bytes))
	}
}

// printProgress renders the latest sample on a single updating line.
// Samples are not monotonic, so the latest always wins.
func printProgress(s models.ProgressSample) {
	line := fmt.Sprintf("\r%5.1f%%", s.Percent)
	if s.HasSize {
		line += fmt.Sprintf("  %.1f/%.1f MB  %.2f MB/s", s.DownloadedMB, s.TotalMB, s.SpeedMBps)
		if s.ETASeconds >= 0 {
			line += fmt.Sprintf("  ETA %s", (time.Duration(s.ETASeconds) * time.Second).String())
		}
	}
	fmt.Print(line + "   ")
}

// report prints the terminal outcome and verifies the saved file on success.
func report(d *downloads.VideoDownload, outcome models.Outcome) error {
	switch outcome.Status {
	case models.OutcomeSuccess:
		if path := d.SavedPath(); path != "" {
			if err := downloads.VerifyDownload(path); err != nil {
				return fmt.Errorf("download reported success but file failed verification: %w", err)
			}
		}
		logging.S("Saved: %s", outcome.SavedFileName)
		if outcome.Caveat != "" {
			logging.W("%s", outcome.Caveat)
		}
		return nil

	case models.OutcomeCancelled:
		logging.W("%s", outcome.UserMessage)
		return nil

	default:
		if viper.GetBool(keys.ShowDetails) && outcome.RawDiagnostics != "" {
			fmt.Fprintln(os.Stderr, outcome.RawDiagnostics)
		}
		return fmt.Errorf("%s", outcome.UserMessage)
	}
}
