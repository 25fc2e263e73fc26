// Package validation handles validation of user flag input.
package validation

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"grabarr/internal/domain/errconsts"
	"grabarr/internal/domain/enums"
	"grabarr/internal/models"
	"grabarr/internal/utils/logging"
)

// validAudioQualities are the accepted audio quality codes: VBR levels
// 0/2/5 or the CBR "320K" code.
var validAudioQualities = map[string]bool{
	"0":    true,
	"2":    true,
	"5":    true,
	"320K": true,
}

// ValidateRequest checks a fully built request before any subprocess
// work begins.
func ValidateRequest(r *models.DownloadRequest) error {
	if err := ValidateURL(r.URL); err != nil {
		return err
	}
	if _, err := ValidateDirectory(r.OutputDir, true); err != nil {
		return err
	}
	if r.Compression == enums.CompressionCustom {
		if err := ValidateCRF(r.CustomCRF); err != nil {
			return err
		}
	}
	if r.Mode.IsAudioOnly() {
		if err := ValidateAudioQuality(r.AudioQuality); err != nil {
			return err
		}
	}
	if err := validateFilenameTemplate(r.FilenameTemplate); err != nil {
		return err
	}
	return nil
}

// ValidateURL checks the URL parses and carries a host.
func ValidateURL(u string) error {
	if strings.TrimSpace(u) == "" {
		return fmt.Errorf("no URL provided")
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", u, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", u)
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL %q has no host", u)
	}
	return nil
}

// ValidateDirectory validates that the directory exists, else creates it
// if desired.
func ValidateDirectory(dir string, createIfNotFound bool) (os.FileInfo, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("no directory provided")
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("path %q exists but is not a directory", dir)
		}
		return info, nil

	case os.IsNotExist(err) && createIfNotFound:
		logging.D(1, "Directory %q does not exist, creating...", dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
		return os.Stat(dir)

	default:
		return nil, fmt.Errorf("failed to stat directory %q: %w", dir, err)
	}
}

// ValidateCRF checks a custom constant rate factor is inside the
// accepted range. Out-of-range values are a configuration error, never
// silently clamped.
func ValidateCRF(crf int) error {
	if crf < models.MinCustomCRF || crf > models.MaxCustomCRF {
		return fmt.Errorf(errconsts.InvalidCRFRange, crf, models.MinCustomCRF, models.MaxCustomCRF)
	}
	return nil
}

// ValidateAudioQuality checks an audio quality code.
func ValidateAudioQuality(code string) error {
	if !validAudioQualities[strings.ToUpper(code)] {
		return fmt.Errorf("invalid audio quality %q (want 0, 2, 5 or 320K)", code)
	}
	return nil
}

// validateFilenameTemplate rejects templates trying to escape the
// output directory.
func validateFilenameTemplate(tmpl string) error {
	if tmpl == "" {
		return nil
	}
	if strings.Contains(tmpl, "..") || strings.HasPrefix(tmpl, "/") {
		return fmt.Errorf("filename template %q must be relative to the output directory", tmpl)
	}
	return nil
}
