// Package estimate predicts approximate output sizes from media duration
// and bitrate tables. Estimates are advisory only and never gate whether
// a download proceeds.
package estimate

import (
	"fmt"
	"strings"

	"grabarr/internal/domain/enums"
)

const (
	bytesPerMB = 1024 * 1024
	mbPerGB    = 1024
)

// Audio bitrate assumptions in kbps.
const (
	m4aBitrate             = 256
	uncompressedAudio      = 256
	compressedAudioBitrate = 128
)

// mp3Bitrates maps VBR quality codes (and the CBR "320K" code) to
// approximate kbps.
var mp3Bitrates = map[string]int{
	"0":    245,
	"2":    190,
	"5":    130,
	"320K": 320,
}

// videoBitrateKbps returns the assumed source bitrate for a quality target.
func videoBitrateKbps(quality enums.QualityTarget) float64 {
	switch quality {
	case enums.Quality1440p:
		return 4000
	case enums.Quality1080p:
		return 2000
	case enums.Quality720p:
		return 1000
	case enums.Quality480p:
		return 500
	default: // best / 2160p
		return 8000
	}
}

// compressionFactor returns the expected size multiplier for a level. The
// custom curve is clamped at 0.3: this clamp lives only in the cost model,
// never in the actual encode argument.
func compressionFactor(level enums.CompressionLevel, customCRF int) float64 {
	switch level {
	case enums.CompressionLight:
		return 0.8
	case enums.CompressionMedium:
		return 0.6
	case enums.CompressionHigh:
		return 0.4
	case enums.CompressionCustom:
		f := 1.0 - float64(customCRF-18)*0.04
		if f < 0.3 {
			f = 0.3
		}
		return f
	default:
		return 1.0
	}
}

// Bytes estimates the output size in bytes for a request shape.
func Bytes(durationSecs float64, mode enums.Mode, quality enums.QualityTarget,
	compression enums.CompressionLevel, customCRF int, audioQuality string) int64 {

	if durationSecs <= 0 {
		return 0
	}

	var mb float64
	switch mode {
	case enums.ModeMp3Audio:
		kbps, ok := mp3Bitrates[strings.ToUpper(audioQuality)]
		if !ok {
			kbps = mp3Bitrates["5"]
		}
		mb = float64(kbps) * durationSecs / (8 * 1024)

	case enums.ModeM4aAudio:
		mb = m4aBitrate * durationSecs / (8 * 1024)

	default:
		factor := compressionFactor(compression, customCRF)
		mb = videoBitrateKbps(quality) * factor * durationSecs / (8 * 1024)

		if mode == enums.ModeVideoAudio {
			audioKbps := float64(uncompressedAudio)
			if compression != enums.CompressionNone {
				audioKbps = compressedAudioBitrate
			}
			mb += audioKbps * durationSecs / (8 * 1024)
		}
	}

	return int64(mb * bytesPerMB)
}

// FormatSize renders a byte count as "~N KB/MB/GB" with thresholds at
// 1 MB and 1024 MB.
func FormatSize(bytes int64) string {
	mb := float64(bytes) / bytesPerMB
	switch {
	case mb < 1:
		return fmt.Sprintf("~%.0f KB", mb*1024)
	case mb < mbPerGB:
		return "~" + trimZero(fmt.Sprintf("%.1f", mb)) + " MB"
	default:
		return "~" + trimZero(fmt.Sprintf("%.2f", mb/mbPerGB)) + " GB"
	}
}

func trimZero(s string) string {
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
