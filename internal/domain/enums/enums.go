// Package enums holds enumerated types shared across the program.
package enums

import "fmt"

// Mode describes what streams a download request wants.
type Mode int

const (
	ModeVideoAudio Mode = iota
	ModeVideoOnly
	ModeMp3Audio
	ModeM4aAudio
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeVideoAudio:
		return "video+audio"
	case ModeVideoOnly:
		return "video-only"
	case ModeMp3Audio:
		return "mp3"
	case ModeM4aAudio:
		return "m4a"
	default:
		return "unknown"
	}
}

// IsAudioOnly reports whether the mode extracts audio without video.
func (m Mode) IsAudioOnly() bool {
	return m == ModeMp3Audio || m == ModeM4aAudio
}

// ParseMode parses the user facing mode string.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "video+audio", "video", "":
		return ModeVideoAudio, nil
	case "video-only":
		return ModeVideoOnly, nil
	case "mp3":
		return ModeMp3Audio, nil
	case "m4a":
		return ModeM4aAudio, nil
	default:
		return 0, fmt.Errorf("invalid mode %q (want video+audio, video-only, mp3 or m4a)", s)
	}
}

// QualityTarget caps the video height, or QualityBest for no cap.
type QualityTarget int

const (
	QualityBest QualityTarget = iota
	Quality2160p
	Quality1440p
	Quality1080p
	Quality720p
	Quality480p
)

// Height returns the pixel height cap, or 0 for "best".
func (q QualityTarget) Height() int {
	switch q {
	case Quality2160p:
		return 2160
	case Quality1440p:
		return 1440
	case Quality1080p:
		return 1080
	case Quality720p:
		return 720
	case Quality480p:
		return 480
	default:
		return 0
	}
}

func (q QualityTarget) String() string {
	if h := q.Height(); h != 0 {
		return fmt.Sprintf("%dp", h)
	}
	return "best"
}

// ParseQuality parses the user facing quality string.
func ParseQuality(s string) (QualityTarget, error) {
	switch s {
	case "best", "":
		return QualityBest, nil
	case "2160p", "2160":
		return Quality2160p, nil
	case "1440p", "1440":
		return Quality1440p, nil
	case "1080p", "1080":
		return Quality1080p, nil
	case "720p", "720":
		return Quality720p, nil
	case "480p", "480":
		return Quality480p, nil
	default:
		return 0, fmt.Errorf("invalid quality %q (want best, 2160p, 1440p, 1080p, 720p or 480p)", s)
	}
}

// CompressionLevel selects encoder post-processing strength.
type CompressionLevel int

const (
	CompressionNone CompressionLevel = iota
	CompressionLight
	CompressionMedium
	CompressionHigh
	CompressionCustom
)

func (c CompressionLevel) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLight:
		return "light"
	case CompressionMedium:
		return "medium"
	case CompressionHigh:
		return "high"
	case CompressionCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseCompression parses the user facing compression string.
func ParseCompression(s string) (CompressionLevel, error) {
	switch s {
	case "none", "":
		return CompressionNone, nil
	case "light":
		return CompressionLight, nil
	case "medium":
		return CompressionMedium, nil
	case "high":
		return CompressionHigh, nil
	case "custom":
		return CompressionCustom, nil
	default:
		return 0, fmt.Errorf("invalid compression %q (want none, light, medium, high or custom)", s)
	}
}
