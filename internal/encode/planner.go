// Package encode maps a compression level to encoder post-processing
// arguments passed through yt-dlp to ffmpeg.
package encode

import (
	"fmt"
	"strconv"
	"strings"

	"grabarr/internal/domain/command"
	"grabarr/internal/domain/enums"
	"grabarr/internal/domain/errconsts"
	"grabarr/internal/models"
)

// CRF values per compression level. Lower means higher quality.
const (
	LightCRF  = 20
	MediumCRF = 23
	HighCRF   = 28
)

// CRF resolves the constant rate factor for a level. Custom values
// outside the valid range are a configuration error, not clamped here;
// clamping exists only in the size estimator's cost model.
func CRF(level enums.CompressionLevel, customCRF int) (int, error) {
	switch level {
	case enums.CompressionLight:
		return LightCRF, nil
	case enums.CompressionMedium:
		return MediumCRF, nil
	case enums.CompressionHigh:
		return HighCRF, nil
	case enums.CompressionCustom:
		if customCRF < models.MinCustomCRF || customCRF > models.MaxCustomCRF {
			return 0, fmt.Errorf(errconsts.InvalidCRFRange, customCRF, models.MinCustomCRF, models.MaxCustomCRF)
		}
		return customCRF, nil
	default:
		return 0, fmt.Errorf("no crf for compression level %v", level)
	}
}

// Plan builds the ffmpeg argument string for the request's compression
// settings. ok is false when no re-encode applies (stream copy).
//
// VideoAudio re-encodes audio at a fixed reduced bitrate whenever any
// compression is active; VideoOnly emits only the video codec and CRF.
// Audio-only modes never re-encode here (extraction handles the codec).
func Plan(level enums.CompressionLevel, customCRF int, mode enums.Mode) (ffmpegArgs string, ok bool, err error) {
	if level == enums.CompressionNone || mode.IsAudioOnly() {
		return "", false, nil
	}

	crf, err := CRF(level, customCRF)
	if err != nil {
		return "", false, err
	}

	parts := []string{
		command.VideoCodecFlag, command.VideoCodec,
		command.PresetFlag, command.Preset,
		command.CRFFlag, strconv.Itoa(crf),
	}
	if mode == enums.ModeVideoAudio {
		parts = append(parts,
			command.AudioCodecFlag, command.AudioCodec,
			command.AudioBitrateFlag, command.CompressedAudioBitrate,
		)
	}

	return command.FFmpegPrefix + strings.Join(parts, " "), true, nil
}
