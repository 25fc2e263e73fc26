// Package models holds the data models passed between program components.
package models

import (
	"grabarr/internal/domain/enums"

	"github.com/google/uuid"
)

// CRF bounds for custom compression. Values outside this range are a
// configuration error, never silently clamped into the encode argument.
const (
	MinCustomCRF = 18
	MaxCustomCRF = 30
)

// DownloadRequest describes one validated acquisition request.
// Built once per invocation and never mutated afterwards.
type DownloadRequest struct {
	ID               string
	URL              string
	Mode             enums.Mode
	Quality          enums.QualityTarget
	Compression      enums.CompressionLevel
	CustomCRF        int    // meaningful only when Compression == CompressionCustom
	AudioQuality     string // VBR level "0", "2", "5" or CBR "320K"
	OutputDir        string
	FilenameTemplate string
}

// NewDownloadRequest stamps a request with a unique ID.
func NewDownloadRequest(url string, mode enums.Mode, quality enums.QualityTarget,
	compression enums.CompressionLevel, customCRF int, audioQuality, outputDir, filenameTemplate string) *DownloadRequest {

	return &DownloadRequest{
		ID:               uuid.NewString(),
		URL:              url,
		Mode:             mode,
		Quality:          quality,
		Compression:      compression,
		CustomCRF:        customCRF,
		AudioQuality:     audioQuality,
		OutputDir:        outputDir,
		FilenameTemplate: filenameTemplate,
	}
}

// OutputExtension returns the container extension the request produces.
func (r *DownloadRequest) OutputExtension() string {
	switch r.Mode {
	case enums.ModeMp3Audio:
		return "mp3"
	case enums.ModeM4aAudio:
		return "m4a"
	default:
		return "mp4"
	}
}
