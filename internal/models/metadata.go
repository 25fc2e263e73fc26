package models

import "time"

// VideoMetadata holds fields parsed from the metadata-only yt-dlp call.
// Advisory input to the size estimator; a missing or failed fetch only
// suppresses the estimate, never the download itself.
type VideoMetadata struct {
	Title          string
	DurationSecs   float64
	FilesizeApprox int64
	UploadDate     time.Time
}
