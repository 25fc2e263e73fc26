package consts

import "time"

// Subprocess supervision
const (
	DownloadTimeout = 900 * time.Second
	MetadataTimeout = 60 * time.Second
)

// Retry configuration passed to yt-dlp
const (
	DefaultDLRetries = 3
	FragmentRetries  = 5
	RetrySleepSecs   = 3
)

// File operations
const (
	FileCheckInterval = 100 * time.Millisecond
	FileWaitTimeout   = 10 * time.Second
)
