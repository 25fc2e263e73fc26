package models

// ProgressSample is one parsed progress reading. Samples are ephemeral:
// they exist only while the subprocess runs and are never retained after
// outcome classification. Percentages are not globally monotonic; a new
// fragment or stream segment may restart them, so callers display the
// latest sample rather than a running maximum.
type ProgressSample struct {
	Percent float64

	// Size readings canonicalized to MB; valid only when HasSize is set.
	HasSize      bool
	DownloadedMB float64
	TotalMB      float64
	SpeedMBps    float64

	// ETASeconds is derived from remaining size and speed. -1 when not
	// meaningful (no speed reading, nothing remaining, or >= 1 hour).
	ETASeconds int
}
