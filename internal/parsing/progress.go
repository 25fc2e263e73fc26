// Package parsing turns raw yt-dlp terminal output into structured
// progress samples.
//
// Capture contract: a percentage reading, an optional downloaded/total
// size pair and an optional speed, all canonicalized to MB. Each chunk is
// treated independently; percentages are reported exactly as received and
// are not monotonic across fragments or stream segments.
package parsing

import (
	"strconv"
	"strings"

	"grabarr/internal/domain/regex"
	"grabarr/internal/models"
)

// ETAs at or above this are suppressed as not meaningful for display.
const maxDisplayableETASecs = 3600

// unitToMB converts a size unit to its MB multiplier. Unrecognized units
// are assumed to be raw bytes.
func unitToMB(unit string) float64 {
	switch strings.ToUpper(strings.TrimSpace(unit)) {
	case "KB", "KIB", "K":
		return 1.0 / 1024
	case "MB", "MIB", "M":
		return 1
	case "GB", "GIB", "G":
		return 1024
	case "TB", "TIB", "T":
		return 1024 * 1024
	default:
		return 1.0 / (1024 * 1024)
	}
}

// CanonicalSize parses a size token like "1.5GiB" into MB.
func CanonicalSize(token string) (float64, bool) {
	m := regex.SizeTokenCompile().FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return 0, false
	}
	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return val * unitToMB(m[2]), true
}

// CanonicalSpeed parses a speed token like "500KiB/s" into MB/s.
func CanonicalSpeed(token string) (float64, bool) {
	return CanonicalSize(strings.TrimSuffix(strings.TrimSpace(token), "/s"))
}

// ParseProgress extracts at most one progress sample from a line of
// subprocess output. A percentage line yields a percentage reading; a
// "<downloaded> of <total> at <speed>/s" reading or the tool's combined
// "<pct>% of <total> at <speed>/s" line fills in the size fields. The
// percentage is derived from the size ratio when no explicit one is
// present, and the downloaded size from pct x total when only the
// combined shape matched. ok is false when the line carries no reading
// at all.
func ParseProgress(line string) (sample models.ProgressSample, ok bool) {
	line = regex.AnsiEscapeCompile().ReplaceAllString(line, "")

	sample = models.ProgressSample{ETASeconds: -1}

	var havePct bool
	if m := regex.DownloadPctCompile().FindStringSubmatch(line); m != nil {
		if pct, err := strconv.ParseFloat(m[1], 64); err == nil {
			sample.Percent = pct
			havePct = true
		}
	}

	var (
		downloaded, total, speed float64
		haveSize                 bool
	)
	if m := regex.SizeSpeedCompile().FindStringSubmatch(line); m != nil {
		var okD, okT, okS bool
		downloaded, okD = CanonicalSize(m[1])
		total, okT = CanonicalSize(m[2])
		speed, okS = CanonicalSpeed(m[3])
		haveSize = okD && okT && okS
	} else if havePct {
		// Combined progress line: the leading token is the percentage
		// itself, so the downloaded size is reconstructed from it.
		if m := regex.PctTotalSpeedCompile().FindStringSubmatch(line); m != nil {
			var okT, okS bool
			total, okT = CanonicalSize(m[1])
			speed, okS = CanonicalSpeed(m[2])
			downloaded = sample.Percent / 100 * total
			haveSize = okT && okS
		}
	}
	if !haveSize {
		return sample, havePct
	}

	sample.HasSize = true
	sample.DownloadedMB = downloaded
	sample.TotalMB = total
	sample.SpeedMBps = speed
	if !havePct && total > 0 {
		sample.Percent = downloaded / total * 100
	}

	if remaining := total - downloaded; speed > 0 && remaining > 0 {
		if eta := int(remaining / speed); eta < maxDisplayableETASecs {
			sample.ETASeconds = eta
		}
	}

	return sample, true
}
