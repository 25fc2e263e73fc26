// Package regex compiles and caches various regex expressions.
package regex

import (
	"regexp"
)

var (
	AnsiEscape    *regexp.Regexp
	DownloadPct   *regexp.Regexp
	SizeSpeed     *regexp.Regexp
	PctTotalSpeed *regexp.Regexp
	SizeToken     *regexp.Regexp
	Destination   *regexp.Regexp
	MergerTarget  *regexp.Regexp
	InfoTitle     *regexp.Regexp
	ErrorLine     *regexp.Regexp
)

// AnsiEscapeCompile compiles regex for ANSI escape codes
func AnsiEscapeCompile() *regexp.Regexp {
	if AnsiEscape == nil {
		AnsiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	}
	return AnsiEscape
}

// DownloadPctCompile compiles regex for yt-dlp progress percentages
func DownloadPctCompile() *regexp.Regexp {
	if DownloadPct == nil {
		DownloadPct = regexp.MustCompile(`\[download\]\s+(\d+(?:\.\d+)?)%`)
	}
	return DownloadPct
}

// SizeSpeedCompile compiles regex for "<size> of <size> at <speed>/s" readings
func SizeSpeedCompile() *regexp.Regexp {
	if SizeSpeed == nil {
		SizeSpeed = regexp.MustCompile(`([\d.]+[A-Za-z]*)\s+of\s+~?\s*([\d.]+[A-Za-z]*)\s+at\s+([\d.]+[A-Za-z]*)/s`)
	}
	return SizeSpeed
}

// PctTotalSpeedCompile compiles regex for combined "<pct>% of <total> at <speed>/s" readings
func PctTotalSpeedCompile() *regexp.Regexp {
	if PctTotalSpeed == nil {
		PctTotalSpeed = regexp.MustCompile(`%\s+of\s+~?\s*([\d.]+[A-Za-z]*)\s+at\s+([\d.]+[A-Za-z]*)/s`)
	}
	return PctTotalSpeed
}

// SizeTokenCompile compiles regex splitting a size token into value and unit
func SizeTokenCompile() *regexp.Regexp {
	if SizeToken == nil {
		SizeToken = regexp.MustCompile(`^([\d.]+)\s*([A-Za-z]*)$`)
	}
	return SizeToken
}

// DestinationCompile compiles regex for yt-dlp destination lines
func DestinationCompile() *regexp.Regexp {
	if Destination == nil {
		Destination = regexp.MustCompile(`\[(?:download|ExtractAudio)\]\s+Destination:\s+(.+)`)
	}
	return Destination
}

// MergerTargetCompile compiles regex for yt-dlp merger output lines
func MergerTargetCompile() *regexp.Regexp {
	if MergerTarget == nil {
		MergerTarget = regexp.MustCompile(`\[Merger\]\s+Merging formats into "(.+)"`)
	}
	return MergerTarget
}

// InfoTitleCompile compiles regex for "[info]" prefixed filename lines
func InfoTitleCompile() *regexp.Regexp {
	if InfoTitle == nil {
		InfoTitle = regexp.MustCompile(`\[info\]\s+Writing[^:]*to:\s+(.+)`)
	}
	return InfoTitle
}

// ErrorLineCompile compiles regex for yt-dlp error lines
func ErrorLineCompile() *regexp.Regexp {
	if ErrorLine == nil {
		ErrorLine = regexp.MustCompile(`(?m)^\s*ERROR:?\s*(.+)$`)
	}
	return ErrorLine
}
