package downloads

import (
	"path/filepath"
	"slices"
	"strings"

	"grabarr/internal/domain/consts"
	"grabarr/internal/domain/regex"
	"grabarr/internal/models"
)

// classifierRule maps an output marker substring to an error kind.
// Rules are evaluated in order against lowercased output; the first
// match wins. Non-fatal rules downgrade to a success caveat when the
// exit status is otherwise clean.
//
// The fixed priority order is a known heuristic: two true overlapping
// markers (e.g. a genuine format failure next to an unrelated nsig
// warning) resolve to whichever rule sorts first.
type classifierRule struct {
	marker  string
	kind    models.ErrorKind
	message string
	fatal   bool
}

var classifierRules = []classifierRule{
	{"unsupported url", models.ErrUnsupportedURL,
		"This site or URL is not supported by the extractor.", true},
	{"video unavailable", models.ErrVideoUnavailable,
		"The video is unavailable. It may have been removed or region-locked.", true},
	{"requested format is not available", models.ErrFormatUnavailable,
		"The requested format is not available for this video.", true},
	{"nsig extraction failed", models.ErrSignatureExtraction,
		"Signature extraction failed; the file is often still produced.", false},
	{"some formats may be missing", models.ErrPartialFormatsMissing,
		"Some formats may be missing for this video.", false},
	{"http error 403", models.ErrAccessDenied,
		"Access denied (HTTP 403). The site may be rate limiting or require cookies.", true},
	{"private video", models.ErrPrivateVideo,
		"This video is private.", true},
	{"this live event has ended", models.ErrLiveStreamEnded,
		"This live event has ended and its recording is not retrievable.", true},
}

// exitStatus summarizes how the subprocess ended for classification.
type exitStatus struct {
	exitErr  error // nil on a zero exit
	timedOut bool
	notFound bool
}

// classify maps exit status and accumulated output into one terminal
// result. Evaluation order: cancellation, timeout, spawn failure, then
// the ordered marker scan, then success with filename extraction.
func classify(handle *ProcessHandle, status exitStatus, output string, outputExt string) models.Outcome {
	// Cancellation wins unconditionally; no text inspection, and raw
	// output is deliberately withheld.
	if handle != nil && handle.CancelRequested() {
		return models.CancelledOutcome()
	}

	if status.timedOut {
		return models.FailedOutcome(models.ErrTimeout,
			capMessage("Download timed out and the process was terminated."), output)
	}

	if status.notFound {
		return models.FailedOutcome(models.ErrExecutableNotFound,
			capMessage("The downloader executable could not be found or invoked."), output)
	}

	lower := strings.ToLower(output)
	for _, rule := range classifierRules {
		if !strings.Contains(lower, rule.marker) {
			continue
		}
		if !rule.fatal && status.exitErr == nil {
			// Success with caveat: the file is frequently still produced.
			name := extractSavedFileName(output, outputExt)
			return models.SuccessOutcome(name, capMessage(rule.message))
		}
		return models.FailedOutcome(rule.kind, capMessage(rule.message), output)
	}

	if status.exitErr != nil {
		return models.FailedOutcome(models.ErrUnknown, unknownMessage(output), output)
	}

	return models.SuccessOutcome(extractSavedFileName(output, outputExt), "")
}

// unknownMessage surfaces the first error-marked line verbatim rather
// than the full dump.
func unknownMessage(output string) string {
	if m := regex.ErrorLineCompile().FindStringSubmatch(output); m != nil {
		return capMessage(m[1])
	}
	return capMessage("The download failed for an unknown reason.")
}

// capMessage keeps user-facing messages presentable.
func capMessage(msg string) string {
	msg = strings.TrimSpace(msg)
	if len(msg) > consts.MaxUserMessageLen {
		return msg[:consts.MaxUserMessageLen-3] + "..."
	}
	return msg
}

// extractSavedFileName recovers the saved file name from the accumulated
// output. Preference order: the absolute path printed after move
// (--print after_move), merger and destination lines, then an
// info-prefixed line; a generic name from the requested extension is
// synthesized when nothing matched.
func extractSavedFileName(output string, outputExt string) string {
	var fallback string

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(regex.AnsiEscapeCompile().ReplaceAllString(line, ""))
		if line == "" {
			continue
		}

		// Absolute path emitted by --print after_move:%(filepath)s.
		if strings.HasPrefix(line, string(filepath.Separator)) {
			if ext := filepath.Ext(line); slices.Contains(consts.AllVidExtensions, ext) ||
				slices.Contains(consts.AllAudioExtensions, ext) {
				return filepath.Base(line)
			}
		}

		if m := regex.MergerTargetCompile().FindStringSubmatch(line); m != nil {
			return filepath.Base(m[1])
		}
		if m := regex.DestinationCompile().FindStringSubmatch(line); m != nil {
			// Destination lines appear per stream; keep scanning in case
			// a merger line follows with the final container.
			fallback = filepath.Base(m[1])
			continue
		}
		if fallback == "" {
			if m := regex.InfoTitleCompile().FindStringSubmatch(line); m != nil {
				fallback = filepath.Base(m[1])
			}
		}
	}

	if fallback != "" {
		return fallback
	}
	return "download." + outputExt
}
