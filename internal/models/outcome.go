package models

// OutcomeStatus tags the terminal result of one download request.
type OutcomeStatus int

const (
	OutcomeSuccess OutcomeStatus = iota
	OutcomeCancelled
	OutcomeFailed
)

func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeSuccess:
		return "success"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrorKind classifies a failed download into a small stable taxonomy.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnsupportedURL
	ErrVideoUnavailable
	ErrFormatUnavailable
	ErrSignatureExtraction
	ErrPartialFormatsMissing
	ErrAccessDenied
	ErrPrivateVideo
	ErrLiveStreamEnded
	ErrExecutableNotFound
	ErrTimeout
	ErrUserCancelled
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedURL:
		return "unsupported URL"
	case ErrVideoUnavailable:
		return "video unavailable"
	case ErrFormatUnavailable:
		return "format unavailable"
	case ErrSignatureExtraction:
		return "signature extraction issue"
	case ErrPartialFormatsMissing:
		return "partial formats missing"
	case ErrAccessDenied:
		return "access denied"
	case ErrPrivateVideo:
		return "private video"
	case ErrLiveStreamEnded:
		return "live stream ended"
	case ErrExecutableNotFound:
		return "executable not found"
	case ErrTimeout:
		return "timeout"
	case ErrUserCancelled:
		return "user cancelled"
	default:
		return "unknown"
	}
}

// Outcome is the single terminal result of one download request.
//
// Success carries the saved file name and an optional caveat (e.g. a
// signature extraction warning on an otherwise clean run). Failed carries
// the error kind, a capped user message and the full raw diagnostics for
// user-triggered inspection. Cancelled deliberately carries nothing: raw
// output is withheld and a short fixed message is used instead.
type Outcome struct {
	Status OutcomeStatus

	// Success only
	SavedFileName string
	Caveat        string

	// Failed only
	Kind           ErrorKind
	UserMessage    string
	RawDiagnostics string
}

// SuccessOutcome builds a success result.
func SuccessOutcome(savedFileName, caveat string) Outcome {
	return Outcome{
		Status:        OutcomeSuccess,
		SavedFileName: savedFileName,
		Caveat:        caveat,
	}
}

// CancelledOutcome builds the fixed cancellation result.
func CancelledOutcome() Outcome {
	return Outcome{
		Status:      OutcomeCancelled,
		Kind:        ErrUserCancelled,
		UserMessage: "Download cancelled.",
	}
}

// FailedOutcome builds a failure result, retaining raw diagnostics.
func FailedOutcome(kind ErrorKind, userMessage, rawDiagnostics string) Outcome {
	return Outcome{
		Status:         OutcomeFailed,
		Kind:           kind,
		UserMessage:    userMessage,
		RawDiagnostics: rawDiagnostics,
	}
}
