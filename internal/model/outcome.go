package model

import "fmt"

// OutcomeKind classifies the result of one submission.
type OutcomeKind int

const (
	// OutcomeSuccess means the service answered with HTTP 200.
	OutcomeSuccess OutcomeKind = iota

	// OutcomeRejected means the service answered with any other status.
	OutcomeRejected

	// OutcomeTransportFailure means no usable response arrived: timeout,
	// DNS failure, connection reset, or a malformed response.
	OutcomeTransportFailure
)

// String returns a short lowercase name for the kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRejected:
		return "rejected"
	case OutcomeTransportFailure:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so JSON output carries the name.
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the classified result of submitting a Report.
// None of the kinds is an error for the process; they are all reported as
// text and the process still exits 0.
type Outcome struct {
	// Kind is the classification.
	Kind OutcomeKind `json:"outcome"`

	// Report is the submitted report.
	Report Report `json:"report"`

	// StatusCode is the HTTP status received. Zero for transport failures.
	StatusCode int `json:"status_code,omitempty"`

	// Error is the transport error text. Empty unless Kind is OutcomeTransportFailure.
	Error string `json:"error,omitempty"`
}

// NewSuccessOutcome returns the outcome for an HTTP 200 response.
func NewSuccessOutcome(r Report) *Outcome {
	return &Outcome{Kind: OutcomeSuccess, Report: r, StatusCode: 200}
}

// NewRejectedOutcome returns the outcome for a non-200 response.
func NewRejectedOutcome(r Report, statusCode int) *Outcome {
	return &Outcome{Kind: OutcomeRejected, Report: r, StatusCode: statusCode}
}

// NewTransportFailureOutcome returns the outcome for a request that failed
// before a response was received.
func NewTransportFailureOutcome(r Report, err error) *Outcome {
	o := &Outcome{Kind: OutcomeTransportFailure, Report: r}
	if err != nil {
		o.Error = err.Error()
	}
	return o
}

// Succeeded reports whether the service accepted the report.
func (o *Outcome) Succeeded() bool {
	return o.Kind == OutcomeSuccess
}

// Message returns the human-readable line printed for this outcome.
func (o *Outcome) Message() string {
	switch o.Kind {
	case OutcomeSuccess:
		return fmt.Sprintf("Successfully reported %s to AbuseIPDB", o.Report.IP)
	case OutcomeRejected:
		return fmt.Sprintf("Failed to report %s: %d", o.Report.IP, o.StatusCode)
	default:
		return fmt.Sprintf("Error reporting %s: %s", o.Report.IP, o.Error)
	}
}
