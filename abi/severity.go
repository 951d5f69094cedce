package abi

import "strconv"

// Severity grades a trace entry. The numeric codes are part of the host
// ABI, agreed with the host's trace system; they are treated as an
// external versioned contract and never redefined independently.
type Severity uint32

const (
	SeverityDebug Severity = 5
	SeverityInfo  Severity = 10
	SeverityWarn  Severity = 20

	// SeverityWarnAlways is identical to SeverityWarn except that it is
	// exempt from host-side suppression and filtering.
	SeverityWarnAlways Severity = 30

	// SeverityError signals the host that the current run has failed.
	// The host is expected to stop the process shortly after the trace
	// call returns; code after such a call must not be relied upon for
	// cleanup or correctness.
	SeverityError Severity = 40
)

// Valid reports whether s is one of the agreed severity codes.
func (s Severity) Valid() bool {
	switch s {
	case SeverityDebug, SeverityInfo, SeverityWarn, SeverityWarnAlways, SeverityError:
		return true
	}
	return false
}

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityWarnAlways:
		return "warn_always"
	case SeverityError:
		return "error"
	}
	return "severity(" + strconv.FormatUint(uint64(s), 10) + ")"
}
