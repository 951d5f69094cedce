package simhost

import (
	"go.uber.org/zap"

	"github.com/simkit/simload/abi"
	"github.com/simkit/simload/workload"
)

func (h *Host) trace(_ abi.Handle, sev abi.Severity, name abi.CString, details []abi.StringPair, n int32) {
	e := TraceEntry{Severity: sev, Name: mustGo(name)}
	for _, p := range details[:n] {
		e.Details = append(e.Details, workload.Pair{
			Key: mustGo(p.Key),
			Val: mustGo(p.Val),
		})
	}
	h.traces = append(h.traces, e)
	h.logTrace(e)

	if sev == abi.SeverityError && !h.failed {
		h.failed = true
		h.failEvent = e.Name
	}
}

// logTrace mirrors an entry into the host logger. Entries below the
// suppression threshold are skipped, except WarnAlways, which is exempt
// by contract.
func (h *Host) logTrace(e TraceEntry) {
	if e.Severity < h.minSeverity && e.Severity != abi.SeverityWarnAlways {
		return
	}
	fields := make([]zap.Field, 0, len(e.Details)+1)
	fields = append(fields, zap.Float64("simTime", h.now))
	for _, d := range e.Details {
		fields = append(fields, zap.String(d.Key, d.Val))
	}
	switch {
	case e.Severity <= abi.SeverityDebug:
		h.log.Debug(e.Name, fields...)
	case e.Severity <= abi.SeverityInfo:
		h.log.Info(e.Name, fields...)
	case e.Severity <= abi.SeverityWarnAlways:
		h.log.Warn(e.Name, fields...)
	default:
		h.log.Error(e.Name, fields...)
	}
}
