package workload

import (
	"github.com/simkit/simload/abi"
	"github.com/simkit/simload/errors"
)

// DefaultFmt is the display format the host applies to a metric that
// does not carry one. It is used host-side purely for rendering, never
// for computation.
const DefaultFmt = "%.3g"

// Metric is one named datapoint. Avg tells the host whether repeated
// pushes sharing a key combine as a running average (true) or stand as
// independent entries (false); the decision is made host-side.
type Metric struct {
	Key string
	Fmt string
	Val float64
	Avg bool
}

// Val builds a plain value metric.
func Val(key string, val float64) Metric {
	return Metric{Key: key, Val: val}
}

// Avg builds a running-average metric.
func Avg(key string, val float64) Metric {
	return Metric{Key: key, Val: val, Avg: true}
}

// Sink is an append-only, ordered collection of metrics owned by the
// host. It is supplied at the point metrics are requested and lives only
// for that call.
type Sink struct {
	tab abi.MetricsTable
	h   abi.Handle
}

// NewSink wraps a host metrics handle, validating the table once.
func NewSink(tab abi.MetricsTable, h abi.Handle) (*Sink, error) {
	if h == 0 {
		return nil, errors.NilHandle("metrics")
	}
	if err := tab.Validate(); err != nil {
		return nil, err
	}
	return &Sink{tab: tab, h: h}, nil
}

// Reserve hints the number of metrics about to be pushed. It has no
// observable effect on content or order and may be called any number of
// times, at any point relative to Push.
func (s *Sink) Reserve(n int) {
	s.tab.Reserve(s.h, int32(n))
}

// Push appends one metric. Every field crosses the boundary verbatim and
// in call order; no local deduplication or reordering happens here.
func (s *Sink) Push(m Metric) {
	fmtStr := m.Fmt
	if fmtStr == "" {
		fmtStr = DefaultFmt
	}
	s.tab.Push(s.h, abi.Metric{
		Key: mustCString(m.Key),
		Fmt: mustCString(fmtStr),
		Val: m.Val,
		Avg: m.Avg,
	})
}
