package abi

// Handle is an opaque reference to host-owned state. Handle 0 is reserved
// and always invalid. A handle is exclusively owned by one wrapper for
// its lifetime and is never duplicated or shared.
type Handle uint64

// StringPair is the wire shape of one (key, value) trace detail. Both
// buffers need only remain valid for the duration of the call.
type StringPair struct {
	Key CString
	Val CString
}

// Metric is the wire shape of one datapoint pushed to the host. Fmt is a
// display-only formatter; Avg tells the host whether repeated pushes
// sharing a key combine as a running average.
type Metric struct {
	Key CString
	Fmt CString
	Val float64
	Avg bool
}

// ContextTable is the host function table backing a workload context
// handle. Entries are nil when the host does not provide them.
type ContextTable struct {
	Trace              func(h Handle, severity Severity, name CString, details []StringPair, n int32)
	GetProcessID       func(h Handle) uint64
	SetProcessID       func(h Handle, id uint64)
	Now                func(h Handle) float64
	Rnd                func(h Handle) uint32
	GetOption          func(h Handle, name, defaultValue CString) StringResult
	ClientID           func(h Handle) int32
	ClientCount        func(h Handle) int32
	SharedRandomNumber func(h Handle) int64
}

// PromiseTable is the host function table backing a promise handle.
// Send performs the pending to resolved transition; Free releases the
// host-side state. Across a promise's life Free runs exactly once and
// Send at most once.
type PromiseTable struct {
	Send func(h Handle, value bool)
	Free func(h Handle)
}

// MetricsTable is the host function table backing a metrics sink handle.
type MetricsTable struct {
	Reserve func(h Handle, n int32)
	Push    func(h Handle, m Metric)
}
