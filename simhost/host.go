package simhost

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/simkit/simload/abi"
	"github.com/simkit/simload/workload"
)

// TraceEntry is one recorded log entry, decoded back from the wire.
type TraceEntry struct {
	Severity abi.Severity
	Name     string
	Details  []workload.Pair
}

type promiseState struct {
	sends    int
	frees    int
	value    bool
	resolved bool
}

// Host is an in-memory simulation host. It is single-owner like every
// handle it mints; no method is safe for concurrent use.
type Host struct {
	log         *zap.Logger
	rng         *rand.Rand
	options     map[string]string
	promises    map[abi.Handle]*promiseState
	traces      []TraceEntry
	metrics     []workload.Metric
	reserves    []int
	shared      int64
	now         float64
	procID      uint64
	nextHandle  abi.Handle
	ctxHandle   abi.Handle
	clientID    int32
	clientCount int32
	minSeverity abi.Severity
	liveBuffers int
	failed      bool
	failEvent   string
}

// Option configures a Host.
type Option func(*Host)

// WithLogger mirrors recorded trace entries into l. The default is a
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Host) { h.log = l }
}

// WithSeed fixes the simulation seed. Runs with the same seed observe
// the same random sequence and shared random number.
func WithSeed(seed int64) Option {
	return func(h *Host) { h.rng = rand.New(rand.NewSource(seed)) }
}

// WithOptions seeds the option table.
func WithOptions(m map[string]string) Option {
	return func(h *Host) {
		for k, v := range m {
			h.options[k] = v
		}
	}
}

// WithClient sets this client's index and the cooperating client count.
func WithClient(id, count int32) Option {
	return func(h *Host) {
		h.clientID = id
		h.clientCount = count
	}
}

// WithMinSeverity sets the suppression threshold for the mirrored log.
// Recorded entries are never filtered, and WarnAlways is exempt.
func WithMinSeverity(s abi.Severity) Option {
	return func(h *Host) { h.minSeverity = s }
}

// New creates a host with seed 0, one client, and a no-op logger.
func New(opts ...Option) *Host {
	h := &Host{
		log:         zap.NewNop(),
		rng:         rand.New(rand.NewSource(0)),
		options:     make(map[string]string),
		promises:    make(map[abi.Handle]*promiseState),
		clientCount: 1,
		minSeverity: abi.SeverityDebug,
	}
	for _, opt := range opts {
		opt(h)
	}
	// Drawn once at construction and identical for every context the
	// host hands out.
	h.shared = h.rng.Int63()
	return h
}

func (h *Host) newHandle() abi.Handle {
	h.nextHandle++
	return h.nextHandle
}

// Context returns the function table and handle for the workload
// context. The host creates the context once; repeated calls return the
// same handle.
func (h *Host) Context() (abi.ContextTable, abi.Handle) {
	if h.ctxHandle == 0 {
		h.ctxHandle = h.newHandle()
	}
	tab := abi.ContextTable{
		Trace:        h.trace,
		GetProcessID: func(abi.Handle) uint64 { return h.procID },
		SetProcessID: func(_ abi.Handle, id uint64) { h.procID = id },
		Now:          func(abi.Handle) float64 { return h.now },
		Rnd:          func(abi.Handle) uint32 { return h.rng.Uint32() },
		GetOption:    h.getOption,
		ClientID:     func(abi.Handle) int32 { return h.clientID },
		ClientCount:  func(abi.Handle) int32 { return h.clientCount },
		SharedRandomNumber: func(abi.Handle) int64 {
			return h.shared
		},
	}
	return tab, h.ctxHandle
}

// NewPromise mints a promise handle with send/free counters so tests can
// assert the finalize-exactly-once contract.
func (h *Host) NewPromise() (abi.PromiseTable, abi.Handle) {
	ph := h.newHandle()
	h.promises[ph] = &promiseState{}
	tab := abi.PromiseTable{
		Send: func(hd abi.Handle, v bool) {
			st := h.promises[hd]
			st.sends++
			st.resolved = true
			st.value = v
		},
		Free: func(hd abi.Handle) {
			h.promises[hd].frees++
		},
	}
	return tab, ph
}

// MetricsSink mints a metrics handle recording into the host's ordered
// metric log.
func (h *Host) MetricsSink() (abi.MetricsTable, abi.Handle) {
	mh := h.newHandle()
	tab := abi.MetricsTable{
		Reserve: func(_ abi.Handle, n int32) {
			h.reserves = append(h.reserves, int(n))
		},
		Push: func(_ abi.Handle, m abi.Metric) {
			h.metrics = append(h.metrics, workload.Metric{
				Key: mustGo(m.Key),
				Fmt: mustGo(m.Fmt),
				Val: m.Val,
				Avg: m.Avg,
			})
		},
	}
	return tab, mh
}

// Advance moves the simulated clock forward by dt seconds. Nothing else
// moves it.
func (h *Host) Advance(dt float64) {
	if dt > 0 {
		h.now += dt
	}
}

// Now returns the simulated time.
func (h *Host) Now() float64 { return h.now }

// Traces returns the recorded trace entries in call order.
func (h *Host) Traces() []TraceEntry { return h.traces }

// Metrics returns the pushed metrics in call order, unmodified.
func (h *Host) Metrics() []workload.Metric { return h.metrics }

// Reserves returns the recorded capacity hints.
func (h *Host) Reserves() []int { return h.reserves }

// Failed reports whether a SeverityError trace ended the run.
func (h *Host) Failed() bool { return h.failed }

// PromiseStats reports how many times the host send and free functions
// ran for hd.
func (h *Host) PromiseStats(hd abi.Handle) (sends, frees int) {
	st, ok := h.promises[hd]
	if !ok {
		return 0, 0
	}
	return st.sends, st.frees
}

// PromiseResolved reports whether hd was resolved via send.
func (h *Host) PromiseResolved(hd abi.Handle) bool {
	st, ok := h.promises[hd]
	return ok && st.resolved
}

// LiveBuffers returns the number of host-allocated option buffers handed
// out and not yet released. Zero after a well-behaved run.
func (h *Host) LiveBuffers() int { return h.liveBuffers }

func mustGo(c abi.CString) string {
	s, err := abi.GoString(c)
	if err != nil {
		panic(err)
	}
	return s
}
