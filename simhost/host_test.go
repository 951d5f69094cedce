package simhost

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/simkit/simload/abi"
	"github.com/simkit/simload/workload"
)

func newTestContext(t *testing.T, h *Host) *workload.Context {
	t.Helper()
	tab, ch := h.Context()
	ctx, err := workload.NewContext(tab, ch)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx
}

func TestHost_RndDeterministicForFixedSeed(t *testing.T) {
	draw := func(seed int64, n int) []uint32 {
		ctx := newTestContext(t, New(WithSeed(seed)))
		out := make([]uint32, n)
		for i := range out {
			out[i] = ctx.Rnd()
		}
		return out
	}

	a := draw(42, 16)
	b := draw(42, 16)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs across runs with the same seed: %d vs %d", i, a[i], b[i])
		}
	}

	c := draw(43, 16)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced an identical sequence")
	}
}

func TestHost_SharedRandomNumberStablePerSeed(t *testing.T) {
	a := newTestContext(t, New(WithSeed(7))).SharedRandomNumber()
	b := newTestContext(t, New(WithSeed(7))).SharedRandomNumber()
	if a != b {
		t.Errorf("shared random number differs for the same seed: %d vs %d", a, b)
	}

	// Stable across repeated reads within one run.
	ctx := newTestContext(t, New(WithSeed(7)))
	if ctx.SharedRandomNumber() != ctx.SharedRandomNumber() {
		t.Error("shared random number changed between reads")
	}
}

func TestHost_Clock(t *testing.T) {
	h := New()
	ctx := newTestContext(t, h)

	if ctx.Now() != 0 {
		t.Errorf("Now = %v at start, want 0", ctx.Now())
	}
	h.Advance(1.5)
	h.Advance(0.25)
	if ctx.Now() != 1.75 {
		t.Errorf("Now = %v, want 1.75", ctx.Now())
	}
	h.Advance(-3)
	if ctx.Now() != 1.75 {
		t.Errorf("Now = %v after negative advance, want 1.75", ctx.Now())
	}
}

func TestHost_OptionConsumeOnRead(t *testing.T) {
	h := New(WithOptions(map[string]string{"maxKeys": "42"}))
	ctx := newTestContext(t, h)

	if v, ok := ctx.OptionInt("maxKeys"); !ok || v != 42 {
		t.Fatalf("first read = (%d, %v), want (42, true)", v, ok)
	}
	if _, ok := ctx.OptionInt("maxKeys"); ok {
		t.Error("second read should report absence")
	}
	if h.OptionCount() != 0 {
		t.Errorf("consumed option still stored, count = %d", h.OptionCount())
	}
	if h.LiveBuffers() != 0 {
		t.Errorf("%d host buffers leaked", h.LiveBuffers())
	}
}

func TestHost_LoadOptions(t *testing.T) {
	h := New()
	err := h.LoadOptions([]byte("maxKeys: 42\nname: cycle\nratio: 0.5\n"))
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	ctx := newTestContext(t, h)

	if v, ok := ctx.OptionInt("maxKeys"); !ok || v != 42 {
		t.Errorf("maxKeys = (%d, %v)", v, ok)
	}
	if v, ok := ctx.OptionString("name"); !ok || v != "cycle" {
		t.Errorf("name = (%q, %v)", v, ok)
	}
	if v, ok := ctx.OptionFloat("ratio"); !ok || v != 0.5 {
		t.Errorf("ratio = (%v, %v)", v, ok)
	}
}

func TestHost_LoadOptionsRejectsNonScalar(t *testing.T) {
	h := New()
	if err := h.LoadOptions([]byte("nested:\n  a: 1\n")); err == nil {
		t.Error("expected error for non-scalar option value")
	}
	if err := h.LoadOptions([]byte("not yaml: [")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestHost_TraceRecording(t *testing.T) {
	h := New()
	ctx := newTestContext(t, h)

	ctx.Trace(workload.SeverityInfo, "TestStarted")
	ctx.Trace(workload.SeverityWarn, "SlowOp", workload.Pair{Key: "ms", Val: "12"})

	traces := h.Traces()
	if len(traces) != 2 {
		t.Fatalf("recorded %d traces, want 2", len(traces))
	}
	if traces[0].Name != "TestStarted" || traces[0].Severity != abi.SeverityInfo {
		t.Errorf("trace 0 = %+v", traces[0])
	}
	if traces[1].Details[0] != (workload.Pair{Key: "ms", Val: "12"}) {
		t.Errorf("trace 1 details = %+v", traces[1].Details)
	}
	if h.Failed() {
		t.Error("run should not be failed")
	}
}

func TestHost_ErrorTraceFailsRun(t *testing.T) {
	h := New()
	ctx := newTestContext(t, h)

	ctx.Trace(workload.SeverityError, "FatalAssertion", workload.Pair{Key: "key", Val: "val"})

	if !h.Failed() {
		t.Error("SeverityError trace should mark the run failed")
	}
	// The entry itself is still the diagnostic record of cause.
	if h.Traces()[0].Name != "FatalAssertion" {
		t.Errorf("trace = %+v", h.Traces()[0])
	}
}

func TestHost_LogSuppression(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := New(
		WithLogger(zap.New(core)),
		WithMinSeverity(abi.SeverityWarn),
	)
	ctx := newTestContext(t, h)

	ctx.Trace(workload.SeverityDebug, "Suppressed")
	ctx.Trace(workload.SeverityInfo, "AlsoSuppressed")
	ctx.Trace(workload.SeverityWarn, "Logged")
	ctx.Trace(workload.SeverityWarnAlways, "ExemptFromFilter")

	var names []string
	for _, e := range logs.All() {
		names = append(names, e.Message)
	}
	if len(names) != 2 || names[0] != "Logged" || names[1] != "ExemptFromFilter" {
		t.Errorf("logged = %v, want [Logged ExemptFromFilter]", names)
	}

	// Suppression affects only the mirrored log, never the record.
	if len(h.Traces()) != 4 {
		t.Errorf("recorded %d traces, want 4", len(h.Traces()))
	}
}

func TestHost_WarnAlwaysExemptBelowThreshold(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := New(
		WithLogger(zap.New(core)),
		WithMinSeverity(abi.SeverityError),
	)
	ctx := newTestContext(t, h)

	ctx.Trace(workload.SeverityWarnAlways, "StillVisible")
	if logs.Len() != 1 {
		t.Errorf("logged %d entries, want 1", logs.Len())
	}
}

func TestHost_Topology(t *testing.T) {
	h := New(WithClient(3, 8))
	ctx := newTestContext(t, h)

	if ctx.ClientID() != 3 || ctx.ClientCount() != 8 {
		t.Errorf("topology = (%d, %d), want (3, 8)", ctx.ClientID(), ctx.ClientCount())
	}
}

func TestHost_ProcessID(t *testing.T) {
	h := New()
	ctx := newTestContext(t, h)

	ctx.SetProcessID(77)
	if ctx.ProcessID() != 77 {
		t.Errorf("ProcessID = %d, want 77", ctx.ProcessID())
	}
}

func TestHost_PromiseCounters(t *testing.T) {
	h := New()
	ptab, ph := h.NewPromise()
	p, err := workload.NewPromise(ptab, ph)
	if err != nil {
		t.Fatalf("NewPromise: %v", err)
	}

	if err := p.Send(true); err != nil {
		t.Fatalf("Send: %v", err)
	}
	p.Release()

	sends, frees := h.PromiseStats(ph)
	if sends != 1 || frees != 1 {
		t.Errorf("sends=%d frees=%d, want 1/1", sends, frees)
	}
	if !h.PromiseResolved(ph) {
		t.Error("promise should be resolved")
	}
}

func TestHost_MetricsRecordedVerbatim(t *testing.T) {
	h := New()
	mtab, mh := h.MetricsSink()
	sink, err := workload.NewSink(mtab, mh)
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}

	sink.Push(workload.Metric{Key: "ops", Val: 100.0})
	sink.Push(workload.Metric{Key: "latency_ms", Val: 5.2, Avg: true})
	sink.Reserve(10)

	got := h.Metrics()
	if len(got) != 2 {
		t.Fatalf("recorded %d metrics, want 2", len(got))
	}
	if got[0].Key != "ops" || got[0].Val != 100.0 || got[0].Avg || got[0].Fmt != workload.DefaultFmt {
		t.Errorf("metric 0 = %+v", got[0])
	}
	if got[1].Key != "latency_ms" || got[1].Val != 5.2 || !got[1].Avg {
		t.Errorf("metric 1 = %+v", got[1])
	}
	if len(h.Reserves()) != 1 || h.Reserves()[0] != 10 {
		t.Errorf("reserves = %v", h.Reserves())
	}
}
