package main

import (
	"strconv"

	"github.com/simkit/simload"
	"github.com/simkit/simload/workload"
)

func init() {
	simload.Register("Smoke", func() simload.Workload { return &smoke{} }) //nolint:errcheck // static name
}

// smoke exercises every context operation once: options, randomness,
// time, topology, tracing, and metrics.
type smoke struct {
	opCount int
	draws   int
	started float64
	elapsed float64
}

func (s *smoke) Setup(ctx *workload.Context, done *workload.Promise) {
	s.opCount = 100
	if n, ok := ctx.OptionInt("opCount"); ok {
		s.opCount = int(n)
	}
	ctx.Trace(workload.SeverityInfo, "SmokeSetup",
		workload.Pair{Key: "opCount", Val: strconv.Itoa(s.opCount)},
		workload.Pair{Key: "client", Val: strconv.Itoa(int(ctx.ClientID()))},
	)
	done.Send(true)
}

func (s *smoke) Start(ctx *workload.Context, done *workload.Promise) {
	s.started = ctx.Now()
	for i := 0; i < s.opCount; i++ {
		ctx.Rnd()
		s.draws++
	}
	s.elapsed = ctx.Now() - s.started
	ctx.Trace(workload.SeverityDebug, "SmokeStartDone",
		workload.Pair{Key: "draws", Val: strconv.Itoa(s.draws)},
	)
	done.Send(true)
}

func (s *smoke) Check(ctx *workload.Context, done *workload.Promise) {
	if s.draws != s.opCount {
		ctx.Trace(workload.SeverityError, "SmokeDrawMismatch",
			workload.Pair{Key: "expected", Val: strconv.Itoa(s.opCount)},
			workload.Pair{Key: "actual", Val: strconv.Itoa(s.draws)},
		)
		return
	}
	done.Send(true)
}

func (s *smoke) Metrics(_ *workload.Context, out *workload.Sink) {
	out.Reserve(2)
	out.Push(workload.Val("ops", float64(s.draws)))
	out.Push(workload.Avg("elapsed_s", s.elapsed))
}

func (s *smoke) CheckTimeout() float64 { return 60 }
