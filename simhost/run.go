package simhost

import (
	"fmt"

	"github.com/simkit/simload"
	"github.com/simkit/simload/errors"
	"github.com/simkit/simload/workload"
)

// Run drives the full workload lifecycle: setup, start, check, then
// metrics. Each phase gets its own completion promise; a phase that
// returns without resolving it is an error. Phases after a fatal trace
// are skipped and the run reports failure.
func (h *Host) Run(w simload.Workload) error {
	tab, ch := h.Context()
	ctx, err := workload.NewContext(tab, ch)
	if err != nil {
		return err
	}

	phases := []struct {
		name string
		fn   func(*workload.Context, *workload.Promise)
	}{
		{"setup", w.Setup},
		{"start", w.Start},
		{"check", w.Check},
	}

	for _, phase := range phases {
		if h.failed {
			break
		}
		if phase.name == "check" {
			// The host grants check its own window of simulated time.
			h.Advance(w.CheckTimeout())
		}

		ptab, ph := h.NewPromise()
		done, err := workload.NewPromise(ptab, ph)
		if err != nil {
			return err
		}
		phase.fn(ctx, done)
		done.Release()

		if h.failed {
			break
		}
		if !h.PromiseResolved(ph) {
			return errors.InvalidInput(errors.PhaseHost,
				fmt.Sprintf("%s returned without resolving its promise", phase.name))
		}
	}

	if !h.failed {
		mtab, mh := h.MetricsSink()
		sink, err := workload.NewSink(mtab, mh)
		if err != nil {
			return err
		}
		w.Metrics(ctx, sink)
	}

	if h.failed {
		return errors.RunFailed(h.failEvent)
	}
	return nil
}
