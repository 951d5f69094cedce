package workload

import (
	"runtime"

	"github.com/simkit/simload/abi"
	"github.com/simkit/simload/errors"
)

// Promise is a one-shot completion token handed out by a host operation
// that needs an asynchronous acknowledgment. It transitions from pending
// to exactly one of resolved (via Send) or released (via Release or the
// finalizer backstop); the host free function runs exactly once across
// its life on every path.
type Promise struct {
	tab  abi.PromiseTable
	h    abi.Handle
	done bool
}

// NewPromise wraps a host promise handle, validating the table once.
func NewPromise(tab abi.PromiseTable, h abi.Handle) (*Promise, error) {
	if h == 0 {
		return nil, errors.NilHandle("promise")
	}
	if err := tab.Validate(); err != nil {
		return nil, err
	}
	p := &Promise{tab: tab, h: h}
	// Backstop for promises discarded without Send or Release.
	runtime.SetFinalizer(p, (*Promise).Release)
	return p, nil
}

// Send resolves the promise and finalizes the underlying handle. The
// host disregards the value; only the pending-to-resolved transition
// matters.
//
// Send consumes the promise. A second Send, or a Send after Release,
// reaches no host function and returns a deterministic protocol-misuse
// error.
func (p *Promise) Send(value bool) error {
	if p.done {
		return errors.DoubleResolve()
	}
	p.done = true
	runtime.SetFinalizer(p, nil)
	p.tab.Send(p.h, value)
	p.tab.Free(p.h)
	return nil
}

// Release finalizes an unresolved promise without resolving it. It is
// idempotent and a no-op after Send.
func (p *Promise) Release() {
	if p.done {
		return
	}
	p.done = true
	runtime.SetFinalizer(p, nil)
	p.tab.Free(p.h)
}

// Resolved reports whether the promise has reached a terminal state.
func (p *Promise) Resolved() bool {
	return p.done
}
