package workload

import (
	"github.com/simkit/simload/abi"
	"github.com/simkit/simload/errors"
)

// Severity grades a trace entry; see the abi package for the contract
// behind each code.
type Severity = abi.Severity

const (
	SeverityDebug      = abi.SeverityDebug
	SeverityInfo       = abi.SeverityInfo
	SeverityWarn       = abi.SeverityWarn
	SeverityWarnAlways = abi.SeverityWarnAlways
	SeverityError      = abi.SeverityError
)

// Pair is one (key, value) detail of a trace entry.
type Pair struct {
	Key string
	Val string
}

// Context wraps the host context handle. The host creates it once before
// the workload runs and owns its lifetime; the workload holds it for the
// entire execution and never destroys it.
type Context struct {
	tab abi.ContextTable
	h   abi.Handle
}

// NewContext wraps a host context handle. The function table is checked
// here, once: an absent entry fails construction with a diagnostic
// listing every missing function, rather than crashing a later call.
func NewContext(tab abi.ContextTable, h abi.Handle) (*Context, error) {
	if h == 0 {
		return nil, errors.NilHandle("context")
	}
	if err := tab.Validate(); err != nil {
		return nil, err
	}
	return &Context{tab: tab, h: h}, nil
}

// Trace forwards one structured log entry to the host. The marshaled
// buffers live only for the duration of the call.
//
// SeverityError tells the host the run has failed; the host stops the
// process shortly after the call returns, so nothing following such a
// call may be relied upon to execute.
//
// Text containing an embedded null byte or malformed UTF-8 panics with a
// structured error: that is a programming error, and continuing with
// altered bytes would corrupt test identity undetectably.
func (c *Context) Trace(sev Severity, name string, details ...Pair) {
	cname := mustCString(name)
	pairs := make([]abi.StringPair, len(details))
	for i, d := range details {
		pairs[i] = abi.StringPair{
			Key: mustCString(d.Key),
			Val: mustCString(d.Val),
		}
	}
	c.tab.Trace(c.h, sev, cname, pairs, int32(len(pairs)))
}

// ProcessID returns the simulated process's numeric identity.
func (c *Context) ProcessID() uint64 {
	return c.tab.GetProcessID(c.h)
}

// SetProcessID overwrites the simulated process's numeric identity.
// Uniqueness is the host's responsibility.
func (c *Context) SetProcessID(id uint64) {
	c.tab.SetProcessID(c.h, id)
}

// Now returns the simulated time in seconds. It is monotonic within one
// run and unrelated to wall-clock time; without intervening simulated
// progress repeated calls may return the same value.
func (c *Context) Now() float64 {
	return c.tab.Now(c.h)
}

// Rnd returns the next value of the host's deterministic pseudo-random
// sequence. Each call maps to exactly one host draw, in call order; any
// local buffering or reordering would break run-over-run reproducibility
// for workloads that interleave Rnd with other context calls.
func (c *Context) Rnd() uint32 {
	return c.tab.Rnd(c.h)
}

// ClientID returns this client's index among the clients cooperating on
// the same workload.
func (c *Context) ClientID() int32 {
	return c.tab.ClientID(c.h)
}

// ClientCount returns the total number of cooperating clients.
func (c *Context) ClientCount() int32 {
	return c.tab.ClientCount(c.h)
}

// SharedRandomNumber returns a value drawn once per run and distributed
// identically to every client, for synchronizing randomized decisions
// without extra coordination.
func (c *Context) SharedRandomNumber() int64 {
	return c.tab.SharedRandomNumber(c.h)
}

func mustCString(s string) abi.CString {
	cs, err := abi.NewCString(s)
	if err != nil {
		panic(err)
	}
	return cs
}
