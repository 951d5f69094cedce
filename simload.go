package simload

import (
	"sort"
	"sync"

	"github.com/simkit/simload/errors"
	"github.com/simkit/simload/workload"
)

// Workload is the lifecycle a test scenario implements. The host drives
// the phases in order: Setup, Start, Check, then Metrics. Each phase
// receives a one-shot promise the scenario resolves when the phase is
// complete; Metrics receives the sink the host aggregates and renders.
//
// All methods run synchronously on a single goroutine. A workload must
// not retain the context, promise, or sink beyond the run.
type Workload interface {
	// Setup prepares the scenario (populating data, reading options).
	Setup(ctx *workload.Context, done *workload.Promise)

	// Start runs the scenario's main activity.
	Start(ctx *workload.Context, done *workload.Promise)

	// Check verifies the scenario's outcome. A failed check is reported
	// with a Severity Error trace, which ends the run.
	Check(ctx *workload.Context, done *workload.Promise)

	// Metrics pushes the scenario's datapoints into the host sink.
	Metrics(ctx *workload.Context, out *workload.Sink)

	// CheckTimeout returns the simulated seconds the host grants Check.
	CheckTimeout() float64
}

// Factory constructs a fresh workload instance for one run.
type Factory func() Workload

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a workload factory available under name. Registering an
// empty name or a nil factory is an error; re-registering a name replaces
// the previous factory.
func Register(name string, f Factory) error {
	if name == "" {
		return errors.InvalidInput(errors.PhaseHost, "workload name cannot be empty")
	}
	if f == nil {
		return errors.InvalidInput(errors.PhaseHost, "workload factory cannot be nil")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = f
	return nil
}

// New instantiates a registered workload by name.
func New(name string) (Workload, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.NotFound("workload", name)
	}
	return f(), nil
}

// Names returns the registered workload names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
