// Package simload provides Go bindings for pluggable test scenarios
// ("workloads") running inside a deterministic distributed-database
// simulation host.
//
// The host owns simulated time, randomness, and process topology, and
// supplies a table of functions per handle kind. This library wraps those
// tables into safe Go types: strings are marshaled with explicit buffer
// ownership, one-shot resources cannot be reused, and every function
// table is validated once at construction.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	simload/         Root package with the Workload lifecycle and factory registry
//	├── abi/         Raw boundary: handles, function tables, C-string marshaling
//	├── workload/    Safe facade: Context, Promise, metrics Sink
//	├── errors/      Structured error types for boundary failures
//	├── simhost/     In-memory deterministic host for tests and local runs
//	├── wasmhost/    wazero adapter exposing the context to wasm guest workloads
//	└── cmd/simload/ Batch runner for registered workloads
//
// # Quick Start
//
// Implement the Workload lifecycle and register a factory:
//
//	type Cycle struct{ ops int }
//
//	func (c *Cycle) Setup(ctx *workload.Context, done *workload.Promise) {
//	    if n, ok := ctx.OptionInt("opCount"); ok {
//	        c.ops = int(n)
//	    }
//	    done.Send(true)
//	}
//
//	func init() {
//	    simload.Register("Cycle", func() simload.Workload { return &Cycle{} })
//	}
//
// The host constructs one workload context per run; all logging, option
// reads, randomness, metrics, and completion signals flow through it or
// through handles it hands out.
package simload
