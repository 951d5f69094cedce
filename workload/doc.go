// Package workload is the facade a test scenario programs against.
//
// A Context wraps the host context handle and exposes tracing, process
// identity, simulated time, deterministic randomness, consume-on-read
// option retrieval, and client topology. Promise wraps a one-shot
// completion token, Sink an append-only metrics collection.
//
// Every wrapper validates its host function table once at construction;
// handles are single-owner and none of the types here are safe for
// concurrent use.
package workload
