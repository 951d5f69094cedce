// Package simhost is an in-memory stand-in for the simulation engine,
// used by tests and the local runner. It implements every host function
// table against local state: a remove-on-read option store, a seeded
// deterministic random sequence, a manually advanced simulated clock, an
// ordered trace and metrics record, and per-promise send/free counters.
//
// It is a test double, not a simulator: nothing here schedules time or
// processes. Aggregation of avg metrics is likewise out of scope; pushed
// metrics are recorded verbatim.
package simhost
