// Package wasmhost exposes a workload context to WebAssembly guest
// workloads through wazero.
//
// The guest links against the "simload" host module. Text crosses guest
// linear memory as null-terminated UTF-8, the same contract the native
// boundary uses; malformed text traps the calling function rather than
// continuing with altered bytes.
package wasmhost
