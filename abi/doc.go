// Package abi defines the raw boundary between a workload and the
// simulation host: opaque handles, per-handle function tables, and the
// marshaling of text across the boundary.
//
// Every piece of text that crosses is a null-terminated, UTF-8 byte
// buffer with no embedded null bytes. Buffers produced here stay owned by
// this side and live for the duration of one call; buffers returned by
// the host carry a release function that must run exactly once, after the
// text has been copied out.
//
// Function tables are plain structs of func values supplied by the host
// at handle creation; a nil entry is absent. Each table is validated once
// at wrapper construction (see Validate on each table type) so a host
// version mismatch surfaces as a single diagnostic instead of a crash
// inside an arbitrary later call.
//
// The severity codes are an external, versioned contract shared with the
// host's trace system and are never redefined here.
package abi
