package wasmhost

import (
	"unicode/utf8"

	"github.com/tetratelabs/wazero/api"

	"github.com/simkit/simload/errors"
)

// readCString reads a null-terminated UTF-8 string from guest memory.
// Running off the end of memory before a terminator, or malformed UTF-8,
// is an error.
func readCString(mem api.Memory, ptr uint32) (string, error) {
	var buf []byte
	for off := ptr; ; off++ {
		b, ok := mem.ReadByte(off)
		if !ok {
			return "", errors.Unterminated(errors.PhaseMarshal)
		}
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	if !utf8.Valid(buf) {
		return "", errors.InvalidUTF8(errors.PhaseMarshal, buf)
	}
	return string(buf), nil
}

// writeCString writes s plus a terminator into guest memory at ptr,
// bounded by cap bytes. Returns the number of text bytes written.
func writeCString(mem api.Memory, ptr, capacity uint32, s string) (int32, error) {
	need := uint32(len(s)) + 1
	if need > capacity {
		return 0, errors.InvalidInput(errors.PhaseMarshal, "destination buffer too small")
	}
	buf := make([]byte, need)
	copy(buf, s)
	if !mem.Write(ptr, buf) {
		return 0, errors.InvalidInput(errors.PhaseMarshal, "destination out of bounds")
	}
	return int32(len(s)), nil
}
