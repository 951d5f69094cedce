package abi

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/simkit/simload/errors"
)

// CString is a null-terminated byte buffer holding UTF-8 text. The
// terminator is part of the slice. A CString produced by NewCString is
// valid for the duration of one boundary call; storage stays owned by
// this side unless the call explicitly transfers ownership.
type CString []byte

// NewCString marshals s into a null-terminated buffer. Text containing
// an embedded null byte or malformed UTF-8 is rejected outright: passing
// altered bytes into a determinism-sensitive harness would corrupt test
// identity without detection.
func NewCString(s string) (CString, error) {
	if !utf8.ValidString(s) {
		return nil, errors.InvalidUTF8(errors.PhaseMarshal, []byte(s))
	}
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, errors.NullByte(errors.PhaseMarshal, i)
	}
	buf := make(CString, len(s)+1)
	copy(buf, s)
	return buf, nil
}

// String returns the text without its terminator. Only meaningful on
// buffers produced by NewCString; arbitrary host buffers go through
// GoString instead.
func (c CString) String() string {
	if n := len(c); n > 0 {
		return string(c[:n-1])
	}
	return ""
}

// GoString interprets an incoming null-terminated buffer as UTF-8 text.
// A buffer with no terminator or with malformed UTF-8 is an error, never
// a truncated or substituted result.
func GoString(buf []byte) (string, error) {
	i := bytes.IndexByte(buf, 0)
	if i < 0 {
		return "", errors.Unterminated(errors.PhaseMarshal)
	}
	if !utf8.Valid(buf[:i]) {
		return "", errors.InvalidUTF8(errors.PhaseMarshal, buf[:i])
	}
	return string(buf[:i]), nil
}

// StringResult is a text buffer returned by the host. When Free is
// non-nil the buffer is host-allocated and Free must run exactly once,
// after the text has been copied out; a nil Free means the buffer is
// borrowed for the duration of the call.
type StringResult struct {
	Buf   []byte
	Free  func()
	freed bool
}

// Take copies the text out of the host buffer and releases it. The
// release runs exactly once no matter how many times Take is called; on
// a marshaling error the buffer is left untouched, since the operation
// aborts irrecoverably.
func (r *StringResult) Take() (string, error) {
	s, err := GoString(r.Buf)
	if err != nil {
		return "", err
	}
	if r.Free != nil && !r.freed {
		r.freed = true
		r.Free()
	}
	return s, nil
}
