package simhost

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/simkit/simload/abi"
	"github.com/simkit/simload/errors"
)

// SetOption stores one option value. Values are kept as text; typed
// decoding happens in the workload facade.
func (h *Host) SetOption(name, value string) {
	h.options[name] = value
}

// OptionCount returns the number of options not yet consumed.
func (h *Host) OptionCount() int { return len(h.options) }

// LoadOptionsFile seeds the option table from a YAML mapping of option
// names to scalar values.
func (h *Host) LoadOptionsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return h.LoadOptions(data)
}

// LoadOptions seeds the option table from YAML bytes.
func (h *Host) LoadOptions(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &errors.Error{
			Phase:  errors.PhaseHost,
			Kind:   errors.KindInvalidInput,
			Detail: "parse options file",
			Cause:  err,
		}
	}
	for name, value := range raw {
		switch value.(type) {
		case map[string]any, []any:
			return errors.InvalidInput(errors.PhaseHost,
				fmt.Sprintf("option %q is not a scalar", name))
		}
		h.options[name] = fmt.Sprint(value)
	}
	return nil
}

// getOption implements consume-on-read: the stored value is removed the
// moment it is handed out, so a later read is structurally incapable of
// returning a stale value. The returned buffer is host-allocated and
// tracked until its release function runs.
func (h *Host) getOption(_ abi.Handle, name, def abi.CString) abi.StringResult {
	key := mustGo(name)
	val, ok := h.options[key]
	if !ok {
		val = mustGo(def)
	} else {
		delete(h.options, key)
	}
	buf := make([]byte, len(val)+1)
	copy(buf, val)
	h.liveBuffers++
	released := false
	return abi.StringResult{
		Buf: buf,
		Free: func() {
			if !released {
				released = true
				h.liveBuffers--
			}
		},
	}
}
