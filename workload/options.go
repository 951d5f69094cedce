package workload

import "strconv"

// optionRaw queries the host for a configuration value, passing the
// empty string as the documented absent sentinel. Reading a name
// consumes it host-side: a later read of the same name reports absence
// whether or not a value existed.
func (c *Context) optionRaw(name string) (string, bool) {
	cname := mustCString(name)
	def := mustCString("")
	res := c.tab.GetOption(c.h, cname, def)
	v, err := res.Take()
	if err != nil {
		panic(err)
	}
	if v == "" {
		return "", false
	}
	return v, true
}

// OptionString reads and consumes the named option as text.
func (c *Context) OptionString(name string) (string, bool) {
	return c.optionRaw(name)
}

// OptionInt reads and consumes the named option as a signed integer.
// A value that fails to parse is reported as absent, indistinguishable
// from a name that was never configured.
func (c *Context) OptionInt(name string) (int64, bool) {
	raw, ok := c.optionRaw(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// OptionUint reads and consumes the named option as an unsigned integer.
func (c *Context) OptionUint(name string) (uint64, bool) {
	raw, ok := c.optionRaw(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// OptionFloat reads and consumes the named option as a float.
func (c *Context) OptionFloat(name string) (float64, bool) {
	raw, ok := c.optionRaw(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// OptionBool reads and consumes the named option as a boolean, accepting
// the forms strconv.ParseBool does.
func (c *Context) OptionBool(name string) (bool, bool) {
	raw, ok := c.optionRaw(name)
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
