package abi

import "github.com/simkit/simload/errors"

// Validate reports every absent entry of the context table. Run once at
// wrapper construction so an ABI version mismatch fails there, with one
// diagnostic, instead of crashing inside a later call.
func (t *ContextTable) Validate() error {
	var missing []string
	if t.Trace == nil {
		missing = append(missing, "trace")
	}
	if t.GetProcessID == nil {
		missing = append(missing, "getProcessID")
	}
	if t.SetProcessID == nil {
		missing = append(missing, "setProcessID")
	}
	if t.Now == nil {
		missing = append(missing, "now")
	}
	if t.Rnd == nil {
		missing = append(missing, "rnd")
	}
	if t.GetOption == nil {
		missing = append(missing, "getOption")
	}
	if t.ClientID == nil {
		missing = append(missing, "clientId")
	}
	if t.ClientCount == nil {
		missing = append(missing, "clientCount")
	}
	if t.SharedRandomNumber == nil {
		missing = append(missing, "sharedRandomNumber")
	}
	if len(missing) > 0 {
		return errors.NewMissingEntriesError("context", missing)
	}
	return nil
}

// Validate reports every absent entry of the promise table.
func (t *PromiseTable) Validate() error {
	var missing []string
	if t.Send == nil {
		missing = append(missing, "send")
	}
	if t.Free == nil {
		missing = append(missing, "free")
	}
	if len(missing) > 0 {
		return errors.NewMissingEntriesError("promise", missing)
	}
	return nil
}

// Validate reports every absent entry of the metrics table.
func (t *MetricsTable) Validate() error {
	var missing []string
	if t.Reserve == nil {
		missing = append(missing, "reserve")
	}
	if t.Push == nil {
		missing = append(missing, "push")
	}
	if len(missing) > 0 {
		return errors.NewMissingEntriesError("metrics", missing)
	}
	return nil
}
