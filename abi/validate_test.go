package abi

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/simkit/simload/errors"
)

func fullContextTable() ContextTable {
	return ContextTable{
		Trace:              func(Handle, Severity, CString, []StringPair, int32) {},
		GetProcessID:       func(Handle) uint64 { return 0 },
		SetProcessID:       func(Handle, uint64) {},
		Now:                func(Handle) float64 { return 0 },
		Rnd:                func(Handle) uint32 { return 0 },
		GetOption:          func(Handle, CString, CString) StringResult { return StringResult{Buf: []byte{0}} },
		ClientID:           func(Handle) int32 { return 0 },
		ClientCount:        func(Handle) int32 { return 1 },
		SharedRandomNumber: func(Handle) int64 { return 0 },
	}
}

func TestContextTable_ValidateComplete(t *testing.T) {
	tab := fullContextTable()
	if err := tab.Validate(); err != nil {
		t.Errorf("Validate on complete table: %v", err)
	}
}

func TestContextTable_ValidateReportsAllMissing(t *testing.T) {
	tab := fullContextTable()
	tab.Trace = nil
	tab.Rnd = nil
	tab.GetOption = nil

	err := tab.Validate()
	if err == nil {
		t.Fatal("expected error for missing entries")
	}

	var missing *errors.MissingEntriesError
	if !stderrors.As(err, &missing) {
		t.Fatalf("expected MissingEntriesError, got %T", err)
	}
	if len(missing.Entries) != 3 {
		t.Errorf("reported %d entries, want 3: %v", len(missing.Entries), missing.Entries)
	}
	msg := err.Error()
	for _, want := range []string{"context#trace", "context#rnd", "context#getOption"} {
		if !strings.Contains(msg, want) {
			t.Errorf("diagnostic %q missing %q", msg, want)
		}
	}
}

func TestPromiseTable_Validate(t *testing.T) {
	tab := PromiseTable{Send: func(Handle, bool) {}}
	err := tab.Validate()
	if err == nil {
		t.Fatal("expected error for missing free")
	}
	if !strings.Contains(err.Error(), "promise#free") {
		t.Errorf("diagnostic = %q", err.Error())
	}

	tab.Free = func(Handle) {}
	if err := tab.Validate(); err != nil {
		t.Errorf("Validate on complete table: %v", err)
	}
}

func TestMetricsTable_Validate(t *testing.T) {
	tab := MetricsTable{}
	err := tab.Validate()
	if err == nil {
		t.Fatal("expected error for empty table")
	}
	var missing *errors.MissingEntriesError
	if !stderrors.As(err, &missing) {
		t.Fatalf("expected MissingEntriesError, got %T", err)
	}
	if len(missing.Entries) != 2 {
		t.Errorf("reported %d entries, want 2", len(missing.Entries))
	}
}

func TestSeverity_Codes(t *testing.T) {
	// The numeric codes are an external contract with the host trace
	// system; a drift here is an ABI break.
	codes := map[Severity]uint32{
		SeverityDebug:      5,
		SeverityInfo:       10,
		SeverityWarn:       20,
		SeverityWarnAlways: 30,
		SeverityError:      40,
	}
	for sev, want := range codes {
		if uint32(sev) != want {
			t.Errorf("%s = %d, want %d", sev, uint32(sev), want)
		}
		if !sev.Valid() {
			t.Errorf("%s should be valid", sev)
		}
	}
	if Severity(15).Valid() {
		t.Error("15 is not an agreed severity code")
	}
}
