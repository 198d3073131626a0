package logging

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/ulogproject/ulog/core"
)

func TestSeverityMapGetAbsent(t *testing.T) {
	sm := newSeverityMap()
	got, err := sm.get("nope")
	if err != nil {
		t.Fatal(err)
	}
	if got != core.SeverityUnset {
		t.Errorf("get(absent) = %v, want UNSET", got)
	}
}

func TestSeverityMapSetOverwrites(t *testing.T) {
	sm := newSeverityMap()
	if err := sm.set("a", core.SeverityDebug); err != nil {
		t.Fatal(err)
	}
	if err := sm.set("a", core.SeverityFatal); err != nil {
		t.Fatal(err)
	}
	if got, _ := sm.get("a"); got != core.SeverityFatal {
		t.Errorf("get(a) = %v, want FATAL", got)
	}
}

func TestSeverityMapCaseSensitive(t *testing.T) {
	sm := newSeverityMap()
	if err := sm.set("Logger", core.SeverityDebug); err != nil {
		t.Fatal(err)
	}
	if got, _ := sm.get("logger"); got != core.SeverityUnset {
		t.Errorf("names are compared byte-wise; get(logger) = %v", got)
	}
}

func TestSeverityMapInvalidAfterClear(t *testing.T) {
	sm := newSeverityMap()
	if err := sm.set("a", core.SeverityDebug); err != nil {
		t.Fatal(err)
	}
	sm.clear()

	if err := sm.set("a", core.SeverityDebug); !errors.Is(err, ErrSeverityMapInvalid) {
		t.Errorf("set after clear = %v, want ErrSeverityMapInvalid", err)
	}
	if _, err := sm.get("a"); !errors.Is(err, ErrSeverityMapInvalid) {
		t.Errorf("get after clear = %v, want ErrSeverityMapInvalid", err)
	}
	// Subsequent calls keep failing until the map is re-created.
	if err := sm.set("b", core.SeverityInfo); !errors.Is(err, ErrSeverityMapInvalid) {
		t.Errorf("second set after clear = %v", err)
	}
}

func TestSeverityMapEffectiveWalk(t *testing.T) {
	sm := newSeverityMap()
	if err := sm.set("x.y", core.SeverityError); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want core.Severity
	}{
		{"x.y.z", core.SeverityError},
		{"x.y", core.SeverityError},
		{"x", core.SeverityInfo},
		{"x.yz", core.SeverityInfo},
		{"", core.SeverityInfo},
	}
	for _, tt := range tests {
		if got := sm.effective(tt.name, core.SeverityInfo); got != tt.want {
			t.Errorf("effective(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSeverityMapEffectiveNil(t *testing.T) {
	var sm *severityMap
	if got := sm.effective("a.b", core.SeverityWarn); got != core.SeverityWarn {
		t.Errorf("nil map effective = %v, want the default", got)
	}
}
