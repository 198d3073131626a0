package logging

import (
	"strings"

	"github.com/ulogproject/ulog/core"
)

// severityMap stores configured thresholds keyed by logger name. Names are
// compared byte-wise; the empty name never appears here (it addresses the
// default threshold and is routed before the map is consulted).
type severityMap struct {
	m map[string]core.Severity
}

func newSeverityMap() *severityMap {
	return &severityMap{m: make(map[string]core.Severity)}
}

// get returns the configured severity for name, SeverityUnset when absent.
func (sm *severityMap) get(name string) (core.Severity, error) {
	if sm == nil || sm.m == nil {
		return core.SeverityUnset, ErrSeverityMapInvalid
	}
	return sm.m[name], nil
}

// set inserts or overwrites the threshold for name.
func (sm *severityMap) set(name string, severity core.Severity) error {
	if sm == nil || sm.m == nil {
		return ErrSeverityMapInvalid
	}
	sm.m[name] = severity
	return nil
}

// clear drops all entries, leaving the map unusable until re-created.
func (sm *severityMap) clear() {
	if sm != nil {
		sm.m = nil
	}
}

// effective resolves the threshold gating name: the name's own threshold if
// set, else the nearest configured ancestor at a '.' boundary, else def.
// Dots are literal boundaries, so "a..b" is walked as "a..b", "a.", "a".
func (sm *severityMap) effective(name string, def core.Severity) core.Severity {
	if sm == nil || sm.m == nil {
		return def
	}
	for n := name; n != ""; {
		if s := sm.m[n]; s != core.SeverityUnset {
			return s
		}
		dot := strings.LastIndexByte(n, '.')
		if dot < 0 {
			break
		}
		n = n[:dot]
	}
	return def
}
