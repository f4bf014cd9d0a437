// Package capi is the Go-level shape of a foreign-binding surface over
// the nist and runner packages (spec §6): opaque integer handles in place
// of pointers, explicit constructor/destructor pairs, and two-phase
// string retrieval for the last-error slot. No cgo build tags or
// `//export` directives are added — spec §1 scopes this module to "only
// the interface is specified", not an actual FFI boundary.
package capi

import (
	"sync"
	"sync/atomic"

	"github.com/stsgo/nist80022/errs"
)

// Handle is an opaque reference into the binding surface's handle table.
// The zero Handle is never issued and is reserved to mean "invalid".
type Handle uint64

var (
	nextHandle uint64 // atomically incremented, starts handles at 1

	tableMu sync.RWMutex
	table   = make(map[Handle]any)
)

// register stores obj under a freshly allocated handle.
func register(obj any) Handle {
	h := Handle(atomic.AddUint64(&nextHandle, 1))
	tableMu.Lock()
	table[h] = obj
	tableMu.Unlock()
	return h
}

// lookup retrieves the object behind h, or reports InvalidParameter if h
// is unknown (already destroyed, or never issued) — the same taxonomy a
// foreign caller dereferencing a stale handle would need to observe
// through the last-error slot.
func lookup(h Handle) (any, error) {
	tableMu.RLock()
	obj, ok := table[h]
	tableMu.RUnlock()
	if !ok {
		return nil, errs.New(errs.CodeInvalidParameter, "capi: handle %d is not live", uint64(h))
	}
	return obj, nil
}

// release removes h from the table. Releasing an unknown or
// already-released handle reports InvalidParameter rather than panicking,
// matching a foreign double-destroy being a data error, not a programmer
// panic, at this boundary.
func release(h Handle) error {
	tableMu.Lock()
	defer tableMu.Unlock()
	if _, ok := table[h]; !ok {
		return errs.New(errs.CodeInvalidParameter, "capi: handle %d is not live", uint64(h))
	}
	delete(table, h)
	return nil
}

// liveCount reports the number of handles currently registered; exposed
// for tests to confirm destructors actually free their slot.
func liveCount() int {
	tableMu.RLock()
	defer tableMu.RUnlock()
	return len(table)
}
