package core

import (
	"fmt"
	"sync/atomic"
)

var assertPanics atomic.Bool

// SetAssertPanics makes failed assertions panic instead of only being reported. Tests enable it
func SetAssertPanics(on bool) {
	assertPanics.Store(on)
}

// Assert reports an invariant violation when cond is false
func Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	err := &Error{Op: "assert", Kind: KindInvariant, Err: fmt.Errorf(format, args...)}
	if assertPanics.Load() {
		panic(err)
	}
	Report(err)
}
