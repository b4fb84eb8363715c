// Package assert is a helper to allow assertion checks in a standardized
// and simple manner. Using it makes it clear that a check is a debug-time
// invariant check, not production error handling.
package assert

import "fmt"

// DEBUG gates whether Assert actually evaluates anything. It is a const so
// the compiler can dead-code-eliminate call sites wrapped in
// "if assert.DEBUG { ... }" entirely in release builds.
const DEBUG = false

// Assert panics with the formatted message if test is false.
//
// Go still evaluates the arguments to this call even when DEBUG is false,
// so hot paths should additionally guard the call site with
// "if assert.DEBUG { assert.Assert(...) }" to avoid paying for the
// argument formatting at all.
func Assert(test bool, msg string, a ...interface{}) {
	if DEBUG && !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
