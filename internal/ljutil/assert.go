package ljutil

// Assert panics with msg if cond is false. Used for internal invariants
// that construction code is supposed to guarantee and that would indicate
// a bug in this package, not a caller error, if violated. Grounded on the
// teacher's own package-private assert.
func Assert(cond bool, msg string) {
	if !cond {
		panic("ljschema: assertion failed: " + msg)
	}
}
