//go:build colorsdebug

package colors

// assert panics with msg when cond is false. It guards internal
// preconditions that valid conversion math can never violate, so it is
// compiled in only under the colorsdebug build tag; release builds use the
// no-op in assert_release.go.
func assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
