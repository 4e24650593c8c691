/*
Package display is the host side of nbview: an explicit registry that maps a
value's display kind to a callback, and the output cells callbacks publish into.

Values opt in by implementing [Displayable]. The registry never inspects type
names at runtime; a value's kind comes from its DisplayKind method, and each
callback is usually wrapped with [Typed] so it receives its concrete type.

# Lifecycle

	reg := display.NewRegistry()
	_ = reg.Register("frame", fn) // during startup only
	reg.Seal()                    // further Register calls fail with ErrSealed
	err := reg.Display(cell, value)

A callback returns either [Hidden], meaning it already published output into the
cell itself, or a [Bundle] that the registry publishes on its behalf. Values with
no registered callback are published as text/plain using fmt.Sprint.
*/
package display
