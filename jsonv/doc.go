// Package jsonv models JSON value trees behind shared handles.
//
// The host side of the bridge never sees this package's internals: it holds
// Object, Array and Value handles and manipulates the underlying tree
// through them. A handle is a view onto a shared node, so attaching a
// handle's subtree to a container aliases it rather than copying it -
// mutations made through either handle are visible through the other.
//
// Every operation tolerates an invalid (zero) handle: writes no-op with a
// diagnostic log line and reads return their documented failure indicator.
// Nothing in this package panics across the exported surface.
package jsonv
