// Package bridge is the single surface the host environment calls.
//
// It composes the socket client and the JSON handle model into a flat,
// stateless set of operations. Every operation takes handles or
// primitives, null-checks before delegating, and returns a handle, a
// primitive, or a (value, ok) pair - no error ever unwinds past this
// package into the host runtime, and no single call is fatal to the
// process.
//
// Numbers narrow to float32 at this boundary; that is a host-interop
// constraint, not a property of the handle model, which keeps full
// float64 precision internally.
package bridge
