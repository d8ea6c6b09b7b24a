// Package core implements the execution core of a 68000-family CISC
// emulator: the fetch/decode/dispatch loop and the prioritized
// interrupt delivery subsystem that feeds it.
//
// The core is deliberately narrow. It knows nothing about the bus
// implementation, the full instruction set, or the wider register
// file; it sees only a Memory read primitive, a DispatchTable of
// opaque opcode handlers, and an InterruptController. Everything else
// — loading a program image, wiring up peripherals, logging a trace —
// is a driver's responsibility.
package core

// Cycles is a signed scalar of elapsed or remaining processor cycles.
// Remaining cycles may legitimately go negative: a handler that
// consumes more than its budget overshoots, and the overshoot is
// credited back to the caller by Execute.
type Cycles int32

// Positive reports whether c is strictly greater than zero.
func (c Cycles) Positive() bool {
	return c > 0
}

// SubAssign subtracts n from c in place.
func (c *Cycles) SubAssign(n Cycles) {
	*c -= n
}
