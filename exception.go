package core

import (
	"fmt"
	"log"
)

// MC68000-derived exception vector numbers (spec-exact constants, §6).
const (
	ExceptionAddressError       = 3
	ExceptionIllegalInstruction = 4
	ExceptionZeroDivide         = 5
	ExceptionCHK                = 6
	ExceptionTRAPV              = 7
	ExceptionPrivilegeViolation = 8
)

// Exception is the tagged-variant result a handler or the fetch
// primitive returns on failure. Each concrete type carries enough
// context to reconstruct its stack frame and to resolve itself into
// the (new state, faulting PC, vector, cycle cost) tuple that
// Core.handleException applies.
//
// resolve is unexported so the variant set is closed: every Exception
// that can reach Core.raise must live in this package and supply a
// resolution, which gives the Go compiler the same exhaustiveness
// guarantee a sealed Rust enum's match would have (see DESIGN.md,
// Open Question 2).
type Exception interface {
	error
	resolve(c *Core) (newState ProcessingState, pcAtFault uint32, vector uint8, cycles Cycles)
}

// AddressError is raised when a fetch or access targets an odd
// address.
type AddressError struct {
	Address         uint32
	AccessType      AccessType
	ProcessingState ProcessingState
	AddressSpace    AddressSpace
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("address error: %s %s at %#08x during %s processing",
		e.AccessType, e.AddressSpace, e.Address, e.ProcessingState)
}

func (e *AddressError) resolve(*Core) (ProcessingState, uint32, uint8, Cycles) {
	return Group1Exception, e.Address, ExceptionAddressError, 50
}

// IllegalInstruction is raised when the dispatch table's entry for the
// fetched opcode is the default (undefined) handler.
type IllegalInstruction struct {
	IR uint16
	PC uint32
}

func (e *IllegalInstruction) Error() string {
	return fmt.Sprintf("illegal instruction %#04x at %#08x", e.IR, e.PC)
}

func (e *IllegalInstruction) resolve(*Core) (ProcessingState, uint32, uint8, Cycles) {
	return Group1Exception, e.PC, ExceptionIllegalInstruction, 34
}

// PrivilegeViolation is raised when a privileged opcode executes
// outside supervisor mode.
type PrivilegeViolation struct {
	IR uint16
	PC uint32
}

func (e *PrivilegeViolation) Error() string {
	return fmt.Sprintf("privilege violation %#04x at %#08x", e.IR, e.PC)
}

func (e *PrivilegeViolation) resolve(*Core) (ProcessingState, uint32, uint8, Cycles) {
	return Group1Exception, e.PC, ExceptionPrivilegeViolation, 34
}

// Trap is raised by a TRAP-family opcode handler. Number is used
// directly as the exception vector (the core does not remap it into
// the 32-47 TRAP #n range; that is an instruction-set concern).
type Trap struct {
	Number   uint8
	EACycles int32
}

func (e *Trap) Error() string {
	return fmt.Sprintf("trap %#02x (ea cycles %d)", e.Number, e.EACycles)
}

func (e *Trap) resolve(c *Core) (ProcessingState, uint32, uint8, Cycles) {
	return Group2Exception, c.pc, e.Number, Cycles(e.EACycles)
}

// UnimplementedInstruction is raised by a handler that recognizes its
// opcode but has not implemented its semantics, carrying the vector
// the instruction-set builder wants used for it.
type UnimplementedInstruction struct {
	IR     uint16
	PC     uint32
	Vector uint8
}

func (e *UnimplementedInstruction) Error() string {
	return fmt.Sprintf("unimplemented instruction %#04x at %#08x (vector %d)", e.IR, e.PC, e.Vector)
}

func (e *UnimplementedInstruction) resolve(*Core) (ProcessingState, uint32, uint8, Cycles) {
	return Group2Exception, e.PC, e.Vector, 34
}

// raise resolves exc and applies it via handleException, returning the
// cycle cost of exception entry.
func (c *Core) raise(exc Exception) Cycles {
	newState, pcAtFault, vector, cycles := exc.resolve(c)
	return c.handleException(newState, pcAtFault, vector, cycles)
}

// handleException applies an exception's state transition, synthesizes
// the handler PC from the vector number, and reports the cycle cost of
// entry. A faithful implementation would instead read the long word at
// vector*4 from the vector table in supervisor-data space; this core
// models it as the direct value (spec.md §4.F, §9 open question).
// pcAtFault is carried only for diagnostics; it never affects state.
func (c *Core) handleException(newState ProcessingState, pcAtFault uint32, vector uint8, cycles Cycles) Cycles {
	log.Printf("core: exception state=%s pc-at-fault=%#08x vector=%d cycles=%d", newState, pcAtFault, vector, int32(cycles))
	c.state = newState
	c.pc = uint32(vector) * 4
	return cycles
}
