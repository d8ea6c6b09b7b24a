package core

// OpFunc is the handler signature for a single opcode. The handler
// takes an exclusive borrow of the core, may mutate it, and returns
// either the number of cycles it consumed or an Exception. The
// opcode's first word is already latched into the core's instruction
// register when the handler runs.
type OpFunc func(c *Core) (Cycles, Exception)

// DispatchTable is a flat 65,536-entry indirection from opcode to
// handler, indexed by the freshly fetched instruction word treated as
// an unsigned index. Entries left undefined by the instruction-set
// builder default to an illegal-instruction handler.
type DispatchTable struct {
	handlers [65536]OpFunc
}

// NewDispatchTable allocates a table with every entry defaulted to the
// illegal-instruction handler (invariant I2: exactly 65,536 entries,
// all callable).
func NewDispatchTable() *DispatchTable {
	t := &DispatchTable{}
	for i := range t.handlers {
		t.handlers[i] = illegalInstructionHandler
	}
	return t
}

// Set installs fn as the handler for opcode, overwriting whatever was
// there before (including the default).
func (t *DispatchTable) Set(opcode uint16, fn OpFunc) {
	t.handlers[opcode] = fn
}

// Get returns the handler installed for opcode. Never nil.
func (t *DispatchTable) Get(opcode uint16) OpFunc {
	return t.handlers[opcode]
}

// illegalInstructionHandler is the default fill for undefined opcodes.
// PC has already been advanced past the opcode by the fetch that
// produced it, so the faulting PC is c.pc-2.
func illegalInstructionHandler(c *Core) (Cycles, Exception) {
	return 0, &IllegalInstruction{IR: c.ir, PC: c.pc - 2}
}
