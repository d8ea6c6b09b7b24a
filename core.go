package core

// Memory is the sole bus primitive the core needs: a pure, typed read
// of a 16-bit word. Writes, byte/long access, and everything else
// about the bus implementation are a driver's concern.
type Memory interface {
	Read(space AddressSpace, addr uint32) uint16
}

// Core holds the execution-core state: the instruction register, the
// program counter, the supervisor flag, the current processing state,
// the interrupt mask and return stack, the pending vector, and a
// reference to the dispatch table. It owns nothing about the wider
// register file (D0-D7/A0-A7) or the bus.
type Core struct {
	ir         uint16
	pc         uint32
	supervisor bool
	state      ProcessingState

	irqMask       uint8
	pendingVector *uint8
	returnStack   []uint8
	prevLevel     uint8

	table *DispatchTable
}

// NewCore constructs a core wired to table, starting in Normal state
// with PC 0, user mode, and no pending interrupt. A driver that needs
// a different starting point should follow with SetState.
func NewCore(table *DispatchTable) *Core {
	return &Core{
		state: Normal,
		table: table,
	}
}

// SetState establishes the core's programmer-visible state directly,
// without going through reset or exception processing. Intended for
// test setup and for a driver restoring a snapshot's logical fields
// (use Deserialize to restore the full binary snapshot instead).
func (c *Core) SetState(ir uint16, pc uint32, supervisor bool, state ProcessingState) {
	c.ir = ir
	c.pc = pc
	c.supervisor = supervisor
	c.state = state
	c.irqMask = 0
	c.pendingVector = nil
	c.returnStack = nil
	c.prevLevel = 0
}

// IR returns the instruction register: the first word of the most
// recently dispatched instruction.
func (c *Core) IR() uint16 { return c.ir }

// PC returns the program counter.
func (c *Core) PC() uint32 { return c.pc }

// SetPC sets the program counter directly. Exposed so opcode handlers
// (which receive only a *Core) can implement control transfer.
func (c *Core) SetPC(pc uint32) { c.pc = pc }

// Supervisor reports whether the core is in supervisor mode.
func (c *Core) Supervisor() bool { return c.supervisor }

// SetSupervisor sets the supervisor flag.
func (c *Core) SetSupervisor(v bool) { c.supervisor = v }

// ProcessingState returns the current processing state.
func (c *Core) ProcessingState() ProcessingState { return c.state }

// SetProcessingState sets the processing state directly. Exposed for
// opcode handlers that transition state outside exception processing
// (e.g. STOP entering Stopped).
func (c *Core) SetProcessingState(s ProcessingState) { c.state = s }

// IRQMask returns the current interrupt priority mask (0-7).
func (c *Core) IRQMask() uint8 { return c.irqMask }

// PendingVector returns the vector produced by the most recent
// ProcessInterrupt call, or nil if that call did not admit an
// interrupt.
func (c *Core) PendingVector() *uint8 { return c.pendingVector }

// programSpace returns the address space read_imm_u16 fetches from:
// supervisor-program when the supervisor flag is set, user-program
// otherwise.
func (c *Core) programSpace() AddressSpace {
	if c.supervisor {
		return SupervisorProgram
	}
	return UserProgram
}

// readImmWord reads the 16-bit word at PC in the current program
// address space and advances PC by 2. It fails with AddressError,
// leaving PC unchanged, if PC is odd (invariant I3).
func (c *Core) readImmWord(mem Memory) (uint16, Exception) {
	space := c.programSpace()
	if c.pc&1 != 0 {
		return 0, &AddressError{
			Address:         c.pc,
			AccessType:      Read,
			ProcessingState: c.state,
			AddressSpace:    space,
		}
	}
	word := mem.Read(space, c.pc)
	c.pc += 2
	return word, nil
}
