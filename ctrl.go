package core

// Demonstration opcode handlers, adapted from the kind of control
// instructions a real instruction-set builder wires into a
// DispatchTable. The core never defines these itself — the dispatch
// table is supplied externally per spec.md §4.D — but a handful of
// handlers that touch processing state are useful as fixtures for
// exercising Execute end to end, and as a worked example of how a
// handler is written against Core's narrow surface.

// RegisterNOP installs a handler at opcode that consumes 4 cycles and
// changes nothing else.
func RegisterNOP(t *DispatchTable, opcode uint16) {
	t.Set(opcode, opNOP)
}

func opNOP(c *Core) (Cycles, Exception) {
	return 4, nil
}

// RegisterSTOP installs a handler modeling the STOP instruction:
// privileged, it halts instruction processing until an interrupt,
// trace, or reset resumes it. Unlike the full instruction (which also
// loads a new status register from an immediate operand) this
// demonstration handler only performs the privilege check and the
// state transition, since loading an SR is outside the core's surface.
func RegisterSTOP(t *DispatchTable, opcode uint16) {
	t.Set(opcode, opSTOP)
}

func opSTOP(c *Core) (Cycles, Exception) {
	if !c.Supervisor() {
		return 0, &PrivilegeViolation{IR: c.IR(), PC: c.PC() - 2}
	}
	c.SetProcessingState(Stopped)
	return 4, nil
}

// RegisterHaltOnReset installs a handler modeling a privileged RESET
// opcode that halts the core, awaiting external reset.
func RegisterHaltOnReset(t *DispatchTable, opcode uint16) {
	t.Set(opcode, opHaltOnReset)
}

func opHaltOnReset(c *Core) (Cycles, Exception) {
	if !c.Supervisor() {
		return 0, &PrivilegeViolation{IR: c.IR(), PC: c.PC() - 2}
	}
	c.SetProcessingState(Halted)
	return 132, nil
}

// RegisterTRAP installs handlers for the 16 TRAP #n opcodes starting
// at base (base+0 through base+15), each raising Trap with its own
// vector number.
func RegisterTRAP(t *DispatchTable, base uint16) {
	for n := uint16(0); n < 16; n++ {
		n := n
		t.Set(base+n, func(c *Core) (Cycles, Exception) {
			return 0, &Trap{Number: uint8(n), EACycles: 4}
		})
	}
}
