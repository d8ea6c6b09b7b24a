package core

// Execute drives the fetch/dispatch/account loop for up to budget
// cycles, stopping early if the processing state stops running. It
// returns the total number of cycles actually consumed.
//
// Per invariant I1: if the core is still running when the budget is
// exhausted, the return value is budget-remaining (remaining may be
// negative, in which case the overshoot is credited — the returned
// total exceeds budget). If the core stopped running mid-budget, all
// unused cycles are consumed: the return value is
// budget-min(remaining, 0).
func (c *Core) Execute(mem Memory, budget Cycles) Cycles {
	remaining := budget

	for remaining.Positive() && c.state.Running() {
		var spent Cycles

		opcode, exc := c.readImmWord(mem)
		if exc != nil {
			spent = c.raise(exc)
		} else {
			c.ir = opcode
			handler := c.table.Get(opcode)
			cycles, herr := handler(c)
			if herr != nil {
				spent = c.raise(herr)
			} else {
				spent = cycles
			}
		}

		remaining.SubAssign(spent)
	}

	if c.state.Running() {
		return budget - remaining
	}

	adjust := remaining
	if adjust > 0 {
		adjust = 0
	}
	return budget - adjust
}
