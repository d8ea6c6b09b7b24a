package core

// ProcessInterrupt samples ctrl's highest asserted priority and admits
// it if the level exceeds the current mask, or on a rising edge to
// level 7 (NMI). The previous sampled level is kept as persistent core
// state so the edge can be detected across calls (spec.md §9).
//
// On admission the current mask is pushed onto the interrupt-return
// stack, the mask is raised to the new level, and the pending vector
// is set to whatever ctrl.AcknowledgeInterrupt resolves (or
// SpuriousInterrupt if the controller reports a level it cannot back
// with a vector). Otherwise the pending vector is cleared.
func (c *Core) ProcessInterrupt(ctrl InterruptController) {
	newLevel := ctrl.HighestPriority()
	edgeNMI := c.prevLevel != 7 && newLevel == 7

	if newLevel > c.irqMask || edgeNMI {
		c.returnStack = append(c.returnStack, c.irqMask)
		c.irqMask = newLevel

		vec := ctrl.AcknowledgeInterrupt(newLevel)
		if vec == nil {
			v := uint8(SpuriousInterrupt)
			vec = &v
		}
		c.pendingVector = vec
	} else {
		c.pendingVector = nil
	}

	c.prevLevel = newLevel
}

// ReturnFromInterrupt pops the interrupt-return stack into the current
// mask. The pending vector is left as-is for the caller to inspect.
// Called when the return stack is empty (more returns than accepted
// interrupts), this is a driver error and panics, same as any other
// out-of-bounds access to core-owned state.
func (c *Core) ReturnFromInterrupt() {
	last := len(c.returnStack) - 1
	c.irqMask = c.returnStack[last]
	c.returnStack = c.returnStack[:last]
}
