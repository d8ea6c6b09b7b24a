package core

import (
	"encoding/binary"
	"errors"
)

// snapshotVersion is incremented whenever the binary layout changes.
const snapshotVersion = 1

// snapshotFixedSize is the number of bytes in the snapshot before the
// variable-length interrupt-return stack: version(1) + ir(2) + pc(4) +
// supervisor(1) + state(1) + irqMask(1) + pendingVector present+value(2)
// + prevLevel(1) + stackLen(1).
const snapshotFixedSize = 14

// SnapshotSize returns the number of bytes Serialize will produce for
// the core's current interrupt-return stack depth.
func (c *Core) SnapshotSize() int {
	return snapshotFixedSize + len(c.returnStack)
}

// Serialize writes the full core state — ir, pc, supervisor flag,
// processing state, irq mask, pending vector, the interrupt-return
// stack, and the NMI edge detector's previous level — into buf, which
// must be at least SnapshotSize() bytes. The dispatch table is not
// included: it is logically read-only and owned by the driver.
func (c *Core) Serialize(buf []byte) error {
	need := c.SnapshotSize()
	if len(buf) < need {
		return errors.New("core: serialize buffer too small")
	}

	be := binary.BigEndian
	buf[0] = snapshotVersion
	off := 1

	be.PutUint16(buf[off:], c.ir)
	off += 2
	be.PutUint32(buf[off:], c.pc)
	off += 4

	buf[off] = boolByte(c.supervisor)
	off++
	buf[off] = byte(c.state)
	off++
	buf[off] = c.irqMask
	off++

	if c.pendingVector != nil {
		buf[off] = 1
		buf[off+1] = *c.pendingVector
	} else {
		buf[off] = 0
		buf[off+1] = 0
	}
	off += 2

	buf[off] = c.prevLevel
	off++

	buf[off] = uint8(len(c.returnStack))
	off++
	copy(buf[off:], c.returnStack)

	return nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Deserialize restores core state from buf, which must hold a snapshot
// produced by Serialize. It returns an error if buf is too short or
// its version does not match. The dispatch table is left unchanged.
func (c *Core) Deserialize(buf []byte) error {
	if len(buf) < snapshotFixedSize {
		return errors.New("core: deserialize buffer too small")
	}
	if buf[0] != snapshotVersion {
		return errors.New("core: unsupported snapshot version")
	}

	be := binary.BigEndian
	off := 1

	c.ir = be.Uint16(buf[off:])
	off += 2
	c.pc = be.Uint32(buf[off:])
	off += 4

	c.supervisor = buf[off] != 0
	off++
	c.state = ProcessingState(buf[off])
	off++
	c.irqMask = buf[off]
	off++

	if buf[off] != 0 {
		v := buf[off+1]
		c.pendingVector = &v
	} else {
		c.pendingVector = nil
	}
	off += 2

	c.prevLevel = buf[off]
	off++

	n := int(buf[off])
	off++
	if len(buf) < off+n {
		return errors.New("core: deserialize buffer truncated")
	}
	c.returnStack = append([]uint8(nil), buf[off:off+n]...)

	return nil
}
