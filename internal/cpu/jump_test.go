package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scenario 5 (spec §8): RET C, taken.
func TestScenarioRetCTaken(t *testing.T) {
	bus := &FlatBus{}
	bus.Write(0x0100, 0xD8) // RET C
	bus.Write(0xFFFC, 0x00)
	bus.Write(0xFFFD, 0x20)
	c := New(bus)
	c.Reset(&State{PC: 0x0100, SP: 0xFFFC})
	c.setFlag(flagC, true)

	ticks := 0
	c.SetOnTick(func(RegisterView) { ticks++ })

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x2000), c.PC())
	assert.Equal(t, uint16(0xFFFE), c.SP())
	assert.Equal(t, 5, ticks)
}

func TestRetCNotTaken(t *testing.T) {
	bus := &FlatBus{}
	bus.Write(0x0100, 0xD8) // RET C
	c := New(bus)
	c.Reset(&State{PC: 0x0100, SP: 0xFFFC})

	ticks := 0
	c.SetOnTick(func(RegisterView) { ticks++ })

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0101), c.PC())
	assert.Equal(t, uint16(0xFFFC), c.SP(), "not taken: stack untouched")
	assert.Equal(t, 2, ticks)
}

func TestJrAlwaysTaken(t *testing.T) {
	bus := &FlatBus{}
	bus.Write(0x0000, 0x18) // JR
	bus.Write(0x0001, 0x05) // +5
	c := New(bus)

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0007), c.PC())
}

func TestJrNegativeOffset(t *testing.T) {
	bus := &FlatBus{}
	bus.Write(0x0010, 0x18) // JR
	bus.Write(0x0011, 0xFE) // -2
	c := New(bus)
	c.Reset(&State{PC: 0x0010})

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0010), c.PC())
}

func TestCallAndRet(t *testing.T) {
	bus := &FlatBus{}
	bus.Write(0x0000, 0xCD) // CALL 0x1000
	bus.Write(0x0001, 0x00)
	bus.Write(0x0002, 0x10)
	bus.Write(0x1000, 0xC9) // RET
	c := New(bus)
	c.Reset(&State{SP: 0xFFFE})

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x1000), c.PC())
	assert.Equal(t, uint16(0xFFFC), c.SP())

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0003), c.PC())
	assert.Equal(t, uint16(0xFFFE), c.SP())
}

func TestJpHLIsOneCycle(t *testing.T) {
	bus := &FlatBus{}
	bus.Write(0x0000, 0xE9) // JP (HL)
	c := New(bus)
	c.Reset(&State{H: 0x40, L: 0x00})

	ticks := 0
	c.SetOnTick(func(RegisterView) { ticks++ })

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x4000), c.PC())
	assert.Equal(t, 1, ticks)
}
