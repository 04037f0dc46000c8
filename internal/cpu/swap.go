package cpu

// swap exchanges the two nibbles of v (the CB-prefixed SWAP row),
// always clearing C.
func (c *CPU) swap(v uint8) uint8 {
	result := v<<4 | v>>4
	c.setFlags(result == 0, false, false, false)
	return result
}
