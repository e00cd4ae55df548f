package render

import "image/color"

// fillBitsRGBA expands packed cell words (one bit per cell, bit i of word
// i/64) into RGBA pixels in buf. total is the cell count; buf must hold
// 4*total bytes.
func fillBitsRGBA(buf []byte, words []uint64, total int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < total; i++ {
		base := i * 4
		if words[i>>6]&(1<<(uint(i)&63)) != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
