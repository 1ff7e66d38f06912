package render

import "image/color"

// clearRGBA zeroes the pixels of rows [y0, y1) and columns [x0, x1) in an RGBA
// buffer with the given stride.
func clearRGBA(buf []byte, stride, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		row := buf[y*stride+x0*4 : y*stride+x1*4]
		for i := range row {
			row[i] = 0
		}
	}
}

// fillRGBA composites col over the pixels of rows [y0, y1) and columns
// [x0, x1). The buffer holds alpha-premultiplied RGBA, as image.RGBA does.
func fillRGBA(buf []byte, stride, x0, y0, x1, y1 int, col color.Color) {
	r, g, b, a := col.RGBA()
	if a == 0 {
		return
	}
	inv := 0xffff - a
	for y := y0; y < y1; y++ {
		base := y*stride + x0*4
		for x := x0; x < x1; x++ {
			if a == 0xffff {
				buf[base+0] = uint8(r >> 8)
				buf[base+1] = uint8(g >> 8)
				buf[base+2] = uint8(b >> 8)
				buf[base+3] = 0xff
			} else {
				buf[base+0] = uint8((r + uint32(buf[base+0])*0x101*inv/0xffff) >> 8)
				buf[base+1] = uint8((g + uint32(buf[base+1])*0x101*inv/0xffff) >> 8)
				buf[base+2] = uint8((b + uint32(buf[base+2])*0x101*inv/0xffff) >> 8)
				buf[base+3] = uint8((a + uint32(buf[base+3])*0x101*inv/0xffff) >> 8)
			}
			base += 4
		}
	}
}
