/*
DESCRIPTION
  Package deblock implements a deblocking filter inspired by ITU-T H.263
  Annex J, intended as a display postprocessing step rather than a loop
  filter. The filter smooths the horizontal then the vertical edges of
  the 8x8 block grid.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package deblock provides an H.263 Annex J style postprocess deblocking
// filter for 8-bit planar image data on an 8x8 block grid.
package deblock

// quantToStrength is Table J.2: filter strength as a function of the
// quantizer in force. Index 0 is never used by a legal quantizer.
var quantToStrength = [32]uint8{
	0, 1, 1, 2, 2, 3, 3, 4, 4, 4, 5, 5, 6, 6, 7, 7,
	7, 8, 8, 8, 9, 9, 9, 10, 10, 10, 11, 11, 11, 12, 12, 12,
}

// Strength returns the filter strength for the given quantizer.
func Strength(quant uint8) uint8 {
	return quantToStrength[quant&31]
}

// upDownRamp shapes the filter response d1 from the raw edge difference d
// (Figure J.2): proportional up to the strength, ramping back down to
// zero so strong true edges pass unfiltered.
func upDownRamp(x, strength int16) int16 {
	sign := int16(1)
	a := x
	if x < 0 {
		sign, a = -1, -x
	}
	v := 2 * (a - strength)
	if v < 0 {
		v = 0
	}
	v = a - v
	if v < 0 {
		v = 0
	}
	return sign * v
}

// clipd1 clips x to +/-|lim|.
func clipd1(x, lim int16) int16 {
	if lim < 0 {
		lim = -lim
	}
	if x < -lim {
		return -lim
	}
	if x > lim {
		return lim
	}
	return x
}

// filterEdge filters one quartet of samples straddling a block edge: a
// and b belong to one block, c and d to the neighbouring block to the
// right of or below it.
func filterEdge(a, b, c, d *uint8, strength uint8) {
	a16, b16, c16, d16 := int16(*a), int16(*b), int16(*c), int16(*d)

	diff := (a16 - 4*b16 + 4*c16 - d16) / 8
	d1 := upDownRamp(diff, int16(strength))
	d2 := clipd1((a16-d16)/4, d1/2)

	*a = uint8(a16 - d2)
	*b = clampByte(b16 + d1)
	*c = clampByte(c16 - d1)
	*d = uint8(d16 + d2)
}

func clampByte(v int16) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// deblockHoriz filters the horizontal block edges of the plane.
func deblockHoriz(plane []byte, width int, strength uint8) {
	height := len(plane) / width

	// edgeY indexes the row holding the "c" samples.
	for edgeY := 8; edgeY <= height-2; edgeY += 8 {
		rowA := plane[(edgeY-2)*width:]
		rowB := plane[(edgeY-1)*width:]
		rowC := plane[edgeY*width:]
		rowD := plane[(edgeY+1)*width:]
		for x := 0; x < width; x++ {
			filterEdge(&rowA[x], &rowB[x], &rowC[x], &rowD[x], strength)
		}
	}
}

// deblockVert filters the vertical block edges of the plane.
func deblockVert(plane []byte, width int, strength uint8) {
	if width < 10 {
		// Not enough pixels for any vertical edge quartet.
		return
	}
	height := len(plane) / width

	for y := 0; y < height; y++ {
		row := plane[y*width : (y+1)*width]
		// edgeX indexes the column holding the "c" samples.
		for edgeX := 8; edgeX+2 <= width; edgeX += 8 {
			filterEdge(&row[edgeX-2], &row[edgeX-1], &row[edgeX], &row[edgeX+1], strength)
		}
	}
}

// Plane applies the filter in place to a planar image of the given row
// width, horizontal edges first. len(plane) must be a multiple of width.
func Plane(plane []byte, width int, strength uint8) {
	deblockHoriz(plane, width, strength)
	deblockVert(plane, width, strength)
}

// Deblock returns a filtered copy of a planar image of the given row
// width. len(data) must be a multiple of width.
func Deblock(data []byte, width int, strength uint8) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	Plane(out, width, strength)
	return out
}
