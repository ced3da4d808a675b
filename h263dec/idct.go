/*
DESCRIPTION
  idct.go provides the inverse discrete cosine transform: a separable
  float32 8-point transform over precomputed basis values, with fast paths
  for empty and DC-only blocks, summing its output into previously
  motion-compensated pixel data.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h263dec

// basisTable[freq][x] is cos(pi*(x+0.5)/8*freq), with the DC row
// pre-scaled by 1/sqrt(2). Values are the float32 evaluations of that
// expression, fixed so the transform is reproducible.
var basisTable = [8][8]float32{
	{0.70710677, 0.70710677, 0.70710677, 0.70710677, 0.70710677, 0.70710677, 0.70710677, 0.70710677},
	{0.98078525, 0.8314696, 0.5555702, 0.19509023, -0.19509032, -0.55557036, -0.83146966, -0.9807853},
	{0.9238795, 0.38268343, -0.38268352, -0.9238796, -0.9238795, -0.38268313, 0.3826836, 0.92387956},
	{0.8314696, -0.19509032, -0.9807853, -0.55557, 0.55557007, 0.98078525, 0.19509007, -0.8314698},
	{0.70710677, -0.70710677, -0.70710665, 0.707107, 0.70710677, -0.70710725, -0.70710653, 0.7071068},
	{0.5555702, -0.9807853, 0.19509041, 0.83146936, -0.8314698, -0.19508928, 0.9807853, -0.55557007},
	{0.38268343, -0.9238795, 0.92387974, -0.3826839, -0.38268384, 0.9238793, -0.92387974, 0.3826839},
	{0.19509023, -0.55557, 0.83146936, -0.9807852, 0.98078525, -0.83147013, 0.55557114, -0.19508967},
}

// idct1D transforms one 8-sample row of frequency components.
func idct1D(input *[8]float32, output *[8]float32) {
	*output = [8]float32{}
	for i := range output {
		for freq := 0; freq < 8; freq++ {
			output[i] += input[freq] * basisTable[freq][i]
		}
	}
}

func signum32(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func clampPixel(v int16) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// idctChannel transforms a plane's worth of level blocks out of the
// frequency domain and sums the result into output, which holds the
// motion-compensated prediction (or zeroes for intra data). blocks is in
// block-raster order with blkPerLine blocks per row; output is row-major
// with stride samples per line. Blocks overhanging a non-multiple-of-8
// plane are clipped.
func idctChannel(blocks []dctBlock, output []byte, blkPerLine, stride int) {
	height := len(output) / stride
	blkHeight := len(blocks) / blkPerLine

	var intermediate, transformed [8][8]float32

	for yBase := 0; yBase < blkHeight; yBase++ {
		for xBase := 0; xBase < blkPerLine; xBase++ {
			blk := &blocks[xBase+yBase*blkPerLine]

			xs := stride - xBase*8
			if xs > 8 {
				xs = 8
			}
			ys := height - yBase*8
			if ys > 8 {
				ys = 8
			}

			switch blk.kind {
			case dctZero:
				// Contributes nothing.

			case dctDC:
				// The 0.5 factor is basisTable[0][0] squared, standing
				// in for the two 1/sqrt(2) scalings of the full path.
				dc := blk.dc
				clipped := int16(dc*0.5/4.0 + signum32(dc)*0.5)
				if clipped < -256 {
					clipped = -256
				} else if clipped > 255 {
					clipped = 255
				}
				for yOff := 0; yOff < ys; yOff++ {
					for xOff := 0; xOff < xs; xOff++ {
						i := xBase*8 + xOff + (yBase*8+yOff)*stride
						output[i] = clampPixel(clipped + int16(output[i]))
					}
				}

			case dctFull:
				// Separable transform: rows, transpose, rows again. The
				// coef grid is indexed [x][y], so the final store
				// iterates the first index as x to undo the transpose.
				for row := 0; row < 8; row++ {
					idct1D(&blk.coef[row], &transformed[row])
					for i := range intermediate {
						intermediate[i][row] = transformed[row][i]
					}
				}
				for row := 0; row < 8; row++ {
					idct1D(&intermediate[row], &transformed[row])
				}

				for xOff := 0; xOff < xs; xOff++ {
					for yOff := 0; yOff < ys; yOff++ {
						v := transformed[xOff][yOff]
						clipped := int16(v/4.0 + signum32(v)*0.5)
						if clipped < -256 {
							clipped = -256
						} else if clipped > 255 {
							clipped = 255
						}
						i := xBase*8 + xOff + (yBase*8+yOff)*stride
						output[i] = clampPixel(clipped + int16(output[i]))
					}
				}
			}
		}
	}
}
