/*
DESCRIPTION
  gather.go provides the motion compensation engine: sampling a reference
  plane with edge replication, half-pixel bilinear interpolation, and
  collection of a macroblock's predicted pixel data.

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

// pixelMacroblock is the predicted (or zero) pixel data of one macroblock:
// four 8x8 luma blocks in Z order and one block per chroma plane, each in
// row-major order.
type pixelMacroblock struct {
	luma    [4][64]uint8
	chromaB [64]uint8
	chromaR [64]uint8
}

// readSample fetches a plane sample, replicating edge pixels for
// out-of-extent positions.
func readSample(plane []byte, stride int, x, y int) uint8 {
	if x < 0 {
		x = 0
	} else if x >= stride {
		x = stride - 1
	}

	height := len(plane) / stride
	if y < 0 {
		y = 0
	} else if y >= height {
		y = height - 1
	}

	return plane[x+y*stride]
}

// lerpHalf averages two samples for the half-pixel position, truncating.
func lerpHalf(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b)) / 2)
}

// gatherBlock motion-compensates one 8x8 block from a reference plane into
// target, in row-major order.
func gatherBlock(plane []byte, stride int, posX, posY int, mv MotionVector, target *[64]uint8) {
	xDelta, xHalf := mv.X.LerpParams()
	yDelta, yHalf := mv.Y.LerpParams()

	x := posX + xDelta
	y := posY + yDelta

	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			s := readSample(plane, stride, x+i, y+j)
			if xHalf {
				s = lerpHalf(s, readSample(plane, stride, x+i+1, y+j))
			}
			if yHalf {
				t := readSample(plane, stride, x+i, y+j+1)
				if xHalf {
					t = lerpHalf(t, readSample(plane, stride, x+i+1, y+j+1))
				}
				s = lerpHalf(s, t)
			}
			target[i+j*8] = s
		}
	}
}

// gather collects the motion-compensated prediction of the macroblock at
// luma position (posX, posY) from the reference picture. Intra
// macroblocks, and inter macroblocks without a reference, predict from
// nothing and yield zero data. mv carries the four luma vectors;
// single-vector macroblocks repeat one vector.
func gather(mbType MacroblockType, ref *Picture, posX, posY int, mv [4]MotionVector) pixelMacroblock {
	var pmb pixelMacroblock
	if mbType.Intra() || ref == nil {
		return pmb
	}

	lumaStride := ref.LumaStride()
	gatherBlock(ref.Luma(), lumaStride, posX, posY, mv[0], &pmb.luma[0])
	gatherBlock(ref.Luma(), lumaStride, posX+8, posY, mv[1], &pmb.luma[1])
	gatherBlock(ref.Luma(), lumaStride, posX, posY+8, mv[2], &pmb.luma[2])
	gatherBlock(ref.Luma(), lumaStride, posX+8, posY+8, mv[3], &pmb.luma[3])

	mvChroma := chromaFromFourVectors(mv)
	chromaStride := ref.ChromaStride()
	gatherBlock(ref.ChromaB(), chromaStride, posX/2, posY/2, mvChroma, &pmb.chromaB)
	gatherBlock(ref.ChromaR(), chromaStride, posX/2, posY/2, mvChroma, &pmb.chromaR)

	return pmb
}
