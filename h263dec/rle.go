/*
DESCRIPTION
  rle.go provides inverse run-length decoding of block coefficient data:
  dezigzag into an 8x8 grid and dequantization into transform levels ready
  for the inverse DCT.

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

// dezigzag maps a zigzag scan index to its (x, y) position in the block.
var dezigzag = [64][2]uint8{
	{0, 0}, {1, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 0}, {3, 0}, {2, 1},
	{1, 2}, {0, 3}, {0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0}, {5, 0},
	{4, 1}, {3, 2}, {2, 3}, {1, 4}, {0, 5}, {0, 6}, {1, 5}, {2, 4},
	{3, 3}, {4, 2}, {5, 1}, {6, 0}, {7, 0}, {6, 1}, {5, 2}, {4, 3},
	{3, 4}, {2, 5}, {1, 6}, {0, 7}, {1, 7}, {2, 6}, {3, 5}, {4, 4},
	{5, 3}, {6, 2}, {7, 1}, {7, 2}, {6, 3}, {5, 4}, {4, 5}, {3, 6},
	{2, 7}, {3, 7}, {4, 6}, {5, 5}, {6, 4}, {7, 3}, {7, 4}, {6, 5},
	{5, 6}, {4, 7}, {5, 7}, {6, 6}, {7, 5}, {7, 6}, {6, 7}, {7, 7},
}

// dctKind classifies a level block for the transform's fast paths.
type dctKind uint8

const (
	dctZero dctKind = iota
	dctDC
	dctFull
)

// dctBlock holds one block's dequantized transform levels. The coef grid
// is indexed [x][y] and only meaningful for dctFull; dctDC carries just
// the DC level.
type dctBlock struct {
	kind dctKind
	dc   float32
	coef [8][8]float32
}

// inverseRLE expands one parsed block into dequantized levels. The DC
// level of an intra block is stored unquantized; AC levels dequantize as
// quant*(2|level|+1), less one when quant is even, clamped to +-2048.
func inverseRLE(blk *Block, quant uint8) dctBlock {
	var out dctBlock

	zigzag := 0
	if blk.HasDC {
		out.dc = float32(blk.IntraDC.Level())
		out.coef[0][0] = out.dc
		out.kind = dctDC
		zigzag++
	}

	parity := int16(0)
	if quant%2 == 0 {
		parity = -1
	}

	for _, tc := range blk.TCoef {
		zigzag += int(tc.Run)
		if zigzag >= len(dezigzag) {
			return out
		}

		level := tc.Level
		mag := level
		sign := int16(1)
		if level < 0 {
			mag = -level
			sign = -1
		}
		dq := sign * (int16(quant)*(2*mag+1) + parity)
		if dq < -2048 {
			dq = -2048
		} else if dq > 2047 {
			dq = 2047
		}

		pos := dezigzag[zigzag]
		out.coef[pos[0]][pos[1]] = float32(dq)
		zigzag++

		if pos[0] != 0 || pos[1] != 0 || !blk.HasDC {
			out.kind = dctFull
		}
	}

	return out
}
