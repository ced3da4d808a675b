/*
DESCRIPTION
  scatter.go places a macroblock's predicted pixel data into the picture
  planes under construction, clipping at the right and bottom plane edges.

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

// scatterBlock writes an 8x8 block into a plane at (posX, posY), dropping
// samples that fall outside the plane extent.
func scatterBlock(plane []byte, stride int, posX, posY int, block *[64]uint8) {
	for j := 0; j < 8; j++ {
		y := posY + j
		for i := 0; i < 8; i++ {
			x := posX + i
			if x >= stride {
				continue
			}
			idx := x + y*stride
			if idx >= len(plane) {
				continue
			}
			plane[idx] = block[i+j*8]
		}
	}
}

// scatter places a macroblock's pixel data into the picture at luma
// position (posX, posY).
func scatter(pic *Picture, posX, posY int, pmb *pixelMacroblock) {
	lumaStride := pic.LumaStride()
	scatterBlock(pic.Luma(), lumaStride, posX, posY, &pmb.luma[0])
	scatterBlock(pic.Luma(), lumaStride, posX+8, posY, &pmb.luma[1])
	scatterBlock(pic.Luma(), lumaStride, posX, posY+8, &pmb.luma[2])
	scatterBlock(pic.Luma(), lumaStride, posX+8, posY+8, &pmb.luma[3])

	chromaStride := pic.ChromaStride()
	scatterBlock(pic.ChromaB(), chromaStride, posX/2, posY/2, &pmb.chromaB)
	scatterBlock(pic.ChromaR(), chromaStride, posX/2, posY/2, &pmb.chromaR)
}
