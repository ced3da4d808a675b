/*
DESCRIPTION
  picturebuf.go provides the Picture type holding decoded 4:2:0 pixel
  data, and an allocation pool that recycles plane storage between
  pictures of the same dimensions.

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

// Picture is one decoded picture in 4:2:0 planar form. The luma plane is
// width x height; each chroma plane is half that extent in both axes,
// rounded up.
type Picture struct {
	header *PictureHeader

	width  int
	height int

	luma    []uint8
	chromaB []uint8
	chromaR []uint8
}

// chromaDim halves a luma plane dimension, rounding up.
func chromaDim(d int) int {
	return (d + 1) / 2
}

// newPicture allocates zeroed planes for the given luma dimensions.
func newPicture(width, height int) *Picture {
	cw, ch := chromaDim(width), chromaDim(height)
	return &Picture{
		width:   width,
		height:  height,
		luma:    make([]uint8, width*height),
		chromaB: make([]uint8, cw*ch),
		chromaR: make([]uint8, cw*ch),
	}
}

// Width returns the luma plane width in pixels.
func (p *Picture) Width() int { return p.width }

// Height returns the luma plane height in pixels.
func (p *Picture) Height() int { return p.height }

// Luma returns the luma plane in row-major order.
func (p *Picture) Luma() []uint8 { return p.luma }

// ChromaB returns the blue-difference chroma plane in row-major order.
func (p *Picture) ChromaB() []uint8 { return p.chromaB }

// ChromaR returns the red-difference chroma plane in row-major order.
func (p *Picture) ChromaR() []uint8 { return p.chromaR }

// LumaStride returns the luma plane row length in samples.
func (p *Picture) LumaStride() int { return p.width }

// ChromaStride returns the chroma plane row length in samples.
func (p *Picture) ChromaStride() int { return chromaDim(p.width) }

// Header returns the parsed picture layer header of this picture.
func (p *Picture) Header() *PictureHeader { return p.header }

// PictureType returns the coding type of this picture.
func (p *Picture) PictureType() PictureType { return p.header.PictureType }

// TemporalReference returns the temporal reference of this picture.
func (p *Picture) TemporalReference() uint16 { return p.header.TemporalReference }

// Clone returns a deep copy of the picture.
func (p *Picture) Clone() *Picture {
	c := &Picture{
		width:   p.width,
		height:  p.height,
		luma:    make([]uint8, len(p.luma)),
		chromaB: make([]uint8, len(p.chromaB)),
		chromaR: make([]uint8, len(p.chromaR)),
	}
	if p.header != nil {
		h := *p.header
		c.header = &h
	}
	copy(c.luma, p.luma)
	copy(c.chromaB, p.chromaB)
	copy(c.chromaR, p.chromaR)
	return c
}

// picturePool recycles plane storage between pictures of matching
// dimensions, avoiding a fresh allocation per decoded picture.
type picturePool struct {
	width, height int
	free          []*Picture
}

// get returns a zeroed picture of the given dimensions, reusing pooled
// storage where available. Changing dimensions empties the pool.
func (pp *picturePool) get(width, height int) *Picture {
	if pp.width != width || pp.height != height {
		pp.width, pp.height = width, height
		pp.free = pp.free[:0]
	}

	n := len(pp.free)
	if n == 0 {
		return newPicture(width, height)
	}

	p := pp.free[n-1]
	pp.free = pp.free[:n-1]
	p.header = nil
	for i := range p.luma {
		p.luma[i] = 0
	}
	for i := range p.chromaB {
		p.chromaB[i] = 0
	}
	for i := range p.chromaR {
		p.chromaR[i] = 0
	}
	return p
}

// put returns a picture to the pool. Pictures of stale dimensions are
// dropped.
func (pp *picturePool) put(p *Picture) {
	if p == nil || p.width != pp.width || p.height != pp.height {
		return
	}
	pp.free = append(pp.free, p)
}
