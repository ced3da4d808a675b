/*
DESCRIPTION
  Package yuv converts BT.601 reduced-range planar YUV 4:2:0 pixel data
  to RGBA, using 16.16 fixed-point arithmetic.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package yuv converts planar YUV 4:2:0 image data in BT.601 reduced
// range (luma 16..235, chroma 16..240) to full-range interleaved RGBA.
package yuv

import "image"

// BT.601 coefficients in 16.16 fixed point, folded together with the
// reduced-range to full-range expansion.
const (
	coefGray = 76309  // round((255/219) * 65536)
	coefR2R  = 104597 // round((255/224) * 1.402 * 65536)
	coefR2G  = -53279 // round(-(255/224) * 1.402 * (0.299/0.587) * 65536)
	coefB2G  = -25675 // round(-(255/224) * 1.772 * (0.114/0.587) * 65536)
	coefB2B  = 132201 // round((255/224) * 1.772 * 65536)

	// half is 0.5 in 16.16 form, making the final shift round.
	half = 32768
)

func clamp255(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// toRGB converts a single YCbCr triple to full-range RGB.
func toRGB(y, cb, cr uint8) (uint8, uint8, uint8) {
	y32 := int32(y) - 16
	cb32 := int32(cb) - 128
	cr32 := int32(cr) - 128

	gray := y32 * coefGray
	r := (gray + cr32*coefR2R + half) >> 16
	g := (gray + cr32*coefR2G + cb32*coefB2G + half) >> 16
	b := (gray + cb32*coefB2B + half) >> 16

	return clamp255(r), clamp255(g), clamp255(b)
}

// YUV420ToRGBA converts planar YUV 4:2:0 data to interleaved RGBA 8888.
//
// The result has one RGBA pixel per luma sample. Each chroma sample is
// reused without interpolation for its four corresponding pixels, which
// is what Flash Player does. brWidth must be half of yWidth rounded up,
// and the chroma planes half the luma plane height rounded up; len(y)
// must be a multiple of yWidth.
func YUV420ToRGBA(y, chromaB, chromaR []byte, yWidth, brWidth int) []byte {
	if len(y) == 0 {
		return nil
	}

	yHeight := len(y) / yWidth
	rgba := make([]byte, len(y)*4)
	stride := yWidth * 4

	for row := 0; row < yHeight; row++ {
		yRow := y[row*yWidth : (row+1)*yWidth]
		cbRow := chromaB[(row/2)*brWidth : (row/2+1)*brWidth]
		crRow := chromaR[(row/2)*brWidth : (row/2+1)*brWidth]
		out := rgba[row*stride : (row+1)*stride]

		for x := 0; x < yWidth; x++ {
			r, g, b := toRGB(yRow[x], cbRow[x/2], crRow[x/2])
			out[x*4] = r
			out[x*4+1] = g
			out[x*4+2] = b
			out[x*4+3] = 255
		}
	}

	return rgba
}

// Image wraps planar YUV 4:2:0 data as an image.YCbCr without copying.
// The planes must follow the layout described for YUV420ToRGBA.
func Image(y, chromaB, chromaR []byte, yWidth, brWidth int) *image.YCbCr {
	if yWidth == 0 {
		return &image.YCbCr{SubsampleRatio: image.YCbCrSubsampleRatio420}
	}
	height := len(y) / yWidth
	return &image.YCbCr{
		Y:              y,
		Cb:             chromaB,
		Cr:             chromaR,
		YStride:        yWidth,
		CStride:        brWidth,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, yWidth, height),
	}
}
