/*
DESCRIPTION
  yuv_test.go provides testing for BT.601 YUV 4:2:0 to RGBA conversion.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package yuv

import (
	"bytes"
	"image"
	"testing"
)

func TestToRGB(t *testing.T) {
	tests := []struct {
		name       string
		y, cb, cr  uint8
		r, g, b    uint8
	}{
		{name: "luma floor is black", y: 16, cb: 128, cr: 128, r: 0, g: 0, b: 0},
		{name: "luma ceiling is white", y: 235, cb: 128, cr: 128, r: 255, g: 255, b: 255},
		{name: "mid grey rounds down", y: 125, cb: 128, cr: 128, r: 127, g: 127, b: 127},
		{name: "mid grey rounds up", y: 126, cb: 128, cr: 128, r: 128, g: 128, b: 128},
		{name: "below floor clamps", y: 0, cb: 128, cr: 128, r: 0, g: 0, b: 0},
		{name: "above ceiling clamps", y: 255, cb: 128, cr: 128, r: 255, g: 255, b: 255},
		{name: "red", y: 81, cb: 90, cr: 240, r: 254, g: 0, b: 0},
		{name: "green", y: 145, cb: 54, cr: 34, r: 0, g: 255, b: 1},
		{name: "bright red clamps per channel", y: 125, cb: 90, cr: 240, r: 255, g: 51, b: 50},
	}

	for _, test := range tests {
		r, g, b := toRGB(test.y, test.cb, test.cr)
		if r != test.r || g != test.g || b != test.b {
			t.Errorf("%s: got (%d,%d,%d), want (%d,%d,%d)", test.name,
				r, g, b, test.r, test.g, test.b)
		}
	}
}

func TestYUV420ToRGBAEmpty(t *testing.T) {
	if got := YUV420ToRGBA(nil, nil, nil, 0, 0); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestYUV420ToRGBASinglePixel(t *testing.T) {
	got := YUV420ToRGBA([]byte{81}, []byte{90}, []byte{240}, 1, 1)
	want := []byte{254, 0, 0, 255}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestYUV420ToRGBASharedChroma(t *testing.T) {
	// Four luma samples share the one chroma sample.
	got := YUV420ToRGBA(
		[]byte{16, 235, 126, 125},
		[]byte{128}, []byte{128}, 2, 1,
	)
	want := []byte{
		0, 0, 0, 255, 255, 255, 255, 255,
		128, 128, 128, 255, 127, 127, 127, 255,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestYUV420ToRGBAOddWidth(t *testing.T) {
	// 3x2: the rightmost luma column uses the second chroma column, and
	// chroma samples are reused without interpolation.
	got := YUV420ToRGBA(
		[]byte{
			81, 81, 145,
			81, 81, 145,
		},
		[]byte{90, 54},
		[]byte{240, 34},
		3, 2,
	)
	want := []byte{
		254, 0, 0, 255, 254, 0, 0, 255, 0, 255, 1, 255,
		254, 0, 0, 255, 254, 0, 0, 255, 0, 255, 1, 255,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestYUV420ToRGBAOddHeight(t *testing.T) {
	// 1x3: the bottom luma row uses the second chroma row.
	got := YUV420ToRGBA(
		[]byte{81, 81, 145},
		[]byte{90, 54},
		[]byte{240, 34},
		1, 1,
	)
	want := []byte{
		254, 0, 0, 255,
		254, 0, 0, 255,
		0, 255, 1, 255,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestImage(t *testing.T) {
	y := make([]byte, 6*4)
	cb := make([]byte, 3*2)
	cr := make([]byte, 3*2)

	img := Image(y, cb, cr, 6, 3)
	if got, want := img.Rect, image.Rect(0, 0, 6, 4); got != want {
		t.Errorf("got bounds %v, want %v", got, want)
	}
	if img.YStride != 6 || img.CStride != 3 {
		t.Errorf("got strides (%d,%d), want (6,3)", img.YStride, img.CStride)
	}
	if img.SubsampleRatio != image.YCbCrSubsampleRatio420 {
		t.Errorf("got subsample ratio %v, want 4:2:0", img.SubsampleRatio)
	}
}

func TestImageEmpty(t *testing.T) {
	img := Image(nil, nil, nil, 0, 0)
	if !img.Rect.Empty() {
		t.Errorf("got bounds %v, want empty", img.Rect)
	}
}
