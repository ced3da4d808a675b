/*
DESCRIPTION
  deblock_test.go provides testing for the block edge postprocess
  filter.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2025 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package deblock

import (
	"bytes"
	"testing"
)

func TestStrength(t *testing.T) {
	tests := []struct{ quant, want uint8 }{
		{1, 1},
		{2, 1},
		{5, 3},
		{8, 4},
		{16, 7},
		{31, 12},
	}
	for _, test := range tests {
		if got := Strength(test.quant); got != test.want {
			t.Errorf("quantizer %d: got strength %d, want %d", test.quant, got, test.want)
		}
	}
}

func TestUpDownRamp(t *testing.T) {
	tests := []struct{ x, strength, want int16 }{
		{0, 6, 0},
		{3, 6, 3},
		{6, 6, 6},
		{7, 6, 5},
		{11, 6, 1},
		{12, 6, 0},
		{100, 6, 0},
		{-3, 6, -3},
		{-7, 6, -5},
		{-12, 6, 0},
	}
	for _, test := range tests {
		if got := upDownRamp(test.x, test.strength); got != test.want {
			t.Errorf("ramp(%d,%d): got %d, want %d", test.x, test.strength, got, test.want)
		}
	}
}

func TestFilterEdge(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d uint8
		strength   uint8
		wa, wb, wc, wd uint8
	}{
		{
			name: "flat quartet unchanged",
			a:    90, b: 90, c: 90, d: 90, strength: 12,
			wa: 90, wb: 90, wc: 90, wd: 90,
		},
		{
			name: "small step smoothed",
			a:    100, b: 100, c: 120, d: 120, strength: 6,
			wa: 102, wb: 105, wc: 115, wd: 118,
		},
		{
			name: "small step downward smoothed",
			a:    120, b: 120, c: 100, d: 100, strength: 6,
			wa: 118, wb: 115, wc: 105, wd: 102,
		},
		{
			name: "strong true edge passes",
			a:    0, b: 0, c: 200, d: 200, strength: 3,
			wa: 0, wb: 0, wc: 200, wd: 200,
		},
	}

	for _, test := range tests {
		a, b, c, d := test.a, test.b, test.c, test.d
		filterEdge(&a, &b, &c, &d, test.strength)
		if a != test.wa || b != test.wb || c != test.wc || d != test.wd {
			t.Errorf("%s: got (%d,%d,%d,%d), want (%d,%d,%d,%d)", test.name,
				a, b, c, d, test.wa, test.wb, test.wc, test.wd)
		}
	}
}

// fillPlane builds a width x height plane whose sample values come from f.
func fillPlane(width, height int, f func(x, y int) uint8) []byte {
	p := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p[x+y*width] = f(x, y)
		}
	}
	return p
}

func TestPlaneUniformUnchanged(t *testing.T) {
	plane := fillPlane(16, 16, func(x, y int) uint8 { return 77 })
	want := append([]byte(nil), plane...)

	Plane(plane, 16, 12)
	if !bytes.Equal(plane, want) {
		t.Error("uniform plane was altered")
	}
}

func TestPlaneHorizontalEdge(t *testing.T) {
	// 8 wide: too narrow for vertical filtering, so only the horizontal
	// edge between rows 7 and 8 is touched.
	plane := fillPlane(8, 16, func(x, y int) uint8 {
		if y < 8 {
			return 100
		}
		return 120
	})

	Plane(plane, 8, 6)

	wantRow := map[int]uint8{6: 102, 7: 105, 8: 115, 9: 118}
	for y := 0; y < 16; y++ {
		want := uint8(100)
		if y >= 8 {
			want = 120
		}
		if w, ok := wantRow[y]; ok {
			want = w
		}
		for x := 0; x < 8; x++ {
			if got := plane[x+y*8]; got != want {
				t.Fatalf("(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestPlaneVerticalEdge(t *testing.T) {
	// 4 tall: too short for horizontal filtering, so only the vertical
	// edge between columns 7 and 8 is touched.
	plane := fillPlane(16, 4, func(x, y int) uint8 {
		if x < 8 {
			return 100
		}
		return 120
	})

	Plane(plane, 16, 6)

	wantCol := map[int]uint8{6: 102, 7: 105, 8: 115, 9: 118}
	for y := 0; y < 4; y++ {
		for x := 0; x < 16; x++ {
			want := uint8(100)
			if x >= 8 {
				want = 120
			}
			if w, ok := wantCol[x]; ok {
				want = w
			}
			if got := plane[x+y*16]; got != want {
				t.Fatalf("(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDeblockLeavesInputIntact(t *testing.T) {
	plane := fillPlane(8, 16, func(x, y int) uint8 {
		if y < 8 {
			return 100
		}
		return 120
	})
	orig := append([]byte(nil), plane...)

	out := Deblock(plane, 8, 6)
	if !bytes.Equal(plane, orig) {
		t.Error("input plane was altered")
	}
	if bytes.Equal(out, orig) {
		t.Error("output plane was not filtered")
	}
}
