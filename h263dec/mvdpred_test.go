/*
DESCRIPTION
  mvdpred_test.go provides testing for motion vector candidate
  prediction and differential decode.

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

import "testing"

func TestPredictCandidate(t *testing.T) {
	tests := []struct {
		name       string
		predictors []MotionVector
		mbPerLine  int
		want       MotionVector
	}{
		{
			name:       "first macroblock",
			predictors: nil,
			mbPerLine:  3,
			want:       MotionVector{},
		},
		{
			name:       "first row uses left vector throughout",
			predictors: []MotionVector{{X: 4, Y: 2}},
			mbPerLine:  3,
			want:       MotionVector{X: 4, Y: 2},
		},
		{
			name:       "right edge zeroes above-right",
			predictors: []MotionVector{{X: 3, Y: 0}, {X: 6, Y: 3}},
			mbPerLine:  3,
			want:       MotionVector{X: 4, Y: 2},
		},
		{
			name: "left edge zeroes left",
			predictors: []MotionVector{
				{X: 3, Y: 3}, {X: 6, Y: 0}, {X: 9, Y: 9},
			},
			mbPerLine: 3,
			want:      MotionVector{X: 3, Y: 1},
		},
		{
			name: "interior averages left, above and above-right",
			predictors: []MotionVector{
				{X: 0, Y: 0}, {X: 6, Y: 3}, {X: 3, Y: 6},
				{X: 6, Y: 0},
			},
			mbPerLine: 3,
			want:      MotionVector{X: 5, Y: 3},
		},
		{
			name: "negative sums truncate toward zero",
			predictors: []MotionVector{
				{X: 0, Y: 0}, {X: -2, Y: -2}, {X: -1, Y: -1},
				{X: -1, Y: -1},
			},
			mbPerLine: 3,
			want:      MotionVector{X: -1, Y: -1},
		},
	}

	for _, test := range tests {
		got := predictCandidate(test.predictors, test.mbPerLine)
		if got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
	}
}

func TestHalfpelDecodeStandardRange(t *testing.T) {
	h := &PictureHeader{}

	// In range, the differential adds directly.
	if got := halfpelDecode(h, 0, 10, 5); got != 15 {
		t.Errorf("got %v, want 15", got)
	}

	// Out of range, the differential wraps by 32 pixels.
	if got := halfpelDecode(h, 0, 30, 10); got != -24 {
		t.Errorf("positive overflow: got %v, want -24", got)
	}
	if got := halfpelDecode(h, 0, -30, -10); got != 24 {
		t.Errorf("negative overflow: got %v, want 24", got)
	}
}

func TestHalfpelDecodeUnrestricted(t *testing.T) {
	h := &PictureHeader{}

	// An in-range predictor leaves the sum unconstrained.
	got := halfpelDecode(h, OptUnrestrictedMotionVectors, 30, 10)
	if got != 40 {
		t.Errorf("in-range predictor: got %v, want 40", got)
	}

	// An out-of-range predictor widens the window to 32 pixels, past
	// which the differential still wraps.
	got = halfpelDecode(h, OptUnrestrictedMotionVectors, 60, 10)
	if got != 6 {
		t.Errorf("out-of-range predictor: got %v, want 6", got)
	}
	got = halfpelDecode(h, OptUnrestrictedMotionVectors, 50, 10)
	if got != 60 {
		t.Errorf("within extended window: got %v, want 60", got)
	}
}

func TestHalfpelDecodeUnlimited(t *testing.T) {
	h := &PictureHeader{MotionVectorRange: RangeUnlimited}

	if got := halfpelDecode(h, 0, 100, 20); got != 120 {
		t.Errorf("got %v, want 120", got)
	}
}

func TestMVDecode(t *testing.T) {
	h := &PictureHeader{}
	got := mvDecode(h, 0, MotionVector{X: 4, Y: -2}, MotionVector{X: 1, Y: -3})
	want := MotionVector{X: 5, Y: -5}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestChromaFromFourVectors(t *testing.T) {
	tests := []struct {
		name string
		vs   [4]MotionVector
		want MotionVector
	}{
		{
			name: "zero",
			vs:   [4]MotionVector{},
			want: MotionVector{},
		},
		{
			// Four equal vectors reduce to the single-vector halving
			// rule: 2 half pixels becomes 1 chroma half pixel.
			name: "equal vectors halve",
			vs: [4]MotionVector{
				{X: 2, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 4},
			},
			want: MotionVector{X: 1, Y: 2},
		},
		{
			// A sum of 3 sixteenth pixels rounds up to a half pixel.
			name: "small remainder rounds to half",
			vs: [4]MotionVector{
				{X: 1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0},
			},
			want: MotionVector{X: 1, Y: 0},
		},
		{
			// A sum of 14 sixteenth pixels rounds to a full pixel.
			name: "large remainder rounds to full",
			vs: [4]MotionVector{
				{X: 0, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 3}, {X: 0, Y: 3},
			},
			want: MotionVector{X: 0, Y: 2},
		},
		{
			name: "negative sums round by magnitude",
			vs: [4]MotionVector{
				{X: -1, Y: -4}, {X: -1, Y: -4}, {X: -1, Y: -3}, {X: 0, Y: -3},
			},
			want: MotionVector{X: -1, Y: -2},
		},
	}

	for _, test := range tests {
		got := chromaFromFourVectors(test.vs)
		if got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
	}
}
