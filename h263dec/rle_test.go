/*
DESCRIPTION
  rle_test.go provides testing for inverse run-length expansion and
  dequantization of block coefficient data.

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

func TestInverseRLEDCOnly(t *testing.T) {
	blk := Block{IntraDC: IntraDC(255), HasDC: true}
	out := inverseRLE(&blk, 10)

	if out.kind != dctDC {
		t.Fatalf("got kind %v, want DC-only", out.kind)
	}
	if out.dc != 1024 || out.coef[0][0] != 1024 {
		t.Errorf("got dc %v coef %v, want 1024", out.dc, out.coef[0][0])
	}
}

func TestInverseRLEDequantOddQuant(t *testing.T) {
	// Run 2 places the level at zigzag index 2, position (0, 1).
	blk := Block{TCoef: []TCoefficient{{Run: 2, Level: 3}}}
	out := inverseRLE(&blk, 5)

	if out.kind != dctFull {
		t.Fatalf("got kind %v, want full", out.kind)
	}
	if got := out.coef[0][1]; got != 35 {
		t.Errorf("got level %v, want 35", got)
	}
}

func TestInverseRLEDequantEvenQuant(t *testing.T) {
	blk := Block{TCoef: []TCoefficient{{Run: 0, Level: -3}}}
	out := inverseRLE(&blk, 4)

	// 4*(2*3+1) lowered by the even-quant parity, negated.
	if got := out.coef[1][0]; got != -27 {
		t.Errorf("got level %v, want -27", got)
	}
}

func TestInverseRLEClamp(t *testing.T) {
	blk := Block{TCoef: []TCoefficient{{Run: 0, Level: 127}, {Run: 0, Level: -128}}}
	out := inverseRLE(&blk, 31)

	if got := out.coef[1][0]; got != 2047 {
		t.Errorf("got level %v, want clamp to 2047", got)
	}
	if got := out.coef[0][1]; got != -2048 {
		t.Errorf("got level %v, want clamp to -2048", got)
	}
}

func TestInverseRLERunPastBlockEnd(t *testing.T) {
	blk := Block{TCoef: []TCoefficient{{Run: 70, Level: 1}}}
	out := inverseRLE(&blk, 5)

	if out.kind != dctZero {
		t.Errorf("got kind %v, want zero block for overrunning scan", out.kind)
	}
}

func TestInverseRLEDCWithACIsFull(t *testing.T) {
	blk := Block{
		IntraDC: IntraDC(100),
		HasDC:   true,
		TCoef:   []TCoefficient{{Run: 0, Level: 1}},
	}
	out := inverseRLE(&blk, 5)

	if out.kind != dctFull {
		t.Fatalf("got kind %v, want full", out.kind)
	}
	if out.coef[0][0] != 800 {
		t.Errorf("got DC %v, want 800", out.coef[0][0])
	}
	// The AC level lands after the DC in zigzag order.
	if out.coef[1][0] != 15 {
		t.Errorf("got AC level %v, want 15", out.coef[1][0])
	}
}

func TestInverseRLEEmptyBlockAllQuantizers(t *testing.T) {
	// A block with no levels contributes nothing, whatever the
	// quantizer in force.
	for quant := uint8(0); quant < 32; quant++ {
		var blk Block
		out := inverseRLE(&blk, quant)
		if out.kind != dctZero {
			t.Fatalf("quantizer %d: got kind %v, want zero", quant, out.kind)
		}
	}
}
