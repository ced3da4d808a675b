/*
DESCRIPTION
  decoder_test.go provides end-to-end testing of picture decoding from
  synthetic Sorenson Spark bitstreams.

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

import (
	"testing"

	"github.com/pkg/errors"
)

// sorensonIntra16x16 is a 16x16 intra picture of one macroblock whose six
// blocks carry only the maximum INTRADC, decoding to a uniform mid-grey.
const sorensonIntra16x16 = "00000000 00000000 1" + // start code
	" 00001" + // version
	" 00000001" + // temporal reference
	" 000 00010000 00010000" + // custom 8-bit dimensions, 16x16
	" 00" + // intra
	" 00101" + // quantizer 5
	" 0" + // no extra information
	" 1 0011" + // intra macroblock, no coded blocks
	" 11111111 11111111 11111111 11111111 11111111 11111111" // INTRADC x6

// sorensonInterSkipped16x16 is a 16x16 inter picture whose single
// macroblock is not coded, copying through from the reference.
const sorensonInterSkipped16x16 = "00000000 00000000 1" +
	" 00001" +
	" 00000010" +
	" 000 00010000 00010000" +
	" 01" + // inter
	" 00101" +
	" 0" +
	" 1" // COD: macroblock not coded

func checkUniform(t *testing.T, pic *Picture, want uint8) {
	t.Helper()
	for i, v := range pic.Luma() {
		if v != want {
			t.Fatalf("luma[%d]: got %d, want %d", i, v, want)
		}
	}
	for i := range pic.ChromaB() {
		if pic.ChromaB()[i] != want || pic.ChromaR()[i] != want {
			t.Fatalf("chroma[%d]: got (%d,%d), want %d", i,
				pic.ChromaB()[i], pic.ChromaR()[i], want)
		}
	}
}

func TestDecodeIntraPicture(t *testing.T) {
	data, err := binToSlice(sorensonIntra16x16)
	if err != nil {
		t.Fatalf("could not create test data: %v", err)
	}

	d := NewDecoder(SorensonSpark)
	pic, err := d.DecodePicture(data)
	if err != nil {
		t.Fatalf("DecodePicture failed with error: %v", err)
	}

	if pic.Width() != 16 || pic.Height() != 16 {
		t.Fatalf("got %dx%d, want 16x16", pic.Width(), pic.Height())
	}
	if pic.PictureType() != PictureTypeI {
		t.Errorf("got picture type %v, want intra", pic.PictureType())
	}
	if pic.TemporalReference() != 1 {
		t.Errorf("got temporal reference %d, want 1", pic.TemporalReference())
	}
	checkUniform(t, pic, 128)
}

func TestDecodeSkippedInterPicture(t *testing.T) {
	intra, err := binToSlice(sorensonIntra16x16)
	if err != nil {
		t.Fatalf("could not create test data: %v", err)
	}
	inter, err := binToSlice(sorensonInterSkipped16x16)
	if err != nil {
		t.Fatalf("could not create test data: %v", err)
	}

	d := NewDecoder(SorensonSpark)
	if _, err := d.DecodePicture(intra); err != nil {
		t.Fatalf("intra picture failed with error: %v", err)
	}

	pic, err := d.DecodePicture(inter)
	if err != nil {
		t.Fatalf("inter picture failed with error: %v", err)
	}
	if pic.PictureType() != PictureTypeP {
		t.Errorf("got picture type %v, want inter", pic.PictureType())
	}
	checkUniform(t, pic, 128)
}

func TestDecodeDisposablePictureKeepsReference(t *testing.T) {
	intra, err := binToSlice(sorensonIntra16x16)
	if err != nil {
		t.Fatalf("could not create test data: %v", err)
	}
	disposable, err := binToSlice("00000000 00000000 1" +
		" 00001 00000011 000 00010000 00010000" +
		" 10" + // disposable inter
		" 00101 0 1")
	if err != nil {
		t.Fatalf("could not create test data: %v", err)
	}
	inter, err := binToSlice(sorensonInterSkipped16x16)
	if err != nil {
		t.Fatalf("could not create test data: %v", err)
	}

	d := NewDecoder(SorensonSpark)
	if _, err := d.DecodePicture(intra); err != nil {
		t.Fatalf("intra picture failed with error: %v", err)
	}

	pic, err := d.DecodePicture(disposable)
	if err != nil {
		t.Fatalf("disposable picture failed with error: %v", err)
	}
	if pic.PictureType() != PictureTypeDisposableP {
		t.Errorf("got picture type %v, want disposable inter", pic.PictureType())
	}
	checkUniform(t, pic, 128)

	// The disposable picture must not have displaced the intra picture
	// as the prediction reference.
	pic, err = d.DecodePicture(inter)
	if err != nil {
		t.Fatalf("inter picture failed with error: %v", err)
	}
	checkUniform(t, pic, 128)
}

func TestDecodeInterWithoutReference(t *testing.T) {
	// An inter picture with zero dimensions and no prior reference
	// picture has nothing to resolve its dimensions from.
	inter, err := binToSlice("00000000 00000000 1" +
		" 00001 00000001 000 00000000 00000000 01 00101 0 1")
	if err != nil {
		t.Fatalf("could not create test data: %v", err)
	}

	d := NewDecoder(SorensonSpark)
	_, err = d.DecodePicture(inter)
	if errors.Cause(err) != ErrMissingDimensions {
		t.Errorf("got error %v, want missing dimensions", err)
	}
}

func TestDecodeNotAPicture(t *testing.T) {
	d := NewDecoder(SorensonSpark)
	_, err := d.DecodePicture([]byte{0xff, 0xff, 0xff, 0xff})
	if errors.Cause(err) != ErrInvalidBitstream {
		t.Errorf("got error %v, want invalid bitstream", err)
	}
}

func TestDecodeTruncatedMacroblockData(t *testing.T) {
	// Header only; macroblock data runs out mid-read.
	data, err := binToSlice("00000000 00000000 1" +
		" 00001 00000001 000 00010000 00010000 00 00101 0")
	if err != nil {
		t.Fatalf("could not create test data: %v", err)
	}

	d := NewDecoder(SorensonSpark)
	_, err = d.DecodePicture(data)
	if errors.Cause(err) != ErrBitstreamExhausted {
		t.Errorf("got error %v, want bitstream exhausted", err)
	}

	// A failed picture must not poison the session; a complete picture
	// decodes as usual afterwards.
	intra, err := binToSlice(sorensonIntra16x16)
	if err != nil {
		t.Fatalf("could not create test data: %v", err)
	}
	pic, err := d.DecodePicture(intra)
	if err != nil {
		t.Fatalf("recovery picture failed with error: %v", err)
	}
	checkUniform(t, pic, 128)
}

func TestDecodeWithDeblocking(t *testing.T) {
	data, err := binToSlice(sorensonIntra16x16)
	if err != nil {
		t.Fatalf("could not create test data: %v", err)
	}

	// A uniform picture has no block edge discontinuities, so the
	// deblocking filter must leave it untouched.
	d := NewDecoder(SorensonSpark | EnableDeblocking)
	pic, err := d.DecodePicture(data)
	if err != nil {
		t.Fatalf("DecodePicture failed with error: %v", err)
	}
	checkUniform(t, pic, 128)
}

func TestDecodePictureSequenceReusesStorage(t *testing.T) {
	intra, err := binToSlice(sorensonIntra16x16)
	if err != nil {
		t.Fatalf("could not create test data: %v", err)
	}
	inter, err := binToSlice(sorensonInterSkipped16x16)
	if err != nil {
		t.Fatalf("could not create test data: %v", err)
	}

	d := NewDecoder(SorensonSpark)
	for i := 0; i < 4; i++ {
		var (
			pic *Picture
			err error
		)
		if i%2 == 0 {
			pic, err = d.DecodePicture(intra)
		} else {
			pic, err = d.DecodePicture(inter)
		}
		if err != nil {
			t.Fatalf("picture %d failed with error: %v", i, err)
		}
		checkUniform(t, pic, 128)
	}
}
