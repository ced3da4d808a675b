/*
DESCRIPTION
  macroblock.go provides parsing of the macroblock layer: COD, MCBPC, MODB,
  CBPY, DQUANT and the motion vector differentials, including the
  unrestricted motion vector form.

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
	"github.com/pkg/errors"

	"github.com/ausocean/h263/h263dec/bits"
)

// readUMV reads one unrestricted motion vector component
// (H.263 Table D.3): a leading 1 is zero, otherwise pairs of bits extend
// a mantissa until a 00 (positive) or 10 (negative) terminator.
func readUMV(r *bits.Reader) (HalfPel, error) {
	start, err := r.ReadBool()
	if err != nil {
		return 0, exhausted(err)
	}
	if start {
		return halfPelFromUnits(0), nil
	}

	var mantissa int16
	bulk := int16(1)
	for bulk < 4096 {
		pair, err := r.ReadBits(2)
		if err != nil {
			return 0, exhausted(err)
		}
		switch pair {
		case 0b00:
			return halfPelFromUnits(mantissa + bulk), nil
		case 0b10:
			return halfPelFromUnits(-(mantissa + bulk)), nil
		case 0b01:
			mantissa <<= 1
			bulk <<= 1
		case 0b11:
			mantissa = mantissa<<1 | 1
			bulk <<= 1
		}
	}
	return 0, errors.Wrap(ErrInvalidBitstream, "unrestricted motion vector out of range")
}

// parseMVD reads one motion vector differential, choosing the
// unrestricted form when the picture signals it via PLUSPTYPE.
func parseMVD(r *bits.Reader, h *PictureHeader, running PictureOption) (MotionVector, error) {
	if running.Contains(OptUnrestrictedMotionVectors) && h.HasPlusType {
		x, err := readUMV(r)
		if err != nil {
			return MotionVector{}, err
		}
		y, err := readUMV(r)
		if err != nil {
			return MotionVector{}, err
		}
		return MotionVector{x, y}, nil
	}

	x, err := readVLC(r, mvdTable)
	if err != nil {
		return MotionVector{}, err
	}
	if x.invalid {
		return MotionVector{}, errors.Wrap(ErrInvalidBitstream, "forbidden MVD code")
	}
	y, err := readVLC(r, mvdTable)
	if err != nil {
		return MotionVector{}, err
	}
	if y.invalid {
		return MotionVector{}, errors.Wrap(ErrInvalidBitstream, "forbidden MVD code")
	}
	return MotionVector{x.v, y.v}, nil
}

// parseDQuant reads the two-bit quantizer delta.
func parseDQuant(r *bits.Reader) (int8, error) {
	v, err := r.ReadBits(2)
	if err != nil {
		return 0, exhausted(err)
	}
	switch v {
	case 0:
		return -1, nil
	case 1:
		return -2, nil
	case 2:
		return 1, nil
	default:
		return 2, nil
	}
}

// parseCBPB reads the six-bit coded block pattern of a PB-frame's B
// blocks.
func parseCBPB(r *bits.Reader) (CodedBlockPattern, error) {
	var p CodedBlockPattern
	v, err := r.ReadBits(6)
	if err != nil {
		return p, exhausted(err)
	}
	for i := range p.Luma {
		p.Luma[i] = v&(1<<(5-uint(i))) != 0
	}
	p.ChromaB = v&0x2 != 0
	p.ChromaR = v&0x1 != 0
	return p, nil
}

// parseMacroblock reads one macroblock header. running is the option set
// currently in force, which may include options carried forward from
// earlier pictures. On error the cursor is restored to where it was on
// entry.
func parseMacroblock(r *bits.Reader, h *PictureHeader, running PictureOption) (Macroblock, error) {
	var mb Macroblock
	err := r.Transaction(func(r *bits.Reader) error {
		coded := true
		if h.PictureType != PictureTypeI {
			cod, err := r.ReadBool()
			if err != nil {
				return exhausted(err)
			}
			coded = !cod
		}
		if !coded {
			return nil
		}

		var (
			mcbpc mcbpcEntry
			err   error
		)
		switch h.PictureType {
		case PictureTypeI:
			mcbpc, err = readVLC(r, mcbpcITable)
		case PictureTypeP, PictureTypeDisposableP:
			mcbpc, err = readVLC(r, mcbpcPTable)
		default:
			return errors.Wrapf(ErrUnsupportedSyntax, "macroblocks in %v picture", h.PictureType)
		}
		if err != nil {
			return err
		}
		if mcbpc.invalid {
			return errors.Wrap(ErrInvalidBitstream, "forbidden MCBPC code")
		}
		if mcbpc.stuffing {
			mb = Macroblock{Type: MBStuffing}
			return nil
		}

		mb = Macroblock{Coded: true, Type: mcbpc.typ}
		mb.Pattern.ChromaB = mcbpc.chromaB
		mb.Pattern.ChromaR = mcbpc.chromaR

		var hasCBPB, hasMVDB bool
		if h.PictureType == PictureTypePB {
			modb, err := readVLC(r, modbTable)
			if err != nil {
				return err
			}
			hasCBPB, hasMVDB = modb.hasCBPB, modb.hasMVDB
		}

		cbpy, err := readVLC(r, cbpyTableIntra)
		if err != nil {
			return err
		}
		if cbpy.invalid {
			return errors.Wrap(ErrInvalidBitstream, "forbidden CBPY code")
		}
		mb.Pattern.Luma = cbpy.luma
		if !mb.Type.Intra() {
			for i, v := range mb.Pattern.Luma {
				mb.Pattern.Luma[i] = !v
			}
		}

		if hasCBPB {
			mb.CodedB = true
			// The B block pattern is unused by forward prediction but
			// must be consumed.
			if _, err := parseCBPB(r); err != nil {
				return err
			}
		}

		if running.Contains(OptModifiedQuantization) {
			return errors.Wrap(ErrUnsupportedSyntax, "modified quantization")
		}
		if mb.Type.HasQuantizer() {
			if mb.DQuant, err = parseDQuant(r); err != nil {
				return err
			}
		}

		if !mb.Type.Intra() || h.PictureType == PictureTypePB || h.PictureType == PictureTypeImprovedPB {
			if mb.MV[0], err = parseMVD(r, h, running); err != nil {
				return err
			}
		}

		if running.Contains(OptAdvancedPrediction) && mb.Type.HasFourVectors() {
			for i := 1; i < 4; i++ {
				if mb.MV[i], err = parseMVD(r, h, running); err != nil {
					return err
				}
			}
		}

		if hasMVDB {
			// A single B vector set; only the first is retained.
			if mb.MVB, err = parseMVD(r, h, running); err != nil {
				return err
			}
			for i := 0; i < 3; i++ {
				if _, err := parseMVD(r, h, running); err != nil {
					return err
				}
			}
		}

		return nil
	})
	return mb, err
}
