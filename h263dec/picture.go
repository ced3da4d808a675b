/*
DESCRIPTION
  picture.go provides parsing of the picture layer: start code recognition,
  the Sorenson Spark header variant, and the standard H.263 header with its
  PLUSPTYPE extensions.

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

// recognizeStartCode scans for the 17-bit picture/GOB start code
// 0000 0000 0000 0000 1 from the current position, tolerating up to one
// byte's worth of stuffing bits. It returns the number of bits to skip
// before the code, or ok=false if no code starts within the stuffing
// window. With resync set the scan instead continues to the end of the
// stream, for recovery inside corrupt data. The cursor is not advanced.
func recognizeStartCode(r *bits.Reader, resync bool) (skip uint, ok bool, err error) {
	err = r.LookAhead(func(r *bits.Reader) error {
		maxSkip := (8 - r.BitPosition()%8) % 8
		for {
			code, err := r.PeekBits(17)
			if err != nil {
				return exhausted(err)
			}
			if code == 1 {
				ok = true
				return nil
			}
			if !resync && skip >= maxSkip {
				return nil
			}
			if err := r.SkipBits(1); err != nil {
				return exhausted(err)
			}
			skip++
		}
	})
	return skip, ok, err
}

// parsePType decodes the first eight bits of PTYPE. A nil format in the
// result signals that a PLUSPTYPE record follows.
func parsePType(r *bits.Reader) (PictureOption, SourceFormat, PictureType, bool, error) {
	var options PictureOption

	high, err := r.ReadUint8()
	if err != nil {
		return 0, 0, 0, false, exhausted(err)
	}
	if high&0xc0 != 0x80 {
		return 0, 0, 0, false, errors.Wrap(ErrInvalidBitstream, "bad PTYPE marker bits")
	}

	if high&0x20 != 0 {
		options |= OptUseSplitScreen
	}
	if high&0x10 != 0 {
		options |= OptUseDocumentCamera
	}
	if high&0x08 != 0 {
		options |= OptReleaseFullPictureFreeze
	}

	var format SourceFormat
	switch high & 0x07 {
	case 0:
		return 0, 0, 0, false, errors.Wrap(ErrInvalidBitstream, "forbidden source format")
	case 1:
		format = FormatSubQCIF
	case 2:
		format = FormatQCIF
	case 3:
		format = FormatCIF
	case 4:
		format = Format4CIF
	case 5:
		format = Format16CIF
	case 6:
		format = FormatReserved
	default:
		// Extended PTYPE; the caller parses PLUSPTYPE next.
		return options, 0, 0, true, nil
	}

	low, err := r.ReadBits(5)
	if err != nil {
		return 0, 0, 0, false, exhausted(err)
	}

	typ := PictureTypeP
	if low&0x10 != 0 {
		typ = PictureTypeI
	}
	if low&0x08 != 0 {
		options |= OptUnrestrictedMotionVectors
	}
	if low&0x04 != 0 {
		options |= OptSyntaxBasedArithmeticCoding
	}
	if low&0x02 != 0 {
		options |= OptAdvancedPrediction
	}
	if low&0x01 != 0 {
		typ = PictureTypePB
	}

	return options, format, typ, false, nil
}

// plusPTypeFollower flags which records follow PLUSPTYPE when UFEP=001.
type plusPTypeFollower uint8

const (
	hasCustomFormat plusPTypeFollower = 1 << iota
	hasCustomClock
	hasMotionVectorRange
	hasSliceSubmode
	hasReferenceLayerNumber
	hasRPSMode
)

func (f plusPTypeFollower) contains(mask plusPTypeFollower) bool {
	return f&mask == mask
}

// opptypeOptions are the options borne by OPPTYPE; when a picture has no
// OPPTYPE they carry forward from the previous picture.
const opptypeOptions = OptUnrestrictedMotionVectors |
	OptSyntaxBasedArithmeticCoding |
	OptAdvancedPrediction |
	OptAdvancedIntraCoding |
	OptDeblockingFilter |
	OptSliceStructured |
	OptReferencePictureSelection |
	OptIndependentSegmentDecoding |
	OptAlternativeInterVLC |
	OptModifiedQuantization

// parsePlusPType decodes UFEP, OPPTYPE and MPPTYPE. prevOptions carries
// forward OPPTYPE-borne options when UFEP=000. hasFormat=false means the
// format is either inherited or custom, per the followers.
func parsePlusPType(r *bits.Reader, opts DecoderOption, prevOptions PictureOption) (options PictureOption, format SourceFormat, hasFormat bool, typ PictureType, followers plusPTypeFollower, hasOPPType bool, err error) {
	ufep, err := r.ReadBits(3)
	if err != nil {
		return 0, 0, false, 0, 0, false, exhausted(err)
	}
	switch ufep {
	case 0:
	case 1:
		hasOPPType = true
	default:
		return 0, 0, false, 0, 0, false, errors.Wrap(ErrInvalidBitstream, "bad UFEP")
	}

	if hasOPPType {
		opptype, err := r.ReadBits(18)
		if err != nil {
			return 0, 0, false, 0, 0, false, exhausted(err)
		}

		// OPPTYPE must end in bits 1000 (H.263 5.1.4.2).
		if opptype&0xf != 0x8 {
			return 0, 0, false, 0, 0, false, errors.Wrap(ErrInvalidBitstream, "bad OPPTYPE tail")
		}

		switch (opptype & 0x38000) >> 15 {
		case 0, 7:
			format, hasFormat = FormatReserved, true
		case 1:
			format, hasFormat = FormatSubQCIF, true
		case 2:
			format, hasFormat = FormatQCIF, true
		case 3:
			format, hasFormat = FormatCIF, true
		case 4:
			format, hasFormat = Format4CIF, true
		case 5:
			format, hasFormat = Format16CIF, true
		case 6:
			followers |= hasCustomFormat
		}

		if opptype&0x04000 != 0 {
			followers |= hasCustomClock
		}
		if opptype&0x02000 != 0 {
			options |= OptUnrestrictedMotionVectors
			followers |= hasMotionVectorRange
		}
		if opptype&0x01000 != 0 {
			options |= OptSyntaxBasedArithmeticCoding
		}
		if opptype&0x00800 != 0 {
			options |= OptAdvancedPrediction
		}
		if opptype&0x00400 != 0 {
			options |= OptAdvancedIntraCoding
		}
		if opptype&0x00200 != 0 {
			options |= OptDeblockingFilter
		}
		if opptype&0x00100 != 0 {
			options |= OptSliceStructured
			followers |= hasSliceSubmode
		}
		if opptype&0x00080 != 0 {
			options |= OptReferencePictureSelection
			followers |= hasRPSMode
		}
		if opptype&0x00040 != 0 {
			options |= OptIndependentSegmentDecoding
		}
		if opptype&0x00020 != 0 {
			options |= OptAlternativeInterVLC
		}
		if opptype&0x00010 != 0 {
			options |= OptModifiedQuantization
		}

		if opts.Contains(UseScalabilityMode) {
			followers |= hasReferenceLayerNumber
		}
	} else {
		options |= prevOptions & opptypeOptions
	}

	mpptype, err := r.ReadBits(9)
	if err != nil {
		return 0, 0, false, 0, 0, false, exhausted(err)
	}

	// MPPTYPE must end in bits 001 (H.263 5.1.4.3).
	if mpptype&0x7 != 0x1 {
		return 0, 0, false, 0, 0, false, errors.Wrap(ErrInvalidBitstream, "bad MPPTYPE tail")
	}

	switch (mpptype & 0x1c0) >> 6 {
	case 0:
		typ = PictureTypeI
	case 1:
		typ = PictureTypeP
	case 2:
		typ = PictureTypeImprovedPB
	case 3:
		typ = PictureTypeB
	case 4:
		typ = PictureTypeEI
	case 5:
		typ = PictureTypeEP
	default:
		typ = PictureTypeReserved
	}

	if mpptype&0x020 != 0 {
		options |= OptReferencePictureResampling
	}
	if mpptype&0x010 != 0 {
		options |= OptReducedResolutionUpdate
	}
	if mpptype&0x008 != 0 {
		options |= OptRoundingTypeOne
	}

	return options, format, hasFormat, typ, followers, hasOPPType, nil
}

// parseSorensonPType decodes Sorenson Spark's three-bit source format and
// two-bit picture type, filling dimensions for the explicit forms.
func parseSorensonPType(r *bits.Reader, h *PictureHeader) error {
	f, err := r.ReadBits(3)
	if err != nil {
		return exhausted(err)
	}

	var dimBits uint
	switch f {
	case 0:
		h.Format, dimBits = FormatCustom, 8
	case 1:
		h.Format, dimBits = FormatCustom, 16
	case 2:
		h.Format = FormatCIF
	case 3:
		h.Format = FormatQCIF
	case 4:
		h.Format = FormatSubQCIF
	case 5:
		h.Format, h.Width, h.Height = FormatCustom, 320, 240
	case 6:
		h.Format, h.Width, h.Height = FormatCustom, 160, 120
	default:
		h.Format = FormatReserved
	}

	if dimBits != 0 {
		w, err := r.ReadBits(dimBits)
		if err != nil {
			return exhausted(err)
		}
		hh, err := r.ReadBits(dimBits)
		if err != nil {
			return exhausted(err)
		}
		h.Width, h.Height = uint16(w), uint16(hh)
	}
	if w, hh, ok := h.Format.Dimensions(); ok {
		h.Width, h.Height = w, hh
	}

	t, err := r.ReadBits(2)
	if err != nil {
		return exhausted(err)
	}
	switch t {
	case 0:
		h.PictureType = PictureTypeI
	case 1:
		h.PictureType = PictureTypeP
	case 2:
		h.PictureType = PictureTypeDisposableP
	default:
		h.PictureType = PictureTypeReserved
	}

	h.Options |= OptUseDeblocker
	return nil
}

// parseCPMAndPSBI reads the CPM flag and, when set, the PSBI sub-bitstream
// number.
func parseCPMAndPSBI(r *bits.Reader) (bool, uint8, error) {
	cpm, err := r.ReadBool()
	if err != nil {
		return false, 0, exhausted(err)
	}
	if !cpm {
		return false, 0, nil
	}
	psbi, err := r.ReadBits(2)
	if err != nil {
		return false, 0, exhausted(err)
	}
	return true, uint8(psbi), nil
}

// parseCPFMT reads the custom picture format record into the header.
func parseCPFMT(r *bits.Reader, h *PictureHeader) error {
	cpfmt, err := r.ReadBits(23)
	if err != nil {
		return exhausted(err)
	}

	if cpfmt&0x000200 == 0 {
		return errors.Wrap(ErrInvalidBitstream, "missing CPFMT marker bit")
	}

	par := uint8((cpfmt & 0x780000) >> 19)
	switch par {
	case 0:
		return errors.Wrap(ErrInvalidBitstream, "forbidden pixel aspect ratio")
	case 15:
		parW, err := r.ReadUint8()
		if err != nil {
			return exhausted(err)
		}
		parH, err := r.ReadUint8()
		if err != nil {
			return exhausted(err)
		}
		if parW == 0 || parH == 0 {
			return errors.Wrap(ErrInvalidBitstream, "zero extended pixel aspect ratio")
		}
		h.PARWidth, h.PARHeight = parW, parH
	}
	h.PARCode = par

	h.Format = FormatCustom
	h.Width = (uint16((cpfmt&0x07fc00)>>10) + 1) * 4
	h.Height = uint16(cpfmt&0x0000ff) * 4
	return nil
}

// parseUUI reads the unlimited unrestricted motion vectors indicator.
func parseUUI(r *bits.Reader) (MotionVectorRange, error) {
	limited, err := r.ReadBool()
	if err != nil {
		return 0, exhausted(err)
	}
	if limited {
		return RangeStandard, nil
	}
	unlimited, err := r.ReadBool()
	if err != nil {
		return 0, exhausted(err)
	}
	if unlimited {
		return RangeUnlimited, nil
	}
	return 0, errors.Wrap(ErrInvalidBitstream, "bad UUI")
}

// parseTRPI reads the temporal reference for prediction, when indicated.
func parseTRPI(r *bits.Reader, h *PictureHeader) error {
	trpi, err := r.ReadBool()
	if err != nil {
		return exhausted(err)
	}
	if !trpi {
		return nil
	}
	trp, err := r.ReadBits(10)
	if err != nil {
		return exhausted(err)
	}
	h.HasTRP, h.TRP = true, uint16(trp)
	return nil
}

// parseBCM rejects backchannel messages; only the empty BCI form passes.
func parseBCM(r *bits.Reader) error {
	bci, err := r.ReadBool()
	if err != nil {
		return exhausted(err)
	}
	if bci {
		return errors.Wrap(ErrUnsupportedSyntax, "backchannel message")
	}
	notBCI, err := r.ReadBool()
	if err != nil {
		return exhausted(err)
	}
	if !notBCI {
		// BCI must be 1 or 01.
		return errors.Wrap(ErrInvalidBitstream, "bad BCI")
	}
	return nil
}

// parsePEI consumes PEI/PSUPP extension bytes.
func parsePEI(r *bits.Reader) ([]byte, error) {
	var data []byte
	for {
		pei, err := r.ReadBool()
		if err != nil {
			return nil, exhausted(err)
		}
		if !pei {
			return data, nil
		}
		b, err := r.ReadUint8()
		if err != nil {
			return nil, exhausted(err)
		}
		data = append(data, b)
	}
}

// parsePicture reads one picture header from the bitstream. A nil header
// with a nil error means the start code at the cursor is a GOB header and
// should be parsed as such. On error the cursor is restored to where it
// was on entry.
func parsePicture(r *bits.Reader, opts DecoderOption, prev *PictureHeader) (*PictureHeader, error) {
	var h *PictureHeader
	cp := r.Checkpoint()
	err := r.Transaction(func(r *bits.Reader) error {
		skip, ok, err := recognizeStartCode(r, false)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrap(ErrInvalidBitstream, "no start code at picture boundary")
		}
		if err := r.SkipBits(17 + skip); err != nil {
			return exhausted(err)
		}

		gobID, err := r.ReadBits(5)
		if err != nil {
			return exhausted(err)
		}

		if opts.Contains(SorensonSpark) {
			hdr := PictureHeader{
				// Sorenson abuses the GOB ID as a version field.
				Version:           uint8(gobID),
				MotionVectorRange: RangeUnlimited,
			}
			tr, err := r.ReadUint8()
			if err != nil {
				return exhausted(err)
			}
			hdr.TemporalReference = uint16(tr)
			if err := parseSorensonPType(r, &hdr); err != nil {
				return err
			}
			q, err := r.ReadBits(5)
			if err != nil {
				return exhausted(err)
			}
			hdr.Quantizer = uint8(q)
			if hdr.Extra, err = parsePEI(r); err != nil {
				return err
			}
			h = &hdr
			return nil
		}

		if gobID != 0 {
			// A GOB header; the caller takes over.
			return nil
		}

		var hdr PictureHeader

		lowTR, err := r.ReadUint8()
		if err != nil {
			return exhausted(err)
		}

		options, format, typ, plus, err := parsePType(r)
		if err != nil {
			return err
		}

		var (
			followers plusPTypeFollower
			hasFormat bool
			cpmParsed bool
		)
		if !plus {
			hasFormat = true
		} else {
			hdr.HasPlusType = true
			var prevOptions PictureOption
			if prev != nil {
				prevOptions = prev.Options
			}
			extra, f, hasF, t, fol, hasOPP, err := parsePlusPType(r, opts, prevOptions)
			if err != nil {
				return err
			}
			options |= extra
			format, hasFormat, typ, followers = f, hasF, t, fol
			hdr.HasOPPType = hasOPP

			if hdr.HasCPM, hdr.SubBitstream, err = parseCPMAndPSBI(r); err != nil {
				return err
			}
			cpmParsed = true
		}

		hdr.Options = options
		hdr.PictureType = typ
		if hasFormat {
			hdr.Format = format
			if w, hh, ok := format.Dimensions(); ok {
				hdr.Width, hdr.Height = w, hh
			}
		}

		if followers.contains(hasCustomFormat) {
			if err := parseCPFMT(r, &hdr); err != nil {
				return err
			}
		}

		if followers.contains(hasCustomClock) {
			cpcfc, err := r.ReadUint8()
			if err != nil {
				return exhausted(err)
			}
			hdr.HasCustomClock = true
			hdr.ClockTimes1001 = cpcfc&0x80 != 0
			hdr.ClockDivisor = cpcfc & 0x7f
		}

		hdr.TemporalReference = uint16(lowTR)
		if hdr.HasCustomClock {
			highTR, err := r.ReadBits(2)
			if err != nil {
				return exhausted(err)
			}
			hdr.TemporalReference |= uint16(highTR) << 8
		}

		if followers.contains(hasMotionVectorRange) {
			if hdr.MotionVectorRange, err = parseUUI(r); err != nil {
				return err
			}
		}

		if followers.contains(hasSliceSubmode) {
			sss, err := r.ReadBits(2)
			if err != nil {
				return exhausted(err)
			}
			hdr.SliceSubmode = uint8(sss)
		}

		if opts.Contains(UseScalabilityMode) {
			elnum, err := r.ReadBits(4)
			if err != nil {
				return exhausted(err)
			}
			hdr.EnhancementLayer = uint8(elnum)
			if followers.contains(hasReferenceLayerNumber) {
				rlnum, err := r.ReadBits(4)
				if err != nil {
					return exhausted(err)
				}
				hdr.ReferenceLayer = uint8(rlnum)
			}
		}

		if followers.contains(hasRPSMode) {
			rpsmf, err := r.ReadBits(3)
			if err != nil {
				return exhausted(err)
			}
			hdr.RPSMode = uint8(rpsmf)
		}

		if options.Contains(OptReferencePictureSelection) {
			if err := parseTRPI(r, &hdr); err != nil {
				return err
			}
			if err := parseBCM(r); err != nil {
				return err
			}
		}

		if options.Contains(OptReferencePictureResampling) ||
			(prev != nil && hasFormat && prev.Format != hdr.Format) {
			return errors.Wrap(ErrUnsupportedSyntax, "reference picture resampling")
		}

		q, err := r.ReadBits(5)
		if err != nil {
			return exhausted(err)
		}
		hdr.Quantizer = uint8(q)

		if !cpmParsed {
			if hdr.HasCPM, hdr.SubBitstream, err = parseCPMAndPSBI(r); err != nil {
				return err
			}
		}

		if typ == PictureTypePB || typ == PictureTypeImprovedPB {
			trbBits := uint(3)
			if hdr.HasCustomClock {
				trbBits = 5
			}
			trb, err := r.ReadBits(trbBits)
			if err != nil {
				return exhausted(err)
			}
			hdr.TRB = uint8(trb)
			dbq, err := r.ReadBits(2)
			if err != nil {
				return exhausted(err)
			}
			hdr.DBQuantizer = uint8(dbq)
		}

		if hdr.Extra, err = parsePEI(r); err != nil {
			return err
		}

		h = &hdr
		return nil
	})
	if err == nil && h == nil {
		// A GOB start code; leave it for the caller.
		r.Rollback(cp)
	}
	return h, err
}

// parseGOB reads a group-of-blocks header following its start code.
func parseGOB(r *bits.Reader, opts DecoderOption) (*GOBHeader, error) {
	var g GOBHeader
	err := r.Transaction(func(r *bits.Reader) error {
		skip, ok, err := recognizeStartCode(r, false)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrap(ErrInvalidBitstream, "no start code at GOB boundary")
		}
		if err := r.SkipBits(17 + skip); err != nil {
			return exhausted(err)
		}

		gn, err := r.ReadBits(5)
		if err != nil {
			return exhausted(err)
		}
		g.Number = uint8(gn)

		if opts.Contains(UseScalabilityMode) {
			// GSBI replaces the upper GN bits under CPM.
			sbi, err := r.ReadBits(2)
			if err != nil {
				return exhausted(err)
			}
			g.SubBitstream = uint8(sbi)
			fid, err := r.ReadBits(2)
			if err != nil {
				return exhausted(err)
			}
			g.FrameID = uint8(fid)
		}

		gq, err := r.ReadBits(5)
		if err != nil {
			return exhausted(err)
		}
		g.Quantizer = uint8(gq)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}
