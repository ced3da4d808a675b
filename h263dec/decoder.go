/*
DESCRIPTION
  decoder.go provides the Decoder type: picture-at-a-time decoding of an
  H.263 or Sorenson Spark bitstream into YUV 4:2:0 pictures, carrying
  reference pictures and in-force picture options across calls.

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

	"github.com/ausocean/h263/deblock"
	"github.com/ausocean/h263/h263dec/bits"
)

// DecoderOption is a bit-set of externally-supplied decoding switches:
// properties of the bitstream that cannot be determined by parsing it.
type DecoderOption uint8

const (
	// SorensonSpark selects the Sorenson Spark flavour of H.263 used in
	// Flash video, which replaces the standard picture header.
	SorensonSpark DecoderOption = 1 << iota

	// UseScalabilityMode indicates that the continuous presence
	// multipoint (CPM) fields are present in picture and GOB headers.
	UseScalabilityMode

	// EnableDeblocking runs the deblocking postprocess filter over
	// returned pictures when the bitstream requests it. The filter is
	// applied out of loop; reference pictures are unaffected.
	EnableDeblocking
)

// Contains reports whether all options in mask are set.
func (o DecoderOption) Contains(mask DecoderOption) bool {
	return o&mask == mask
}

// mpptypeOptions are the options borne by MPPTYPE. Alongside the OPPTYPE
// options they persist from the previous picture when a picture header
// has no PLUSPTYPE at all.
const mpptypeOptions = OptReferencePictureResampling |
	OptReducedResolutionUpdate |
	OptRoundingTypeOne

// Decoder decodes a series of pictures from a single H.263 bitstream.
// Pictures must be presented in bitstream order. A Decoder is not safe
// for concurrent use; decode each stream on its own Decoder.
type Decoder struct {
	opts DecoderOption

	// running is the option set in force as of the last decoded picture.
	running PictureOption

	// reference is the picture that inter macroblocks predict from.
	reference *Picture

	// retired holds pictures whose validity window has passed; they are
	// recycled at the start of the next decode.
	retired []*Picture

	pool picturePool
}

// NewDecoder returns a Decoder applying the given options.
func NewDecoder(opts DecoderOption) *Decoder {
	return &Decoder{opts: opts}
}

// DecodePicture decodes one picture from data, which must start at an
// optionally byte-aligned picture start code. The returned picture
// remains valid until the next call to DecodePicture. On error the
// decoder's reference state is unchanged, so decoding may resume at the
// next intact picture in the stream.
func (d *Decoder) DecodePicture(data []byte) (*Picture, error) {
	for _, p := range d.retired {
		d.pool.put(p)
	}
	d.retired = d.retired[:0]

	r := bits.NewReader(data)

	var prev *PictureHeader
	if d.reference != nil {
		prev = d.reference.header
	}

	h, err := parsePicture(r, d.opts, prev)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse picture header")
	}
	if h == nil {
		return nil, errors.Wrap(ErrInvalidBitstream, "expected picture start code")
	}

	running := d.nextRunningOptions(h)

	width, height := int(h.Width), int(h.Height)
	if width == 0 || height == 0 {
		if h.PictureType == PictureTypeI || d.reference == nil {
			return nil, errors.Wrap(ErrMissingDimensions, "picture has no resolvable dimensions")
		}
		width, height = d.reference.width, d.reference.height
	}

	pic := d.pool.get(width, height)
	pic.header = h

	if err := d.decodeInner(r, pic, running); err != nil {
		d.pool.put(pic)
		return nil, err
	}

	if h.PictureType == PictureTypeI {
		// Prediction never crosses an intra picture.
		if d.reference != nil {
			d.retired = append(d.retired, d.reference)
			d.reference = nil
		}
	}

	if h.PictureType.Disposable() {
		d.retired = append(d.retired, pic)
	} else {
		if d.reference != nil {
			d.retired = append(d.retired, d.reference)
		}
		d.reference = pic
	}
	d.running = running

	out := pic
	if d.opts.Contains(EnableDeblocking) && running.Contains(OptUseDeblocker) {
		out = d.deblocked(pic)
	}
	return out, nil
}

// nextRunningOptions merges a picture's stated options with those carried
// forward from earlier pictures. A full OPPTYPE restates everything; a
// PLUSPTYPE without one inherits the OPPTYPE options; a plain PTYPE also
// inherits the MPPTYPE options.
func (d *Decoder) nextRunningOptions(h *PictureHeader) PictureOption {
	switch {
	case h.HasPlusType && h.HasOPPType:
		return h.Options
	case h.HasPlusType:
		return (h.Options &^ opptypeOptions) | (d.running & opptypeOptions)
	default:
		return (h.Options &^ (opptypeOptions | mpptypeOptions)) |
			(d.running & (opptypeOptions | mpptypeOptions))
	}
}

// decodeInner reconstructs the picture's macroblocks in raster order:
// parse, dequantize, motion-compensate from the reference, and finally
// transform each plane back to the spatial domain.
func (d *Decoder) decodeInner(r *bits.Reader, pic *Picture, running PictureOption) error {
	h := pic.header
	mbWide := (pic.width + 15) / 16
	mbHigh := (pic.height + 15) / 16
	total := mbWide * mbHigh

	lumaBPL := mbWide * 2
	lumaBlocks := make([]dctBlock, lumaBPL*mbHigh*2)
	chromaBBlocks := make([]dctBlock, mbWide*mbHigh)
	chromaRBlocks := make([]dctBlock, mbWide*mbHigh)

	quant := int16(h.Quantizer)
	predictors := make([]MotionVector, 0, total)

	for idx := 0; idx < total; {
		mb, err := parseMacroblock(r, h, running)
		if err != nil {
			if errors.Cause(err) != ErrInvalidBitstream {
				return err
			}

			// A macroblock did not decode; a GOB header may sit here
			// instead. Group numbers 0 and 31 belong to picture and
			// end-of-sequence codes, which end this picture.
			cp := r.Checkpoint()
			g, gerr := parseGOB(r, d.opts)
			if gerr != nil || g.Number == 0 || g.Number == 31 {
				r.Rollback(cp)
				break
			}
			logger.Printf("resynchronised at GOB %d", g.Number)
			quant = int16(g.Quantizer)
			predictors = predictors[:0]
			continue
		}

		if mb.Type == MBStuffing {
			continue
		}

		mbX, mbY := idx%mbWide, idx/mbWide
		posX, posY := mbX*16, mbY*16

		if !mb.Coded {
			if h.PictureType == PictureTypeI {
				return errors.Wrap(ErrInvalidBitstream, "uncoded macroblock in I picture")
			}
			// A skipped macroblock copies through from the reference.
			predictors = append(predictors, MotionVector{})
			pmb := gather(MBInter, d.reference, posX, posY, [4]MotionVector{})
			scatter(pic, posX, posY, &pmb)
			idx++
			continue
		}

		quant = clampQuantizer(quant + int16(mb.DQuant))

		var mvs [4]MotionVector
		if !mb.Type.Intra() {
			pred := predictCandidate(predictors, mbWide)
			mvs[0] = mvDecode(h, running, pred, mb.MV[0])
			if running.Contains(OptAdvancedPrediction) && mb.Type.HasFourVectors() {
				for i := 1; i < 4; i++ {
					mvs[i] = mvDecode(h, running, pred, mb.MV[i])
				}
			} else {
				mvs[1], mvs[2], mvs[3] = mvs[0], mvs[0], mvs[0]
			}
		}
		predictors = append(predictors, mvs[0])

		pmb := gather(mb.Type, d.reference, posX, posY, mvs)
		scatter(pic, posX, posY, &pmb)

		for b := 0; b < 4; b++ {
			blk, err := parseBlock(r, running, mb.Type, mb.Pattern.Luma[b])
			if err != nil {
				return err
			}
			bx, by := mbX*2+b%2, mbY*2+b/2
			lumaBlocks[bx+by*lumaBPL] = inverseRLE(&blk, uint8(quant))
		}
		blk, err := parseBlock(r, running, mb.Type, mb.Pattern.ChromaB)
		if err != nil {
			return err
		}
		chromaBBlocks[mbX+mbY*mbWide] = inverseRLE(&blk, uint8(quant))
		blk, err = parseBlock(r, running, mb.Type, mb.Pattern.ChromaR)
		if err != nil {
			return err
		}
		chromaRBlocks[mbX+mbY*mbWide] = inverseRLE(&blk, uint8(quant))

		idx++
	}

	idctChannel(lumaBlocks, pic.luma, lumaBPL, pic.LumaStride())
	idctChannel(chromaBBlocks, pic.chromaB, mbWide, pic.ChromaStride())
	idctChannel(chromaRBlocks, pic.chromaR, mbWide, pic.ChromaStride())

	return nil
}

// clampQuantizer bounds an accumulated quantizer to the legal 1..31.
func clampQuantizer(q int16) int16 {
	if q < 1 {
		return 1
	}
	if q > 31 {
		return 31
	}
	return q
}

// deblocked returns a filtered display copy of pic, leaving pic itself
// untouched for use as a reference.
func (d *Decoder) deblocked(pic *Picture) *Picture {
	out := d.pool.get(pic.width, pic.height)
	hdr := *pic.header
	out.header = &hdr
	copy(out.luma, pic.luma)
	copy(out.chromaB, pic.chromaB)
	copy(out.chromaR, pic.chromaR)

	strength := deblock.Strength(pic.header.Quantizer)
	deblock.Plane(out.luma, out.LumaStride(), strength)
	deblock.Plane(out.chromaB, out.ChromaStride(), strength)
	deblock.Plane(out.chromaR, out.ChromaStride(), strength)

	// The copy is handed to the caller and never referenced again.
	d.retired = append(d.retired, out)
	return out
}
