/*
DESCRIPTION
  types.go provides the syntax-level types shared by the h263dec package:
  picture headers, picture options, macroblock and block structures, and
  half-pixel motion vector arithmetic.

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

// SourceFormat is the picture source format signalled in PTYPE (or, for
// custom formats, in CPFMT).
type SourceFormat uint8

// Standard source formats. FormatCustom covers both the standard CPFMT
// path and the Sorenson explicit-dimensions path; the resolved dimensions
// live in the picture header.
const (
	FormatForbidden SourceFormat = iota
	FormatSubQCIF
	FormatQCIF
	FormatCIF
	Format4CIF
	Format16CIF
	FormatReserved
	FormatExtended
	FormatCustom
)

// Dimensions returns the luma width and height of the format, or ok=false
// for custom formats whose dimensions come from the bitstream.
func (f SourceFormat) Dimensions() (w, h uint16, ok bool) {
	switch f {
	case FormatSubQCIF:
		return 128, 96, true
	case FormatQCIF:
		return 176, 144, true
	case FormatCIF:
		return 352, 288, true
	case Format4CIF:
		return 704, 576, true
	case Format16CIF:
		return 1408, 1152, true
	default:
		return 0, 0, false
	}
}

// PictureType is the coding type of a picture.
type PictureType uint8

const (
	PictureTypeI PictureType = iota
	PictureTypeP
	PictureTypePB
	PictureTypeImprovedPB
	PictureTypeB
	PictureTypeEI
	PictureTypeEP
	// PictureTypeDisposableP is Sorenson Spark's P-frame variant that is
	// never used as a forward reference.
	PictureTypeDisposableP
	PictureTypeReserved
)

// Predicted reports whether pictures of this type carry forward-predicted
// macroblocks.
func (t PictureType) Predicted() bool {
	switch t {
	case PictureTypeP, PictureTypePB, PictureTypeImprovedPB, PictureTypeDisposableP:
		return true
	}
	return false
}

// Disposable reports whether the picture must not become the forward
// reference for later pictures.
func (t PictureType) Disposable() bool {
	return t == PictureTypeDisposableP
}

func (t PictureType) String() string {
	switch t {
	case PictureTypeI:
		return "I"
	case PictureTypeP:
		return "P"
	case PictureTypePB:
		return "PB"
	case PictureTypeImprovedPB:
		return "improved PB"
	case PictureTypeB:
		return "B"
	case PictureTypeEI:
		return "EI"
	case PictureTypeEP:
		return "EP"
	case PictureTypeDisposableP:
		return "disposable P"
	}
	return "reserved"
}

// PictureOption is a bit set of the optional coding modes a picture header
// switches on.
type PictureOption uint32

const (
	OptUseSplitScreen PictureOption = 1 << iota
	OptUseDocumentCamera
	OptReleaseFullPictureFreeze
	OptUnrestrictedMotionVectors
	OptSyntaxBasedArithmeticCoding
	OptAdvancedPrediction
	OptAdvancedIntraCoding
	OptDeblockingFilter
	OptSliceStructured
	OptReferencePictureSelection
	OptIndependentSegmentDecoding
	OptAlternativeInterVLC
	OptModifiedQuantization
	OptReferencePictureResampling
	OptReducedResolutionUpdate
	OptRoundingTypeOne
	// OptUseDeblocker is Sorenson Spark's hint that the caller should run
	// the postprocess deblocking filter on the output picture.
	OptUseDeblocker
)

// Contains reports whether all options in mask are set.
func (o PictureOption) Contains(mask PictureOption) bool {
	return o&mask == mask
}

// MotionVectorRange selects how decoded motion vectors are constrained.
type MotionVectorRange uint8

const (
	// RangeStandard wraps differentials so vectors land in [-16, 15.5].
	RangeStandard MotionVectorRange = iota
	// RangeUnlimited applies no constraint at all (Sorenson, and UUI=01).
	RangeUnlimited
)

// PictureHeader is a decoded picture layer header. Fields for optional
// syntax hold their zero value when the syntax was absent.
type PictureHeader struct {
	// Version is the Sorenson bitstream version (0 or 1). Only meaningful
	// when SorensonSpark is in effect.
	Version uint8

	TemporalReference uint16

	Format SourceFormat
	// Width and Height are the luma dimensions resolved from Format or
	// read explicitly. Zero when the picture inherits dimensions.
	Width, Height uint16

	// PAR fields hold the pixel aspect ratio from CPFMT. PARCode 15 is
	// the extended form with an explicit width:height.
	PARCode              uint8
	PARWidth, PARHeight  uint8

	Options     PictureOption
	HasPlusType bool
	HasOPPType  bool
	PictureType PictureType

	MotionVectorRange MotionVectorRange

	// Custom picture clock (CPCFC).
	HasCustomClock  bool
	ClockTimes1001  bool
	ClockDivisor    uint8

	SliceSubmode uint8

	// Scalability layer numbers (ELNUM/RLNUM).
	EnhancementLayer uint8
	ReferenceLayer   uint8

	// Reference picture selection fields.
	RPSMode uint8
	HasTRP  bool
	TRP     uint16

	Quantizer uint8

	// HasCPM with SubBitstream hold the CPM/PSBI continuous-presence
	// multiplex fields.
	HasCPM       bool
	SubBitstream uint8

	// TRB and DBQuantizer are present for PB-frame pictures.
	TRB         uint8
	DBQuantizer uint8

	// Extra holds any PEI-flagged PSUPP bytes.
	Extra []byte
}

// GOBHeader is a decoded group-of-blocks layer header.
type GOBHeader struct {
	Number       uint8
	SubBitstream uint8
	FrameID      uint8
	Quantizer    uint8
}

// MacroblockType is the coding type decoded from MCBPC.
type MacroblockType uint8

const (
	MBInter MacroblockType = iota
	MBInterQ
	MBInter4V
	MBIntra
	MBIntraQ
	MBInter4VQ
	MBStuffing
)

// Intra reports whether blocks of this macroblock are intra coded.
func (t MacroblockType) Intra() bool {
	return t == MBIntra || t == MBIntraQ
}

// HasQuantizer reports whether the macroblock carries a DQUANT field.
func (t MacroblockType) HasQuantizer() bool {
	switch t {
	case MBInterQ, MBIntraQ, MBInter4VQ:
		return true
	}
	return false
}

// HasFourVectors reports whether the macroblock carries four motion
// vectors rather than one.
func (t MacroblockType) HasFourVectors() bool {
	return t == MBInter4V || t == MBInter4VQ
}

// CodedBlockPattern flags which of a macroblock's six blocks carry
// coefficient data.
type CodedBlockPattern struct {
	Luma    [4]bool
	ChromaB bool
	ChromaR bool
}

// Macroblock is the parsed syntax of one macroblock. Uncoded (COD=1) and
// stuffing macroblocks have Coded=false; stuffing additionally has
// Type=MBStuffing.
type Macroblock struct {
	Coded bool
	Type  MacroblockType

	Pattern CodedBlockPattern
	DQuant  int8

	// MV holds the decoded motion vector differentials. Index 0 is the
	// macroblock vector; 1..3 join it for four-vector macroblocks.
	MV [4]MotionVector

	// CodedB and MVB cover the B half of a PB-frame macroblock.
	CodedB bool
	MVB    MotionVector
}

// IntraDC is the fixed-length coded DC coefficient of an intra block.
// Codes 0 and 128 are forbidden; 255 stands for level 1024.
type IntraDC uint8

// intraDCFromBits validates an 8-bit INTRADC code.
func intraDCFromBits(v uint8) (IntraDC, bool) {
	if v == 0 || v == 128 {
		return 0, false
	}
	return IntraDC(v), true
}

// Level returns the reconstructed DC level.
func (d IntraDC) Level() int16 {
	if d == 255 {
		return 1024
	}
	return int16(d) << 3
}

// TCoefficient is one run-length entry of a block's coefficient scan.
type TCoefficient struct {
	// Short marks a coefficient coded with the VLC proper rather than the
	// fixed-length escape form.
	Short bool
	Run   uint8
	Level int16
}

// Block is the parsed coefficient data of one 8x8 block.
type Block struct {
	IntraDC IntraDC
	HasDC   bool
	TCoef   []TCoefficient
}

// HalfPel is a displacement in half-pixel units.
type HalfPel int16

const (
	halfPelZero HalfPel = 0

	// standardRange is the half-open legal window [-standardRange,
	// standardRange) for decoded vectors, i.e. [-16, 15.5] pixels.
	standardRange HalfPel = 32

	// extendedRange is the window used when unrestricted motion vectors
	// are in force and the predictor already lies outside the standard
	// window.
	extendedRange HalfPel = 64

	// wrapDistance is how far Invert moves a differential when the direct
	// sum falls outside the legal window.
	wrapDistance HalfPel = 64
)

// halfPelFromUnits builds a HalfPel from a count of half pixels.
func halfPelFromUnits(u int16) HalfPel { return HalfPel(u) }

// WithinRange reports whether the vector component lies in
// [-bound, bound).
func (h HalfPel) WithinRange(bound HalfPel) bool {
	return h >= -bound && h < bound
}

// Invert returns the wrapped alternative of a differential, used when the
// direct predictor sum leaves the legal window.
func (h HalfPel) Invert() HalfPel {
	if h >= 0 {
		return h - wrapDistance
	}
	return h + wrapDistance
}

// LerpParams splits the displacement into a whole-pixel offset and a flag
// for the half-pixel interpolation step. The shift floors for negative
// values, which is what the interpolator wants.
func (h HalfPel) LerpParams() (whole int, half bool) {
	return int(h >> 1), h&1 != 0
}

func (h HalfPel) abs() HalfPel {
	if h < 0 {
		return -h
	}
	return h
}

// MotionVector is a two-component half-pixel displacement.
type MotionVector struct {
	X, Y HalfPel
}

// Add returns the component-wise sum.
func (v MotionVector) Add(o MotionVector) MotionVector {
	return MotionVector{v.X + o.X, v.Y + o.Y}
}

// chromaFromFourVectors derives a macroblock's chroma vector from the sum
// of its four luma vectors: the sum is divided by eight and the
// sixteenth-pixel remainder rounded per Table 16. Single-vector
// macroblocks pass the same vector four times, which reduces this to the
// Table 17 halving rule.
func chromaFromFourVectors(vs [4]MotionVector) MotionVector {
	var sx, sy HalfPel
	for _, v := range vs {
		sx += v.X
		sy += v.Y
	}
	return MotionVector{eighthComponent(sx), eighthComponent(sy)}
}

func eighthComponent(sum HalfPel) HalfPel {
	a := sum.abs()
	c := 2*(a/16) + roundSixteenthPel[a%16]
	if sum < 0 {
		return -c
	}
	return c
}

// roundSixteenthPel maps a sixteenth-pixel remainder to its rounded
// half-pixel contribution (Table 16).
var roundSixteenthPel = [16]HalfPel{
	0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2,
}
