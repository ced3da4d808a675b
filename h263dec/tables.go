/*
DESCRIPTION
  tables.go provides the variable-length-code tables of the H.263 syntax:
  MCBPC for I and P pictures, MODB, CBPY, MVD and TCOEF. Slot comments give
  the bit pattern terminating at that slot.

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

// mcbpcEntry is the outcome of an MCBPC parse: a macroblock type with the
// two chroma coded-block flags, macroblock stuffing, or a forbidden code.
type mcbpcEntry struct {
	invalid  bool
	stuffing bool
	typ      MacroblockType
	chromaB  bool
	chromaR  bool
}

func mcbpc(t MacroblockType, cb, cr bool) vlcEntry[mcbpcEntry] {
	return end(mcbpcEntry{typ: t, chromaB: cb, chromaR: cr})
}

var (
	mcbpcStuffing = end(mcbpcEntry{stuffing: true})
	mcbpcInvalid  = end(mcbpcEntry{invalid: true})
)

var mcbpcITable = []vlcEntry[mcbpcEntry]{
	fork[mcbpcEntry](2, 1),       //x, slot 0
	mcbpc(MBIntra, false, false), //1, slot 1
	fork[mcbpcEntry](6, 3),       //0x, slot 2
	fork[mcbpcEntry](4, 5),       //01x, slot 3
	mcbpc(MBIntra, true, false),  //010, slot 4
	mcbpc(MBIntra, true, true),   //011, slot 5
	fork[mcbpcEntry](8, 7),       //00x, slot 6
	mcbpc(MBIntra, false, true),  //001, slot 7
	fork[mcbpcEntry](10, 9),      //000x, slot 8
	mcbpc(MBIntraQ, false, false), //0001, slot 9
	fork[mcbpcEntry](14, 11),      //0000x, slot 10
	fork[mcbpcEntry](12, 13),      //00001x, slot 11
	mcbpc(MBIntraQ, true, false),  //000010, slot 12
	mcbpc(MBIntraQ, true, true),   //000011, slot 13
	fork[mcbpcEntry](16, 20),      //00000x, slot 14
	mcbpcInvalid,                  //slot 15
	fork[mcbpcEntry](17, 15),      //000000x, slot 16
	fork[mcbpcEntry](18, 15),      //0000000x, slot 17
	fork[mcbpcEntry](15, 19),      //00000000x, slot 18
	mcbpcStuffing,                 //000000001, slot 19
	mcbpc(MBIntraQ, false, true),  //000001, slot 20
}

var mcbpcPTable = []vlcEntry[mcbpcEntry]{
	fork[mcbpcEntry](2, 1),       //x, slot 0
	mcbpc(MBInter, false, false), //1, slot 1
	fork[mcbpcEntry](6, 3),       //0x, slot 2
	fork[mcbpcEntry](4, 5),       //01x, slot 3
	mcbpc(MBInter4V, false, false), //010, slot 4
	mcbpc(MBInterQ, false, false),  //011, slot 5
	fork[mcbpcEntry](10, 7),        //00x, slot 6
	fork[mcbpcEntry](8, 9),         //001x, slot 7
	mcbpc(MBInter, true, false),    //0010, slot 8
	mcbpc(MBInter, false, true),    //0011, slot 9
	fork[mcbpcEntry](16, 11),       //000x, slot 10
	fork[mcbpcEntry](13, 12),       //0001x, slot 11
	mcbpc(MBIntra, false, false),   //00011, slot 12
	fork[mcbpcEntry](14, 15),       //00010x, slot 13
	mcbpc(MBIntraQ, false, false),  //000100, slot 14
	mcbpc(MBInter, true, true),     //000101, slot 15
	fork[mcbpcEntry](24, 17),       //0000x, slot 16
	fork[mcbpcEntry](18, 21),       //00001x, slot 17
	fork[mcbpcEntry](19, 20),       //000010x, slot 18
	mcbpc(MBInter4V, true, false),  //0000100, slot 19
	mcbpc(MBInter4V, false, true),  //0000101, slot 20
	fork[mcbpcEntry](22, 23),       //000011x, slot 21
	mcbpc(MBInterQ, true, false),   //0000110, slot 22
	mcbpc(MBInterQ, false, true),   //0000111, slot 23
	fork[mcbpcEntry](30, 25),       //00000x, slot 24
	fork[mcbpcEntry](27, 26),       //000001x, slot 25
	mcbpc(MBIntra, true, true),     //0000011, slot 26
	fork[mcbpcEntry](28, 29),       //0000010x, slot 27
	mcbpc(MBIntra, false, true),    //00000100, slot 28
	mcbpc(MBInter4V, true, true),   //00000101, slot 29
	fork[mcbpcEntry](36, 31),       //000000x, slot 30
	fork[mcbpcEntry](33, 32),       //0000001x, slot 31
	mcbpc(MBIntra, true, false),    //00000011, slot 32
	fork[mcbpcEntry](34, 35),       //00000010x, slot 33
	mcbpc(MBIntraQ, false, true),   //000000100, slot 34
	mcbpc(MBInterQ, true, true),    //000000101, slot 35
	fork[mcbpcEntry](40, 37),       //0000000x, slot 36
	fork[mcbpcEntry](38, 39),       //00000001x, slot 37
	mcbpc(MBIntraQ, true, true),    //000000010, slot 38
	mcbpc(MBIntraQ, true, false),   //000000011, slot 39
	fork[mcbpcEntry](42, 41),       //00000000x, slot 40
	mcbpcStuffing,                  //000000001, slot 41
	fork[mcbpcEntry](43, 44),       //000000000x, slot 42
	mcbpcInvalid,                   //slot 43: no long runs of zeroes
	fork[mcbpcEntry](45, 46),       //0000000001x, slot 44
	mcbpc(MBInter4VQ, false, false), //00000000010, slot 45
	fork[mcbpcEntry](47, 50),        //00000000011x, slot 46
	fork[mcbpcEntry](48, 49),        //000000000110x, slot 47
	mcbpc(MBInter4VQ, false, true),  //0000000001100, slot 48
	mcbpcInvalid,                    //0000000001101, slot 49
	fork[mcbpcEntry](51, 52),        //000000000111x, slot 50
	mcbpc(MBInter4VQ, true, false),  //0000000001110, slot 51
	mcbpc(MBInter4VQ, true, true),   //0000000001111, slot 52
}

// modbEntry flags the presence of a coded block pattern and of motion
// vectors for the B half of a PB-frame macroblock.
type modbEntry struct {
	hasCBPB bool
	hasMVDB bool
}

var modbTable = []vlcEntry[modbEntry]{
	fork[modbEntry](1, 2),          //x, slot 0
	end(modbEntry{false, false}),   //0, slot 1
	fork[modbEntry](3, 4),          //1x, slot 2
	end(modbEntry{false, true}),    //10, slot 3
	end(modbEntry{true, true}),     //11, slot 4
}

// cbpyEntry is the intra luma coded-block pattern; for inter macroblocks
// every flag is flipped. An invalid entry marks a forbidden prefix.
type cbpyEntry struct {
	invalid bool
	luma    [4]bool
}

func cbpy(a, b, c, d bool) vlcEntry[cbpyEntry] {
	return end(cbpyEntry{luma: [4]bool{a, b, c, d}})
}

var cbpyInvalid = end(cbpyEntry{invalid: true})

var cbpyTableIntra = []vlcEntry[cbpyEntry]{
	fork[cbpyEntry](1, 24),         //x, slot 0
	fork[cbpyEntry](2, 17),         //0x, slot 1
	fork[cbpyEntry](3, 12),         //00x, slot 2
	fork[cbpyEntry](4, 9),          //000x, slot 3
	fork[cbpyEntry](5, 6),          //0000x, slot 4
	cbpyInvalid,                    //00000, slot 5, not a valid prefix
	fork[cbpyEntry](7, 8),          //00001x, slot 6
	cbpy(false, true, true, false), //000010, slot 7
	cbpy(true, false, false, true), //000011, slot 8
	fork[cbpyEntry](10, 11),        //0001, slot 9
	cbpy(true, false, false, false), //00010, slot 10
	cbpy(false, true, false, false), //00011, slot 11
	fork[cbpyEntry](13, 16),         //001x, slot 12
	fork[cbpyEntry](14, 15),         //0010x, slot 13
	cbpy(false, false, true, false), //00100, slot 14
	cbpy(false, false, false, true), //00101, slot 15
	cbpy(false, false, false, false), //0011, slot 16
	fork[cbpyEntry](18, 21),          //01x, slot 17
	fork[cbpyEntry](19, 20),          //010x, slot 18
	cbpy(true, true, false, false),   //0100, slot 19
	cbpy(true, false, true, false),   //0101, slot 20
	fork[cbpyEntry](22, 23),          //011x, slot 21
	cbpy(true, true, true, false),    //0110, slot 22
	cbpy(false, true, false, true),   //0111, slot 23
	fork[cbpyEntry](25, 32),          //1x, slot 24
	fork[cbpyEntry](26, 29),          //10x, slot 25
	fork[cbpyEntry](27, 28),          //100x, slot 26
	cbpy(true, true, false, true),    //1000, slot 27
	cbpy(false, false, true, true),   //1001, slot 28
	fork[cbpyEntry](30, 31),          //101x, slot 29
	cbpy(true, false, true, true),    //1010, slot 30
	cbpy(false, true, true, true),    //1011, slot 31
	cbpy(true, true, true, true),     //11, slot 32
}

// mvdEntry is one motion vector component differential in half-pixel
// units. The invalid entry covers the forbidden all-zeroes prefixes.
type mvdEntry struct {
	invalid bool
	v       HalfPel
}

// mvd builds an entry from a half-pixel count; slot comments give the
// displacement in pixels.
func mvd(halfpels int16) vlcEntry[mvdEntry] {
	return end(mvdEntry{v: HalfPel(halfpels)})
}

var mvdInvalid = end(mvdEntry{invalid: true})

var mvdTable = []vlcEntry[mvdEntry]{
	fork[mvdEntry](2, 1),  //x, slot 0
	mvd(0),                //0.0: 1, slot 1
	fork[mvdEntry](6, 3),  //0x, slot 2
	fork[mvdEntry](4, 5),  //01x, slot 3
	mvd(1),                //0.5: 010, slot 4
	mvd(-1),               //-0.5: 011, slot 5
	fork[mvdEntry](10, 7), //00x, slot 6
	fork[mvdEntry](8, 9),  //001x, slot 7
	mvd(2),                //1.0: 0010, slot 8
	mvd(-2),               //-1.0: 0011, slot 9
	fork[mvdEntry](14, 11), //000x, slot 10
	fork[mvdEntry](12, 13), //0001x, slot 11
	mvd(3),                 //1.5: 00010, slot 12
	mvd(-3),                //-1.5: 00011, slot 13
	fork[mvdEntry](26, 15), //0000x, slot 14
	fork[mvdEntry](19, 16), //00001x, slot 15
	fork[mvdEntry](17, 18), //000011x, slot 16
	mvd(4),                 //2.0: 0000110, slot 17
	mvd(-4),                //-2.0: 0000111, slot 18
	fork[mvdEntry](23, 20), //000010x, slot 19
	fork[mvdEntry](21, 22), //0000101x, slot 20
	mvd(5),                 //2.5: 00001010, slot 21
	mvd(-5),                //-2.5: 00001011, slot 22
	fork[mvdEntry](24, 25), //0000100x, slot 23
	mvd(6),                 //3.0: 00001000, slot 24
	mvd(-6),                //-3.0: 00001001, slot 25
	fork[mvdEntry](50, 27), //00000x, slot 26
	fork[mvdEntry](31, 28), //000001x, slot 27
	fork[mvdEntry](29, 30), //0000011x, slot 28
	mvd(7),                 //3.5: 00000110, slot 29
	mvd(-7),                //-3.5: 00000111, slot 30
	fork[mvdEntry](39, 32), //0000010x, slot 31
	fork[mvdEntry](36, 33), //00000101x, slot 32
	fork[mvdEntry](34, 35), //000001011x, slot 33
	mvd(8),                 //4.0: 0000010110, slot 34
	mvd(-8),                //-4.0: 0000010111, slot 35
	fork[mvdEntry](37, 38), //000001010x, slot 36
	mvd(9),                 //4.5: 0000010100, slot 37
	mvd(-9),                //-4.5: 0000010101, slot 38
	fork[mvdEntry](43, 40), //00000100x, slot 39
	fork[mvdEntry](41, 42), //000001001x, slot 40
	mvd(10),                //5.0: 0000010010, slot 41
	mvd(-10),               //-5.0: 0000010011, slot 42
	fork[mvdEntry](47, 44), //000001000x, slot 43
	fork[mvdEntry](45, 46), //0000010001x, slot 44
	mvd(11),                //5.5: 00000100010, slot 45
	mvd(-11),               //-5.5: 00000100011, slot 46
	fork[mvdEntry](48, 49), //0000010000x, slot 47
	mvd(12),                //6.0: 00000100000, slot 48
	mvd(-12),               //-6.0: 00000100001, slot 49
	fork[mvdEntry](82, 51), //000000x, slot 50
	fork[mvdEntry](67, 52), //0000001x, slot 51
	fork[mvdEntry](60, 53), //00000011x, slot 52
	fork[mvdEntry](57, 54), //000000111x, slot 53
	fork[mvdEntry](55, 56), //0000001111x, slot 54
	mvd(13),                //6.5: 00000011110, slot 55
	mvd(-13),               //-6.5: 00000011111, slot 56
	fork[mvdEntry](58, 59), //0000001110x, slot 57
	mvd(14),                //7.0: 00000011100, slot 58
	mvd(-14),               //-7.0: 00000011101, slot 59
	fork[mvdEntry](64, 61), //000000110x, slot 60
	fork[mvdEntry](62, 63), //0000001101x, slot 61
	mvd(15),                //7.5: 00000011010, slot 62
	mvd(-15),               //-7.5: 00000011011, slot 63
	fork[mvdEntry](65, 66), //0000001100x, slot 64
	mvd(16),                //8.0: 00000011000, slot 65
	mvd(-16),               //-8.0: 00000011001, slot 66
	fork[mvdEntry](75, 68), //00000010x, slot 67
	fork[mvdEntry](72, 69), //000000101x, slot 68
	fork[mvdEntry](70, 71), //0000001011x, slot 69
	mvd(17),                //8.5: 00000010110, slot 70
	mvd(-17),               //-8.5: 00000010111, slot 71
	fork[mvdEntry](73, 74), //0000001010x, slot 72
	mvd(18),                //9.0: 00000010100, slot 73
	mvd(-18),               //-9.0: 00000010101, slot 74
	fork[mvdEntry](79, 76), //000000100x, slot 75
	fork[mvdEntry](77, 78), //0000001001x, slot 76
	mvd(19),                //9.5: 00000010010, slot 77
	mvd(-19),               //-9.5: 00000010011, slot 78
	fork[mvdEntry](80, 81), //0000001000x, slot 79
	mvd(20),                //10.0: 00000010000, slot 80
	mvd(-20),               //-10.0: 00000010001, slot 81
	fork[mvdEntry](98, 83), //0000000x, slot 82
	fork[mvdEntry](91, 84), //00000001x, slot 83
	fork[mvdEntry](88, 85), //000000011x, slot 84
	fork[mvdEntry](86, 87), //0000000111x, slot 85
	mvd(21),                //10.5: 00000001110, slot 86
	mvd(-21),               //-10.5: 00000001111, slot 87
	fork[mvdEntry](89, 90), //0000000110x, slot 88
	mvd(22),                //11.0: 00000001100, slot 89
	mvd(-22),               //-11.0: 00000001101, slot 90
	fork[mvdEntry](95, 92), //000000010x, slot 91
	fork[mvdEntry](93, 94), //0000000101x, slot 92
	mvd(23),                //11.5: 00000001010, slot 93
	mvd(-23),               //-11.5: 00000001011, slot 94
	fork[mvdEntry](96, 97), //0000000100x, slot 95
	mvd(24),                //12.0: 00000001000, slot 96
	mvd(-24),               //-12.0: 00000001001, slot 97
	fork[mvdEntry](114, 99),  //00000000x, slot 98
	fork[mvdEntry](107, 100), //000000001x, slot 99
	fork[mvdEntry](104, 101), //0000000011x, slot 100
	fork[mvdEntry](102, 103), //00000000111x, slot 101
	mvd(25),                  //12.5: 000000001110, slot 102
	mvd(-25),                 //-12.5: 000000001111, slot 103
	fork[mvdEntry](105, 106), //00000000110x, slot 104
	mvd(26),                  //13.0: 000000001100, slot 105
	mvd(-26),                 //-13.0: 000000001101, slot 106
	fork[mvdEntry](111, 108), //0000000010x, slot 107
	fork[mvdEntry](109, 110), //00000000101x, slot 108
	mvd(27),                  //13.5: 000000001010, slot 109
	mvd(-27),                 //-13.5: 000000001011, slot 110
	fork[mvdEntry](112, 113), //00000000100x, slot 111
	mvd(28),                  //14.0: 000000001000, slot 112
	mvd(-28),                 //-14.0: 000000001001, slot 113
	fork[mvdEntry](122, 115), //000000000x, slot 114
	fork[mvdEntry](119, 116), //0000000001x, slot 115
	fork[mvdEntry](117, 118), //00000000011x, slot 116
	mvd(29),                  //14.5: 000000000110, slot 117
	mvd(-29),                 //-14.5: 000000000111, slot 118
	fork[mvdEntry](120, 121), //00000000010x, slot 119
	mvd(30),                  //15.0: 000000000100, slot 120
	mvd(-30),                 //-15.0: 000000000101, slot 121
	fork[mvdEntry](129, 123), //0000000000x, slot 122
	fork[mvdEntry](127, 124), //00000000001x, slot 123
	fork[mvdEntry](125, 126), //000000000011x, slot 124
	mvd(31),                  //15.5: 0000000000110, slot 125
	mvd(-31),                 //-15.5: 0000000000111, slot 126
	fork[mvdEntry](129, 128), //000000000010x, slot 127
	mvd(-32),                 //-16.0: 0000000000101, slot 128
	mvdInvalid,               //00000000000 or 0000000000100 patterns, slot 129
}

// tcoefEntry is a partially decoded short TCOEF entry. Escape marks the
// fixed-length form following in the bitstream; for the short form the
// sign bit directly follows.
type tcoefEntry struct {
	invalid bool
	escape  bool
	last    bool
	run     uint8
	level   uint8
}

func tcRun(last bool, run, level uint8) vlcEntry[tcoefEntry] {
	return end(tcoefEntry{last: last, run: run, level: level})
}

var (
	tcEscape  = end(tcoefEntry{escape: true})
	tcInvalid = end(tcoefEntry{invalid: true})
)

var tcoefTable = []vlcEntry[tcoefEntry]{
	fork[tcoefEntry](8, 1),   //x, slot 0
	fork[tcoefEntry](2, 3),   //1x, slot 1
	tcRun(false, 0, 1),       //10, slot 2
	fork[tcoefEntry](4, 5),   //11x, slot 3
	tcRun(false, 1, 1),       //110, slot 4
	fork[tcoefEntry](6, 7),   //111x, slot 5
	tcRun(false, 2, 1),       //1110, slot 6
	tcRun(false, 0, 2),       //1111, slot 7
	fork[tcoefEntry](27, 9),  //0x, slot 8
	fork[tcoefEntry](15, 10), //01x, slot 9
	fork[tcoefEntry](12, 11), //011x, slot 10
	tcRun(true, 0, 1),        //0111, slot 11
	fork[tcoefEntry](13, 14), //0110x, slot 12
	tcRun(false, 4, 1),       //01100, slot 13
	tcRun(false, 3, 1),       //01101, slot 14
	fork[tcoefEntry](16, 22), //010x, slot 15
	fork[tcoefEntry](17, 20), //0100x, slot 16
	fork[tcoefEntry](18, 19), //01000x, slot 17
	tcRun(false, 9, 1),       //010000, slot 18
	tcRun(false, 8, 1),       //010001, slot 19
	fork[tcoefEntry](21, 22), //01001x, slot 20
	tcRun(false, 7, 1),       //010010, slot 21
	tcRun(false, 6, 1),       //010011, slot 22
	fork[tcoefEntry](24, 23), //0101x, slot 22
	tcRun(false, 5, 1),       //01011, slot 23
	fork[tcoefEntry](25, 26), //01010x, slot 24
	tcRun(false, 1, 2),       //010100, slot 25
	tcRun(false, 0, 3),       //010101, slot 26
	fork[tcoefEntry](51, 28), //00x, slot 27
	fork[tcoefEntry](36, 29), //001x, slot 28
	fork[tcoefEntry](30, 33), //0011x, slot 29
	fork[tcoefEntry](31, 32), //00110x, slot 30
	tcRun(true, 4, 1),        //001100, slot 31
	tcRun(true, 3, 1),        //001101, slot 32
	fork[tcoefEntry](34, 35), //00111x, slot 33
	tcRun(true, 2, 1),        //001110, slot 34
	tcRun(true, 1, 1),        //001111, slot 35
	fork[tcoefEntry](37, 44), //0010x, slot 36
	fork[tcoefEntry](38, 41), //00100x, slot 37
	fork[tcoefEntry](39, 40), //001000x, slot 38
	tcRun(true, 8, 1),        //0010000, slot 39
	tcRun(true, 7, 1),        //0010001, slot 40
	fork[tcoefEntry](42, 43), //001001x, slot 41
	tcRun(true, 6, 1),        //0010010, slot 42
	tcRun(true, 5, 1),        //0010011, slot 43
	fork[tcoefEntry](45, 48), //00101x, slot 44
	fork[tcoefEntry](46, 47), //001010x, slot 45
	tcRun(false, 12, 1),      //0010100, slot 46
	tcRun(false, 11, 1),      //0010101, slot 47
	fork[tcoefEntry](49, 50), //001011x, slot 48
	tcRun(false, 10, 1),      //0010110, slot 49
	tcRun(false, 0, 4),       //0010111, slot 50
	fork[tcoefEntry](89, 52), //000x, slot 51
	fork[tcoefEntry](68, 53), //0001x, slot 52
	fork[tcoefEntry](54, 61), //00011x, slot 53
	fork[tcoefEntry](55, 58), //000110x, slot 54
	fork[tcoefEntry](56, 57), //0001100x, slot 55
	tcRun(true, 11, 1),       //00011000, slot 56
	tcRun(true, 10, 1),       //00011001, slot 57
	fork[tcoefEntry](59, 60), //0001101x, slot 58
	tcRun(true, 9, 1),        //00011010, slot 59
	tcRun(false, 14, 1),      //00011011, slot 60
	fork[tcoefEntry](62, 65), //000111x, slot 61
	fork[tcoefEntry](63, 64), //0001110x, slot 62
	tcRun(false, 13, 1),      //00011100, slot 63
	tcRun(false, 2, 2),       //00011101, slot 64
	fork[tcoefEntry](66, 67), //0001111x, slot 65
	tcRun(false, 1, 3),       //00011110, slot 66
	tcRun(false, 0, 5),       //00011111, slot 67
	fork[tcoefEntry](76, 69), //00010x, slot 68
	fork[tcoefEntry](70, 73), //000101x, slot 69
	fork[tcoefEntry](71, 72), //0001010x, slot 70
	tcRun(true, 15, 1),       //00010100, slot 71
	tcRun(true, 14, 1),       //00010101, slot 72
	fork[tcoefEntry](74, 75), //0001011x, slot 73
	tcRun(true, 13, 1),       //00010110, slot 74
	tcRun(true, 12, 1),       //00010111, slot 75
	fork[tcoefEntry](77, 84), //000100x, slot 76
	fork[tcoefEntry](78, 81), //0001000x, slot 77
	fork[tcoefEntry](79, 80), //00010000x, slot 78
	tcRun(false, 16, 1),      //000100000, slot 79
	tcRun(false, 15, 1),      //000100001, slot 80
	fork[tcoefEntry](82, 83), //00010001x, slot 81
	tcRun(false, 4, 2),       //000100010, slot 82
	tcRun(false, 3, 2),       //000100011, slot 83
	fork[tcoefEntry](85, 88), //0001001x, slot 84
	fork[tcoefEntry](86, 87), //00010010x, slot 85
	tcRun(false, 0, 7),       //000100100, slot 86
	tcRun(false, 0, 6),       //000100101, slot 87
	tcRun(true, 16, 1),       //00010011x, slot 88
	fork[tcoefEntry](123, 90), //0000x, slot 89
	fork[tcoefEntry](91, 108), //00001x, slot 90
	fork[tcoefEntry](92, 101), //000010x, slot 91
	fork[tcoefEntry](93, 98),  //0000100x, slot 92
	fork[tcoefEntry](94, 97),  //00001000x, slot 93
	fork[tcoefEntry](95, 96),  //000010000x, slot 94
	tcRun(false, 0, 9),        //0000100000, slot 95
	tcRun(false, 0, 8),        //0000100001, slot 96
	tcRun(true, 24, 1),        //000010001, slot 97
	fork[tcoefEntry](99, 100), //00001001x, slot 98
	tcRun(true, 23, 1),        //000010010, slot 99
	tcRun(true, 22, 1),        //000010011, slot 100
	fork[tcoefEntry](102, 105), //0000101x, slot 101
	fork[tcoefEntry](103, 104), //00001010x, slot 102
	tcRun(true, 21, 1),         //000010100, slot 103
	tcRun(true, 20, 1),         //000010101, slot 104
	fork[tcoefEntry](106, 107), //00001011x, slot 105
	tcRun(true, 19, 1),         //000010110, slot 106
	tcRun(true, 18, 1),         //000010111, slot 107
	fork[tcoefEntry](109, 116), //000011x, slot 108
	fork[tcoefEntry](110, 113), //0000110x, slot 109
	fork[tcoefEntry](111, 112), //00001100x, slot 110
	tcRun(true, 17, 1),         //000011000, slot 111
	tcRun(true, 0, 2),          //000011001, slot 112
	fork[tcoefEntry](114, 115), //00001101x, slot 113
	tcRun(false, 22, 1),        //000011010, slot 114
	tcRun(false, 21, 1),        //000011011, slot 115
	fork[tcoefEntry](117, 120), //0000111x, slot 116
	fork[tcoefEntry](118, 119), //00001110x, slot 117
	tcRun(false, 20, 1),        //000011100, slot 118
	tcRun(false, 19, 1),        //000011101, slot 119
	fork[tcoefEntry](121, 122), //00001111x, slot 120
	tcRun(false, 18, 1),        //000011110, slot 121
	tcRun(false, 17, 1),        //000011111, slot 122
	fork[tcoefEntry](173, 124), //00000x, slot 123
	fork[tcoefEntry](126, 125), //000001x, slot 124
	tcEscape,                   //0000011, slot 125
	fork[tcoefEntry](127, 142), //0000010x, slot 126
	fork[tcoefEntry](128, 135), //00000100x, slot 127
	fork[tcoefEntry](129, 132), //000001000x, slot 128
	fork[tcoefEntry](130, 131), //0000010000x, slot 129
	tcRun(false, 0, 12),        //00000100000, slot 130
	tcRun(false, 1, 5),         //00000100001, slot 131
	fork[tcoefEntry](133, 134), //0000010001x, slot 132
	tcRun(false, 23, 1),        //00000100010, slot 133
	tcRun(false, 24, 1),        //00000100011, slot 134
	fork[tcoefEntry](136, 139), //000001001x, slot 135
	fork[tcoefEntry](137, 138), //0000010010x, slot 136
	tcRun(true, 29, 1),         //00000100100, slot 137
	tcRun(true, 30, 1),         //00000100101, slot 138
	fork[tcoefEntry](140, 141), //0000010011x, slot 139
	tcRun(true, 31, 1),         //00000100110, slot 140
	tcRun(true, 32, 1),         //00000100111, slot 141
	fork[tcoefEntry](143, 158), //00000101x, slot 142
	fork[tcoefEntry](144, 151), //000001010x, slot 143
	fork[tcoefEntry](145, 148), //0000010100x, slot 144
	fork[tcoefEntry](146, 147), //00000101000x, slot 145
	tcRun(false, 1, 6),         //000001010000, slot 146
	tcRun(false, 2, 4),         //000001010001, slot 147
	fork[tcoefEntry](149, 150), //00000101001x, slot 148
	tcRun(false, 4, 3),         //000001010010, slot 149
	tcRun(false, 5, 3),         //000001010011, slot 150
	fork[tcoefEntry](152, 155), //0000010101x, slot 151
	fork[tcoefEntry](153, 154), //00000101010x, slot 152
	tcRun(false, 6, 3),         //000001010100, slot 153
	tcRun(false, 10, 2),        //000001010101, slot 154
	fork[tcoefEntry](156, 157), //00000101011x, slot 155
	tcRun(false, 25, 1),        //000001010110, slot 156
	tcRun(false, 26, 1),        //000001010111, slot 157
	fork[tcoefEntry](159, 166), //000001011x, slot 158
	fork[tcoefEntry](160, 163), //0000010110x, slot 159
	fork[tcoefEntry](161, 162), //00000101100x, slot 160
	tcRun(true, 33, 1),         //000001011000, slot 161
	tcRun(true, 34, 1),         //000001011001, slot 162
	fork[tcoefEntry](164, 165), //00000101101x, slot 163
	tcRun(true, 35, 1),         //000001011010, slot 164
	tcRun(true, 36, 1),         //000001011011, slot 165
	fork[tcoefEntry](167, 170), //0000010111x, slot 166
	fork[tcoefEntry](168, 169), //00000101110x, slot 167
	tcRun(true, 37, 1),         //000001011100, slot 168
	tcRun(true, 38, 1),         //000001011101, slot 169
	fork[tcoefEntry](171, 172), //00000101111x, slot 170
	tcRun(true, 39, 1),         //000001011110, slot 171
	tcRun(true, 40, 1),         //000001011111, slot 172
	fork[tcoefEntry](189, 174), //000000x, slot 173
	fork[tcoefEntry](175, 182), //0000001x, slot 174
	fork[tcoefEntry](176, 179), //00000010x, slot 175
	fork[tcoefEntry](177, 178), //000000100x, slot 176
	tcRun(false, 9, 2),         //0000001000, slot 177
	tcRun(false, 8, 2),         //0000001001, slot 178
	fork[tcoefEntry](180, 181), //000000101x, slot 179
	tcRun(false, 7, 2),         //0000001010, slot 180
	tcRun(false, 6, 2),         //0000001011, slot 181
	fork[tcoefEntry](183, 186), //00000011x, slot 182
	fork[tcoefEntry](184, 185), //000000110x, slot 183
	tcRun(false, 5, 2),         //0000001100, slot 184
	tcRun(false, 3, 3),         //0000001101, slot 185
	fork[tcoefEntry](187, 188), //000000111x, slot 186
	tcRun(false, 2, 3),         //0000001110, slot 187
	tcRun(false, 1, 4),         //0000001111, slot 188
	fork[tcoefEntry](197, 190), //0000000x, slot 189
	fork[tcoefEntry](191, 194), //00000001x, slot 190
	fork[tcoefEntry](192, 193), //000000010x, slot 191
	tcRun(true, 28, 1),         //0000000100, slot 192
	tcRun(true, 27, 1),         //0000000101, slot 193
	fork[tcoefEntry](195, 196), //000000011x, slot 194
	tcRun(true, 26, 1),         //0000000110, slot 195
	tcRun(true, 25, 1),         //0000000111, slot 196
	fork[tcoefEntry](205, 198), //00000000x, slot 197
	fork[tcoefEntry](199, 202), //000000001x, slot 198
	fork[tcoefEntry](200, 201), //0000000010x, slot 199
	tcRun(true, 1, 2),          //00000000100, slot 200
	tcRun(true, 0, 3),          //00000000101, slot 201
	fork[tcoefEntry](203, 204), //0000000011x, slot 202
	tcRun(false, 0, 11),        //00000000110, slot 203
	tcRun(false, 0, 10),        //00000000111, slot 204
	tcInvalid,                  //000000000x, slot 205
}
