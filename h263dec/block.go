/*
DESCRIPTION
  block.go provides parsing of the block layer: the fixed-length INTRADC
  code and the TCOEF run-length scan with its fixed-length escape form.

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

// parseBlock reads one block's coefficient data. Intra blocks start with
// INTRADC; when the block's coded pattern flag is set, the TCOEF scan then
// runs until a last-coefficient code. A scan claiming more than 64
// coefficients is corrupt.
func parseBlock(r *bits.Reader, running PictureOption, mbType MacroblockType, coded bool) (Block, error) {
	var blk Block
	err := r.Transaction(func(r *bits.Reader) error {
		if mbType.Intra() {
			v, err := r.ReadUint8()
			if err != nil {
				return exhausted(err)
			}
			dc, ok := intraDCFromBits(v)
			if !ok {
				return errors.Wrap(ErrInvalidBitstream, "forbidden INTRADC code")
			}
			blk.IntraDC, blk.HasDC = dc, true
		}
		if !coded {
			return nil
		}

		total := 0
		if blk.HasDC {
			total = 1
		}

		for {
			tc, err := readVLC(r, tcoefTable)
			if err != nil {
				return err
			}
			if tc.invalid {
				return errors.Wrap(ErrCorruptCoefficients, "forbidden TCOEF code")
			}

			var last bool
			if tc.escape {
				lastBit, err := r.ReadBool()
				if err != nil {
					return exhausted(err)
				}
				last = lastBit
				run, err := r.ReadBits(6)
				if err != nil {
					return exhausted(err)
				}
				level, err := r.ReadUint8()
				if err != nil {
					return exhausted(err)
				}
				if level == 0 {
					return errors.Wrap(ErrCorruptCoefficients, "zero escape level")
				}
				if level == 0x80 {
					if running.Contains(OptModifiedQuantization) {
						return errors.Wrap(ErrUnsupportedSyntax, "extended escape level")
					}
					return errors.Wrap(ErrCorruptCoefficients, "forbidden escape level")
				}
				blk.TCoef = append(blk.TCoef, TCoefficient{
					Run:   uint8(run),
					Level: int16(int8(level)),
				})
				total += int(run) + 1
			} else {
				sign, err := r.ReadBool()
				if err != nil {
					return exhausted(err)
				}
				level := int16(tc.level)
				if sign {
					level = -level
				}
				blk.TCoef = append(blk.TCoef, TCoefficient{
					Short: true,
					Run:   tc.run,
					Level: level,
				})
				last = tc.last
				total += int(tc.run) + 1
			}

			if total > 64 {
				return errors.Wrap(ErrCorruptCoefficients, "coefficient scan past block end")
			}
			if last {
				break
			}
		}
		return nil
	})
	return blk, err
}
