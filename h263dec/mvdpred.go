/*
DESCRIPTION
  mvdpred.go provides motion vector prediction and reconstruction: the
  median-style three-candidate predictor and range handling for decoded
  differentials.

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

// predictCandidate produces a candidate motion vector predictor from the
// vectors of previously decoded macroblocks of the picture, in raster
// order. The candidates are the macroblock to the left, above, and above
// right, with zero or nearest-neighbour fallbacks at edges; the result is
// their component-wise average.
func predictCandidate(predictors []MotionVector, mbPerLine int) MotionVector {
	current := len(predictors)
	col := current % mbPerLine

	var mv1 MotionVector
	if col != 0 {
		mv1 = predictors[current-1]
	}

	line := current / mbPerLine
	mv2 := mv1
	if line != 0 {
		if i := (line-1)*mbPerLine + col; i < len(predictors) {
			mv2 = predictors[i]
		}
	}

	var mv3 MotionVector
	switch {
	case col == mbPerLine-1:
		// Zero candidate off the right edge.
	case line == 0:
		mv3 = mv1
	default:
		mv3 = mv1
		if i := (line-1)*mbPerLine + col + 1; i < len(predictors) {
			mv3 = predictors[i]
		}
	}

	sum := mv1.Add(mv2).Add(mv3)
	return MotionVector{sum.X / 3, sum.Y / 3}
}

// halfpelDecode reconstructs one vector component from its predictor and
// differential. Within the standard range the differential wraps so that
// the result lands in the legal window; unrestricted motion vectors widen
// the window around an out-of-range predictor, and an unlimited range
// (Sorenson) applies no constraint at all.
func halfpelDecode(h *PictureHeader, running PictureOption, predictor, mvd HalfPel) HalfPel {
	rng := standardRange
	out := mvd + predictor

	if running.Contains(OptUnrestrictedMotionVectors) && !h.HasPlusType {
		if predictor.WithinRange(standardRange) {
			return out
		}
		rng = extendedRange
	} else if h.MotionVectorRange == RangeUnlimited {
		// Sorenson sets the unlimited range without the UMV option.
		return out
	}

	if !out.WithinRange(rng) {
		out = mvd.Invert() + predictor
	}
	return out
}

// mvDecode reconstructs a full motion vector from its predictor and
// decoded differential.
func mvDecode(h *PictureHeader, running PictureOption, predictor, mvd MotionVector) MotionVector {
	return MotionVector{
		X: halfpelDecode(h, running, predictor.X, mvd.X),
		Y: halfpelDecode(h, running, predictor.Y, mvd.Y),
	}
}
