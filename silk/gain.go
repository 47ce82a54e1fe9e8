package silk

// Gain quantization constants, RFC 6716 Section 4.2.7.4. Gains live on a
// log scale between minQGainDb and maxQGainDb with 64 levels.
const (
	qgainRangeQ7   = ((maxQGainDb - minQGainDb) * 128) / 6
	gainOffsetQ7   = (minQGainDb*128)/6 + 16*128
	invScaleQ16Val = (1 << 16) * qgainRangeQ7 / (nLevelsQGain - 1)
)

// silkGainsDequant turns the decoded gain indices of one frame into linear
// Q16 gains. The first index is absolute (or delta coded against the last
// subframe of the previous frame when conditional), the rest are deltas
// with a doubled step size above a threshold.
func silkGainsDequant(gainsQ16 *[maxNbSubfr]int32, indices *[maxNbSubfr]int8, prevIndex *int8, conditional bool, nbSubfr int) {
	prev := int(*prevIndex)
	for k := 0; k < nbSubfr; k++ {
		if k == 0 && !conditional {
			// The gain index may drop at most 16 steps below the
			// previous frame's last index.
			base := prev - 16
			if base < int(indices[k]) {
				base = int(indices[k])
			}
			prev = base
		} else {
			indTmp := int(indices[k]) + minDeltaGainQuant
			doubleStep := 2*maxDeltaGainQuant - nLevelsQGain + prev
			if indTmp > doubleStep {
				prev += (indTmp << 1) - doubleStep
			} else {
				prev += indTmp
			}
		}
		prev = silkLimitInt(prev, 0, nLevelsQGain-1)
		logGainQ7 := silkSMULWB(int32(invScaleQ16Val), int32(prev)) + int32(gainOffsetQ7)
		if logGainQ7 > 3967 {
			logGainQ7 = 3967
		}
		gainsQ16[k] = silkLog2Lin(logGainQ7)
	}
	*prevIndex = int8(prev)
}
