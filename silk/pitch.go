package silk

// silkDecodePitch expands a lag index and contour index into per-subframe
// pitch lags, RFC 6716 Section 4.2.7.6.1. The contour codebook depends on
// sample rate and frame size; every lag is clamped to the valid range.
func silkDecodePitch(lagIndex int16, contourIndex int8, pitchL []int, fsKHz int, nbSubfr int) {
	var lagCB [][]int8
	var cbkSize int
	if fsKHz == 8 {
		if nbSubfr == maxNbSubfr {
			lagCB = silk_CB_lags_stage2
			cbkSize = peNbCbksStage2Ext
		} else {
			lagCB = silk_CB_lags_stage2_10_ms
			cbkSize = peNbCbksStage2_10ms
		}
	} else {
		if nbSubfr == maxNbSubfr {
			lagCB = silk_CB_lags_stage3
			cbkSize = peNbCbksStage3Max
		} else {
			lagCB = silk_CB_lags_stage3_10_ms
			cbkSize = peNbCbksStage3_10ms
		}
	}
	minLag := peMinLagMs * fsKHz
	maxLag := peMaxLagMs * fsKHz
	lag := minLag + int(lagIndex)
	idx := silkLimitInt(int(contourIndex), 0, cbkSize-1)
	for k := 0; k < nbSubfr; k++ {
		pitchL[k] = lag + int(lagCB[k][idx])
		pitchL[k] = silkLimitInt(pitchL[k], minLag, maxLag)
	}
}
