package silk

import (
	"github.com/MoosicBox/gosilk/rangecoding"
)

// silkStereoDecodePred decodes the two stereo prediction weights of one
// frame, RFC 6716 section 4.2.7.1.
func silkStereoDecodePred(rd *rangecoding.Decoder, predQ13 *[2]int32) {
	var ix [2][3]int

	n := rd.DecodeICDF(silk_stereo_pred_joint_iCDF, 8)
	ix[0][2] = n / 5
	ix[1][2] = n - 5*ix[0][2]
	for i := 0; i < 2; i++ {
		ix[i][0] = rd.DecodeICDF(silk_uniform3_iCDF, 8)
		ix[i][1] = rd.DecodeICDF(silk_uniform5_iCDF, 8)
	}

	// Dequantize
	for i := 0; i < 2; i++ {
		ix[i][0] += 3 * ix[i][2]
		lowQ13 := int32(silk_stereo_pred_quant_Q13[ix[i][0]])
		stepQ13 := silkSMULWB(int32(silk_stereo_pred_quant_Q13[ix[i][0]+1])-lowQ13,
			int32(silkFixConst(0.5/stereoQuantSubSteps, 16)))
		predQ13[i] = silkSMLABB(lowQ13, stepQ13, int32(2*ix[i][1]+1))
	}

	// Subtract second from first predictor, which helps when applying them
	predQ13[0] -= predQ13[1]
}

// silkStereoDecodeMidOnly decodes the flag signalling that only the mid
// channel is coded in this frame.
func silkStereoDecodeMidOnly(rd *rangecoding.Decoder) int {
	return rd.DecodeICDF(silk_stereo_only_code_mid_iCDF, 8)
}

// silkStereoMSToLR converts a mid/side frame pair to left/right in place.
// Both buffers carry two samples of history before the frame proper, and the
// converted output lands at offset 1.
func silkStereoMSToLR(state *stereoDecState, x1 []int16, x2 []int16, predQ13 *[2]int32, fsKHz int, frameLength int) {
	// Buffering
	copy(x1, state.sMid[:])
	copy(x2, state.sSide[:])
	copy(state.sMid[:], x1[frameLength:frameLength+2])
	copy(state.sSide[:], x2[frameLength:frameLength+2])

	// Interpolate predictors and add prediction to side channel
	pred0Q13 := state.predPrevQ13[0]
	pred1Q13 := state.predPrevQ13[1]
	denomQ16 := silkDiv32_16(1<<16, int32(stereoInterpLenMs*fsKHz))
	delta0Q13 := silkRSHIFT_ROUND(silkSMULBB(predQ13[0]-state.predPrevQ13[0], denomQ16), 16)
	delta1Q13 := silkRSHIFT_ROUND(silkSMULBB(predQ13[1]-state.predPrevQ13[1], denomQ16), 16)
	for n := 0; n < stereoInterpLenMs*fsKHz; n++ {
		pred0Q13 += delta0Q13
		pred1Q13 += delta1Q13
		sum := silkLSHIFT(silkADD_LSHIFT32(int32(x1[n])+int32(x1[n+2]), int32(x1[n+1]), 1), 9)
		sum = silkSMLAWB(silkLSHIFT(int32(x2[n+1]), 8), sum, pred0Q13)
		sum = silkSMLAWB(sum, silkLSHIFT(int32(x1[n+1]), 11), pred1Q13)
		x2[n+1] = silkSAT16(silkRSHIFT_ROUND(sum, 8))
	}
	pred0Q13 = predQ13[0]
	pred1Q13 = predQ13[1]
	for n := stereoInterpLenMs * fsKHz; n < frameLength; n++ {
		sum := silkLSHIFT(silkADD_LSHIFT32(int32(x1[n])+int32(x1[n+2]), int32(x1[n+1]), 1), 9)
		sum = silkSMLAWB(silkLSHIFT(int32(x2[n+1]), 8), sum, pred0Q13)
		sum = silkSMLAWB(sum, silkLSHIFT(int32(x1[n+1]), 11), pred1Q13)
		x2[n+1] = silkSAT16(silkRSHIFT_ROUND(sum, 8))
	}
	state.predPrevQ13[0] = predQ13[0]
	state.predPrevQ13[1] = predQ13[1]

	// Convert to left/right signals
	for n := 0; n < frameLength; n++ {
		sum := int32(x1[n+1]) + int32(x2[n+1])
		diff := int32(x1[n+1]) - int32(x2[n+1])
		x1[n+1] = silkSAT16(sum)
		x2[n+1] = silkSAT16(diff)
	}
}
