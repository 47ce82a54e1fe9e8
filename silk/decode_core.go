package silk

// silkDecodeCore runs the long-term and short-term synthesis filters over the
// decoded excitation, producing one frame of output at the internal rate.
func silkDecodeCore(st *decoderState, ctrl *decoderControl, out []int16, pulses []int16) {
	offsetQ10 := silk_Quantization_Offsets_Q10[int(st.indices.signalType)>>1][int(st.indices.quantOffsetType)]
	interpFlag := st.indices.NLSFInterpCoefQ2 < 4

	// Decode excitation. The pseudorandom seed scrambles the sign of every
	// sample and is advanced by the pulse magnitudes.
	randSeed := int32(st.indices.Seed)
	for i := 0; i < st.frameLength; i++ {
		randSeed = silkRand(randSeed)
		exc := int32(pulses[i]) << 14
		if exc > 0 {
			exc -= quantLevelAdjustQ10 << 4
		} else if exc < 0 {
			exc += quantLevelAdjustQ10 << 4
		}
		exc += int32(offsetQ10) << 4
		if randSeed < 0 {
			exc = -exc
		}
		st.excQ14[i] = exc
		randSeed += int32(pulses[i])
	}

	sLPC := st.scratchSLPC[:st.subfrLength+maxLPCOrder]
	copy(sLPC, st.sLPCQ14Buf[:])
	pexc := st.excQ14[:]
	pxq := out

	sLTP := st.scratchSLTP[:st.ltpMemLength]
	sLTP_Q15 := st.scratchSLTPQ15[:st.ltpMemLength+st.frameLength]
	sLTPBufIdx := st.ltpMemLength

	for k := 0; k < st.nbSubfr; k++ {
		A_Q12 := ctrl.PredCoefQ12[k>>1][:]
		B_Q14 := ctrl.LTPCoefQ14[k*ltpOrder : (k+1)*ltpOrder]
		signalType := int(st.indices.signalType)

		gainQ10 := ctrl.GainsQ16[k] >> 6
		invGainQ31 := silkInverse32VarQ(ctrl.GainsQ16[k], 47)
		gainAdjQ16 := int32(1 << 16)

		if ctrl.GainsQ16[k] != st.prevGainQ16 {
			gainAdjQ16 = silkDiv32VarQ(st.prevGainQ16, ctrl.GainsQ16[k], 16)

			// Scale short-term state
			for i := 0; i < maxLPCOrder; i++ {
				sLPC[i] = silkSMULWW(gainAdjQ16, sLPC[i])
			}
		}
		st.prevGainQ16 = ctrl.GainsQ16[k]

		// Avoid abrupt transition from voiced PLC to unvoiced normal decoding
		if st.lossCnt != 0 && st.prevSignalType == typeVoiced &&
			signalType != typeVoiced && k < maxNbSubfr/2 {
			for i := 0; i < ltpOrder; i++ {
				B_Q14[i] = 0
			}
			B_Q14[ltpOrder/2] = int16(silkFixConst(0.25, 14))
			signalType = typeVoiced
			ctrl.pitchL[k] = st.lagPrev
		}

		if signalType == typeVoiced {
			lag := ctrl.pitchL[k]

			if k == 0 || (k == 2 && interpFlag) {
				// Rewhiten with new A coefs
				startIdx := st.ltpMemLength - lag - st.lpcOrder - ltpOrder/2
				if startIdx < 0 {
					startIdx = 0
				}
				if k == 2 {
					copy(st.outBuf[st.ltpMemLength:], out[:2*st.subfrLength])
				}
				silkLPCAnalysisFilter(sLTP[startIdx:], st.outBuf[startIdx+k*st.subfrLength:],
					A_Q12, st.ltpMemLength-startIdx, st.lpcOrder)

				// After rewhitening the LTP state is unscaled
				if k == 0 {
					// Do LTP downscaling to reduce inter-packet dependency
					invGainQ31 = silkLSHIFT(silkSMULWB(invGainQ31, ctrl.LTPScaleQ14), 2)
				}
				for i := 0; i < lag+ltpOrder/2; i++ {
					sLTP_Q15[sLTPBufIdx-i-1] = silkSMULWB(invGainQ31, int32(sLTP[st.ltpMemLength-i-1]))
				}
			} else if gainAdjQ16 != int32(1<<16) {
				// Update LTP state when gain changes
				for i := 0; i < lag+ltpOrder/2; i++ {
					sLTP_Q15[sLTPBufIdx-i-1] = silkSMULWW(gainAdjQ16, sLTP_Q15[sLTPBufIdx-i-1])
				}
			}
		}

		// Long-term prediction
		var presQ14 []int32
		if signalType == typeVoiced {
			lag := ctrl.pitchL[k]
			predLagPtr := sLTPBufIdx - lag + ltpOrder/2
			presQ14 = st.scratchResQ14[:st.subfrLength]
			for i := 0; i < st.subfrLength; i++ {
				// Unrolled loop over the 5 LTP taps
				ltpPredQ13 := int32(2)
				ltpPredQ13 = silkSMLAWB(ltpPredQ13, sLTP_Q15[predLagPtr+0], int32(B_Q14[0]))
				ltpPredQ13 = silkSMLAWB(ltpPredQ13, sLTP_Q15[predLagPtr-1], int32(B_Q14[1]))
				ltpPredQ13 = silkSMLAWB(ltpPredQ13, sLTP_Q15[predLagPtr-2], int32(B_Q14[2]))
				ltpPredQ13 = silkSMLAWB(ltpPredQ13, sLTP_Q15[predLagPtr-3], int32(B_Q14[3]))
				ltpPredQ13 = silkSMLAWB(ltpPredQ13, sLTP_Q15[predLagPtr-4], int32(B_Q14[4]))
				predLagPtr++

				// Generate LPC excitation
				presQ14[i] = silkADD_LSHIFT32(pexc[i], ltpPredQ13, 1)

				// Update states
				sLTP_Q15[sLTPBufIdx] = silkLSHIFT(presQ14[i], 1)
				sLTPBufIdx++
			}
		} else {
			presQ14 = pexc[:st.subfrLength]
		}

		for i := 0; i < st.subfrLength; i++ {
			// Short-term prediction
			lpcPredQ10 := int32(st.lpcOrder >> 1)
			for j := 0; j < st.lpcOrder; j++ {
				lpcPredQ10 = silkSMLAWB(lpcPredQ10, sLPC[maxLPCOrder+i-j-1], int32(A_Q12[j]))
			}

			// Add prediction to LPC excitation
			sLPC[maxLPCOrder+i] = silkAddSat32(presQ14[i], silkLShiftSAT32(lpcPredQ10, 4))

			// Scale with gain
			pxq[i] = silkSAT16(silkRSHIFT_ROUND(silkSMULWW(sLPC[maxLPCOrder+i], gainQ10), 8))
		}

		// Update LPC filter state
		copy(sLPC, sLPC[st.subfrLength:st.subfrLength+maxLPCOrder])
		pexc = pexc[st.subfrLength:]
		pxq = pxq[st.subfrLength:]
	}

	// Save LPC state
	copy(st.sLPCQ14Buf[:], sLPC[:maxLPCOrder])
}

// silkUpdateOutBuf shifts the synthesis history left by one frame and appends
// the new frame, keeping ltpMemLength samples for rewhitening and concealment.
func silkUpdateOutBuf(st *decoderState, frame []int16) {
	mvLen := st.ltpMemLength - st.frameLength
	copy(st.outBuf[:mvLen], st.outBuf[st.frameLength:st.ltpMemLength])
	copy(st.outBuf[mvLen:mvLen+st.frameLength], frame)
}
