package silk

// Concealment tuning constants, silk/PLC.h.
const (
	vPitchGainStartMinQ14   = 11469 // 0.7 in Q14
	vPitchGainStartMaxQ14   = 15565 // 0.95 in Q14
	maxPitchLagMs           = 18
	randBufSize             = 128
	randBufMask             = randBufSize - 1
	log2InvLpcGainHighThres = 3 // 2^3 = 8 dB LPC gain
	log2InvLpcGainLowThres  = 8 // 2^8 = 24 dB LPC gain
	pitchDriftFacQ16        = 655
	nbAtt                   = 2
)

// Attenuation per consecutive lost frame, saturating after the second.
var (
	harmAttQ15         = [nbAtt]int16{32440, 31130} // 0.99, 0.95
	randAttenuateVQ15  = [nbAtt]int16{31130, 26214} // 0.95, 0.8
	randAttenuateUVQ15 = [nbAtt]int16{32440, 29491} // 0.99, 0.9
)

// silkPLC either conceals a lost frame by extrapolating from the previous
// one, or records the parameters of a good frame for future concealment.
func silkPLC(st *decoderState, ctrl *decoderControl, frame []int16, lost bool) {
	if st.fsKHz != st.sPLC.fsKHz {
		silkPLCReset(st)
		st.sPLC.fsKHz = st.fsKHz
	}

	if lost {
		silkPLCConceal(st, ctrl, frame)
		st.lossCnt++
	} else {
		silkPLCUpdate(st, ctrl)
	}
}

func silkPLCReset(st *decoderState) {
	st.sPLC.pitchLQ8 = silkLSHIFT(int32(st.frameLength), 8-1)
	st.sPLC.prevGainQ16[0] = int32(silkFixConst(1, 16))
	st.sPLC.prevGainQ16[1] = int32(silkFixConst(1, 16))
	st.sPLC.subfrLength = 20
	st.sPLC.nbSubfr = 2
}

// silkPLCUpdate saves the parameters a future concealed frame would need,
// reducing the LTP filter to a single tap at the strongest subframe.
func silkPLCUpdate(st *decoderState, ctrl *decoderControl) {
	psPLC := &st.sPLC

	st.prevSignalType = int(st.indices.signalType)
	ltpGainQ14 := int32(0)
	if st.indices.signalType == typeVoiced {
		// Find the parameters for the last subframe which contains a pitch pulse
		for j := 0; j*st.subfrLength < ctrl.pitchL[st.nbSubfr-1]; j++ {
			if j == st.nbSubfr {
				break
			}
			tempGainQ14 := int32(0)
			for i := 0; i < ltpOrder; i++ {
				tempGainQ14 += int32(ctrl.LTPCoefQ14[(st.nbSubfr-1-j)*ltpOrder+i])
			}
			if tempGainQ14 > ltpGainQ14 {
				ltpGainQ14 = tempGainQ14
				copy(psPLC.ltpCoefQ14[:], ctrl.LTPCoefQ14[(st.nbSubfr-1-j)*ltpOrder:(st.nbSubfr-j)*ltpOrder])
				psPLC.pitchLQ8 = silkLSHIFT(int32(ctrl.pitchL[st.nbSubfr-1-j]), 8)
			}
		}

		for i := range psPLC.ltpCoefQ14 {
			psPLC.ltpCoefQ14[i] = 0
		}
		psPLC.ltpCoefQ14[ltpOrder/2] = int16(ltpGainQ14)

		// Limit LT coefs
		if ltpGainQ14 < vPitchGainStartMinQ14 {
			scaleQ10 := silkDiv32(silkLSHIFT(vPitchGainStartMinQ14, 10), silkMax32(ltpGainQ14, 1))
			for i := 0; i < ltpOrder; i++ {
				psPLC.ltpCoefQ14[i] = int16(silkRSHIFT(silkSMULBB(int32(psPLC.ltpCoefQ14[i]), scaleQ10), 10))
			}
		} else if ltpGainQ14 > vPitchGainStartMaxQ14 {
			scaleQ14 := silkDiv32(silkLSHIFT(vPitchGainStartMaxQ14, 14), ltpGainQ14)
			for i := 0; i < ltpOrder; i++ {
				psPLC.ltpCoefQ14[i] = int16(silkRSHIFT(silkSMULBB(int32(psPLC.ltpCoefQ14[i]), scaleQ14), 14))
			}
		}
	} else {
		psPLC.pitchLQ8 = silkLSHIFT(silkSMULBB(int32(st.fsKHz), maxPitchLagMs), 8)
		for i := range psPLC.ltpCoefQ14 {
			psPLC.ltpCoefQ14[i] = 0
		}
	}

	// Save LPC coefficients
	copy(psPLC.prevLPCQ12[:st.lpcOrder], ctrl.PredCoefQ12[1][:st.lpcOrder])
	psPLC.prevLTPScaleQ14 = int16(ctrl.LTPScaleQ14)

	// Save last two gains
	psPLC.prevGainQ16[0] = ctrl.GainsQ16[st.nbSubfr-2]
	psPLC.prevGainQ16[1] = ctrl.GainsQ16[st.nbSubfr-1]

	psPLC.subfrLength = st.subfrLength
	psPLC.nbSubfr = st.nbSubfr
}

// silkPLCEnergy measures the energy of the last two subframes of the previous
// excitation, scaled back to the signal domain.
func silkPLCEnergy(excQ14 []int32, prevGainQ10 *[2]int32, subfrLength, nbSubfr int) (energy1 int32, shift1 int, energy2 int32, shift2 int) {
	var excBuf [2 * maxSubFrameLength]int16

	for k := 0; k < 2; k++ {
		for i := 0; i < subfrLength; i++ {
			excBuf[k*subfrLength+i] = silkSAT16(silkRSHIFT(
				silkSMULWW(excQ14[i+(k+nbSubfr-2)*subfrLength], prevGainQ10[k]), 8))
		}
	}

	// Find the subframe with lowest energy of the last two and use that as random noise generator
	energy1, shift1 = silkSumSqrShift(excBuf[:subfrLength])
	energy2, shift2 = silkSumSqrShift(excBuf[subfrLength : 2*subfrLength])
	return
}

// silkPLCConceal extrapolates one frame from the saved parameters, mixing an
// attenuated pitch repetition with scaled random noise drawn from the
// previous excitation.
func silkPLCConceal(st *decoderState, ctrl *decoderControl, frame []int16) {
	var aQ12 [maxLPCOrder]int16
	var prevGainQ10 [2]int32
	psPLC := &st.sPLC

	// The LTP state buffer is free here since no frame was decoded.
	sLTPQ14 := st.scratchSLTPQ15[:st.ltpMemLength+st.frameLength]
	sLTP := st.scratchSLTP[:st.ltpMemLength]

	prevGainQ10[0] = silkRSHIFT(psPLC.prevGainQ16[0], 6)
	prevGainQ10[1] = silkRSHIFT(psPLC.prevGainQ16[1], 6)

	if st.firstFrameAfterReset {
		for i := range psPLC.prevLPCQ12 {
			psPLC.prevLPCQ12[i] = 0
		}
	}

	energy1, shift1, energy2, shift2 := silkPLCEnergy(st.excQ14[:], &prevGainQ10, st.subfrLength, st.nbSubfr)

	var randPtr []int32
	if silkRSHIFT(energy1, shift2) < silkRSHIFT(energy2, shift1) {
		// First sub-frame has lowest energy
		randPtr = st.excQ14[silkMaxInt(0, (psPLC.nbSubfr-1)*psPLC.subfrLength-randBufSize):]
	} else {
		// Second sub-frame has lowest energy
		randPtr = st.excQ14[silkMaxInt(0, psPLC.nbSubfr*psPLC.subfrLength-randBufSize):]
	}

	// Set up gain for the random noise component
	bQ14 := psPLC.ltpCoefQ14[:]
	randScaleQ14 := psPLC.randScaleQ14

	// Set up attenuation gains
	harmGainQ15 := int32(harmAttQ15[silkMinInt(nbAtt-1, st.lossCnt)])
	var randGainQ15 int32
	if st.prevSignalType == typeVoiced {
		randGainQ15 = int32(randAttenuateVQ15[silkMinInt(nbAtt-1, st.lossCnt)])
	} else {
		randGainQ15 = int32(randAttenuateUVQ15[silkMinInt(nbAtt-1, st.lossCnt)])
	}

	// LPC concealment. Apply bandwidth expansion to previous LPC.
	silkBwExpander(psPLC.prevLPCQ12[:st.lpcOrder], int32(silkFixConst(0.99, 16)))
	copy(aQ12[:st.lpcOrder], psPLC.prevLPCQ12[:st.lpcOrder])

	// First lost frame
	if st.lossCnt == 0 {
		randScaleQ14 = 1 << 14

		if st.prevSignalType == typeVoiced {
			// Reduce random noise gain for voiced frames
			for i := 0; i < ltpOrder; i++ {
				randScaleQ14 -= bQ14[i]
			}
			if randScaleQ14 < 3277 {
				randScaleQ14 = 3277 // 0.2
			}
			randScaleQ14 = int16(silkRSHIFT(silkSMULBB(int32(randScaleQ14), int32(psPLC.prevLTPScaleQ14)), 14))
		} else {
			// Reduce random noise for unvoiced frames with high LPC gain
			invGainQ30 := silkLPCInversePredGain(psPLC.prevLPCQ12[:st.lpcOrder], st.lpcOrder)

			downScaleQ30 := silkMin32(silkRSHIFT(int32(1)<<30, log2InvLpcGainHighThres), invGainQ30)
			downScaleQ30 = silkMax32(silkRSHIFT(int32(1)<<30, log2InvLpcGainLowThres), downScaleQ30)
			downScaleQ30 = silkLSHIFT(downScaleQ30, log2InvLpcGainHighThres)

			randGainQ15 = silkRSHIFT(silkSMULWB(downScaleQ30, randGainQ15), 14)
		}
	}

	randSeed := psPLC.randSeed
	lag := int(silkRSHIFT_ROUND(psPLC.pitchLQ8, 8))
	sLTPBufIdx := st.ltpMemLength

	// Rewhiten LTP state
	idx := st.ltpMemLength - lag - st.lpcOrder - ltpOrder/2
	silkLPCAnalysisFilter(sLTP[idx:], st.outBuf[idx:], aQ12[:], st.ltpMemLength-idx, st.lpcOrder)

	// Scale LTP state
	invGainQ30 := silkInverse32VarQ(psPLC.prevGainQ16[1], 46)
	invGainQ30 = silkMin32(invGainQ30, silkInt32Max>>1)
	for i := idx + st.lpcOrder; i < st.ltpMemLength; i++ {
		sLTPQ14[i] = silkSMULWB(invGainQ30, int32(sLTP[i]))
	}

	// LTP synthesis filtering
	for k := 0; k < st.nbSubfr; k++ {
		predLagPtr := sLTPBufIdx - lag + ltpOrder/2
		for i := 0; i < st.subfrLength; i++ {
			ltpPredQ12 := int32(2)
			ltpPredQ12 = silkSMLAWB(ltpPredQ12, sLTPQ14[predLagPtr+0], int32(bQ14[0]))
			ltpPredQ12 = silkSMLAWB(ltpPredQ12, sLTPQ14[predLagPtr-1], int32(bQ14[1]))
			ltpPredQ12 = silkSMLAWB(ltpPredQ12, sLTPQ14[predLagPtr-2], int32(bQ14[2]))
			ltpPredQ12 = silkSMLAWB(ltpPredQ12, sLTPQ14[predLagPtr-3], int32(bQ14[3]))
			ltpPredQ12 = silkSMLAWB(ltpPredQ12, sLTPQ14[predLagPtr-4], int32(bQ14[4]))
			predLagPtr++

			// Generate LPC excitation
			randSeed = silkRand(randSeed)
			j := int(silkRSHIFT(randSeed, 25)) & randBufMask
			sLTPQ14[sLTPBufIdx] = silkLSHIFT(silkSMLAWB(ltpPredQ12, randPtr[j], int32(randScaleQ14)), 2)
			sLTPBufIdx++
		}

		// Gradually reduce LTP gain
		for j := 0; j < ltpOrder; j++ {
			bQ14[j] = int16(silkRSHIFT(silkSMULBB(harmGainQ15, int32(bQ14[j])), 15))
		}
		if st.indices.signalType != typeNoVoiceActivity {
			// Gradually reduce excitation gain
			randScaleQ14 = int16(silkRSHIFT(silkSMULBB(int32(randScaleQ14), randGainQ15), 15))
		}

		// Slowly increase pitch lag
		psPLC.pitchLQ8 = silkSMLAWB(psPLC.pitchLQ8, psPLC.pitchLQ8, pitchDriftFacQ16)
		psPLC.pitchLQ8 = silkMin32(psPLC.pitchLQ8, silkLSHIFT(silkSMULBB(maxPitchLagMs, int32(st.fsKHz)), 8))
		lag = int(silkRSHIFT_ROUND(psPLC.pitchLQ8, 8))
	}

	// LPC synthesis filtering
	sLPCQ14Ptr := sLTPQ14[st.ltpMemLength-maxLPCOrder:]
	copy(sLPCQ14Ptr[:maxLPCOrder], st.sLPCQ14Buf[:])

	for i := 0; i < st.frameLength; i++ {
		lpcPredQ10 := int32(st.lpcOrder >> 1)
		for j := 0; j < st.lpcOrder; j++ {
			lpcPredQ10 = silkSMLAWB(lpcPredQ10, sLPCQ14Ptr[maxLPCOrder+i-j-1], int32(aQ12[j]))
		}

		// Add prediction to LPC excitation
		sLPCQ14Ptr[maxLPCOrder+i] = silkAddSat32(sLPCQ14Ptr[maxLPCOrder+i], silkLShiftSAT32(lpcPredQ10, 4))

		// Scale with gain
		frame[i] = silkSAT16(silkRSHIFT_ROUND(silkSMULWW(sLPCQ14Ptr[maxLPCOrder+i], prevGainQ10[1]), 8))
	}

	// Save LPC state
	copy(st.sLPCQ14Buf[:], sLPCQ14Ptr[st.frameLength:st.frameLength+maxLPCOrder])

	psPLC.randSeed = randSeed
	psPLC.randScaleQ14 = randScaleQ14

	for i := 0; i < maxNbSubfr; i++ {
		ctrl.pitchL[i] = lag
	}
}

// silkPLCGlueFrames smooths the transition from a concealed frame to the next
// good frame, ramping the gain when the good frame comes in louder.
func silkPLCGlueFrames(st *decoderState, frame []int16, length int) {
	psPLC := &st.sPLC

	if st.lossCnt != 0 {
		psPLC.concEnergy, psPLC.concEnergyShift = silkSumSqrShift(frame[:length])
		psPLC.lastFrameLost = true
		return
	}

	if psPLC.lastFrameLost {
		// Calculate energy in concealed residual
		energy, energyShift := silkSumSqrShift(frame[:length])

		// Normalize energies
		if energyShift > psPLC.concEnergyShift {
			psPLC.concEnergy = silkRSHIFT(psPLC.concEnergy, energyShift-psPLC.concEnergyShift)
		} else if energyShift < psPLC.concEnergyShift {
			energy = silkRSHIFT(energy, psPLC.concEnergyShift-energyShift)
		}

		// Fade in the energy difference
		if energy > psPLC.concEnergy {
			lz := silkCLZ32(psPLC.concEnergy) - 1
			psPLC.concEnergy = silkLSHIFT(psPLC.concEnergy, int(lz))
			energy = silkRSHIFT(energy, silkMaxInt(24-int(lz), 0))

			fracQ24 := silkDiv32(psPLC.concEnergy, silkMax32(energy, 1))

			gainQ16 := silkLSHIFT(silkSQRTApprox(fracQ24), 4)
			slopeQ16 := silkDiv32_16(int32(1<<16)-gainQ16, int32(length))
			// Make slope 4x steeper to avoid missing onsets after DTX
			slopeQ16 = silkLSHIFT(slopeQ16, 2)

			for i := 0; i < length; i++ {
				frame[i] = int16(silkSMULWB(gainQ16, int32(frame[i])))
				gainQ16 += slopeQ16
				if gainQ16 > 1<<16 {
					break
				}
			}
		}
	}
	psPLC.lastFrameLost = false
}
