package silk

// Comfort noise smoothing parameters, silk/define.h.
const (
	cngBufMaskMax           = 255
	cngGainSmthQ16          = 4634  // 0.25^(1/4)
	cngGainSmthThresholdQ16 = 46396 // -3 dB
	cngNLSFSmthQ16          = 16348 // 0.25
)

func silkCNGReset(st *decoderState) {
	nlsfStepQ15 := silkDiv32_16(32767, int32(st.lpcOrder+1))
	nlsfAccQ15 := int32(0)
	for i := 0; i < st.lpcOrder; i++ {
		nlsfAccQ15 += nlsfStepQ15
		st.sCNG.smthNLSFQ15[i] = int16(nlsfAccQ15)
	}
	st.sCNG.smthGainQ16 = 0
	st.sCNG.randSeed = 3176576
}

// silkCNGExc fills exc with samples drawn at random offsets from the stored
// excitation buffer.
func silkCNGExc(exc []int32, excBufQ14 []int32, length int, randSeed *int32) {
	excMask := cngBufMaskMax
	for excMask > length {
		excMask = excMask >> 1
	}

	seed := *randSeed
	for i := 0; i < length; i++ {
		seed = silkRand(seed)
		idx := int(silkRSHIFT(seed, 24)) & excMask
		exc[i] = excBufQ14[idx]
	}
	*randSeed = seed
}

// silkCNG estimates the comfort noise parameters during inactive frames and
// adds comfort noise to concealed frames.
func silkCNG(st *decoderState, ctrl *decoderControl, frame []int16, length int) {
	psCNG := &st.sCNG

	if st.fsKHz != psCNG.fsKHz {
		silkCNGReset(st)
		psCNG.fsKHz = st.fsKHz
	}

	if st.lossCnt == 0 && st.prevSignalType == typeNoVoiceActivity {
		// Smoothing of LSF's
		for i := 0; i < st.lpcOrder; i++ {
			psCNG.smthNLSFQ15[i] += int16(silkSMULWB(int32(st.prevNLSFQ15[i])-int32(psCNG.smthNLSFQ15[i]), cngNLSFSmthQ16))
		}

		// Find the subframe with the highest gain
		maxGainQ16 := int32(0)
		subfr := 0
		for i := 0; i < st.nbSubfr; i++ {
			if ctrl.GainsQ16[i] > maxGainQ16 {
				maxGainQ16 = ctrl.GainsQ16[i]
				subfr = i
			}
		}

		// Update CNG excitation buffer with excitation from this subframe
		copy(psCNG.excBufQ14[st.subfrLength:st.nbSubfr*st.subfrLength],
			psCNG.excBufQ14[:(st.nbSubfr-1)*st.subfrLength])
		copy(psCNG.excBufQ14[:st.subfrLength],
			st.excQ14[subfr*st.subfrLength:(subfr+1)*st.subfrLength])

		// Smooth gains
		for i := 0; i < st.nbSubfr; i++ {
			psCNG.smthGainQ16 += silkSMULWB(ctrl.GainsQ16[i]-psCNG.smthGainQ16, cngGainSmthQ16)

			// If the smoothed gain is 3 dB above this subframe's gain, the
			// comfort noise gain is too high, so drop it to the subframe's
			// gain.
			if silkSMULWW(psCNG.smthGainQ16, cngGainSmthThresholdQ16) > ctrl.GainsQ16[i] {
				psCNG.smthGainQ16 = ctrl.GainsQ16[i]
			}
		}
	}

	// Add CNG when packet is lost or during DTX
	if st.lossCnt != 0 {
		var aQ12 [maxLPCOrder]int16
		sig := st.scratchCNGSig[:length+maxLPCOrder]

		// Generate CNG excitation
		gainQ16 := silkSMULWW(int32(st.sPLC.randScaleQ14), st.sPLC.prevGainQ16[1])
		if gainQ16 >= 1<<21 || psCNG.smthGainQ16 > 1<<23 {
			gainQ16 = silkSMULTT(gainQ16, gainQ16)
			gainQ16 = silkSUB_LSHIFT32(silkSMULTT(psCNG.smthGainQ16, psCNG.smthGainQ16), gainQ16, 5)
			gainQ16 = silkLSHIFT(silkSQRTApprox(gainQ16), 16)
		} else {
			gainQ16 = silkSMULWW(gainQ16, gainQ16)
			gainQ16 = silkSUB_LSHIFT32(silkSMULWW(psCNG.smthGainQ16, psCNG.smthGainQ16), gainQ16, 5)
			gainQ16 = silkLSHIFT(silkSQRTApprox(gainQ16), 8)
		}
		gainQ10 := silkRSHIFT(gainQ16, 6)

		silkCNGExc(sig[maxLPCOrder:], psCNG.excBufQ14[:], length, &psCNG.randSeed)

		// Convert CNG NLSF to filter representation
		silkNLSF2A(aQ12[:st.lpcOrder], psCNG.smthNLSFQ15[:st.lpcOrder], st.lpcOrder)

		// Generate CNG signal by synthesis filtering
		copy(sig[:maxLPCOrder], psCNG.synthState[:])
		for i := 0; i < length; i++ {
			lpcPredQ10 := int32(st.lpcOrder >> 1)
			for j := 0; j < st.lpcOrder; j++ {
				lpcPredQ10 = silkSMLAWB(lpcPredQ10, sig[maxLPCOrder+i-j-1], int32(aQ12[j]))
			}

			// Update states
			sig[maxLPCOrder+i] = silkAddSat32(sig[maxLPCOrder+i], silkLShiftSAT32(lpcPredQ10, 4))

			// Scale with gain and add to input signal
			frame[i] = silkAddSat16(frame[i], silkSAT16(silkRSHIFT_ROUND(silkSMULWW(sig[maxLPCOrder+i], gainQ10), 8)))
		}
		copy(psCNG.synthState[:], sig[length:length+maxLPCOrder])
	} else {
		for i := 0; i < st.lpcOrder; i++ {
			psCNG.synthState[i] = 0
		}
	}
}
