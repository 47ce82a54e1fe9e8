package silk

// silkDecodeParameters converts the decoded indices of one frame into the
// filter coefficients and gains used by silkDecodeCore.
func silkDecodeParameters(st *decoderState, ctrl *decoderControl, condCoding int) {
	var nlsfQ15 [maxLPCOrder]int16

	// Dequant Gains
	silkGainsDequant(&ctrl.GainsQ16, &st.indices.GainsIndices, &st.lastGainIndex,
		condCoding == codeConditionally, st.nbSubfr)

	// Decode NLSFs
	silkNLSFDecode(nlsfQ15[:st.lpcOrder], st.indices.NLSFIndices[:], st.nlsfCB)

	// Convert NLSF parameters to AR prediction filter coefficients
	silkNLSF2A(ctrl.PredCoefQ12[1][:st.lpcOrder], nlsfQ15[:st.lpcOrder], st.lpcOrder)

	// If just reset, e.g., because internal Fs changed, do not allow
	// interpolation. Interpolation is then required to decode the LPC
	// coefficients used in the first half of the frame.
	if st.firstFrameAfterReset {
		st.indices.NLSFInterpCoefQ2 = 4
	}

	if st.indices.NLSFInterpCoefQ2 < 4 {
		// Calculation of the interpolated NLSF0 vector from the interpolation
		// factor, the previous NLSF1, and the current NLSF1.
		var nlsf0Q15 [maxLPCOrder]int16
		for i := 0; i < st.lpcOrder; i++ {
			nlsf0Q15[i] = int16(int32(st.prevNLSFQ15[i]) + silkRSHIFT(silkMUL(int32(st.indices.NLSFInterpCoefQ2),
				int32(nlsfQ15[i])-int32(st.prevNLSFQ15[i])), 2))
		}

		// Convert NLSF parameters to AR prediction filter coefficients
		silkNLSF2A(ctrl.PredCoefQ12[0][:st.lpcOrder], nlsf0Q15[:st.lpcOrder], st.lpcOrder)
	} else {
		// Copy LPC coefficients for first half from second half
		copy(ctrl.PredCoefQ12[0][:st.lpcOrder], ctrl.PredCoefQ12[1][:st.lpcOrder])
	}

	copy(st.prevNLSFQ15[:st.lpcOrder], nlsfQ15[:st.lpcOrder])

	// After a packet loss do BWE of LPC coefs
	if st.lossCnt != 0 {
		silkBwExpander(ctrl.PredCoefQ12[0][:st.lpcOrder], bweAfterLossQ16)
		silkBwExpander(ctrl.PredCoefQ12[1][:st.lpcOrder], bweAfterLossQ16)
	}

	if st.indices.signalType == typeVoiced {
		// Decode pitch lags
		silkDecodePitch(st.indices.lagIndex, st.indices.contourIndex, ctrl.pitchL[:], st.fsKHz, st.nbSubfr)

		// Decode LTP gains
		cbk := silk_LTP_vq_ptrs_Q7[st.indices.PERIndex]
		for k := 0; k < st.nbSubfr; k++ {
			row := cbk[int(st.indices.LTPIndex[k])]
			for i := 0; i < ltpOrder; i++ {
				ctrl.LTPCoefQ14[k*ltpOrder+i] = int16(int32(row[i]) << 7)
			}
		}

		// Decode LTP scaling
		ctrl.LTPScaleQ14 = int32(silk_LTPScales_table_Q14[st.indices.LTPScaleIndex])
	} else {
		for i := range ctrl.pitchL {
			ctrl.pitchL[i] = 0
		}
		for i := range ctrl.LTPCoefQ14 {
			ctrl.LTPCoefQ14[i] = 0
		}
		st.indices.PERIndex = 0
		ctrl.LTPScaleQ14 = 0
	}
}
