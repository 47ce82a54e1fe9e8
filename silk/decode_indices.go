package silk

import "github.com/MoosicBox/gosilk/rangecoding"

// silkDecoderSetFs binds the sample-rate dependent tables and buffer
// lengths. A rate change resets the synthesis history, per RFC 6716
// Section 4.5.2: decoder state is not carried across bandwidth switches.
func silkDecoderSetFs(st *decoderState, fsKHz int) {
	st.subfrLength = subFrameLengthMs * fsKHz
	frameLength := st.nbSubfr * st.subfrLength

	if st.fsKHz != fsKHz || frameLength != st.frameLength {
		if fsKHz == 8 {
			if st.nbSubfr == maxNbSubfr {
				st.pitchContourICDF = silk_pitch_contour_NB_iCDF
			} else {
				st.pitchContourICDF = silk_pitch_contour_10_ms_NB_iCDF
			}
		} else {
			if st.nbSubfr == maxNbSubfr {
				st.pitchContourICDF = silk_pitch_contour_iCDF
			} else {
				st.pitchContourICDF = silk_pitch_contour_10_ms_iCDF
			}
		}

		if st.fsKHz != fsKHz {
			st.ltpMemLength = ltpMemLengthMs * fsKHz
			if fsKHz == 8 || fsKHz == 12 {
				st.lpcOrder = minLPCOrder
				st.nlsfCB = &silk_NLSF_CB_NB_MB
			} else {
				st.lpcOrder = maxLPCOrder
				st.nlsfCB = &silk_NLSF_CB_WB
			}
			switch fsKHz {
			case 16:
				st.pitchLagLowBitsICDF = silk_uniform8_iCDF
			case 12:
				st.pitchLagLowBitsICDF = silk_uniform6_iCDF
			case 8:
				st.pitchLagLowBitsICDF = silk_uniform4_iCDF
			}
			st.firstFrameAfterReset = true
			st.lagPrev = 100
			st.lastGainIndex = 10
			st.prevSignalType = typeNoVoiceActivity
			for i := range st.outBuf {
				st.outBuf[i] = 0
			}
			for i := range st.sLPCQ14Buf {
				st.sLPCQ14Buf[i] = 0
			}
		}

		st.fsKHz = fsKHz
		st.frameLength = frameLength
	}
}

// silkDecodeIndices reads all side information of one frame: signal type,
// quantization offset type, gain indices, NLSF indices, the pitch lag and
// contour, LTP filter and scaling indices, and the LCG seed.
// RFC 6716 Sections 4.2.7.3 through 4.2.7.7.
func silkDecodeIndices(st *decoderState, rd *rangecoding.Decoder, vadFlag bool, condCoding int) {
	var ix int
	if vadFlag {
		ix = rd.DecodeICDF(silk_type_offset_VAD_iCDF, 8) + 2
	} else {
		ix = rd.DecodeICDF(silk_type_offset_no_VAD_iCDF, 8)
	}
	st.indices.signalType = int8(ix >> 1)
	st.indices.quantOffsetType = int8(ix & 1)

	if condCoding == codeConditionally {
		st.indices.GainsIndices[0] = int8(rd.DecodeICDF(silk_delta_gain_iCDF, 8))
	} else {
		msb := rd.DecodeICDF(silk_gain_iCDF[int(st.indices.signalType)], 8)
		lsb := rd.DecodeICDF(silk_uniform8_iCDF, 8)
		st.indices.GainsIndices[0] = int8((msb << 3) + lsb)
	}
	for i := 1; i < st.nbSubfr; i++ {
		st.indices.GainsIndices[i] = int8(rd.DecodeICDF(silk_delta_gain_iCDF, 8))
	}

	cb := st.nlsfCB
	cb1Offset := (int(st.indices.signalType) >> 1) * cb.nVectors
	st.indices.NLSFIndices[0] = int8(rd.DecodeICDF(cb.cb1ICDF[cb1Offset:], 8))

	var ecIx [maxLPCOrder]int16
	var predQ8 [maxLPCOrder]uint8
	silkNLSFUnpack(ecIx[:], predQ8[:], cb, int(st.indices.NLSFIndices[0]))

	for i := 0; i < cb.order; i++ {
		idx := rd.DecodeICDF(cb.ecICDF[int(ecIx[i]):], 8)
		if idx == 0 {
			idx -= rd.DecodeICDF(silk_NLSF_EXT_iCDF, 8)
		} else if idx == 2*nlsfQuantMaxAmplitude {
			idx += rd.DecodeICDF(silk_NLSF_EXT_iCDF, 8)
		}
		st.indices.NLSFIndices[i+1] = int8(idx - nlsfQuantMaxAmplitude)
	}

	if st.nbSubfr == maxNbSubfr {
		st.indices.NLSFInterpCoefQ2 = int8(rd.DecodeICDF(silk_NLSF_interpolation_factor_iCDF, 8))
	} else {
		st.indices.NLSFInterpCoefQ2 = 4
	}

	if st.indices.signalType == typeVoiced {
		// The lag is delta coded relative to the previous frame when
		// possible; a zero delta symbol falls back to absolute coding.
		decodeAbsolute := true
		if condCoding == codeConditionally && st.ecPrevSignalType == typeVoiced {
			deltaLag := rd.DecodeICDF(silk_pitch_delta_iCDF, 8)
			if deltaLag > 0 {
				deltaLag -= 9
				st.indices.lagIndex = int16(st.ecPrevLagIndex + deltaLag)
				decodeAbsolute = false
			}
		}
		if decodeAbsolute {
			st.indices.lagIndex = int16(rd.DecodeICDF(silk_pitch_lag_iCDF, 8) * (st.fsKHz >> 1))
			st.indices.lagIndex += int16(rd.DecodeICDF(st.pitchLagLowBitsICDF, 8))
		}
		st.ecPrevLagIndex = int(st.indices.lagIndex)
		st.indices.contourIndex = int8(rd.DecodeICDF(st.pitchContourICDF, 8))

		st.indices.PERIndex = int8(rd.DecodeICDF(silk_LTP_per_index_iCDF, 8))
		for k := 0; k < st.nbSubfr; k++ {
			st.indices.LTPIndex[k] = int8(rd.DecodeICDF(silk_LTP_gain_iCDF_ptrs[int(st.indices.PERIndex)], 8))
		}
		if condCoding == codeIndependently {
			st.indices.LTPScaleIndex = int8(rd.DecodeICDF(silk_LTPscale_iCDF, 8))
		} else {
			st.indices.LTPScaleIndex = 0
		}
	}
	st.ecPrevSignalType = int(st.indices.signalType)

	st.indices.Seed = int8(rd.DecodeICDF(silk_uniform4_iCDF, 8))
}
