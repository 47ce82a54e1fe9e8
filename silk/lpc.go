package silk

const (
	nlsf2aQA                = 16
	lpcInvPredGainQA        = 24
	lpcInvPredGainALimitQ24 = 16773022
	silkInt32Max            = int32(^uint32(0) >> 1)
	silkInt32Min            = -silkInt32Max - 1
)

// Coefficient orderings that maximize the numerical accuracy of the
// polynomial construction in silkNLSF2AFindPoly.
var nlsf2aOrdering16 = [16]int{
	0, 15, 8, 7, 4, 11, 12, 3, 2, 13, 10, 5, 6, 9, 14, 1,
}

var nlsf2aOrdering10 = [10]int{
	0, 9, 6, 3, 4, 5, 8, 1, 2, 7,
}

func silkNLSF2AFindPoly(out []int32, cLSF []int32, dd int) {
	out[0] = silkLSHIFT(1, nlsf2aQA)
	out[1] = -cLSF[0]
	for k := 1; k < dd; k++ {
		ftmp := cLSF[2*k]
		out[k+1] = silkLSHIFT(out[k-1], 1) - int32(silkRSHIFT_ROUND64(silkSMULL(ftmp, out[k]), nlsf2aQA))
		for n := k; n > 1; n-- {
			out[n] += out[n-2] - int32(silkRSHIFT_ROUND64(silkSMULL(ftmp, out[n-1]), nlsf2aQA))
		}
		out[1] -= ftmp
	}
}

// silkNLSF2A converts normalized LSFs to Q12 LPC prediction coefficients
// via cosine interpolation and the even/odd polynomial construction,
// RFC 6716 Section 4.2.7.5.6. The result is always usable: coefficients
// are bandwidth expanded until the filter is stable.
func silkNLSF2A(aQ12 []int16, nlsfQ15 []int16, order int) {
	var ordering []int
	if order == 16 {
		ordering = nlsf2aOrdering16[:]
	} else {
		ordering = nlsf2aOrdering10[:]
	}

	var cosLSFQA [maxLPCOrder]int32
	for k := 0; k < order; k++ {
		nlsf := int32(nlsfQ15[k])
		if nlsf < 0 {
			nlsf = 0
		}
		fInt := silkRSHIFT(nlsf, 15-7)
		if fInt > lsfCosTabSizeFix-1 {
			fInt = lsfCosTabSizeFix - 1
		}
		fFrac := nlsf - silkLSHIFT(fInt, 15-7)

		cosVal := int32(silk_LSFCosTab_FIX_Q12[fInt])
		delta := int32(silk_LSFCosTab_FIX_Q12[fInt+1]) - cosVal
		cosLSFQA[ordering[k]] = silkRSHIFT_ROUND(silkLSHIFT(cosVal, 8)+silkMUL(delta, fFrac), 20-nlsf2aQA)
	}

	dd := order >> 1
	var p, q [maxLPCOrder/2 + 1]int32
	silkNLSF2AFindPoly(p[:dd+1], cosLSFQA[:order], dd)
	silkNLSF2AFindPoly(q[:dd+1], cosLSFQA[1:order], dd)

	var a32QA1 [maxLPCOrder]int32
	for k := 0; k < dd; k++ {
		pTmp := p[k+1] + p[k]
		qTmp := q[k+1] - q[k]
		a32QA1[k] = -qTmp - pTmp
		a32QA1[order-k-1] = qTmp - pTmp
	}

	silkLPCFit(aQ12, a32QA1[:order], 12, nlsf2aQA+1, order)

	for i := 0; silkLPCInversePredGain(aQ12[:order], order) == 0 && i < maxLPCStabilizeIterations; i++ {
		silkBwExpander32(a32QA1[:order], order, 65536-silkLSHIFT(2, i))
		for k := 0; k < order; k++ {
			aQ12[k] = int16(silkRSHIFT_ROUND(a32QA1[k], nlsf2aQA+1-12))
		}
	}
}

// silkBwExpander chirps a Q12 coefficient vector, moving the filter poles
// toward the origin.
func silkBwExpander(ar []int16, chirpQ16 int32) {
	chirpMinusOneQ16 := chirpQ16 - 65536
	for i := 0; i < len(ar)-1; i++ {
		ar[i] = int16(silkRSHIFT_ROUND(silkMUL(chirpQ16, int32(ar[i])), 16))
		chirpQ16 += silkRSHIFT_ROUND(silkMUL(chirpQ16, chirpMinusOneQ16), 16)
	}
	ar[len(ar)-1] = int16(silkRSHIFT_ROUND(silkMUL(chirpQ16, int32(ar[len(ar)-1])), 16))
}

func silkBwExpander32(ar []int32, order int, chirpQ16 int32) {
	chirpMinusOneQ16 := chirpQ16 - 65536
	for i := 0; i < order-1; i++ {
		ar[i] = silkSMULWW(chirpQ16, ar[i])
		chirpQ16 += silkRSHIFT_ROUND(silkMUL(chirpQ16, chirpMinusOneQ16), 16)
	}
	ar[order-1] = silkSMULWW(chirpQ16, ar[order-1])
}

// silkLPCFit converts coefficients to a narrower Q domain, applying
// bandwidth expansion as needed so they fit in int16.
func silkLPCFit(aQout []int16, aQin []int32, qOut, qIn, order int) {
	idx := 0
	i := 0
	for ; i < 10; i++ {
		maxabs := int32(0)
		for k := 0; k < order; k++ {
			absval := silkAbs32(aQin[k])
			if absval > maxabs {
				maxabs = absval
				idx = k
			}
		}
		maxabs = silkRSHIFT_ROUND(maxabs, qIn-qOut)

		if maxabs > 32767 {
			if maxabs > 163838 {
				maxabs = 163838
			}
			chirpQ16 := int32(silkFixConst(0.999, 16)) - silkDiv32(silkLSHIFT(maxabs-32767, 14), silkRSHIFT(silkMUL(maxabs, int32(idx+1)), 2))
			silkBwExpander32(aQin, order, chirpQ16)
		} else {
			break
		}
	}

	if i == 10 {
		// Ten rounds were not enough, clip instead.
		for k := 0; k < order; k++ {
			aQout[k] = silkSAT16(silkRSHIFT_ROUND(aQin[k], qIn-qOut))
			aQin[k] = silkLSHIFT(int32(aQout[k]), qIn-qOut)
		}
	} else {
		for k := 0; k < order; k++ {
			aQout[k] = int16(silkRSHIFT_ROUND(aQin[k], qIn-qOut))
		}
	}
}

func silkMul32FracQ(a32, b32 int32, q int) int32 {
	return int32(silkRSHIFT_ROUND64(silkSMULL(a32, b32), q))
}

// silkLPCInversePredGain returns the inverse prediction gain of a Q12
// filter in Q30, or 0 when the filter is unstable.
func silkLPCInversePredGain(aQ12 []int16, order int) int32 {
	var atmpQA [maxLPCOrder]int32
	var dcResp int32
	for k := 0; k < order; k++ {
		dcResp += int32(aQ12[k])
		atmpQA[k] = silkLSHIFT(int32(aQ12[k]), lpcInvPredGainQA-12)
	}
	// A DC gain above 40 dB means the filter is definitely unstable.
	if dcResp >= 4096 {
		return 0
	}
	return silkLPCInversePredGainQA(atmpQA[:order], order)
}

func silkLPCInversePredGainQA(aQA []int32, order int) int32 {
	invGainQ30 := int32(1 << 30)
	for k := order - 1; k > 0; k-- {
		if aQA[k] > lpcInvPredGainALimitQ24 || aQA[k] < -lpcInvPredGainALimitQ24 {
			return 0
		}

		rcQ31 := -silkLSHIFT(aQA[k], 31-lpcInvPredGainQA)
		rcMult1Q30 := int32(1<<30) - silkSMMUL(rcQ31, rcQ31)

		invGainQ30 = silkLSHIFT(silkSMMUL(invGainQ30, rcMult1Q30), 2)
		if invGainQ30 < maxPredictionPowerGainInvQ30 {
			return 0
		}

		mult2Q := int(32 - silkCLZ32(silkAbs32(rcMult1Q30)))
		rcMult2 := silkInverse32VarQ(rcMult1Q30, mult2Q+30)

		for n := 0; n < (k+1)>>1; n++ {
			tmp1 := aQA[n]
			tmp2 := aQA[k-n-1]
			tmp64 := silkRSHIFT_ROUND64(silkSMULL(silkSubSat32(tmp1,
				silkMul32FracQ(tmp2, rcQ31, 31)), rcMult2), mult2Q)
			if tmp64 > int64(silkInt32Max) || tmp64 < int64(silkInt32Min) {
				return 0
			}
			aQA[n] = int32(tmp64)

			tmp64 = silkRSHIFT_ROUND64(silkSMULL(silkSubSat32(tmp2,
				silkMul32FracQ(tmp1, rcQ31, 31)), rcMult2), mult2Q)
			if tmp64 > int64(silkInt32Max) || tmp64 < int64(silkInt32Min) {
				return 0
			}
			aQA[k-n-1] = int32(tmp64)
		}
	}

	if aQA[0] > lpcInvPredGainALimitQ24 || aQA[0] < -lpcInvPredGainALimitQ24 {
		return 0
	}

	rcQ31 := -silkLSHIFT(aQA[0], 31-lpcInvPredGainQA)
	rcMult1Q30 := int32(1<<30) - silkSMMUL(rcQ31, rcQ31)

	invGainQ30 = silkLSHIFT(silkSMMUL(invGainQ30, rcMult1Q30), 2)
	if invGainQ30 < maxPredictionPowerGainInvQ30 {
		return 0
	}

	return invGainQ30
}

// silkLPCAnalysisFilter applies the order-tap whitening filter to in,
// writing the residual to out. The first order samples are zeroed since
// no history is available for them.
func silkLPCAnalysisFilter(out []int16, in []int16, b []int16, length int, order int) {
	for i := 0; i < order; i++ {
		out[i] = 0
	}
	for ix := order; ix < length; ix++ {
		outQ12 := silkSMULBB(int32(in[ix-1]), int32(b[0]))
		for j := 1; j < order; j++ {
			outQ12 = silkSMLABB(outQ12, int32(in[ix-1-j]), int32(b[j]))
		}
		outQ12 = silkLSHIFT(int32(in[ix]), 12) - outQ12
		out[ix] = silkSAT16(silkRSHIFT_ROUND(outQ12, 12))
	}
}
