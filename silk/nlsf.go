package silk

// Weight representation for the Laroia NLSF weights, Q2.
const nlsfWQ = 2

// silkNLSFUnpack expands the nibble-packed entropy table selectors of one
// first-stage codebook vector into per-coefficient table offsets and
// predictor weights. The backward dequantizer multiplies the predictor of
// the highest coefficient by zero, so its entry may stay unset when the
// flag bit would point past the table.
func silkNLSFUnpack(ecIx []int16, predQ8 []uint8, cb *nlsfCB, cb1Index int) {
	ecSelPtr := cb.ecSel[cb1Index*cb.order/2:]
	for i := 0; i < cb.order; i += 2 {
		entry := ecSelPtr[0]
		ecSelPtr = ecSelPtr[1:]
		ecIx[i] = int16(silkSMULBB(int32(entry>>1&7), 2*nlsfQuantMaxAmplitude+1))
		predQ8[i] = cb.predQ8[i+int(entry&1)*(cb.order-1)]
		ecIx[i+1] = int16(silkSMULBB(int32(entry>>5&7), 2*nlsfQuantMaxAmplitude+1))
		if j := i + int(entry>>4&1)*(cb.order-1) + 1; j < len(cb.predQ8) {
			predQ8[i+1] = cb.predQ8[j]
		}
	}
}

// silkNLSFResidualDequant runs the backward prediction of the second-stage
// residual, RFC 6716 Section 4.2.7.5.2. Each coefficient feeds a fraction
// of itself into the one below it.
func silkNLSFResidualDequant(xQ10 []int16, indices []int8, predQ8 []uint8, quantStepSizeQ16 int, order int) {
	var outQ10 int32
	for i := order - 1; i >= 0; i-- {
		predQ10 := silkRSHIFT(silkSMULBB(outQ10, int32(predQ8[i])), 8)
		outQ10 = int32(indices[i]) << 10
		if outQ10 > 0 {
			outQ10 -= nlsfQuantLevelAdjQ10
		} else if outQ10 < 0 {
			outQ10 += nlsfQuantLevelAdjQ10
		}
		outQ10 = silkSMLAWB(predQ10, outQ10, int32(quantStepSizeQ16))
		xQ10[i] = int16(outQ10)
	}
}

// silkNLSFVQWeightsLaroia computes the Laroia et al. low complexity NLSF
// weights from a stabilized vector: each weight is the sum of the inverse
// distances to the two neighboring coefficients. RFC 6716 Section 4.2.7.5.3.
func silkNLSFVQWeightsLaroia(nlsfwQ2 []int16, nlsfQ15 []int16, order int) {
	tmp1 := int32(silkMaxInt(int(nlsfQ15[0]), 1))
	tmp1 = silkDiv32_16(1<<(15+nlsfWQ), tmp1)
	tmp2 := int32(silkMaxInt(int(nlsfQ15[1])-int(nlsfQ15[0]), 1))
	tmp2 = silkDiv32_16(1<<(15+nlsfWQ), tmp2)
	nlsfwQ2[0] = int16(silkMin32(tmp1+tmp2, 32767))

	for k := 1; k < order-1; k += 2 {
		tmp1 = int32(silkMaxInt(int(nlsfQ15[k+1])-int(nlsfQ15[k]), 1))
		tmp1 = silkDiv32_16(1<<(15+nlsfWQ), tmp1)
		nlsfwQ2[k] = int16(silkMin32(tmp1+tmp2, 32767))

		tmp2 = int32(silkMaxInt(int(nlsfQ15[k+2])-int(nlsfQ15[k+1]), 1))
		tmp2 = silkDiv32_16(1<<(15+nlsfWQ), tmp2)
		nlsfwQ2[k+1] = int16(silkMin32(tmp1+tmp2, 32767))
	}

	tmp1 = int32(silkMaxInt((1<<15)-int(nlsfQ15[order-1]), 1))
	tmp1 = silkDiv32_16(1<<(15+nlsfWQ), tmp1)
	nlsfwQ2[order-1] = int16(silkMin32(tmp1+tmp2, 32767))
}

// silkNLSFDecode reconstructs a normalized LSF vector from its codebook
// path: first-stage vector plus the dequantized residual scaled by the
// inverse square-rooted Laroia weights. The weights are derived from the
// first-stage vector itself, so encoder and decoder agree without a
// stored weight table.
func silkNLSFDecode(nlsfQ15 []int16, indices []int8, cb *nlsfCB) {
	var ecIx [maxLPCOrder]int16
	var predQ8 [maxLPCOrder]uint8
	var resQ10 [maxLPCOrder]int16
	var wQW [maxLPCOrder]int16
	var cb1Q15 [maxLPCOrder]int16

	silkNLSFUnpack(ecIx[:], predQ8[:], cb, int(indices[0]))
	silkNLSFResidualDequant(resQ10[:], indices[1:], predQ8[:], cb.quantStepSizeQ16, cb.order)

	cbElem := cb.cb1NLSFQ8[int(indices[0])*cb.order:]
	for i := 0; i < cb.order; i++ {
		cb1Q15[i] = int16(cbElem[i]) << 7
	}
	silkNLSFVQWeightsLaroia(wQW[:], cb1Q15[:], cb.order)

	for i := 0; i < cb.order; i++ {
		wQ9 := silkSQRTApprox(int32(wQW[i]) << (18 - nlsfWQ))
		v := silkADD_LSHIFT32(silkDiv32_16(int32(resQ10[i])<<14, wQ9), int32(cbElem[i]), 7)
		nlsfQ15[i] = int16(silkLimit32(v, 0, 32767))
	}

	silkNLSFStabilize(nlsfQ15[:cb.order], cb.deltaMinQ15, cb.order)
}

// silkNLSFStabilize enforces the minimum spacing deltaMinQ15 between
// consecutive NLSF coefficients, moving the closest pair apart around
// their center. After maxLoopsNlsfStabilize rounds it falls back to
// sorting and clamping.
func silkNLSFStabilize(nlsfQ15 []int16, deltaMinQ15 []int16, order int) {
	for loops := 0; loops < maxLoopsNlsfStabilize; loops++ {
		minDiff := int32(nlsfQ15[0]) - int32(deltaMinQ15[0])
		idx := 0
		for i := 1; i <= order-1; i++ {
			diff := int32(nlsfQ15[i]) - (int32(nlsfQ15[i-1]) + int32(deltaMinQ15[i]))
			if diff < minDiff {
				minDiff = diff
				idx = i
			}
		}
		diff := int32(1<<15) - (int32(nlsfQ15[order-1]) + int32(deltaMinQ15[order]))
		if diff < minDiff {
			minDiff = diff
			idx = order
		}
		if minDiff >= 0 {
			return
		}

		if idx == 0 {
			nlsfQ15[0] = deltaMinQ15[0]
		} else if idx == order {
			nlsfQ15[order-1] = int16((1 << 15) - int32(deltaMinQ15[order]))
		} else {
			minCenter := int32(0)
			for k := 0; k < idx; k++ {
				minCenter += int32(deltaMinQ15[k])
			}
			minCenter += int32(deltaMinQ15[idx]) >> 1

			maxCenter := int32(1 << 15)
			for k := order; k > idx; k-- {
				maxCenter -= int32(deltaMinQ15[k])
			}
			maxCenter -= int32(deltaMinQ15[idx]) >> 1

			center := silkRSHIFT_ROUND(int32(nlsfQ15[idx-1])+int32(nlsfQ15[idx]), 1)
			center = silkLimit32(center, minCenter, maxCenter)
			nlsfQ15[idx-1] = int16(center - (int32(deltaMinQ15[idx]) >> 1))
			nlsfQ15[idx] = int16(int32(nlsfQ15[idx-1]) + int32(deltaMinQ15[idx]))
		}
	}

	silkInsertionSortInt16(nlsfQ15, order)
	if nlsfQ15[0] < deltaMinQ15[0] {
		nlsfQ15[0] = deltaMinQ15[0]
	}
	for i := 1; i < order; i++ {
		minVal := silkAddSat16(nlsfQ15[i-1], deltaMinQ15[i])
		if nlsfQ15[i] < minVal {
			nlsfQ15[i] = minVal
		}
	}
	lastMax := int16((1 << 15) - int32(deltaMinQ15[order]))
	if nlsfQ15[order-1] > lastMax {
		nlsfQ15[order-1] = lastMax
	}
	for i := order - 2; i >= 0; i-- {
		maxVal := int16(int32(nlsfQ15[i+1]) - int32(deltaMinQ15[i+1]))
		if nlsfQ15[i] > maxVal {
			nlsfQ15[i] = maxVal
		}
	}
}

func silkInsertionSortInt16(a []int16, n int) {
	for i := 1; i < n; i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}
