package silk

import "math/bits"

func silkAbs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func silkMaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func silkMinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func silkMin32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func silkMax32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func silkLimitInt(x, min, max int) int {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

func silkLimit32(x, min, max int32) int32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

func silkRSHIFT(x int32, shift int) int32 {
	return x >> shift
}

func silkLSHIFT(x int32, shift int) int32 {
	return x << shift
}

func silkRSHIFT_ROUND(x int32, shift int) int32 {
	if shift <= 0 {
		return x
	}
	if shift == 1 {
		return (x >> 1) + (x & 1)
	}
	return ((x >> (shift - 1)) + 1) >> 1
}

func silkRSHIFT_ROUND64(x int64, shift int) int64 {
	if shift <= 0 {
		return x
	}
	if shift == 1 {
		return (x >> 1) + (x & 1)
	}
	return ((x >> (shift - 1)) + 1) >> 1
}

func silkRSHIFT64(x int64, shift int) int64 {
	return x >> shift
}

func silkADD_LSHIFT32(a int32, b int32, shift int) int32 {
	return a + (b << shift)
}

func silkADD_RSHIFT32(a int32, b int32, shift int) int32 {
	return a + (b >> shift)
}

func silkSUB_LSHIFT32(a int32, b int32, shift int) int32 {
	return a - (b << shift)
}

func silkSMULWB(a, b int32) int32 {
	return int32((int64(a) * int64(int16(b))) >> 16)
}

func silkSMLAWB(a, b, c int32) int32 {
	return a + int32((int64(b)*int64(int16(c)))>>16)
}

func silkSMULBB(a, b int32) int32 {
	return int32(int16(a)) * int32(int16(b))
}

func silkSMLABB(a, b, c int32) int32 {
	return a + int32(int16(b))*int32(int16(c))
}

func silkSMULTT(a, b int32) int32 {
	return (a >> 16) * (b >> 16)
}

func silkSMULWW(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> 16)
}

func silkSMLAWW(a, b, c int32) int32 {
	return a + int32((int64(b)*int64(c))>>16)
}

func silkMUL(a, b int32) int32 {
	return int32(int64(a) * int64(b))
}

func silkMLA(a, b, c int32) int32 {
	return a + b*c
}

func silkSMULL(a, b int32) int64 {
	return int64(a) * int64(b)
}

func silkSMMUL(a, b int32) int32 {
	return int32(silkRSHIFT64(silkSMULL(a, b), 32))
}

func silkSAT16(x int32) int16 {
	if x > 32767 {
		return 32767
	}
	if x < -32768 {
		return -32768
	}
	return int16(x)
}

func silkLShiftSAT32(x int32, shift int) int32 {
	v := int64(x) << shift
	if v > int64((1<<31)-1) {
		return int32((1 << 31) - 1)
	}
	if v < int64(-1<<31) {
		return int32(-1 << 31)
	}
	return int32(v)
}

func silkAddSat16(a, b int16) int16 {
	return silkSAT16(int32(a) + int32(b))
}

func silkAddSat32(a, b int32) int32 {
	v := int64(a) + int64(b)
	if v > int64((1<<31)-1) {
		return int32((1 << 31) - 1)
	}
	if v < int64(-1<<31) {
		return int32(-1 << 31)
	}
	return int32(v)
}

func silkSubSat32(a, b int32) int32 {
	v := int64(a) - int64(b)
	if v > int64((1<<31)-1) {
		return int32((1 << 31) - 1)
	}
	if v < int64(-1<<31) {
		return int32(-1 << 31)
	}
	return int32(v)
}

func silkDiv32_16(a, b int32) int32 {
	if b == 0 {
		return 0
	}
	return a / b
}

func silkDiv32(a, b int32) int32 {
	if b == 0 {
		return 0
	}
	return a / b
}

func silkDiv32VarQ(a32, b32 int32, q int) int32 {
	if b32 == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}

	aHeadrm := int32(silkCLZ32(silkAbs32(a32)) - 1)
	a32Nrm := silkLSHIFT(a32, int(aHeadrm))
	bHeadrm := int32(silkCLZ32(silkAbs32(b32)) - 1)
	b32Nrm := silkLSHIFT(b32, int(bHeadrm))

	b32Inv := silkDiv32_16(int32(0x7fffffff>>2), int32(b32Nrm>>16))
	result := silkSMULWB(a32Nrm, b32Inv)

	a32Nrm = a32Nrm - silkLSHIFT(silkSMMUL(b32Nrm, result), 3)
	result = silkSMLAWB(result, a32Nrm, b32Inv)

	lshift := int(29 + aHeadrm - bHeadrm - int32(q))
	if lshift < 0 {
		return silkLShiftSAT32(result, -lshift)
	}
	if lshift < 32 {
		return result >> lshift
	}
	return 0
}

func silkInverse32VarQ(b32 int32, q int) int32 {
	if b32 == 0 || q <= 0 {
		return 0
	}

	bHeadrm := int32(silkCLZ32(silkAbs32(b32)) - 1)
	b32Nrm := silkLSHIFT(b32, int(bHeadrm))

	b32Inv := silkDiv32_16(int32(0x7fffffff>>2), int32(b32Nrm>>16))
	result := silkLSHIFT(b32Inv, 16)

	errQ32 := silkLSHIFT(int32((1<<29)-silkSMULWB(b32Nrm, b32Inv)), 3)
	result = silkSMLAWW(result, errQ32, b32Inv)

	lshift := int(61 - bHeadrm - int32(q))
	if lshift <= 0 {
		return silkLShiftSAT32(result, -lshift)
	}
	if lshift < 32 {
		return result >> lshift
	}
	return 0
}

func silkCLZ32(x int32) int32 {
	return int32(bits.LeadingZeros32(uint32(x)))
}

func silkCLZ_FRAC(in int32) (lz int32, fracQ7 int32) {
	lz = silkCLZ32(in)
	rot := bits.RotateLeft32(uint32(in), -int(24-lz))
	fracQ7 = int32(rot & 0x7f)
	return lz, fracQ7
}

// silkSQRTApprox returns an approximation of sqrt(x), accurate to about 10 bits.
func silkSQRTApprox(x int32) int32 {
	if x <= 0 {
		return 0
	}
	lz, fracQ7 := silkCLZ_FRAC(x)
	var y int32
	if lz&1 != 0 {
		y = 32768
	} else {
		y = 46214
	}
	y >>= lz >> 1
	return silkSMLAWB(y, y, silkSMULBB(213, fracQ7))
}

// silkSumSqrShift computes the energy of x shifted down so that it fits
// in an int32 with two bits of headroom, and the shift that was applied.
func silkSumSqrShift(x []int16) (energy int32, shift int) {
	length := len(x)
	shft := 31 - int(silkCLZ32(int32(length)))
	nrg := int32(length)
	var i int
	for i = 0; i < length-1; i += 2 {
		nrgTmp := uint32(silkSMULBB(int32(x[i]), int32(x[i])))
		nrgTmp += uint32(silkSMULBB(int32(x[i+1]), int32(x[i+1])))
		nrg = int32(uint32(nrg) + nrgTmp>>shft)
	}
	if i < length {
		nrgTmp := uint32(silkSMULBB(int32(x[i]), int32(x[i])))
		nrg = int32(uint32(nrg) + nrgTmp>>shft)
	}
	shft = silkMaxInt(0, shft+3-int(silkCLZ32(nrg)))
	nrg = 0
	for i = 0; i < length-1; i += 2 {
		nrgTmp := uint32(silkSMULBB(int32(x[i]), int32(x[i])))
		nrgTmp += uint32(silkSMULBB(int32(x[i+1]), int32(x[i+1])))
		nrg = int32(uint32(nrg) + nrgTmp>>shft)
	}
	if i < length {
		nrgTmp := uint32(silkSMULBB(int32(x[i]), int32(x[i])))
		nrg = int32(uint32(nrg) + nrgTmp>>shft)
	}
	return nrg, shft
}

// silkLog2Lin approximately converts a log2 value in Q7 back to linear.
func silkLog2Lin(inLogQ7 int32) int32 {
	if inLogQ7 < 0 {
		return 0
	}
	if inLogQ7 >= 3967 {
		return 0x7fffffff
	}
	out := silkLSHIFT(1, int(inLogQ7>>7))
	fracQ7 := inLogQ7 & 0x7f
	if inLogQ7 < 2048 {
		out = silkADD_RSHIFT32(out, silkMUL(out, silkSMLAWB(fracQ7, silkSMULBB(fracQ7, 128-fracQ7), -174)), 7)
	} else {
		out = silkMLA(out, silkRSHIFT(out, 7), silkSMLAWB(fracQ7, silkSMULBB(fracQ7, 128-fracQ7), -174))
	}
	return out
}

func silkRand(seed int32) int32 {
	return silkMLA(randIncrement, seed, randMultiplier)
}

func silkFixConst(x float64, q int) int {
	return int(x*float64(int64(1)<<q) + 0.5)
}
