package silk

// sideInfoIndices collects every entropy-coded index of one frame before
// dequantization, mirroring SideInfoIndices in the reference decoder.
type sideInfoIndices struct {
	GainsIndices     [maxNbSubfr]int8
	LTPIndex         [maxNbSubfr]int8
	NLSFIndices      [maxLPCOrder + 1]int8
	lagIndex         int16
	contourIndex     int8
	signalType       int8
	quantOffsetType  int8
	NLSFInterpCoefQ2 int8
	PERIndex         int8
	LTPScaleIndex    int8
	Seed             int8
}

// plcState holds the extrapolation parameters for packet loss concealment,
// mirroring silk_PLC_struct.
type plcState struct {
	pitchLQ8        int32
	ltpCoefQ14      [ltpOrder]int16
	prevLPCQ12      [maxLPCOrder]int16
	lastFrameLost   bool
	randSeed        int32
	randScaleQ14    int16
	concEnergy      int32
	concEnergyShift int
	prevLTPScaleQ14 int16
	prevGainQ16     [2]int32
	fsKHz           int
	nbSubfr         int
	subfrLength     int
}

// cngState holds the comfort noise parameters smoothed over inactive
// frames, mirroring silk_CNG_struct.
type cngState struct {
	excBufQ14   [maxFrameLength]int32
	smthNLSFQ15 [maxLPCOrder]int16
	synthState  [maxLPCOrder]int32
	smthGainQ16 int32
	randSeed    int32
	fsKHz       int
}

type decoderState struct {
	prevGainQ16          int32
	excQ14               [maxFrameLength]int32
	sLPCQ14Buf           [maxLPCOrder]int32
	outBuf               [maxFrameLength + 2*maxSubFrameLength]int16
	lagPrev              int
	lastGainIndex        int8
	nFramesDecoded       int
	nFramesPerPacket     int
	VADFlags             [maxFramesPerPacket]int
	LBRRFlags            [maxFramesPerPacket]int
	LBRRFlag             int
	fsKHz                int
	nbSubfr              int
	frameLength          int
	subfrLength          int
	ltpMemLength         int
	lpcOrder             int
	prevNLSFQ15          [maxLPCOrder]int16
	firstFrameAfterReset bool
	pitchLagLowBitsICDF  []uint8
	pitchContourICDF     []uint8
	nlsfCB               *nlsfCB
	indices              sideInfoIndices
	lossCnt              int
	prevSignalType       int
	ecPrevSignalType     int
	ecPrevLagIndex       int

	sPLC plcState
	sCNG cngState

	// Scratch buffers shared by both channel states; wired up by NewDecoder.
	// Mid and side frames decode sequentially, so sharing is safe.
	scratchSLPC    []int32 // maxSubFrameLength + maxLPCOrder
	scratchSLTP    []int16 // maxLtpMemLength
	scratchSLTPQ15 []int32 // maxLtpMemLength + maxFrameLength
	scratchResQ14  []int32 // maxSubFrameLength
	scratchPulses  []int16 // maxFrameLength, rounded up to whole shell frames
	scratchCNGSig  []int32 // maxFrameLength + maxLPCOrder
}

type decoderControl struct {
	pitchL      [maxNbSubfr]int
	GainsQ16    [maxNbSubfr]int32
	PredCoefQ12 [2][maxLPCOrder]int16
	LTPCoefQ14  [ltpOrder * maxNbSubfr]int16
	LTPScaleQ14 int32
}

type stereoDecState struct {
	predPrevQ13 [2]int32
	sMid        [2]int16
	sSide       [2]int16
}
