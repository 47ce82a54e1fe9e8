package silk

// Decoder constants mirroring libopus silk/define.h and silk/SigProc_FIX.h.
const (
	// Frame geometry. SILK frames are 20 ms at most, split into 5 ms
	// subframes. 10 ms frames use 2 subframes, 20 ms frames use 4.
	maxNbSubfr        = 4
	subFrameLengthMs  = 5
	maxFrameLengthMs  = subFrameLengthMs * maxNbSubfr
	ltpMemLengthMs    = 20
	maxFsKHz          = 16
	maxSubFrameLength = subFrameLengthMs * maxFsKHz
	maxFrameLength    = maxFrameLengthMs * maxFsKHz
	maxLtpMemLength   = ltpMemLengthMs * maxFsKHz

	// An Opus packet carries at most three 20 ms SILK frames (60 ms).
	maxFramesPerPacket = 3

	// LPC orders. Wideband uses 16, narrowband and mediumband use 10.
	maxLPCOrder = 16
	minLPCOrder = 10

	// Number of LTP filter taps.
	ltpOrder = 5

	// Shell coder partitions the excitation into blocks of 16 samples.
	shellCodecFrameLength     = 16
	log2ShellCodecFrameLength = 4
	nRateLevels               = 10
	silkMaxPulses             = 16

	// Quantization offset applied to decoded pulses, in Q10.
	quantLevelAdjustQ10 = 80

	// Gain quantization.
	nLevelsQGain      = 64
	maxDeltaGainQuant = 36
	minDeltaGainQuant = -4
	minQGainDb        = 2
	maxQGainDb        = 88

	// Signal types.
	typeNoVoiceActivity = 0
	typeUnvoiced        = 1
	typeVoiced          = 2

	// Conditional coding states.
	codeIndependently             = 0
	codeIndependentlyNoLtpScaling = 1
	codeConditionally             = 2

	// Frame decode modes.
	flagDecodeNormal = 0
	flagPacketLost   = 1
	flagDecodeLBRR   = 2

	// NLSF residual quantization range is [-4..4] plus an escape.
	nlsfQuantMaxAmplitude = 4
	nlsfQuantLevelAdjQ10  = 102

	// Bandwidth expansion applied to the previous frame's LPC
	// coefficients when interpolating after a decoder reset or loss.
	bweAfterLossQ16 = 63570

	// Cosine table for NLSF to LPC conversion.
	lsfCosTabSizeFix = 128

	// NLSF stabilization.
	maxLoopsNlsfStabilize = 20

	// LPC fitting and stability.
	maxLPCStabilizeIterations = 16

	// 1/MAX_PREDICTION_POWER_GAIN in Q30, the inverse gain floor.
	maxPredictionPowerGainInvQ30 = 107374

	// Stereo prediction.
	stereoQuantSubSteps = 5
	stereoInterpLenMs   = 8

	// Pitch estimator limits, shared with the lag decoder.
	peMinLagMs          = 2
	peMaxLagMs          = 18
	peNbCbksStage2Ext   = 11
	peNbCbksStage2_10ms = 3
	peNbCbksStage3Max   = 34
	peNbCbksStage3_10ms = 12

	// Linear congruential generator for the excitation sign scrambler.
	randMultiplier = 196314165
	randIncrement  = 907633515
)
