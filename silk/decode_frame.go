package silk

import (
	"github.com/MoosicBox/gosilk/rangecoding"
)

// silkDecodeFrame decodes one 10 or 20 ms frame into out, which must hold
// frameLength samples. lostFlag selects normal decoding, concealment, or LBRR
// redundancy. Concealment runs when the frame is lost or when LBRR decoding
// finds no redundancy for this frame index.
func silkDecodeFrame(st *decoderState, rd *rangecoding.Decoder, out []int16, lostFlag int, condCoding int) {
	var ctrl decoderControl

	L := st.frameLength
	out = out[:L]

	if lostFlag == flagDecodeNormal ||
		(lostFlag == flagDecodeLBRR && st.LBRRFlags[st.nFramesDecoded] == 1) {
		pulses := st.scratchPulses[:roundUpShellFrame(L)]

		// Decode quantization indices of side info
		vadFlag := lostFlag == flagDecodeLBRR || st.VADFlags[st.nFramesDecoded] == 1
		silkDecodeIndices(st, rd, vadFlag, condCoding)

		// Decode quantization indices of excitation
		silkDecodePulses(rd, pulses, int(st.indices.signalType),
			int(st.indices.quantOffsetType), L)

		// Decode parameters and pulse signal
		silkDecodeParameters(st, &ctrl, condCoding)

		// Run inverse NSQ
		silkDecodeCore(st, &ctrl, out, pulses)

		// Update PLC state
		silkPLC(st, &ctrl, out, false)

		st.lossCnt = 0
		st.prevSignalType = int(st.indices.signalType)

		// A frame has been decoded without errors
		st.firstFrameAfterReset = false
	} else {
		// Handle packet loss by extrapolation
		st.indices.signalType = int8(st.prevSignalType)
		silkPLC(st, &ctrl, out, true)
	}

	// Update output buffer
	silkUpdateOutBuf(st, out)

	// Comfort noise generation / estimation
	silkCNG(st, &ctrl, out, L)

	// Ensure smooth connection of extrapolated and good frames
	silkPLCGlueFrames(st, out, L)

	st.lagPrev = ctrl.pitchL[st.nbSubfr-1]
}
