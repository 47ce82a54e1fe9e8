// Package silk implements a decoder for the SILK layer of Opus per
// RFC 6716 Section 4.2. All arithmetic follows the fixed-point reference
// decoder bit-exactly.
package silk

import (
	"github.com/MoosicBox/gosilk/rangecoding"
)

// Decoder decodes a stream of SILK packets into signed 16-bit PCM at the
// bandwidth's native sample rate (8, 12 or 16 kHz). State carried between
// packets (synthesis filter memory, pitch lags, smoothed comfort noise)
// makes decoding order-dependent: feed every packet of the stream in order
// and report the missing ones through the lost flag so concealment keeps
// the filter memories on track.
//
// A Decoder must not be used from multiple goroutines concurrently.
type Decoder struct {
	rd     rangecoding.Decoder
	state  [2]decoderState
	stereo stereoDecState

	nChannelsInternal    int
	prevDecodeOnlyMiddle int

	// Mid and side working frames, each with two samples of history in
	// front for the stereo prediction filter.
	msFrame [2][maxFrameLength + 2]int16

	// Backing storage for the scratch slices shared by both channel
	// states, sized for 16 kHz 20 ms frames.
	scratchSLPC    []int32
	scratchSLTP    []int16
	scratchSLTPQ15 []int32
	scratchResQ14  []int32
	scratchPulses  []int16
	scratchCNGSig  []int32
}

// NewDecoder returns a Decoder ready for the first packet of a stream.
func NewDecoder() *Decoder {
	d := &Decoder{
		scratchSLPC:    make([]int32, maxSubFrameLength+maxLPCOrder),
		scratchSLTP:    make([]int16, maxLtpMemLength),
		scratchSLTPQ15: make([]int32, maxLtpMemLength+maxFrameLength),
		scratchResQ14:  make([]int32, maxSubFrameLength),
		scratchPulses:  make([]int16, maxFrameLength),
		scratchCNGSig:  make([]int32, maxFrameLength+maxLPCOrder),
	}
	d.initChannel(0)
	d.initChannel(1)
	return d
}

// initChannel restores one channel state to its just-created condition.
func (d *Decoder) initChannel(n int) {
	st := &d.state[n]
	*st = decoderState{}
	st.firstFrameAfterReset = true
	st.prevGainQ16 = 65536
	silkCNGReset(st)
	silkPLCReset(st)

	st.scratchSLPC = d.scratchSLPC
	st.scratchSLTP = d.scratchSLTP
	st.scratchSLTPQ15 = d.scratchSLTPQ15
	st.scratchResQ14 = d.scratchResQ14
	st.scratchPulses = d.scratchPulses
	st.scratchCNGSig = d.scratchCNGSig
}

// Reset restores the initial decoder state, as if freshly constructed. Call
// it at a stream discontinuity, for example after a seek; the next packet
// then decodes with no dependence on anything fed in before.
func (d *Decoder) Reset() {
	d.initChannel(0)
	d.initChannel(1)
	d.stereo = stereoDecState{}
	d.prevDecodeOnlyMiddle = 0
	d.nChannelsInternal = 0
}

// Decode decodes one mono SILK packet and returns its samples. A packet
// holds one 10 or 20 ms frame, or two or three 20 ms frames for the 40 and
// 60 ms durations.
//
// With lost set, or with an empty payload, the packet is concealed instead:
// the most recent signal is extrapolated with decaying energy, and the
// returned slice still holds the exact sample count for the duration. The
// only errors are configuration errors; corrupt payload bits never fail,
// they decode to a valid (if wrong) signal just as the reference does.
func (d *Decoder) Decode(data []byte, bandwidth Bandwidth, duration FrameDuration, lost bool) ([]int16, error) {
	lostFlag := flagDecodeNormal
	if lost {
		lostFlag = flagPacketLost
	}
	return d.decode(data, bandwidth, duration, lostFlag, 1)
}

// DecodeStereo decodes one stereo SILK packet and returns its samples with
// the left and right channels interleaved. The payload carries a mid
// channel and optionally a side channel; prediction weights mix them back
// to left/right per RFC 6716 Section 4.2.8. Loss handling matches Decode.
func (d *Decoder) DecodeStereo(data []byte, bandwidth Bandwidth, duration FrameDuration, lost bool) ([]int16, error) {
	lostFlag := flagDecodeNormal
	if lost {
		lostFlag = flagPacketLost
	}
	return d.decode(data, bandwidth, duration, lostFlag, 2)
}

func (d *Decoder) decode(data []byte, bandwidth Bandwidth, duration FrameDuration, lostFlag int, nChannels int) ([]int16, error) {
	config, ok := bandwidthConfigs[bandwidth]
	if !ok {
		return nil, ErrInvalidBandwidth
	}
	framesPerPacket, nbSubfr, err := frameParams(duration)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		lostFlag = flagPacketLost
	}

	if nChannels > d.nChannelsInternal {
		d.initChannel(1)
	}
	if nChannels == 2 && d.nChannelsInternal == 1 {
		// Coming from mono the mid/side prediction memory is stale.
		d.stereo.predPrevQ13 = [2]int32{}
		d.stereo.sSide = [2]int16{}
	}
	d.nChannelsInternal = nChannels

	fsKHz := config.SampleRate / 1000
	for n := 0; n < nChannels; n++ {
		st := &d.state[n]
		st.nFramesDecoded = 0
		st.nFramesPerPacket = framesPerPacket
		st.nbSubfr = nbSubfr
		silkDecoderSetFs(st, fsKHz)
	}

	frameLength := d.state[0].frameLength
	out := make([]int16, framesPerPacket*frameLength*nChannels)

	if lostFlag != flagPacketLost {
		d.rd.Init(data)

		// Header bits: per-frame VAD flags plus the LBRR presence bit for
		// each channel in turn, then the per-frame LBRR flags.
		for n := 0; n < nChannels; n++ {
			decodeHeaderBits(&d.rd, &d.state[n], framesPerPacket)
		}
		for n := 0; n < nChannels; n++ {
			decodeLBRRFlags(&d.rd, &d.state[n], framesPerPacket)
		}

		if lostFlag == flagDecodeNormal {
			d.skipLBRRData(nChannels, framesPerPacket)
		}
	}

	for i := 0; i < framesPerPacket; i++ {
		decodeOnlyMiddle := 0
		var predQ13 [2]int32

		if nChannels == 2 {
			if lostFlag == flagDecodeNormal ||
				(lostFlag == flagDecodeLBRR && d.state[0].LBRRFlags[i] == 1) {
				silkStereoDecodePred(&d.rd, &predQ13)
				// The mid-only flag is present only when the side channel
				// signals no activity for this frame.
				if (lostFlag == flagDecodeNormal && d.state[1].VADFlags[i] == 0) ||
					(lostFlag == flagDecodeLBRR && d.state[1].LBRRFlags[i] == 0) {
					decodeOnlyMiddle = silkStereoDecodeMidOnly(&d.rd)
				}
			} else {
				predQ13 = d.stereo.predPrevQ13
			}

			if decodeOnlyMiddle == 0 && d.prevDecodeOnlyMiddle == 1 {
				resetSideChannelState(&d.state[1])
			}
		}

		var hasSide bool
		if lostFlag == flagDecodeNormal {
			hasSide = decodeOnlyMiddle == 0
		} else {
			hasSide = d.prevDecodeOnlyMiddle == 0 ||
				(nChannels == 2 && lostFlag == flagDecodeLBRR && d.state[1].LBRRFlags[i] == 1)
		}

		for n := 0; n < nChannels; n++ {
			var frame []int16
			if nChannels == 2 {
				frame = d.msFrame[n][2 : 2+frameLength]
			} else {
				frame = out[i*frameLength : (i+1)*frameLength]
			}

			if n == 0 || hasSide {
				condCoding := codeConditionally
				if i == 0 {
					condCoding = codeIndependently
				} else if lostFlag == flagDecodeLBRR {
					if d.state[n].LBRRFlags[i-1] == 0 {
						condCoding = codeIndependently
					}
				} else if n > 0 && d.prevDecodeOnlyMiddle == 1 {
					// The side frame before this one was skipped, so the
					// side LTP state is defined and needs no rescaling.
					condCoding = codeIndependentlyNoLtpScaling
				}
				silkDecodeFrame(&d.state[n], &d.rd, frame, lostFlag, condCoding)
			} else {
				for j := range frame {
					frame[j] = 0
				}
			}
			d.state[n].nFramesDecoded++
		}

		if nChannels == 2 {
			mid := d.msFrame[0][:frameLength+2]
			side := d.msFrame[1][:frameLength+2]
			silkStereoMSToLR(&d.stereo, mid, side, &predQ13, fsKHz, frameLength)

			base := 2 * i * frameLength
			for j := 0; j < frameLength; j++ {
				out[base+2*j] = mid[j+1]
				out[base+2*j+1] = side[j+1]
			}
		} else {
			// Keep the mid history current so a later switch to stereo
			// starts from the right samples.
			frame := out[i*frameLength : (i+1)*frameLength]
			d.stereo.sMid[0] = frame[frameLength-2]
			d.stereo.sMid[1] = frame[frameLength-1]
		}

		if lostFlag == flagPacketLost {
			// Drop the gain limiter floor so the first frame after a loss
			// can come in at a low gain without the energy bouncing back.
			for n := 0; n < nChannels; n++ {
				d.state[n].lastGainIndex = 10
			}
		} else {
			d.prevDecodeOnlyMiddle = decodeOnlyMiddle
		}
	}

	return out, nil
}

// skipLBRRData reads past any in-band redundancy so the range decoder stays
// aligned with the regular frames that follow it in the payload.
func (d *Decoder) skipLBRRData(nChannels, framesPerPacket int) {
	var predQ13 [2]int32
	for i := 0; i < framesPerPacket; i++ {
		for n := 0; n < nChannels; n++ {
			st := &d.state[n]
			if st.LBRRFlags[i] == 0 {
				continue
			}
			if nChannels == 2 && n == 0 {
				silkStereoDecodePred(&d.rd, &predQ13)
				if d.state[1].LBRRFlags[i] == 0 {
					silkStereoDecodeMidOnly(&d.rd)
				}
			}
			condCoding := codeIndependently
			if i > 0 && st.LBRRFlags[i-1] != 0 {
				condCoding = codeConditionally
			}
			silkDecodeIndices(st, &d.rd, true, condCoding)
			pulses := st.scratchPulses[:roundUpShellFrame(st.frameLength)]
			silkDecodePulses(&d.rd, pulses, int(st.indices.signalType), int(st.indices.quantOffsetType), st.frameLength)
		}
	}
}
