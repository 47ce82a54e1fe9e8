package silk

import "testing"

// cngPrimedDecoder builds a wideband state with comfort noise parameters
// set up as if inactive frames had been decoded before: a filled noise
// buffer, a smoothed gain and the uniform spectrum from a fresh reset.
func cngPrimedDecoder() *decoderState {
	d := NewDecoder()
	st := &d.state[0]
	st.nbSubfr = maxNbSubfr
	silkDecoderSetFs(st, 16)
	silkCNGReset(st)
	st.sCNG.fsKHz = 16

	st.lossCnt = 1
	st.sPLC.randScaleQ14 = 1 << 14
	st.sPLC.prevGainQ16[1] = 1 << 16
	st.sCNG.smthGainQ16 = 1 << 20
	for i := range st.sCNG.excBufQ14 {
		st.sCNG.excBufQ14[i] = 3 << 14
	}
	return st
}

// TestSilkCNGReset checks the uniform spectrum and seed installed on reset.
func TestSilkCNGReset(t *testing.T) {
	d := NewDecoder()
	st := &d.state[0]
	st.nbSubfr = maxNbSubfr
	silkDecoderSetFs(st, 16)

	st.sCNG.smthGainQ16 = 999
	silkCNGReset(st)

	// 32767 / (order + 1) accumulated per coefficient.
	for i := 0; i < st.lpcOrder; i++ {
		want := int16(1927 * (i + 1))
		if st.sCNG.smthNLSFQ15[i] != want {
			t.Fatalf("smthNLSFQ15[%d] = %d, want %d", i, st.sCNG.smthNLSFQ15[i], want)
		}
	}
	if st.sCNG.smthGainQ16 != 0 {
		t.Errorf("smthGainQ16 = %d, want 0", st.sCNG.smthGainQ16)
	}
	if st.sCNG.randSeed != 3176576 {
		t.Errorf("randSeed = %d, want 3176576", st.sCNG.randSeed)
	}
}

// TestSilkCNGExc pins the pseudo random buffer indexing for both mask
// widths and checks the outputs stay inside the addressable window.
func TestSilkCNGExc(t *testing.T) {
	excBuf := make([]int32, maxFrameLength)
	for i := range excBuf {
		excBuf[i] = int32(i*3 - 200)
	}

	tests := []struct {
		name      string
		length    int
		seed      int32
		mask      int
		wantFirst []int32
		wantSeed  int32
	}{
		{
			"length 80 masks to 63", 80, 12345, 63,
			[]int32{-29, -77, -143, -41, -182, -131, -95, -140, -188, -20},
			-1769093111,
		},
		{
			"length 160 masks to 127", 160, -7, 127,
			[]int32{100, -62, -59, -53, 70, 103, -68, 160, -194, -176},
			-1295221863,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exc := make([]int32, tt.length)
			seed := tt.seed
			silkCNGExc(exc, excBuf, tt.length, &seed)

			for i, w := range tt.wantFirst {
				if exc[i] != w {
					t.Errorf("exc[%d] = %d, want %d", i, exc[i], w)
				}
			}
			if seed != tt.wantSeed {
				t.Errorf("final seed = %d, want %d", seed, tt.wantSeed)
			}
			lo, hi := excBuf[0], excBuf[tt.mask]
			for i, v := range exc {
				if v < lo || v > hi {
					t.Fatalf("exc[%d] = %d outside buffer window [%d, %d]", i, v, lo, hi)
				}
			}
		})
	}
}

// TestSilkCNGGoodFrame verifies that a cleanly decoded active frame only
// clears the synthesis state and leaves the signal alone.
func TestSilkCNGGoodFrame(t *testing.T) {
	st := cngPrimedDecoder()
	st.lossCnt = 0
	st.prevSignalType = typeVoiced
	for i := range st.sCNG.synthState {
		st.sCNG.synthState[i] = 42
	}

	frame := make([]int16, st.frameLength)
	for i := range frame {
		frame[i] = int16(i - 100)
	}
	var ctrl decoderControl
	silkCNG(st, &ctrl, frame, st.frameLength)

	for i := range frame {
		if frame[i] != int16(i-100) {
			t.Fatalf("frame[%d] = %d, modified on a good frame", i, frame[i])
		}
	}
	if st.sCNG.synthState != [maxLPCOrder]int32{} {
		t.Errorf("synthState = %v, want cleared", st.sCNG.synthState)
	}
}

// TestSilkCNGInactiveSmoothing verifies parameter tracking during inactive
// frames: gain and spectrum move toward the frame's values and the noise
// buffer absorbs the excitation of the strongest subframe.
func TestSilkCNGInactiveSmoothing(t *testing.T) {
	st := cngPrimedDecoder()
	st.lossCnt = 0
	st.prevSignalType = typeNoVoiceActivity
	st.sCNG.smthGainQ16 = 0
	for i := range st.sCNG.excBufQ14 {
		st.sCNG.excBufQ14[i] = 0
	}
	for i := range st.sCNG.smthNLSFQ15 {
		st.sCNG.smthNLSFQ15[i] = 0
	}
	for i := 0; i < st.lpcOrder; i++ {
		st.prevNLSFQ15[i] = 4000
	}
	for i := 0; i < st.frameLength; i++ {
		st.excQ14[i] = int32(i + 1)
	}

	var ctrl decoderControl
	for i := range ctrl.GainsQ16 {
		ctrl.GainsQ16[i] = 2 << 16
	}
	frame := make([]int16, st.frameLength)
	silkCNG(st, &ctrl, frame, st.frameLength)

	if st.sCNG.smthGainQ16 != 33320 {
		t.Errorf("smthGainQ16 = %d, want 33320", st.sCNG.smthGainQ16)
	}
	for i := 0; i < st.lpcOrder; i++ {
		if st.sCNG.smthNLSFQ15[i] != 997 {
			t.Fatalf("smthNLSFQ15[%d] = %d, want 997", i, st.sCNG.smthNLSFQ15[i])
		}
	}
	// Equal gains keep the first subframe as the strongest.
	for i := 0; i < st.subfrLength; i++ {
		if st.sCNG.excBufQ14[i] != int32(i+1) {
			t.Fatalf("excBufQ14[%d] = %d, want %d", i, st.sCNG.excBufQ14[i], i+1)
		}
	}
	for i := st.subfrLength; i < 2*st.subfrLength; i++ {
		if st.sCNG.excBufQ14[i] != 0 {
			t.Fatalf("excBufQ14[%d] = %d, want shifted zero history", i, st.sCNG.excBufQ14[i])
		}
	}
}

// TestSilkCNGLostFrame verifies comfort noise injection on a concealed
// frame. The first output sample only depends on the noise buffer and the
// gain, so it is pinned exactly.
func TestSilkCNGLostFrame(t *testing.T) {
	run := func() ([]int16, *decoderState) {
		st := cngPrimedDecoder()
		frame := make([]int16, st.frameLength)
		var ctrl decoderControl
		silkCNG(st, &ctrl, frame, st.frameLength)
		return frame, st
	}

	frameA, st := run()
	frameB, _ := run()

	for i := range frameA {
		if frameA[i] != frameB[i] {
			t.Fatalf("frame[%d] differs between identical states: %d vs %d", i, frameA[i], frameB[i])
		}
	}
	if frameA[0] != 48 {
		t.Errorf("frame[0] = %d, want 48", frameA[0])
	}
	var sumAbs int64
	for _, v := range frameA {
		if v < 0 {
			v = -v
		}
		sumAbs += int64(v)
	}
	if sumAbs == 0 {
		t.Error("comfort noise frame is silent")
	}
	if st.sCNG.randSeed == 3176576 {
		t.Error("randSeed unchanged, noise generator did not advance")
	}
	if st.sCNG.synthState == [maxLPCOrder]int32{} {
		t.Error("synthState still zero after synthesis")
	}
}

// TestSilkCNGLostFrameHighGain exercises the reduced precision gain path
// taken for loud states, and the suppression when the smoothed comfort
// noise level is far below the concealment gain.
func TestSilkCNGLostFrameHighGain(t *testing.T) {
	t.Run("loud smoothed gain", func(t *testing.T) {
		st := cngPrimedDecoder()
		st.sPLC.prevGainQ16[1] = 200 << 16
		st.sCNG.smthGainQ16 = 300 << 16

		frame := make([]int16, st.frameLength)
		var ctrl decoderControl
		silkCNG(st, &ctrl, frame, st.frameLength)

		if frame[0] != 295 {
			t.Errorf("frame[0] = %d, want 295", frame[0])
		}
	})

	t.Run("quiet smoothed gain suppresses noise", func(t *testing.T) {
		st := cngPrimedDecoder()
		st.sPLC.prevGainQ16[1] = 200 << 16
		// smthGainQ16 stays 1<<20: the subtraction underflows and the
		// approximate square root clamps the gain to zero.

		frame := make([]int16, st.frameLength)
		var ctrl decoderControl
		silkCNG(st, &ctrl, frame, st.frameLength)

		for i := range frame {
			if frame[i] != 0 {
				t.Fatalf("frame[%d] = %d, want fully suppressed noise", i, frame[i])
			}
		}
		if st.sCNG.randSeed == 3176576 {
			t.Error("randSeed unchanged, generator should advance even when muted")
		}
	})
}
