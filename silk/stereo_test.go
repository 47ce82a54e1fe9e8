package silk

import (
	"testing"

	"github.com/MoosicBox/gosilk/rangecoding"
)

// TestSilkStereoDecodePred checks prediction weight decoding against
// values worked out from the three stage quantizer tables. The zero
// buffer case always lands on the lowest codebook entry for both
// channels, which cancels to zero after the differential step.
func TestSilkStereoDecodePred(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want [2]int32
	}{
		{"random 8 bytes", lcgBytes(3, 8), [2]int32{5113, -7424}},
		{"random 16 bytes", lcgBytes(0x5eed, 16), [2]int32{0, 2311}},
		{"zero buffer", make([]byte, 8), [2]int32{0, -13364}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rd rangecoding.Decoder
			rd.Init(tt.buf)

			var predQ13 [2]int32
			silkStereoDecodePred(&rd, &predQ13)
			if predQ13 != tt.want {
				t.Errorf("predQ13 = %v, want %v", predQ13, tt.want)
			}
		})
	}
}

// TestSilkStereoDecodePredRange sweeps random bitstreams and verifies the
// decoded weights stay inside the span of the quantizer table. The second
// weight is bounded by the table directly, the first additionally carries
// the differential offset.
func TestSilkStereoDecodePredRange(t *testing.T) {
	for trial := 0; trial < 200; trial++ {
		buf := lcgBytes(uint32(trial)*2654435761, 16)
		var rd rangecoding.Decoder
		rd.Init(buf)

		var predQ13 [2]int32
		silkStereoDecodePred(&rd, &predQ13)

		if predQ13[1] < -13732 || predQ13[1] > 13732 {
			t.Fatalf("trial %d: predQ13[1] = %d outside quantizer span", trial, predQ13[1])
		}
		if predQ13[0] < -27464 || predQ13[0] > 27464 {
			t.Fatalf("trial %d: predQ13[0] = %d outside differential span", trial, predQ13[0])
		}
	}
}

// TestSilkStereoDecodeMidOnly decodes the mid only flag from both halves
// of its binary distribution.
func TestSilkStereoDecodeMidOnly(t *testing.T) {
	var rd rangecoding.Decoder
	rd.Init(make([]byte, 4))
	if got := silkStereoDecodeMidOnly(&rd); got != 0 {
		t.Errorf("mid only flag from zero buffer = %d, want 0", got)
	}

	rd.Init([]byte{0xff, 0xff, 0xff, 0xff})
	if got := silkStereoDecodeMidOnly(&rd); got != 1 {
		t.Errorf("mid only flag from ones buffer = %d, want 1", got)
	}
}

// TestSilkStereoMSToLR feeds a fixed mid/side pattern through the
// conversion with interpolating predictors and checks the first samples
// of both channels plus the carried history exactly.
func TestSilkStereoMSToLR(t *testing.T) {
	const fsKHz, frameLength = 8, 80

	mid := make([]int16, frameLength+2)
	side := make([]int16, frameLength+2)
	for i := 0; i < frameLength; i++ {
		mid[i+2] = int16((i*37)%200 - 100)
		side[i+2] = int16((i*13)%60 - 30)
	}

	var state stereoDecState
	predQ13 := [2]int32{4000, -2000}
	silkStereoMSToLR(&state, mid, side, &predQ13, fsKHz, frameLength)

	wantLeft := []int16{0, -130, -81, -30, 20, 71, 60, -89, -41, 10, 61, 49}
	wantRight := []int16{0, -70, -45, -22, 2, 25, 110, -67, -41, -18, 5, 91}
	for i := range wantLeft {
		if mid[i+1] != wantLeft[i] {
			t.Errorf("left[%d] = %d, want %d", i, mid[i+1], wantLeft[i])
		}
		if side[i+1] != wantRight[i] {
			t.Errorf("right[%d] = %d, want %d", i, side[i+1], wantRight[i])
		}
	}

	var sumL, sumR int64
	for n := 1; n <= frameLength; n++ {
		l, r := int64(mid[n]), int64(side[n])
		if l < 0 {
			l = -l
		}
		if r < 0 {
			r = -r
		}
		sumL += l
		sumR += r
	}
	if sumL != 4310 || sumR != 3874 {
		t.Errorf("abs sums = %d, %d, want 4310, 3874", sumL, sumR)
	}

	if state.predPrevQ13 != predQ13 {
		t.Errorf("predPrevQ13 = %v, want %v", state.predPrevQ13, predQ13)
	}
	if state.sMid != [2]int16{-14, 23} {
		t.Errorf("sMid = %v, want [-14 23]", state.sMid)
	}
	if state.sSide != [2]int16{24, -23} {
		t.Errorf("sSide = %v, want [24 -23]", state.sSide)
	}
}

// TestSilkStereoMSToLRZeroSide verifies that a zero side channel with zero
// predictors reproduces the mid signal on both outputs.
func TestSilkStereoMSToLRZeroSide(t *testing.T) {
	const fsKHz, frameLength = 16, 320

	mid := make([]int16, frameLength+2)
	side := make([]int16, frameLength+2)
	for i := 0; i < frameLength; i++ {
		mid[i+2] = int16(((i * 73) % 4001) - 2000)
	}
	want := make([]int16, len(mid))
	copy(want, mid)

	var state stereoDecState
	predQ13 := [2]int32{0, 0}
	silkStereoMSToLR(&state, mid, side, &predQ13, fsKHz, frameLength)

	for n := 1; n <= frameLength; n++ {
		if mid[n] != side[n] {
			t.Fatalf("left[%d] = %d, right = %d, channels differ", n, mid[n], side[n])
		}
	}
	// History slot is zero, the rest is the delayed mid input.
	if mid[1] != 0 {
		t.Errorf("left[0] = %d, want 0 from empty history", mid[1])
	}
	for n := 2; n <= frameLength; n++ {
		if mid[n] != want[n] {
			t.Fatalf("left[%d] = %d, want unchanged mid %d", n, mid[n], want[n])
		}
	}
}

// TestSilkStereoMSToLRSaturation drives the conversion with full scale
// inputs and maximal predictors and verifies the outputs clamp instead of
// wrapping.
func TestSilkStereoMSToLRSaturation(t *testing.T) {
	const fsKHz, frameLength = 8, 80

	mid := make([]int16, frameLength+2)
	side := make([]int16, frameLength+2)
	for i := 0; i < frameLength; i++ {
		mid[i+2] = 32767
		side[i+2] = 32767
	}

	var state stereoDecState
	predQ13 := [2]int32{13732, 13732}
	silkStereoMSToLR(&state, mid, side, &predQ13, fsKHz, frameLength)

	// First output sample still sees the zero history, afterwards the side
	// prediction saturates, the left channel clamps at full scale and the
	// right collapses to zero.
	if mid[1] != 215 || side[1] != -215 {
		t.Errorf("first sample = %d, %d, want 215, -215", mid[1], side[1])
	}
	for n := 2; n <= frameLength; n++ {
		if mid[n] != 32767 {
			t.Fatalf("left[%d] = %d, want clamped 32767", n, mid[n])
		}
		if side[n] != 0 {
			t.Fatalf("right[%d] = %d, want 0", n, side[n])
		}
	}
}
