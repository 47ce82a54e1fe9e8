package silk

import (
	"testing"

	"github.com/MoosicBox/gosilk/rangecoding"
)

// TestSilkDecodePulses feeds fixed pseudo random bitstreams through the
// full pulse decode chain, rate level through signs, and checks the exact
// excitation vectors that come out. The 120 sample case exercises the
// partial shell block at the end of a 10 ms mediumband frame.
func TestSilkDecodePulses(t *testing.T) {
	tests := []struct {
		name            string
		seed            uint32
		signalType      int
		quantOffsetType int
		frameLength     int
		want            []int16
	}{
		{
			"NB 10ms inactive", 7, typeNoVoiceActivity, 0, 80,
			[]int16{
				-1, 0, 0, 0, 0, 0, 1, 0, 1, -1, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 1, 0, -1, 0, 1, 0, 1, 0, 0, 0, 0, 0,
				0, 0, -1, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0,
			},
		},
		{
			"NB 20ms voiced high offset", 42, typeVoiced, 1, 160,
			[]int16{
				0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
				-1, -1, 0, -1, 0, 0, 0, 2, -1, -2, 0, -1, 0, 0, -2, 0,
				0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, 0,
				0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, -2, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0, -1, 1, 0, 0, 0, -1, 0, 0,
				-1, 0, 0, 0, -1, 0, 0, 0, -1, -1, -1, -1, 1, -1, 0, 0,
			},
		},
		{
			"MB 10ms unvoiced partial block", 99, typeUnvoiced, 0, 120,
			[]int16{
				0, 0, 0, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 1, -1, -1, 0, 0, -1, -1, 0, 0, 0, -1, -2, -1, 0,
				0, 0, 0, 0, 0, 0, 0, -1, 0, -1, -2, 0, 0, 1, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 1, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0, -1, -1, 0, 0, 0, -1, 0, -1,
				0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0, -1, 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := lcgBytes(tt.seed, tt.frameLength)
			var rd rangecoding.Decoder
			rd.Init(buf)

			padded := (tt.frameLength + shellCodecFrameLength - 1) &^ (shellCodecFrameLength - 1)
			if padded != len(tt.want) {
				t.Fatalf("padded length = %d, want table has %d", padded, len(tt.want))
			}
			pulses := make([]int16, padded)
			silkDecodePulses(&rd, pulses, tt.signalType, tt.quantOffsetType, tt.frameLength)

			for i := range tt.want {
				if pulses[i] != tt.want[i] {
					t.Fatalf("pulses[%d] = %d, want %d", i, pulses[i], tt.want[i])
				}
			}
		})
	}
}

// TestSilkDecodePulsesDeterministic runs the same bitstream through two
// fresh range decoders and verifies identical excitation both times.
func TestSilkDecodePulsesDeterministic(t *testing.T) {
	buf := lcgBytes(0xfeed, 320)

	decode := func() []int16 {
		var rd rangecoding.Decoder
		rd.Init(buf)
		pulses := make([]int16, 320)
		silkDecodePulses(&rd, pulses, typeVoiced, 0, 320)
		return pulses
	}

	a, b := decode(), decode()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pulses[%d] differs between runs: %d vs %d", i, a[i], b[i])
		}
	}
}

// TestSilkShellDecoder verifies the split tree invariant: the decoded
// magnitudes of one shell block always sum to the block pulse count, and
// no magnitude is negative before sign decoding.
func TestSilkShellDecoder(t *testing.T) {
	for p := 1; p <= silkMaxPulses; p++ {
		buf := lcgBytes(uint32(1000+p), 64)
		var rd rangecoding.Decoder
		rd.Init(buf)

		var pulses [shellCodecFrameLength]int16
		silkShellDecoder(pulses[:], &rd, p)

		sum := 0
		for k, v := range pulses {
			if v < 0 {
				t.Fatalf("p=%d: pulses[%d] = %d, negative before sign pass", p, k, v)
			}
			sum += int(v)
		}
		if sum != p {
			t.Errorf("p=%d: magnitudes sum to %d, want %d", p, sum, p)
		}
	}
}

// TestSilkDecodeSigns checks that the sign pass only ever flips nonzero
// entries and never changes a magnitude.
func TestSilkDecodeSigns(t *testing.T) {
	const length = 160
	pulses := make([]int16, length)
	sumPulses := make([]int, length/shellCodecFrameLength)
	for i := range sumPulses {
		for j := 0; j <= i && j < shellCodecFrameLength; j++ {
			pulses[i*shellCodecFrameLength+j] = int16(j%3 + 1)
			sumPulses[i] += j%3 + 1
		}
	}
	orig := make([]int16, length)
	copy(orig, pulses)

	var rd rangecoding.Decoder
	rd.Init(lcgBytes(0x516e, 64))
	silkDecodeSigns(&rd, pulses, length, typeUnvoiced, 1, sumPulses)

	flipped := 0
	for i := range pulses {
		if orig[i] == 0 {
			if pulses[i] != 0 {
				t.Errorf("pulses[%d] = %d, zero entry gained a value", i, pulses[i])
			}
			continue
		}
		got := pulses[i]
		if got < 0 {
			got = -got
			flipped++
		}
		if got != orig[i] {
			t.Errorf("pulses[%d] magnitude = %d, want %d", i, got, orig[i])
		}
	}
	if flipped == 0 {
		t.Error("no sign was flipped across 160 samples")
	}
}

// lcgBytes produces a deterministic pseudo random byte stream for
// bitstream tests.
func lcgBytes(seed uint32, n int) []byte {
	state := seed
	buf := make([]byte, n)
	for i := range buf {
		state = state*1664525 + 1013904223
		buf[i] = byte(state >> 24)
	}
	return buf
}
