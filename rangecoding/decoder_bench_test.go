package rangecoding

import "testing"

func BenchmarkDecodeICDFBinary(b *testing.B) {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i*37 + 11)
	}
	icdf := [2]uint8{128, 0}

	var d Decoder
	d.Init(buf)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Refresh state periodically to keep symbol distribution realistic.
		if i&255 == 0 {
			d.Init(buf)
		}
		_ = d.DecodeICDF(icdf[:], 8)
	}
}
