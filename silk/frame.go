package silk

// FrameDuration represents SILK frame duration in milliseconds.
// 40ms and 60ms packets carry two or three 20ms frames that share one set
// of header flags, per RFC 6716 Section 4.2.3.
type FrameDuration int

const (
	// Frame10ms is a 10ms SILK frame (2 subframes).
	Frame10ms FrameDuration = 10
	// Frame20ms is a 20ms SILK frame (4 subframes).
	Frame20ms FrameDuration = 20
	// Frame40ms is a 40ms SILK packet (two 20ms frames).
	Frame40ms FrameDuration = 40
	// Frame60ms is a 60ms SILK packet (three 20ms frames).
	Frame60ms FrameDuration = 60
)
