package rangecoding

import "math/bits"

// Decoder implements the range decoder per RFC 6716 Section 4.1.
// This is a bit-exact port of the reference entropy decoder.
type Decoder struct {
	buf        []byte // Input buffer
	storage    uint32 // Buffer size
	offs       uint32 // Current read offset
	endOffs    uint32 // End offset for raw bits
	endWindow  uint32 // Window for raw bits at end
	nendBits   int    // Number of valid bits in end window
	nbitsTotal int    // Total bits read (for tell functions)
	rng        uint32 // Range size (must stay > EC_CODE_BOT after normalize)
	val        uint32 // Current value in range
	rem        int    // Buffered partial byte
}

// Init initializes the decoder over the given byte buffer.
// The buffer is not copied; it must stay unmodified while decoding.
func (d *Decoder) Init(buf []byte) {
	d.buf = buf
	d.storage = uint32(len(buf))
	d.offs = 0
	d.endOffs = 0
	d.endWindow = 0
	d.nendBits = 0

	// Initialize range to 1 << EC_CODE_EXTRA (128)
	d.rng = 1 << EC_CODE_EXTRA

	// Read first byte and compute initial value
	d.rem = int(d.readByte())
	d.val = d.rng - 1 - uint32(d.rem>>(EC_SYM_BITS-EC_CODE_EXTRA))

	// Set initial bit count BEFORE normalize. This compensates for bits
	// that will be added in normalize().
	d.nbitsTotal = EC_CODE_BITS + 1 -
		((EC_CODE_BITS-EC_CODE_EXTRA)/EC_SYM_BITS)*EC_SYM_BITS

	// Normalize to fill the range (this adds more bits to nbitsTotal)
	d.normalize()
}

// readByte reads the next byte from the buffer.
// Reads past the end return 0, per RFC 6716 Section 4.1.1 the tail of the
// stream is treated as an infinite run of zero bits.
func (d *Decoder) readByte() byte {
	if d.offs < d.storage {
		b := d.buf[d.offs]
		d.offs++
		return b
	}
	return 0
}

// normalize ensures rng > EC_CODE_BOT by reading more bytes.
// This is the renormalization loop from RFC 6716 Section 4.1.2.1.
func (d *Decoder) normalize() {
	for d.rng <= EC_CODE_BOT {
		d.nbitsTotal += EC_SYM_BITS
		d.rng <<= EC_SYM_BITS

		// Combine previous remainder with new byte
		sym := d.rem
		d.rem = int(d.readByte())
		sym = (sym<<EC_SYM_BITS | d.rem) >> (EC_SYM_BITS - EC_CODE_EXTRA)

		// Update val: shift in new bits, mask to valid range
		d.val = ((d.val << EC_SYM_BITS) + uint32(EC_SYM_MAX&^sym)) & (EC_CODE_TOP - 1)
	}
}

// DecodeICDF decodes one symbol from an inverse cumulative distribution
// table. The icdf entries are monotonically non-increasing, represent the
// probability mass above each symbol out of 1<<ftb, and terminate in 0.
// ftb is the number of bits of precision in the table (8 for all SILK
// tables). Returns the decoded symbol index.
func (d *Decoder) DecodeICDF(icdf []uint8, ftb uint) int {
	s := d.rng
	dval := d.val
	r := s >> ftb
	ret := -1
	for {
		t := s
		ret++
		s = r * uint32(icdf[ret])
		if dval >= s {
			d.val = dval - s
			d.rng = t - s
			d.normalize()
			return ret
		}
	}
}

// DecodeBit decodes a single bit with the given log probability.
// logp is the number of bits of probability for a 0 (1 to 15):
// P(0) = 1 - 1/(2^logp), P(1) = 1/(2^logp).
// Returns 0 or 1.
//
// The probability regions are:
//   - [0, s): bit = 1, probability = 1 / 2^logp (bottom region)
//   - [s, rng): bit = 0, probability = (2^logp - 1) / 2^logp
func (d *Decoder) DecodeBit(logp uint) int {
	r := d.rng
	dval := d.val
	s := r >> logp

	ret := 0
	if dval < s {
		ret = 1
	} else {
		d.val = dval - s
	}

	if ret == 1 {
		d.rng = s
	} else {
		d.rng = r - s
	}

	d.normalize()
	return ret
}

// DecodeRawBits reads bits raw bits back-to-front from the end of the
// buffer, outside the range-coded stream. The two streams share the buffer
// and may legally overlap in the middle; reads past their meeting point
// return zero bits.
func (d *Decoder) DecodeRawBits(bits uint) uint32 {
	if bits == 0 {
		return 0
	}

	for d.nendBits < int(bits) {
		if d.endOffs < d.storage {
			d.endOffs++
			d.endWindow |= uint32(d.buf[d.storage-d.endOffs]) << d.nendBits
			d.nendBits += 8
		} else {
			d.nendBits = int(bits) // Remaining bits read as zero
		}
	}

	val := d.endWindow & ((1 << bits) - 1)
	d.endWindow >>= bits
	d.nendBits -= int(bits)
	d.nbitsTotal += int(bits)

	return val
}

// Tell returns the number of bits consumed so far, rounded up.
func (d *Decoder) Tell() int {
	return d.nbitsTotal - ilog(d.rng)
}

// TellFrac returns the number of bits consumed with 1/8 bit precision.
// Divide by 8 to compare with Tell().
func (d *Decoder) TellFrac() int {
	correction := [8]uint32{35733, 38967, 42495, 46340, 50535, 55109, 60097, 65535}

	nbits := d.nbitsTotal << 3
	l := ilog(d.rng)
	r := d.rng >> (l - 16)
	b := int((r >> 12) - 8)
	if r > correction[b] {
		b++
	}
	return nbits - ((l << 3) + b)
}

// ilog computes the integer log base 2 (position of highest set bit + 1).
// Returns 0 for input 0.
func ilog(x uint32) int {
	return bits.Len32(x)
}
