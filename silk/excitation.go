package silk

import "github.com/MoosicBox/gosilk/rangecoding"

// silkShellDecoder reconstructs the pulse positions of one 16-sample shell
// block by walking the fixed binary split tree, RFC 6716 Section 4.2.7.8.3.
// Each split codes how many of the parent's pulses land in the first half.
func silkShellDecoder(pulses []int16, rd *rangecoding.Decoder, pulses4 int) {
	var pulses3 [2]int16
	var pulses2 [4]int16
	var pulses1 [8]int16

	decodeSplit := func(c1, c2 *int16, p int, table []uint8) {
		if p > 0 {
			*c1 = int16(rd.DecodeICDF(table[silk_shell_code_table_offsets[p]:], 8))
			*c2 = int16(p - int(*c1))
		} else {
			*c1 = 0
			*c2 = 0
		}
	}

	decodeSplit(&pulses3[0], &pulses3[1], pulses4, silk_shell_code_table3)
	decodeSplit(&pulses2[0], &pulses2[1], int(pulses3[0]), silk_shell_code_table2)

	decodeSplit(&pulses1[0], &pulses1[1], int(pulses2[0]), silk_shell_code_table1)
	decodeSplit(&pulses[0], &pulses[1], int(pulses1[0]), silk_shell_code_table0)
	decodeSplit(&pulses[2], &pulses[3], int(pulses1[1]), silk_shell_code_table0)

	decodeSplit(&pulses1[2], &pulses1[3], int(pulses2[1]), silk_shell_code_table1)
	decodeSplit(&pulses[4], &pulses[5], int(pulses1[2]), silk_shell_code_table0)
	decodeSplit(&pulses[6], &pulses[7], int(pulses1[3]), silk_shell_code_table0)

	decodeSplit(&pulses2[2], &pulses2[3], int(pulses3[1]), silk_shell_code_table2)

	decodeSplit(&pulses1[4], &pulses1[5], int(pulses2[2]), silk_shell_code_table1)
	decodeSplit(&pulses[8], &pulses[9], int(pulses1[4]), silk_shell_code_table0)
	decodeSplit(&pulses[10], &pulses[11], int(pulses1[5]), silk_shell_code_table0)

	decodeSplit(&pulses1[6], &pulses1[7], int(pulses2[3]), silk_shell_code_table1)
	decodeSplit(&pulses[12], &pulses[13], int(pulses1[6]), silk_shell_code_table0)
	decodeSplit(&pulses[14], &pulses[15], int(pulses1[7]), silk_shell_code_table0)
}

// silkDecodeSigns flips the sign of nonzero pulses, RFC 6716 Section
// 4.2.7.8.5. The sign distribution depends on signal type, quantization
// offset type and the pulse count of the block, capped at six.
func silkDecodeSigns(rd *rangecoding.Decoder, pulses []int16, length int, signalType int, quantOffsetType int, sumPulses []int) {
	icdf := []uint8{0, 0}
	qPtr := 0
	icdfPtr := silk_sign_iCDF[7*(quantOffsetType+(signalType<<1)):]
	blocks := (length + shellCodecFrameLength/2) >> log2ShellCodecFrameLength
	for i := 0; i < blocks; i++ {
		p := sumPulses[i]
		if p > 0 {
			icdf[0] = icdfPtr[silkMinInt(p&0x1f, 6)]
			for j := 0; j < shellCodecFrameLength; j++ {
				if pulses[qPtr+j] > 0 {
					if rd.DecodeICDF(icdf, 8) == 0 {
						pulses[qPtr+j] = -pulses[qPtr+j]
					}
				}
			}
		}
		qPtr += shellCodecFrameLength
	}
}

// silkDecodePulses decodes the excitation: rate level, pulse counts per
// shell block with LSB extension, pulse positions, extra LSBs and signs.
// RFC 6716 Section 4.2.7.8.
func silkDecodePulses(rd *rangecoding.Decoder, pulses []int16, signalType int, quantOffsetType int, frameLength int) {
	rateLevel := rd.DecodeICDF(silk_rate_levels_iCDF[signalType>>1], 8)
	iter := frameLength >> log2ShellCodecFrameLength
	if iter*shellCodecFrameLength < frameLength {
		iter++
	}

	var sumPulses, nLshifts [maxFrameLength/shellCodecFrameLength + 1]int

	cdfPtr := silk_pulses_per_block_iCDF[rateLevel]
	for i := 0; i < iter; i++ {
		nLshifts[i] = 0
		sumPulses[i] = rd.DecodeICDF(cdfPtr, 8)
		for sumPulses[i] == silkMaxPulses+1 {
			nLshifts[i]++
			// The escape row loses its own escape entry after ten rounds.
			table := silk_pulses_per_block_iCDF[nRateLevels-1]
			if nLshifts[i] == 10 {
				table = table[1:]
			}
			sumPulses[i] = rd.DecodeICDF(table, 8)
		}
	}

	for i := 0; i < iter; i++ {
		off := i * shellCodecFrameLength
		if sumPulses[i] > 0 {
			silkShellDecoder(pulses[off:off+shellCodecFrameLength], rd, sumPulses[i])
		} else {
			for j := 0; j < shellCodecFrameLength; j++ {
				pulses[off+j] = 0
			}
		}
	}

	for i := 0; i < iter; i++ {
		if nLshifts[i] > 0 {
			nLS := nLshifts[i]
			off := i * shellCodecFrameLength
			for k := 0; k < shellCodecFrameLength; k++ {
				absQ := int32(pulses[off+k])
				for j := 0; j < nLS; j++ {
					absQ <<= 1
					absQ += int32(rd.DecodeICDF(silk_lsb_iCDF, 8))
				}
				pulses[off+k] = int16(absQ)
			}
			sumPulses[i] |= nLS << 5
		}
	}

	silkDecodeSigns(rd, pulses, frameLength, signalType, quantOffsetType, sumPulses[:iter])
}
