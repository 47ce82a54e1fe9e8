package silk

// ICDF tables for SILK parameter decoding, RFC 6716 Section 4.2.7.
// Entries are monotonically non-increasing with an implicit 256 start and a
// 0 terminator, as consumed by rangecoding.Decoder.DecodeICDF with 8-bit
// precision. Names track the reference tables to ease cross-checking.

// Frame type and quantization offset, RFC 6716 Tables 11 and 12.

var silk_type_offset_VAD_iCDF = []uint8{232, 158, 10, 0}

var silk_type_offset_no_VAD_iCDF = []uint8{230, 0}

// Gain indices, RFC 6716 Tables 13 and 14. MSB tables are selected by
// signal type (inactive, unvoiced, voiced).

var silk_gain_iCDF = [3][]uint8{
	{224, 112, 44, 15, 3, 2, 1, 0},
	{254, 237, 192, 132, 70, 23, 4, 0},
	{255, 252, 226, 155, 61, 11, 2, 0},
}

var silk_delta_gain_iCDF = []uint8{
	250, 245, 234, 203, 71, 50, 42, 38,
	35, 33, 31, 29, 28, 27, 26, 25,
	24, 23, 22, 21, 20, 19, 18, 17,
	16, 15, 14, 13, 12, 11, 10, 9,
	8, 7, 6, 5, 4, 3, 2, 1,
	0,
}

// Uniform distributions for low bits (gain LSBs, fine pitch lag, LCG seed,
// stereo fine indices).

var silk_uniform3_iCDF = []uint8{171, 85, 0}

var silk_uniform4_iCDF = []uint8{192, 128, 64, 0}

var silk_uniform5_iCDF = []uint8{205, 154, 102, 51, 0}

var silk_uniform6_iCDF = []uint8{213, 171, 128, 85, 43, 0}

var silk_uniform8_iCDF = []uint8{224, 192, 160, 128, 96, 64, 32, 0}

// NLSF stage-1 index, RFC 6716 Table 15. Two distributions per bandwidth
// group: first half unvoiced/inactive, second half voiced.

var silk_NLSF_CB1_iCDF_NB_MB = []uint8{
	212, 178, 148, 129, 108, 96, 85, 82,
	79, 77, 61, 59, 57, 56, 51, 49,
	48, 45, 42, 41, 40, 38, 36, 34,
	31, 30, 21, 12, 10, 3, 1, 0,
	255, 245, 244, 236, 233, 225, 217, 203,
	190, 176, 170, 163, 156, 154, 140, 132,
	124, 122, 119, 104, 100, 92, 87, 81,
	59, 52, 38, 35, 33, 31, 24, 0,
}

var silk_NLSF_CB1_iCDF_WB = []uint8{
	225, 204, 201, 184, 183, 175, 158, 154,
	148, 145, 142, 133, 129, 114, 112, 102,
	96, 87, 83, 77, 73, 64, 59, 56,
	47, 42, 38, 35, 32, 16, 2, 0,
	255, 251, 235, 230, 212, 201, 196, 182,
	167, 166, 163, 151, 138, 124, 110, 104,
	90, 78, 76, 70, 69, 57, 45, 34,
	24, 21, 11, 6, 5, 4, 3, 0,
}

// NLSF stage-2 residuals, RFC 6716 Table 16. Eight 9-symbol distributions
// per bandwidth group, stored flat; decode offsets come from the codebook
// selection nibbles.

var silk_NLSF_CB2_iCDF_NB_MB = []uint8{
	255, 254, 253, 238, 14, 3, 2, 1, 0,
	255, 254, 252, 218, 35, 3, 2, 1, 0,
	255, 254, 250, 208, 59, 4, 2, 1, 0,
	255, 254, 246, 194, 71, 10, 2, 1, 0,
	255, 252, 236, 183, 82, 8, 2, 1, 0,
	255, 252, 235, 180, 90, 17, 2, 1, 0,
	255, 248, 224, 171, 97, 30, 4, 1, 0,
	255, 254, 236, 173, 95, 37, 7, 1, 0,
}

var silk_NLSF_CB2_iCDF_WB = []uint8{
	255, 254, 253, 244, 12, 3, 2, 1, 0,
	255, 254, 252, 224, 38, 3, 2, 1, 0,
	255, 254, 251, 209, 57, 4, 2, 1, 0,
	255, 254, 244, 195, 69, 4, 2, 1, 0,
	255, 251, 232, 184, 84, 7, 2, 1, 0,
	255, 254, 240, 186, 86, 14, 2, 1, 0,
	255, 254, 239, 178, 91, 30, 5, 1, 0,
	255, 248, 227, 177, 100, 19, 2, 1, 0,
}

// Stage-2 codebook selection, one nibble per coefficient: bits 1-3 pick the
// residual distribution, bit 0 picks the predictor set.

var silk_NLSF_CB2_SELECT_NB_MB = []uint8{
	16, 0, 0, 0, 0, 99, 66, 36, 36, 34,
	36, 34, 34, 34, 34, 66, 68, 36, 36, 34,
	100, 102, 70, 68, 68, 160, 102, 68, 68, 34,
	64, 68, 68, 68, 36, 100, 140, 136, 138, 170,
	132, 170, 168, 200, 136, 132, 232, 168, 168, 138,
	104, 102, 100, 68, 68, 162, 202, 168, 168, 170,
	228, 200, 170, 170, 170, 228, 170, 170, 202, 138,
	102, 138, 168, 168, 136, 100, 166, 138, 136, 136,
	132, 200, 168, 168, 170, 164, 200, 170, 138, 138,
	228, 168, 168, 168, 170, 164, 200, 206, 202, 138,
	198, 142, 172, 202, 168, 228, 140, 136, 138, 170,
	168, 138, 204, 202, 138, 164, 202, 202, 200, 136,
	168, 170, 230, 168, 138, 100, 168, 202, 168, 138,
	100, 100, 134, 100, 102, 34, 68, 68, 100, 68,
	168, 202, 204, 202, 168, 166, 138, 136, 104, 70,
	164, 230, 170, 136, 138, 136, 138, 202, 202, 138,
}

var silk_NLSF_CB2_SELECT_WB = []uint8{
	16, 0, 0, 0, 0, 0, 0, 0, 99, 38,
	66, 68, 34, 36, 34, 34, 36, 34, 34, 34,
	34, 34, 34, 34, 66, 68, 68, 68, 34, 36,
	34, 34, 100, 102, 102, 102, 68, 68, 68, 68,
	160, 106, 102, 68, 68, 68, 36, 34, 64, 68,
	68, 68, 68, 68, 68, 36, 100, 198, 140, 136,
	136, 138, 168, 170, 132, 168, 170, 136, 170, 200,
	140, 136, 132, 136, 232, 136, 170, 168, 170, 138,
	104, 102, 102, 68, 102, 68, 68, 68, 162, 170,
	202, 136, 170, 168, 170, 170, 228, 142, 200, 170,
	170, 170, 170, 170, 228, 174, 170, 170, 170, 202,
	172, 138, 102, 166, 138, 136, 170, 168, 138, 136,
	100, 102, 166, 170, 136, 136, 136, 136, 132, 136,
	200, 136, 170, 168, 170, 170, 164, 138, 200, 170,
	170, 138, 168, 138, 228, 142, 168, 136, 170, 168,
	170, 170, 164, 138, 200, 238, 204, 202, 172, 138,
	198, 236, 142, 204, 170, 202, 140, 168, 228, 206,
	140, 136, 136, 138, 168, 170, 168, 170, 138, 204,
	204, 202, 172, 138, 164, 170, 202, 170, 204, 200,
	140, 136, 168, 170, 170, 102, 238, 168, 170, 138,
	100, 134, 168, 170, 204, 168, 170, 138, 100, 70,
	100, 102, 136, 100, 102, 102, 34, 66, 68, 68,
	68, 100, 70, 68, 168, 170, 202, 204, 204, 202,
	140, 168, 166, 170, 138, 136, 136, 104, 102, 70,
	164, 106, 230, 170, 170, 136, 168, 138, 136, 168,
	138, 170, 204, 202, 172, 138,
}

// Index extension beyond the +/-4 residual range and interpolation factor,
// RFC 6716 Tables 17 and 26.

var silk_NLSF_EXT_iCDF = []uint8{100, 40, 16, 7, 3, 1, 0}

var silk_NLSF_interpolation_factor_iCDF = []uint8{243, 221, 192, 181, 0}

// NLSF backward predictors, Q8, two sets of order-1 coefficients each.

var silk_NLSF_PRED_NB_MB_Q8 = []uint8{
	179, 138, 140, 148, 151, 149, 153, 151, 163,
	116, 67, 82, 59, 92, 72, 100, 89, 92,
}

var silk_NLSF_PRED_WB_Q8 = []uint8{
	175, 148, 160, 176, 178, 173, 174, 164, 177, 174, 196, 182, 198, 192, 182,
	68, 62, 66, 60, 72, 117, 85, 90, 118, 136, 151, 142, 160, 142, 155,
}

// Minimum NLSF spacing for stabilization, Q15, order+1 entries.

var silk_NLSF_DELTA_MIN_NB_MB_Q15 = []int16{
	250, 3, 6, 3, 3, 3, 4, 3, 3, 3, 461,
}

var silk_NLSF_DELTA_MIN_WB_Q15 = []int16{
	100, 3, 40, 3, 3, 3, 5, 14, 14, 10, 11, 3, 8, 9, 7, 3, 347,
}

// NLSF stage-1 codebooks, Q8, 32 vectors each.

var silk_NLSF_CB1_NB_MB_Q8 = []uint8{
	12, 35, 60, 83, 108, 132, 157, 180, 206, 228,
	15, 32, 55, 77, 101, 125, 151, 175, 201, 225,
	19, 42, 66, 89, 114, 137, 162, 184, 209, 230,
	12, 25, 50, 72, 97, 120, 147, 172, 200, 223,
	26, 44, 69, 90, 114, 135, 159, 180, 205, 225,
	13, 22, 53, 80, 106, 130, 156, 180, 205, 228,
	15, 25, 44, 64, 90, 115, 142, 168, 196, 222,
	19, 24, 62, 82, 100, 120, 145, 168, 190, 214,
	22, 31, 50, 79, 103, 120, 151, 170, 203, 227,
	21, 29, 45, 65, 106, 124, 150, 171, 196, 224,
	30, 49, 75, 97, 121, 142, 165, 186, 209, 229,
	19, 25, 52, 70, 93, 116, 143, 166, 192, 219,
	26, 34, 62, 75, 97, 118, 145, 167, 194, 217,
	25, 33, 56, 70, 91, 113, 143, 165, 196, 223,
	21, 34, 51, 72, 97, 117, 145, 171, 196, 222,
	20, 29, 50, 67, 90, 117, 144, 168, 197, 221,
	22, 31, 48, 66, 95, 117, 146, 168, 196, 222,
	24, 33, 51, 77, 116, 134, 158, 180, 200, 224,
	21, 28, 70, 87, 106, 124, 149, 170, 194, 217,
	26, 33, 53, 64, 83, 117, 152, 173, 204, 225,
	27, 34, 65, 95, 108, 129, 155, 174, 210, 225,
	20, 26, 72, 99, 113, 131, 154, 176, 200, 219,
	34, 43, 61, 78, 93, 114, 155, 177, 205, 229,
	23, 29, 54, 97, 124, 138, 163, 179, 209, 229,
	30, 38, 56, 89, 118, 129, 158, 178, 200, 231,
	21, 29, 49, 63, 85, 111, 142, 163, 193, 222,
	27, 48, 77, 103, 133, 158, 179, 196, 215, 232,
	29, 47, 74, 99, 124, 151, 176, 198, 220, 237,
	33, 42, 61, 76, 93, 121, 155, 174, 207, 225,
	29, 53, 87, 112, 136, 154, 170, 188, 208, 227,
	24, 30, 52, 84, 131, 150, 166, 186, 203, 229,
	37, 48, 64, 84, 104, 118, 156, 177, 201, 230,
}

var silk_NLSF_CB1_WB_Q8 = []uint8{
	7, 23, 38, 54, 69, 85, 100, 116, 131, 147, 162, 178, 193, 208, 223, 239,
	13, 25, 41, 55, 69, 83, 98, 112, 127, 142, 157, 171, 187, 203, 220, 236,
	15, 21, 34, 51, 61, 78, 92, 106, 126, 136, 152, 167, 185, 205, 225, 240,
	10, 21, 36, 50, 63, 79, 95, 110, 126, 141, 157, 173, 189, 205, 221, 237,
	17, 20, 37, 51, 59, 78, 89, 107, 123, 134, 150, 164, 184, 205, 224, 240,
	10, 15, 32, 51, 67, 81, 96, 112, 129, 142, 158, 173, 189, 204, 220, 236,
	8, 21, 37, 51, 65, 79, 98, 113, 126, 138, 155, 168, 179, 192, 209, 218,
	12, 15, 34, 55, 63, 78, 87, 108, 118, 131, 148, 167, 185, 203, 219, 236,
	16, 19, 32, 36, 56, 79, 91, 108, 118, 136, 154, 171, 186, 204, 220, 237,
	11, 28, 43, 58, 74, 89, 105, 120, 135, 150, 165, 180, 196, 211, 226, 241,
	6, 16, 33, 46, 60, 75, 92, 107, 123, 137, 156, 169, 185, 199, 214, 225,
	11, 19, 30, 44, 57, 74, 89, 105, 121, 135, 152, 169, 186, 202, 218, 234,
	12, 19, 29, 46, 57, 71, 88, 100, 120, 132, 148, 165, 182, 199, 216, 233,
	17, 23, 35, 46, 56, 77, 92, 106, 123, 134, 152, 167, 185, 204, 222, 237,
	14, 17, 45, 53, 63, 75, 89, 107, 115, 132, 151, 171, 188, 206, 221, 240,
	9, 16, 29, 40, 56, 71, 88, 103, 119, 137, 154, 171, 189, 205, 222, 237,
	16, 19, 36, 48, 57, 76, 87, 105, 118, 132, 150, 167, 185, 202, 218, 236,
	12, 17, 29, 54, 71, 81, 94, 104, 126, 136, 149, 164, 182, 201, 221, 237,
	15, 28, 47, 62, 79, 97, 115, 129, 142, 155, 168, 180, 194, 208, 223, 238,
	8, 14, 30, 45, 62, 78, 94, 111, 127, 143, 159, 175, 192, 207, 223, 239,
	17, 30, 49, 62, 79, 92, 107, 119, 132, 145, 160, 174, 190, 204, 220, 235,
	14, 19, 36, 45, 61, 76, 91, 108, 121, 138, 154, 172, 189, 205, 222, 238,
	12, 18, 31, 45, 60, 76, 91, 107, 123, 138, 154, 171, 187, 204, 221, 236,
	13, 17, 31, 43, 53, 70, 83, 103, 114, 131, 149, 167, 185, 203, 220, 237,
	17, 22, 35, 42, 58, 78, 93, 110, 125, 139, 155, 170, 188, 206, 224, 240,
	8, 15, 34, 50, 67, 83, 99, 115, 131, 146, 162, 178, 193, 209, 224, 239,
	13, 16, 41, 66, 73, 86, 95, 111, 128, 137, 150, 163, 183, 206, 225, 241,
	17, 25, 37, 52, 63, 75, 92, 102, 119, 132, 144, 160, 175, 191, 212, 231,
	19, 31, 49, 65, 83, 100, 117, 133, 147, 161, 174, 187, 200, 213, 227, 242,
	18, 31, 52, 68, 88, 103, 117, 126, 138, 149, 163, 177, 192, 207, 223, 239,
	16, 29, 47, 61, 76, 90, 106, 119, 133, 147, 161, 176, 193, 209, 224, 240,
	15, 21, 35, 50, 61, 73, 86, 97, 110, 119, 129, 141, 175, 198, 218, 237,
}

// Pitch lag, RFC 6716 Section 4.2.7.6.1. The high part of an absolute lag
// uses silk_pitch_lag_iCDF; the low part a uniform distribution scaled to
// the sample rate. Relative lags use silk_pitch_delta_iCDF.

var silk_pitch_lag_iCDF = []uint8{
	253, 250, 244, 233, 212, 182, 150, 131,
	120, 110, 98, 85, 72, 60, 49, 40,
	32, 25, 19, 15, 13, 11, 9, 8,
	7, 6, 5, 4, 3, 2, 1, 0,
}

var silk_pitch_delta_iCDF = []uint8{
	210, 208, 206, 203, 199, 193, 183, 168,
	142, 104, 74, 52, 37, 27, 20, 14,
	10, 6, 4, 2, 0,
}

// Pitch contour distributions, selected by bandwidth and frame length.

var silk_pitch_contour_iCDF = []uint8{
	223, 201, 183, 167, 152, 138, 124, 111,
	98, 88, 79, 70, 62, 56, 50, 44,
	39, 35, 31, 27, 24, 21, 18, 16,
	14, 12, 10, 8, 6, 4, 3, 2,
	1, 0,
}

var silk_pitch_contour_NB_iCDF = []uint8{
	188, 176, 155, 138, 119, 97, 67, 43,
	26, 10, 0,
}

var silk_pitch_contour_10_ms_iCDF = []uint8{
	165, 119, 80, 61, 47, 35, 27, 20,
	14, 9, 4, 0,
}

var silk_pitch_contour_10_ms_NB_iCDF = []uint8{
	113, 63, 0,
}

// Per-subframe lag offsets for each pitch contour. Rows are subframes,
// columns contour codebook entries.

var silk_CB_lags_stage2_10_ms = [][]int8{
	{0, 1, 0},
	{0, 0, 1},
}

var silk_CB_lags_stage2 = [][]int8{
	{0, 2, -1, -1, -1, 0, 0, 1, 1, 0, 1},
	{0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0},
	{0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0},
	{0, -1, 2, 1, 0, 1, 1, 0, 0, -1, -1},
}

var silk_CB_lags_stage3_10_ms = [][]int8{
	{0, 0, 1, -1, 1, -1, 2, -2, 2, -2, 3, -3},
	{0, 1, 0, 1, -1, 2, -1, 2, -2, 3, -2, 3},
}

var silk_CB_lags_stage3 = [][]int8{
	{0, 0, 1, -1, 0, 1, -1, 0, -1, 1, -2, 2, -2, -2, 2, -3, 2, 3, -3, -4, 3, -4, 4, 4, -5, 5, -6, -5, 6, -7, 6, 5, 8, -9},
	{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, -1, 1, 0, 0, 1, -1, 0, 1, -1, -1, 1, -1, 2, 1, -1, 2, -2, -2, 2, -2, 2, 2, 3, -3},
	{0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1, -1, 1, 0, 0, 2, 1, -1, 2, -1, -1, 2, -1, 2, 2, -1, 3, -2, -2, -2, 3},
	{0, 1, 0, 0, 1, 0, 1, -1, 2, -1, 2, -1, 2, 3, -2, 3, -2, -2, 4, 4, -3, 5, -3, -4, 6, -4, 6, 5, -5, 8, -6, -5, -7, 9},
}

// LTP filter, RFC 6716 Section 4.2.7.6.2. The periodicity index selects
// one of three codebooks of 5-tap filters, Q7.

var silk_LTP_per_index_iCDF = []uint8{179, 99, 0}

var silk_LTP_gain_iCDF_0 = []uint8{
	71, 56, 43, 30, 21, 12, 6, 0,
}

var silk_LTP_gain_iCDF_1 = []uint8{
	199, 165, 144, 124, 109, 96, 84, 71,
	61, 51, 42, 32, 23, 15, 8, 0,
}

var silk_LTP_gain_iCDF_2 = []uint8{
	241, 225, 211, 199, 187, 175, 164, 153,
	142, 132, 123, 114, 105, 96, 88, 80,
	72, 64, 57, 50, 44, 38, 33, 29,
	24, 20, 16, 12, 9, 5, 2, 0,
}

var silk_LTP_gain_iCDF_ptrs = [3][]uint8{
	silk_LTP_gain_iCDF_0,
	silk_LTP_gain_iCDF_1,
	silk_LTP_gain_iCDF_2,
}

var silk_LTP_gain_vq_0 = [8][5]int8{
	{4, 6, 24, 7, 5},
	{0, 0, 2, 0, 0},
	{12, 28, 41, 13, -4},
	{-9, 15, 42, 25, 14},
	{1, -2, 62, 41, -9},
	{-10, 37, 65, -4, 3},
	{-6, 4, 66, 7, -8},
	{16, 14, 38, -3, 33},
}

var silk_LTP_gain_vq_1 = [16][5]int8{
	{13, 22, 39, 23, 12},
	{-1, 36, 64, 27, -6},
	{-7, 10, 55, 43, 17},
	{1, 1, 8, 1, 1},
	{6, -11, 74, 53, -9},
	{-12, 55, 76, -12, 8},
	{-3, 3, 93, 27, -4},
	{26, 39, 59, 3, -8},
	{2, 0, 77, 11, 9},
	{-8, 22, 44, -6, 7},
	{40, 9, 26, 3, 9},
	{-7, 20, 101, -7, 4},
	{3, -8, 42, 26, 0},
	{-15, 33, 68, 2, 23},
	{-2, 55, 46, -2, 15},
	{3, -1, 21, 16, 41},
}

var silk_LTP_gain_vq_2 = [32][5]int8{
	{-6, 27, 61, 39, 5},
	{-11, 42, 88, 4, 1},
	{-2, 60, 65, 6, -4},
	{-1, -5, 73, 56, 1},
	{-9, 19, 94, 29, -9},
	{0, 12, 99, 6, 4},
	{8, -19, 102, 46, -13},
	{3, 2, 13, 3, 2},
	{9, -21, 84, 72, -18},
	{-11, 46, 104, -22, 8},
	{18, 38, 48, 23, 0},
	{-16, 70, 83, -21, 11},
	{5, -11, 117, 22, -8},
	{-6, 23, 117, -12, 3},
	{3, -8, 95, 28, 4},
	{-10, 15, 77, 60, -15},
	{-1, 4, 124, 2, -4},
	{3, 38, 84, 24, -25},
	{2, 13, 42, 13, 31},
	{21, -4, 56, 46, -1},
	{-1, 35, 79, -13, 19},
	{-7, 65, 88, -9, -14},
	{20, 4, 81, 49, -29},
	{20, 0, 75, 3, -17},
	{5, -9, 44, 92, -8},
	{1, -3, 22, 69, 31},
	{-6, 95, 41, -12, 5},
	{39, 67, 16, -4, 1},
	{0, -6, 120, 55, -36},
	{-13, 44, 122, 4, -24},
	{81, 5, 11, 3, 7},
	{2, 0, 9, 10, 88},
}

var silk_LTP_vq_ptrs_Q7 = [3][][5]int8{
	silk_LTP_gain_vq_0[:],
	silk_LTP_gain_vq_1[:],
	silk_LTP_gain_vq_2[:],
}

// LTP scaling, RFC 6716 Section 4.2.7.6.3.

var silk_LTPscale_iCDF = []uint8{128, 64, 0}

var silk_LTPScales_table_Q14 = []int16{15565, 12288, 8192}

// Excitation, RFC 6716 Section 4.2.7.8. Rate level selects the
// pulses-per-block distribution; row 9 handles the LSB-extension escape,
// shifted by one entry once ten LSB rounds have been decoded.

var silk_rate_levels_iCDF = [2][]uint8{
	{241, 190, 178, 132, 87, 74, 41, 14, 0},
	{223, 193, 157, 140, 106, 57, 39, 18, 0},
}

var silk_pulses_per_block_iCDF = [10][]uint8{
	{125, 51, 26, 18, 15, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	{198, 105, 45, 22, 15, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	{213, 162, 116, 83, 59, 43, 32, 24, 18, 15, 12, 9, 7, 6, 5, 3, 2, 0},
	{239, 187, 116, 59, 28, 16, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	{250, 229, 188, 135, 86, 51, 30, 19, 13, 10, 8, 6, 5, 4, 3, 2, 1, 0},
	{249, 235, 213, 185, 156, 128, 103, 83, 66, 53, 42, 33, 26, 21, 17, 13, 10, 0},
	{254, 249, 235, 206, 164, 118, 77, 46, 27, 16, 10, 7, 5, 4, 3, 2, 1, 0},
	{255, 253, 249, 239, 220, 191, 156, 119, 85, 57, 37, 23, 13, 7, 4, 2, 1, 0},
	{255, 253, 251, 246, 237, 223, 203, 179, 152, 124, 98, 75, 55, 40, 29, 21, 15, 0},
	{255, 254, 253, 252, 247, 220, 162, 106, 67, 42, 28, 18, 12, 9, 6, 4, 2, 0},
}

// Shell split distributions. Table 3 splits the 16-sample block, table 2
// the 8-sample halves, down to table 0 for 2-sample splits. The subtable
// for a pulse count p starts at silk_shell_code_table_offsets[p] and has
// p+1 entries.

var silk_shell_code_table0 = []uint8{
	128, 0, 214, 42, 0, 235, 128, 21,
	0, 244, 184, 72, 11, 0, 248, 214,
	128, 42, 8, 0, 248, 225, 170, 80,
	25, 5, 0, 251, 236, 198, 126, 54,
	18, 3, 0, 250, 238, 211, 141, 62,
	21, 6, 1, 0, 250, 231, 203, 154,
	101, 49, 22, 9, 2, 0, 250, 240,
	213, 161, 112, 61, 20, 7, 2, 1,
	0, 255, 254, 247, 226, 185, 128, 71,
	30, 9, 2, 1, 0, 255, 254, 250,
	236, 205, 155, 101, 51, 20, 6, 2,
	1, 0, 255, 254, 252, 243, 221, 181,
	128, 75, 35, 13, 4, 2, 1, 0,
	255, 254, 253, 247, 231, 200, 153, 103,
	56, 25, 9, 3, 2, 1, 0, 255,
	254, 253, 249, 238, 215, 176, 128, 80,
	41, 18, 7, 3, 2, 1, 0, 255,
	254, 253, 251, 244, 227, 196, 151, 105,
	60, 29, 12, 5, 3, 2, 1, 0,
}

var silk_shell_code_table1 = []uint8{
	129, 0, 207, 50, 0, 236, 129, 20,
	0, 245, 185, 72, 10, 0, 249, 213,
	134, 49, 9, 0, 250, 226, 178, 87,
	27, 5, 0, 251, 233, 196, 130, 54,
	15, 3, 0, 252, 238, 211, 150, 71,
	22, 6, 1, 0, 253, 243, 220, 167,
	85, 33, 11, 2, 1, 0, 255, 253,
	242, 212, 160, 96, 44, 14, 3, 1,
	0, 255, 254, 247, 226, 185, 128, 71,
	30, 9, 2, 1, 0, 255, 254, 250,
	236, 205, 155, 101, 51, 20, 6, 2,
	1, 0, 255, 254, 252, 243, 221, 181,
	128, 75, 35, 13, 4, 2, 1, 0,
	255, 254, 253, 247, 231, 200, 153, 103,
	56, 25, 9, 3, 2, 1, 0, 255,
	254, 253, 249, 238, 215, 176, 128, 80,
	41, 18, 7, 3, 2, 1, 0, 255,
	254, 253, 251, 244, 227, 196, 151, 105,
	60, 29, 12, 5, 3, 2, 1, 0,
}

var silk_shell_code_table2 = []uint8{
	129, 0, 203, 54, 0, 234, 129, 23,
	0, 245, 184, 73, 10, 0, 250, 215,
	129, 41, 5, 0, 252, 232, 173, 86,
	24, 3, 0, 253, 240, 200, 129, 56,
	15, 2, 0, 253, 244, 217, 164, 94,
	38, 10, 1, 0, 254, 247, 228, 185,
	119, 61, 22, 6, 1, 0, 255, 253,
	242, 212, 160, 96, 44, 14, 3, 1,
	0, 255, 254, 247, 226, 185, 128, 71,
	30, 9, 2, 1, 0, 255, 254, 250,
	236, 205, 155, 101, 51, 20, 6, 2,
	1, 0, 255, 254, 252, 243, 221, 181,
	128, 75, 35, 13, 4, 2, 1, 0,
	255, 254, 253, 247, 231, 200, 153, 103,
	56, 25, 9, 3, 2, 1, 0, 255,
	254, 253, 249, 238, 215, 176, 128, 80,
	41, 18, 7, 3, 2, 1, 0, 255,
	254, 253, 251, 244, 227, 196, 151, 105,
	60, 29, 12, 5, 3, 2, 1, 0,
}

var silk_shell_code_table3 = []uint8{
	130, 0, 200, 58, 0, 231, 130, 26,
	0, 244, 184, 76, 12, 0, 249, 214,
	129, 43, 6, 0, 252, 232, 173, 86,
	24, 3, 0, 253, 241, 203, 131, 56,
	14, 2, 0, 254, 246, 221, 167, 94,
	35, 10, 1, 0, 254, 249, 232, 193,
	130, 65, 23, 5, 1, 0, 255, 253,
	242, 212, 160, 96, 44, 14, 3, 1,
	0, 255, 254, 247, 226, 185, 128, 71,
	30, 9, 2, 1, 0, 255, 254, 250,
	236, 205, 155, 101, 51, 20, 6, 2,
	1, 0, 255, 254, 252, 243, 221, 181,
	128, 75, 35, 13, 4, 2, 1, 0,
	255, 254, 253, 247, 231, 200, 153, 103,
	56, 25, 9, 3, 2, 1, 0, 255,
	254, 253, 249, 238, 215, 176, 128, 80,
	41, 18, 7, 3, 2, 1, 0, 255,
	254, 253, 251, 244, 227, 196, 151, 105,
	60, 29, 12, 5, 3, 2, 1, 0,
}

var silk_shell_code_table_offsets = []int{
	0, 0, 2, 5, 9, 14, 20, 27, 35, 44, 54, 65, 77, 90, 104, 119, 135,
}

// Pulse magnitude LSBs.

var silk_lsb_iCDF = []uint8{120, 0}

// Pulse signs. Six rows of seven entries, indexed by
// 2*signalType + quantOffsetType, then by min(pulse count, 6); each entry
// forms a two-symbol distribution where symbol 0 flips the sign negative.

var silk_sign_iCDF = []uint8{
	254, 49, 67, 77, 82, 93, 99,
	198, 11, 18, 24, 31, 36, 45,
	255, 46, 66, 78, 87, 94, 104,
	208, 14, 21, 32, 42, 51, 66,
	255, 94, 104, 109, 112, 115, 118,
	248, 53, 69, 80, 88, 95, 102,
}

// Excitation quantization offsets, Q10, by signal type group and
// quantization offset type.

var silk_Quantization_Offsets_Q10 = [2][2]int16{
	{100, 240},
	{32, 100},
}

// LBRR per-frame flags for 40 and 60 ms packets.

var silk_LBRR_flags_2_iCDF = []uint8{203, 150, 0}

var silk_LBRR_flags_3_iCDF = []uint8{215, 195, 166, 125, 110, 82, 0}

var silk_LBRR_flags_iCDF_ptr = [2][]uint8{
	silk_LBRR_flags_2_iCDF,
	silk_LBRR_flags_3_iCDF,
}

// Stereo prediction weights, RFC 6716 Section 4.2.7.1. The joint index
// splits into two per-channel triples decoded against
// silk_stereo_pred_quant_Q13.

var silk_stereo_pred_joint_iCDF = []uint8{
	249, 247, 246, 245, 244, 234, 210, 202,
	201, 200, 197, 174, 82, 59, 56, 55,
	54, 46, 22, 12, 11, 10, 9, 7,
	0,
}

var silk_stereo_only_code_mid_iCDF = []uint8{64, 0}

var silk_stereo_pred_quant_Q13 = []int16{
	-13732, -10050, -8266, -7526, -6500, -5000, -2950, -820,
	820, 2950, 5000, 6500, 7526, 8266, 10050, 13732,
}

// Cosine approximation table for LSF conversion, Q12.

var silk_LSFCosTab_FIX_Q12 = []int16{
	8192, 8190, 8182, 8170, 8152, 8130, 8104, 8072,
	8034, 7994, 7946, 7896, 7840, 7778, 7714, 7644,
	7568, 7490, 7406, 7318, 7226, 7128, 7026, 6922,
	6812, 6698, 6580, 6458, 6332, 6204, 6070, 5934,
	5792, 5648, 5502, 5352, 5198, 5040, 4880, 4718,
	4552, 4382, 4212, 4038, 3862, 3684, 3502, 3320,
	3136, 2948, 2760, 2570, 2378, 2186, 1990, 1794,
	1598, 1400, 1202, 1002, 802, 602, 402, 202,
	0, -202, -402, -602, -802, -1002, -1202, -1400,
	-1598, -1794, -1990, -2186, -2378, -2570, -2760, -2948,
	-3136, -3320, -3502, -3684, -3862, -4038, -4212, -4382,
	-4552, -4718, -4880, -5040, -5198, -5352, -5502, -5648,
	-5792, -5934, -6070, -6204, -6332, -6458, -6580, -6698,
	-6812, -6922, -7026, -7128, -7226, -7318, -7406, -7490,
	-7568, -7644, -7714, -7778, -7840, -7896, -7946, -7994,
	-8034, -8072, -8104, -8130, -8152, -8170, -8182, -8190,
	-8192,
}
