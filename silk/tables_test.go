package silk

import "testing"

// verifyICDF checks that table is a well formed inverse CDF for
// DecodeICDF with 8-bit precision: entries monotonically non-increasing
// from an implicit 256 and terminated by 0.
func verifyICDF(t *testing.T, name string, table []uint8) {
	t.Helper()
	if len(table) == 0 {
		t.Errorf("%s is empty", name)
		return
	}
	for i := 1; i < len(table); i++ {
		if table[i] > table[i-1] {
			t.Errorf("%s[%d] = %d exceeds preceding entry %d", name, i, table[i], table[i-1])
		}
	}
	if last := table[len(table)-1]; last != 0 {
		t.Errorf("%s ends with %d, want 0 terminator", name, last)
	}
}

// TestICDFTables checks every flat distribution table for ICDF well
// formedness and the symbol count its decode site expects.
func TestICDFTables(t *testing.T) {
	tables := []struct {
		name    string
		table   []uint8
		symbols int
	}{
		{"silk_type_offset_VAD_iCDF", silk_type_offset_VAD_iCDF, 4},
		{"silk_type_offset_no_VAD_iCDF", silk_type_offset_no_VAD_iCDF, 2},
		{"silk_delta_gain_iCDF", silk_delta_gain_iCDF, 41},
		{"silk_uniform3_iCDF", silk_uniform3_iCDF, 3},
		{"silk_uniform4_iCDF", silk_uniform4_iCDF, 4},
		{"silk_uniform5_iCDF", silk_uniform5_iCDF, 5},
		{"silk_uniform6_iCDF", silk_uniform6_iCDF, 6},
		{"silk_uniform8_iCDF", silk_uniform8_iCDF, 8},
		{"silk_NLSF_EXT_iCDF", silk_NLSF_EXT_iCDF, 7},
		{"silk_NLSF_interpolation_factor_iCDF", silk_NLSF_interpolation_factor_iCDF, 5},
		{"silk_pitch_lag_iCDF", silk_pitch_lag_iCDF, 32},
		{"silk_pitch_delta_iCDF", silk_pitch_delta_iCDF, 21},
		{"silk_pitch_contour_iCDF", silk_pitch_contour_iCDF, 34},
		{"silk_pitch_contour_NB_iCDF", silk_pitch_contour_NB_iCDF, 11},
		{"silk_pitch_contour_10_ms_iCDF", silk_pitch_contour_10_ms_iCDF, 12},
		{"silk_pitch_contour_10_ms_NB_iCDF", silk_pitch_contour_10_ms_NB_iCDF, 3},
		{"silk_LTP_per_index_iCDF", silk_LTP_per_index_iCDF, 3},
		{"silk_LTPscale_iCDF", silk_LTPscale_iCDF, 3},
		{"silk_lsb_iCDF", silk_lsb_iCDF, 2},
		{"silk_LBRR_flags_2_iCDF", silk_LBRR_flags_2_iCDF, 3},
		{"silk_LBRR_flags_3_iCDF", silk_LBRR_flags_3_iCDF, 7},
		{"silk_stereo_pred_joint_iCDF", silk_stereo_pred_joint_iCDF, 25},
		{"silk_stereo_only_code_mid_iCDF", silk_stereo_only_code_mid_iCDF, 2},
	}
	for _, tc := range tables {
		verifyICDF(t, tc.name, tc.table)
		if len(tc.table) != tc.symbols {
			t.Errorf("%s has %d symbols, want %d", tc.name, len(tc.table), tc.symbols)
		}
	}

	for i, row := range silk_gain_iCDF {
		verifyICDF(t, "silk_gain_iCDF row", row)
		if len(row) != 8 {
			t.Errorf("silk_gain_iCDF[%d] has %d symbols, want 8", i, len(row))
		}
	}
	for i, row := range silk_rate_levels_iCDF {
		verifyICDF(t, "silk_rate_levels_iCDF row", row)
		if len(row) != 9 {
			t.Errorf("silk_rate_levels_iCDF[%d] has %d symbols, want 9", i, len(row))
		}
	}
}

// TestPulsesPerBlockTables checks the pulse count distributions. Each of
// the ten rows covers counts 0 through 16 plus the LSB extension escape.
func TestPulsesPerBlockTables(t *testing.T) {
	for i, row := range silk_pulses_per_block_iCDF {
		verifyICDF(t, "silk_pulses_per_block_iCDF row", row)
		if len(row) != silkMaxPulses+2 {
			t.Errorf("silk_pulses_per_block_iCDF[%d] has %d symbols, want %d",
				i, len(row), silkMaxPulses+2)
		}
	}
}

// TestShellCodeTables checks the shell split tables. The subtable for a
// pulse count p starts at silk_shell_code_table_offsets[p], holds p+1
// entries and must itself be a terminated ICDF.
func TestShellCodeTables(t *testing.T) {
	offsets := silk_shell_code_table_offsets
	if len(offsets) != silkMaxPulses+1 {
		t.Fatalf("offsets table has %d entries, want %d", len(offsets), silkMaxPulses+1)
	}
	if offsets[0] != 0 || offsets[1] != 0 {
		t.Errorf("offsets start %d, %d, want 0, 0", offsets[0], offsets[1])
	}
	for p := 1; p < silkMaxPulses; p++ {
		if offsets[p+1] != offsets[p]+p+1 {
			t.Errorf("offsets[%d] = %d, want %d", p+1, offsets[p+1], offsets[p]+p+1)
		}
	}

	wantLen := offsets[silkMaxPulses] + silkMaxPulses + 1
	tables := [][]uint8{
		silk_shell_code_table0,
		silk_shell_code_table1,
		silk_shell_code_table2,
		silk_shell_code_table3,
	}
	for i, table := range tables {
		if len(table) != wantLen {
			t.Errorf("shell table %d has %d entries, want %d", i, len(table), wantLen)
			continue
		}
		for p := 1; p <= silkMaxPulses; p++ {
			verifyICDF(t, "shell subtable", table[offsets[p]:offsets[p]+p+1])
		}
	}
}

// TestSignTable checks the sign distributions: seven pulse count classes
// for each of the six signal type and quantization offset combinations.
// Every entry must leave both signs reachable.
func TestSignTable(t *testing.T) {
	if len(silk_sign_iCDF) != 42 {
		t.Fatalf("silk_sign_iCDF has %d entries, want 42", len(silk_sign_iCDF))
	}
	for i, v := range silk_sign_iCDF {
		if v == 0 {
			t.Errorf("silk_sign_iCDF[%d] = 0, negative sign would be certain", i)
		}
	}
}

// TestPitchContourCodebooks checks that each contour distribution has
// exactly one symbol per column of the lag offset codebook it indexes,
// and that the codebooks have one row per subframe.
func TestPitchContourCodebooks(t *testing.T) {
	tests := []struct {
		name    string
		icdf    []uint8
		lags    [][]int8
		nbSubfr int
	}{
		{"stage2", silk_pitch_contour_NB_iCDF, silk_CB_lags_stage2, maxNbSubfr},
		{"stage3", silk_pitch_contour_iCDF, silk_CB_lags_stage3, maxNbSubfr},
		{"stage2 10 ms", silk_pitch_contour_10_ms_NB_iCDF, silk_CB_lags_stage2_10_ms, maxNbSubfr / 2},
		{"stage3 10 ms", silk_pitch_contour_10_ms_iCDF, silk_CB_lags_stage3_10_ms, maxNbSubfr / 2},
	}
	for _, tc := range tests {
		if len(tc.lags) != tc.nbSubfr {
			t.Errorf("%s: %d subframe rows, want %d", tc.name, len(tc.lags), tc.nbSubfr)
			continue
		}
		for i, row := range tc.lags {
			if len(row) != len(tc.icdf) {
				t.Errorf("%s row %d has %d entries, want %d contour symbols",
					tc.name, i, len(row), len(tc.icdf))
			}
		}
	}
}

// TestLTPCodebooks checks that the periodicity index selects between
// three codebooks and that each gain distribution matches the size of
// the filter codebook it indexes.
func TestLTPCodebooks(t *testing.T) {
	if got := len(silk_LTP_per_index_iCDF); got != len(silk_LTP_vq_ptrs_Q7) {
		t.Errorf("per index distribution has %d symbols for %d codebooks",
			got, len(silk_LTP_vq_ptrs_Q7))
	}
	wantSizes := []int{8, 16, 32}
	for k := range silk_LTP_vq_ptrs_Q7 {
		icdf := silk_LTP_gain_iCDF_ptrs[k]
		verifyICDF(t, "LTP gain distribution", icdf)
		if len(icdf) != len(silk_LTP_vq_ptrs_Q7[k]) {
			t.Errorf("codebook %d: %d gain symbols for %d filters",
				k, len(icdf), len(silk_LTP_vq_ptrs_Q7[k]))
		}
		if len(silk_LTP_vq_ptrs_Q7[k]) != wantSizes[k] {
			t.Errorf("codebook %d has %d filters, want %d",
				k, len(silk_LTP_vq_ptrs_Q7[k]), wantSizes[k])
		}
	}
	for i := 1; i < len(silk_LTPScales_table_Q14); i++ {
		if silk_LTPScales_table_Q14[i] >= silk_LTPScales_table_Q14[i-1] {
			t.Errorf("LTP scale %d = %d not below %d",
				i, silk_LTPScales_table_Q14[i], silk_LTPScales_table_Q14[i-1])
		}
	}
}

// TestNLSFCodebooks checks the dimensions and distributions of both
// NLSF codebooks against what the two quantization stages consume.
func TestNLSFCodebooks(t *testing.T) {
	tests := []struct {
		name  string
		cb    *nlsfCB
		order int
	}{
		{"NB MB", &silk_NLSF_CB_NB_MB, 10},
		{"WB", &silk_NLSF_CB_WB, 16},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cb := tc.cb
			if cb.nVectors != 32 {
				t.Errorf("nVectors = %d, want 32", cb.nVectors)
			}
			if cb.order != tc.order {
				t.Errorf("order = %d, want %d", cb.order, tc.order)
			}
			if cb.quantStepSizeQ16 <= 0 {
				t.Errorf("quantStepSizeQ16 = %d, want positive", cb.quantStepSizeQ16)
			}

			if got, want := len(cb.cb1NLSFQ8), cb.nVectors*cb.order; got != want {
				t.Fatalf("cb1NLSFQ8 has %d entries, want %d", got, want)
			}
			for v := 0; v < cb.nVectors; v++ {
				vec := cb.cb1NLSFQ8[v*cb.order : (v+1)*cb.order]
				for i := 1; i < cb.order; i++ {
					if vec[i] <= vec[i-1] {
						t.Errorf("vector %d entry %d = %d not above %d",
							v, i, vec[i], vec[i-1])
					}
				}
			}

			if got, want := len(cb.cb1ICDF), 2*cb.nVectors; got != want {
				t.Fatalf("cb1ICDF has %d entries, want %d", got, want)
			}
			verifyICDF(t, "cb1ICDF unvoiced half", cb.cb1ICDF[:cb.nVectors])
			verifyICDF(t, "cb1ICDF voiced half", cb.cb1ICDF[cb.nVectors:])

			if got, want := len(cb.predQ8), 2*(cb.order-1); got != want {
				t.Errorf("predQ8 has %d entries, want %d", got, want)
			}
			if got, want := len(cb.ecSel), cb.nVectors*cb.order/2; got != want {
				t.Errorf("ecSel has %d entries, want %d", got, want)
			}

			stride := 2*nlsfQuantMaxAmplitude + 1
			if got, want := len(cb.ecICDF), 8*stride; got != want {
				t.Fatalf("ecICDF has %d entries, want %d", got, want)
			}
			for k := 0; k < 8; k++ {
				verifyICDF(t, "ecICDF subtable", cb.ecICDF[k*stride:(k+1)*stride])
			}

			if got, want := len(cb.deltaMinQ15), cb.order+1; got != want {
				t.Fatalf("deltaMinQ15 has %d entries, want %d", got, want)
			}
			sum := int32(0)
			for i, d := range cb.deltaMinQ15 {
				if d <= 0 {
					t.Errorf("deltaMinQ15[%d] = %d, want positive", i, d)
				}
				sum += int32(d)
			}
			if sum >= 1<<15 {
				t.Errorf("deltaMinQ15 sum = %d leaves no room in Q15", sum)
			}
		})
	}
}

// TestLSFCosTable checks the cosine table used for NLSF to LPC
// conversion: 129 knots over the half circle, antisymmetric about the
// midpoint and strictly decreasing.
func TestLSFCosTable(t *testing.T) {
	tab := silk_LSFCosTab_FIX_Q12
	if len(tab) != 129 {
		t.Fatalf("table has %d entries, want 129", len(tab))
	}
	if tab[0] != 8192 || tab[64] != 0 || tab[128] != -8192 {
		t.Errorf("endpoints %d, %d, %d, want 8192, 0, -8192", tab[0], tab[64], tab[128])
	}
	for i := range tab {
		if tab[i] != -tab[128-i] {
			t.Errorf("tab[%d] = %d, want -tab[%d] = %d", i, tab[i], 128-i, -tab[128-i])
		}
	}
	for i := 1; i < len(tab); i++ {
		if tab[i] >= tab[i-1] {
			t.Errorf("tab[%d] = %d not below tab[%d] = %d", i, tab[i], i-1, tab[i-1])
		}
	}
}

// TestStereoPredQuantTable checks the stereo weight codebook: sixteen
// levels, strictly increasing and symmetric about zero, with one joint
// symbol for each pair of coarse indices.
func TestStereoPredQuantTable(t *testing.T) {
	q := silk_stereo_pred_quant_Q13
	if len(q) != 16 {
		t.Fatalf("table has %d entries, want 16", len(q))
	}
	for i := 1; i < len(q); i++ {
		if q[i] <= q[i-1] {
			t.Errorf("q[%d] = %d not above q[%d] = %d", i, q[i], i-1, q[i-1])
		}
	}
	for i := range q {
		if q[i] != -q[15-i] {
			t.Errorf("q[%d] = %d, want -q[%d] = %d", i, q[i], 15-i, -q[15-i])
		}
	}
	if got := len(silk_stereo_pred_joint_iCDF); got != 25 {
		t.Errorf("joint distribution has %d symbols, want 25", got)
	}
}
