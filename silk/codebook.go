package silk

// nlsfCB bundles one NLSF codebook with the prediction weights and
// entropy tables that go with it, mirroring silk_NLSF_CB_struct.
type nlsfCB struct {
	nVectors         int
	order            int
	quantStepSizeQ16 int
	cb1NLSFQ8        []uint8
	cb1ICDF          []uint8
	predQ8           []uint8
	ecSel            []uint8
	ecICDF           []uint8
	deltaMinQ15      []int16
}

var silk_NLSF_CB_WB = nlsfCB{
	nVectors:         32,
	order:            16,
	quantStepSizeQ16: silkFixConst(0.15, 16),
	cb1NLSFQ8:        silk_NLSF_CB1_WB_Q8,
	cb1ICDF:          silk_NLSF_CB1_iCDF_WB,
	predQ8:           silk_NLSF_PRED_WB_Q8,
	ecSel:            silk_NLSF_CB2_SELECT_WB,
	ecICDF:           silk_NLSF_CB2_iCDF_WB,
	deltaMinQ15:      silk_NLSF_DELTA_MIN_WB_Q15,
}

var silk_NLSF_CB_NB_MB = nlsfCB{
	nVectors:         32,
	order:            10,
	quantStepSizeQ16: silkFixConst(0.18, 16),
	cb1NLSFQ8:        silk_NLSF_CB1_NB_MB_Q8,
	cb1ICDF:          silk_NLSF_CB1_iCDF_NB_MB,
	predQ8:           silk_NLSF_PRED_NB_MB_Q8,
	ecSel:            silk_NLSF_CB2_SELECT_NB_MB,
	ecICDF:           silk_NLSF_CB2_iCDF_NB_MB,
	deltaMinQ15:      silk_NLSF_DELTA_MIN_NB_MB_Q15,
}
