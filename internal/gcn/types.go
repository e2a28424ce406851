package gcn

import "fmt"

// InstructionType is the decoded opcode, independent of encoding family.
type InstructionType uint16

const (
	TypeUnknown InstructionType = iota
	SAddU32
	SSubU32
	SAddI32
	SSubI32
	SAddcU32
	SSubbU32
	SMinI32
	SMinU32
	SMaxI32
	SMaxU32
	SCselectB32
	SCselectB64
	SAndB32
	SAndB64
	SOrB32
	SOrB64
	SXorB32
	SXorB64
	SAndn2B32
	SAndn2B64
	SOrn2B32
	SOrn2B64
	SNandB32
	SNandB64
	SNorB32
	SNorB64
	SXnorB32
	SXnorB64
	SLshlB32
	SLshlB64
	SLshrB32
	SLshrB64
	SAshrI32
	SAshrI64
	SBfmB32
	SBfmB64
	SMulI32
	SBfeU32
	SBfeI32
	SBfeU64
	SBfeI64
	SAbsdiffI32
	SCbranchGFork
	SLshl1AddU32
	SLshl2AddU32
	SLshl3AddU32
	SLshl4AddU32
	SPackLlB32B16
	SMulHiU32
	SMulHiI32
	SMovkI32
	SCmovkI32
	SCmpkEqI32
	SCmpkLgI32
	SCmpkGtI32
	SCmpkGeI32
	SCmpkLtI32
	SCmpkLeI32
	SCmpkEqU32
	SCmpkLgU32
	SCmpkGtU32
	SCmpkGeU32
	SCmpkLtU32
	SCmpkLeU32
	SAddkI32
	SMulkI32
	SGetregB32
	SSetregB32
	SSetregImm32B32
	SMovB32
	SMovB64
	SCmovB32
	SCmovB64
	SNotB32
	SNotB64
	SWqmB32
	SWqmB64
	SBrevB32
	SBrevB64
	SBcnt1I32B32
	SBcnt1I32B64
	SFf1I32B32
	SFf1I32B64
	SFlbitI32B32
	SSextI32I8
	SSextI32I16
	SBitset0B32
	SBitset1B32
	SAndSaveexecB64
	SOrSaveexecB64
	SXorSaveexecB64
	SAndn2SaveexecB64
	SOrn2SaveexecB64
	SNandSaveexecB64
	SNorSaveexecB64
	SXnorSaveexecB64
	SQuadmaskB32
	SQuadmaskB64
	SMovrelsB32
	SMovrelsB64
	SMovreldB32
	SMovreldB64
	SAbsI32
	SGetpcB64
	SSetpcB64
	SSwappcB64
	SCbranchJoin
	SCmpEqI32
	SCmpEqU32
	SCmpLgI32
	SCmpLgU32
	SCmpGtI32
	SCmpGtU32
	SCmpGeI32
	SCmpGeU32
	SCmpLtI32
	SCmpLtU32
	SCmpLeI32
	SCmpLeU32
	SBitcmp0B32
	SBitcmp1B32
	SBitcmp0B64
	SBitcmp1B64
	SSetvskip
	SCmpEqU64
	SCmpLgU64
	SNop
	SEndpgm
	SBranch
	SCbranchScc0
	SCbranchScc1
	SCbranchVccz
	SCbranchVccnz
	SCbranchExecz
	SCbranchExecnz
	SBarrier
	SSetkill
	SWaitcnt
	SSethalt
	SSleep
	SSetprio
	SSendmsg
	SSendmsghalt
	STrap
	SIcacheInv
	SIncperflevel
	SDecperflevel
	STtracedata
	SCodeEnd
	SInstPrefetch
	SLoadDword
	SBufferLoadDword
	SLoadDwordx2
	SBufferLoadDwordx2
	SLoadDwordx4
	SBufferLoadDwordx4
	SLoadDwordx8
	SBufferLoadDwordx8
	SLoadDwordx16
	SBufferLoadDwordx16
	SDcacheInvVol
	SMemtime
	SDcacheInv
	VAddF32
	VSubF32
	VSubrevF32
	VMulLegacyF32
	VMulF32
	VMulI32I24
	VMulHiI32I24
	VMulU32U24
	VMulHiU32U24
	VMinF32
	VMaxF32
	VMinI32
	VMaxI32
	VMinU32
	VMaxU32
	VLshrrevB32
	VAshrrevI32
	VLshlrevB32
	VAndB32
	VOrB32
	VXorB32
	VMacF32
	VCvtPkrtzF16F32
	VMadmkF32
	VMadakF32
	VCndmaskB32
	VReadlaneB32
	VWritelaneB32
	VMacLegacyF32
	VMinLegacyF32
	VMaxLegacyF32
	VLshrB32
	VAshrI32
	VLshlB32
	VBfmB32
	VBcntU32B32
	VMbcntLoU32B32
	VMbcntHiU32B32
	VLdexpF32
	VCvtPkaccumU8F32
	VCvtPknormI16F32
	VCvtPknormU16F32
	VCvtPkU16U32
	VCvtPkI16I32
	VAddI32
	VSubI32
	VSubrevI32
	VAddcU32
	VSubbU32
	VSubbrevU32
	VXnorB32
	VAddNcU32
	VSubNcU32
	VSubrevNcU32
	VFmacF32
	VNop
	VMovB32
	VCvtI32F64
	VCvtF64I32
	VCvtF32I32
	VCvtF32U32
	VCvtU32F32
	VCvtI32F32
	VCvtF16F32
	VCvtF32F16
	VCvtRpiI32F32
	VCvtFlrI32F32
	VCvtOffF32I4
	VCvtF32F64
	VCvtF64F32
	VCvtF32Ubyte0
	VCvtF32Ubyte1
	VCvtF32Ubyte2
	VCvtF32Ubyte3
	VCvtU32F64
	VCvtF64U32
	VFractF32
	VTruncF32
	VCeilF32
	VRndneF32
	VFloorF32
	VExpF32
	VLogF32
	VRcpF32
	VRcpIflagF32
	VRsqF32
	VRcpF64
	VRsqF64
	VSqrtF32
	VSqrtF64
	VSinF32
	VCosF32
	VNotB32
	VBfrevB32
	VFfbhU32
	VFfblB32
	VFfbhI32
	VReadfirstlaneB32
	VLogClampF32
	VRcpClampF32
	VRcpLegacyF32
	VRsqClampF32
	VRsqLegacyF32
	VCmpFF32
	VCmpxFF32
	VCmpLtF32
	VCmpxLtF32
	VCmpEqF32
	VCmpxEqF32
	VCmpLeF32
	VCmpxLeF32
	VCmpGtF32
	VCmpxGtF32
	VCmpLgF32
	VCmpxLgF32
	VCmpGeF32
	VCmpxGeF32
	VCmpOF32
	VCmpxOF32
	VCmpUF32
	VCmpxUF32
	VCmpNgeF32
	VCmpxNgeF32
	VCmpNlgF32
	VCmpxNlgF32
	VCmpNgtF32
	VCmpxNgtF32
	VCmpNleF32
	VCmpxNleF32
	VCmpNeqF32
	VCmpxNeqF32
	VCmpNltF32
	VCmpxNltF32
	VCmpTruF32
	VCmpxTruF32
	VCmpFI32
	VCmpxFI32
	VCmpFU32
	VCmpxFU32
	VCmpLtI32
	VCmpxLtI32
	VCmpLtU32
	VCmpxLtU32
	VCmpEqI32
	VCmpxEqI32
	VCmpEqU32
	VCmpxEqU32
	VCmpLeI32
	VCmpxLeI32
	VCmpLeU32
	VCmpxLeU32
	VCmpGtI32
	VCmpxGtI32
	VCmpGtU32
	VCmpxGtU32
	VCmpNeI32
	VCmpxNeI32
	VCmpNeU32
	VCmpxNeU32
	VCmpGeI32
	VCmpxGeI32
	VCmpGeU32
	VCmpxGeU32
	VCmpTI32
	VCmpxTI32
	VCmpTU32
	VCmpxTU32
	VCmpClassF32
	VCmpxClassF32
	VMadLegacyF32
	VMadF32
	VMadI32I24
	VMadU32U24
	VCubeidF32
	VCubescF32
	VCubetcF32
	VCubemaF32
	VBfeU32
	VBfeI32
	VBfiB32
	VFmaF32
	VFmaF64
	VLerpU8
	VAlignbitB32
	VAlignbyteB32
	VMin3F32
	VMin3I32
	VMin3U32
	VMax3F32
	VMax3I32
	VMax3U32
	VMed3F32
	VMed3I32
	VMed3U32
	VSadU8
	VSadHiU8
	VSadU16
	VSadU32
	VCvtPkU8F32
	VDivFixupF32
	VDivFixupF64
	VDivFmasF32
	VDivFmasF64
	VLshlB64
	VLshrB64
	VAshrI64
	VAddF64
	VMulF64
	VMinF64
	VMaxF64
	VLdexpF64
	VMulLoU32
	VMulHiU32
	VMulLoI32
	VMulHiI32
	VDivScaleF32
	VDivScaleF64
	VMadU64U32
	VMadI64I32
	VMullitF32
	VLshlAddU32
	VAdd3U32
	VLshlOrB32
	VAndOrB32
	VOr3B32
	VInterpP1F32
	VInterpP2F32
	VInterpMovF32
	Exp
	BufferLoadFormatX
	BufferStoreFormatX
	TbufferLoadFormatX
	TbufferStoreFormatX
	BufferLoadFormatXy
	BufferStoreFormatXy
	TbufferLoadFormatXy
	TbufferStoreFormatXy
	BufferLoadFormatXyz
	BufferStoreFormatXyz
	TbufferLoadFormatXyz
	TbufferStoreFormatXyz
	BufferLoadFormatXyzw
	BufferStoreFormatXyzw
	TbufferLoadFormatXyzw
	TbufferStoreFormatXyzw
	BufferLoadUbyte
	BufferLoadSbyte
	BufferLoadUshort
	BufferLoadSshort
	BufferLoadDword
	BufferLoadDwordx2
	BufferLoadDwordx4
	BufferLoadDwordx3
	BufferStoreByte
	BufferStoreShort
	BufferStoreDword
	BufferStoreDwordx2
	BufferStoreDwordx4
	BufferStoreDwordx3
	BufferAtomicSwap
	BufferAtomicAdd
	BufferAtomicSub
	BufferAtomicSmin
	BufferAtomicUmin
	BufferAtomicSmax
	BufferAtomicUmax
	BufferAtomicAnd
	BufferAtomicOr
	BufferAtomicXor
	BufferWbinvl1Vol
	BufferWbinvl1
	BufferGl0Inv
	BufferGl1Inv
	ImageLoad
	ImageLoadMip
	ImageStore
	ImageStoreMip
	ImageGetResinfo
	ImageSample
	ImageSampleL
	ImageSampleB
	ImageSampleLz
	ImageSampleC
	ImageSampleCLz
	ImageGather4
	DsAddU32
	DsSubU32
	DsWriteB32
	DsWrite2B32
	DsAddRtnU32
	DsSwizzleB32
	DsReadB32
	DsRead2B32
	DsConsume
	DsAppend
	DsWriteB64
	DsReadB64

	typeCount
)

var typeNames = [typeCount]string{
	TypeUnknown:            "unknown",
	SAddU32:                "s_add_u32",
	SSubU32:                "s_sub_u32",
	SAddI32:                "s_add_i32",
	SSubI32:                "s_sub_i32",
	SAddcU32:               "s_addc_u32",
	SSubbU32:               "s_subb_u32",
	SMinI32:                "s_min_i32",
	SMinU32:                "s_min_u32",
	SMaxI32:                "s_max_i32",
	SMaxU32:                "s_max_u32",
	SCselectB32:            "s_cselect_b32",
	SCselectB64:            "s_cselect_b64",
	SAndB32:                "s_and_b32",
	SAndB64:                "s_and_b64",
	SOrB32:                 "s_or_b32",
	SOrB64:                 "s_or_b64",
	SXorB32:                "s_xor_b32",
	SXorB64:                "s_xor_b64",
	SAndn2B32:              "s_andn2_b32",
	SAndn2B64:              "s_andn2_b64",
	SOrn2B32:               "s_orn2_b32",
	SOrn2B64:               "s_orn2_b64",
	SNandB32:               "s_nand_b32",
	SNandB64:               "s_nand_b64",
	SNorB32:                "s_nor_b32",
	SNorB64:                "s_nor_b64",
	SXnorB32:               "s_xnor_b32",
	SXnorB64:               "s_xnor_b64",
	SLshlB32:               "s_lshl_b32",
	SLshlB64:               "s_lshl_b64",
	SLshrB32:               "s_lshr_b32",
	SLshrB64:               "s_lshr_b64",
	SAshrI32:               "s_ashr_i32",
	SAshrI64:               "s_ashr_i64",
	SBfmB32:                "s_bfm_b32",
	SBfmB64:                "s_bfm_b64",
	SMulI32:                "s_mul_i32",
	SBfeU32:                "s_bfe_u32",
	SBfeI32:                "s_bfe_i32",
	SBfeU64:                "s_bfe_u64",
	SBfeI64:                "s_bfe_i64",
	SAbsdiffI32:            "s_absdiff_i32",
	SCbranchGFork:          "s_cbranch_g_fork",
	SLshl1AddU32:           "s_lshl1_add_u32",
	SLshl2AddU32:           "s_lshl2_add_u32",
	SLshl3AddU32:           "s_lshl3_add_u32",
	SLshl4AddU32:           "s_lshl4_add_u32",
	SPackLlB32B16:          "s_pack_ll_b32_b16",
	SMulHiU32:              "s_mul_hi_u32",
	SMulHiI32:              "s_mul_hi_i32",
	SMovkI32:               "s_movk_i32",
	SCmovkI32:              "s_cmovk_i32",
	SCmpkEqI32:             "s_cmpk_eq_i32",
	SCmpkLgI32:             "s_cmpk_lg_i32",
	SCmpkGtI32:             "s_cmpk_gt_i32",
	SCmpkGeI32:             "s_cmpk_ge_i32",
	SCmpkLtI32:             "s_cmpk_lt_i32",
	SCmpkLeI32:             "s_cmpk_le_i32",
	SCmpkEqU32:             "s_cmpk_eq_u32",
	SCmpkLgU32:             "s_cmpk_lg_u32",
	SCmpkGtU32:             "s_cmpk_gt_u32",
	SCmpkGeU32:             "s_cmpk_ge_u32",
	SCmpkLtU32:             "s_cmpk_lt_u32",
	SCmpkLeU32:             "s_cmpk_le_u32",
	SAddkI32:               "s_addk_i32",
	SMulkI32:               "s_mulk_i32",
	SGetregB32:             "s_getreg_b32",
	SSetregB32:             "s_setreg_b32",
	SSetregImm32B32:        "s_setreg_imm32_b32",
	SMovB32:                "s_mov_b32",
	SMovB64:                "s_mov_b64",
	SCmovB32:               "s_cmov_b32",
	SCmovB64:               "s_cmov_b64",
	SNotB32:                "s_not_b32",
	SNotB64:                "s_not_b64",
	SWqmB32:                "s_wqm_b32",
	SWqmB64:                "s_wqm_b64",
	SBrevB32:               "s_brev_b32",
	SBrevB64:               "s_brev_b64",
	SBcnt1I32B32:           "s_bcnt1_i32_b32",
	SBcnt1I32B64:           "s_bcnt1_i32_b64",
	SFf1I32B32:             "s_ff1_i32_b32",
	SFf1I32B64:             "s_ff1_i32_b64",
	SFlbitI32B32:           "s_flbit_i32_b32",
	SSextI32I8:             "s_sext_i32_i8",
	SSextI32I16:            "s_sext_i32_i16",
	SBitset0B32:            "s_bitset0_b32",
	SBitset1B32:            "s_bitset1_b32",
	SAndSaveexecB64:        "s_and_saveexec_b64",
	SOrSaveexecB64:         "s_or_saveexec_b64",
	SXorSaveexecB64:        "s_xor_saveexec_b64",
	SAndn2SaveexecB64:      "s_andn2_saveexec_b64",
	SOrn2SaveexecB64:       "s_orn2_saveexec_b64",
	SNandSaveexecB64:       "s_nand_saveexec_b64",
	SNorSaveexecB64:        "s_nor_saveexec_b64",
	SXnorSaveexecB64:       "s_xnor_saveexec_b64",
	SQuadmaskB32:           "s_quadmask_b32",
	SQuadmaskB64:           "s_quadmask_b64",
	SMovrelsB32:            "s_movrels_b32",
	SMovrelsB64:            "s_movrels_b64",
	SMovreldB32:            "s_movreld_b32",
	SMovreldB64:            "s_movreld_b64",
	SAbsI32:                "s_abs_i32",
	SGetpcB64:              "s_getpc_b64",
	SSetpcB64:              "s_setpc_b64",
	SSwappcB64:             "s_swappc_b64",
	SCbranchJoin:           "s_cbranch_join",
	SCmpEqI32:              "s_cmp_eq_i32",
	SCmpEqU32:              "s_cmp_eq_u32",
	SCmpLgI32:              "s_cmp_lg_i32",
	SCmpLgU32:              "s_cmp_lg_u32",
	SCmpGtI32:              "s_cmp_gt_i32",
	SCmpGtU32:              "s_cmp_gt_u32",
	SCmpGeI32:              "s_cmp_ge_i32",
	SCmpGeU32:              "s_cmp_ge_u32",
	SCmpLtI32:              "s_cmp_lt_i32",
	SCmpLtU32:              "s_cmp_lt_u32",
	SCmpLeI32:              "s_cmp_le_i32",
	SCmpLeU32:              "s_cmp_le_u32",
	SBitcmp0B32:            "s_bitcmp0_b32",
	SBitcmp1B32:            "s_bitcmp1_b32",
	SBitcmp0B64:            "s_bitcmp0_b64",
	SBitcmp1B64:            "s_bitcmp1_b64",
	SSetvskip:              "s_setvskip",
	SCmpEqU64:              "s_cmp_eq_u64",
	SCmpLgU64:              "s_cmp_lg_u64",
	SNop:                   "s_nop",
	SEndpgm:                "s_endpgm",
	SBranch:                "s_branch",
	SCbranchScc0:           "s_cbranch_scc0",
	SCbranchScc1:           "s_cbranch_scc1",
	SCbranchVccz:           "s_cbranch_vccz",
	SCbranchVccnz:          "s_cbranch_vccnz",
	SCbranchExecz:          "s_cbranch_execz",
	SCbranchExecnz:         "s_cbranch_execnz",
	SBarrier:               "s_barrier",
	SSetkill:               "s_setkill",
	SWaitcnt:               "s_waitcnt",
	SSethalt:               "s_sethalt",
	SSleep:                 "s_sleep",
	SSetprio:               "s_setprio",
	SSendmsg:               "s_sendmsg",
	SSendmsghalt:           "s_sendmsghalt",
	STrap:                  "s_trap",
	SIcacheInv:             "s_icache_inv",
	SIncperflevel:          "s_incperflevel",
	SDecperflevel:          "s_decperflevel",
	STtracedata:            "s_ttracedata",
	SCodeEnd:               "s_code_end",
	SInstPrefetch:          "s_inst_prefetch",
	SLoadDword:             "s_load_dword",
	SBufferLoadDword:       "s_buffer_load_dword",
	SLoadDwordx2:           "s_load_dwordx2",
	SBufferLoadDwordx2:     "s_buffer_load_dwordx2",
	SLoadDwordx4:           "s_load_dwordx4",
	SBufferLoadDwordx4:     "s_buffer_load_dwordx4",
	SLoadDwordx8:           "s_load_dwordx8",
	SBufferLoadDwordx8:     "s_buffer_load_dwordx8",
	SLoadDwordx16:          "s_load_dwordx16",
	SBufferLoadDwordx16:    "s_buffer_load_dwordx16",
	SDcacheInvVol:          "s_dcache_inv_vol",
	SMemtime:               "s_memtime",
	SDcacheInv:             "s_dcache_inv",
	VAddF32:                "v_add_f32",
	VSubF32:                "v_sub_f32",
	VSubrevF32:             "v_subrev_f32",
	VMulLegacyF32:          "v_mul_legacy_f32",
	VMulF32:                "v_mul_f32",
	VMulI32I24:             "v_mul_i32_i24",
	VMulHiI32I24:           "v_mul_hi_i32_i24",
	VMulU32U24:             "v_mul_u32_u24",
	VMulHiU32U24:           "v_mul_hi_u32_u24",
	VMinF32:                "v_min_f32",
	VMaxF32:                "v_max_f32",
	VMinI32:                "v_min_i32",
	VMaxI32:                "v_max_i32",
	VMinU32:                "v_min_u32",
	VMaxU32:                "v_max_u32",
	VLshrrevB32:            "v_lshrrev_b32",
	VAshrrevI32:            "v_ashrrev_i32",
	VLshlrevB32:            "v_lshlrev_b32",
	VAndB32:                "v_and_b32",
	VOrB32:                 "v_or_b32",
	VXorB32:                "v_xor_b32",
	VMacF32:                "v_mac_f32",
	VCvtPkrtzF16F32:        "v_cvt_pkrtz_f16_f32",
	VMadmkF32:              "v_madmk_f32",
	VMadakF32:              "v_madak_f32",
	VCndmaskB32:            "v_cndmask_b32",
	VReadlaneB32:           "v_readlane_b32",
	VWritelaneB32:          "v_writelane_b32",
	VMacLegacyF32:          "v_mac_legacy_f32",
	VMinLegacyF32:          "v_min_legacy_f32",
	VMaxLegacyF32:          "v_max_legacy_f32",
	VLshrB32:               "v_lshr_b32",
	VAshrI32:               "v_ashr_i32",
	VLshlB32:               "v_lshl_b32",
	VBfmB32:                "v_bfm_b32",
	VBcntU32B32:            "v_bcnt_u32_b32",
	VMbcntLoU32B32:         "v_mbcnt_lo_u32_b32",
	VMbcntHiU32B32:         "v_mbcnt_hi_u32_b32",
	VLdexpF32:              "v_ldexp_f32",
	VCvtPkaccumU8F32:       "v_cvt_pkaccum_u8_f32",
	VCvtPknormI16F32:       "v_cvt_pknorm_i16_f32",
	VCvtPknormU16F32:       "v_cvt_pknorm_u16_f32",
	VCvtPkU16U32:           "v_cvt_pk_u16_u32",
	VCvtPkI16I32:           "v_cvt_pk_i16_i32",
	VAddI32:                "v_add_i32",
	VSubI32:                "v_sub_i32",
	VSubrevI32:             "v_subrev_i32",
	VAddcU32:               "v_addc_u32",
	VSubbU32:               "v_subb_u32",
	VSubbrevU32:            "v_subbrev_u32",
	VXnorB32:               "v_xnor_b32",
	VAddNcU32:              "v_add_nc_u32",
	VSubNcU32:              "v_sub_nc_u32",
	VSubrevNcU32:           "v_subrev_nc_u32",
	VFmacF32:               "v_fmac_f32",
	VNop:                   "v_nop",
	VMovB32:                "v_mov_b32",
	VCvtI32F64:             "v_cvt_i32_f64",
	VCvtF64I32:             "v_cvt_f64_i32",
	VCvtF32I32:             "v_cvt_f32_i32",
	VCvtF32U32:             "v_cvt_f32_u32",
	VCvtU32F32:             "v_cvt_u32_f32",
	VCvtI32F32:             "v_cvt_i32_f32",
	VCvtF16F32:             "v_cvt_f16_f32",
	VCvtF32F16:             "v_cvt_f32_f16",
	VCvtRpiI32F32:          "v_cvt_rpi_i32_f32",
	VCvtFlrI32F32:          "v_cvt_flr_i32_f32",
	VCvtOffF32I4:           "v_cvt_off_f32_i4",
	VCvtF32F64:             "v_cvt_f32_f64",
	VCvtF64F32:             "v_cvt_f64_f32",
	VCvtF32Ubyte0:          "v_cvt_f32_ubyte0",
	VCvtF32Ubyte1:          "v_cvt_f32_ubyte1",
	VCvtF32Ubyte2:          "v_cvt_f32_ubyte2",
	VCvtF32Ubyte3:          "v_cvt_f32_ubyte3",
	VCvtU32F64:             "v_cvt_u32_f64",
	VCvtF64U32:             "v_cvt_f64_u32",
	VFractF32:              "v_fract_f32",
	VTruncF32:              "v_trunc_f32",
	VCeilF32:               "v_ceil_f32",
	VRndneF32:              "v_rndne_f32",
	VFloorF32:              "v_floor_f32",
	VExpF32:                "v_exp_f32",
	VLogF32:                "v_log_f32",
	VRcpF32:                "v_rcp_f32",
	VRcpIflagF32:           "v_rcp_iflag_f32",
	VRsqF32:                "v_rsq_f32",
	VRcpF64:                "v_rcp_f64",
	VRsqF64:                "v_rsq_f64",
	VSqrtF32:               "v_sqrt_f32",
	VSqrtF64:               "v_sqrt_f64",
	VSinF32:                "v_sin_f32",
	VCosF32:                "v_cos_f32",
	VNotB32:                "v_not_b32",
	VBfrevB32:              "v_bfrev_b32",
	VFfbhU32:               "v_ffbh_u32",
	VFfblB32:               "v_ffbl_b32",
	VFfbhI32:               "v_ffbh_i32",
	VReadfirstlaneB32:      "v_readfirstlane_b32",
	VLogClampF32:           "v_log_clamp_f32",
	VRcpClampF32:           "v_rcp_clamp_f32",
	VRcpLegacyF32:          "v_rcp_legacy_f32",
	VRsqClampF32:           "v_rsq_clamp_f32",
	VRsqLegacyF32:          "v_rsq_legacy_f32",
	VCmpFF32:               "v_cmp_f_f32",
	VCmpxFF32:              "v_cmpx_f_f32",
	VCmpLtF32:              "v_cmp_lt_f32",
	VCmpxLtF32:             "v_cmpx_lt_f32",
	VCmpEqF32:              "v_cmp_eq_f32",
	VCmpxEqF32:             "v_cmpx_eq_f32",
	VCmpLeF32:              "v_cmp_le_f32",
	VCmpxLeF32:             "v_cmpx_le_f32",
	VCmpGtF32:              "v_cmp_gt_f32",
	VCmpxGtF32:             "v_cmpx_gt_f32",
	VCmpLgF32:              "v_cmp_lg_f32",
	VCmpxLgF32:             "v_cmpx_lg_f32",
	VCmpGeF32:              "v_cmp_ge_f32",
	VCmpxGeF32:             "v_cmpx_ge_f32",
	VCmpOF32:               "v_cmp_o_f32",
	VCmpxOF32:              "v_cmpx_o_f32",
	VCmpUF32:               "v_cmp_u_f32",
	VCmpxUF32:              "v_cmpx_u_f32",
	VCmpNgeF32:             "v_cmp_nge_f32",
	VCmpxNgeF32:            "v_cmpx_nge_f32",
	VCmpNlgF32:             "v_cmp_nlg_f32",
	VCmpxNlgF32:            "v_cmpx_nlg_f32",
	VCmpNgtF32:             "v_cmp_ngt_f32",
	VCmpxNgtF32:            "v_cmpx_ngt_f32",
	VCmpNleF32:             "v_cmp_nle_f32",
	VCmpxNleF32:            "v_cmpx_nle_f32",
	VCmpNeqF32:             "v_cmp_neq_f32",
	VCmpxNeqF32:            "v_cmpx_neq_f32",
	VCmpNltF32:             "v_cmp_nlt_f32",
	VCmpxNltF32:            "v_cmpx_nlt_f32",
	VCmpTruF32:             "v_cmp_tru_f32",
	VCmpxTruF32:            "v_cmpx_tru_f32",
	VCmpFI32:               "v_cmp_f_i32",
	VCmpxFI32:              "v_cmpx_f_i32",
	VCmpFU32:               "v_cmp_f_u32",
	VCmpxFU32:              "v_cmpx_f_u32",
	VCmpLtI32:              "v_cmp_lt_i32",
	VCmpxLtI32:             "v_cmpx_lt_i32",
	VCmpLtU32:              "v_cmp_lt_u32",
	VCmpxLtU32:             "v_cmpx_lt_u32",
	VCmpEqI32:              "v_cmp_eq_i32",
	VCmpxEqI32:             "v_cmpx_eq_i32",
	VCmpEqU32:              "v_cmp_eq_u32",
	VCmpxEqU32:             "v_cmpx_eq_u32",
	VCmpLeI32:              "v_cmp_le_i32",
	VCmpxLeI32:             "v_cmpx_le_i32",
	VCmpLeU32:              "v_cmp_le_u32",
	VCmpxLeU32:             "v_cmpx_le_u32",
	VCmpGtI32:              "v_cmp_gt_i32",
	VCmpxGtI32:             "v_cmpx_gt_i32",
	VCmpGtU32:              "v_cmp_gt_u32",
	VCmpxGtU32:             "v_cmpx_gt_u32",
	VCmpNeI32:              "v_cmp_ne_i32",
	VCmpxNeI32:             "v_cmpx_ne_i32",
	VCmpNeU32:              "v_cmp_ne_u32",
	VCmpxNeU32:             "v_cmpx_ne_u32",
	VCmpGeI32:              "v_cmp_ge_i32",
	VCmpxGeI32:             "v_cmpx_ge_i32",
	VCmpGeU32:              "v_cmp_ge_u32",
	VCmpxGeU32:             "v_cmpx_ge_u32",
	VCmpTI32:               "v_cmp_t_i32",
	VCmpxTI32:              "v_cmpx_t_i32",
	VCmpTU32:               "v_cmp_t_u32",
	VCmpxTU32:              "v_cmpx_t_u32",
	VCmpClassF32:           "v_cmp_class_f32",
	VCmpxClassF32:          "v_cmpx_class_f32",
	VMadLegacyF32:          "v_mad_legacy_f32",
	VMadF32:                "v_mad_f32",
	VMadI32I24:             "v_mad_i32_i24",
	VMadU32U24:             "v_mad_u32_u24",
	VCubeidF32:             "v_cubeid_f32",
	VCubescF32:             "v_cubesc_f32",
	VCubetcF32:             "v_cubetc_f32",
	VCubemaF32:             "v_cubema_f32",
	VBfeU32:                "v_bfe_u32",
	VBfeI32:                "v_bfe_i32",
	VBfiB32:                "v_bfi_b32",
	VFmaF32:                "v_fma_f32",
	VFmaF64:                "v_fma_f64",
	VLerpU8:                "v_lerp_u8",
	VAlignbitB32:           "v_alignbit_b32",
	VAlignbyteB32:          "v_alignbyte_b32",
	VMin3F32:               "v_min3_f32",
	VMin3I32:               "v_min3_i32",
	VMin3U32:               "v_min3_u32",
	VMax3F32:               "v_max3_f32",
	VMax3I32:               "v_max3_i32",
	VMax3U32:               "v_max3_u32",
	VMed3F32:               "v_med3_f32",
	VMed3I32:               "v_med3_i32",
	VMed3U32:               "v_med3_u32",
	VSadU8:                 "v_sad_u8",
	VSadHiU8:               "v_sad_hi_u8",
	VSadU16:                "v_sad_u16",
	VSadU32:                "v_sad_u32",
	VCvtPkU8F32:            "v_cvt_pk_u8_f32",
	VDivFixupF32:           "v_div_fixup_f32",
	VDivFixupF64:           "v_div_fixup_f64",
	VDivFmasF32:            "v_div_fmas_f32",
	VDivFmasF64:            "v_div_fmas_f64",
	VLshlB64:               "v_lshl_b64",
	VLshrB64:               "v_lshr_b64",
	VAshrI64:               "v_ashr_i64",
	VAddF64:                "v_add_f64",
	VMulF64:                "v_mul_f64",
	VMinF64:                "v_min_f64",
	VMaxF64:                "v_max_f64",
	VLdexpF64:              "v_ldexp_f64",
	VMulLoU32:              "v_mul_lo_u32",
	VMulHiU32:              "v_mul_hi_u32",
	VMulLoI32:              "v_mul_lo_i32",
	VMulHiI32:              "v_mul_hi_i32",
	VDivScaleF32:           "v_div_scale_f32",
	VDivScaleF64:           "v_div_scale_f64",
	VMadU64U32:             "v_mad_u64_u32",
	VMadI64I32:             "v_mad_i64_i32",
	VMullitF32:             "v_mullit_f32",
	VLshlAddU32:            "v_lshl_add_u32",
	VAdd3U32:               "v_add3_u32",
	VLshlOrB32:             "v_lshl_or_b32",
	VAndOrB32:              "v_and_or_b32",
	VOr3B32:                "v_or3_b32",
	VInterpP1F32:           "v_interp_p1_f32",
	VInterpP2F32:           "v_interp_p2_f32",
	VInterpMovF32:          "v_interp_mov_f32",
	Exp:                    "exp",
	BufferLoadFormatX:      "buffer_load_format_x",
	BufferStoreFormatX:     "buffer_store_format_x",
	TbufferLoadFormatX:     "tbuffer_load_format_x",
	TbufferStoreFormatX:    "tbuffer_store_format_x",
	BufferLoadFormatXy:     "buffer_load_format_xy",
	BufferStoreFormatXy:    "buffer_store_format_xy",
	TbufferLoadFormatXy:    "tbuffer_load_format_xy",
	TbufferStoreFormatXy:   "tbuffer_store_format_xy",
	BufferLoadFormatXyz:    "buffer_load_format_xyz",
	BufferStoreFormatXyz:   "buffer_store_format_xyz",
	TbufferLoadFormatXyz:   "tbuffer_load_format_xyz",
	TbufferStoreFormatXyz:  "tbuffer_store_format_xyz",
	BufferLoadFormatXyzw:   "buffer_load_format_xyzw",
	BufferStoreFormatXyzw:  "buffer_store_format_xyzw",
	TbufferLoadFormatXyzw:  "tbuffer_load_format_xyzw",
	TbufferStoreFormatXyzw: "tbuffer_store_format_xyzw",
	BufferLoadUbyte:        "buffer_load_ubyte",
	BufferLoadSbyte:        "buffer_load_sbyte",
	BufferLoadUshort:       "buffer_load_ushort",
	BufferLoadSshort:       "buffer_load_sshort",
	BufferLoadDword:        "buffer_load_dword",
	BufferLoadDwordx2:      "buffer_load_dwordx2",
	BufferLoadDwordx4:      "buffer_load_dwordx4",
	BufferLoadDwordx3:      "buffer_load_dwordx3",
	BufferStoreByte:        "buffer_store_byte",
	BufferStoreShort:       "buffer_store_short",
	BufferStoreDword:       "buffer_store_dword",
	BufferStoreDwordx2:     "buffer_store_dwordx2",
	BufferStoreDwordx4:     "buffer_store_dwordx4",
	BufferStoreDwordx3:     "buffer_store_dwordx3",
	BufferAtomicSwap:       "buffer_atomic_swap",
	BufferAtomicAdd:        "buffer_atomic_add",
	BufferAtomicSub:        "buffer_atomic_sub",
	BufferAtomicSmin:       "buffer_atomic_smin",
	BufferAtomicUmin:       "buffer_atomic_umin",
	BufferAtomicSmax:       "buffer_atomic_smax",
	BufferAtomicUmax:       "buffer_atomic_umax",
	BufferAtomicAnd:        "buffer_atomic_and",
	BufferAtomicOr:         "buffer_atomic_or",
	BufferAtomicXor:        "buffer_atomic_xor",
	BufferWbinvl1Vol:       "buffer_wbinvl1_vol",
	BufferWbinvl1:          "buffer_wbinvl1",
	BufferGl0Inv:           "buffer_gl0_inv",
	BufferGl1Inv:           "buffer_gl1_inv",
	ImageLoad:              "image_load",
	ImageLoadMip:           "image_load_mip",
	ImageStore:             "image_store",
	ImageStoreMip:          "image_store_mip",
	ImageGetResinfo:        "image_get_resinfo",
	ImageSample:            "image_sample",
	ImageSampleL:           "image_sample_l",
	ImageSampleB:           "image_sample_b",
	ImageSampleLz:          "image_sample_lz",
	ImageSampleC:           "image_sample_c",
	ImageSampleCLz:         "image_sample_c_lz",
	ImageGather4:           "image_gather4",
	DsAddU32:               "ds_add_u32",
	DsSubU32:               "ds_sub_u32",
	DsWriteB32:             "ds_write_b32",
	DsWrite2B32:            "ds_write2_b32",
	DsAddRtnU32:            "ds_add_rtn_u32",
	DsSwizzleB32:           "ds_swizzle_b32",
	DsReadB32:              "ds_read_b32",
	DsRead2B32:             "ds_read2_b32",
	DsConsume:              "ds_consume",
	DsAppend:               "ds_append",
	DsWriteB64:             "ds_write_b64",
	DsReadB64:              "ds_read_b64",
}

func (t InstructionType) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return fmt.Sprintf("InstructionType(%d)", t)
}

// LookupType returns the instruction type with the given mnemonic.
func LookupType(name string) (InstructionType, bool) {
	t, ok := typesByName[name]
	return t, ok
}

var typesByName = func() map[string]InstructionType {
	m := make(map[string]InstructionType, typeCount)
	for i := TypeUnknown + 1; i < typeCount; i++ {
		m[typeNames[i]] = i
	}
	return m
}()

// Types lists every known instruction type in declaration order.
func Types() []InstructionType {
	out := make([]InstructionType, 0, typeCount-1)
	for i := TypeUnknown + 1; i < typeCount; i++ {
		out = append(out, i)
	}
	return out
}
