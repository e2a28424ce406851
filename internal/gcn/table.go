package gcn

// Opcode tables, one per encoding family. Entries legal in both ISA
// generations live in "both"; the per-generation maps hold opcodes that
// exist only in one generation or change meaning between them.

type entryFlags uint8

const (
	flagDstScalar entryFlags = 1 << iota // VALU writes an SGPR (readlane, readfirstlane)
	flagLiteralK                         // always followed by a 32-bit K constant
	flagVccIn                            // reads VCC implicitly in the 32-bit encoding
	flagVccOut                           // writes VCC implicitly in the 32-bit encoding
	flagStore
	flagAtomic
	flagSampler
)

type entry struct {
	typ    InstructionType
	format Format
	dst    uint8 // register span of the destination
	src    uint8 // register span of the sources
	src1   uint8 // span of the second source when it differs
	flags  entryFlags
}

type opcodeTable struct {
	both    map[uint32]entry
	current map[uint32]entry
	next    map[uint32]entry
}

// lookup resolves an opcode for the selected generation. mismatch is set
// when the opcode exists only in the other generation.
func (t *opcodeTable) lookup(op uint32, nextGen bool) (e entry, ok, mismatch bool) {
	if e, ok = t.both[op]; ok {
		return e, true, false
	}
	own, other := t.current, t.next
	if nextGen {
		own, other = t.next, t.current
	}
	if e, ok = own[op]; ok {
		return e, true, false
	}
	_, mismatch = other[op]
	return entry{}, false, mismatch
}

var sop2Table = &opcodeTable{
	both: map[uint32]entry{
		0:  {typ: SAddU32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		1:  {typ: SSubU32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		2:  {typ: SAddI32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		3:  {typ: SSubI32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		4:  {typ: SAddcU32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		5:  {typ: SSubbU32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		6:  {typ: SMinI32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		7:  {typ: SMinU32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		8:  {typ: SMaxI32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		9:  {typ: SMaxU32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		10: {typ: SCselectB32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		11: {typ: SCselectB64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2},
		14: {typ: SAndB32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		15: {typ: SAndB64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2},
		16: {typ: SOrB32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		17: {typ: SOrB64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2},
		18: {typ: SXorB32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		19: {typ: SXorB64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2},
		20: {typ: SAndn2B32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		21: {typ: SAndn2B64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2},
		22: {typ: SOrn2B32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		23: {typ: SOrn2B64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2},
		24: {typ: SNandB32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		25: {typ: SNandB64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2},
		26: {typ: SNorB32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		27: {typ: SNorB64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2},
		28: {typ: SXnorB32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		29: {typ: SXnorB64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2},
		30: {typ: SLshlB32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		31: {typ: SLshlB64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2, src1: 1},
		32: {typ: SLshrB32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		33: {typ: SLshrB64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2, src1: 1},
		34: {typ: SAshrI32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		35: {typ: SAshrI64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2, src1: 1},
		36: {typ: SBfmB32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		37: {typ: SBfmB64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 1},
		38: {typ: SMulI32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		39: {typ: SBfeU32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		40: {typ: SBfeI32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		41: {typ: SBfeU64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2, src1: 1},
		42: {typ: SBfeI64, format: FmtSdstSsrc0Ssrc1, dst: 2, src: 2, src1: 1},
		44: {typ: SAbsdiffI32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
	},
	current: map[uint32]entry{
		43: {typ: SCbranchGFork, format: FmtSsrc0Ssrc1, dst: 0, src: 2, src1: 2},
	},
	next: map[uint32]entry{
		46: {typ: SLshl1AddU32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		47: {typ: SLshl2AddU32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		48: {typ: SLshl3AddU32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		49: {typ: SLshl4AddU32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		50: {typ: SPackLlB32B16, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		53: {typ: SMulHiU32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
		54: {typ: SMulHiI32, format: FmtSdstSsrc0Ssrc1, dst: 1, src: 1},
	},
}

var sopkTable = &opcodeTable{
	both: map[uint32]entry{
		0:  {typ: SMovkI32, format: FmtSdstSimm16, dst: 1, src: 0},
		2:  {typ: SCmovkI32, format: FmtSdstSimm16, dst: 1, src: 0},
		3:  {typ: SCmpkEqI32, format: FmtSdstSimm16, dst: 1, src: 0},
		4:  {typ: SCmpkLgI32, format: FmtSdstSimm16, dst: 1, src: 0},
		5:  {typ: SCmpkGtI32, format: FmtSdstSimm16, dst: 1, src: 0},
		6:  {typ: SCmpkGeI32, format: FmtSdstSimm16, dst: 1, src: 0},
		7:  {typ: SCmpkLtI32, format: FmtSdstSimm16, dst: 1, src: 0},
		8:  {typ: SCmpkLeI32, format: FmtSdstSimm16, dst: 1, src: 0},
		9:  {typ: SCmpkEqU32, format: FmtSdstSimm16, dst: 1, src: 0},
		10: {typ: SCmpkLgU32, format: FmtSdstSimm16, dst: 1, src: 0},
		11: {typ: SCmpkGtU32, format: FmtSdstSimm16, dst: 1, src: 0},
		12: {typ: SCmpkGeU32, format: FmtSdstSimm16, dst: 1, src: 0},
		13: {typ: SCmpkLtU32, format: FmtSdstSimm16, dst: 1, src: 0},
		14: {typ: SCmpkLeU32, format: FmtSdstSimm16, dst: 1, src: 0},
		15: {typ: SAddkI32, format: FmtSdstSimm16, dst: 1, src: 0},
		16: {typ: SMulkI32, format: FmtSdstSimm16, dst: 1, src: 0},
		18: {typ: SGetregB32, format: FmtSdstSimm16, dst: 1, src: 0},
		19: {typ: SSetregB32, format: FmtSdstSimm16, dst: 1, src: 0},
		21: {typ: SSetregImm32B32, format: FmtSimm16Literal},
	},
}

var sop1Table = &opcodeTable{
	both: map[uint32]entry{
		3:  {typ: SMovB32, format: FmtSdstSsrc0, dst: 1, src: 1},
		4:  {typ: SMovB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		5:  {typ: SCmovB32, format: FmtSdstSsrc0, dst: 1, src: 1},
		6:  {typ: SCmovB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		7:  {typ: SNotB32, format: FmtSdstSsrc0, dst: 1, src: 1},
		8:  {typ: SNotB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		9:  {typ: SWqmB32, format: FmtSdstSsrc0, dst: 1, src: 1},
		10: {typ: SWqmB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		11: {typ: SBrevB32, format: FmtSdstSsrc0, dst: 1, src: 1},
		12: {typ: SBrevB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		15: {typ: SBcnt1I32B32, format: FmtSdstSsrc0, dst: 1, src: 1},
		16: {typ: SBcnt1I32B64, format: FmtSdstSsrc0, dst: 1, src: 2},
		19: {typ: SFf1I32B32, format: FmtSdstSsrc0, dst: 1, src: 1},
		20: {typ: SFf1I32B64, format: FmtSdstSsrc0, dst: 1, src: 2},
		21: {typ: SFlbitI32B32, format: FmtSdstSsrc0, dst: 1, src: 1},
		25: {typ: SSextI32I8, format: FmtSdstSsrc0, dst: 1, src: 1},
		26: {typ: SSextI32I16, format: FmtSdstSsrc0, dst: 1, src: 1},
		27: {typ: SBitset0B32, format: FmtSdstSsrc0, dst: 1, src: 1},
		29: {typ: SBitset1B32, format: FmtSdstSsrc0, dst: 1, src: 1},
		31: {typ: SGetpcB64, format: FmtSdst, dst: 2, src: 0},
		32: {typ: SSetpcB64, format: FmtSsrc0, dst: 0, src: 2},
		33: {typ: SSwappcB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		36: {typ: SAndSaveexecB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		37: {typ: SOrSaveexecB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		38: {typ: SXorSaveexecB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		39: {typ: SAndn2SaveexecB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		40: {typ: SOrn2SaveexecB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		41: {typ: SNandSaveexecB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		42: {typ: SNorSaveexecB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		43: {typ: SXnorSaveexecB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		44: {typ: SQuadmaskB32, format: FmtSdstSsrc0, dst: 1, src: 1},
		45: {typ: SQuadmaskB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		46: {typ: SMovrelsB32, format: FmtSdstSsrc0, dst: 1, src: 1},
		47: {typ: SMovrelsB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		48: {typ: SMovreldB32, format: FmtSdstSsrc0, dst: 1, src: 1},
		49: {typ: SMovreldB64, format: FmtSdstSsrc0, dst: 2, src: 2},
		52: {typ: SAbsI32, format: FmtSdstSsrc0, dst: 1, src: 1},
	},
	current: map[uint32]entry{
		50: {typ: SCbranchJoin, format: FmtSsrc0, dst: 0, src: 1},
	},
}

var sopcTable = &opcodeTable{
	both: map[uint32]entry{
		0:  {typ: SCmpEqI32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		1:  {typ: SCmpLgI32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		2:  {typ: SCmpGtI32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		3:  {typ: SCmpGeI32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		4:  {typ: SCmpLtI32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		5:  {typ: SCmpLeI32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		6:  {typ: SCmpEqU32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		7:  {typ: SCmpLgU32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		8:  {typ: SCmpGtU32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		9:  {typ: SCmpGeU32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		10: {typ: SCmpLtU32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		11: {typ: SCmpLeU32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		12: {typ: SBitcmp0B32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		13: {typ: SBitcmp1B32, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
		14: {typ: SBitcmp0B64, format: FmtSsrc0Ssrc1, dst: 0, src: 2, src1: 1},
		15: {typ: SBitcmp1B64, format: FmtSsrc0Ssrc1, dst: 0, src: 2, src1: 1},
	},
	current: map[uint32]entry{
		16: {typ: SSetvskip, format: FmtSsrc0Ssrc1, dst: 0, src: 1},
	},
	next: map[uint32]entry{
		18: {typ: SCmpEqU64, format: FmtSsrc0Ssrc1, dst: 0, src: 2},
		19: {typ: SCmpLgU64, format: FmtSsrc0Ssrc1, dst: 0, src: 2},
	},
}

var soppTable = &opcodeTable{
	both: map[uint32]entry{
		0:  {typ: SNop, format: FmtSimm16},
		1:  {typ: SEndpgm, format: FmtNone},
		2:  {typ: SBranch, format: FmtLabel},
		4:  {typ: SCbranchScc0, format: FmtLabel},
		5:  {typ: SCbranchScc1, format: FmtLabel},
		6:  {typ: SCbranchVccz, format: FmtLabel},
		7:  {typ: SCbranchVccnz, format: FmtLabel},
		8:  {typ: SCbranchExecz, format: FmtLabel},
		9:  {typ: SCbranchExecnz, format: FmtLabel},
		10: {typ: SBarrier, format: FmtNone},
		12: {typ: SWaitcnt, format: FmtSimm16},
		13: {typ: SSethalt, format: FmtSimm16},
		14: {typ: SSleep, format: FmtSimm16},
		15: {typ: SSetprio, format: FmtSimm16},
		16: {typ: SSendmsg, format: FmtSimm16},
		17: {typ: SSendmsghalt, format: FmtSimm16},
		18: {typ: STrap, format: FmtSimm16},
		19: {typ: SIcacheInv, format: FmtNone},
		20: {typ: SIncperflevel, format: FmtSimm16},
		21: {typ: SDecperflevel, format: FmtSimm16},
		22: {typ: STtracedata, format: FmtNone},
	},
	current: map[uint32]entry{
		11: {typ: SSetkill, format: FmtSimm16},
	},
	next: map[uint32]entry{
		31: {typ: SCodeEnd, format: FmtNone},
		32: {typ: SInstPrefetch, format: FmtSimm16},
	},
}

var smrdTable = &opcodeTable{
	both: map[uint32]entry{
		0:  {typ: SLoadDword, format: FmtSmem, dst: 1, src: 2},
		1:  {typ: SLoadDwordx2, format: FmtSmem, dst: 2, src: 2},
		2:  {typ: SLoadDwordx4, format: FmtSmem, dst: 4, src: 2},
		3:  {typ: SLoadDwordx8, format: FmtSmem, dst: 8, src: 2},
		4:  {typ: SLoadDwordx16, format: FmtSmem, dst: 16, src: 2},
		8:  {typ: SBufferLoadDword, format: FmtSmem, dst: 1, src: 4},
		9:  {typ: SBufferLoadDwordx2, format: FmtSmem, dst: 2, src: 4},
		10: {typ: SBufferLoadDwordx4, format: FmtSmem, dst: 4, src: 4},
		11: {typ: SBufferLoadDwordx8, format: FmtSmem, dst: 8, src: 4},
		12: {typ: SBufferLoadDwordx16, format: FmtSmem, dst: 16, src: 4},
		29: {typ: SDcacheInvVol, format: FmtNone},
		30: {typ: SMemtime, format: FmtSmemSdst, dst: 2, src: 0},
		31: {typ: SDcacheInv, format: FmtNone},
	},
}

var smemTable = &opcodeTable{
	both: map[uint32]entry{
		0:  {typ: SLoadDword, format: FmtSmem, dst: 1, src: 2},
		1:  {typ: SLoadDwordx2, format: FmtSmem, dst: 2, src: 2},
		2:  {typ: SLoadDwordx4, format: FmtSmem, dst: 4, src: 2},
		3:  {typ: SLoadDwordx8, format: FmtSmem, dst: 8, src: 2},
		4:  {typ: SLoadDwordx16, format: FmtSmem, dst: 16, src: 2},
		8:  {typ: SBufferLoadDword, format: FmtSmem, dst: 1, src: 4},
		9:  {typ: SBufferLoadDwordx2, format: FmtSmem, dst: 2, src: 4},
		10: {typ: SBufferLoadDwordx4, format: FmtSmem, dst: 4, src: 4},
		11: {typ: SBufferLoadDwordx8, format: FmtSmem, dst: 8, src: 4},
		12: {typ: SBufferLoadDwordx16, format: FmtSmem, dst: 16, src: 4},
		32: {typ: SDcacheInv, format: FmtNone},
		36: {typ: SMemtime, format: FmtSmemSdst, dst: 2, src: 0},
	},
}

var vop2Table = &opcodeTable{
	both: map[uint32]entry{
		3:  {typ: VAddF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		4:  {typ: VSubF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		5:  {typ: VSubrevF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		7:  {typ: VMulLegacyF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		8:  {typ: VMulF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		9:  {typ: VMulI32I24, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		10: {typ: VMulHiI32I24, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		11: {typ: VMulU32U24, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		12: {typ: VMulHiU32U24, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		15: {typ: VMinF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		16: {typ: VMaxF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		17: {typ: VMinI32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		18: {typ: VMaxI32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		19: {typ: VMinU32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		20: {typ: VMaxU32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		22: {typ: VLshrrevB32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		24: {typ: VAshrrevI32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		26: {typ: VLshlrevB32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		27: {typ: VAndB32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		28: {typ: VOrB32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		29: {typ: VXorB32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		31: {typ: VMacF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		32: {typ: VMadmkF32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1, flags: flagLiteralK},
		33: {typ: VMadakF32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1, flags: flagLiteralK},
		47: {typ: VCvtPkrtzF16F32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
	},
	current: map[uint32]entry{
		0:  {typ: VCndmaskB32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1, flags: flagVccIn},
		1:  {typ: VReadlaneB32, format: FmtVdstSrc0Src1, dst: 1, src: 1, flags: flagDstScalar},
		2:  {typ: VWritelaneB32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		6:  {typ: VMacLegacyF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		13: {typ: VMinLegacyF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		14: {typ: VMaxLegacyF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		21: {typ: VLshrB32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		23: {typ: VAshrI32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		25: {typ: VLshlB32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		30: {typ: VBfmB32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		34: {typ: VBcntU32B32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		35: {typ: VMbcntLoU32B32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		36: {typ: VMbcntHiU32B32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		37: {typ: VAddI32, format: FmtVdstSdstSrc0Src1, dst: 1, src: 1, flags: flagVccOut},
		38: {typ: VSubI32, format: FmtVdstSdstSrc0Src1, dst: 1, src: 1, flags: flagVccOut},
		39: {typ: VSubrevI32, format: FmtVdstSdstSrc0Src1, dst: 1, src: 1, flags: flagVccOut},
		40: {typ: VAddcU32, format: FmtVdstSdstSrc0Src1Src2, dst: 1, src: 1, flags: flagVccOut | flagVccIn},
		41: {typ: VSubbU32, format: FmtVdstSdstSrc0Src1Src2, dst: 1, src: 1, flags: flagVccOut | flagVccIn},
		42: {typ: VSubbrevU32, format: FmtVdstSdstSrc0Src1Src2, dst: 1, src: 1, flags: flagVccOut | flagVccIn},
		43: {typ: VLdexpF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		44: {typ: VCvtPkaccumU8F32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		45: {typ: VCvtPknormI16F32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		46: {typ: VCvtPknormU16F32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		48: {typ: VCvtPkU16U32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		49: {typ: VCvtPkI16I32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
	},
	next: map[uint32]entry{
		1:  {typ: VCndmaskB32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1, flags: flagVccIn},
		30: {typ: VXnorB32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		37: {typ: VAddNcU32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		38: {typ: VSubNcU32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		39: {typ: VSubrevNcU32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
		43: {typ: VFmacF32, format: FmtVdstSrc0Src1, dst: 1, src: 1},
	},
}

var vop1Table = &opcodeTable{
	both: map[uint32]entry{
		0:  {typ: VNop, format: FmtNone},
		1:  {typ: VMovB32, format: FmtVdstSrc0, dst: 1, src: 1},
		2:  {typ: VReadfirstlaneB32, format: FmtVdstSrc0, dst: 1, src: 1, flags: flagDstScalar},
		3:  {typ: VCvtI32F64, format: FmtVdstSrc0, dst: 1, src: 2},
		4:  {typ: VCvtF64I32, format: FmtVdstSrc0, dst: 2, src: 1},
		5:  {typ: VCvtF32I32, format: FmtVdstSrc0, dst: 1, src: 1},
		6:  {typ: VCvtF32U32, format: FmtVdstSrc0, dst: 1, src: 1},
		7:  {typ: VCvtU32F32, format: FmtVdstSrc0, dst: 1, src: 1},
		8:  {typ: VCvtI32F32, format: FmtVdstSrc0, dst: 1, src: 1},
		10: {typ: VCvtF16F32, format: FmtVdstSrc0, dst: 1, src: 1},
		11: {typ: VCvtF32F16, format: FmtVdstSrc0, dst: 1, src: 1},
		12: {typ: VCvtRpiI32F32, format: FmtVdstSrc0, dst: 1, src: 1},
		13: {typ: VCvtFlrI32F32, format: FmtVdstSrc0, dst: 1, src: 1},
		14: {typ: VCvtOffF32I4, format: FmtVdstSrc0, dst: 1, src: 1},
		15: {typ: VCvtF32F64, format: FmtVdstSrc0, dst: 1, src: 2},
		16: {typ: VCvtF64F32, format: FmtVdstSrc0, dst: 2, src: 1},
		17: {typ: VCvtF32Ubyte0, format: FmtVdstSrc0, dst: 1, src: 1},
		18: {typ: VCvtF32Ubyte1, format: FmtVdstSrc0, dst: 1, src: 1},
		19: {typ: VCvtF32Ubyte2, format: FmtVdstSrc0, dst: 1, src: 1},
		20: {typ: VCvtF32Ubyte3, format: FmtVdstSrc0, dst: 1, src: 1},
		21: {typ: VCvtU32F64, format: FmtVdstSrc0, dst: 1, src: 2},
		22: {typ: VCvtF64U32, format: FmtVdstSrc0, dst: 2, src: 1},
		32: {typ: VFractF32, format: FmtVdstSrc0, dst: 1, src: 1},
		33: {typ: VTruncF32, format: FmtVdstSrc0, dst: 1, src: 1},
		34: {typ: VCeilF32, format: FmtVdstSrc0, dst: 1, src: 1},
		35: {typ: VRndneF32, format: FmtVdstSrc0, dst: 1, src: 1},
		36: {typ: VFloorF32, format: FmtVdstSrc0, dst: 1, src: 1},
		37: {typ: VExpF32, format: FmtVdstSrc0, dst: 1, src: 1},
		39: {typ: VLogF32, format: FmtVdstSrc0, dst: 1, src: 1},
		42: {typ: VRcpF32, format: FmtVdstSrc0, dst: 1, src: 1},
		43: {typ: VRcpIflagF32, format: FmtVdstSrc0, dst: 1, src: 1},
		46: {typ: VRsqF32, format: FmtVdstSrc0, dst: 1, src: 1},
		47: {typ: VRcpF64, format: FmtVdstSrc0, dst: 2, src: 2},
		49: {typ: VRsqF64, format: FmtVdstSrc0, dst: 2, src: 2},
		51: {typ: VSqrtF32, format: FmtVdstSrc0, dst: 1, src: 1},
		52: {typ: VSqrtF64, format: FmtVdstSrc0, dst: 2, src: 2},
		53: {typ: VSinF32, format: FmtVdstSrc0, dst: 1, src: 1},
		54: {typ: VCosF32, format: FmtVdstSrc0, dst: 1, src: 1},
		55: {typ: VNotB32, format: FmtVdstSrc0, dst: 1, src: 1},
		56: {typ: VBfrevB32, format: FmtVdstSrc0, dst: 1, src: 1},
		57: {typ: VFfbhU32, format: FmtVdstSrc0, dst: 1, src: 1},
		58: {typ: VFfblB32, format: FmtVdstSrc0, dst: 1, src: 1},
		59: {typ: VFfbhI32, format: FmtVdstSrc0, dst: 1, src: 1},
	},
	current: map[uint32]entry{
		38: {typ: VLogClampF32, format: FmtVdstSrc0, dst: 1, src: 1},
		40: {typ: VRcpClampF32, format: FmtVdstSrc0, dst: 1, src: 1},
		41: {typ: VRcpLegacyF32, format: FmtVdstSrc0, dst: 1, src: 1},
		44: {typ: VRsqClampF32, format: FmtVdstSrc0, dst: 1, src: 1},
		45: {typ: VRsqLegacyF32, format: FmtVdstSrc0, dst: 1, src: 1},
	},
}

var vopcTable = &opcodeTable{
	both: map[uint32]entry{
		0:   {typ: VCmpFF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		1:   {typ: VCmpLtF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		2:   {typ: VCmpEqF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		3:   {typ: VCmpLeF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		4:   {typ: VCmpGtF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		5:   {typ: VCmpLgF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		6:   {typ: VCmpGeF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		7:   {typ: VCmpOF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		8:   {typ: VCmpUF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		9:   {typ: VCmpNgeF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		10:  {typ: VCmpNlgF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		11:  {typ: VCmpNgtF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		12:  {typ: VCmpNleF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		13:  {typ: VCmpNeqF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		14:  {typ: VCmpNltF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		15:  {typ: VCmpTruF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		16:  {typ: VCmpxFF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		17:  {typ: VCmpxLtF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		18:  {typ: VCmpxEqF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		19:  {typ: VCmpxLeF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		20:  {typ: VCmpxGtF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		21:  {typ: VCmpxLgF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		22:  {typ: VCmpxGeF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		23:  {typ: VCmpxOF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		24:  {typ: VCmpxUF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		25:  {typ: VCmpxNgeF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		26:  {typ: VCmpxNlgF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		27:  {typ: VCmpxNgtF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		28:  {typ: VCmpxNleF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		29:  {typ: VCmpxNeqF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		30:  {typ: VCmpxNltF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		31:  {typ: VCmpxTruF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		128: {typ: VCmpFI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		129: {typ: VCmpLtI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		130: {typ: VCmpEqI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		131: {typ: VCmpLeI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		132: {typ: VCmpGtI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		133: {typ: VCmpNeI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		134: {typ: VCmpGeI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		135: {typ: VCmpTI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		136: {typ: VCmpClassF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		144: {typ: VCmpxFI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		145: {typ: VCmpxLtI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		146: {typ: VCmpxEqI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		147: {typ: VCmpxLeI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		148: {typ: VCmpxGtI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		149: {typ: VCmpxNeI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		150: {typ: VCmpxGeI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		151: {typ: VCmpxTI32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		152: {typ: VCmpxClassF32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		192: {typ: VCmpFU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		193: {typ: VCmpLtU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		194: {typ: VCmpEqU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		195: {typ: VCmpLeU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		196: {typ: VCmpGtU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		197: {typ: VCmpNeU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		198: {typ: VCmpGeU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		199: {typ: VCmpTU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		208: {typ: VCmpxFU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		209: {typ: VCmpxLtU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		210: {typ: VCmpxEqU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		211: {typ: VCmpxLeU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		212: {typ: VCmpxGtU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		213: {typ: VCmpxNeU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		214: {typ: VCmpxGeU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
		215: {typ: VCmpxTU32, format: FmtSdstSrc0Src1, dst: 2, src: 1, flags: flagVccOut},
	},
}

var vop3Table = &opcodeTable{
	both: map[uint32]entry{
		320: {typ: VMadLegacyF32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		321: {typ: VMadF32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		322: {typ: VMadI32I24, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		323: {typ: VMadU32U24, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		324: {typ: VCubeidF32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		325: {typ: VCubescF32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		326: {typ: VCubetcF32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		327: {typ: VCubemaF32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		328: {typ: VBfeU32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		329: {typ: VBfeI32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		330: {typ: VBfiB32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		331: {typ: VFmaF32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		332: {typ: VFmaF64, format: FmtVdstSrc0Src1Src2, dst: 2, src: 2},
		333: {typ: VLerpU8, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		334: {typ: VAlignbitB32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		335: {typ: VAlignbyteB32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		337: {typ: VMin3F32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		338: {typ: VMin3I32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		339: {typ: VMin3U32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		340: {typ: VMax3F32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		341: {typ: VMax3I32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		342: {typ: VMax3U32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		343: {typ: VMed3F32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		344: {typ: VMed3I32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		345: {typ: VMed3U32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		346: {typ: VSadU8, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		347: {typ: VSadHiU8, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		348: {typ: VSadU16, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		349: {typ: VSadU32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		350: {typ: VCvtPkU8F32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		351: {typ: VDivFixupF32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		352: {typ: VDivFixupF64, format: FmtVdstSrc0Src1Src2, dst: 2, src: 2},
		353: {typ: VLshlB64, format: FmtVdstSrc0Src1, dst: 2, src: 2, src1: 1},
		354: {typ: VLshrB64, format: FmtVdstSrc0Src1, dst: 2, src: 2, src1: 1},
		355: {typ: VAshrI64, format: FmtVdstSrc0Src1, dst: 2, src: 2, src1: 1},
		356: {typ: VAddF64, format: FmtVdstSrc0Src1, dst: 2, src: 2, src1: 2},
		357: {typ: VMulF64, format: FmtVdstSrc0Src1, dst: 2, src: 2, src1: 2},
		358: {typ: VMinF64, format: FmtVdstSrc0Src1, dst: 2, src: 2, src1: 2},
		359: {typ: VMaxF64, format: FmtVdstSrc0Src1, dst: 2, src: 2, src1: 2},
		360: {typ: VLdexpF64, format: FmtVdstSrc0Src1, dst: 2, src: 2, src1: 1},
		361: {typ: VMulLoU32, format: FmtVdstSrc0Src1, dst: 1, src: 1, src1: 1},
		362: {typ: VMulHiU32, format: FmtVdstSrc0Src1, dst: 1, src: 1, src1: 1},
		363: {typ: VMulLoI32, format: FmtVdstSrc0Src1, dst: 1, src: 1, src1: 1},
		364: {typ: VMulHiI32, format: FmtVdstSrc0Src1, dst: 1, src: 1, src1: 1},
		365: {typ: VDivScaleF32, format: FmtVdstSdstSrc0Src1Src2, dst: 1, src: 1, flags: flagVccOut},
		366: {typ: VDivScaleF64, format: FmtVdstSdstSrc0Src1Src2, dst: 2, src: 2, flags: flagVccOut},
		367: {typ: VDivFmasF32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		368: {typ: VDivFmasF64, format: FmtVdstSrc0Src1Src2, dst: 2, src: 2},
		374: {typ: VMadU64U32, format: FmtVdstSdstSrc0Src1Src2, dst: 2, src: 1, flags: flagVccOut},
		375: {typ: VMadI64I32, format: FmtVdstSdstSrc0Src1Src2, dst: 2, src: 1, flags: flagVccOut},
	},
	current: map[uint32]entry{
		336: {typ: VMullitF32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
	},
	next: map[uint32]entry{
		838: {typ: VLshlAddU32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		877: {typ: VAdd3U32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		879: {typ: VLshlOrB32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		881: {typ: VAndOrB32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
		882: {typ: VOr3B32, format: FmtVdstSrc0Src1Src2, dst: 1, src: 1},
	},
}

var vintrpTable = &opcodeTable{
	both: map[uint32]entry{
		0: {typ: VInterpP1F32, format: FmtVintrp, dst: 1, src: 1},
		1: {typ: VInterpP2F32, format: FmtVintrp, dst: 1, src: 1},
		2: {typ: VInterpMovF32, format: FmtVintrp, dst: 1, src: 1},
	},
}

var expTable = &opcodeTable{
	both: map[uint32]entry{
		0: {typ: Exp, format: FmtExp},
	},
}

var mubufTable = &opcodeTable{
	both: map[uint32]entry{
		0:  {typ: BufferLoadFormatX, format: FmtMubuf, dst: 1, src: 0},
		1:  {typ: BufferLoadFormatXy, format: FmtMubuf, dst: 2, src: 0},
		2:  {typ: BufferLoadFormatXyz, format: FmtMubuf, dst: 3, src: 0},
		3:  {typ: BufferLoadFormatXyzw, format: FmtMubuf, dst: 4, src: 0},
		4:  {typ: BufferStoreFormatX, format: FmtMubuf, dst: 0, src: 1, flags: flagStore},
		5:  {typ: BufferStoreFormatXy, format: FmtMubuf, dst: 0, src: 2, flags: flagStore},
		6:  {typ: BufferStoreFormatXyz, format: FmtMubuf, dst: 0, src: 3, flags: flagStore},
		7:  {typ: BufferStoreFormatXyzw, format: FmtMubuf, dst: 0, src: 4, flags: flagStore},
		8:  {typ: BufferLoadUbyte, format: FmtMubuf, dst: 1, src: 0},
		9:  {typ: BufferLoadSbyte, format: FmtMubuf, dst: 1, src: 0},
		10: {typ: BufferLoadUshort, format: FmtMubuf, dst: 1, src: 0},
		11: {typ: BufferLoadSshort, format: FmtMubuf, dst: 1, src: 0},
		12: {typ: BufferLoadDword, format: FmtMubuf, dst: 1, src: 0},
		13: {typ: BufferLoadDwordx2, format: FmtMubuf, dst: 2, src: 0},
		14: {typ: BufferLoadDwordx4, format: FmtMubuf, dst: 4, src: 0},
		15: {typ: BufferLoadDwordx3, format: FmtMubuf, dst: 3, src: 0},
		24: {typ: BufferStoreByte, format: FmtMubuf, dst: 0, src: 1, flags: flagStore},
		26: {typ: BufferStoreShort, format: FmtMubuf, dst: 0, src: 1, flags: flagStore},
		28: {typ: BufferStoreDword, format: FmtMubuf, dst: 0, src: 1, flags: flagStore},
		29: {typ: BufferStoreDwordx2, format: FmtMubuf, dst: 0, src: 2, flags: flagStore},
		30: {typ: BufferStoreDwordx4, format: FmtMubuf, dst: 0, src: 4, flags: flagStore},
		31: {typ: BufferStoreDwordx3, format: FmtMubuf, dst: 0, src: 3, flags: flagStore},
		48: {typ: BufferAtomicSwap, format: FmtMubuf, dst: 1, src: 1, flags: flagAtomic},
		50: {typ: BufferAtomicAdd, format: FmtMubuf, dst: 1, src: 1, flags: flagAtomic},
		51: {typ: BufferAtomicSub, format: FmtMubuf, dst: 1, src: 1, flags: flagAtomic},
		53: {typ: BufferAtomicSmin, format: FmtMubuf, dst: 1, src: 1, flags: flagAtomic},
		54: {typ: BufferAtomicUmin, format: FmtMubuf, dst: 1, src: 1, flags: flagAtomic},
		55: {typ: BufferAtomicSmax, format: FmtMubuf, dst: 1, src: 1, flags: flagAtomic},
		56: {typ: BufferAtomicUmax, format: FmtMubuf, dst: 1, src: 1, flags: flagAtomic},
		57: {typ: BufferAtomicAnd, format: FmtMubuf, dst: 1, src: 1, flags: flagAtomic},
		58: {typ: BufferAtomicOr, format: FmtMubuf, dst: 1, src: 1, flags: flagAtomic},
		59: {typ: BufferAtomicXor, format: FmtMubuf, dst: 1, src: 1, flags: flagAtomic},
	},
	current: map[uint32]entry{
		112: {typ: BufferWbinvl1Vol, format: FmtNone},
		113: {typ: BufferWbinvl1, format: FmtNone},
	},
	next: map[uint32]entry{
		113: {typ: BufferGl0Inv, format: FmtNone},
		114: {typ: BufferGl1Inv, format: FmtNone},
	},
}

var mtbufTable = &opcodeTable{
	both: map[uint32]entry{
		0: {typ: TbufferLoadFormatX, format: FmtMtbuf, dst: 1, src: 0},
		1: {typ: TbufferLoadFormatXy, format: FmtMtbuf, dst: 2, src: 0},
		2: {typ: TbufferLoadFormatXyz, format: FmtMtbuf, dst: 3, src: 0},
		3: {typ: TbufferLoadFormatXyzw, format: FmtMtbuf, dst: 4, src: 0},
		4: {typ: TbufferStoreFormatX, format: FmtMtbuf, dst: 0, src: 1, flags: flagStore},
		5: {typ: TbufferStoreFormatXy, format: FmtMtbuf, dst: 0, src: 2, flags: flagStore},
		6: {typ: TbufferStoreFormatXyz, format: FmtMtbuf, dst: 0, src: 3, flags: flagStore},
		7: {typ: TbufferStoreFormatXyzw, format: FmtMtbuf, dst: 0, src: 4, flags: flagStore},
	},
}

var mimgTable = &opcodeTable{
	both: map[uint32]entry{
		0:  {typ: ImageLoad, format: FmtMimg, dst: 4, src: 2},
		1:  {typ: ImageLoadMip, format: FmtMimg, dst: 4, src: 3},
		8:  {typ: ImageStore, format: FmtMimg, dst: 4, src: 2, flags: flagStore},
		9:  {typ: ImageStoreMip, format: FmtMimg, dst: 4, src: 3, flags: flagStore},
		14: {typ: ImageGetResinfo, format: FmtMimg, dst: 4, src: 1},
		32: {typ: ImageSample, format: FmtMimg, dst: 4, src: 2, flags: flagSampler},
		36: {typ: ImageSampleL, format: FmtMimg, dst: 4, src: 3, flags: flagSampler},
		37: {typ: ImageSampleB, format: FmtMimg, dst: 4, src: 3, flags: flagSampler},
		39: {typ: ImageSampleLz, format: FmtMimg, dst: 4, src: 2, flags: flagSampler},
		40: {typ: ImageSampleC, format: FmtMimg, dst: 4, src: 3, flags: flagSampler},
		47: {typ: ImageSampleCLz, format: FmtMimg, dst: 4, src: 3, flags: flagSampler},
		64: {typ: ImageGather4, format: FmtMimg, dst: 4, src: 2, flags: flagSampler},
	},
}

var dsTable = &opcodeTable{
	both: map[uint32]entry{
		0:   {typ: DsAddU32, format: FmtDsAddrData, dst: 0, src: 1},
		1:   {typ: DsSubU32, format: FmtDsAddrData, dst: 0, src: 1},
		13:  {typ: DsWriteB32, format: FmtDsAddrData, dst: 0, src: 1},
		14:  {typ: DsWrite2B32, format: FmtDsAddrData2, dst: 0, src: 1},
		32:  {typ: DsAddRtnU32, format: FmtDsVdstAddrData, dst: 1, src: 1},
		53:  {typ: DsSwizzleB32, format: FmtDsVdstAddr, dst: 1, src: 1},
		54:  {typ: DsReadB32, format: FmtDsVdstAddr, dst: 1, src: 1},
		55:  {typ: DsRead2B32, format: FmtDsVdstAddr, dst: 2, src: 1},
		61:  {typ: DsConsume, format: FmtDsVdst, dst: 1, src: 0},
		62:  {typ: DsAppend, format: FmtDsVdst, dst: 1, src: 0},
		77:  {typ: DsWriteB64, format: FmtDsAddrData, dst: 0, src: 2},
		118: {typ: DsReadB64, format: FmtDsVdstAddr, dst: 2, src: 1},
	},
}

var familyTables = [familyCount]*opcodeTable{
	FamilySOP2:   sop2Table,
	FamilySOPK:   sopkTable,
	FamilySOP1:   sop1Table,
	FamilySOPC:   sopcTable,
	FamilySOPP:   soppTable,
	FamilySMRD:   smrdTable,
	FamilySMEM:   smemTable,
	FamilyVOP2:   vop2Table,
	FamilyVOP1:   vop1Table,
	FamilyVOPC:   vopcTable,
	FamilyVOP3:   vop3Table,
	FamilyVINTRP: vintrpTable,
	FamilyEXP:    expTable,
	FamilyMUBUF:  mubufTable,
	FamilyMTBUF:  mtbufTable,
	FamilyMIMG:   mimgTable,
	FamilyDS:     dsTable,
}
