package gcn

import (
	"fmt"
	"strings"
)

var formatNames = [...]string{
	FmtNone:                 "none",
	FmtSimm16:               "simm16",
	FmtSimm16Literal:        "simm16_literal",
	FmtLabel:                "label",
	FmtSdstSimm16:           "sdst_simm16",
	FmtSdst:                 "sdst",
	FmtSsrc0:                "ssrc0",
	FmtSdstSsrc0:            "sdst_ssrc0",
	FmtSsrc0Ssrc1:           "ssrc0_ssrc1",
	FmtSdstSsrc0Ssrc1:       "sdst_ssrc0_ssrc1",
	FmtSmem:                 "smem",
	FmtSmemSdst:             "smem_sdst",
	FmtVdstSrc0:             "vdst_src0",
	FmtVdstSrc0Src1:         "vdst_src0_src1",
	FmtVdstSrc0Src1Src2:     "vdst_src0_src1_src2",
	FmtVdstSdstSrc0Src1:     "vdst_sdst_src0_src1",
	FmtVdstSdstSrc0Src1Src2: "vdst_sdst_src0_src1_src2",
	FmtSdstSrc0Src1:         "sdst_src0_src1",
	FmtVintrp:               "vintrp",
	FmtExp:                  "exp",
	FmtMubuf:                "mubuf",
	FmtMtbuf:                "mtbuf",
	FmtMimg:                 "mimg",
	FmtDsAddrData:           "ds_addr_data",
	FmtDsAddrData2:          "ds_addr_data2",
	FmtDsVdstAddr:           "ds_vdst_addr",
	FmtDsVdstAddrData:       "ds_vdst_addr_data",
	FmtDsVdst:               "ds_vdst",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", f)
}

// TargetName returns the assembler name of an export target.
func TargetName(t uint8) string {
	switch {
	case t < TargetMrtZ:
		return fmt.Sprintf("mrt%d", t)
	case t == TargetMrtZ:
		return "mrtz"
	case t == TargetNull:
		return "null"
	case t >= TargetPos0 && t < TargetPos0+4:
		return fmt.Sprintf("pos%d", t-TargetPos0)
	case t >= TargetParam0 && t <= maxTarget:
		return fmt.Sprintf("param%d", t-TargetParam0)
	}
	return fmt.Sprintf("target%d", t)
}

// LabelName is the dump name of a branch target.
func LabelName(pc uint32) string { return fmt.Sprintf("label_%04x", pc) }

var interpParams = [...]string{"p10", "p20", "p0"}

func (in *Instruction) String() string {
	var b strings.Builder
	b.WriteString(in.Type.String())
	ops := in.operands()
	if len(ops) > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(ops, ", "))
	}
	if mods := in.modifiers(); mods != "" {
		b.WriteByte(' ')
		b.WriteString(mods)
	}
	return b.String()
}

func (in *Instruction) operands() []string {
	src := func(i int) string { return in.Src[i].String() }
	dst := in.Dst.String()
	switch in.Format {
	case FmtNone:
		return nil
	case FmtSimm16:
		return []string{fmt.Sprintf("0x%04x", uint16(in.SImm))}
	case FmtSimm16Literal:
		return []string{fmt.Sprintf("0x%04x", uint16(in.SImm)), src(0)}
	case FmtLabel:
		return []string{LabelName(in.BranchTarget())}
	case FmtSdstSimm16:
		return []string{dst, fmt.Sprintf("0x%04x", uint16(in.SImm))}
	case FmtSdst, FmtSmemSdst:
		return []string{dst}
	case FmtSsrc0:
		return []string{src(0)}
	case FmtSdstSsrc0, FmtVdstSrc0:
		return []string{dst, src(0)}
	case FmtSsrc0Ssrc1:
		return []string{src(0), src(1)}
	case FmtSdstSsrc0Ssrc1, FmtVdstSrc0Src1, FmtSdstSrc0Src1:
		return []string{dst, src(0), src(1)}
	case FmtVdstSrc0Src1Src2:
		return []string{dst, src(0), src(1), src(2)}
	case FmtVdstSdstSrc0Src1:
		return []string{dst, in.Dst2.String(), src(0), src(1)}
	case FmtVdstSdstSrc0Src1Src2:
		return []string{dst, in.Dst2.String(), src(0), src(1), src(2)}
	case FmtSmem:
		ops := []string{dst, src(0)}
		if in.Flags.Has(FlagImm) {
			ops = append(ops, fmt.Sprintf("0x%02x", in.Offset))
		}
		if in.SrcNum > 1 {
			ops = append(ops, src(1))
		}
		return ops
	case FmtVintrp:
		s := src(0)
		if in.Type == VInterpMovF32 && int(in.Src[0].Constant.U()) < len(interpParams) {
			s = interpParams[in.Src[0].Constant.U()]
		}
		return []string{dst, s, fmt.Sprintf("attr%d.%c", in.Attr, "xyzw"[in.Chan])}
	case FmtExp:
		ops := []string{TargetName(in.Target)}
		for i := 0; i < 4; i++ {
			if in.Mask&(1<<i) == 0 {
				ops = append(ops, "off")
			} else {
				ops = append(ops, src(i))
			}
		}
		return ops
	case FmtMubuf, FmtMtbuf, FmtMimg:
		data := dst
		if in.SrcNum == 4 {
			data = src(3)
		}
		ops := []string{data, src(0), src(1)}
		if in.Format != FmtMimg || in.Src[2].Kind != OperandUnknown {
			ops = append(ops, src(2))
		}
		return ops
	case FmtDsAddrData:
		return []string{src(0), src(1)}
	case FmtDsAddrData2:
		return []string{src(0), src(1), src(2)}
	case FmtDsVdstAddr:
		return []string{dst, src(0)}
	case FmtDsVdstAddrData:
		return []string{dst, src(0), src(1)}
	case FmtDsVdst:
		return []string{dst}
	}
	return nil
}

func (in *Instruction) modifiers() string {
	var mods []string
	switch in.Dst.Multiplier {
	case 2:
		mods = append(mods, "mul:2")
	case 4:
		mods = append(mods, "mul:4")
	case 0.5:
		mods = append(mods, "div:2")
	}
	if in.Dst.Clamp {
		mods = append(mods, "clamp")
	}
	switch in.Format {
	case FmtMubuf, FmtMtbuf:
		if in.Offset != 0 {
			mods = append(mods, fmt.Sprintf("offset:%d", in.Offset))
		}
		if in.Format == FmtMtbuf {
			mods = append(mods, fmt.Sprintf("format:[%d,%d]", in.Dfmt, in.Nfmt))
		}
	case FmtMimg:
		mods = append(mods, fmt.Sprintf("dmask:0x%x", in.Mask))
	case FmtDsAddrData2:
		mods = append(mods, fmt.Sprintf("offset0:%d offset1:%d", in.Offset, in.Offset1))
	case FmtDsAddrData, FmtDsVdstAddr, FmtDsVdstAddrData, FmtDsVdst:
		if in.Type == DsRead2B32 {
			mods = append(mods, fmt.Sprintf("offset0:%d offset1:%d", in.Offset, in.Offset1))
		} else if in.Offset != 0 {
			mods = append(mods, fmt.Sprintf("offset:%d", in.Offset))
		}
	}
	for _, f := range flagNames {
		if in.Flags.Has(f.f) {
			mods = append(mods, f.name)
		}
	}
	return strings.Join(mods, " ")
}

// DumpOptions controls Code.Dump.
type DumpOptions struct {
	// PrintNames appends the encoding family and operand format to every
	// line.
	PrintNames bool
}

// Dump renders the whole program: one instruction per line prefixed with
// its byte offset, with label lines before branch targets and the attached
// debug-printf requests.
func (c *Code) Dump(opts DumpOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "; %s, %d instructions", c.Type, len(c.Instructions))
	if c.Embedded {
		fmt.Fprintf(&b, ", embedded id %d", c.EmbeddedID)
	}
	b.WriteByte('\n')
	for i := range c.Instructions {
		in := &c.Instructions[i]
		if c.HasLabel(in.PC) {
			fmt.Fprintf(&b, "%s:\n", LabelName(in.PC))
		}
		for _, p := range c.PrintfsAt(in.PC) {
			fmt.Fprintf(&b, "        ; printf %q", p.Format)
			for _, a := range p.Args {
				fmt.Fprintf(&b, " %s", a)
			}
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  0x%04x: %s", in.PC, in.String())
		if opts.PrintNames {
			fmt.Fprintf(&b, "  ; %s %s", in.Family, in.Format)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
