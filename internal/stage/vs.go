package stage

import (
	"fmt"

	"gcnrecomp/internal/bind"
	"gcnrecomp/internal/gcn"
	"gcnrecomp/internal/guest"
	"gcnrecomp/internal/resource"
	"gcnrecomp/internal/shaderbin"
)

// Attribute is one vertex attribute recovered from the fetch program.
type Attribute struct {
	// Index is the V# index in the vertex buffer table.
	Index    int `json:"index"`
	RegStart int `json:"reg_start"`
	RegCount int `json:"reg_count"`
	// Buffer indexes VsInputInfo.Buffers; Offset is the attribute's byte
	// offset inside that buffer.
	Buffer int    `json:"buffer"`
	Offset uint32 `json:"offset"`
	Dfmt   uint32 `json:"dfmt"`
	Nfmt   uint32 `json:"nfmt"`
}

// VertexBuffer is a logical buffer after coalescing.
type VertexBuffer struct {
	Desc       resource.Buffer `json:"desc"`
	Base       uint64          `json:"base"`
	Stride     uint32          `json:"stride"`
	Attributes []int           `json:"attributes"`
}

type VsInputInfo struct {
	Embedded   bool   `json:"embedded"`
	EmbeddedID uint32 `json:"embedded_id"`

	Fetch             bool   `json:"fetch"`
	FetchAddr         uint64 `json:"fetch_addr"`
	FetchSlot         int    `json:"fetch_slot"`
	FetchRegister     int    `json:"fetch_register"`
	VertexBufferTable uint64 `json:"vertex_buffer_table"`
	VertexBufferSlot  int    `json:"vertex_buffer_slot"`
	VertexBufferReg   int    `json:"vertex_buffer_register"`

	Attributes []Attribute    `json:"attributes"`
	Buffers    []VertexBuffer `json:"buffers"`

	ExportCount int    `json:"export_count"`
	PosFormat   uint32 `json:"pos_format"`

	Resources bind.Resources `json:"resources"`
	Header    shaderbin.Info `json:"header"`
}

// BuffersNum is the number of logical vertex buffers.
func (info *VsInputInfo) BuffersNum() int { return len(info.Buffers) }

// InputInfoVS builds the vertex stage input description.
func InputInfoVS(regs *VsRegisters, mem guest.Memory, opts Options) (*VsInputInfo, error) {
	if regs.Embedded {
		return &VsInputInfo{Embedded: true, EmbeddedID: regs.EmbeddedID}, nil
	}
	bin, err := readStage(mem, regs.DataAddr, &regs.UserSgpr)
	if err != nil {
		return nil, err
	}
	info := &VsInputInfo{
		Header:      bin.Info,
		ExportCount: regs.ExportCount(),
		PosFormat:   regs.PosFormat,
	}

	fetch, hasFetch := bin.Usage.Find(shaderbin.SubPtrFetchShader)
	vb, hasVB := bin.Usage.Find(shaderbin.PtrVertexBufferTable)
	if hasFetch != hasVB {
		return nil, withHeader(fmt.Errorf("%w: fetch=%v vertex_buffer=%v", ErrFetchPair, hasFetch, hasVB), bin.Info)
	}
	if hasFetch {
		if err := info.readFetch(regs, mem, opts, fetch, vb); err != nil {
			return nil, withHeader(err, bin.Info)
		}
	}

	res, err := bindStage(bin, &regs.UserSgpr, mem, 0, 0)
	if err != nil {
		return nil, err
	}
	info.Resources = *res
	return info, nil
}

func (info *VsInputInfo) readFetch(regs *VsRegisters, mem guest.Memory, opts Options, fetch, vb shaderbin.UsageSlot) error {
	var err error
	info.Fetch = true
	info.FetchSlot, info.FetchRegister = int(fetch.Slot), int(fetch.StartRegister)
	info.VertexBufferSlot, info.VertexBufferReg = int(vb.Slot), int(vb.StartRegister)
	if info.FetchAddr, err = regs.UserSgpr.Pointer(int(fetch.StartRegister)); err != nil {
		return err
	}
	if info.VertexBufferTable, err = regs.UserSgpr.Pointer(int(vb.StartRegister)); err != nil {
		return err
	}

	words, err := mem.Words(info.FetchAddr)
	if err != nil {
		return fmt.Errorf("stage: fetch shader: %w", err)
	}
	code, err := gcn.Parse(words, opts.decodeOptions(gcn.TypeFetch, &info.Header))
	if err != nil {
		return fmt.Errorf("stage: fetch shader: %w", err)
	}
	attrs, err := FetchAttributes(code)
	if err != nil {
		return err
	}

	descs := make([]resource.Buffer, len(attrs))
	for i := range attrs {
		w, err := guest.ReadWords(mem, info.VertexBufferTable+uint64(attrs[i].Index)*16, 4)
		if err != nil {
			return fmt.Errorf("stage: vertex buffer %d: %w", attrs[i].Index, err)
		}
		descs[i] = resource.Buffer(w)
		attrs[i].Dfmt = descs[i].Dfmt()
		attrs[i].Nfmt = descs[i].Nfmt()
	}
	info.Attributes = attrs
	info.Buffers, err = Coalesce(info.Attributes, descs)
	return err
}

var fetchLoads = map[gcn.InstructionType]bool{
	gcn.BufferLoadFormatX:     true,
	gcn.BufferLoadFormatXy:    true,
	gcn.BufferLoadFormatXyz:   true,
	gcn.BufferLoadFormatXyzw:  true,
	gcn.TbufferLoadFormatX:    true,
	gcn.TbufferLoadFormatXy:   true,
	gcn.TbufferLoadFormatXyz:  true,
	gcn.TbufferLoadFormatXyzw: true,
}

// FetchAttributes interprets a decoded fetch program. Each s_load_dwordx4
// loads one V# from the vertex buffer table; its dword offset / 4 is the
// V# index. Each buffer_load_format through that V# is one attribute, and
// its destination range and instruction offset are recorded.
func FetchAttributes(code *gcn.Code) ([]Attribute, error) {
	loaded := map[int]int{}
	var attrs []Attribute
	for i := range code.Instructions {
		in := &code.Instructions[i]
		switch {
		case in.Type == gcn.SLoadDwordx4:
			if !in.Flags.Has(gcn.FlagImm) || in.Offset%4 != 0 {
				return nil, fmt.Errorf("%w: %s at 0x%04x", ErrFetchProgram, in, in.PC)
			}
			loaded[in.Dst.RegisterID] = int(in.Offset / 4)
		case fetchLoads[in.Type]:
			idx, ok := loaded[in.Src[1].RegisterID]
			if !ok {
				return nil, fmt.Errorf("%w: %s reads a V# not loaded from the vertex buffer table", ErrFetchProgram, in)
			}
			if len(attrs) == MaxAttributes {
				return nil, fmt.Errorf("%w: more than %d", ErrTooManyAttributes, MaxAttributes)
			}
			attrs = append(attrs, Attribute{
				Index:    idx,
				RegStart: in.Dst.RegisterID,
				RegCount: in.Dst.Size,
				Offset:   in.Offset,
			})
		}
	}
	return attrs, nil
}

// Coalesce groups attributes into logical vertex buffers. Two attributes
// share a buffer when their strides are equal and their V# base addresses
// differ by less than one stride; the buffer starts at the lower base and
// each attribute's Offset becomes its distance from that base plus its
// instruction offset. descs[i] is the V# of attrs[i].
func Coalesce(attrs []Attribute, descs []resource.Buffer) ([]VertexBuffer, error) {
	var bufs []VertexBuffer
	rel := make([]uint64, len(attrs)) // attribute base minus buffer base
	for i := range attrs {
		base, stride := descs[i].Base(), descs[i].Stride()
		j := findBuffer(bufs, base, stride)
		if j < 0 {
			if len(bufs) == MaxAttributes {
				return nil, fmt.Errorf("%w: more than %d", ErrTooManyBuffers, MaxAttributes)
			}
			bufs = append(bufs, VertexBuffer{Desc: descs[i], Base: base, Stride: stride})
			j = len(bufs) - 1
		} else if base < bufs[j].Base {
			shift := bufs[j].Base - base
			for _, k := range bufs[j].Attributes {
				rel[k] += shift
			}
			bufs[j].Base = base
			bufs[j].Desc = descs[i]
		}
		rel[i] = base - bufs[j].Base
		attrs[i].Buffer = j
		bufs[j].Attributes = append(bufs[j].Attributes, i)
	}
	for i := range attrs {
		attrs[i].Offset += uint32(rel[i])
	}
	return bufs, nil
}

func findBuffer(bufs []VertexBuffer, base uint64, stride uint32) int {
	for j, b := range bufs {
		if b.Stride != stride {
			continue
		}
		d := base - b.Base
		if base < b.Base {
			d = b.Base - base
		}
		if d == 0 || d < uint64(stride) {
			return j
		}
	}
	return -1
}
