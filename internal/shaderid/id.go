// Package shaderid fingerprints a shader by everything that influences the
// generated SPIR-V: the binary header, the stage's binding decisions and
// any debug printfs attached to the program.
//
// An ID is a structural sequence, not a digest. Equal compares the whole
// sequence; Hash only buckets IDs for map lookups.
package shaderid

import (
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	"gcnrecomp/internal/bind"
	"gcnrecomp/internal/gcn"
	"gcnrecomp/internal/shaderbin"
	"gcnrecomp/internal/stage"
)

type ID []uint32

// Equal reports whether two IDs are the same sequence.
func (id ID) Equal(other ID) bool {
	if len(id) != len(other) {
		return false
	}
	for i := range id {
		if id[i] != other[i] {
			return false
		}
	}
	return true
}

// Hash is the FNV-1a hash of the sequence.
func (id ID) Hash() uint64 {
	h := fnv.New64a()
	var b [4]byte
	for _, v := range id {
		b[0], b[1], b[2], b[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
		h.Write(b[:])
	}
	return h.Sum64()
}

// Key is a comparable form of the ID for use as a map key.
func (id ID) Key() string {
	var sb strings.Builder
	for _, v := range id {
		sb.WriteByte(byte(v))
		sb.WriteByte(byte(v >> 8))
		sb.WriteByte(byte(v >> 16))
		sb.WriteByte(byte(v >> 24))
	}
	return sb.String()
}

func (id ID) String() string {
	return fmt.Sprintf("%016x/%d", id.Hash(), len(id))
}

// Marker words separating the stage sections.
const (
	markVS       = 0x56530000
	markPS       = 0x50530000
	markCS       = 0x43530000
	markEmbedded = 0x454d4200
	markPrintf   = 0x50524e00
)

type builder struct{ id ID }

func (b *builder) add(vs ...uint32) { b.id = append(b.id, vs...) }

func (b *builder) bool(v bool) {
	if v {
		b.add(1)
	} else {
		b.add(0)
	}
}

func (b *builder) int(v int) { b.add(uint32(v)) }

// str appends the length of s followed by its bytes packed little-endian.
func (b *builder) str(s string) {
	b.int(len(s))
	for i := 0; i < len(s); i += 4 {
		var w uint32
		for j := 0; j < 4 && i+j < len(s); j++ {
			w |= uint32(s[i+j]) << (8 * j)
		}
		b.add(w)
	}
}

func (b *builder) header(h shaderbin.Info) {
	b.add(h.Length, h.Hash0, h.Hash1, h.Crc32)
}

// resources appends every field of the bound resources that changes the
// generated code. Descriptor base addresses are excluded; they reach the
// shader through push constants at run time.
func (b *builder) resources(r *bind.Resources) {
	b.int(len(r.Buffers))
	for _, buf := range r.Buffers {
		b.origin(buf.Origin)
		b.add(uint32(buf.Usage), buf.Desc.Stride(), buf.Desc.DstSel(), buf.Desc.Nfmt(), buf.Desc.Dfmt(),
			buf.Desc.ElementSize(), buf.Desc.IndexStride())
		b.bool(buf.Desc.AddTid())
		b.bool(buf.Desc.SwizzleEnabled())
	}
	b.int(len(r.Textures))
	for _, t := range r.Textures {
		b.origin(t.Origin)
		b.add(uint32(t.Usage), t.Desc.Type(), t.Desc.Dfmt(), t.Desc.Nfmt(), t.Desc.DstSel(),
			t.Desc.BaseLevel(), t.Desc.LastLevel(), t.Desc.BaseArray(), t.Desc.LastArray())
	}
	b.int(len(r.Samplers))
	for _, s := range r.Samplers {
		b.origin(s.Origin)
		b.add(s.Desc[0], s.Desc[1], s.Desc[2], s.Desc[3])
	}
	b.int(len(r.Gds))
	for _, g := range r.Gds {
		b.origin(g.Origin)
		b.add(uint32(g.Usage))
	}
	l := r.Layout
	b.add(uint32(l.DescriptorSet), uint32(l.BufferBinding), uint32(l.TextureBinding),
		uint32(l.SamplerBinding), uint32(l.GdsBinding), l.PushConstantOffset, l.PushConstantSize)
}

func (b *builder) origin(o bind.Origin) {
	b.int(o.StartRegister)
	b.int(o.Slot)
	b.bool(o.Extended)
}

func (b *builder) extended(e bind.ExtendedData) {
	b.bool(e.Used)
	b.int(e.Slot)
	b.int(e.StartRegister)
}

// ComputeVS fingerprints a vertex shader.
func ComputeVS(info *stage.VsInputInfo) ID {
	b := &builder{}
	b.add(markVS)
	if info.Embedded {
		b.add(markEmbedded, info.EmbeddedID)
		return b.id
	}
	b.header(info.Header)
	b.bool(info.Fetch)
	if info.Fetch {
		b.int(info.FetchSlot)
		b.int(info.FetchRegister)
		b.int(info.VertexBufferSlot)
		b.int(info.VertexBufferReg)
	}
	b.int(len(info.Attributes))
	for _, a := range info.Attributes {
		b.int(a.Index)
		b.int(a.RegStart)
		b.int(a.RegCount)
		b.int(a.Buffer)
		b.add(a.Offset, a.Dfmt, a.Nfmt)
	}
	b.int(len(info.Buffers))
	for _, vb := range info.Buffers {
		b.add(vb.Stride, vb.Desc.DstSel())
		b.int(len(vb.Attributes))
	}
	b.int(info.ExportCount)
	b.add(info.PosFormat)
	b.resources(&info.Resources)
	b.extended(info.Resources.Extended)
	return b.id
}

// ComputePS fingerprints a pixel shader.
func ComputePS(info *stage.PsInputInfo) ID {
	b := &builder{}
	b.add(markPS)
	if info.Embedded {
		b.add(markEmbedded, info.EmbeddedID)
		return b.id
	}
	b.header(info.Header)
	b.int(len(info.Interpolators))
	b.add(info.Interpolators...)
	b.add(info.InputEna, info.InputAddr)
	b.bool(info.PosXY)
	b.bool(info.PixelKill)
	b.bool(info.ZExport)
	b.add(info.TargetOutputMode[:]...)
	b.add(info.ShaderMask)
	b.resources(&info.Resources)
	b.extended(info.Resources.Extended)
	return b.id
}

// ComputeCS fingerprints a compute shader.
func ComputeCS(info *stage.CsInputInfo) ID {
	b := &builder{}
	b.add(markCS)
	b.header(info.Header)
	b.add(info.ThreadsNum[:]...)
	for _, g := range info.GroupID {
		b.bool(g)
	}
	b.bool(info.ThreadGroupSize)
	b.int(info.ThreadIDs)
	b.add(info.LdsSize)
	b.int(info.UserSgprs)
	b.resources(&info.Resources)
	b.extended(info.Resources.Extended)
	return b.id
}

// WithPrintfs returns id extended by the debug printfs attached to the
// shader, so an instrumented module never shares an identity with the
// plain one. With no printfs id is returned unchanged.
func WithPrintfs(id ID, printfs []gcn.DebugPrintf) ID {
	if len(printfs) == 0 {
		return id
	}
	b := &builder{id: slices.Clone(id)}
	b.add(markPrintf)
	b.int(len(printfs))
	for _, p := range printfs {
		b.add(p.PC)
		b.str(p.Format)
		b.int(len(p.Types))
		for _, t := range p.Types {
			b.add(uint32(t))
		}
		b.int(len(p.Args))
		for _, a := range p.Args {
			b.add(uint32(a.Kind))
			b.int(a.RegisterID)
			b.int(a.Size)
			b.add(a.Constant.Bits)
		}
	}
	return b.id
}
