// Package bind reconstructs the resource descriptors a shader reads from
// its usage slots and computes their descriptor-set and push-constant
// layout.
package bind

import (
	"fmt"
	"strings"

	"gcnrecomp/internal/resource"
)

// Bucket limits.
const (
	MaxBuffers  = 16
	MaxTextures = 16
	MaxSamplers = 16
	MaxGds      = 1
)

// Kind is how a shader uses a bound resource.
type Kind uint8

const (
	KindConstant Kind = iota
	KindReadOnly
	KindReadWrite
	KindSampled
	KindStorage
	KindGdsCounter
	KindGdsMemory
)

var kindNames = [...]string{"constant", "read_only", "read_write", "sampled", "storage", "gds_counter", "gds_memory"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Origin records where a descriptor came from.
type Origin struct {
	StartRegister int  `json:"start_register"`
	Slot          int  `json:"slot"`
	Extended      bool `json:"extended"`
}

type Buffer struct {
	Desc  resource.Buffer `json:"desc"`
	Usage Kind            `json:"usage"`
	Origin
}

type Texture struct {
	Desc  resource.Texture `json:"desc"`
	Usage Kind             `json:"usage"`
	Origin
}

type Sampler struct {
	Desc resource.Sampler `json:"desc"`
	Origin
}

type Gds struct {
	Desc  resource.Gds `json:"desc"`
	Usage Kind         `json:"usage"`
	Origin
}

// ExtendedData is the indirection buffer pointer, when the shader has one.
type ExtendedData struct {
	Used bool              `json:"used"`
	Desc resource.Extended `json:"desc"`
	Origin
}

// Layout is the Vulkan-side placement of the bound resources. Binding
// indices are -1 for empty buckets.
type Layout struct {
	DescriptorSet      int    `json:"descriptor_set"`
	BufferBinding      int    `json:"buffer_binding"`
	TextureBinding     int    `json:"texture_binding"`
	SamplerBinding     int    `json:"sampler_binding"`
	GdsBinding         int    `json:"gds_binding"`
	PushConstantOffset uint32 `json:"push_constant_offset"`
	PushConstantSize   uint32 `json:"push_constant_size"`
}

// Bindings is the number of descriptor bindings the layout uses.
func (l Layout) Bindings() int {
	n := 0
	for _, b := range [...]int{l.BufferBinding, l.TextureBinding, l.SamplerBinding, l.GdsBinding} {
		if b >= 0 {
			n++
		}
	}
	return n
}

// Resources is everything one stage binds.
type Resources struct {
	Buffers  []Buffer     `json:"buffers"`
	Textures []Texture    `json:"textures"`
	Samplers []Sampler    `json:"samplers"`
	Gds      []Gds        `json:"gds"`
	Extended ExtendedData `json:"extended"`
	Layout   Layout       `json:"layout"`
}

// Empty reports whether no descriptor was bound.
func (r *Resources) Empty() bool {
	return len(r.Buffers) == 0 && len(r.Textures) == 0 && len(r.Samplers) == 0 && len(r.Gds) == 0
}

func (r *Resources) String() string {
	var sb strings.Builder
	for i, b := range r.Buffers {
		fmt.Fprintf(&sb, "  buffer[%d] %s slot=%d reg=%d ext=%v stride=%d records=%d\n",
			i, b.Usage, b.Slot, b.StartRegister, b.Extended, b.Desc.Stride(), b.Desc.NumRecords())
	}
	for i, t := range r.Textures {
		fmt.Fprintf(&sb, "  texture[%d] %s slot=%d reg=%d ext=%v %dx%d type=%d\n",
			i, t.Usage, t.Slot, t.StartRegister, t.Extended, t.Desc.Width(), t.Desc.Height(), t.Desc.Type())
	}
	for i, s := range r.Samplers {
		fmt.Fprintf(&sb, "  sampler[%d] slot=%d reg=%d ext=%v\n", i, s.Slot, s.StartRegister, s.Extended)
	}
	for i, g := range r.Gds {
		fmt.Fprintf(&sb, "  gds[%d] %s slot=%d reg=%d base=%d size=%d\n",
			i, g.Usage, g.Slot, g.StartRegister, g.Desc.Base(), g.Desc.Size())
	}
	if r.Extended.Used {
		fmt.Fprintf(&sb, "  extended slot=%d reg=%d ptr=0x%x\n", r.Extended.Slot, r.Extended.StartRegister, r.Extended.Desc.Pointer())
	}
	return sb.String()
}
