package bind

import (
	"errors"
	"fmt"

	"gcnrecomp/internal/guest"
	"gcnrecomp/internal/resource"
	"gcnrecomp/internal/shaderbin"
)

var (
	ErrRegisterRange   = errors.New("bind: user sgpr range out of bounds")
	ErrUntypedSgpr     = errors.New("bind: user sgpr not typed as region or vsharp")
	ErrNoExtended      = errors.New("bind: extended register without extended user data")
	ErrTooMany         = errors.New("bind: too many resources")
	ErrUnsupportedSlot = errors.New("bind: usage slot type not bindable")
	ErrAlignment       = errors.New("bind: push constants not 16-byte aligned")
)

// Error wraps a binding failure with the state needed to diagnose it.
type Error struct {
	Slot  shaderbin.UsageSlot
	Err   error
	Table string
	Bound string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (%s)", e.Err, e.Slot)
}

func (e *Error) Unwrap() error { return e.Err }

// Report renders the error with the user sgpr table and what was bound
// before the failure.
func (e *Error) Report() string {
	return fmt.Sprintf("%s\nuser sgprs:\n%sbound:\n%s", e.Error(), e.Table, e.Bound)
}

// Binder reads descriptors either from the inline user SGPRs or, for
// registers >= 16, from the extended user data buffer in guest memory.
type Binder struct {
	Table *UserSgprTable
	Mem   guest.Memory
	Res   *Resources
}

// NewBinder returns a binder that appends into a fresh Resources.
func NewBinder(table *UserSgprTable, mem guest.Memory) *Binder {
	return &Binder{Table: table, Mem: mem, Res: &Resources{}}
}

// read returns n descriptor words for a start register.
func (b *Binder) read(startRegister, n int) ([]uint32, bool, error) {
	if startRegister >= MaxUserSgprs {
		if !b.Res.Extended.Used {
			return nil, false, fmt.Errorf("%w: s%d", ErrNoExtended, startRegister)
		}
		if b.Mem == nil {
			return nil, false, fmt.Errorf("%w: no guest memory", ErrNoExtended)
		}
		addr := b.Res.Extended.Desc.Pointer() + uint64(startRegister-MaxUserSgprs)*4
		words, err := guest.ReadWords(b.Mem, addr, n)
		if err != nil {
			return nil, false, fmt.Errorf("bind: extended user data: %w", err)
		}
		return words, true, nil
	}
	if err := b.Table.check(startRegister, n); err != nil {
		return nil, false, err
	}
	out := make([]uint32, n)
	copy(out, b.Table.Values[startRegister:startRegister+n])
	return out, false, nil
}

// BindExtended resolves the extended user data pointer. It must run before
// any descriptor at register 16 or above is bound.
func (b *Binder) BindExtended(startRegister, slot int) error {
	if startRegister >= MaxUserSgprs {
		return fmt.Errorf("%w: extended pointer at s%d", ErrRegisterRange, startRegister)
	}
	if err := b.Table.check(startRegister, 2); err != nil {
		return err
	}
	b.Res.Extended = ExtendedData{
		Used:   true,
		Desc:   resource.Extended{b.Table.Values[startRegister], b.Table.Values[startRegister+1]},
		Origin: Origin{StartRegister: startRegister, Slot: slot},
	}
	return nil
}

func (b *Binder) BindStorageBuffer(startRegister, slot int, usage Kind) error {
	if len(b.Res.Buffers) >= MaxBuffers {
		return fmt.Errorf("%w: %d buffers", ErrTooMany, len(b.Res.Buffers))
	}
	w, ext, err := b.read(startRegister, 4)
	if err != nil {
		return err
	}
	b.Res.Buffers = append(b.Res.Buffers, Buffer{
		Desc:   resource.Buffer(w),
		Usage:  usage,
		Origin: Origin{StartRegister: startRegister, Slot: slot, Extended: ext},
	})
	return nil
}

func (b *Binder) BindTexture(startRegister, slot int, usage Kind) error {
	if len(b.Res.Textures) >= MaxTextures {
		return fmt.Errorf("%w: %d textures", ErrTooMany, len(b.Res.Textures))
	}
	w, ext, err := b.read(startRegister, 8)
	if err != nil {
		return err
	}
	b.Res.Textures = append(b.Res.Textures, Texture{
		Desc:   resource.Texture(w),
		Usage:  usage,
		Origin: Origin{StartRegister: startRegister, Slot: slot, Extended: ext},
	})
	return nil
}

func (b *Binder) BindSampler(startRegister, slot int) error {
	if len(b.Res.Samplers) >= MaxSamplers {
		return fmt.Errorf("%w: %d samplers", ErrTooMany, len(b.Res.Samplers))
	}
	w, ext, err := b.read(startRegister, 4)
	if err != nil {
		return err
	}
	b.Res.Samplers = append(b.Res.Samplers, Sampler{
		Desc:   resource.Sampler(w),
		Origin: Origin{StartRegister: startRegister, Slot: slot, Extended: ext},
	})
	return nil
}

func (b *Binder) BindGds(startRegister, slot int, usage Kind) error {
	if len(b.Res.Gds) >= MaxGds {
		return fmt.Errorf("%w: %d gds pointers", ErrTooMany, len(b.Res.Gds))
	}
	w, ext, err := b.read(startRegister, 1)
	if err != nil {
		return err
	}
	b.Res.Gds = append(b.Res.Gds, Gds{
		Desc:   resource.Gds(w[0]),
		Usage:  usage,
		Origin: Origin{StartRegister: startRegister, Slot: slot, Extended: ext},
	})
	return nil
}

// Stage-owned slot types are consumed by the input-info builders and
// skipped here.
var stageSlots = map[shaderbin.UsageType]bool{
	shaderbin.SubPtrFetchShader:    true,
	shaderbin.PtrVertexBufferTable: true,
}

// Bind walks the usage slots and binds every resource they declare. The
// extended user data pointer is resolved first so slot order does not
// matter.
func Bind(slots []shaderbin.UsageSlot, table *UserSgprTable, mem guest.Memory) (*Resources, error) {
	b := NewBinder(table, mem)
	for _, s := range slots {
		if s.Type != shaderbin.PtrExtendedUserData {
			continue
		}
		if err := b.BindExtended(int(s.StartRegister), int(s.Slot)); err != nil {
			return nil, b.wrap(s, err)
		}
	}
	for _, s := range slots {
		if err := b.bindSlot(s); err != nil {
			return nil, b.wrap(s, err)
		}
	}
	return b.Res, nil
}

func (b *Binder) bindSlot(s shaderbin.UsageSlot) error {
	reg, slot := int(s.StartRegister), int(s.Slot)
	wide := s.RegisterCount() == 8
	switch s.Type {
	case shaderbin.PtrExtendedUserData:
		return nil
	case shaderbin.ImmConstBuffer:
		return b.BindStorageBuffer(reg, slot, KindConstant)
	case shaderbin.ImmResource:
		if wide {
			return b.BindTexture(reg, slot, KindSampled)
		}
		return b.BindStorageBuffer(reg, slot, KindReadOnly)
	case shaderbin.ImmRwResource:
		if wide {
			return b.BindTexture(reg, slot, KindStorage)
		}
		return b.BindStorageBuffer(reg, slot, KindReadWrite)
	case shaderbin.ImmSampler:
		return b.BindSampler(reg, slot)
	case shaderbin.ImmGdsCounterRange:
		return b.BindGds(reg, slot, KindGdsCounter)
	case shaderbin.ImmGdsMemoryRange:
		return b.BindGds(reg, slot, KindGdsMemory)
	}
	if stageSlots[s.Type] {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedSlot, s.Type)
}

func (b *Binder) wrap(s shaderbin.UsageSlot, err error) error {
	return &Error{Slot: s, Err: err, Table: b.Table.String(), Bound: b.Res.String()}
}

// ComputeLayout assigns binding indices to the non-empty buckets in the
// fixed order buffers, textures, samplers, gds and sizes the push-constant
// block that carries the raw descriptors. DescriptorSet and
// PushConstantOffset are left to the caller.
func ComputeLayout(r *Resources) error {
	next := 0
	assign := func(n int) int {
		if n == 0 {
			return -1
		}
		next++
		return next - 1
	}
	r.Layout.BufferBinding = assign(len(r.Buffers))
	r.Layout.TextureBinding = assign(len(r.Textures))
	r.Layout.SamplerBinding = assign(len(r.Samplers))
	r.Layout.GdsBinding = assign(len(r.Gds))

	size := len(r.Buffers)*16 + len(r.Textures)*32 + len(r.Samplers)*16 + (len(r.Gds)+3)/4*16
	r.Layout.PushConstantSize = uint32(size)
	return CheckAlignment(r.Layout)
}

// CheckAlignment requires the push-constant range to start and end on a
// 16-byte boundary.
func CheckAlignment(l Layout) error {
	if l.PushConstantSize%16 != 0 || l.PushConstantOffset%16 != 0 {
		return fmt.Errorf("%w: offset %d size %d", ErrAlignment, l.PushConstantOffset, l.PushConstantSize)
	}
	return nil
}
