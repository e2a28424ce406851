package spvgen

import (
	"fmt"

	"gcnrecomp/internal/bind"
	"gcnrecomp/internal/gcn"
)

// Push constant layout, in dwords: one uvec4 per buffer, two per texture,
// one per sampler, then the GDS ranges packed four to a uvec4.
func (g *gen) bufferWord(i int) uint32 { return uint32(4 * i) }

func (g *gen) textureWord(i int) uint32 { return uint32(4*len(g.res.Buffers) + 8*i) }

func (g *gen) samplerWord(i int) uint32 {
	return uint32(4*len(g.res.Buffers) + 8*len(g.res.Textures) + 4*i)
}

func (g *gen) gdsWord(i int) uint32 {
	return uint32(4*len(g.res.Buffers)+8*len(g.res.Textures)+4*len(g.res.Samplers)) + uint32(i)
}

func (g *gen) pushConstants() string {
	if g.declared["%pc"] {
		return "%pc"
	}
	l := g.res.Layout
	arr := g.declare("%pc_arr", fmt.Sprintf("OpTypeArray %%v4uint %s", g.u(l.PushConstantSize/16)))
	g.decorate(arr, "ArrayStride 16")
	st := g.declare("%PushConstants", "OpTypeStruct "+arr)
	g.decorate(st, "Block")
	line(&g.annots, "OpMemberDecorate %s 0 Offset %d", st, l.PushConstantOffset)
	return g.global("%pc", "PushConstant", st)
}

// pushWord loads dword w of the push constant block.
func (g *gen) pushWord(w uint32) string {
	p := g.val(g.ptr("PushConstant", "%uint"), "OpAccessChain", g.pushConstants(), g.u(0), g.u(w/4), g.u(w%4))
	return g.load("%uint", p)
}

// loadDescriptor copies n descriptor dwords into s[reg..].
func (g *gen) loadDescriptor(reg int, word uint32, n int) {
	for k := 0; k < n; k++ {
		g.storeReg(fmt.Sprintf("s%d", reg+k), g.pushWord(word+uint32(k)))
	}
}

// inlineDescriptors fills the user SGPRs that hold bound descriptors.
func (g *gen) inlineDescriptors() {
	if g.res == nil {
		return
	}
	for i, b := range g.res.Buffers {
		if !b.Extended {
			g.loadDescriptor(b.StartRegister, g.bufferWord(i), 4)
		}
	}
	for i, t := range g.res.Textures {
		if !t.Extended {
			g.loadDescriptor(t.StartRegister, g.textureWord(i), 8)
		}
	}
	for i, s := range g.res.Samplers {
		if !s.Extended {
			g.loadDescriptor(s.StartRegister, g.samplerWord(i), 4)
		}
	}
	for i, d := range g.res.Gds {
		if !d.Extended {
			g.loadDescriptor(d.StartRegister, g.gdsWord(i), 1)
		}
	}
}

func (g *gen) bufferBlock() string {
	rta := g.declare("%rta_uint", "OpTypeRuntimeArray %uint")
	g.decorate(rta, "ArrayStride 4")
	if !g.declared["%Buffer"] {
		g.declare("%Buffer", "OpTypeStruct "+rta)
		g.decorate("%Buffer", "Block")
		line(&g.annots, "OpMemberDecorate %%Buffer 0 Offset 0")
	}
	return "%Buffer"
}

func (g *gen) bufferArray() string {
	if g.declared["%buffers"] {
		return "%buffers"
	}
	arr := g.declare("%buffer_arr", fmt.Sprintf("OpTypeArray %s %s", g.bufferBlock(), g.u(uint32(len(g.res.Buffers)))))
	l := g.res.Layout
	return g.global("%buffers", "StorageBuffer", arr,
		fmt.Sprintf("DescriptorSet %d", l.DescriptorSet), fmt.Sprintf("Binding %d", l.BufferBinding))
}

// bufferPtr addresses dword idx of buffer i.
func (g *gen) bufferPtr(i int, idx string) string {
	return g.val(g.ptr("StorageBuffer", "%uint"), "OpAccessChain", g.bufferArray(), g.u(uint32(i)), g.u(0), idx)
}

func (g *gen) gds() string {
	if g.declared["%gds"] {
		return "%gds"
	}
	if len(g.res.Gds) == 0 {
		g.fail(fmt.Errorf("%w: gds", ErrUnboundResource))
	}
	l := g.res.Layout
	return g.global("%gds", "StorageBuffer", g.bufferBlock(),
		fmt.Sprintf("DescriptorSet %d", l.DescriptorSet), fmt.Sprintf("Binding %d", l.GdsBinding))
}

// storageImages reports whether the texture array holds storage images.
func (g *gen) storageImages() bool {
	for _, t := range g.res.Textures {
		if t.Usage == bind.KindStorage {
			return true
		}
	}
	return false
}

func (g *gen) imageType() string {
	if g.storageImages() {
		g.capability("StorageImageReadWithoutFormat")
		g.capability("StorageImageWriteWithoutFormat")
		return g.declare("%image", "OpTypeImage %float 2D 0 0 0 2 Unknown")
	}
	return g.declare("%image", "OpTypeImage %float 2D 0 0 0 1 Unknown")
}

// texture loads the image behind the T# at s[reg].
func (g *gen) texture(reg int) string {
	i, ok := g.textures[reg]
	if !ok {
		g.fail(fmt.Errorf("%w: T# at s%d", ErrUnboundResource, reg))
		return ""
	}
	img := g.imageType()
	if !g.declared["%textures"] {
		arr := g.declare("%image_arr", fmt.Sprintf("OpTypeArray %s %s", img, g.u(uint32(len(g.res.Textures)))))
		l := g.res.Layout
		g.global("%textures", "UniformConstant", arr,
			fmt.Sprintf("DescriptorSet %d", l.DescriptorSet), fmt.Sprintf("Binding %d", l.TextureBinding))
	}
	p := g.val(g.ptr("UniformConstant", img), "OpAccessChain", "%textures", g.u(uint32(i)))
	return g.load(img, p)
}

func (g *gen) sampler(reg int) string {
	i, ok := g.samplers[reg]
	if !ok {
		g.fail(fmt.Errorf("%w: S# at s%d", ErrUnboundResource, reg))
		return ""
	}
	smp := g.declare("%sampler", "OpTypeSampler")
	if !g.declared["%samplers"] {
		arr := g.declare("%sampler_arr", fmt.Sprintf("OpTypeArray %s %s", smp, g.u(uint32(len(g.res.Samplers)))))
		l := g.res.Layout
		g.global("%samplers", "UniformConstant", arr,
			fmt.Sprintf("DescriptorSet %d", l.DescriptorSet), fmt.Sprintf("Binding %d", l.SamplerBinding))
	}
	p := g.val(g.ptr("UniformConstant", smp), "OpAccessChain", "%samplers", g.u(uint32(i)))
	return g.load(smp, p)
}

// guard emits body inside a selection taken when cond holds.
func (g *gen) guard(cond string, body func()) {
	then, merge := g.label(), g.label()
	g.emit("OpSelectionMerge %s None", merge)
	g.emit("OpBranchConditional %s %s %s", cond, then, merge)
	g.emit("%s = OpLabel", then)
	body()
	g.emit("OpBranch %s", merge)
	g.emit("%s = OpLabel", merge)
}

// store runs a memory write only for active lanes.
func (g *gen) store(body func()) {
	if g.predicate {
		g.guard(g.active(), body)
		return
	}
	body()
}

// extendedLoad resolves an s_load_dwordxN through the extended user data
// pointer and records which descriptor now lives in its destination.
func (g *gen) extendedLoad(in *gcn.Instruction) {
	ext := g.res.Extended
	if !ext.Used || in.Src[0].RegisterID != ext.StartRegister || !in.Flags.Has(gcn.FlagImm) {
		g.fail(fmt.Errorf("%w: scalar load not through the extended user data pointer", ErrUnsupported))
		return
	}
	reg := bind.MaxUserSgprs + int(in.Offset)
	dst := in.Dst.RegisterID
	for i, b := range g.res.Buffers {
		if b.Extended && b.StartRegister == reg {
			g.buffers[dst] = i
			g.loadDescriptor(dst, g.bufferWord(i), min(in.Dst.Size, 4))
			return
		}
	}
	for i, t := range g.res.Textures {
		if t.Extended && t.StartRegister == reg {
			g.textures[dst] = i
			g.loadDescriptor(dst, g.textureWord(i), min(in.Dst.Size, 8))
			return
		}
	}
	for i, s := range g.res.Samplers {
		if s.Extended && s.StartRegister == reg {
			g.samplers[dst] = i
			g.loadDescriptor(dst, g.samplerWord(i), min(in.Dst.Size, 4))
			return
		}
	}
	g.fail(fmt.Errorf("%w: extended register s%d", ErrUnboundResource, reg))
}

func scalarBufferLoad(g *gen, in *gcn.Instruction) {
	i, ok := g.buffers[in.Src[0].RegisterID]
	if !ok {
		g.fail(fmt.Errorf("%w: V# at s%d", ErrUnboundResource, in.Src[0].RegisterID))
		return
	}
	var base string
	if in.Flags.Has(gcn.FlagImm) {
		base = g.u(in.Offset)
	} else {
		base = g.val("%uint", "OpShiftRightLogical", g.read(in.Src[1], 0), g.u(2))
	}
	for k := 0; k < in.Dst.Size; k++ {
		idx := base
		if k > 0 {
			idx = g.val("%uint", "OpIAdd", base, g.u(uint32(k)))
		}
		g.write(in.Dst, k, g.load("%uint", g.bufferPtr(i, idx)))
	}
}

// bufferAddress computes the byte address of a MUBUF/MTBUF access:
// index*stride + voffset + soffset + offset, with the stride taken from
// the V# at run time.
func (g *gen) bufferAddress(in *gcn.Instruction) (int, string) {
	rsrc := in.Src[1].RegisterID
	i, ok := g.buffers[rsrc]
	if !ok {
		g.fail(fmt.Errorf("%w: V# at s%d", ErrUnboundResource, rsrc))
		return 0, g.u(0)
	}
	addr := g.val("%uint", "OpIAdd", g.read(in.Src[2], 0), g.u(in.Offset))
	k := 0
	if in.Flags.Has(gcn.FlagIdxen) {
		w1 := g.read(gcn.Sgpr(rsrc+1, 1), 0)
		stride := g.val("%uint", "OpBitFieldUExtract", w1, g.u(16), g.u(14))
		addr = g.val("%uint", "OpIAdd", addr, g.val("%uint", "OpIMul", g.read(in.Src[0], 0), stride))
		k++
	}
	if in.Flags.Has(gcn.FlagOffen) {
		addr = g.val("%uint", "OpIAdd", addr, g.read(in.Src[0], k))
	}
	return i, addr
}

func dwordIndex(g *gen, addr string, k int) string {
	idx := g.val("%uint", "OpShiftRightLogical", addr, g.u(2))
	if k == 0 {
		return idx
	}
	return g.val("%uint", "OpIAdd", idx, g.u(uint32(k)))
}

func bufferLoad(g *gen, in *gcn.Instruction) {
	i, addr := g.bufferAddress(in)
	for k := 0; k < in.Dst.Size; k++ {
		g.write(in.Dst, k, g.load("%uint", g.bufferPtr(i, dwordIndex(g, addr, k))))
	}
}

// subwordLoad loads a byte or short and extends it to 32 bits.
func subwordLoad(width uint32, signed bool) emitFunc {
	return func(g *gen, in *gcn.Instruction) {
		i, addr := g.bufferAddress(in)
		w := g.load("%uint", g.bufferPtr(i, dwordIndex(g, addr, 0)))
		shift := g.val("%uint", "OpShiftLeftLogical", g.val("%uint", "OpBitwiseAnd", addr, g.u(3)), g.u(3))
		op := "OpBitFieldUExtract"
		if signed {
			op = "OpBitFieldSExtract"
		}
		g.write(in.Dst, 0, g.val("%uint", op, w, shift, g.u(width)))
	}
}

func bufferStore(g *gen, in *gcn.Instruction) {
	i, addr := g.bufferAddress(in)
	data := in.Src[3]
	vals := make([]string, data.Size)
	for k := range vals {
		vals[k] = g.read(data, k)
	}
	g.store(func() {
		for k, v := range vals {
			g.emit("OpStore %s %s", g.bufferPtr(i, dwordIndex(g, addr, k)), v)
		}
	})
}

func subwordStore(width uint32) emitFunc {
	return func(g *gen, in *gcn.Instruction) {
		i, addr := g.bufferAddress(in)
		v := g.read(in.Src[3], 0)
		g.store(func() {
			p := g.bufferPtr(i, dwordIndex(g, addr, 0))
			shift := g.val("%uint", "OpShiftLeftLogical", g.val("%uint", "OpBitwiseAnd", addr, g.u(3)), g.u(3))
			w := g.val("%uint", "OpBitFieldInsert", g.load("%uint", p), v, shift, g.u(width))
			g.emit("OpStore %s %s", p, w)
		})
	}
}

// bufferAtomic lowers a read-modify-write on a buffer dword. GLC returns
// the previous value.
func bufferAtomic(op string) emitFunc {
	return func(g *gen, in *gcn.Instruction) {
		i, addr := g.bufferAddress(in)
		v := g.read(in.Src[3], 0)
		g.store(func() {
			old := g.val("%uint", op, g.bufferPtr(i, dwordIndex(g, addr, 0)), g.u(1), g.u(0), v)
			if in.Dst.Kind == gcn.OperandVgpr {
				name, _ := regName(in.Dst, 0)
				g.storeReg(name, old)
			}
		})
	}
}

// Image operations.

func imageCoords(g *gen, op gcn.Operand, first int) string {
	return g.val("%v2float", "OpCompositeConstruct", g.readF(op, first), g.readF(op, first+1))
}

func imageIntCoords(g *gen, op gcn.Operand) string {
	x := g.bitcast("%int", g.read(op, 0))
	y := g.bitcast("%int", g.read(op, 1))
	return g.val("%v2int", "OpCompositeConstruct", x, y)
}

func (g *gen) sampledImage(in *gcn.Instruction) string {
	if g.storageImages() {
		g.fail(fmt.Errorf("%w: sampling a storage image", ErrUnsupported))
	}
	img := g.texture(in.Src[1].RegisterID)
	smp := g.sampler(in.Src[2].RegisterID)
	typ := g.declare("%simage", "OpTypeSampledImage "+g.imageType())
	return g.val(typ, "OpSampledImage", img, smp)
}

// writeTexel stores the dmask-selected components of a vec4 result.
func writeTexel(g *gen, in *gcn.Instruction, texel string) {
	mask := in.Mask
	if mask == 0 || in.Type == gcn.ImageGather4 {
		mask = 0xf
	}
	k := 0
	for c := 0; c < 4; c++ {
		if mask&(1<<c) == 0 {
			continue
		}
		v := g.val("%float", "OpCompositeExtract", texel, fmt.Sprint(c))
		g.write(in.Dst, k, g.bitcast("%uint", v))
		k++
	}
}

// explicit sampling is required outside fragment shaders.
func (g *gen) implicitLod() bool { return g.model == "Fragment" }

func imageSample(g *gen, in *gcn.Instruction) {
	si := g.sampledImage(in)
	var texel string
	switch in.Type {
	case gcn.ImageSample:
		coords := imageCoords(g, in.Src[0], 0)
		if g.implicitLod() {
			texel = g.val("%v4float", "OpImageSampleImplicitLod", si, coords)
		} else {
			texel = g.val("%v4float", "OpImageSampleExplicitLod", si, coords, "Lod", g.f(0))
		}
	case gcn.ImageSampleL:
		texel = g.val("%v4float", "OpImageSampleExplicitLod", si, imageCoords(g, in.Src[0], 0), "Lod", g.readF(in.Src[0], 2))
	case gcn.ImageSampleLz:
		texel = g.val("%v4float", "OpImageSampleExplicitLod", si, imageCoords(g, in.Src[0], 0), "Lod", g.f(0))
	case gcn.ImageSampleB:
		coords := imageCoords(g, in.Src[0], 1)
		if g.implicitLod() {
			texel = g.val("%v4float", "OpImageSampleImplicitLod", si, coords, "Bias", g.readF(in.Src[0], 0))
		} else {
			texel = g.val("%v4float", "OpImageSampleExplicitLod", si, coords, "Lod", g.f(0))
		}
	case gcn.ImageSampleC, gcn.ImageSampleCLz:
		dref := g.readF(in.Src[0], 0)
		coords := imageCoords(g, in.Src[0], 1)
		var d string
		if in.Type == gcn.ImageSampleC && g.implicitLod() {
			d = g.val("%float", "OpImageSampleDrefImplicitLod", si, coords, dref)
		} else {
			d = g.val("%float", "OpImageSampleDrefExplicitLod", si, coords, dref, "Lod", g.f(0))
		}
		texel = g.val("%v4float", "OpCompositeConstruct", d, g.f(0), g.f(0), g.f(0))
	case gcn.ImageGather4:
		comp := uint32(0)
		for c := uint32(0); c < 4; c++ {
			if in.Mask&(1<<c) != 0 {
				comp = c
				break
			}
		}
		texel = g.val("%v4float", "OpImageGather", si, imageCoords(g, in.Src[0], 0), g.u(comp))
	}
	writeTexel(g, in, texel)
}

func imageLoad(g *gen, in *gcn.Instruction) {
	img := g.texture(in.Src[1].RegisterID)
	coords := imageIntCoords(g, in.Src[0])
	var texel string
	switch {
	case g.storageImages():
		texel = g.val("%v4float", "OpImageRead", img, coords)
	case in.Type == gcn.ImageLoadMip:
		texel = g.val("%v4float", "OpImageFetch", img, coords, "Lod", g.bitcast("%int", g.read(in.Src[0], 2)))
	default:
		texel = g.val("%v4float", "OpImageFetch", img, coords, "Lod", g.declare("%i_0", "OpConstant %int 0"))
	}
	writeTexel(g, in, texel)
}

func imageStore(g *gen, in *gcn.Instruction) {
	if !g.storageImages() {
		g.fail(fmt.Errorf("%w: image store to a sampled image", ErrUnsupported))
		return
	}
	img := g.texture(in.Src[1].RegisterID)
	coords := imageIntCoords(g, in.Src[0])
	comps := make([]string, 4)
	k := 0
	for c := range comps {
		if in.Mask&(1<<c) != 0 && k < in.Src[3].Size {
			comps[c] = g.bitcast("%float", g.read(in.Src[3], k))
			k++
		} else {
			comps[c] = g.f(0)
		}
	}
	texel := g.val("%v4float", "OpCompositeConstruct", comps...)
	g.store(func() { g.emit("OpImageWrite %s %s %s", img, coords, texel) })
}

func imageResinfo(g *gen, in *gcn.Instruction) {
	g.capability("ImageQuery")
	img := g.texture(in.Src[1].RegisterID)
	var size string
	if g.storageImages() {
		size = g.val("%v2int", "OpImageQuerySize", img)
	} else {
		size = g.val("%v2int", "OpImageQuerySizeLod", img, g.bitcast("%int", g.read(in.Src[0], 0)))
	}
	vals := [4]string{
		g.bitcast("%uint", g.val("%int", "OpCompositeExtract", size, "0")),
		g.bitcast("%uint", g.val("%int", "OpCompositeExtract", size, "1")),
		g.u(1),
		g.u(1),
	}
	if !g.storageImages() {
		vals[3] = g.bitcast("%uint", g.val("%int", "OpImageQueryLevels", img))
	}
	mask := in.Mask
	if mask == 0 {
		mask = 0xf
	}
	k := 0
	for c := 0; c < 4; c++ {
		if mask&(1<<c) != 0 {
			g.write(in.Dst, k, vals[c])
			k++
		}
	}
}

// LDS and GDS.

func (g *gen) ldsVar() string {
	if g.lds != "" {
		return g.lds
	}
	if g.model != "GLCompute" {
		g.fail(fmt.Errorf("%w: LDS outside a compute shader", ErrUnsupported))
	}
	words := g.ldsSize * ldsGranule
	if words == 0 {
		words = 8192
	}
	arr := g.declare("%lds_arr", fmt.Sprintf("OpTypeArray %%uint %s", g.u(words)))
	g.lds = g.global("%lds", "Workgroup", arr)
	return g.lds
}

// ldsGranule is the LDS_SIZE allocation unit in dwords.
const ldsGranule = 128

// dsPtr addresses the dword at a byte address in LDS, or in GDS when the
// instruction sets the gds bit.
func (g *gen) dsPtr(in *gcn.Instruction, addr string) string {
	idx := g.val("%uint", "OpShiftRightLogical", addr, g.u(2))
	if in.Flags.Has(gcn.FlagGds) {
		return g.val(g.ptr("StorageBuffer", "%uint"), "OpAccessChain", g.gds(), g.u(0), idx)
	}
	return g.val(g.ptr("Workgroup", "%uint"), "OpAccessChain", g.ldsVar(), idx)
}

func (g *gen) dsScope(in *gcn.Instruction) uint32 {
	if in.Flags.Has(gcn.FlagGds) {
		return 1
	}
	return 2
}

func dsAddr(g *gen, in *gcn.Instruction, offset uint32) string {
	return g.val("%uint", "OpIAdd", g.read(in.Src[0], 0), g.u(offset))
}

func dsRead(g *gen, in *gcn.Instruction) {
	switch in.Type {
	case gcn.DsRead2B32:
		a0 := dsAddr(g, in, in.Offset*4)
		a1 := dsAddr(g, in, in.Offset1*4)
		v0 := g.load("%uint", g.dsPtr(in, a0))
		v1 := g.load("%uint", g.dsPtr(in, a1))
		g.write(in.Dst, 0, v0)
		g.write(in.Dst, 1, v1)
	default:
		for k := 0; k < in.Dst.Size; k++ {
			g.write(in.Dst, k, g.load("%uint", g.dsPtr(in, dsAddr(g, in, in.Offset+uint32(4*k)))))
		}
	}
}

func dsWrite(g *gen, in *gcn.Instruction) {
	type st struct{ addr, v string }
	var writes []st
	switch in.Type {
	case gcn.DsWrite2B32:
		writes = []st{
			{dsAddr(g, in, in.Offset*4), g.read(in.Src[1], 0)},
			{dsAddr(g, in, in.Offset1*4), g.read(in.Src[2], 0)},
		}
	default:
		for k := 0; k < in.Src[1].Size; k++ {
			writes = append(writes, st{dsAddr(g, in, in.Offset+uint32(4*k)), g.read(in.Src[1], k)})
		}
	}
	g.store(func() {
		for _, w := range writes {
			g.emit("OpStore %s %s", g.dsPtr(in, w.addr), w.v)
		}
	})
}

func dsAtomic(op string) emitFunc {
	return func(g *gen, in *gcn.Instruction) {
		addr := dsAddr(g, in, in.Offset)
		v := g.read(in.Src[1], 0)
		g.atomicAt(op, in, addr, v)
	}
}

// atomicAt runs a DS atomic for active lanes and writes the old value to
// the destination when there is one.
func (g *gen) atomicAt(op string, in *gcn.Instruction, addr, v string) {
	run := func() {
		old := g.val("%uint", op, g.dsPtr(in, addr), g.u(g.dsScope(in)), g.u(0), v)
		if in.Dst.Kind == gcn.OperandVgpr {
			name, _ := regName(in.Dst, 0)
			g.storeReg(name, old)
		}
	}
	g.store(run)
}

// dsCounter lowers ds_append and ds_consume; the counter address is
// M0[15:0] plus the instruction offset.
func dsCounter(op string) emitFunc {
	return func(g *gen, in *gcn.Instruction) {
		base := g.val("%uint", "OpBitwiseAnd", g.loadReg("m0"), g.u(0xffff))
		addr := g.val("%uint", "OpIAdd", base, g.u(in.Offset))
		g.atomicAt(op, in, addr, g.u(1))
	}
}

// Exports.

func (g *gen) output(target uint8, name string, decorations ...string) string {
	if v, ok := g.outputs[target]; ok {
		return v
	}
	typ := "%v4float"
	if target == gcn.TargetMrtZ {
		typ = "%float"
	}
	v := g.global(name, "Output", typ, decorations...)
	g.outputs[target] = v
	return v
}

func export(g *gen, in *gcn.Instruction) {
	t := in.Target
	var comps [4]string
	if in.Flags.Has(gcn.FlagCompr) {
		lo := g.ext("%v2float", "UnpackHalf2x16", g.read(in.Src[0], 0))
		hi := g.ext("%v2float", "UnpackHalf2x16", g.read(in.Src[1], 0))
		for c := 0; c < 4; c++ {
			src := lo
			if c >= 2 {
				src = hi
			}
			comps[c] = g.val("%float", "OpCompositeExtract", src, fmt.Sprint(c%2))
		}
	} else {
		for c := 0; c < 4; c++ {
			comps[c] = g.bitcast("%float", g.read(in.Src[c], 0))
		}
	}
	for c := range comps {
		if in.Mask&(1<<c) == 0 {
			comps[c] = g.f(0)
		}
	}
	vec := func() string { return g.val("%v4float", "OpCompositeConstruct", comps[:]...) }

	switch {
	case t == gcn.TargetNull:
	case t < gcn.TargetMrtZ:
		v := g.output(t, fmt.Sprintf("%%mrt%d", t), fmt.Sprintf("Location %d", t))
		g.emit("OpStore %s %s", v, vec())
	case t == gcn.TargetMrtZ:
		v := g.output(t, "%frag_depth", "BuiltIn FragDepth")
		g.addMode("DepthReplacing")
		g.emit("OpStore %s %s", v, comps[0])
	case t == gcn.TargetPos0:
		v := g.output(t, "%position", "BuiltIn Position")
		g.emit("OpStore %s %s", v, vec())
	case t > gcn.TargetPos0 && t < gcn.TargetParam0:
		// Point size and clip distances are not forwarded.
	default:
		n := t - gcn.TargetParam0
		v := g.output(t, fmt.Sprintf("%%param%d", n), fmt.Sprintf("Location %d", n))
		g.emit("OpStore %s %s", v, vec())
	}
}

func (g *gen) addMode(m string) {
	for _, have := range g.modes {
		if have == m {
			return
		}
	}
	g.modes = append(g.modes, m)
}

// Interpolation.

func (g *gen) input(attr uint8) string {
	name := fmt.Sprintf("%%in%d", attr)
	if g.declared[name] {
		return name
	}
	decs := []string{fmt.Sprintf("Location %d", attr)}
	if int(attr) < len(g.flat) && g.flat[attr] {
		decs = append(decs, "Flat")
	}
	return g.global(name, "Input", "%v4float", decs...)
}

func interp(g *gen, in *gcn.Instruction) {
	if int(in.Attr) >= len(g.flat) {
		g.fail(fmt.Errorf("%w: attribute %d not interpolated", ErrUnsupported, in.Attr))
		return
	}
	p := g.val(g.ptr("Input", "%float"), "OpAccessChain", g.input(in.Attr), g.u(uint32(in.Chan)))
	g.writeF(in.Dst, g.load("%float", p))
}

func init() {
	register(func(g *gen, in *gcn.Instruction) { g.extendedLoad(in) },
		gcn.SLoadDword, gcn.SLoadDwordx2, gcn.SLoadDwordx4, gcn.SLoadDwordx8, gcn.SLoadDwordx16)
	register(scalarBufferLoad, gcn.SBufferLoadDword, gcn.SBufferLoadDwordx2, gcn.SBufferLoadDwordx4,
		gcn.SBufferLoadDwordx8, gcn.SBufferLoadDwordx16)

	register(bufferLoad, gcn.BufferLoadDword, gcn.BufferLoadDwordx2, gcn.BufferLoadDwordx3, gcn.BufferLoadDwordx4,
		gcn.BufferLoadFormatX, gcn.BufferLoadFormatXy, gcn.BufferLoadFormatXyz, gcn.BufferLoadFormatXyzw,
		gcn.TbufferLoadFormatX, gcn.TbufferLoadFormatXy, gcn.TbufferLoadFormatXyz, gcn.TbufferLoadFormatXyzw)
	register(subwordLoad(8, false), gcn.BufferLoadUbyte)
	register(subwordLoad(8, true), gcn.BufferLoadSbyte)
	register(subwordLoad(16, false), gcn.BufferLoadUshort)
	register(subwordLoad(16, true), gcn.BufferLoadSshort)
	register(bufferStore, gcn.BufferStoreDword, gcn.BufferStoreDwordx2, gcn.BufferStoreDwordx3, gcn.BufferStoreDwordx4,
		gcn.BufferStoreFormatX, gcn.BufferStoreFormatXy, gcn.BufferStoreFormatXyz, gcn.BufferStoreFormatXyzw,
		gcn.TbufferStoreFormatX, gcn.TbufferStoreFormatXy, gcn.TbufferStoreFormatXyz, gcn.TbufferStoreFormatXyzw)
	register(subwordStore(8), gcn.BufferStoreByte)
	register(subwordStore(16), gcn.BufferStoreShort)
	for t, op := range map[gcn.InstructionType]string{
		gcn.BufferAtomicSwap: "OpAtomicExchange",
		gcn.BufferAtomicAdd:  "OpAtomicIAdd",
		gcn.BufferAtomicSub:  "OpAtomicISub",
		gcn.BufferAtomicSmin: "OpAtomicSMin",
		gcn.BufferAtomicUmin: "OpAtomicUMin",
		gcn.BufferAtomicSmax: "OpAtomicSMax",
		gcn.BufferAtomicUmax: "OpAtomicUMax",
		gcn.BufferAtomicAnd:  "OpAtomicAnd",
		gcn.BufferAtomicOr:   "OpAtomicOr",
		gcn.BufferAtomicXor:  "OpAtomicXor",
	} {
		register(bufferAtomic(op), t)
	}

	register(imageSample, gcn.ImageSample, gcn.ImageSampleL, gcn.ImageSampleB, gcn.ImageSampleLz,
		gcn.ImageSampleC, gcn.ImageSampleCLz, gcn.ImageGather4)
	register(imageLoad, gcn.ImageLoad, gcn.ImageLoadMip)
	register(imageStore, gcn.ImageStore, gcn.ImageStoreMip)
	register(imageResinfo, gcn.ImageGetResinfo)

	register(dsRead, gcn.DsReadB32, gcn.DsReadB64, gcn.DsRead2B32)
	register(dsWrite, gcn.DsWriteB32, gcn.DsWriteB64, gcn.DsWrite2B32)
	register(dsAtomic("OpAtomicIAdd"), gcn.DsAddU32, gcn.DsAddRtnU32)
	register(dsAtomic("OpAtomicISub"), gcn.DsSubU32)
	register(dsCounter("OpAtomicIAdd"), gcn.DsAppend)
	register(dsCounter("OpAtomicISub"), gcn.DsConsume)
	// One lane per invocation: every swizzle pattern reads this lane.
	register(func(g *gen, in *gcn.Instruction) { g.write(in.Dst, 0, g.read(in.Src[0], 0)) }, gcn.DsSwizzleB32)

	register(export, gcn.Exp)
	register(interp, gcn.VInterpP1F32, gcn.VInterpP2F32, gcn.VInterpMovF32)
}
