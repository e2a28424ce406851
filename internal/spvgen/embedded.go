package spvgen

import (
	"fmt"

	"gcnrecomp/internal/bind"
	"gcnrecomp/internal/gcn"
)

// EmbeddedVS returns one of the driver's built-in vertex programs. Id 0
// draws a full-screen triangle from the vertex index alone.
func EmbeddedVS(id uint32, opts Options) (string, error) {
	if id != 0 {
		return "", fmt.Errorf("%w: vs %d", ErrUnknownEmbedded, id)
	}
	g := newGen(nil, &bind.Resources{}, opts)
	g.model = "Vertex"
	return g.run(func() {
		vi := g.load("%uint", g.global("%vertex_index", "Input", "%uint", "BuiltIn VertexIndex"))
		// (-1,-1) (3,-1) (-1,3)
		x := g.val("%uint", "OpShiftLeftLogical", g.val("%uint", "OpBitwiseAnd", vi, g.u(1)), g.u(2))
		y := g.val("%uint", "OpShiftLeftLogical", g.val("%uint", "OpBitwiseAnd", vi, g.u(2)), g.u(1))
		fx := g.val("%float", "OpFSub", g.val("%float", "OpConvertUToF", x), g.f(1))
		fy := g.val("%float", "OpFSub", g.val("%float", "OpConvertUToF", y), g.f(1))
		pos := g.val("%v4float", "OpCompositeConstruct", fx, fy, g.f(0), g.f(1))
		g.emit("OpStore %s %s", g.output(gcn.TargetPos0, "%position", "BuiltIn Position"), pos)
	})
}

// EmbeddedPS returns one of the driver's built-in pixel programs. Id 0
// writes zero to the first render target.
func EmbeddedPS(id uint32, opts Options) (string, error) {
	if id != 0 {
		return "", fmt.Errorf("%w: ps %d", ErrUnknownEmbedded, id)
	}
	g := newGen(nil, &bind.Resources{}, opts)
	g.model = "Fragment"
	g.addMode("OriginUpperLeft")
	return g.run(func() {
		zero := g.val("%v4float", "OpCompositeConstruct", g.f(0), g.f(0), g.f(0), g.f(0))
		g.emit("OpStore %s %s", g.output(gcn.TargetMrt0, "%mrt0", "Location 0"), zero)
	})
}
