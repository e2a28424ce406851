package flowgraph

import (
	"github.com/zboralski/lattice"

	"gcnrecomp/internal/gcn"
)

// CallGraph links main to fetch when main calls its fetch subroutine.
// fetch may be nil for programs without one.
func CallGraph(main Program, fetch *Program) *lattice.Graph {
	g := &lattice.Graph{}
	g.Nodes = append(g.Nodes, main.Name)
	if fetch != nil {
		g.Nodes = append(g.Nodes, fetch.Name)
	}
	for _, in := range main.Code.Instructions {
		if in.Type != gcn.SSwappcB64 {
			continue
		}
		callee := FetchCallee
		if fetch != nil {
			callee = fetch.Name
		}
		g.Edges = append(g.Edges, lattice.Edge{Caller: main.Name, Callee: callee})
	}
	g.Dedup()
	return g
}
