package render

// Theme holds colors for CFG rendering.
type Theme struct {
	Background string
	NodeFill   string
	NodeBorder string
	TextColor  string

	// Edge colors by branch outcome.
	EdgeTaken       string // s_cbranch_* taken
	EdgeFallthrough string // s_cbranch_* not taken
	EdgeDirect      string // s_branch and straight-line flow

	// Node accents.
	EntryBorder string // block at pc 0
	TermFill    string // blocks ending in s_endpgm or s_setpc_b64
	PrintfText  string // attached debug printf lines
}

// NASA is the NASA/Bauhaus theme: geometric, monochrome, sparse color.
var NASA = Theme{
	Background: "#F5F5F5",
	NodeFill:   "white",
	NodeBorder: "#1A1A1A",
	TextColor:  "#1A1A1A",

	EdgeTaken:       "#0B3D91", // NASA blue
	EdgeFallthrough: "#FC3D21", // NASA red
	EdgeDirect:      "#424242", // dark gray

	EntryBorder: "#0B3D91",
	TermFill:    "#ECEFF1", // blue-gray 50
	PrintfText:  "#00695C", // teal
}
