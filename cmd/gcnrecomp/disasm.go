package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	lrender "github.com/zboralski/lattice/render"

	"gcnrecomp/internal/flowgraph"
	"gcnrecomp/internal/gcn"
	"gcnrecomp/internal/render"
)

func cmdDisasm(args []string) error {
	fs := flag.NewFlagSet("disasm", flag.ExitOnError)
	mf := addMemFlags(fs)
	of := addOptFlags(fs)
	addr := fs.String("addr", "", "program address")
	typ := fs.String("type", "vs", "shader type: vs, ps, cs or fs")
	fetch := fs.String("fetch", "", "fetch program address, adds it to the call graph")
	outDir := fs.String("out", "", "write CFG and call graph DOT files here")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *addr == "" {
		return fmt.Errorf("--addr is required")
	}
	a, err := parseAddr(*addr)
	if err != nil {
		return fmt.Errorf("--addr: %w", err)
	}
	t, err := parseShaderType(*typ)
	if err != nil {
		return err
	}

	tr, closer, err := translatorFor(mf, of)
	if err != nil {
		return err
	}
	defer closer.Close()

	code, err := tr.Parse(a, t)
	if err != nil {
		return err
	}
	fmt.Print(tr.DumpInstructions(code))

	if *outDir == "" {
		return nil
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return fmt.Errorf("mkdir out: %w", err)
	}

	name := fmt.Sprintf("%s_%x", t, a)
	prog := flowgraph.Program{Name: name, Code: code}
	write := func(file, dot string) error {
		path := filepath.Join(*outDir, file)
		if err := os.WriteFile(path, []byte(dot), 0644); err != nil {
			return fmt.Errorf("write %s: %w", file, err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
		return nil
	}

	if err := write(name+".cfg.dot", render.CFGDOT(gcn.BuildCFG(code), name, render.NASA)); err != nil {
		return err
	}
	progs := []flowgraph.Program{prog}

	var fp *flowgraph.Program
	if *fetch != "" {
		fa, err := parseAddr(*fetch)
		if err != nil {
			return fmt.Errorf("--fetch: %w", err)
		}
		fcode, err := tr.Parse(fa, gcn.TypeFetch)
		if err != nil {
			return err
		}
		fp = &flowgraph.Program{Name: fmt.Sprintf("fs_%x", fa), Code: fcode}
		progs = append(progs, *fp)
	}

	cg := flowgraph.BuildCFG(progs)
	if err := write(name+".lattice.dot", lrender.DOTCFG(cg, name)); err != nil {
		return err
	}
	calls := flowgraph.CallGraph(prog, fp)
	if len(calls.Edges) == 0 {
		return nil
	}
	return write("callgraph.dot", lrender.DOT(calls, "callgraph"))
}
