// Package debug holds the per-shader controls used to bisect translation
// problems: disabling a shader outright and attaching debug printfs to it.
package debug

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"gcnrecomp/internal/gcn"
	"gcnrecomp/internal/shaderbin"
)

var ErrBadKey = errors.New("debug: malformed shader key")

// Key identifies a shader binary by its header hash and CRC.
type Key struct {
	Hash0 uint32 `json:"hash0"`
	Crc32 uint32 `json:"crc32"`
}

// KeyOf returns the key of a binary header.
func KeyOf(h shaderbin.Info) Key { return Key{Hash0: h.Hash0, Crc32: h.Crc32} }

func (k Key) String() string { return fmt.Sprintf("%08x:%08x", k.Hash0, k.Crc32) }

// ParseKey parses the "hash0:crc32" form produced by Key.String.
func ParseKey(s string) (Key, error) {
	hs, cs, ok := strings.Cut(s, ":")
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrBadKey, s)
	}
	h, err := strconv.ParseUint(strings.TrimPrefix(hs, "0x"), 16, 32)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrBadKey, s)
	}
	c, err := strconv.ParseUint(strings.TrimPrefix(cs, "0x"), 16, 32)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrBadKey, s)
	}
	return Key{Hash0: uint32(h), Crc32: uint32(c)}, nil
}

func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.Hash0, b.Hash0); c != 0 {
		return c
	}
	return cmp.Compare(a.Crc32, b.Crc32)
}

// Registry is safe for concurrent use. The zero value is not usable; call
// NewRegistry.
type Registry struct {
	mu       sync.Mutex
	disabled map[Key]bool
	printfs  map[Key][]gcn.DebugPrintf
}

func NewRegistry() *Registry {
	return &Registry{
		disabled: make(map[Key]bool),
		printfs:  make(map[Key][]gcn.DebugPrintf),
	}
}

// Disable marks the shader so translators skip it.
func (r *Registry) Disable(k Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disabled[k] = true
}

func (r *Registry) Enable(k Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.disabled, k)
}

func (r *Registry) IsDisabled(k Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disabled[k]
}

// Disabled returns the disabled keys in ascending order.
func (r *Registry) Disabled() []Key {
	r.mu.Lock()
	keys := make([]Key, 0, len(r.disabled))
	for k := range r.disabled {
		keys = append(keys, k)
	}
	r.mu.Unlock()
	slices.SortFunc(keys, compareKeys)
	return keys
}

// InjectDebugPrintf queues p for every later decode of the shader.
func (r *Registry) InjectDebugPrintf(k Key, p gcn.DebugPrintf) {
	p.Types = slices.Clone(p.Types)
	p.Args = slices.Clone(p.Args)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.printfs[k] = append(r.printfs[k], p)
}

// Printfs returns a copy of the requests queued for the shader, in
// insertion order.
func (r *Registry) Printfs(k Key) []gcn.DebugPrintf {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.printfs[k])
}

// ClearPrintfs drops every request queued for the shader.
func (r *Registry) ClearPrintfs(k Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.printfs, k)
}

// Apply attaches the queued requests for k to code.
func (r *Registry) Apply(k Key, code *gcn.Code) {
	for _, p := range r.Printfs(k) {
		code.InjectDebugPrintf(p)
	}
}
