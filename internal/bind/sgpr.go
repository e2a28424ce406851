package bind

import (
	"fmt"
	"strings"
)

// MaxUserSgprs is the number of inline user SGPRs a stage receives.
const MaxUserSgprs = 16

// SgprType is how the command processor typed a user SGPR when it wrote it.
type SgprType uint8

const (
	SgprUnknown SgprType = iota
	SgprRegion
	SgprVsharp
)

func (t SgprType) String() string {
	switch t {
	case SgprRegion:
		return "region"
	case SgprVsharp:
		return "vsharp"
	}
	return "unknown"
}

// MarshalText lets tables round-trip through JSON register snapshots.
func (t SgprType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *SgprType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "unknown", "":
		*t = SgprUnknown
	case "region":
		*t = SgprRegion
	case "vsharp":
		*t = SgprVsharp
	default:
		return fmt.Errorf("bind: unknown sgpr type %q", b)
	}
	return nil
}

// UserSgprTable is the user SGPR state captured for one stage.
type UserSgprTable struct {
	Values [MaxUserSgprs]uint32   `json:"values"`
	Types  [MaxUserSgprs]SgprType `json:"types"`
	Count  int                    `json:"count"`
}

// Set writes n consecutive values starting at reg with one type.
func (t *UserSgprTable) Set(reg int, typ SgprType, values ...uint32) {
	for i, v := range values {
		t.Values[reg+i] = v
		t.Types[reg+i] = typ
	}
	t.Count = max(t.Count, reg+len(values))
}

// SetPointer stores a 64-bit guest address in reg and reg+1.
func (t *UserSgprTable) SetPointer(reg int, addr uint64) {
	t.Set(reg, SgprRegion, uint32(addr), uint32(addr>>32))
}

// Pointer reads the 64-bit address held in reg and reg+1.
func (t *UserSgprTable) Pointer(reg int) (uint64, error) {
	if err := t.check(reg, 2); err != nil {
		return 0, err
	}
	return uint64(t.Values[reg]) | uint64(t.Values[reg+1])<<32, nil
}

// check verifies that n registers starting at reg exist and carry a type.
func (t *UserSgprTable) check(reg, n int) error {
	if reg < 0 || reg+n > MaxUserSgprs || reg+n > t.Count {
		return fmt.Errorf("%w: s[%d:%d] with %d user sgprs", ErrRegisterRange, reg, reg+n-1, t.Count)
	}
	for i := reg; i < reg+n; i++ {
		if t.Types[i] == SgprUnknown {
			return fmt.Errorf("%w: s%d", ErrUntypedSgpr, i)
		}
	}
	return nil
}

func (t *UserSgprTable) String() string {
	var sb strings.Builder
	for i := 0; i < t.Count; i++ {
		fmt.Fprintf(&sb, "  s%-2d = 0x%08x %s\n", i, t.Values[i], t.Types[i])
	}
	return sb.String()
}
