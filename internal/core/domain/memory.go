package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Memory sizes in bytes.
const (
	KiB int64 = 1 << (10 * (iota + 1))
	MiB
	GiB
	TiB
)

// MemoryGranularity is the scheduler's minimum memory resolution.
// Scaled memory requests are rounded up to this unit.
const MemoryGranularity = MiB

// Memory is a memory allocation or measurement in bytes.
// The zero value means "not reported".
type Memory int64

var memoryRegexp = regexp.MustCompile(`^(\d+(?:\.\d+)?)([KkMmGgTt]?)$`)

var memoryUnits = map[string]int64{
	"":  1,
	"k": KiB,
	"m": MiB,
	"g": GiB,
	"t": TiB,
}

// ParseMemory parses a scheduler memory string such as "4000M", "16G" or
// "15.8G" into a byte count. Unit suffixes are binary.
func ParseMemory(s string) (Memory, error) {
	m := memoryRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, zerr.With(ErrInvalidMemory, "memory", s)
	}

	size, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, zerr.With(ErrInvalidMemory, "memory", s)
	}

	unit := memoryUnits[strings.ToLower(m[2])]
	return Memory(math.Round(size * float64(unit))), nil
}

// Scale multiplies the memory by m and rounds the result up to the
// scheduler granularity. An exact product is returned unchanged, so a
// multiplier of 1.0 is the identity.
func (mem Memory) Scale(m float64) Memory {
	scaled := Memory(math.Ceil(float64(mem) * m))
	if scaled == mem {
		return mem
	}
	rounded := (scaled / Memory(MemoryGranularity)) * Memory(MemoryGranularity)
	if rounded < scaled {
		rounded += Memory(MemoryGranularity)
	}
	return rounded
}

// Bytes returns the raw byte count.
func (mem Memory) Bytes() int64 {
	return int64(mem)
}

// String renders the memory in the largest unit that keeps the value at or
// above one, with a single decimal when it is not whole. The zero value
// renders as "n/a".
func (mem Memory) String() string {
	if mem == 0 {
		return "n/a"
	}

	value := float64(mem)
	for _, u := range []struct {
		size   int64
		suffix string
	}{
		{TiB, "T"},
		{GiB, "G"},
		{MiB, "M"},
		{KiB, "K"},
	} {
		if mem >= Memory(u.size) {
			v := value / float64(u.size)
			if v == math.Trunc(v) {
				return fmt.Sprintf("%.0f%s", v, u.suffix)
			}
			return fmt.Sprintf("%.1f%s", v, u.suffix)
		}
	}
	return fmt.Sprintf("%dB", int64(mem))
}
