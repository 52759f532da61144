package status

import (
	"math"
	"sync/atomic"
)

// Float is an atomically updated float64, zero value reads 0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *Float) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// MaxStringLen bounds stored strings so status lines stay short
const MaxStringLen = 32

// String is an atomically swapped string, zero value reads ""
type String struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncated to MaxStringLen bytes
func (s *String) Store(v string) {
	if len(v) > MaxStringLen {
		v = v[:MaxStringLen]
	}
	s.ptr.Store(&v)
}

func (s *String) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
