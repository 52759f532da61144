package status

import (
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Scene metric keys
const (
	KeyFrames       = "scene.frames"
	KeyFPS          = "scene.fps"
	KeyPaused       = "scene.paused"
	KeyAnimation    = "anim.state"
	KeyFadeOps      = "anim.fades"
	KeyAttached     = "camera.attached"
	KeyAnimating    = "camera.animating"
	KeyFOV          = "camera.fov"
	KeyImpulses     = "physics.impulses"
	KeyPropSleeping = "physics.prop_sleeping"
	KeySelected     = "decor.selected"
	KeyLoaded       = "asset.loaded"
	KeyLoadFailures = "asset.failures"
)

// Map is a lazily populated set of named metrics of one kind
// Callers cache the returned pointers; only registration locks
type Map[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMap[T any]() *Map[T] {
	return &Map[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, creating it on first use
func (m *Map[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Has reports whether key was registered
func (m *Map[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[key]
	return ok
}

// Len returns the number of registered metrics
func (m *Map[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *Map[T]) each(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for k, v := range m.items {
		fn(k, v)
	}
}

// Registry groups scene metrics by kind
// Written by the frame loop, read by the HUD and the periodic stats logger
type Registry struct {
	Bools   *Map[atomic.Bool]
	Ints    *Map[atomic.Int64]
	Floats  *Map[Float]
	Strings *Map[String]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   newMap[atomic.Bool](),
		Ints:    newMap[atomic.Int64](),
		Floats:  newMap[Float](),
		Strings: newMap[String](),
	}
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Snapshot returns every metric formatted, sorted by key
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, r.Bools.Len()+r.Ints.Len()+r.Floats.Len()+r.Strings.Len())
	r.Bools.each(func(k string, v *atomic.Bool) {
		out = append(out, Entry{k, strconv.FormatBool(v.Load())})
	})
	r.Ints.each(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.each(func(k string, v *Float) {
		out = append(out, Entry{k, strconv.FormatFloat(v.Load(), 'f', 2, 64)})
	})
	r.Strings.each(func(k string, v *String) {
		out = append(out, Entry{k, v.Load()})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Fields returns the snapshot as structured log fields
func (r *Registry) Fields() []zap.Field {
	snap := r.Snapshot()
	fields := make([]zap.Field, len(snap))
	for i, e := range snap {
		fields[i] = zap.String(e.Key, e.Value)
	}
	return fields
}
