package bo4e

import (
	"sort"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

// The type registry maps type names (both conventions) to factories.
// Catalog packages register their types at init time; the registry is
// effectively immutable afterwards and safe for concurrent reads.
var registry = struct {
	mu        sync.RWMutex
	factories map[string]func() Object
	german    []string
}{factories: map[string]func() Object{}}

// Register adds a catalog type, keyed by both its German and English
// type names. Registering the same name twice keeps the first entry and
// logs a warning.
func Register(factory func() Object) {
	name := factory().TypeName()
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, dup := registry.factories[name.German]; dup {
		logger.Warn("duplicate type registration", "type", name.German)
		return
	}
	registry.factories[name.German] = factory
	registry.german = append(registry.german, name.German)
	if name.English != name.German {
		registry.factories[name.English] = factory
	}
}

// NewByType returns a fresh instance of the registered type with the
// given name, in either convention.
func NewByType(name string) (Object, bool) {
	registry.mu.RLock()
	factory, ok := registry.factories[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// RegisteredTypes returns a fresh instance of every registered type,
// sorted by German type name.
func RegisteredTypes() []Object {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, len(registry.german))
	copy(names, registry.german)
	sort.Strings(names)
	out := make([]Object, 0, len(names))
	for _, n := range names {
		out = append(out, registry.factories[n]())
	}
	return out
}

// UnmarshalAny decodes a document whose concrete type is not known up
// front by peeking at the "_typ" discriminator and dispatching to the
// registered type. The returned object is decoded via the canonical
// path.
func UnmarshalAny(data []byte) (Object, error) {
	typ := jsoniter.Get(data, "_typ")
	if typ.ValueType() != jsoniter.StringValue {
		return nil, ErrMissingType
	}
	o, ok := NewByType(typ.ToString())
	if !ok {
		return nil, ErrUnknownType
	}
	if err := Unmarshal(data, o); err != nil {
		return nil, err
	}
	return o, nil
}
