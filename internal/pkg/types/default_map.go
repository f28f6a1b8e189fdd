package types

// DefaultMap is a map wrapper that materializes a default value for missing keys.
//
// It is meant for bucketing: values that are themselves references (slices of
// pointers, sets, maps) can be fetched and mutated without an existence check.
//
//	buckets := NewDefaultMap[string](func() Set[int] { return NewSet[int]() })
//	buckets.Get("addr1").Add(0)
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	defaultFunc func() V
}

// NewDefaultMap creates an empty DefaultMap using defaultFunc to build missing values.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value stored under key. Missing keys are initialized with
// defaultFunc, stored, and returned.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Lookup returns the value stored under key without materializing a default.
func (d *DefaultMap[K, V]) Lookup(key K) (V, bool) {
	val, ok := d.data[key]
	return val, ok
}

// Set assigns val to key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// Len returns the number of keys currently stored.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}
