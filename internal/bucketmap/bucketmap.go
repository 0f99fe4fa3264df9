// Package bucketmap implements a string-keyed associative store over a fixed
// bucket array. Unlike the built-in map it reports, at insert time, whether
// the new key landed in an already-occupied bucket. Callers treat that as a
// purely informational observation about hash quality; it never affects
// correctness.
package bucketmap

import "hash/fnv"

// BucketCount is the size of the bucket array. A power of two keeps the
// hash-to-bucket reduction a single mask.
const BucketCount = 1 << 10

type entry struct {
	key   string
	value any
}

// Map is a fixed-bucket hash map. The zero value is ready to use. Map is not
// safe for concurrent use.
type Map struct {
	buckets [BucketCount][]entry
	n       int
}

func bucketOf(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32() & (BucketCount - 1)
}

// Insert adds key with value and reports whether the bucket already held
// other keys (a hash collision). If key is already present its value is
// replaced and collided reflects the remaining neighbors. Callers that need
// uniqueness must Lookup first.
func (m *Map) Insert(key string, value any) (collided bool) {
	b := bucketOf(key)
	for i := range m.buckets[b] {
		if m.buckets[b][i].key == key {
			m.buckets[b][i].value = value
			return len(m.buckets[b]) > 1
		}
	}
	collided = len(m.buckets[b]) > 0
	m.buckets[b] = append(m.buckets[b], entry{key: key, value: value})
	m.n++
	return collided
}

// Lookup returns the value stored under key, or nil and false.
func (m *Map) Lookup(key string) (any, bool) {
	b := bucketOf(key)
	for i := range m.buckets[b] {
		if m.buckets[b][i].key == key {
			return m.buckets[b][i].value, true
		}
	}
	return nil, false
}

// ForEach invokes visit once per stored entry, in unspecified order. The
// visitor must not insert or remove entries.
func (m *Map) ForEach(visit func(key string, value any)) {
	for b := range m.buckets {
		for i := range m.buckets[b] {
			visit(m.buckets[b][i].key, m.buckets[b][i].value)
		}
	}
}

// Len returns the number of stored entries.
func (m *Map) Len() int { return m.n }

// Clear removes all entries.
func (m *Map) Clear() {
	for b := range m.buckets {
		m.buckets[b] = nil
	}
	m.n = 0
}
