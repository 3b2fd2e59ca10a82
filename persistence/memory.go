package persistence

import "slices"

type memoryItems map[string][]byte

func (m memoryItems) LoadItem(key string) ([]byte, error) {
	return slices.Clone(m[key]), nil
}

func (m memoryItems) SaveItem(key string, data []byte) error {
	if len(data) == 0 {
		delete(m, key)
		return nil
	}
	m[key] = slices.Clone(data)
	return nil
}

// NewMemory returns a Store that keeps everything in memory.
func NewMemory() *Store {
	return newStore(memoryItems{})
}

// NewMemoryWith returns an in-memory Store seeded with raw items, keyed as
// the gdata store keys them.
func NewMemoryWith(items map[string][]byte) *Store {
	m := memoryItems{}
	for k, v := range items {
		m[k] = slices.Clone(v)
	}
	return newStore(m)
}
