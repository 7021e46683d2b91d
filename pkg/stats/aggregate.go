package stats

import (
	"bytes"
	"encoding/json"
)

// KeyCounts tallies items per key while remembering first-occurrence order,
// so breakdowns like "alerts by type" serialize deterministically.
type KeyCounts struct {
	keys   []string
	counts map[string]int
}

// CountByKey groups items by key and counts them. Every key value is a valid
// distinct key, including the empty string.
func CountByKey[T any](items []T, key func(T) string) *KeyCounts {
	kc := &KeyCounts{counts: make(map[string]int, 8)}
	for _, item := range items {
		k := key(item)
		if _, seen := kc.counts[k]; !seen {
			kc.keys = append(kc.keys, k)
		}
		kc.counts[k]++
	}
	return kc
}

// Keys returns the keys in first-occurrence order.
func (kc *KeyCounts) Keys() []string { return kc.keys }

// Get returns the count for key, zero if absent.
func (kc *KeyCounts) Get(key string) int { return kc.counts[key] }

// Len returns the number of distinct keys.
func (kc *KeyCounts) Len() int { return len(kc.keys) }

// MarshalJSON encodes the counts as an object whose members follow
// first-occurrence order instead of the sorted order encoding/json would
// apply to a plain map.
func (kc *KeyCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range kc.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		count, err := json.Marshal(kc.counts[k])
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
