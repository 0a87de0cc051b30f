package hashtable

import (
	"github.com/cespare/xxhash"
	"github.com/pkg/errors"

	"github.com/outofforest/photon"
	"github.com/outofforest/sandbox/types"
)

// NumOfBuckets is the fixed number of buckets or slots.
const NumOfBuckets = 10

// ErrTableFull is returned when linear probing finds neither a free slot nor the slot holding the key.
var ErrTableFull = errors.New("hash table is full")

// Config stores hash table configuration.
type Config struct {
	Variant types.Variant
}

// New creates new hash table.
func New(config Config) (*HashTable, error) {
	switch config.Variant {
	case types.VariantSeparateChaining, types.VariantLinearProbing:
	default:
		return nil, errors.Errorf("unsupported hash table variant %q", config.Variant)
	}
	return &HashTable{
		config: config,
	}, nil
}

type slot struct {
	Used  bool
	Key   types.Value
	Value types.Value
}

// HashTable simulates hash tables resolving collisions by separate chaining or linear probing.
type HashTable struct {
	config Config

	buckets [NumOfBuckets][]types.Entry
	slots   [NumOfBuckets]slot
}

// Variant returns the variant of the hash table.
func (ht *HashTable) Variant() types.Variant {
	return ht.config.Variant
}

// Put stores value under the key. Existing key is overwritten in place.
func (ht *HashTable) Put(key, value types.Value) (types.Snapshot, error) {
	start := Index(key)

	if ht.config.Variant == types.VariantSeparateChaining {
		bucket := ht.buckets[start]
		for i := range bucket {
			if types.Equal(bucket[i].Key, key) {
				bucket[i].Value = value
				return ht.Snapshot(), nil
			}
		}
		ht.buckets[start] = append(bucket, types.Entry{Key: key, Value: value})
		return ht.Snapshot(), nil
	}

	for i := range NumOfBuckets {
		s := &ht.slots[(start+i)%NumOfBuckets]
		if !s.Used || types.Equal(s.Key, key) {
			*s = slot{
				Used:  true,
				Key:   key,
				Value: value,
			}
			return ht.Snapshot(), nil
		}
	}

	return ht.Snapshot(), errors.Wrapf(ErrTableFull, "no slot for key %v", key)
}

// Get returns value stored under the key.
func (ht *HashTable) Get(key types.Value) (types.Value, bool) {
	start := Index(key)

	if ht.config.Variant == types.VariantSeparateChaining {
		for _, e := range ht.buckets[start] {
			if types.Equal(e.Key, key) {
				return e.Value, true
			}
		}
		return nil, false
	}

	for i := range NumOfBuckets {
		s := ht.slots[(start+i)%NumOfBuckets]
		if !s.Used {
			return nil, false
		}
		if types.Equal(s.Key, key) {
			return s.Value, true
		}
	}
	return nil, false
}

// Len returns the number of stored keys.
func (ht *HashTable) Len() int {
	var n int
	for i := range NumOfBuckets {
		n += len(ht.buckets[i])
		if ht.slots[i].Used {
			n++
		}
	}
	return n
}

// Snapshot returns the copy of current state.
func (ht *HashTable) Snapshot() types.Snapshot {
	return Extract(ht)
}

// Extract extracts snapshot of the hash table.
func Extract(ht *HashTable) types.Snapshot {
	s := types.Snapshot{
		Family:  types.FamilyHashTable,
		Variant: ht.config.Variant,
	}

	if ht.config.Variant == types.VariantSeparateChaining {
		buckets := make(types.Buckets, NumOfBuckets)
		for i, bucket := range ht.buckets {
			if len(bucket) > 0 {
				buckets[i] = append([]types.Entry{}, bucket...)
			}
		}
		s.Data = buckets
		return s
	}

	slots := types.Slots{}
	for i, sl := range ht.slots {
		if sl.Used {
			slots = append(slots, types.Slot{
				Index: i,
				Key:   sl.Key,
				Value: sl.Value,
			})
		}
	}
	s.Data = slots
	return s
}

// Index returns the home bucket of the key. Integer keys use key mod NumOfBuckets, other keys are
// hashed first.
func Index(key types.Value) int {
	if i, ok := types.AsInt(key); ok {
		return int((i%NumOfBuckets + NumOfBuckets) % NumOfBuckets)
	}

	var hash uint64
	switch k := types.Normalize(key).(type) {
	case string:
		hash = xxhash.Sum64String(k)
	case float64:
		hash = xxhash.Sum64(photon.NewFromValue(&k).B)
	case bool:
		hash = xxhash.Sum64(photon.NewFromValue(&k).B)
	}
	return int(hash % NumOfBuckets)
}
