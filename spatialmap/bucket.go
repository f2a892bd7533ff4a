package spatialmap

import (
	"sort"

	"github.com/brunoczim/gridord/vec2"
)

// entry is one (inner key, value) pair inside a single outer bucket. Buckets
// are kept sorted ascending by key.
type entry[T vec2.Coord, V any] struct {
	key T
	val V
}

func lowerBound[T vec2.Coord, V any](bucket []entry[T, V], key T) int {
	return sort.Search(len(bucket), func(i int) bool { return bucket[i].key >= key })
}

func upperBound[T vec2.Coord, V any](bucket []entry[T, V], key T) int {
	return sort.Search(len(bucket), func(i int) bool { return bucket[i].key > key })
}

// bucketFind returns the index of key in bucket and whether it was found.
func bucketFind[T vec2.Coord, V any](bucket []entry[T, V], key T) (idx int, found bool) {
	idx = lowerBound(bucket, key)
	found = idx < len(bucket) && bucket[idx].key == key
	return
}

// bucketUpsert inserts or replaces key's value, returning the previous value
// (if any) and whether key was already present.
func bucketUpsert[T vec2.Coord, V any](bucket []entry[T, V], key T, val V) (result []entry[T, V], old V, had bool) {
	idx, found := bucketFind(bucket, key)
	if found {
		old = bucket[idx].val
		bucket[idx].val = val
		return bucket, old, true
	}
	bucket = append(bucket, entry[T, V]{})
	copy(bucket[idx+1:], bucket[idx:])
	bucket[idx] = entry[T, V]{key: key, val: val}
	return bucket, old, false
}

// bucketRemove deletes key from bucket if present, returning its value and
// whether it was found.
func bucketRemove[T vec2.Coord, V any](bucket []entry[T, V], key T) (result []entry[T, V], old V, had bool) {
	idx, found := bucketFind(bucket, key)
	if !found {
		return bucket, old, false
	}
	old = bucket[idx].val
	bucket = append(bucket[:idx], bucket[idx+1:]...)
	return bucket, old, true
}
