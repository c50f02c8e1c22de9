package internal

import (
	"iter"
	"maps"
	"slices"
)

// IterSorted iterates over a map in the key order given by cmp.
func IterSorted[K comparable, V any](m map[K]V, cmp func(a, b K) int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		keys := slices.SortedFunc(maps.Keys(m), cmp)
		for _, key := range keys {
			if !yield(key, m[key]) {
				return // Stop if the consumer stops
			}
		}
	}
}

// IterKeys drops the values from a dual-return iterator.
func IterKeys[K any, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range seq {
			if !yield(key) {
				return
			}
		}
	}
}
