/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objcache

// Creates and returns new LRU object cache with K key type and V value
// type, holding up to size entries. The optional onEvicted callback is
// called for every evicted entry.
//
// # Panics:
//   - if size is not positive.
func New[K comparable, V any](size int, onEvicted func(K, V)) ICache[K, V] {
	return newCache[K, V](size, onEvicted)
}
