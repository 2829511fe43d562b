/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objcache

// Cache of objects with LRU eviction.
type ICache[K comparable, V any] interface {
	// Gets value by key. Returns the value and true if the key exists,
	// the zero value and false otherwise.
	Get(K) (value V, ok bool)

	// Puts value under key, evicting the least recently used entry when
	// the cache is full.
	Put(K, V)
}
