/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objcache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU cache implemented by hashicorp LRU cache
type cache[K comparable, V any] struct {
	lru *lru.Cache[K, V]
}

func newCache[K comparable, V any](size int, onEvicted func(K, V)) (c *cache[K, V]) {
	var err error
	c = &cache[K, V]{}
	c.lru, err = lru.NewWithEvict[K, V](size, onEvicted)
	if err != nil {
		panic(err)
	}

	return c
}

func (c *cache[K, V]) Get(key K) (value V, ok bool) {
	return c.lru.Get(key)
}

func (c *cache[K, V]) Put(key K, value V) {
	_ = c.lru.Add(key, value)
}
