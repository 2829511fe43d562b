/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package engine

import (
	"github.com/entiql/entiql/pkg/objcache"
	"github.com/entiql/entiql/pkg/queryprocessor"
)

const defaultBindCacheSize = 256

// Provide returns a new empty engine. Load a model before loading or
// running queries.
func Provide() IEngine {
	return &engine{
		bound: make(map[string]*queryprocessor.BoundQuery),
		cache: objcache.New[string, []QueryResult](defaultBindCacheSize, nil),
	}
}
