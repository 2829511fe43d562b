/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package instancesmem

import (
	"github.com/entiql/entiql/pkg/instances"
	"github.com/entiql/entiql/pkg/modeldef"
)

// Provide returns a new in-memory instance storage bound to a model
// snapshot. Intended for tests and embedders without a persistence layer.
func Provide(model modeldef.IModel) *Storage {
	return &Storage{
		model: model,
		byQN:  make(map[modeldef.QName][]*instance),
		byRef: make(map[instances.Ref]*instance),
	}
}
