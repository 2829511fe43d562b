/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package engine

import (
	"errors"
	"fmt"
)

var ErrNoModel = errors.New("no model loaded")
var ErrQueryNotFound = errors.New("query not found")

func errQueryNotFound(name string) error {
	return fmt.Errorf("%w «%s»", ErrQueryNotFound, name)
}
