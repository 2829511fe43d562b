/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package queryprocessor

type OrFilter struct {
	filters []IFilter
}

func (f OrFilter) IsMatch(row IRow) (bool, error) {
	for _, filter := range f.filters {
		match, err := filter.IsMatch(row)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}
