/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package queryprocessor

type AndFilter struct {
	filters []IFilter
}

func (f AndFilter) IsMatch(row IRow) (bool, error) {
	for _, filter := range f.filters {
		match, err := filter.IsMatch(row)
		if err != nil {
			return false, err
		}
		if !match {
			return false, nil
		}
	}
	return true, nil
}
