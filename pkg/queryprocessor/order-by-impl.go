/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package queryprocessor

// compareRows orders two rows by the ORDER BY keys, first key most
// significant. A row without a value on a key sorts before rows with
// one; DESC flips the sign of the whole key comparison. Returns 0 on
// full tie, the caller's stable sort then preserves source order.
func compareRows(a, b IRow, orders []orderBy) int {
	for _, o := range orders {
		av, aok := a.Value(o.field)
		bv, bok := b.Value(o.field)

		c := 0
		switch {
		case !aok && !bok:
			continue
		case !aok:
			c = -1
		case !bok:
			c = 1
		default:
			operand, err := coerceOperand(o.field, bv)
			if err != nil {
				continue
			}
			if c, err = compareValues(o.field.DataKind, av, operand); err != nil {
				continue
			}
		}
		if o.desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}
