/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package modeldef

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQName_Parse(t *testing.T) {
	require := require.New(t)

	t.Run("dotted namespace", func(t *testing.T) {
		qn, err := ParseQName("org.example.trading.Commodity")
		require.NoError(err)
		require.Equal("org.example.trading", qn.Namespace())
		require.Equal("Commodity", qn.Entity())
		require.Equal("org.example.trading.Commodity", qn.String())
	})

	t.Run("single qualifier", func(t *testing.T) {
		qn, err := ParseQName("test.Thing")
		require.NoError(err)
		require.Equal(NewQName("test", "Thing"), qn)
	})

	t.Run("errors", func(t *testing.T) {
		for _, s := range []string{"", "NoNamespace", ".Leading", "trailing."} {
			_, err := ParseQName(s)
			require.Error(err, s)
		}
	})

	t.Run("MustParseQName panics", func(t *testing.T) {
		require.Panics(func() { MustParseQName("bare") })
	})
}

func TestQName_Compare(t *testing.T) {
	require := require.New(t)

	require.Equal(0, CompareQName(NewQName("a", "B"), NewQName("a", "B")))
	require.Negative(CompareQName(NewQName("a", "A"), NewQName("a", "B")))
	require.Positive(CompareQName(NewQName("b", "A"), NewQName("a", "Z")))
}

func TestValidQName(t *testing.T) {
	require := require.New(t)

	ok, err := ValidQName(NewQName("org.example", "Trader"))
	require.True(ok)
	require.NoError(err)

	ok, err = ValidQName(NullQName)
	require.False(ok)
	require.ErrorIs(err, ErrMissedError)

	ok, err = ValidQName(NewQName("org.1bad", "Trader"))
	require.False(ok)
	require.ErrorIs(err, ErrInvalidError)

	ok, err = ValidQName(NewQName("org.example", "bad name"))
	require.False(ok)
	require.ErrorIs(err, ErrInvalidError)
}
