/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package instancesmem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/entiql/entiql/pkg/instances"
	"github.com/entiql/entiql/pkg/modeldef"
)

func newModel(t *testing.T) modeldef.IModel {
	b := modeldef.New()

	b.AddDecl(modeldef.NewQName("reg", "Registry"), modeldef.DeclKind_Asset).
		SetAbstract().
		SetIdentifiedBy("id").
		AddScalarField("id", modeldef.DataKind_String, false, false).
		AddScalarField("name", modeldef.DataKind_String, false, true)

	b.AddDecl(modeldef.NewQName("reg", "AssetRegistry"), modeldef.DeclKind_Asset).
		SetAncestor(modeldef.NewQName("reg", "Registry"))

	b.AddDecl(modeldef.NewQName("reg", "Note"), modeldef.DeclKind_Concept).
		AddScalarField("text", modeldef.DataKind_String, false, false)

	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func Test_Storage(t *testing.T) {
	require := require.New(t)

	m := newModel(t)
	s := Provide(m)

	registry := modeldef.NewQName("reg", "Registry")
	assetRegistry := modeldef.NewQName("reg", "AssetRegistry")

	require.NoError(s.Add(assetRegistry, map[string]interface{}{"id": "r1"}))
	require.NoError(s.Add(assetRegistry, map[string]interface{}{"id": "r2", "name": "main"}))

	t.Run("enumerate in insertion order", func(t *testing.T) {
		ids := make([]string, 0)
		require.NoError(s.Of(assetRegistry).Instances(func(i instances.IInstance) error {
			ids = append(ids, i.Value("id").(string))
			return nil
		}))
		require.Equal([]string{"r1", "r2"}, ids)
	})

	t.Run("enumerate through the supertype", func(t *testing.T) {
		count := 0
		require.NoError(s.Of(registry).Instances(func(instances.IInstance) error {
			count++
			return nil
		}))
		require.Equal(2, count)
	})

	t.Run("resolve through any declaration of the chain", func(t *testing.T) {
		require.NotNil(s.Resolve(instances.Ref{Type: assetRegistry, ID: "r1"}))
		require.NotNil(s.Resolve(instances.Ref{Type: registry, ID: "r1"}))
		require.Nil(s.Resolve(instances.Ref{Type: assetRegistry, ID: "r9"}))
	})

	t.Run("unset optional field has no value", func(t *testing.T) {
		inst := s.Resolve(instances.Ref{Type: assetRegistry, ID: "r1"})
		require.Nil(inst.Value("name"))
		require.Equal("main", s.Resolve(instances.Ref{Type: assetRegistry, ID: "r2"}).Value("name"))
	})
}

func Test_AddErrors(t *testing.T) {
	require := require.New(t)

	m := newModel(t)
	s := Provide(m)

	t.Run("unknown declaration", func(t *testing.T) {
		err := s.Add(modeldef.NewQName("reg", "Unknown"), map[string]interface{}{})
		require.ErrorIs(err, modeldef.ErrMissedError)
	})

	t.Run("abstract declaration", func(t *testing.T) {
		err := s.Add(modeldef.NewQName("reg", "Registry"), map[string]interface{}{"id": "r1"})
		require.ErrorIs(err, modeldef.ErrInvalidError)
	})

	t.Run("concept declares no instances", func(t *testing.T) {
		err := s.Add(modeldef.NewQName("reg", "Note"), map[string]interface{}{"text": "x"})
		require.ErrorIs(err, modeldef.ErrInvalidError)
	})

	t.Run("missing identity value", func(t *testing.T) {
		err := s.Add(modeldef.NewQName("reg", "AssetRegistry"), map[string]interface{}{"name": "x"})
		require.ErrorIs(err, modeldef.ErrMissedError)
	})
}
