/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package queryprocessor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/entiql/entiql/pkg/instances"
	"github.com/entiql/entiql/pkg/instancesmem"
	"github.com/entiql/entiql/pkg/modeldef"
	"github.com/entiql/entiql/pkg/queries"
)

var errTestAbort = errors.New("abort")

func newTestModel(t *testing.T) modeldef.IModel {
	b := modeldef.New()

	b.AddDecl(modeldef.NewQName("test", "TradeUnit"), modeldef.DeclKind_Enum).
		AddEnumValue("BARREL").
		AddEnumValue("BUSHEL")

	b.AddDecl(modeldef.NewQName("test", "Trader"), modeldef.DeclKind_Participant).
		SetIdentifiedBy("tid").
		AddScalarField("tid", modeldef.DataKind_String, false, false).
		AddScalarField("lastName", modeldef.DataKind_String, false, false)

	b.AddDecl(modeldef.NewQName("test", "Commodity"), modeldef.DeclKind_Asset).
		SetIdentifiedBy("id").
		AddScalarField("id", modeldef.DataKind_String, false, false).
		AddScalarField("description", modeldef.DataKind_String, false, true).
		AddScalarField("quantity", modeldef.DataKind_Double, false, false).
		AddScalarField("listedAt", modeldef.DataKind_DateTime, false, true).
		AddScalarField("tags", modeldef.DataKind_String, true, true).
		AddEnumField("unit", modeldef.NewQName("test", "TradeUnit"), false, false).
		AddRefField("owner", modeldef.NewQName("test", "Trader"), false, true)

	b.AddDecl(modeldef.NewQName("registry", "Registry"), modeldef.DeclKind_Asset).
		SetAbstract().
		SetIdentifiedBy("rid").
		AddScalarField("rid", modeldef.DataKind_String, false, false).
		AddScalarField("system", modeldef.DataKind_Boolean, false, false)

	b.AddDecl(modeldef.NewQName("registry", "AssetRegistry"), modeldef.DeclKind_Asset).
		SetAncestor(modeldef.NewQName("registry", "Registry"))

	b.AddDecl(modeldef.NewQName("test", "Address"), modeldef.DeclKind_Concept).
		AddScalarField("city", modeldef.DataKind_String, false, false)

	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func newTestStorage(t *testing.T, m modeldef.IModel) *instancesmem.Storage {
	require := require.New(t)
	s := instancesmem.Provide(m)

	trader := modeldef.NewQName("test", "Trader")
	commodity := modeldef.NewQName("test", "Commodity")
	assetRegistry := modeldef.NewQName("registry", "AssetRegistry")

	require.NoError(s.Add(trader, map[string]interface{}{"tid": "t1", "lastName": "Smith"}))
	require.NoError(s.Add(trader, map[string]interface{}{"tid": "t2", "lastName": "Jones"}))

	require.NoError(s.Add(commodity, map[string]interface{}{
		"id": "c1", "quantity": float64(10), "unit": "BARREL",
		"listedAt": time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		"owner":    instances.Ref{Type: trader, ID: "t1"},
	}))
	require.NoError(s.Add(commodity, map[string]interface{}{
		"id": "c2", "quantity": float64(60), "unit": "BUSHEL",
		"owner": instances.Ref{Type: trader, ID: "t2"},
	}))
	require.NoError(s.Add(commodity, map[string]interface{}{
		"id": "c3", "quantity": float64(30), "unit": "BARREL",
		"listedAt": time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		"owner":    instances.Ref{Type: trader, ID: "t1"},
	}))

	require.NoError(s.Add(assetRegistry, map[string]interface{}{"rid": "r1", "system": true}))
	require.NoError(s.Add(assetRegistry, map[string]interface{}{"rid": "r2", "system": false}))

	return s
}

func parseQuery(t *testing.T, text string) *queries.QueryStmt {
	f, err := queries.ParseFile("test.eql", text)
	require.NoError(t, err)
	require.Len(t, f.Ast.Queries, 1)
	return &f.Ast.Queries[0]
}

func runToIDs(t *testing.T, bound *BoundQuery, params map[string]interface{}, s *instancesmem.Storage) []string {
	ids := make([]string, 0)
	err := Run(bound, params, s.Of(bound.Target.QName()), func(inst instances.IInstance) error {
		ids = append(ids, inst.Value(bound.Target.IdentifyingField()).(string))
		return nil
	})
	require.NoError(t, err)
	return ids
}

func Test_BasicUsage(t *testing.T) {
	require := require.New(t)

	m := newTestModel(t)
	s := newTestStorage(t, m)

	t.Run("bare select keeps source order", func(t *testing.T) {
		bound, err := Bind(parseQuery(t, `
query q { description: "all" statement: SELECT test.Commodity }`), m)
		require.NoError(err)
		require.Equal("SELECT test.Commodity", bound.Query)
		require.Empty(bound.Params)
		require.Equal([]string{"c1", "c2", "c3"}, runToIDs(t, bound, nil, s))
	})

	t.Run("quantity window and owner parameter", func(t *testing.T) {
		bound, err := Bind(parseQuery(t, `
query q {
  description: "window"
  statement: SELECT test.Commodity
    WHERE (quantity >= _$low AND quantity <= _$high) AND owner == _$owner
}`), m)
		require.NoError(err)
		require.Equal([]string{"low", "high", "owner"}, bound.Params)

		ids := runToIDs(t, bound, map[string]interface{}{"low": 20, "high": 100, "owner": "t1"}, s)
		require.Equal([]string{"c3"}, ids)
	})

	t.Run("order by ascending and descending", func(t *testing.T) {
		asc, err := Bind(parseQuery(t, `
query q { description: "asc" statement: SELECT test.Commodity ORDER BY [quantity] }`), m)
		require.NoError(err)
		require.Equal([]string{"c1", "c3", "c2"}, runToIDs(t, asc, nil, s))

		desc, err := Bind(parseQuery(t, `
query q { description: "desc" statement: SELECT test.Commodity ORDER BY [quantity DESC] }`), m)
		require.NoError(err)
		require.Equal([]string{"c2", "c3", "c1"}, runToIDs(t, desc, nil, s))
	})

	t.Run("missing sort value goes first ascending", func(t *testing.T) {
		bound, err := Bind(parseQuery(t, `
query q { description: "listed" statement: SELECT test.Commodity ORDER BY [listedAt] }`), m)
		require.NoError(err)
		// c2 has no listedAt
		require.Equal([]string{"c2", "c1", "c3"}, runToIDs(t, bound, nil, s))
	})

	t.Run("inherited field on subtype", func(t *testing.T) {
		bound, err := Bind(parseQuery(t, `
query q { description: "system" statement: SELECT registry.AssetRegistry WHERE system == true }`), m)
		require.NoError(err)
		require.Equal([]string{"r1"}, runToIDs(t, bound, nil, s))
	})


	t.Run("unqualified unique entity name", func(t *testing.T) {
		bound, err := Bind(parseQuery(t, `
query q { description: "bare" statement: SELECT Trader ORDER BY [lastName] }`), m)
		require.NoError(err)
		require.Equal(modeldef.NewQName("test", "Trader"), bound.Target.QName())
		require.Equal([]string{"t2", "t1"}, runToIDs(t, bound, nil, s))
	})

	t.Run("relationship hop", func(t *testing.T) {
		bound, err := Bind(parseQuery(t, `
query q { description: "hop" statement: SELECT test.Commodity WHERE owner.lastName == "Smith" }`), m)
		require.NoError(err)
		require.Equal([]string{"c1", "c3"}, runToIDs(t, bound, nil, s))
	})

	t.Run("enum equality", func(t *testing.T) {
		bound, err := Bind(parseQuery(t, `
query q { description: "unit" statement: SELECT test.Commodity WHERE unit != "BARREL" }`), m)
		require.NoError(err)
		require.Equal([]string{"c2"}, runToIDs(t, bound, nil, s))
	})

	t.Run("datetime literal", func(t *testing.T) {
		bound, err := Bind(parseQuery(t, `
query q { description: "date" statement: SELECT test.Commodity WHERE listedAt > "2023-02-01T00:00:00Z" }`), m)
		require.NoError(err)
		// c2 has no listedAt and matches nothing
		require.Equal([]string{"c3"}, runToIDs(t, bound, nil, s))
	})

	t.Run("not-equals does not match missing values", func(t *testing.T) {
		bound, err := Bind(parseQuery(t, `
query q { description: "ne" statement: SELECT test.Commodity WHERE listedAt != "2023-01-10T00:00:00Z" }`), m)
		require.NoError(err)
		require.Equal([]string{"c3"}, runToIDs(t, bound, nil, s))
	})

	t.Run("or", func(t *testing.T) {
		bound, err := Bind(parseQuery(t, `
query q { description: "or" statement: SELECT test.Commodity WHERE quantity < 20 OR quantity > 50 }`), m)
		require.NoError(err)
		require.Equal([]string{"c1", "c2"}, runToIDs(t, bound, nil, s))
	})
}

func Test_BindErrors(t *testing.T) {
	require := require.New(t)
	m := newTestModel(t)

	bind := func(stmt string) error {
		_, err := Bind(parseQuery(t, `
query q { description: "x" statement: `+stmt+` }`), m)
		return err
	}

	t.Run("unknown type", func(t *testing.T) {
		require.ErrorIs(bind(`SELECT test.Unknown`), ErrUnknownType)
		require.ErrorIs(bind(`SELECT Unknown`), ErrUnknownType)
	})

	t.Run("not selectable", func(t *testing.T) {
		require.ErrorIs(bind(`SELECT test.Address`), ErrNotSelectable)
		require.ErrorIs(bind(`SELECT test.TradeUnit`), ErrNotSelectable)
	})

	t.Run("abstract target", func(t *testing.T) {
		require.ErrorIs(bind(`SELECT registry.Registry`), ErrAbstractQueryTarget)
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(bind(`SELECT test.Commodity WHERE missing == 1`), ErrUnknownField)
		require.ErrorIs(bind(`SELECT test.Commodity WHERE owner.missing == 1`), ErrUnknownField)
		require.ErrorIs(bind(`SELECT test.Commodity WHERE quantity.sub == 1`), ErrUnknownField)
	})

	t.Run("incompatible comparison", func(t *testing.T) {
		require.ErrorIs(bind(`SELECT test.Commodity WHERE tags == "x"`), ErrIncompatibleComparison)
		require.ErrorIs(bind(`SELECT test.Commodity WHERE owner > "t1"`), ErrIncompatibleComparison)
		require.ErrorIs(bind(`SELECT test.Commodity WHERE quantity == "ten"`), ErrIncompatibleComparison)
		require.ErrorIs(bind(`SELECT test.Commodity WHERE unit == "GALLON"`), ErrIncompatibleComparison)
		require.ErrorIs(bind(`SELECT registry.AssetRegistry ORDER BY [system]`), ErrIncompatibleComparison)
	})
}

func Test_AmbiguousUnqualifiedTarget(t *testing.T) {
	require := require.New(t)

	b := modeldef.New()
	b.AddDecl(modeldef.NewQName("one", "Thing"), modeldef.DeclKind_Asset).
		SetIdentifiedBy("id").
		AddScalarField("id", modeldef.DataKind_String, false, false)
	b.AddDecl(modeldef.NewQName("two", "Thing"), modeldef.DeclKind_Asset).
		SetIdentifiedBy("id").
		AddScalarField("id", modeldef.DataKind_String, false, false)
	m, err := b.Build()
	require.NoError(err)

	_, err = Bind(parseQuery(t, `
query q { description: "x" statement: SELECT Thing }`), m)
	require.ErrorIs(err, ErrAmbiguousType)
}

func Test_Parameters(t *testing.T) {
	require := require.New(t)

	m := newTestModel(t)
	s := newTestStorage(t, m)

	bound, err := Bind(parseQuery(t, `
query q { description: "p" statement: SELECT test.Commodity WHERE quantity > _$min }`), m)
	require.NoError(err)

	t.Run("missing parameter fails the invocation", func(t *testing.T) {
		err := Run(bound, nil, s.Of(bound.Target.QName()), func(instances.IInstance) error { return nil })
		require.ErrorIs(err, ErrMissingParameter)
		require.ErrorContains(err, "min")
	})

	t.Run("wrong parameter type", func(t *testing.T) {
		err := Run(bound, map[string]interface{}{"min": "a lot"}, s.Of(bound.Target.QName()), func(instances.IInstance) error { return nil })
		require.ErrorIs(err, ErrWrongType)
	})

	t.Run("value provided", func(t *testing.T) {
		require.Equal([]string{"c2", "c3"}, runToIDs(t, bound, map[string]interface{}{"min": 20}, s))
	})
}

func Test_StableSortKeepsSourceOrderOnTies(t *testing.T) {
	require := require.New(t)

	m := newTestModel(t)
	s := instancesmem.Provide(m)

	commodity := modeldef.NewQName("test", "Commodity")
	for _, c := range []struct {
		id  string
		qty float64
	}{
		{"c1", 20}, {"c2", 10}, {"c3", 20}, {"c4", 10}, {"c5", 20},
	} {
		require.NoError(s.Add(commodity, map[string]interface{}{"id": c.id, "quantity": c.qty, "unit": "BARREL"}))
	}

	t.Run("ascending", func(t *testing.T) {
		bound, err := Bind(parseQuery(t, `
query q { description: "asc" statement: SELECT test.Commodity ORDER BY [quantity] }`), m)
		require.NoError(err)
		require.Equal([]string{"c2", "c4", "c1", "c3", "c5"}, runToIDs(t, bound, nil, s))
	})

	t.Run("descending keeps source order within equal keys too", func(t *testing.T) {
		bound, err := Bind(parseQuery(t, `
query q { description: "desc" statement: SELECT test.Commodity ORDER BY [quantity DESC] }`), m)
		require.NoError(err)
		require.Equal([]string{"c1", "c3", "c5", "c2", "c4"}, runToIDs(t, bound, nil, s))
	})
}

func Test_CallbackErrorAborts(t *testing.T) {
	require := require.New(t)

	m := newTestModel(t)
	s := newTestStorage(t, m)

	bound, err := Bind(parseQuery(t, `
query q { description: "all" statement: SELECT test.Commodity }`), m)
	require.NoError(err)

	calls := 0
	err = Run(bound, nil, s.Of(bound.Target.QName()), func(instances.IInstance) error {
		calls++
		return errTestAbort
	})
	require.ErrorIs(err, errTestAbort)
	require.Equal(1, calls)
}
