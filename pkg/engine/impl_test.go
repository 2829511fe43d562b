/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/entiql/entiql/pkg/instances"
	"github.com/entiql/entiql/pkg/instancesmem"
	"github.com/entiql/entiql/pkg/modeldef"
	"github.com/entiql/entiql/pkg/queryprocessor"
)

const schemaTrading = `
namespace org.example.trading

participant Trader identified by tid {
  o String tid
  o String lastName
}

asset Commodity identified by id {
  o String id
  o Double quantity
  --> Trader owner optional
}
`

const schemaRegistry = `
namespace org.example.registry

abstract asset Registry identified by id {
  o String id
  o Boolean system
}

asset AssetRegistry extends Registry {
}
`

const queriesTrading = `
query selectCommodities {
  description: "all commodities"
  statement: SELECT org.example.trading.Commodity ORDER BY [quantity]
}

query selectWindow {
  description: "quantity window of one owner"
  statement: SELECT org.example.trading.Commodity
    WHERE (quantity >= _$low AND quantity <= _$high) AND owner == _$owner
}

query selectSystemRegistries {
  description: "inherited field on subtype"
  statement: SELECT org.example.registry.AssetRegistry WHERE system == true
}

query selectBroken {
  description: "unknown field"
  statement: SELECT org.example.trading.Commodity WHERE missing == 1
}
`

func load(t *testing.T) (IEngine, *instancesmem.Storage) {
	require := require.New(t)

	e := Provide()
	model, err := e.LoadModel([]Source{
		{FileName: "trading.edl", Content: schemaTrading},
		{FileName: "registry.edl", Content: schemaRegistry},
	})
	require.NoError(err)

	results, err := e.LoadQueries([]Source{{FileName: "trading.eql", Content: queriesTrading}})
	require.NoError(err)
	require.Len(results, 4)

	s := instancesmem.Provide(model)
	trader := modeldef.NewQName("org.example.trading", "Trader")
	commodity := modeldef.NewQName("org.example.trading", "Commodity")
	registry := modeldef.NewQName("org.example.registry", "AssetRegistry")

	require.NoError(s.Add(trader, map[string]interface{}{"tid": "t1", "lastName": "Smith"}))
	require.NoError(s.Add(commodity, map[string]interface{}{"id": "c1", "quantity": float64(10), "owner": instances.Ref{Type: trader, ID: "t1"}}))
	require.NoError(s.Add(commodity, map[string]interface{}{"id": "c2", "quantity": float64(60)}))
	require.NoError(s.Add(commodity, map[string]interface{}{"id": "c3", "quantity": float64(30), "owner": instances.Ref{Type: trader, ID: "t1"}}))
	require.NoError(s.Add(registry, map[string]interface{}{"id": "r1", "system": true}))
	require.NoError(s.Add(registry, map[string]interface{}{"id": "r2", "system": false}))

	return e, s
}

func runToIDs(t *testing.T, e IEngine, name string, params instances.Values, s *instancesmem.Storage) []string {
	q, ok := e.Query(name)
	require.True(t, ok)

	ids := make([]string, 0)
	err := e.RunQuery(name, params, s.Of(q.Target.QName()), func(inst instances.IInstance) error {
		ids = append(ids, inst.Value(q.Target.IdentifyingField()).(string))
		return nil
	})
	require.NoError(t, err)
	return ids
}

func Test_BasicUsage(t *testing.T) {
	require := require.New(t)

	e, s := load(t)

	t.Run("model snapshot", func(t *testing.T) {
		m := e.Model()
		require.NotNil(m)
		require.NotEmpty(m.ID())
		require.Equal(4, m.DeclCount())
	})

	t.Run("failed query does not fail its neighbours", func(t *testing.T) {
		_, ok := e.Query("selectBroken")
		require.False(ok)

		q, ok := e.Query("selectWindow")
		require.True(ok)
		require.Equal([]string{"low", "high", "owner"}, q.Params)
	})

	t.Run("ordered select", func(t *testing.T) {
		require.Equal([]string{"c1", "c3", "c2"}, runToIDs(t, e, "selectCommodities", nil, s))
	})

	t.Run("quantity window returns exactly one", func(t *testing.T) {
		ids := runToIDs(t, e, "selectWindow", instances.Values{"low": 20, "high": 100, "owner": "t1"}, s)
		require.Equal([]string{"c3"}, ids)
	})

	t.Run("inherited field on subtype", func(t *testing.T) {
		require.Equal([]string{"r1"}, runToIDs(t, e, "selectSystemRegistries", nil, s))
	})
}

func Test_LoadQueriesResults(t *testing.T) {
	require := require.New(t)

	e, _ := load(t)

	results, err := e.LoadQueries([]Source{{FileName: "trading.eql", Content: queriesTrading}})
	require.NoError(err)

	byName := make(map[string]QueryResult)
	for _, r := range results {
		byName[r.Name] = r
	}

	require.NoError(byName["selectWindow"].Err)
	require.NotNil(byName["selectWindow"].Bound)
	require.Equal(
		"SELECT org.example.trading.Commodity WHERE (quantity >= _$low AND quantity <= _$high) AND owner == _$owner",
		byName["selectWindow"].Query)

	require.ErrorIs(byName["selectBroken"].Err, queryprocessor.ErrUnknownField)
	require.Nil(byName["selectBroken"].Bound)
}

func Test_LoadOrder(t *testing.T) {
	require := require.New(t)

	t.Run("queries before model", func(t *testing.T) {
		e := Provide()
		_, err := e.LoadQueries([]Source{{FileName: "q.eql", Content: queriesTrading}})
		require.ErrorIs(err, ErrNoModel)
		require.Nil(e.Model())
	})

	t.Run("unknown query name", func(t *testing.T) {
		e, s := load(t)
		err := e.RunQuery("nope", nil, s.Of(modeldef.NewQName("org.example.trading", "Commodity")), func(instances.IInstance) error { return nil })
		require.ErrorIs(err, ErrQueryNotFound)
	})
}

func Test_SnapshotSwap(t *testing.T) {
	require := require.New(t)

	e, _ := load(t)
	prev := e.Model()

	t.Run("failed load keeps the previous snapshot", func(t *testing.T) {
		_, err := e.LoadModel([]Source{{FileName: "bad.edl", Content: `
namespace broken
asset A identified by id {
  o String id
  --> Unknown target
}`}})
		require.ErrorIs(err, modeldef.ErrUnresolvedError)
		require.Same(prev, e.Model())

		_, ok := e.Query("selectCommodities")
		require.True(ok)
	})

	t.Run("successful load drops stale queries", func(t *testing.T) {
		next, err := e.LoadModel([]Source{{FileName: "trading.edl", Content: schemaTrading}})
		require.NoError(err)
		require.NotEqual(prev.ID(), next.ID())

		_, ok := e.Query("selectCommodities")
		require.False(ok)
	})
}

func Test_BrokenUnitDoesNotFailTheBatch(t *testing.T) {
	require := require.New(t)

	e, s := load(t)

	results, err := e.LoadQueries([]Source{
		{FileName: "bad.eql", Content: `query q {`},
		{FileName: "traders.eql", Content: `
query selectTraders {
  description: "all traders"
  statement: SELECT org.example.trading.Trader
}`},
	})
	require.NoError(err)
	require.Len(results, 2)

	t.Run("broken unit yields its single failed result", func(t *testing.T) {
		require.Equal("bad.eql", results[0].Name)
		require.Error(results[0].Err)
		require.ErrorContains(results[0].Err, "bad.eql")
		require.Nil(results[0].Bound)

		_, ok := e.Query("q")
		require.False(ok)
	})

	t.Run("well-formed unit of the same batch loads", func(t *testing.T) {
		require.NoError(results[1].Err)
		require.Equal("selectTraders", results[1].Name)
		require.Equal([]string{"t1"}, runToIDs(t, e, "selectTraders", nil, s))
	})
}
