/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 * @author Michael Saigachenko
 */

package engine

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/untillpro/goutils/logger"

	"github.com/entiql/entiql/pkg/instances"
	"github.com/entiql/entiql/pkg/modeldef"
	"github.com/entiql/entiql/pkg/objcache"
	"github.com/entiql/entiql/pkg/parser"
	"github.com/entiql/entiql/pkg/queries"
	"github.com/entiql/entiql/pkg/queryprocessor"
)

type snapshot struct {
	model modeldef.IModel
}

type engine struct {
	current atomic.Pointer[snapshot]

	mx    sync.RWMutex
	bound map[string]*queryprocessor.BoundQuery

	// parsed+bound query sources keyed by snapshot id and source text
	cache objcache.ICache[string, []QueryResult]
}

func (e *engine) LoadModel(sources []Source) (modeldef.IModel, error) {
	asts := make([]*parser.FileSchemaAST, 0, len(sources))
	for _, src := range sources {
		ast, err := parser.ParseFile(src.FileName, src.Content)
		if err != nil {
			return nil, err
		}
		asts = append(asts, ast)
	}

	model, err := parser.BuildModel(asts)
	if err != nil {
		return nil, err
	}

	e.current.Store(&snapshot{model: model})

	e.mx.Lock()
	e.bound = make(map[string]*queryprocessor.BoundQuery)
	e.mx.Unlock()

	logger.Info("model", model.ID(), "loaded:", model.DeclCount(), "declarations")
	return model, nil
}

func (e *engine) Model() modeldef.IModel {
	if s := e.current.Load(); s != nil {
		return s.model
	}
	return nil
}

func (e *engine) LoadQueries(sources []Source) ([]QueryResult, error) {
	model := e.Model()
	if model == nil {
		return nil, ErrNoModel
	}

	results := make([]QueryResult, 0)
	for _, src := range sources {
		results = append(results, e.loadSource(model, src)...)
	}

	loaded := 0
	e.mx.Lock()
	for _, r := range results {
		if r.Err == nil {
			e.bound[r.Name] = r.Bound
			loaded++
		}
	}
	e.mx.Unlock()

	logger.Info("queries loaded:", loaded, "ok,", len(results)-loaded, "failed")
	return results, nil
}

// loadSource parses and binds one query source unit. A parse failure is
// fatal to the unit only and is reported as the unit's single result;
// bind failures stay per-query. Outcomes are cached per model snapshot.
func (e *engine) loadSource(model modeldef.IModel, src Source) []QueryResult {
	key := model.ID() + "\x00" + src.FileName + "\x00" + src.Content
	if rr, ok := e.cache.Get(key); ok {
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("%s: bind results from cache", src.FileName))
		}
		return rr
	}

	f, err := queries.ParseFile(src.FileName, src.Content)
	if err != nil {
		return e.failUnit(key, src, err)
	}
	qq, err := queries.MergeFileQueriesASTs([]*queries.FileQueriesAST{f})
	if err != nil {
		return e.failUnit(key, src, err)
	}

	results := make([]QueryResult, 0, len(qq))
	for _, q := range qq {
		r := QueryResult{Name: q.GetName(), Query: q.Select.String()}
		r.Bound, r.Err = queryprocessor.Bind(q, model)
		if logger.IsVerbose() {
			if r.Err == nil {
				logger.Verbose(fmt.Sprintf("%s: query «%s» bound", src.FileName, r.Name))
			} else {
				logger.Verbose(fmt.Sprintf("%s: query «%s»: %v", src.FileName, r.Name, r.Err))
			}
		}
		results = append(results, r)
	}

	e.cache.Put(key, results)
	return results
}

func (e *engine) failUnit(key string, src Source, err error) []QueryResult {
	logger.Error(src.FileName, "not loaded:", err.Error())
	rr := []QueryResult{{Name: src.FileName, Err: err}}
	e.cache.Put(key, rr)
	return rr
}

func (e *engine) Query(name string) (*queryprocessor.BoundQuery, bool) {
	e.mx.RLock()
	defer e.mx.RUnlock()
	q, ok := e.bound[name]
	return q, ok
}

func (e *engine) RunQuery(name string, params instances.Values, source instances.ISource, callback func(instances.IInstance) error) error {
	q, ok := e.Query(name)
	if !ok {
		return errQueryNotFound(name)
	}
	return queryprocessor.Run(q, params, source, callback)
}
