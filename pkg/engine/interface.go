/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 * @author Michael Saigachenko
 */

package engine

import (
	"github.com/entiql/entiql/pkg/instances"
	"github.com/entiql/entiql/pkg/modeldef"
	"github.com/entiql/entiql/pkg/queryprocessor"
)

// Source is one named schema or query source unit.
type Source struct {
	FileName string
	Content  string
}

// QueryResult is the outcome of loading one query: the bound query, or
// the error that failed it. Loading is per-query: one failed query never
// fails its neighbours. A source unit that does not parse yields a
// single result carrying its file name and the syntax error; the other
// units of the batch load as usual.
type QueryResult struct {
	Name  string
	Query string
	Bound *queryprocessor.BoundQuery
	Err   error
}

// Engine ties the pieces together: it owns the current model snapshot,
// loads and binds queries against it, and runs them over caller-supplied
// instance sources.
//
// The model snapshot swaps atomically: readers always see either the
// previous complete model or the new one, never a partial registry.
// Loading a new model drops the queries bound to the previous snapshot.
type IEngine interface {
	// Parses and validates schema sources and swaps the model snapshot.
	//
	// Registration is all-or-nothing: on error the previous snapshot is
	// kept untouched.
	LoadModel(sources []Source) (modeldef.IModel, error)

	// Returns the current model snapshot, nil before the first LoadModel.
	Model() modeldef.IModel

	// Parses query sources and binds each query against the current model
	// snapshot. Successfully bound queries are registered by name and
	// replace earlier registrations of the same name. Failures stay in
	// their QueryResult; the only call-level error is ErrNoModel.
	LoadQueries(sources []Source) ([]QueryResult, error)

	// Returns a registered query by name.
	Query(name string) (*queryprocessor.BoundQuery, bool)

	// Runs a registered query over the source, pushing matching instances
	// to the callback.
	RunQuery(name string, params instances.Values, source instances.ISource, callback func(instances.IInstance) error) error
}
