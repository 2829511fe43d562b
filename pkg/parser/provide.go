/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package parser

import (
	"github.com/entiql/entiql/pkg/modeldef"
)

// ParseFile parses content of the single schema source unit, creates
// FileSchemaAST and returns pointer to it. Performs syntax analysis.
func ParseFile(fileName, content string) (*FileSchemaAST, error) {
	ast, err := parseImpl(fileName, content)
	if err != nil {
		return nil, err
	}
	return &FileSchemaAST{
		FileName: fileName,
		Ast:      ast,
	}, nil
}

// ParseFS is a helper which parses all schema files from specified FS.
func ParseFS(fs IReadFS, subDir string) ([]*FileSchemaAST, error) {
	return parseFSImpl(fs, subDir)
}

// MergeFileSchemaASTs groups file ASTs by namespace and merges each group.
// Performs namespace-level semantic analysis.
func MergeFileSchemaASTs(asts []*FileSchemaAST) ([]*NamespaceSchemaAST, error) {
	return mergeFileSchemaASTsImpl(asts)
}

// BuildModel builds a validated model snapshot from parsed schemas.
//
// Registration is all-or-nothing: any validation error discards the whole
// batch and no model is returned.
func BuildModel(asts []*FileSchemaAST) (modeldef.IModel, error) {
	merged, err := mergeFileSchemaASTsImpl(asts)
	if err != nil {
		return nil, err
	}
	return newBuildContext(merged).build()
}
