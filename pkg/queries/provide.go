/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package queries

import "errors"

// ParseFile parses content of the single query source unit, creates
// FileQueriesAST and returns pointer to it. Performs syntax analysis.
func ParseFile(fileName, content string) (*FileQueriesAST, error) {
	ast, err := parseImpl(fileName, content)
	if err != nil {
		return nil, err
	}
	return &FileQueriesAST{
		FileName: fileName,
		Ast:      ast,
	}, nil
}

// ParseFS is a helper which parses all query files from specified FS.
func ParseFS(fs IReadFS, subDir string) ([]*FileQueriesAST, error) {
	return parseFSImpl(fs, subDir)
}

// MergeFileQueriesASTs flattens the parsed files into a single ordered
// list of queries. Query names share one flat space: a name declared
// twice, in one file or across files, is an error.
func MergeFileQueriesASTs(asts []*FileQueriesAST) ([]*QueryStmt, error) {
	merged := make([]*QueryStmt, 0)
	named := make(map[string]bool)
	errs := make([]error, 0)

	for _, f := range asts {
		for i := range f.Ast.Queries {
			q := &f.Ast.Queries[i]
			if named[q.GetName()] {
				errs = append(errs, errorAt(ErrRedeclared(q.GetName()), &q.Pos))
				continue
			}
			named[q.GetName()] = true
			merged = append(merged, q)
		}
	}
	return merged, errors.Join(errs...)
}
