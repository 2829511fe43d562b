/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package parser

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

func parseImpl(fileName string, content string) (*SchemaAST, error) {
	var basicLexer = lexer.MustSimple([]lexer.SimpleRule{

		{Name: "Comment", Pattern: `//.*|(?s:/\*.*?\*/)`},
		{Name: "Arrow", Pattern: `-->`},
		{Name: "Array", Pattern: `\[\]`},
		{Name: "Float", Pattern: `[-+]?\d+\.\d+`},
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
		{Name: "Punct", Pattern: `[{}\[\],.]`},
		{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
	})

	parser := participle.MustBuild[SchemaAST](
		participle.Lexer(basicLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
	)
	return parser.ParseString(fileName, content)
}

func parseFSImpl(fs IReadFS, dir string) ([]*FileSchemaAST, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	schemas := make([]*FileSchemaAST, 0)
	for _, entry := range entries {
		if strings.ToLower(filepath.Ext(entry.Name())) == schemaFileExt {
			fp := filepath.Join(dir, entry.Name())
			bytes, err := fs.ReadFile(fp)
			if err != nil {
				return nil, err
			}
			schema, err := parseImpl(entry.Name(), string(bytes))
			if err != nil {
				return nil, err
			}
			schemas = append(schemas, &FileSchemaAST{
				FileName: entry.Name(),
				Ast:      schema,
			})
		}
	}
	if len(schemas) == 0 {
		return nil, ErrDirContainsNoSchemaFiles
	}
	return schemas, nil
}

func mergeSchemas(mergeFrom, mergeTo *SchemaAST) {
	mergeTo.Statements = append(mergeTo.Statements, mergeFrom.Statements...)
}

// mergeFileSchemaASTsImpl groups the parsed files by namespace and merges
// each group into a single NamespaceSchemaAST, then performs
// namespace-level semantic analysis.
func mergeFileSchemaASTsImpl(asts []*FileSchemaAST) ([]*NamespaceSchemaAST, error) {
	merged := make([]*NamespaceSchemaAST, 0)
	index := make(map[string]*NamespaceSchemaAST)

	for _, f := range asts {
		ns := f.Ast.Namespace.String()
		if head, ok := index[ns]; ok {
			mergeSchemas(f.Ast, head.Ast)
			continue
		}
		n := &NamespaceSchemaAST{Name: ns, Ast: f.Ast}
		index[ns] = n
		merged = append(merged, n)
	}

	errs := make([]error, 0)
	for _, n := range merged {
		errs = analyseNamespace(n, errs)
	}

	return merged, errors.Join(errs...)
}
