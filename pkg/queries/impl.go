/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package queries

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

func parseImpl(fileName string, content string) (*QueriesAST, error) {
	var basicLexer = lexer.MustSimple([]lexer.SimpleRule{

		{Name: "Comment", Pattern: `//.*|(?s:/\*.*?\*/)`},
		{Name: "Param", Pattern: `_\$[a-zA-Z_]\w*`},
		{Name: "Operator", Pattern: `==|!=|<=|>=|<|>`},
		{Name: "Float", Pattern: `[-+]?\d+\.\d+`},
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
		{Name: "Punct", Pattern: `[{}\[\],.:()]`},
		{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
	})

	parser := participle.MustBuild[QueriesAST](
		participle.Lexer(basicLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
	)
	return parser.ParseString(fileName, content)
}

func parseFSImpl(fs IReadFS, dir string) ([]*FileQueriesAST, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]*FileQueriesAST, 0)
	for _, entry := range entries {
		if strings.ToLower(filepath.Ext(entry.Name())) == queryFileExt {
			fp := filepath.Join(dir, entry.Name())
			bytes, err := fs.ReadFile(fp)
			if err != nil {
				return nil, err
			}
			ast, err := parseImpl(entry.Name(), string(bytes))
			if err != nil {
				return nil, err
			}
			files = append(files, &FileQueriesAST{
				FileName: entry.Name(),
				Ast:      ast,
			})
		}
	}
	if len(files) == 0 {
		return nil, ErrDirContainsNoQueryFiles
	}
	return files, nil
}
