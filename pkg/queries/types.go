/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package queries

import (
	"io/fs"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

type FileQueriesAST struct {
	FileName string
	Ast      *QueriesAST
}

type IReadFS interface {
	fs.ReadDirFS
	fs.ReadFileFS
}

type Ident string

func (b *Ident) Capture(values []string) error {
	*b = Ident(strings.Trim(values[0], "\""))
	return nil
}

// ParamName is a `_$name` placeholder with the marker stripped.
type ParamName string

func (p *ParamName) Capture(values []string) error {
	*p = ParamName(strings.TrimPrefix(values[0], "_$"))
	return nil
}

type BoolLit bool

func (b *BoolLit) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}

// QueriesAST is a single query source unit: a sequence of named queries.
type QueriesAST struct {
	Pos     lexer.Position
	Queries []QueryStmt `parser:"@@*"`
}

type QueryStmt struct {
	Pos         lexer.Position
	Name        Ident      `parser:"'query' @Ident"`
	Description string     `parser:"'{' 'description' ':' @String"`
	Select      SelectStmt `parser:"'statement' ':' @@ '}'"`
}

func (s QueryStmt) GetName() string { return string(s.Name) }

type SelectStmt struct {
	Pos     lexer.Position
	Target  QualifiedName `parser:"'SELECT' @@"`
	Where   *Expression   `parser:"('WHERE' @@)?"`
	OrderBy []OrderByItem `parser:"('ORDER' 'BY' '[' @@ (',' @@)* ']')?"`
}

func (s SelectStmt) String() string {
	b := strings.Builder{}
	b.WriteString("SELECT ")
	b.WriteString(s.Target.String())
	if s.Where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(s.Where.String())
	}
	if len(s.OrderBy) > 0 {
		b.WriteString(" ORDER BY [")
		for i, o := range s.OrderBy {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(o.String())
		}
		b.WriteString("]")
	}
	return b.String()
}

// Parameters returns the names of the `_$` placeholders the statement
// uses, in first occurrence order, without duplicates.
func (s SelectStmt) Parameters() []string {
	params := make([]string, 0)
	seen := make(map[string]bool)
	var walk func(e *Expression)
	walk = func(e *Expression) {
		if e == nil {
			return
		}
		terms := make([]Term, 0, len(e.Rest)+1)
		terms = append(terms, e.First)
		for _, t := range e.Rest {
			terms = append(terms, t.Term)
		}
		for _, t := range terms {
			if t.Paren != nil {
				walk(t.Paren)
				continue
			}
			if t.Cmp != nil && t.Cmp.Operand.Param != nil {
				name := string(*t.Cmp.Operand.Param)
				if !seen[name] {
					seen[name] = true
					params = append(params, name)
				}
			}
		}
	}
	walk(s.Where)
	return params
}

type QualifiedName struct {
	Parts []Ident `parser:"@Ident ('.' @Ident)*"`
}

func (q QualifiedName) String() string {
	ss := make([]string, len(q.Parts))
	for i, p := range q.Parts {
		ss[i] = string(p)
	}
	return strings.Join(ss, ".")
}

// FieldPath is a dotted field reference: a direct field, or one
// relationship hop into a field of the target declaration.
type FieldPath struct {
	Pos   lexer.Position
	Parts []Ident `parser:"@Ident ('.' @Ident)*"`
}

func (p FieldPath) String() string {
	ss := make([]string, len(p.Parts))
	for i, part := range p.Parts {
		ss[i] = string(part)
	}
	return strings.Join(ss, ".")
}

// Expression is a flat AND/OR chain. Both connectives share one
// precedence level and associate left, so `a OR b AND c` reads as
// `(a OR b) AND c`. Parentheses override.
type Expression struct {
	First Term             `parser:"@@"`
	Rest  []ExpressionTail `parser:"@@*"`
}

type ExpressionTail struct {
	Op   string `parser:"@('AND' | 'OR')"`
	Term Term   `parser:"@@"`
}

func (e Expression) String() string {
	b := strings.Builder{}
	b.WriteString(e.First.String())
	for _, t := range e.Rest {
		b.WriteString(" ")
		b.WriteString(t.Op)
		b.WriteString(" ")
		b.WriteString(t.Term.String())
	}
	return b.String()
}

type Term struct {
	Paren *Expression `parser:"'(' @@ ')'"`
	Cmp   *Comparison `parser:"| @@"`
}

func (t Term) String() string {
	if t.Paren != nil {
		return "(" + t.Paren.String() + ")"
	}
	return t.Cmp.String()
}

type Comparison struct {
	Pos     lexer.Position
	Field   FieldPath `parser:"@@"`
	Op      string    `parser:"@Operator"`
	Operand Operand   `parser:"@@"`
}

func (c Comparison) String() string {
	return c.Field.String() + " " + c.Op + " " + c.Operand.String()
}

// Operand is the right side of a comparison: a parameter placeholder or
// a literal.
type Operand struct {
	Pos   lexer.Position
	Param *ParamName `parser:"@Param"`
	Str   *string    `parser:"| @String"`
	Float *float64   `parser:"| @Float"`
	Int   *int64     `parser:"| @Int"`
	Bool  *BoolLit   `parser:"| @('true' | 'false')"`
}

func (o Operand) String() string {
	switch {
	case o.Param != nil:
		return "_$" + string(*o.Param)
	case o.Str != nil:
		return strconv.Quote(*o.Str)
	case o.Float != nil:
		return strconv.FormatFloat(*o.Float, 'f', -1, 64)
	case o.Int != nil:
		return strconv.FormatInt(*o.Int, 10)
	case o.Bool != nil:
		return strconv.FormatBool(bool(*o.Bool))
	}
	return ""
}

type OrderByItem struct {
	Pos   lexer.Position
	Field FieldPath `parser:"@@"`
	Dir   string    `parser:"@('ASC' | 'DESC')?"`
}

// Descending reports the sort direction; omitted direction is ascending.
func (o OrderByItem) Descending() bool { return o.Dir == dirDesc }

func (o OrderByItem) String() string {
	if o.Dir == "" {
		return o.Field.String() + " " + dirAsc
	}
	return o.Field.String() + " " + o.Dir
}
