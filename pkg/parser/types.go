/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package parser

import (
	"io/fs"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/entiql/entiql/pkg/modeldef"
)

type FileSchemaAST struct {
	FileName string
	Ast      *SchemaAST
}

type NamespaceSchemaAST struct {
	Name string
	Ast  *SchemaAST
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

// SchemaAST is a single source unit: one namespace and its declarations.
type SchemaAST struct {
	Pos        lexer.Position
	Namespace  QualifiedName `parser:"'namespace' @@"`
	Statements []DeclStmt    `parser:"@@*"`
}

// NewQName qualifies an entity declared in this schema's namespace.
func (s *SchemaAST) NewQName(name Ident) modeldef.QName {
	return modeldef.NewQName(s.Namespace.String(), string(name))
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

type DeclStmt struct {
	Annotations []AnnotationGroup `parser:"@@*"`
	Enum        *EnumStmt         `parser:"( @@"`
	Entity      *EntityStmt       `parser:"| @@ )"`
}

// AnnotationGroup is a bracketed metadata annotation preceding a
// declaration. Captured as opaque key-value pairs, never interpreted.
type AnnotationGroup struct {
	Pos   lexer.Position
	Items []Annotation `parser:"'[' @@ (',' @@)* ']'"`
}

type Annotation struct {
	Key   Ident   `parser:"@Ident"`
	Value *string `parser:"@String?"`
}

type EnumStmt struct {
	Pos    lexer.Position
	Name   Ident   `parser:"'enum' @Ident"`
	Values []Ident `parser:"'{' @Ident* '}'"`
}

func (s EnumStmt) GetName() string { return string(s.Name) }

type EntityStmt struct {
	Pos          lexer.Position
	Abstract     bool           `parser:"@'abstract'?"`
	Kind         string         `parser:"@('asset' | 'participant' | 'transaction' | 'event' | 'concept')"`
	Name         Ident          `parser:"@Ident"`
	IdentifiedBy *Ident         `parser:"('identified' 'by' @Ident)?"`
	Extends      *QualifiedName `parser:"('extends' @@)?"`
	Items        []FieldItem    `parser:"'{' @@* '}'"`
}

func (s EntityStmt) GetName() string { return string(s.Name) }

type FieldItem struct {
	Value *ValueFieldExpr `parser:"@@"`
	Ref   *RefFieldExpr   `parser:"| @@"`
}

// ValueFieldExpr is an `o`-introduced field: a scalar or an enum-valued
// field, depending on its declared type.
type ValueFieldExpr struct {
	Pos      lexer.Position
	Type     QualifiedName `parser:"'o' @@"`
	IsArray  bool          `parser:"@Array?"`
	Name     Ident         `parser:"@Ident"`
	Optional bool          `parser:"@'optional'?"`
}

// RefFieldExpr is a `-->` relationship field: an identity reference to an
// instance of the target declaration.
type RefFieldExpr struct {
	Pos      lexer.Position
	Target   QualifiedName `parser:"Arrow @@"`
	IsArray  bool          `parser:"@Array?"`
	Name     Ident         `parser:"@Ident"`
	Optional bool          `parser:"@'optional'?"`
}
