/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package parser

import (
	"github.com/entiql/entiql/pkg/modeldef"
)

type buildContext struct {
	schemas []*NamespaceSchemaAST
	builder modeldef.IModelBuilder
}

func newBuildContext(schemas []*NamespaceSchemaAST) *buildContext {
	return &buildContext{
		schemas: schemas,
		builder: modeldef.New(),
	}
}

// build pours the analysed ASTs into a model builder and validates the
// whole batch at once. The model installs atomically: any error leaves no
// model behind.
func (c *buildContext) build() (modeldef.IModel, error) {
	for _, n := range c.schemas {
		for i := range n.Ast.Statements {
			stmt := &n.Ast.Statements[i]
			switch {
			case stmt.Enum != nil:
				c.enum(n.Ast, stmt)
			case stmt.Entity != nil:
				c.entity(n.Ast, stmt)
			}
		}
	}
	return c.builder.Build()
}

func (c *buildContext) enum(schema *SchemaAST, stmt *DeclStmt) {
	e := stmt.Enum
	db := c.builder.AddDecl(schema.NewQName(e.Name), modeldef.DeclKind_Enum)
	for _, v := range e.Values {
		db.AddEnumValue(string(v))
	}
	c.decorate(db, stmt)
}

func (c *buildContext) entity(schema *SchemaAST, stmt *DeclStmt) {
	e := stmt.Entity
	db := c.builder.AddDecl(schema.NewQName(e.Name), entityKind(e.Kind))

	if e.Abstract {
		db.SetAbstract()
	}
	if e.IdentifiedBy != nil {
		db.SetIdentifiedBy(string(*e.IdentifiedBy))
	}
	if e.Extends != nil {
		db.SetAncestor(qualifyRef(schema, *e.Extends))
	}

	for i := range e.Items {
		item := &e.Items[i]
		switch {
		case item.Value != nil:
			f := item.Value
			if isScalarType(f.Type) {
				db.AddScalarField(string(f.Name), scalarKind(string(f.Type.Parts[0])), f.IsArray, f.Optional)
			} else {
				db.AddEnumField(string(f.Name), qualifyRef(schema, f.Type), f.IsArray, f.Optional)
			}
		case item.Ref != nil:
			f := item.Ref
			db.AddRefField(string(f.Name), qualifyRef(schema, f.Target), f.IsArray, f.Optional)
		}
	}

	c.decorate(db, stmt)
}

func (c *buildContext) decorate(db modeldef.IDeclBuilder, stmt *DeclStmt) {
	for _, group := range stmt.Annotations {
		for _, a := range group.Items {
			value := ""
			if a.Value != nil {
				value = *a.Value
			}
			db.AddDecorator(string(a.Key), value)
		}
	}
}
