/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package parser

// analyseNamespace performs namespace-level semantic analysis: duplicate
// declaration names, duplicate field names and enum values, identity
// clauses on kinds that do not permit them. Cross-namespace resolution is
// left to the model build.
func analyseNamespace(n *NamespaceSchemaAST, errs []error) []error {
	named := make(map[string]bool)

	for i := range n.Ast.Statements {
		stmt := &n.Ast.Statements[i]

		if e := stmt.Enum; e != nil {
			if named[e.GetName()] {
				errs = append(errs, errorAt(ErrRedeclared(e.GetName()), &e.Pos))
			}
			named[e.GetName()] = true
			errs = analyseEnum(e, errs)
			continue
		}

		if e := stmt.Entity; e != nil {
			if named[e.GetName()] {
				errs = append(errs, errorAt(ErrRedeclared(e.GetName()), &e.Pos))
			}
			named[e.GetName()] = true
			errs = analyseEntity(e, errs)
		}
	}
	return errs
}

func analyseEnum(e *EnumStmt, errs []error) []error {
	values := make(map[Ident]bool)
	for _, v := range e.Values {
		if values[v] {
			errs = append(errs, errorAt(ErrRedeclared(string(v)), &e.Pos))
		}
		values[v] = true
	}
	return errs
}

func analyseEntity(e *EntityStmt, errs []error) []error {
	kind := entityKind(e.Kind)

	if e.IdentifiedBy != nil && !kind.IdentityAllowed() {
		errs = append(errs, errorAt(ErrIdentityClauseNotAllowed(e.Kind, e.GetName()), &e.Pos))
	}

	fields := make(map[Ident]bool)
	for i := range e.Items {
		item := &e.Items[i]
		var name Ident
		switch {
		case item.Value != nil:
			name = item.Value.Name
		case item.Ref != nil:
			name = item.Ref.Name
			if isScalarType(item.Ref.Target) {
				errs = append(errs, errorAt(ErrScalarRelationshipTarget(item.Ref.Target.String()), &item.Ref.Pos))
			}
		}
		if fields[name] {
			errs = append(errs, errorAt(ErrRedeclared(string(name)), &e.Pos))
		}
		fields[name] = true
	}
	return errs
}
