// Package aip parses AIP-160 filter expressions for a fixed set of typed
// fields and evaluates them against field values.
package aip

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// FieldType describes a supported filter field type.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldInt    FieldType = "int"
)

// Fields defines filterable fields and their types.
type Fields map[string]FieldType

// Filter is a parsed expression. A nil Filter matches everything.
type Filter struct {
	source string
	root   *expr.Expr
}

// String returns the expression text the filter was parsed from.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Parse parses filterStr for fields. A blank string yields a nil Filter.
func Parse(filterStr string, fields Fields) (*Filter, error) {
	if strings.TrimSpace(filterStr) == "" {
		return nil, nil
	}
	decls, err := declarations(fields)
	if err != nil {
		return nil, err
	}
	parsed, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return nil, fmt.Errorf("parse filter: %w", err)
	}
	if parsed.CheckedExpr == nil || parsed.CheckedExpr.Expr == nil {
		return nil, nil
	}
	return &Filter{source: filterStr, root: parsed.CheckedExpr.Expr}, nil
}

func declarations(fields Fields) (*filtering.Declarations, error) {
	opts := []filtering.DeclarationOption{filtering.DeclareStandardFunctions()}
	for name, kind := range fields {
		switch kind {
		case FieldString:
			opts = append(opts, filtering.DeclareIdent(name, filtering.TypeString))
		case FieldInt:
			opts = append(opts, filtering.DeclareIdent(name, filtering.TypeInt))
		default:
			return nil, fmt.Errorf("unsupported field type %q for %s", kind, name)
		}
	}
	return filtering.NewDeclarations(opts...)
}
