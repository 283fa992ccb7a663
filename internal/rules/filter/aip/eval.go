package aip

import (
	"cmp"
	"fmt"
	"strings"

	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Resolver returns the value of a field: a string or an int64.
type Resolver func(name string) (any, bool)

// Match evaluates the filter against resolve. A nil Filter matches.
func (f *Filter) Match(resolve Resolver) (bool, error) {
	if f == nil {
		return true, nil
	}
	return eval(f.root, resolve)
}

func eval(e *expr.Expr, resolve Resolver) (bool, error) {
	call, ok := e.GetExprKind().(*expr.Expr_CallExpr)
	if !ok {
		return false, fmt.Errorf("unsupported expression type: %T", e.GetExprKind())
	}
	args := call.CallExpr.GetArgs()

	switch fn := call.CallExpr.GetFunction(); fn {
	case "AND", "_&&_":
		return evalAll(args, resolve)
	case "OR", "_||_":
		return evalAny(args, resolve)
	case "NOT", "-":
		if len(args) != 1 {
			return false, fmt.Errorf("%s requires 1 argument", fn)
		}
		v, err := eval(args[0], resolve)
		return !v, err
	case "=", "!=", "<", "<=", ">", ">=", ":":
		return evalCompare(fn, args, resolve)
	default:
		return false, fmt.Errorf("unsupported function: %s", fn)
	}
}

func evalAll(args []*expr.Expr, resolve Resolver) (bool, error) {
	if len(args) < 2 {
		return false, fmt.Errorf("AND requires 2 arguments")
	}
	for _, arg := range args {
		v, err := eval(arg, resolve)
		if err != nil || !v {
			return false, err
		}
	}
	return true, nil
}

func evalAny(args []*expr.Expr, resolve Resolver) (bool, error) {
	if len(args) < 2 {
		return false, fmt.Errorf("OR requires 2 arguments")
	}
	for _, arg := range args {
		v, err := eval(arg, resolve)
		if err != nil {
			return false, err
		}
		if v {
			return true, nil
		}
	}
	return false, nil
}

func evalCompare(op string, args []*expr.Expr, resolve Resolver) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("%s requires 2 arguments", op)
	}
	ident, ok := args[0].GetExprKind().(*expr.Expr_IdentExpr)
	if !ok {
		return false, fmt.Errorf("expected field on the left of %s", op)
	}
	name := ident.IdentExpr.GetName()
	left, ok := resolve(name)
	if !ok {
		return false, fmt.Errorf("unknown field: %s", name)
	}
	constant, ok := args[1].GetExprKind().(*expr.Expr_ConstExpr)
	if !ok {
		return false, fmt.Errorf("expected constant on the right of %s", op)
	}

	switch l := left.(type) {
	case string:
		r, ok := constant.ConstExpr.GetConstantKind().(*expr.Constant_StringValue)
		if !ok {
			return false, fmt.Errorf("field %s expects a string", name)
		}
		if op == ":" {
			return strings.Contains(strings.ToLower(l), strings.ToLower(r.StringValue)), nil
		}
		return compareResult(op, matchString(l, r.StringValue))
	case int64:
		r, ok := constant.ConstExpr.GetConstantKind().(*expr.Constant_Int64Value)
		if !ok {
			return false, fmt.Errorf("field %s expects an integer", name)
		}
		if op == ":" {
			return l == r.Int64Value, nil
		}
		return compareResult(op, cmp.Compare(l, r.Int64Value))
	default:
		return false, fmt.Errorf("unsupported value type %T for %s", left, name)
	}
}

// matchString compares strings, treating a trailing or leading "*" on the
// pattern as a wildcard for equality.
func matchString(value, pattern string) int {
	prefix := strings.HasSuffix(pattern, "*")
	suffix := strings.HasPrefix(pattern, "*")
	core := strings.Trim(pattern, "*")
	switch {
	case prefix && suffix && strings.Contains(value, core):
		return 0
	case prefix && !suffix && strings.HasPrefix(value, core):
		return 0
	case suffix && !prefix && strings.HasSuffix(value, core):
		return 0
	}
	return cmp.Compare(value, pattern)
}

func compareResult(op string, c int) (bool, error) {
	switch op {
	case "=":
		return c == 0, nil
	case "!=":
		return c != 0, nil
	case "<":
		return c < 0, nil
	case "<=":
		return c <= 0, nil
	case ">":
		return c > 0, nil
	case ">=":
		return c >= 0, nil
	default:
		return false, fmt.Errorf("unsupported operator: %s", op)
	}
}
