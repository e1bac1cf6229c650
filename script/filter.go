package script

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/shibukawa/scriptstep"
)

// Filter selects steps with a CEL expression over the variables
// index (int), id (int), name (string), kind (string) and enabled (bool).
//
//	kind == "InsertText" && enabled
type Filter struct {
	expression string
	program    cel.Program
}

// NewFilter compiles expression. An empty expression returns nil, which
// matches every step.
func NewFilter(expression string) (*Filter, error) {
	if expression == "" {
		return nil, nil
	}

	env, err := cel.NewEnv(
		cel.Variable("index", cel.IntType),
		cel.Variable("id", cel.IntType),
		cel.Variable("name", cel.StringType),
		cel.Variable("kind", cel.StringType),
		cel.Variable("enabled", cel.BoolType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: CEL compilation error: %w", scriptstep.ErrInvalidFilter, issues.Err())
	}

	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: expression must evaluate to bool, got %s", scriptstep.ErrInvalidFilter, ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: CEL program creation error: %w", scriptstep.ErrInvalidFilter, err)
	}

	return &Filter{expression: expression, program: program}, nil
}

// Match evaluates the filter for one fragment. A nil Filter matches everything.
func (f *Filter) Match(fragment Fragment) (bool, error) {
	if f == nil {
		return true, nil
	}

	result, _, err := f.program.Eval(map[string]any{
		"index":   int64(fragment.Index),
		"id":      int64(fragment.ID),
		"name":    fragment.Name,
		"kind":    fragment.Kind.String(),
		"enabled": fragment.Enabled,
	})
	if err != nil {
		return false, fmt.Errorf("%w: CEL evaluation error: %w", scriptstep.ErrInvalidFilter, err)
	}

	matched, ok := result.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q did not yield a bool", scriptstep.ErrInvalidFilter, f.expression)
	}

	return matched, nil
}

// String returns the source expression
func (f *Filter) String() string {
	if f == nil {
		return ""
	}

	return f.expression
}
