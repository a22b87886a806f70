package record

import (
	"fmt"

	"github.com/google/cel-go/cel"
	celtypes "github.com/google/cel-go/common/types"
)

// Rule is a CEL expression that every parsed record must satisfy.
// The expression sees the variables institution (string) and amount (int).
type Rule struct {
	expr string
	prg  cel.Program
}

// NewRule compiles expr and checks that it evaluates to a bool.
func NewRule(expr string) (*Rule, error) {
	env, err := cel.NewEnv(
		cel.Variable("institution", cel.StringType),
		cel.Variable("amount", cel.IntType),
		cel.CrossTypeNumericComparisons(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("output type is not bool: %s", ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to program CEL expression: %w", err)
	}
	return &Rule{expr: expr, prg: prg}, nil
}

// Evaluate reports whether rec satisfies the rule.
func (r *Rule) Evaluate(rec Record) (bool, error) {
	out, _, err := r.prg.Eval(map[string]any{
		"institution": rec.Institution,
		"amount":      rec.Amount,
	})
	if err != nil {
		return false, fmt.Errorf("failed to evaluate record rule: %w", err)
	}
	return out.Type() == celtypes.BoolType && out.Value() == true, nil
}

func (r *Rule) String() string {
	return r.expr
}
