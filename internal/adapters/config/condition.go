package config

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/zerr"
)

// conditions evaluates `when` expressions against the environment.
// Compiled programs are reused for identical sources.
type conditions struct {
	vars     map[string]any
	programs map[string]*vm.Program
}

func newConditions(envName string, env map[string]string) *conditions {
	return &conditions{
		vars: map[string]any{
			"env":  envName,
			"vars": env,
		},
		programs: make(map[string]*vm.Program),
	}
}

// eval reports whether the expression holds. An empty expression always holds.
func (c *conditions) eval(when string) (bool, error) {
	if when == "" {
		return true, nil
	}

	program, ok := c.programs[when]
	if !ok {
		var err error
		program, err = expr.Compile(when, expr.Env(c.vars), expr.AsBool())
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, domain.ErrInvalidCondition.Error()), "when", when)
		}
		c.programs[when] = program
	}

	out, err := expr.Run(program, c.vars)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrInvalidCondition.Error()), "when", when)
	}
	b, ok := out.(bool)
	if !ok {
		return false, zerr.With(domain.ErrInvalidCondition, "when", when)
	}
	return b, nil
}
