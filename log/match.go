package log

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// matcher evaluates a compiled boolean expression against console records.
// The expression environment exposes:
//
//	level  string  canonical level name ("DEBUG" .. "CRITICAL")
//	name   string  subsystem name, empty when none
//	msg    string  message text
//
// For example: `level == "ERROR" || name == "WORKER"`.
type matcher struct {
	prog *vm.Program
	src  string
}

// compileMatch compiles a match expression. The expression must evaluate to
// a boolean.
func compileMatch(src string) (*matcher, error) {
	prog, err := expr.Compile(
		src,
		expr.Env(matchEnv("", "", "")),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile match expression: %w", err)
	}

	return &matcher{prog: prog, src: src}, nil
}

func matchEnv(level, name, msg string) map[string]any {
	return map[string]any{
		"level": level,
		"name":  name,
		"msg":   msg,
	}
}

// matches reports whether the record passes the expression. Evaluation
// errors fail open so a bad expression degrades to pass-through rather than
// silencing the console.
func (m *matcher) matches(level Level, name, msg string) bool {
	out, err := expr.Run(m.prog, matchEnv(level.String(), name, msg))
	if err != nil {
		return true
	}

	pass, ok := out.(bool)

	return !ok || pass
}
