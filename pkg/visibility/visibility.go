// Package visibility defines the boundary to the runtime rule-evaluation
// engine. This module owns the structure of condition groups; deciding what
// a group means against live applicant answers happens on the other side of
// this interface.
package visibility

import "github.com/goliatone/go-formdef/pkg/model"

// Context carries the submitted answer values a group is evaluated against,
// keyed by field key, plus arbitrary caller extras such as user roles.
type Context struct {
	Values map[string]any
	Extras map[string]any
}

// Evaluator decides whether a field is shown or required. fieldKey names the
// field the group belongs to; group is never nil and never empty.
type Evaluator interface {
	Eval(fieldKey string, group *model.ConditionGroup, ctx Context) (bool, error)
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(fieldKey string, group *model.ConditionGroup, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(fieldKey string, group *model.ConditionGroup, ctx Context) (bool, error) {
	return fn(fieldKey, group, ctx)
}
