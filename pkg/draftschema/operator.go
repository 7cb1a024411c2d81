package draftschema

import (
	"strings"

	"github.com/goliatone/go-formdef/pkg/model"
)

// operatorAliases maps squashed legacy spellings and comparison symbols to
// canonical operators. Keys are lower-cased with spaces, hyphens and
// underscores removed, so "not_equals", "Not Equals" and "notEquals" all hit
// the same entry.
var operatorAliases = map[string]model.Operator{
	"equals":             model.OperatorEquals,
	"equal":              model.OperatorEquals,
	"eq":                 model.OperatorEquals,
	"==":                 model.OperatorEquals,
	"=":                  model.OperatorEquals,
	"is":                 model.OperatorEquals,
	"notequals":          model.OperatorNotEquals,
	"notequal":           model.OperatorNotEquals,
	"neq":                model.OperatorNotEquals,
	"ne":                 model.OperatorNotEquals,
	"!=":                 model.OperatorNotEquals,
	"<>":                 model.OperatorNotEquals,
	"isnot":              model.OperatorNotEquals,
	"contains":           model.OperatorContains,
	"includes":           model.OperatorContains,
	"like":               model.OperatorContains,
	"notcontains":        model.OperatorNotContains,
	"excludes":           model.OperatorNotContains,
	"notlike":            model.OperatorNotContains,
	"greaterthan":        model.OperatorGreaterThan,
	"gt":                 model.OperatorGreaterThan,
	">":                  model.OperatorGreaterThan,
	"greaterorequal":     model.OperatorGreaterOrEqual,
	"greaterthanorequal": model.OperatorGreaterOrEqual,
	"gte":                model.OperatorGreaterOrEqual,
	">=":                 model.OperatorGreaterOrEqual,
	"lessthan":           model.OperatorLessThan,
	"lt":                 model.OperatorLessThan,
	"<":                  model.OperatorLessThan,
	"lessorequal":        model.OperatorLessOrEqual,
	"lessthanorequal":    model.OperatorLessOrEqual,
	"lte":                model.OperatorLessOrEqual,
	"<=":                 model.OperatorLessOrEqual,
	"exists":             model.OperatorExists,
	"present":            model.OperatorExists,
	"isset":              model.OperatorExists,
	"notexists":          model.OperatorNotExists,
	"absent":             model.OperatorNotExists,
	"missing":            model.OperatorNotExists,
	"empty":              model.OperatorNotExists,
	"inlist":             model.OperatorInList,
	"in":                 model.OperatorInList,
	"oneof":              model.OperatorInList,
	"notinlist":          model.OperatorNotInList,
	"notin":              model.OperatorNotInList,
	"noneof":             model.OperatorNotInList,
}

var operatorSquasher = strings.NewReplacer(" ", "", "-", "", "_", "")

// NormalizeOperator resolves any accepted operator spelling to one of the
// twelve canonical operators. Unknown tokens fail open to equals: legacy
// documents carry operators this code never shipped, and refusing the rule
// would drop logic an editor still wants to see.
func NormalizeOperator(raw string) model.Operator {
	token := operatorSquasher.Replace(strings.ToLower(strings.TrimSpace(raw)))
	if op, ok := operatorAliases[token]; ok {
		return op
	}
	return model.OperatorEquals
}
