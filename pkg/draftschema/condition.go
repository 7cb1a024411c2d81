package draftschema

import (
	"strings"

	"github.com/goliatone/go-formdef/pkg/model"
)

// ParseConditionGroup builds a condition group from arbitrary raw data.
// Rules may live under "rules" or the legacy "conditions" key, and a rule's
// target under "fieldKey" or the legacy "key". Entries without a usable
// field key are dropped silently; if nothing survives the group itself is
// dropped, because a group with zero rules is not representable.
func ParseConditionGroup(raw any) *model.ConditionGroup {
	payload, ok := asMap(raw)
	if !ok {
		return nil
	}

	list, _ := payload["rules"].([]any)
	if list == nil {
		list, _ = payload["conditions"].([]any)
	}

	rules := make([]model.ConditionRule, 0, len(list))
	for _, entry := range list {
		rule, ok := parseConditionRule(entry)
		if !ok {
			continue
		}
		rules = append(rules, rule)
	}
	if len(rules) == 0 {
		return nil
	}

	mode := model.ConditionModeAll
	if strings.EqualFold(strings.TrimSpace(readString(payload, "mode")), "any") {
		mode = model.ConditionModeAny
	}
	return &model.ConditionGroup{Mode: mode, Rules: rules}
}

func parseConditionRule(raw any) (model.ConditionRule, bool) {
	payload, ok := asMap(raw)
	if !ok {
		return model.ConditionRule{}, false
	}

	fieldKey := strings.TrimSpace(readString(payload, "fieldKey"))
	if fieldKey == "" {
		fieldKey = strings.TrimSpace(readString(payload, "key"))
	}
	if fieldKey == "" {
		return model.ConditionRule{}, false
	}

	rule := model.ConditionRule{
		FieldKey: fieldKey,
		Operator: NormalizeOperator(readString(payload, "operator")),
	}
	if rule.Operator.NeedsValue() {
		if value, ok := toStringValue(payload["value"]); ok {
			rule.Value = &value
		}
	}
	return rule, true
}

// SerializeConditionGroup emits the canonical persisted shape. Only the
// canonical key names appear on write; "value" is omitted entirely whenever
// the operator takes none, even if a stale value is still set on the rule.
func SerializeConditionGroup(group *model.ConditionGroup) map[string]any {
	if group.Empty() {
		return nil
	}

	rules := make([]any, 0, len(group.Rules))
	for _, rule := range group.Rules {
		entry := map[string]any{
			"fieldKey": rule.FieldKey,
			"operator": string(rule.Operator),
		}
		if rule.Operator.NeedsValue() && rule.Value != nil {
			entry["value"] = *rule.Value
		}
		rules = append(rules, entry)
	}

	mode := "all"
	if group.Mode == model.ConditionModeAny {
		mode = "any"
	}
	return map[string]any{"mode": mode, "rules": rules}
}
