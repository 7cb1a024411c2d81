// Package validation layers the structural checks the forgiving parser
// deliberately skips. The parser never rejects a document; an editing
// surface runs this pass over the assembled definition before trusting it
// for evaluation, and re-runs it whenever a field key changes or a field is
// deleted.
package validation

import (
	"fmt"

	"github.com/goliatone/go-formdef/pkg/model"
)

// Issue reports one structural problem with optional location metadata.
type Issue struct {
	Section string `json:"section,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures validation outcomes for editor previews.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// ValidateDefinition checks cross-field rule targets, duplicate keys, and
// value/operator agreement across the whole definition.
func ValidateDefinition(form *model.FormDefinition) Result {
	result := Result{Valid: true}
	if form == nil {
		return result
	}

	keyCount := make(map[string]int)
	for _, key := range form.FieldKeys() {
		keyCount[key]++
	}

	for _, section := range form.Sections {
		for _, field := range section.Fields {
			if keyCount[field.Key] > 1 {
				result.add(section.ID, field.Key, fmt.Sprintf("field key %q is used by %d fields; answers and rule targets are ambiguous", field.Key, keyCount[field.Key]))
			}
			if optionless(field) {
				result.add(section.ID, field.Key, fmt.Sprintf("%s field has no options", field.Type))
			}
			checkLogic(&result, section.ID, field, keyCount)
		}
	}
	return result
}

func optionless(field model.FormField) bool {
	switch field.Type {
	case model.FieldTypeSingleSelect, model.FieldTypeMultiSelect:
		return len(field.Options) == 0
	default:
		return false
	}
}

func checkLogic(result *Result, sectionID string, field model.FormField, keyCount map[string]int) {
	if field.Logic == nil {
		return
	}
	if field.Logic.Empty() {
		result.add(sectionID, field.Key, "logic block has no condition groups")
		return
	}
	checkGroup(result, sectionID, field, "showWhen", field.Logic.ShowWhen, keyCount)
	checkGroup(result, sectionID, field, "requireWhen", field.Logic.RequireWhen, keyCount)
}

func checkGroup(result *Result, sectionID string, field model.FormField, name string, group *model.ConditionGroup, keyCount map[string]int) {
	if group == nil {
		return
	}
	if group.Empty() {
		result.add(sectionID, field.Key, name+" group has no rules")
		return
	}
	for _, rule := range group.Rules {
		switch {
		case rule.FieldKey == field.Key:
			result.add(sectionID, field.Key, name+" rule references its own field")
		case keyCount[rule.FieldKey] == 0:
			result.add(sectionID, field.Key, fmt.Sprintf("%s rule references unknown field key %q", name, rule.FieldKey))
		}
		if rule.Operator.NeedsValue() && rule.Value == nil {
			result.add(sectionID, field.Key, fmt.Sprintf("%s rule on %q needs a value for operator %s", name, rule.FieldKey, rule.Operator))
		}
		if !rule.Operator.NeedsValue() && rule.Value != nil {
			result.add(sectionID, field.Key, fmt.Sprintf("%s rule on %q carries a value but operator %s takes none", name, rule.FieldKey, rule.Operator))
		}
	}
}

func (r *Result) add(sectionID, fieldKey, message string) {
	r.Valid = false
	r.Issues = append(r.Issues, Issue{Section: sectionID, Field: fieldKey, Message: message})
}

// DropOrphanRules removes rules that target a missing field or the rule's
// own field, then collapses any group or logic block left empty. Editors
// call it after a referenced field is deleted or renamed so orphaned rules
// are dropped instead of left dangling. Returns the number of rules removed.
func DropOrphanRules(form *model.FormDefinition) int {
	if form == nil {
		return 0
	}
	keyCount := make(map[string]int)
	for _, key := range form.FieldKeys() {
		keyCount[key]++
	}

	dropped := 0
	for si := range form.Sections {
		fields := form.Sections[si].Fields
		for fi := range fields {
			field := &fields[fi]
			if field.Logic == nil {
				continue
			}
			field.Logic.ShowWhen, dropped = pruneGroup(field.Logic.ShowWhen, field.Key, keyCount, dropped)
			field.Logic.RequireWhen, dropped = pruneGroup(field.Logic.RequireWhen, field.Key, keyCount, dropped)
			if field.Logic.Empty() {
				field.Logic = nil
			}
		}
	}
	return dropped
}

func pruneGroup(group *model.ConditionGroup, ownKey string, keyCount map[string]int, dropped int) (*model.ConditionGroup, int) {
	if group == nil {
		return nil, dropped
	}
	kept := group.Rules[:0]
	for _, rule := range group.Rules {
		if rule.FieldKey == ownKey || keyCount[rule.FieldKey] == 0 {
			dropped++
			continue
		}
		kept = append(kept, rule)
	}
	if len(kept) == 0 {
		return nil, dropped
	}
	group.Rules = kept
	return group, dropped
}
