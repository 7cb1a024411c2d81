package model

// FieldKeys returns every field key in presentation order. Keys are not
// guaranteed unique; duplicates are reported by the validation package, not
// suppressed here.
func (f *FormDefinition) FieldKeys() []string {
	if f == nil {
		return nil
	}
	var keys []string
	for _, section := range f.Sections {
		for _, field := range section.Fields {
			keys = append(keys, field.Key)
		}
	}
	return keys
}

// FieldByKey returns the first field carrying the given key.
func (f *FormDefinition) FieldByKey(key string) (*FormField, bool) {
	if f == nil {
		return nil, false
	}
	for si := range f.Sections {
		fields := f.Sections[si].Fields
		for fi := range fields {
			if fields[fi].Key == key {
				return &fields[fi], true
			}
		}
	}
	return nil, false
}

// NeedsValue reports whether the operator takes a comparison value. Only
// exists/notExists test bare presence.
func (op Operator) NeedsValue() bool {
	switch op {
	case OperatorExists, OperatorNotExists:
		return false
	default:
		return true
	}
}

// Empty reports whether the group carries no rules. Empty groups must never
// be persisted.
func (g *ConditionGroup) Empty() bool {
	return g == nil || len(g.Rules) == 0
}

// Empty reports whether neither group is set.
func (l *Logic) Empty() bool {
	return l == nil || (l.ShowWhen.Empty() && l.RequireWhen.Empty())
}
