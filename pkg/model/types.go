package model

// Status marks whether a form definition has a published version.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
)

// FieldType enumerates the canonical field kinds an editor can place on a
// form. Values are canonical identifiers, not persisted type tokens; the
// draftschema package owns the mapping between the two.
type FieldType string

const (
	FieldTypeShortText    FieldType = "shortText"
	FieldTypeLongText     FieldType = "longText"
	FieldTypeEmail        FieldType = "email"
	FieldTypePhone        FieldType = "phone"
	FieldTypeNumber       FieldType = "number"
	FieldTypeSingleSelect FieldType = "singleSelect"
	FieldTypeMultiSelect  FieldType = "multiSelect"
	FieldTypeCheckbox     FieldType = "checkbox"
	FieldTypeDate         FieldType = "date"
	FieldTypeFileUpload   FieldType = "fileUpload"
	FieldTypeInfoText     FieldType = "infoText"
)

// ConditionMode combines the rules of a group.
type ConditionMode string

const (
	ConditionModeAll ConditionMode = "ALL"
	ConditionModeAny ConditionMode = "ANY"
)

// Operator is one of the twelve canonical comparison operators a condition
// rule can carry. Raw documents may spell these many ways; see
// draftschema.NormalizeOperator.
type Operator string

const (
	OperatorEquals         Operator = "equals"
	OperatorNotEquals      Operator = "notEquals"
	OperatorContains       Operator = "contains"
	OperatorNotContains    Operator = "notContains"
	OperatorGreaterThan    Operator = "greaterThan"
	OperatorGreaterOrEqual Operator = "greaterOrEqual"
	OperatorLessThan       Operator = "lessThan"
	OperatorLessOrEqual    Operator = "lessOrEqual"
	OperatorExists         Operator = "exists"
	OperatorNotExists      Operator = "notExists"
	OperatorInList         Operator = "inList"
	OperatorNotInList      Operator = "notInList"
)

// ConditionRule compares another field's answer (addressed by its key, never
// its internal id) against a value. Value is nil exactly when the operator
// does not take one (exists/notExists).
type ConditionRule struct {
	FieldKey string   `json:"fieldKey"`
	Operator Operator `json:"operator"`
	Value    *string  `json:"value,omitempty"`
}

// ConditionGroup combines one or more rules with ALL/ANY semantics. A group
// with zero rules is not representable; parsers drop it and editors must
// remove it when the last rule goes away.
type ConditionGroup struct {
	Mode  ConditionMode   `json:"mode"`
	Rules []ConditionRule `json:"rules"`
}

// Logic holds a field's conditional visibility and requiredness. At least
// one of the two groups is set whenever the block itself is.
type Logic struct {
	ShowWhen    *ConditionGroup `json:"showWhen,omitempty"`
	RequireWhen *ConditionGroup `json:"requireWhen,omitempty"`
}

// Validation carries per-field constraints. Min/Max bound character length
// for text kinds and numeric value for number fields.
type Validation struct {
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	Pattern      string   `json:"pattern,omitempty"`
	AllowedTypes []string `json:"allowedTypes,omitempty"`
}

// FileConstraints applies to file-upload fields. AllowedMimeTypes falls back
// to Validation.AllowedTypes when unset; the two name the same set of
// accepted content types from different angles.
type FileConstraints struct {
	AllowedMimeTypes []string `json:"allowedMimeTypes,omitempty"`
	MaxFileSizeMB    *float64 `json:"maxFileSizeMB,omitempty"`
	MaxFiles         *int     `json:"maxFiles,omitempty"`
}

// Option is a selectable choice on single/multi-select fields.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FormField is a single question (or static info block) on a form.
//
// FieldID is assigned once and never edited. Key is the externally meaningful
// identifier: submitted answers and other fields' condition rules refer to
// it, and it defaults to FieldID until an editor changes it.
type FormField struct {
	FieldID     string           `json:"fieldId"`
	Key         string           `json:"key"`
	Type        FieldType        `json:"type"`
	Label       string           `json:"label"`
	Required    bool             `json:"required"`
	Placeholder string           `json:"placeholder,omitempty"`
	Description string           `json:"description,omitempty"`
	Options     []Option         `json:"options,omitempty"`
	Validation  *Validation      `json:"validation,omitempty"`
	File        *FileConstraints `json:"file,omitempty"`
	Logic       *Logic           `json:"logic,omitempty"`
}

// FormSection groups an ordered run of fields. Order is presentation order
// and survives round trips.
type FormSection struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Fields      []FormField `json:"fields"`
}

// FormDefinition is the canonical in-memory form a storage record parses
// into and an editor mutates. It becomes immutable once a version is
// published; publishing itself happens outside this module.
type FormDefinition struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Status   Status        `json:"status"`
	Sections []FormSection `json:"sections"`
}
