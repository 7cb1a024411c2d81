package draftschema

import (
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-formdef/pkg/model"
)

// fieldTypeByToken maps lower-cased persisted type tokens to canonical field
// types. "multi_select" is a historical synonym for "multiselect"; both read
// to the same canonical type and only "multiselect" is ever written back.
var fieldTypeByToken = map[string]model.FieldType{
	"text":         model.FieldTypeShortText,
	"textarea":     model.FieldTypeLongText,
	"email":        model.FieldTypeEmail,
	"phone":        model.FieldTypePhone,
	"number":       model.FieldTypeNumber,
	"select":       model.FieldTypeSingleSelect,
	"multiselect":  model.FieldTypeMultiSelect,
	"multi_select": model.FieldTypeMultiSelect,
	"checkbox":     model.FieldTypeCheckbox,
	"date":         model.FieldTypeDate,
	"file_upload":  model.FieldTypeFileUpload,
	"info_text":    model.FieldTypeInfoText,
}

var tokenByFieldType = map[model.FieldType]string{
	model.FieldTypeShortText:    "text",
	model.FieldTypeLongText:     "textarea",
	model.FieldTypeEmail:        "email",
	model.FieldTypePhone:        "phone",
	model.FieldTypeNumber:       "number",
	model.FieldTypeSingleSelect: "select",
	model.FieldTypeMultiSelect:  "multiselect",
	model.FieldTypeCheckbox:     "checkbox",
	model.FieldTypeDate:         "date",
	model.FieldTypeFileUpload:   "file_upload",
	model.FieldTypeInfoText:     "info_text",
}

// fieldTypeFromToken resolves a persisted type token. Unknown and missing
// tokens default to short text rather than failing; older documents carry
// tokens this table never listed and the field is still worth keeping.
func fieldTypeFromToken(token string) model.FieldType {
	if typ, ok := fieldTypeByToken[strings.ToLower(strings.TrimSpace(token))]; ok {
		return typ
	}
	return model.FieldTypeShortText
}

func fieldTypeToken(typ model.FieldType) string {
	if token, ok := tokenByFieldType[typ]; ok {
		return token
	}
	return "text"
}

func newID() string {
	return uuid.NewString()
}

// ParseField builds a canonical field from one raw field object. Validation,
// ui, and logic members are read from their sub-objects first and fall back
// to flat top-level fields for documents written before the sub-objects
// existed. Sub-blocks are attached only when at least one member is present.
func ParseField(raw any) model.FormField {
	payload, _ := asMap(raw)

	fieldID := strings.TrimSpace(readString(payload, "id"))
	if fieldID == "" {
		fieldID = newID()
	}
	key := strings.TrimSpace(readString(payload, "key"))
	if key == "" {
		key = fieldID
	}

	validation := nested(payload, "validation")
	ui := nested(payload, "ui")
	logic := nested(payload, "logic")

	field := model.FormField{
		FieldID: fieldID,
		Key:     key,
		Type:    fieldTypeFromToken(readString(payload, "type")),
		Label:   readString(payload, "label"),
	}
	if value, ok := pick(validation, payload, "required"); ok {
		field.Required = toBool(value)
	}
	if value, ok := pick(ui, payload, "placeholder"); ok {
		field.Placeholder, _ = value.(string)
	}
	if value, ok := pick(ui, payload, "description"); ok {
		field.Description, _ = value.(string)
	}
	if value, ok := pick(ui, payload, "options"); ok {
		field.Options = parseOptions(value)
	}

	field.Validation = parseValidation(validation, payload)
	field.File = parseFileConstraints(ui, payload, field.Validation)

	var show, require *model.ConditionGroup
	if value, ok := pick(logic, payload, "showWhen"); ok {
		show = ParseConditionGroup(value)
	}
	if value, ok := pick(logic, payload, "requireWhen"); ok {
		require = ParseConditionGroup(value)
	}
	if show != nil || require != nil {
		field.Logic = &model.Logic{ShowWhen: show, RequireWhen: require}
	}

	if field.Type == model.FieldTypeInfoText {
		field.Label = sanitizeInfoMarkup(field.Label)
		field.Description = sanitizeInfoMarkup(field.Description)
	}
	return field
}

func parseValidation(validation, flat map[string]any) *model.Validation {
	out := model.Validation{}
	present := false
	if value, ok := pick(validation, flat, "min"); ok {
		if number, ok := toNumber(value); ok {
			out.Min = &number
			present = true
		}
	}
	if value, ok := pick(validation, flat, "max"); ok {
		if number, ok := toNumber(value); ok {
			out.Max = &number
			present = true
		}
	}
	if value, ok := pick(validation, flat, "pattern"); ok {
		if pattern, _ := value.(string); pattern != "" {
			out.Pattern = pattern
			present = true
		}
	}
	if value, ok := pick(validation, flat, "allowedTypes"); ok {
		if types := toStringSlice(value); len(types) > 0 {
			out.AllowedTypes = types
			present = true
		}
	}
	if !present {
		return nil
	}
	return &out
}

// parseFileConstraints reads the file-specific members of the ui block.
// allowedMimeTypes falls back to validation-level allowedTypes: the two are
// the same set of accepted content types viewed from two angles.
func parseFileConstraints(ui, flat map[string]any, validation *model.Validation) *model.FileConstraints {
	out := model.FileConstraints{}
	present := false
	if value, ok := pick(ui, flat, "allowedMimeTypes"); ok {
		if types := toStringSlice(value); len(types) > 0 {
			out.AllowedMimeTypes = types
			present = true
		}
	}
	if len(out.AllowedMimeTypes) == 0 && validation != nil && len(validation.AllowedTypes) > 0 {
		out.AllowedMimeTypes = append([]string(nil), validation.AllowedTypes...)
		present = true
	}
	if value, ok := pick(ui, flat, "maxFileSizeMB"); ok {
		if number, ok := toNumber(value); ok {
			out.MaxFileSizeMB = &number
			present = true
		}
	}
	if value, ok := pick(ui, flat, "maxFiles"); ok {
		if count, ok := toInt(value); ok {
			out.MaxFiles = &count
			present = true
		}
	}
	if !present {
		return nil
	}
	return &out
}

func parseOptions(raw any) []model.Option {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	options := make([]model.Option, 0, len(list))
	for _, entry := range list {
		payload, ok := asMap(entry)
		if !ok {
			continue
		}
		option := model.Option{
			Label: readString(payload, "label"),
			Value: readString(payload, "value"),
		}
		if option.Label == "" && option.Value == "" {
			continue
		}
		if option.Value == "" {
			option.Value = option.Label
		}
		options = append(options, option)
	}
	if len(options) == 0 {
		return nil
	}
	return options
}

// SerializeField emits the canonical persisted field object. Empty
// sub-objects are omitted rather than written as {} and no member is ever
// written as null.
func SerializeField(field model.FormField) map[string]any {
	key := strings.TrimSpace(field.Key)
	if key == "" {
		key = field.FieldID
	}

	out := map[string]any{
		"id":    field.FieldID,
		"key":   key,
		"type":  fieldTypeToken(field.Type),
		"label": field.Label,
	}
	if validation := serializeValidation(field); len(validation) > 0 {
		out["validation"] = validation
	}
	if ui := serializeUI(field); len(ui) > 0 {
		out["ui"] = ui
	}
	if logic := serializeLogic(field.Logic); len(logic) > 0 {
		out["logic"] = logic
	}
	return out
}

func serializeValidation(field model.FormField) map[string]any {
	out := map[string]any{}
	if field.Required {
		out["required"] = true
	}
	var ownTypes, mimeTypes []string
	if field.Validation != nil {
		if field.Validation.Min != nil {
			out["min"] = *field.Validation.Min
		}
		if field.Validation.Max != nil {
			out["max"] = *field.Validation.Max
		}
		if field.Validation.Pattern != "" {
			out["pattern"] = field.Validation.Pattern
		}
		ownTypes = field.Validation.AllowedTypes
	}
	if field.File != nil {
		mimeTypes = field.File.AllowedMimeTypes
	}
	if merged := mergeUnique(ownTypes, mimeTypes); len(merged) > 0 {
		out["allowedTypes"] = merged
	}
	return out
}

func serializeUI(field model.FormField) map[string]any {
	out := map[string]any{}
	if field.Placeholder != "" {
		out["placeholder"] = field.Placeholder
	}
	if field.Description != "" {
		out["description"] = field.Description
	}
	if len(field.Options) > 0 {
		options := make([]any, 0, len(field.Options))
		for _, option := range field.Options {
			options = append(options, map[string]any{
				"label": option.Label,
				"value": option.Value,
			})
		}
		out["options"] = options
	}
	if field.File != nil {
		if types := mergeUnique(field.File.AllowedMimeTypes); len(types) > 0 {
			out["allowedMimeTypes"] = types
		}
		if field.File.MaxFileSizeMB != nil {
			out["maxFileSizeMB"] = *field.File.MaxFileSizeMB
		}
		if field.File.MaxFiles != nil {
			out["maxFiles"] = *field.File.MaxFiles
		}
	}
	return out
}

func serializeLogic(logic *model.Logic) map[string]any {
	if logic.Empty() {
		return nil
	}
	out := map[string]any{}
	if group := SerializeConditionGroup(logic.ShowWhen); group != nil {
		out["showWhen"] = group
	}
	if group := SerializeConditionGroup(logic.RequireWhen); group != nil {
		out["requireWhen"] = group
	}
	return out
}
