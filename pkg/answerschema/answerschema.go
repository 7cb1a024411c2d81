// Package answerschema exports a canonical form definition as an OpenAPI
// schema describing valid answer payloads. Downstream services that accept
// submissions validate against it instead of re-deriving constraints from
// the definition document.
package answerschema

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formdef/pkg/model"
)

// Build produces an object schema with one property per answerable field,
// keyed by field key. Info-text fields collect no answers and are skipped.
// Only unconditionally required fields land in the required list;
// conditional requiredness depends on live answers and stays with the
// rule-evaluation engine.
func Build(form model.FormDefinition) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	for _, section := range form.Sections {
		for _, field := range section.Fields {
			if field.Type == model.FieldTypeInfoText {
				continue
			}
			out.WithProperty(field.Key, fieldSchema(field))
			if field.Required && field.Logic == nil {
				out.Required = append(out.Required, field.Key)
			}
		}
	}
	return out
}

// MarshalJSON renders the answers schema as a standalone JSON document.
func MarshalJSON(form model.FormDefinition) ([]byte, error) {
	payload, err := json.Marshal(Build(form))
	if err != nil {
		return nil, fmt.Errorf("answerschema: marshal: %w", err)
	}
	return payload, nil
}

func fieldSchema(field model.FormField) *openapi3.Schema {
	var out *openapi3.Schema
	switch field.Type {
	case model.FieldTypeNumber:
		out = openapi3.NewFloat64Schema()
		applyNumericBounds(out, field.Validation)
	case model.FieldTypeCheckbox:
		out = openapi3.NewBoolSchema()
	case model.FieldTypeSingleSelect:
		out = openapi3.NewStringSchema().WithEnum(optionValues(field.Options)...)
	case model.FieldTypeMultiSelect:
		items := openapi3.NewStringSchema().WithEnum(optionValues(field.Options)...)
		out = openapi3.NewArraySchema().WithItems(items)
	case model.FieldTypeDate:
		out = openapi3.NewStringSchema().WithFormat("date")
	case model.FieldTypeEmail:
		out = openapi3.NewStringSchema().WithFormat("email")
		applyTextBounds(out, field.Validation)
	case model.FieldTypeFileUpload:
		out = openapi3.NewStringSchema().WithFormat("binary")
	default:
		// shortText, longText, phone, and anything future collect plain text.
		out = openapi3.NewStringSchema()
		applyTextBounds(out, field.Validation)
	}
	if field.Description != "" {
		out.Description = field.Description
	}
	return out
}

func applyTextBounds(out *openapi3.Schema, validation *model.Validation) {
	if validation == nil {
		return
	}
	if validation.Min != nil {
		out.WithMinLength(int64(*validation.Min))
	}
	if validation.Max != nil {
		out.WithMaxLength(int64(*validation.Max))
	}
	if validation.Pattern != "" {
		out.WithPattern(validation.Pattern)
	}
}

func applyNumericBounds(out *openapi3.Schema, validation *model.Validation) {
	if validation == nil {
		return
	}
	if validation.Min != nil {
		out.WithMin(*validation.Min)
	}
	if validation.Max != nil {
		out.WithMax(*validation.Max)
	}
}

func optionValues(options []model.Option) []any {
	values := make([]any, 0, len(options))
	for _, option := range options {
		values = append(values, option.Value)
	}
	return values
}
