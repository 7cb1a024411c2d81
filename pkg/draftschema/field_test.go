package draftschema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdef/pkg/model"
)

func TestParseField_KeyFallsBackToID(t *testing.T) {
	field := ParseField(map[string]any{"id": "f1", "label": "Name"})
	if field.FieldID != "f1" {
		t.Fatalf("fieldID = %q, want f1", field.FieldID)
	}
	if field.Key != "f1" {
		t.Fatalf("key = %q, want f1", field.Key)
	}
	if field.Type != model.FieldTypeShortText {
		t.Fatalf("missing type must default to short text, got %s", field.Type)
	}

	out := SerializeField(field)
	if out["id"] != "f1" || out["key"] != "f1" {
		t.Fatalf("round trip lost the key fallback: %v", out)
	}
}

func TestParseField_GeneratesMissingID(t *testing.T) {
	field := ParseField(map[string]any{"label": "Name"})
	if field.FieldID == "" {
		t.Fatalf("expected a generated field id")
	}
	if field.Key != field.FieldID {
		t.Fatalf("key %q must default to the generated id %q", field.Key, field.FieldID)
	}
}

func TestParseField_MultiselectSynonym(t *testing.T) {
	for _, token := range []string{"multi_select", "multiselect", "MULTISELECT"} {
		field := ParseField(map[string]any{"id": "f1", "type": token})
		if field.Type != model.FieldTypeMultiSelect {
			t.Fatalf("type token %q parsed to %s", token, field.Type)
		}
		if out := SerializeField(field); out["type"] != "multiselect" {
			t.Fatalf("type token %q serialized to %v", token, out["type"])
		}
	}
}

func TestParseField_UnknownTypeDefaultsToText(t *testing.T) {
	field := ParseField(map[string]any{"id": "f1", "type": "hologram"})
	if field.Type != model.FieldTypeShortText {
		t.Fatalf("unknown type parsed to %s, want short text", field.Type)
	}
}

func TestParseField_FlatLegacyFallbacks(t *testing.T) {
	field := ParseField(map[string]any{
		"id":          "f1",
		"type":        "text",
		"min":         "2",
		"max":         float64(10),
		"pattern":     "^[a-z]+$",
		"placeholder": "type here",
		"required":    true,
		"showWhen": map[string]any{
			"rules": []any{map[string]any{"fieldKey": "other", "operator": "exists"}},
		},
	})

	if field.Validation == nil {
		t.Fatalf("expected a validation block")
	}
	if field.Validation.Min == nil || *field.Validation.Min != 2 {
		t.Fatalf("numeric string min not coerced: %+v", field.Validation)
	}
	if field.Validation.Max == nil || *field.Validation.Max != 10 {
		t.Fatalf("max not read: %+v", field.Validation)
	}
	if field.Validation.Pattern != "^[a-z]+$" {
		t.Fatalf("pattern not read: %+v", field.Validation)
	}
	if field.Placeholder != "type here" {
		t.Fatalf("flat placeholder not read: %q", field.Placeholder)
	}
	if !field.Required {
		t.Fatalf("flat required not read")
	}
	if field.Logic == nil || field.Logic.ShowWhen == nil {
		t.Fatalf("flat showWhen not read: %+v", field.Logic)
	}
}

func TestParseField_SubObjectWinsOverFlat(t *testing.T) {
	field := ParseField(map[string]any{
		"id":         "f1",
		"min":        float64(1),
		"validation": map[string]any{"min": float64(5)},
	})
	if field.Validation == nil || field.Validation.Min == nil || *field.Validation.Min != 5 {
		t.Fatalf("validation sub-object must win over the flat field: %+v", field.Validation)
	}
}

func TestParseField_NonFiniteNumbersTreatedAsAbsent(t *testing.T) {
	field := ParseField(map[string]any{
		"id":         "f1",
		"validation": map[string]any{"min": "not a number"},
	})
	if field.Validation != nil {
		t.Fatalf("unreadable members must not materialize the block: %+v", field.Validation)
	}
}

func TestParseField_AllBlocksAbsent(t *testing.T) {
	field := ParseField(map[string]any{"id": "f1", "type": "text", "label": "Name"})
	if field.Validation != nil || field.File != nil || field.Logic != nil {
		t.Fatalf("no sub-block should be set: %+v", field)
	}
}

func TestParseField_MimeTypesFallBackToAllowedTypes(t *testing.T) {
	field := ParseField(map[string]any{
		"id":         "f1",
		"type":       "file_upload",
		"validation": map[string]any{"allowedTypes": []any{"application/pdf"}},
	})
	if field.File == nil {
		t.Fatalf("expected a file block from the allowedTypes fallback")
	}
	if len(field.File.AllowedMimeTypes) != 1 || field.File.AllowedMimeTypes[0] != "application/pdf" {
		t.Fatalf("unexpected mime types: %v", field.File.AllowedMimeTypes)
	}
}

func TestSerializeField_AllowedTypesMerge(t *testing.T) {
	size := 5.0
	field := model.FormField{
		FieldID:    "f1",
		Key:        "cv",
		Type:       model.FieldTypeFileUpload,
		Label:      "CV",
		Validation: &model.Validation{AllowedTypes: []string{"pdf"}},
		File: &model.FileConstraints{
			AllowedMimeTypes: []string{"pdf", "png"},
			MaxFileSizeMB:    &size,
		},
	}

	out := SerializeField(field)
	validation, _ := out["validation"].(map[string]any)
	if validation == nil {
		t.Fatalf("expected a validation object: %v", out)
	}
	if diff := cmp.Diff([]string{"pdf", "png"}, validation["allowedTypes"]); diff != "" {
		t.Fatalf("allowedTypes merge (-want +got):\n%s", diff)
	}
	ui, _ := out["ui"].(map[string]any)
	if ui == nil || ui["maxFileSizeMB"] != 5.0 {
		t.Fatalf("file constraints missing from ui: %v", out)
	}
}

func TestSerializeField_KeyTrimmedWithIDFallback(t *testing.T) {
	field := model.FormField{FieldID: "f1", Key: "   ", Type: model.FieldTypeShortText}
	if out := SerializeField(field); out["key"] != "f1" {
		t.Fatalf("blank key must fall back to the field id, got %v", out["key"])
	}
	field.Key = "  name  "
	if out := SerializeField(field); out["key"] != "name" {
		t.Fatalf("key must be trimmed, got %v", out["key"])
	}
}

func TestSerializeField_EmptyLogicOmitted(t *testing.T) {
	field := model.FormField{
		FieldID: "f1",
		Key:     "name",
		Type:    model.FieldTypeShortText,
		Logic:   &model.Logic{ShowWhen: &model.ConditionGroup{Mode: model.ConditionModeAll}},
	}
	out := SerializeField(field)
	if _, ok := out["logic"]; ok {
		t.Fatalf("logic with only empty groups must be omitted: %v", out)
	}
}

func TestParseField_InfoTextSanitized(t *testing.T) {
	field := ParseField(map[string]any{
		"id":    "f1",
		"type":  "info_text",
		"label": `<em>Welcome</em><img src="x" onerror="boom">`,
	})
	if field.Label != "<em>Welcome</em>" {
		t.Fatalf("info-text markup not sanitized: %q", field.Label)
	}
	if strings.Contains(field.Label, "img") {
		t.Fatalf("unexpected element survived: %q", field.Label)
	}
}
