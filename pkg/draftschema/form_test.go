package draftschema

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdef/pkg/model"
)

func sampleRawSections() []any {
	return []any{
		map[string]any{
			"id":          "s1",
			"title":       "About you",
			"description": "Tell us who you are",
			"fields": []any{
				map[string]any{
					"id":    "f1",
					"key":   "name",
					"type":  "text",
					"label": "Full name",
					"validation": map[string]any{
						"required": true,
						"min":      float64(2),
						"max":      float64(80),
					},
				},
				map[string]any{
					"id":    "f2",
					"key":   "diet",
					"type":  "multi_select",
					"label": "Diet",
					"ui": map[string]any{
						"options": []any{
							map[string]any{"label": "Vegan", "value": "vegan"},
							map[string]any{"label": "Halal", "value": "halal"},
						},
					},
				},
				map[string]any{
					"id":    "f3",
					"key":   "dietDetail",
					"type":  "textarea",
					"label": "Details",
					"logic": map[string]any{
						"showWhen": map[string]any{
							"mode": "any",
							"rules": []any{
								map[string]any{"fieldKey": "diet", "operator": "contains", "value": "vegan"},
							},
						},
					},
				},
			},
		},
	}
}

func TestParseDocument_LegacyPagesEquivalence(t *testing.T) {
	fromSections := ParseDocument(map[string]any{"sections": sampleRawSections()})
	fromPages := ParseDocument(map[string]any{"pages": sampleRawSections()})

	if diff := cmp.Diff(fromSections, fromPages); diff != "" {
		t.Fatalf("pages and sections must parse identically (-sections +pages):\n%s", diff)
	}
	if len(fromSections) != 1 || len(fromSections[0].Fields) != 3 {
		t.Fatalf("unexpected parse result: %+v", fromSections)
	}
}

func TestParseDocument_MissingSectionsIsEmptyNotError(t *testing.T) {
	if sections := ParseDocument(map[string]any{"title": "no sections"}); sections != nil {
		t.Fatalf("expected zero sections, got %+v", sections)
	}
	if sections := ParseDocument(nil); sections != nil {
		t.Fatalf("expected zero sections for nil payload, got %+v", sections)
	}
}

func TestParseDocument_FieldOrderPreserved(t *testing.T) {
	sections := ParseDocument(map[string]any{"sections": sampleRawSections()})
	keys := make([]string, 0, 3)
	for _, field := range sections[0].Fields {
		keys = append(keys, field.Key)
	}
	if diff := cmp.Diff([]string{"name", "diet", "dietDetail"}, keys); diff != "" {
		t.Fatalf("field order changed (-want +got):\n%s", diff)
	}
}

func TestSerializeDocument_DropsEmptyDescription(t *testing.T) {
	sections := []model.FormSection{{ID: "s1", Title: "Untitled"}}
	out := SerializeDocument(sections)
	list := out["sections"].([]any)
	entry := list[0].(map[string]any)
	if _, ok := entry["description"]; ok {
		t.Fatalf("empty description must be dropped: %v", entry)
	}
	if _, ok := out["pages"]; ok {
		t.Fatalf("legacy pages key must never be written")
	}
}

func TestRoundTrip_SerializationIsIdempotent(t *testing.T) {
	sections := ParseDocument(map[string]any{"pages": sampleRawSections()})

	first, err := MarshalBytes(sections)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	reparsed, err := ParseBytes(first)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	second, err := MarshalBytes(reparsed)
	if err != nil {
		t.Fatalf("marshal again: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("serialization not idempotent:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestParseBytes_InvalidJSON(t *testing.T) {
	if _, err := ParseBytes([]byte("{not json")); err == nil {
		t.Fatalf("expected an error for invalid JSON")
	}
}

func TestParseYAML_MatchesJSON(t *testing.T) {
	yamlDoc := []byte(`
sections:
  - id: s1
    title: About you
    fields:
      - id: f1
        key: name
        type: text
        label: Full name
`)
	fromYAML, err := ParseYAML(yamlDoc)
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	fromJSON, err := ParseBytes([]byte(`{"sections":[{"id":"s1","title":"About you","fields":[{"id":"f1","key":"name","type":"text","label":"Full name"}]}]}`))
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Fatalf("yaml and json must parse identically (-json +yaml):\n%s", diff)
	}
}
