package draftschema

import (
	"testing"

	"github.com/goliatone/go-formdef/pkg/model"
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
		want    model.Status
	}{
		{"explicit published", map[string]any{"status": "published"}, model.StatusPublished},
		{"explicit published upper", map[string]any{"status": "PUBLISHED"}, model.StatusPublished},
		{"stale draft status with versions", map[string]any{"status": "DRAFT", "latestVersion": float64(2)}, model.StatusPublished},
		{"draft with zero versions", map[string]any{"status": "draft", "latestVersion": float64(0)}, model.StatusDraft},
		{"version counter as string", map[string]any{"latestVersion": "3"}, model.StatusPublished},
		{"empty record", map[string]any{}, model.StatusDraft},
		{"nil record", nil, model.StatusDraft},
	}
	for _, tc := range cases {
		if got := DeriveStatus(tc.payload); got != tc.want {
			t.Fatalf("%s: DeriveStatus = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestParseRecord_SchemaMember(t *testing.T) {
	form := ParseRecord(map[string]any{
		"id":            "form-1",
		"title":         "Application",
		"latestVersion": float64(1),
		"schema": map[string]any{
			"sections": []any{
				map[string]any{"id": "s1", "title": "Basics", "fields": []any{}},
			},
		},
	})

	if form.ID != "form-1" || form.Title != "Application" {
		t.Fatalf("identity not read: %+v", form)
	}
	if form.Status != model.StatusPublished {
		t.Fatalf("status = %s, want PUBLISHED", form.Status)
	}
	if len(form.Sections) != 1 || form.Sections[0].ID != "s1" {
		t.Fatalf("schema member not parsed: %+v", form.Sections)
	}
}

func TestParseRecord_LegacyFlatRecord(t *testing.T) {
	form := ParseRecord(map[string]any{
		"formId": "form-2",
		"name":   "Old Form",
		"pages": []any{
			map[string]any{"id": "s1", "title": "Page one", "fields": []any{}},
		},
	})

	if form.ID != "form-2" || form.Title != "Old Form" {
		t.Fatalf("legacy identity not read: %+v", form)
	}
	if form.Status != model.StatusDraft {
		t.Fatalf("status = %s, want DRAFT", form.Status)
	}
	if len(form.Sections) != 1 {
		t.Fatalf("legacy pages not parsed from the record itself: %+v", form.Sections)
	}
}

func TestSerializeRecord(t *testing.T) {
	form := model.FormDefinition{
		ID:     "form-1",
		Title:  "Application",
		Status: model.StatusPublished,
		Sections: []model.FormSection{
			{ID: "s1", Title: "Basics"},
		},
	}
	out := SerializeRecord(form)
	if out["id"] != "form-1" || out["status"] != "PUBLISHED" {
		t.Fatalf("unexpected record: %v", out)
	}
	schema, _ := out["schema"].(map[string]any)
	if schema == nil {
		t.Fatalf("record must embed the canonical schema document")
	}
	if _, ok := schema["sections"]; !ok {
		t.Fatalf("schema document missing sections: %v", schema)
	}
}
