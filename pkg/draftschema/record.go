package draftschema

import (
	"strings"

	"github.com/goliatone/go-formdef/pkg/model"
)

// DeriveStatus computes a form's status from a raw storage record. The
// record's "status" field has historically drifted out of sync with actual
// publishes, so a positive "latestVersion" counter is treated as the
// authoritative fallback signal.
func DeriveStatus(payload map[string]any) model.Status {
	if payload == nil {
		return model.StatusDraft
	}
	if strings.EqualFold(strings.TrimSpace(readString(payload, "status")), string(model.StatusPublished)) {
		return model.StatusPublished
	}
	if version, ok := toNumber(payload["latestVersion"]); ok && version > 0 {
		return model.StatusPublished
	}
	return model.StatusDraft
}

// ParseRecord builds a full canonical definition from a raw storage record.
// The schema document is read from the "schema" member when present;
// otherwise the record itself is treated as the document, which is how the
// oldest records were stored.
func ParseRecord(payload map[string]any) model.FormDefinition {
	form := model.FormDefinition{
		ID:     strings.TrimSpace(readString(payload, "id")),
		Title:  readString(payload, "title"),
		Status: DeriveStatus(payload),
	}
	if form.ID == "" {
		form.ID = strings.TrimSpace(readString(payload, "formId"))
	}
	if form.Title == "" {
		form.Title = readString(payload, "name")
	}

	document := nested(payload, "schema")
	if document == nil {
		document = payload
	}
	form.Sections = ParseDocument(document)
	return form
}

// SerializeRecord emits the record shape the storage collaborator accepts:
// identity and status alongside the canonical schema document.
func SerializeRecord(form model.FormDefinition) map[string]any {
	return map[string]any{
		"id":     form.ID,
		"title":  form.Title,
		"status": string(form.Status),
		"schema": SerializeDocument(form.Sections),
	}
}
