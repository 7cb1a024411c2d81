package draftschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formdef/pkg/model"
)

// ParseDocument reads the sections of a persisted schema document. Sections
// may live under "sections" or the legacy "pages" key; a document with
// neither parses to zero sections, not an error.
func ParseDocument(payload map[string]any) []model.FormSection {
	if payload == nil {
		return nil
	}
	list, _ := payload["sections"].([]any)
	if list == nil {
		list, _ = payload["pages"].([]any)
	}
	if len(list) == 0 {
		return nil
	}

	sections := make([]model.FormSection, 0, len(list))
	for _, entry := range list {
		raw, ok := asMap(entry)
		if !ok {
			continue
		}
		sections = append(sections, parseSection(raw))
	}
	if len(sections) == 0 {
		return nil
	}
	return sections
}

func parseSection(payload map[string]any) model.FormSection {
	section := model.FormSection{
		ID:          strings.TrimSpace(readString(payload, "id")),
		Title:       readString(payload, "title"),
		Description: readString(payload, "description"),
	}
	if section.ID == "" {
		section.ID = newID()
	}
	list, _ := payload["fields"].([]any)
	for _, entry := range list {
		raw, ok := asMap(entry)
		if !ok {
			continue
		}
		section.Fields = append(section.Fields, ParseField(raw))
	}
	return section
}

// SerializeDocument emits the canonical schema document. Only the canonical
// "sections" key is written; section descriptions are dropped when empty.
func SerializeDocument(sections []model.FormSection) map[string]any {
	list := make([]any, 0, len(sections))
	for _, section := range sections {
		entry := map[string]any{
			"id":    section.ID,
			"title": section.Title,
		}
		if section.Description != "" {
			entry["description"] = section.Description
		}
		fields := make([]any, 0, len(section.Fields))
		for _, field := range section.Fields {
			fields = append(fields, SerializeField(field))
		}
		entry["fields"] = fields
		list = append(list, entry)
	}
	return map[string]any{"sections": list}
}

// ParseBytes decodes a JSON schema document. The only failure mode is bytes
// that are not JSON at all; shape problems inside a valid document degrade
// per the forgiving-parse policy instead of erroring.
func ParseBytes(raw []byte) ([]model.FormSection, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("draftschema: parse document: %w", err)
	}
	return ParseDocument(payload), nil
}

// ParseYAML decodes a YAML schema document, used for seed definitions and
// fixtures. The persisted store itself only ever holds JSON.
func ParseYAML(raw []byte) ([]model.FormSection, error) {
	var payload map[string]any
	if err := yaml.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("draftschema: parse yaml document: %w", err)
	}
	return ParseDocument(payload), nil
}

// MarshalBytes serializes sections to canonical JSON.
func MarshalBytes(sections []model.FormSection) ([]byte, error) {
	payload, err := json.Marshal(SerializeDocument(sections))
	if err != nil {
		return nil, fmt.Errorf("draftschema: marshal document: %w", err)
	}
	return payload, nil
}
