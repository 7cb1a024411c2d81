// Package storage defines the persistence collaborator this module writes
// to and reads from. Implementations live with the surrounding application;
// this module only fixes the contract: records are keyed by event and form
// id, and the schema member carries exactly the canonical document shape
// produced by draftschema.SerializeDocument.
package storage

import (
	"context"

	"github.com/goliatone/go-formdef/pkg/model"
)

// Store is the form-definition persistence service. Concurrency control,
// such as preventing two simultaneous publishes, is the implementation's
// responsibility.
type Store interface {
	// CreateForm persists a new draft definition and returns its form id.
	CreateForm(ctx context.Context, eventID string, form model.FormDefinition) (string, error)
	// FetchForm returns the raw stored record, possibly in a legacy shape;
	// callers hand it to draftschema.ParseRecord.
	FetchForm(ctx context.Context, eventID, formID string) (map[string]any, error)
	// UpdateSchema replaces the draft schema document.
	UpdateSchema(ctx context.Context, eventID, formID string, document map[string]any) error
	// PublishVersion freezes the current draft and returns the new version
	// number.
	PublishVersion(ctx context.Context, eventID, formID string) (int, error)
	// DeleteVersion removes a published version.
	DeleteVersion(ctx context.Context, eventID, formID string, version int) error
}
