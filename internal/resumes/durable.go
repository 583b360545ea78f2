package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"resume-editor/internal/shared/storage/object"
	"resume-editor/internal/shared/util"
)

// Durable persists stored resumes outside the process.
type Durable interface {
	Write(ctx context.Context, rec StoredResume) error
	// Remove deletes the record; a record that is already gone is not an error.
	Remove(ctx context.Context, id string) error
}

// NopDurable keeps nothing.
type NopDurable struct{}

// Write is a no-op.
func (NopDurable) Write(context.Context, StoredResume) error { return nil }

// Remove is a no-op.
func (NopDurable) Remove(context.Context, string) error { return nil }

// ObjectDurable writes each resume as formatted JSON to <id>.json in an object store.
type ObjectDurable struct {
	Store object.ObjectStore
}

// NewObjectDurable constructs an ObjectDurable.
func NewObjectDurable(store object.ObjectStore) *ObjectDurable {
	return &ObjectDurable{Store: store}
}

// Write serializes rec with two-space indentation and stores it under its key.
func (d *ObjectDurable) Write(ctx context.Context, rec StoredResume) error {
	key, err := ObjectKey(rec.ID)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal resume: %w", err)
	}
	if _, err := d.Store.Put(ctx, key, "application/json", bytes.NewReader(data)); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Remove deletes the object for id.
func (d *ObjectDurable) Remove(ctx context.Context, id string) error {
	key, err := ObjectKey(id)
	if err != nil {
		return err
	}
	if err := d.Store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// ObjectKey maps a resume id to its file name.
func ObjectKey(id string) (string, error) {
	name, err := util.SanitizeFileName(id + ".json")
	if err != nil {
		return "", fmt.Errorf("resume id %q: %w", id, err)
	}
	return name, nil
}

var (
	_ Durable = NopDurable{}
	_ Durable = (*ObjectDurable)(nil)
)
