package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGDurable stores resumes as JSONB rows in the saved_resumes table.
type PGDurable struct {
	DB *sql.DB
}

// Write upserts the record.
func (d *PGDurable) Write(ctx context.Context, rec StoredResume) error {
	const query = `
INSERT INTO saved_resumes (id, document, saved_at)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, saved_at = EXCLUDED.saved_at`
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal resume: %w", err)
	}
	if _, err := d.DB.ExecContext(ctx, query, rec.ID, doc, rec.SavedAt); err != nil {
		return fmt.Errorf("insert saved_resumes: %w", err)
	}
	return nil
}

// Remove deletes the row; deleting zero rows is fine.
func (d *PGDurable) Remove(ctx context.Context, id string) error {
	const query = `DELETE FROM saved_resumes WHERE id = $1`
	if _, err := d.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete saved_resumes: %w", err)
	}
	return nil
}

var _ Durable = (*PGDurable)(nil)
