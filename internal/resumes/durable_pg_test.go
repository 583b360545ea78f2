package resumes

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGDurableWriteUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	durable := &PGDurable{DB: db}
	rec := StoredResume{Document: sampleDocument("Alice"), ID: "resume_20240305_140709", SavedAt: testNow}

	mock.ExpectExec("INSERT INTO saved_resumes").
		WithArgs(rec.ID, sqlmock.AnyArg(), rec.SavedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := durable.Write(context.Background(), rec); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGDurableRemoveMissingRowIsFine(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("DELETE FROM saved_resumes").
		WithArgs("resume_20240305_140709").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := (&PGDurable{DB: db}).Remove(context.Background(), "resume_20240305_140709"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGDurableWriteFailureRollsBackStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("INSERT INTO saved_resumes").WillReturnError(errors.New("connection reset"))

	store := NewStore(&PGDurable{DB: db}, WithClock(fixedClock(testNow)))
	_, err = store.Save(context.Background(), sampleDocument("Alice"))
	if !errors.Is(err, ErrStoreFailure) {
		t.Fatalf("expected ErrStoreFailure, got %v", err)
	}
	if store.Count() != 0 {
		t.Fatalf("expected rollback, count=%d", store.Count())
	}
}
