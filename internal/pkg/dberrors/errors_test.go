package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"no rows", pgx.ErrNoRows, apperrors.ErrResourceNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperrors.ErrResourceNotFound},
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, apperrors.ErrResourceAlreadyExists},
		{"not null", &pgconn.PgError{Code: "23502", ColumnName: "title"}, apperrors.ErrValidationFailed},
		{"foreign key", &pgconn.PgError{Code: "23503"}, apperrors.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.in); !errors.Is(got, tt.want) {
				t.Errorf("Translate() = %v, want wrapping %v", got, tt.want)
			}
		})
	}

	plain := errors.New("connection refused")
	if Translate(plain) != plain {
		t.Error("unknown errors should pass through unchanged")
	}
	if Translate(nil) != nil {
		t.Error("nil should stay nil")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	if !IsDuplicateConstraintError(err, "users_email_key") {
		t.Error("expected duplicate on users_email_key")
	}
	if IsDuplicateConstraintError(err, "other") {
		t.Error("constraint name must match")
	}
}
