package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	notNullViolation    = "23502"
	checkViolation      = "23514"
	invalidTextRep      = "22P02"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraintName
}

// Translate maps driver errors onto the application error taxonomy.
// The original error stays reachable through errors.Unwrap.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &apperrors.CustomError{Err: apperrors.ErrResourceNotFound, Message: "record not found", Details: map[string]interface{}{"cause": err.Error()}}
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolation:
		return &apperrors.CustomError{Err: apperrors.ErrResourceAlreadyExists, Message: pgErr.Message, Details: map[string]interface{}{"constraint": pgErr.ConstraintName}}
	case foreignKeyViolation:
		return &apperrors.CustomError{Err: apperrors.ErrConflict, Message: pgErr.Message, Details: map[string]interface{}{"constraint": pgErr.ConstraintName}}
	case notNullViolation, checkViolation, invalidTextRep:
		return &apperrors.CustomError{Err: apperrors.ErrValidationFailed, Message: pgErr.Message, Details: map[string]interface{}{"field": pgErr.ColumnName}}
	}
	return err
}
