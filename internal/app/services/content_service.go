package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/app/repositories"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
)

// ContentService wraps one table with the read and write error taxonomy:
// read failures become FetchError, write failures WriteError.
type ContentService[T models.Keyed] struct {
	entity string
	table  repositories.Table[T]
	logger zerolog.Logger
}

// NewContentService creates a ContentService for entity over table
func NewContentService[T models.Keyed](entity string, table repositories.Table[T], logger zerolog.Logger) *ContentService[T] {
	return &ContentService[T]{
		entity: entity,
		table:  table,
		logger: logger.With().Str("entity", entity).Logger(),
	}
}

// Entity returns the entity name used in errors and notifications
func (s *ContentService[T]) Entity() string { return s.entity }

// List returns every record in the table's fixed order
func (s *ContentService[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.table.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list records")
		return nil, apperrors.NewFetchError(s.entity, err)
	}
	return items, nil
}

// Get returns one record
func (s *ContentService[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	rec, err := s.table.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("id", id.String()).Msg("Failed to get record")
		return nil, apperrors.NewFetchError(s.entity, err)
	}
	return rec, nil
}

// Create inserts rec; the store fills in its id and timestamps
func (s *ContentService[T]) Create(ctx context.Context, rec *T) error {
	if err := s.table.Create(ctx, rec); err != nil {
		s.logger.Error().Err(err).Msg("Failed to create record")
		return apperrors.NewWriteError(s.entity, apperrors.OpCreate, "", err)
	}
	s.logger.Info().Str("id", (*rec).Key().String()).Msg("Record created")
	return nil
}

// Update writes rec over the stored record with the same id
func (s *ContentService[T]) Update(ctx context.Context, rec *T) error {
	id := (*rec).Key().String()
	if err := s.table.Update(ctx, rec); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to update record")
		return apperrors.NewWriteError(s.entity, apperrors.OpUpdate, id, err)
	}
	s.logger.Info().Str("id", id).Msg("Record updated")
	return nil
}

// Delete removes the record with id
func (s *ContentService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.table.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("id", id.String()).Msg("Failed to delete record")
		return apperrors.NewWriteError(s.entity, apperrors.OpDelete, id.String(), err)
	}
	s.logger.Info().Str("id", id.String()).Msg("Record deleted")
	return nil
}
