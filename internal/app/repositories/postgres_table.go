package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
	"github.com/setnu/clubportal/internal/pkg/dberrors"
	"github.com/setnu/clubportal/internal/pkg/logger"
)

var baseColumns = []string{"id", "created_at", "updated_at"}

// PostgresTable implements Table on a pgx pool with squirrel-built statements.
type PostgresTable[T any, P row[T]] struct {
	db     *pgxpool.Pool
	sb     squirrel.StatementBuilderType
	schema schema[T]
}

func newPostgresTable[T any, P row[T]](db *pgxpool.Pool, s schema[T]) *PostgresTable[T, P] {
	return &PostgresTable[T, P]{
		db:     db,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		schema: s,
	}
}

func (r *PostgresTable[T, P]) selectColumns() []string {
	cols := make([]string, 0, len(baseColumns)+len(r.schema.columns))
	cols = append(cols, baseColumns...)
	return append(cols, r.schema.columns...)
}

func (r *PostgresTable[T, P]) scanTargets(rec *T) []interface{} {
	base := P(rec).Meta()
	targets := []interface{}{&base.ID, &base.CreatedAt, &base.UpdatedAt}
	return append(targets, r.schema.fields(rec)...)
}

// List returns every row in the table's fixed order.
func (r *PostgresTable[T, P]) List(ctx context.Context) ([]T, error) {
	sql, args, err := r.sb.Select(r.selectColumns()...).
		From(r.schema.table).
		OrderBy(r.schema.orderBy...).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.schema.table).Msg("Error building list SQL")
		return nil, fmt.Errorf("failed to build list query for %s: %w", r.schema.table, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.schema.table).Msg("Error executing list query")
		return nil, fmt.Errorf("error querying %s: %w", r.schema.table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var rec T
		if err := rows.Scan(r.scanTargets(&rec)...); err != nil {
			logger.Error().Err(err).Str("table", r.schema.table).Msg("Error scanning row during list")
			return nil, fmt.Errorf("error scanning %s row: %w", r.schema.table, err)
		}
		items = append(items, rec)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("table", r.schema.table).Msg("Error iterating rows")
		return nil, fmt.Errorf("error iterating %s rows: %w", r.schema.table, err)
	}

	return items, nil
}

// GetByID retrieves a single row.
func (r *PostgresTable[T, P]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	sql, args, err := r.sb.Select(r.selectColumns()...).
		From(r.schema.table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query for %s: %w", r.schema.table, err)
	}

	var rec T
	if err := r.db.QueryRow(ctx, sql, args...).Scan(r.scanTargets(&rec)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %s not found", r.schema.table, id))
		}
		logger.Error().Err(err).Str("table", r.schema.table).Str("id", id.String()).Msg("Error scanning row")
		return nil, fmt.Errorf("error getting %s by ID: %w", r.schema.table, err)
	}

	return &rec, nil
}

// Create inserts rec and fills in the id and timestamps Postgres assigned.
func (r *PostgresTable[T, P]) Create(ctx context.Context, rec *T) error {
	sql, args, err := r.sb.Insert(r.schema.table).
		SetMap(r.schema.values(rec)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.schema.table).Msg("Error building insert SQL")
		return fmt.Errorf("failed to build insert query for %s: %w", r.schema.table, err)
	}

	base := P(rec).Meta()
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&base.ID, &base.CreatedAt, &base.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("table", r.schema.table).Msg("Error executing insert query")
		return fmt.Errorf("error creating %s row: %w", r.schema.table, dberrors.Translate(err))
	}

	return nil
}

// Update writes every column of rec. updated_at is refreshed by the database.
func (r *PostgresTable[T, P]) Update(ctx context.Context, rec *T) error {
	base := P(rec).Meta()

	sql, args, err := r.sb.Update(r.schema.table).
		SetMap(r.schema.values(rec)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": base.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.schema.table).Msg("Error building update SQL")
		return fmt.Errorf("failed to build update query for %s: %w", r.schema.table, err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&base.CreatedAt, &base.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %s not found", r.schema.table, base.ID))
		}
		logger.Error().Err(err).Str("table", r.schema.table).Str("id", base.ID.String()).Msg("Error executing update query")
		return fmt.Errorf("error updating %s row: %w", r.schema.table, dberrors.Translate(err))
	}

	return nil
}

// Delete removes a row by id.
func (r *PostgresTable[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete(r.schema.table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query for %s: %w", r.schema.table, err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.schema.table).Str("id", id.String()).Msg("Error executing delete query")
		return fmt.Errorf("error deleting %s row: %w", r.schema.table, dberrors.Translate(err))
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %s not found", r.schema.table, id))
	}

	return nil
}
