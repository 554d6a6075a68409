package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/db"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
	"github.com/setnu/clubportal/internal/pkg/dberrors"
	"github.com/setnu/clubportal/internal/pkg/logger"
)

const usersEmailConstraint = "users_email_key"

// UserStore persists login identities and their profiles.
type UserStore interface {
	// CreateWithProfile stores user and profile atomically.
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	TouchLastLogin(ctx context.Context, userID uuid.UUID) error
}

// UserRepository handles user and profile database operations
type UserRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pg *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: pg,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *UserRepository) pool() *pgxpool.Pool { return r.db.Pool }

// CreateWithProfile inserts the user and profile rows in one transaction.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert(models.TableUsers).
			Columns("email", "password").
			Values(strings.ToLower(user.Email), user.Password).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create user query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt); err != nil {
			if dberrors.IsDuplicateConstraintError(err, usersEmailConstraint) {
				return apperrors.ErrEmailAlreadyExists
			}
			logger.Error().Err(err).Msg("Error executing create user query")
			return fmt.Errorf("error creating user: %w", err)
		}

		profile.UserID = user.ID
		sql, args, err = r.sb.Insert(models.TableProfiles).
			SetMap(map[string]interface{}{
				"user_id":      profile.UserID,
				"name":         profile.Name,
				"role":         profile.Role,
				"phone":        profile.Phone,
				"special_code": profile.SpecialCode,
			}).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create profile query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
			logger.Error().Err(err).Str("userID", user.ID.String()).Msg("Error executing create profile query")
			return fmt.Errorf("error creating profile: %w", dberrors.Translate(err))
		}
		return nil
	})
}

// GetByEmail retrieves a user by email (case-insensitive)
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "email", "password", "created_at", "last_login_at").
		From(models.TableUsers).
		Where(squirrel.Eq{"email": strings.ToLower(email)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.pool().QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Email, &user.Password, &user.CreatedAt, &user.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("user not found")
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}
	return user, nil
}

// GetProfile retrieves the profile attached to userID
func (r *UserRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	sql, args, err := r.sb.Select("id", "created_at", "updated_at", "user_id", "name", "role", "phone", "special_code").
		From(models.TableProfiles).
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	p := &models.Profile{}
	err = r.pool().QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.UserID, &p.Name, &p.Role, &p.Phone, &p.SpecialCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error getting profile: %w", err)
	}
	return p, nil
}

// TouchLastLogin sets last_login_at to now
func (r *UserRepository) TouchLastLogin(ctx context.Context, userID uuid.UUID) error {
	sql, args, err := r.sb.Update(models.TableUsers).
		Set("last_login_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build last login query: %w", err)
	}
	if _, err := r.pool().Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}
