package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/app/models/dto"
	"github.com/setnu/clubportal/internal/app/repositories"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
	"github.com/setnu/clubportal/internal/pkg/auth"
	"github.com/setnu/clubportal/internal/pkg/helpers"
)

// SpecialCodes are the sign-up codes for roles that cannot be self-assigned
type SpecialCodes struct {
	Mentor      string
	Coordinator string
}

func (c SpecialCodes) forRole(role models.AppRole) string {
	switch role {
	case models.RoleClubMentor:
		return c.Mentor
	case models.RoleStudentCoordinator:
		return c.Coordinator
	}
	return ""
}

// AuthService handles authentication operations
type AuthService struct {
	users      repositories.UserStore
	jwtService *auth.JWTService
	codes      SpecialCodes
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.UserStore, jwtService *auth.JWTService, codes SpecialCodes, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
		codes:      codes,
		logger:     logger,
	}
}

// checkSpecialCode verifies the sign-up code for roles that need one
func (s *AuthService) checkSpecialCode(role models.AppRole, code string) error {
	if !role.RequiresSpecialCode() {
		return nil
	}
	want := s.codes.forRole(role)
	if want == "" || subtle.ConstantTimeCompare([]byte(want), []byte(strings.TrimSpace(code))) != 1 {
		return apperrors.ErrInvalidSpecialCode
	}
	return nil
}

// Register creates a user and profile and returns a signed-in token
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
	if err := s.checkSpecialCode(role, req.SpecialCode); err != nil {
		s.logger.Warn().Str("email", req.Email).Str("role", string(role)).Msg("Registration rejected: invalid special code")
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Email: normalizeEmail(req.Email), Password: hash}
	profile := &models.Profile{
		Name:  strings.TrimSpace(req.Name),
		Role:  role,
		Phone: helpers.NullIfEmpty(req.Phone),
	}
	if role.RequiresSpecialCode() {
		profile.SpecialCode = helpers.NullIfEmpty(req.SpecialCode)
	}

	if err := s.users.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info().Str("userID", user.ID.String()).Str("role", string(role)).Msg("User registered")
	return s.generateTokenResponse(user, profile)
}

// normalizeEmail gives every store and token one spelling per address
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login checks credentials and returns a token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Error().Err(err).Msg("Failed to look up user for login")
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	profile, err := s.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Str("userID", user.ID.String()).Msg("Failed to record last login")
	}

	return s.generateTokenResponse(user, profile)
}

// GetProfile returns the profile of userID
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.users.GetProfile(ctx, userID)
}

func (s *AuthService) generateTokenResponse(user *models.User, profile *models.Profile) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateAccessToken(user, profile.Role)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Profile:     dto.NewProfileResponse(user.Email, profile),
	}, nil
}
