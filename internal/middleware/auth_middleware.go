package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appauth "github.com/setnu/clubportal/internal/app/auth"
	"github.com/setnu/clubportal/internal/app/models/dto"
	"github.com/setnu/clubportal/internal/app/repositories"
	"github.com/setnu/clubportal/internal/pkg/auth"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      repositories.UserStore
	logger     zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, users repositories.UserStore, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
		logger:     logger,
	}
}

// tokenFrom reads the bearer token from the Authorization header, falling
// back to the token query parameter for clients that cannot set headers
// (browser websockets, Swagger UI).
func tokenFrom(c *gin.Context) (string, error) {
	header := strings.Trim(c.GetHeader("Authorization"), "\"'")
	if header == "" {
		header = c.Query("token")
	}
	if header == "" {
		return "", errMissingToken
	}
	if strings.Count(header, ".") == 2 && !strings.HasPrefix(header, "Bearer ") {
		return header, nil
	}
	return auth.ExtractBearerToken(header)
}

var errMissingToken = errors.New("authorization header missing")

// JWTAuth validates the access token, loads the caller's profile and stores
// the resulting session in the context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := tokenFrom(c)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails(err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}
			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed").WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		profile, err := m.users.GetProfile(c.Request.Context(), claims.UserID)
		if err != nil {
			m.logger.Warn().Err(err).Str("userID", claims.UserID.String()).Msg("Token holder has no profile")
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication failed").
				WithDetails("Profile not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(appauth.ContextKey, appauth.NewSession(claims.UserID, claims.Email, profile))
		c.Next()
	}
}

// RequireAdmin rejects callers whose profile role may not use the admin panel.
// Must run after JWTAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := appauth.FromContext(c)
		if !session.Authenticated() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}
		if !session.IsAdmin() {
			m.logger.Warn().Str("userID", session.UserID.String()).Msg("Admin route denied")
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
				WithDetails("Faculty, club mentor or student coordinator role required")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}
