package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/setnu/clubportal/internal/app/models/dto"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
	"github.com/setnu/clubportal/internal/pkg/auth"
)

// HandleAPIError writes the error response for err
func HandleAPIError(c *gin.Context, err error) {
	status, detail := ErrorDetailFor(err)
	c.JSON(status, dto.NewErrorResponse(detail))
}

// ErrorDetailFor maps err to an HTTP status and error detail
func ErrorDetailFor(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	message := func(fallback string) string {
		if errors.As(err, &custom) && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrConfirmationRequired):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeConfirmationRequired, "Deletion must be confirmed").
			WithDetails("Repeat the request with confirm=true").
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrUploadRequired), errors.Is(err, apperrors.ErrEmptyUpload):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeUploadRequired, err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Validation failed"))
		if custom != nil {
			if field, ok := custom.Details["field"].(string); ok {
				detail = detail.WithField(field)
			}
		}
		return http.StatusBadRequest, detail
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, message("Bad request"))
	case errors.Is(err, apperrors.ErrUnknownTab):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case errors.Is(err, apperrors.ErrResourceNotFound), errors.Is(err, apperrors.ErrProfileNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Resource not found"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, message("Permission denied"))
	case errors.Is(err, apperrors.ErrInvalidSpecialCode):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeInvalidSpecialCode, "Invalid special code for the requested role")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case apperrors.Is(err, apperrors.ErrTokenExpired, auth.ErrExpiredToken):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrInvalidFormat, auth.ErrInvalidToken, auth.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message("Resource already exists"))
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, message("Conflict"))
	}

	var uploadErr *apperrors.UploadError
	var fetchErr *apperrors.FetchError
	var writeErr *apperrors.WriteError
	switch {
	case errors.As(err, &uploadErr):
		detail := dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Upload failed").
			WithDetails(map[string]interface{}{"phase": uploadErr.Phase, "orphaned": uploadErr.Orphaned})
		if uploadErr.Orphaned {
			detail = detail.WithSeverity(dto.ErrorSeverityCritical)
		}
		return http.StatusBadGateway, detail
	case errors.As(err, &fetchErr):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Failed to load "+fetchErr.Entity)
	case errors.As(err, &writeErr):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Failed to "+string(writeErr.Op)+" "+writeErr.Entity)
	}

	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
}
