package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/setnu/clubportal/internal/app/models/dto"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
)

func TestErrorDetailFor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"unconfirmed delete", apperrors.ErrConfirmationRequired, http.StatusBadRequest, dto.ErrorCodeConfirmationRequired},
		{"validation", apperrors.NewValidationError("title", "title is required"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"missing delete target", apperrors.NewWriteError("event", apperrors.OpDelete, "x", apperrors.NewResourceNotFoundError("gone")), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"unknown tab", fmt.Errorf("%w: %q", apperrors.ErrUnknownTab, "x"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"forbidden", apperrors.NewForbiddenError("admin access required"), http.StatusForbidden, dto.ErrorCodeForbidden},
		{"special code", apperrors.ErrInvalidSpecialCode, http.StatusForbidden, dto.ErrorCodeInvalidSpecialCode},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"fetch", apperrors.NewFetchError("event", errors.New("timeout")), http.StatusInternalServerError, dto.ErrorCodeDatabaseError},
		{"write", apperrors.NewWriteError("event", apperrors.OpCreate, "", errors.New("timeout")), http.StatusInternalServerError, dto.ErrorCodeDatabaseError},
		{"upload", &apperrors.UploadError{Phase: apperrors.PhaseStore, Err: errors.New("disk full")}, http.StatusBadGateway, dto.ErrorCodeExternalServiceError},
		{"upload required", apperrors.NewWriteError("resource", apperrors.OpCreate, "", apperrors.ErrUploadRequired), http.StatusBadRequest, dto.ErrorCodeUploadRequired},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := ErrorDetailFor(tt.err)
			if status != tt.wantStatus || detail.Code != tt.wantCode {
				t.Errorf("ErrorDetailFor() = %d %s, want %d %s", status, detail.Code, tt.wantStatus, tt.wantCode)
			}
		})
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	_, detail := ErrorDetailFor(apperrors.NewValidationError("eventDate", "eventDate is required"))
	if detail.Field != "eventDate" || detail.Message != "eventDate is required" {
		t.Errorf("detail = %+v", detail)
	}
}
