package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMapError_Nil(t *testing.T) {
	if got := MapError(nil); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestMapError_AppErrorReturnedAsIs(t *testing.T) {
	appErr := NewAppError("tech", "user", ErrCodeServiceUnavailable, http.StatusServiceUnavailable, nil)

	if got := MapError(appErr); got != appErr {
		t.Errorf("expected the same AppError instance, got %+v", got)
	}
}

func TestMapError_ValidationErrorMapsTo400(t *testing.T) {
	got := MapError(NewValidationError("Missing required airport or date info"))

	if got.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", got.HTTPStatus)
	}
	if got.Code != ErrCodeInvalidParameters {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidParameters, got.Code)
	}
	if got.UserMessage != "Missing required airport or date info" {
		t.Errorf("expected the validation message shown to the user, got %q", got.UserMessage)
	}
}

func TestMapError_UpstreamErrorPassesStatusAndBodyThrough(t *testing.T) {
	got := MapError(NewUpstreamError(http.StatusServiceUnavailable, `{"message": "rate limited"}`))

	if got.HTTPStatus != http.StatusServiceUnavailable {
		t.Errorf("expected vendor status passed through, got %d", got.HTTPStatus)
	}
	if got.UserMessage != `{"message": "rate limited"}` {
		t.Errorf("expected raw vendor body as user message, got %q", got.UserMessage)
	}
	if got.Code != ErrCodeUpstreamFailure {
		t.Errorf("expected code %s, got %s", ErrCodeUpstreamFailure, got.Code)
	}
}

func TestMapError_WrappedErrorsStillMatch(t *testing.T) {
	wrapped := fmt.Errorf("search failed: %w", NewUpstreamError(http.StatusBadGateway, "flight API unreachable"))

	got := MapError(wrapped)
	if got.HTTPStatus != http.StatusBadGateway {
		t.Errorf("expected 502 from the wrapped upstream error, got %d", got.HTTPStatus)
	}
}

func TestMapError_UnknownErrorCollapsesToGeneric500(t *testing.T) {
	got := MapError(errors.New("something with internal details"))

	if got.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", got.HTTPStatus)
	}
	if got.UserMessage != MsgInternalError {
		t.Errorf("expected generic user message, got %q", got.UserMessage)
	}
	if got.Code != ErrCodeInternalError {
		t.Errorf("expected code %s, got %s", ErrCodeInternalError, got.Code)
	}
}
