package errors

import (
	"errors"
	"net/http"
)

// MapError converts an error into an AppError with the HTTP status the
// handler should send. Validation fails with 400, upstream failures pass the
// vendor status and raw body through unmodified, everything else collapses to
// a generic 500.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return &AppError{
			TechnicalMessage: validationErr.Message,
			UserMessage:      validationErr.Message,
			Code:             ErrCodeInvalidParameters,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return &AppError{
			TechnicalMessage: upstreamErr.Error(),
			UserMessage:      upstreamErr.Body,
			Code:             ErrCodeUpstreamFailure,
			HTTPStatus:       upstreamErr.StatusCode,
			OriginalError:    err,
		}
	}

	return &AppError{
		TechnicalMessage: err.Error(),
		UserMessage:      MsgInternalError,
		Code:             ErrCodeInternalError,
		HTTPStatus:       http.StatusInternalServerError,
		OriginalError:    err,
	}
}
