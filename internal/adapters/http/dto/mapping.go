package dto

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// publicError attaches the text a route wants clients to see.
type publicError struct {
	err     error
	message string
}

func (e *publicError) Error() string { return e.err.Error() }
func (e *publicError) Unwrap() error { return e.err }

// WithMessage wraps err so that MapError renders msg instead of err's text.
// The error's classification (status and code) is unchanged.
func WithMessage(err error, msg string) error {
	if err == nil {
		return nil
	}

	return &publicError{err: err, message: msg}
}

// MapError maps an error to an HTTP status code and error response.
//
// Anything not recognised is a fault: 500 with the fault's own text.
func MapError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	resp := classify(err)

	var pub *publicError
	if errors.As(err, &pub) {
		resp.Message = pub.message
		resp.Error.Message = pub.message
	}

	return HTTPStatusFromCode(resp.Error.Code), resp
}

func classify(err error) *ErrorResponse {
	var (
		tooLarge *http.MaxBytesError
		invalid  *domain.ValidationError
	)

	switch {
	case errors.As(err, &tooLarge):
		return NewErrorResponse(ErrorCodeTooLarge,
			"request body exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")

	case errors.Is(err, ErrBinding):
		return NewErrorResponse(ErrorCodeBadRequest, "malformed request body")

	case errors.As(err, &invalid):
		return NewErrorResponseWithDetails(ErrorCodeValidation, err.Error(), fieldDetails(invalid))

	case domain.IsValidation(err):
		return NewErrorResponse(ErrorCodeValidation, err.Error())

	case domain.IsNotFound(err):
		return NewErrorResponse(ErrorCodeNotFound, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return NewErrorResponse(ErrorCodeTimeout, "request timed out")

	default:
		return NewErrorResponse(ErrorCodeInternal, err.Error())
	}
}

// fieldDetails maps each offending field to the broken rule, or nil when
// the error names no fields.
func fieldDetails(v *domain.ValidationError) map[string]string {
	if len(v.Fields) == 0 {
		return nil
	}

	details := make(map[string]string, len(v.Fields))
	for _, f := range v.Fields {
		details[f] = v.Reason
	}

	return details
}
