// Package apierror maps domain faults to HTTP errors at the handler edge.
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/wallet-server/internal/faults"
)

// FromDomain converts a domain fault into a huma error with the right
// status code and the offending field in the error detail. Anything
// that is not a fault is an infrastructure failure and becomes a 500
// with the fallback message.
func FromDomain(err error, fallback string) error {
	var fault *faults.Fault
	if !errors.As(err, &fault) {
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
	if fault.Field == "" {
		return huma.NewError(statusFor(fault.Code), fault.Message)
	}
	return huma.NewError(statusFor(fault.Code), fault.Message, &huma.ErrorDetail{
		Message:  fault.Message,
		Location: fault.Field,
	})
}

func statusFor(code faults.Code) int {
	switch code {
	case faults.CodeInvalidArgument:
		return http.StatusBadRequest
	case faults.CodeNotFound:
		return http.StatusNotFound
	case faults.CodeForbidden:
		return http.StatusForbidden
	case faults.CodeInsufficientFunds:
		return http.StatusUnprocessableEntity
	case faults.CodeConflictRetryable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
