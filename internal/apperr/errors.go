package apperr

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
)

var (
	ErrNotConfigured     = errors.New("upstream credential is not configured")
	ErrProvider          = errors.New("provider request failed")
	ErrMalformedResponse = errors.New("malformed provider response")
	ErrRateLimited       = errors.New("rate limited")
	ErrQuotaExhausted    = errors.New("credits exhausted")
	ErrInvalidRequest    = errors.New("invalid request")
)

func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrQuotaExhausted):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// FromStatus classifies a non-success upstream HTTP status.
func FromStatus(code int) error {
	switch code {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusPaymentRequired:
		return ErrQuotaExhausted
	default:
		return ErrProvider
	}
}

// Write renders err as the {error, details} envelope. Rate-limit and quota
// errors carry their fixed message only; a missing credential reports the
// wrapped message naming the variable.
func Write(w http.ResponseWriter, err error, fallback string) {
	status := StatusCode(err)
	switch {
	case errors.Is(err, ErrRateLimited), errors.Is(err, ErrQuotaExhausted):
		config.Error(w, status, kind(err).Error(), "")
	case errors.Is(err, ErrNotConfigured), errors.Is(err, ErrInvalidRequest):
		config.Error(w, status, err.Error(), "")
	default:
		config.Error(w, status, fallback, err.Error())
	}
}

func kind(err error) error {
	for _, k := range []error{ErrRateLimited, ErrQuotaExhausted, ErrNotConfigured, ErrMalformedResponse, ErrInvalidRequest, ErrProvider} {
		if errors.Is(err, k) {
			return k
		}
	}
	return err
}
