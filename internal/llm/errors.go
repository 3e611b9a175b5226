package llm

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRateLimited indica que el proveedor rechazo por limite de requests; se puede reintentar.
	ErrRateLimited = errors.New("llm rate limited")
	// ErrQuotaExhausted indica que no quedan creditos; no tiene sentido reintentar.
	ErrQuotaExhausted = errors.New("llm quota exhausted")
	// ErrNotConfigured se devuelve cuando no hay proveedor configurado.
	ErrNotConfigured = errors.New("llm not configured")
)

// StatusError describe una respuesta HTTP de error del proveedor.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm http error: status=%d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return classifyStatus(e.StatusCode)
}

func classifyStatus(code int) error {
	switch code {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusPaymentRequired:
		return ErrQuotaExhausted
	default:
		return nil
	}
}

// IsRetryable indica si el error es transitorio desde el punto de vista del cliente.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
