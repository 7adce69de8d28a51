package service

import (
	"fmt"
	"strings"
)

// ValidationError is returned when request data fails validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
	}
	return e.Message
}

// ConfigurationError is returned when delivery credentials are missing. It is
// raised before any provider is contacted.
type ConfigurationError struct {
	Message string
	// Note is a hint for the operator, safe to show to callers.
	Note string
	// Missing names the absent settings. It is logged, never returned to callers.
	Missing []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (missing: %s)", e.Message, strings.Join(e.Missing, ", "))
}

// DeliveryError is returned when a provider rejects or fails a send.
type DeliveryError struct {
	Provider string
	// Message is the caller-facing description of the failure.
	Message string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s delivery failed: %s", e.Provider, e.Message)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Details returns the underlying error text for non-production responses.
func (e *DeliveryError) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
