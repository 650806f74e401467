package domain

import "github.com/pkg/errors"

// ConfigurationError reports a merchant configuration that does not allow the operation
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ErrConfigurationDisabled is returned when Visa Checkout is disabled or the SDK is absent
var ErrConfigurationDisabled = &ConfigurationError{Message: "Visa Checkout is not enabled."}

var (
	// ErrEmptyTokenizationResponse is reported when tokenization yields no card
	ErrEmptyTokenizationResponse = errors.New("tokenization response contained no visa checkout card")
	// ErrMissingTokenizeCommand is reported when tokenize is called without a payment summary
	ErrMissingTokenizeCommand = errors.New("tokenize command is required")
)
