package claim

import (
	"fmt"
	"strings"
)

// ErrorType represents match-failure categories. These categories drive
// exit-code mapping (via ExitCodeManager) and front-end presentation.
type ErrorType string

const (
	ErrorTypeRepeatedActivator ErrorType = "repeated_activator"
	ErrorTypeMissingRequired   ErrorType = "missing_required"
	ErrorTypeLiteralMismatch   ErrorType = "literal_mismatch"
	ErrorTypeNoAlternative     ErrorType = "no_alternative"
	ErrorTypeStall             ErrorType = "stall"
	ErrorTypeTrailingInput     ErrorType = "trailing_input"
	ErrorTypeValidation        ErrorType = "validation"
)

// MatchError is a recoverable, descriptive parse failure. It flows through
// ordinary error returns: a scan failure aborts the scan, a value failure
// aborts the extraction, and OneOf collects failures from losing
// alternatives without aborting anything.
type MatchError struct {
	Type       ErrorType
	Message    string
	Token      string // offending token, when known
	Suggestion string // optional "did you mean" hint
}

func (e *MatchError) Error() string {
	return e.Message
}

// NewMatchError creates a MatchError with the given category and message.
func NewMatchError(typ ErrorType, message string) *MatchError {
	return &MatchError{Type: typ, Message: message}
}

func errRepeated(display string) *MatchError {
	return &MatchError{
		Type:    ErrorTypeRepeatedActivator,
		Message: fmt.Sprintf("%s can only appear once", display),
	}
}

func errMissingRequired(display string) *MatchError {
	return &MatchError{
		Type:    ErrorTypeMissingRequired,
		Message: fmt.Sprintf("%s is required", display),
	}
}

func errLiteralMismatch(want, got string) *MatchError {
	return &MatchError{
		Type:    ErrorTypeLiteralMismatch,
		Message: fmt.Sprintf("expected '%s', got '%s'", want, got),
		Token:   got,
	}
}

func errNoAlternative(reasons []string) *MatchError {
	return &MatchError{
		Type:    ErrorTypeNoAlternative,
		Message: "no alternative matched: " + strings.Join(reasons, ", "),
	}
}

func errStall(token string) *MatchError {
	return &MatchError{
		Type:    ErrorTypeStall,
		Message: fmt.Sprintf("nothing was consumed at '%s'", token),
		Token:   token,
	}
}

func errTrailing(token string) *MatchError {
	return &MatchError{
		Type:    ErrorTypeTrailingInput,
		Message: fmt.Sprintf("unrecognized argument: %s", token),
		Token:   token,
	}
}

func errValidation(display string, cause error) *MatchError {
	return &MatchError{
		Type:    ErrorTypeValidation,
		Message: fmt.Sprintf("invalid value for %s: %v", display, cause),
	}
}
