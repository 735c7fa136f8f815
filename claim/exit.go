package claim

import "errors"

// ExitCodeDefaults holds the fallback process exit codes.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// ExitCodeManager maps match-failure categories to process exit codes.
// Every argument-shape failure (unknown, repeated, missing, stalled) maps
// to the misusage code by default; Map validation failures get their own
// code.
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	defaults    ExitCodeDefaults
}

func newExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByType: make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
	m.codesByType[ErrorTypeRepeatedActivator] = m.defaults.MisusageError
	m.codesByType[ErrorTypeMissingRequired] = m.defaults.MisusageError
	m.codesByType[ErrorTypeLiteralMismatch] = m.defaults.MisusageError
	m.codesByType[ErrorTypeNoAlternative] = m.defaults.MisusageError
	m.codesByType[ErrorTypeStall] = m.defaults.MisusageError
	m.codesByType[ErrorTypeTrailingInput] = m.defaults.MisusageError
	m.codesByType[ErrorTypeValidation] = m.defaults.ValidationError
	return m
}

// Define overrides the exit code for one failure category.
func (m *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	m.codesByType[typ] = code
	return m
}

// Default replaces the manager's fallback codes.
func (m *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	m.defaults = d
	return m
}

// Resolve converts an error to an exit code. nil resolves to the success
// code, a MatchError to its category mapping, anything else to the general
// error code.
func (m *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return m.defaults.Success
	}
	var me *MatchError
	if errors.As(err, &me) {
		if code, ok := m.codesByType[me.Type]; ok {
			return code
		}
	}
	return m.defaults.GeneralError
}
