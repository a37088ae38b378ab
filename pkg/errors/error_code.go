package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Configuration errors (100-199)
	ErrCodeInvalidConfiguration ErrorCode = 100
	ErrCodeInvalidParameter     ErrorCode = 101
	ErrCodeMissingParameter     ErrorCode = 102
	ErrCodeInvalidType          ErrorCode = 103
	ErrCodeInvalidPeriod        ErrorCode = 104

	// Cursor errors (200-299)
	ErrCodeOutOfRange   ErrorCode = 200
	ErrCodeInvalidState ErrorCode = 201

	// View errors (300-399)
	ErrCodeLookAheadViolation ErrorCode = 300

	// Registration errors (400-499)
	ErrCodeLengthMismatch     ErrorCode = 400
	ErrCodeInvalidResultShape ErrorCode = 401
	ErrCodeComponentNotFound  ErrorCode = 402

	// Position errors (500-599)
	ErrCodeAlreadyOpen ErrorCode = 500
	ErrCodeNotOpen     ErrorCode = 501
)

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeInvalidConfiguration:
		return "invalid_configuration"
	case ErrCodeInvalidParameter:
		return "invalid_parameter"
	case ErrCodeMissingParameter:
		return "missing_parameter"
	case ErrCodeInvalidType:
		return "invalid_type"
	case ErrCodeInvalidPeriod:
		return "invalid_period"
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeInvalidState:
		return "invalid_state"
	case ErrCodeLookAheadViolation:
		return "look_ahead_violation"
	case ErrCodeLengthMismatch:
		return "length_mismatch"
	case ErrCodeInvalidResultShape:
		return "invalid_result_shape"
	case ErrCodeComponentNotFound:
		return "component_not_found"
	case ErrCodeAlreadyOpen:
		return "already_open"
	case ErrCodeNotOpen:
		return "not_open"
	case ErrCodeUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}
