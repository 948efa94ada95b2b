package errors

// ErrorCode represents a standardized error code used throughout the console
type ErrorCode string

// Account error codes (ACCOUNT_*)
const (
	AccountNegativeAmount    ErrorCode = "ACCOUNT_001"
	AccountInsufficientFunds ErrorCode = "ACCOUNT_002"
	AccountClosed            ErrorCode = "ACCOUNT_003"
	AccountNotOpened         ErrorCode = "ACCOUNT_004"
	AccountAlreadyOpened     ErrorCode = "ACCOUNT_005"
	AccountInvalidNumber     ErrorCode = "ACCOUNT_006"
)

// Input error codes (INPUT_*)
const (
	InputInvalidAmount ErrorCode = "INPUT_001"
	InputInvalidChoice ErrorCode = "INPUT_002"
	InputUnavailable   ErrorCode = "INPUT_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral ErrorCode = "VALIDATION_001"
)

// System error codes (SYSTEM_*)
const (
	SystemUnexpectedError    ErrorCode = "SYSTEM_001"
	SystemConfigurationError ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to the messages shown on the console
var errorMessages = map[ErrorCode]string{
	// Account errors
	AccountNegativeAmount:    "Cannot deposit a negative amount!",
	AccountInsufficientFunds: "Insufficient funds!",
	AccountClosed:            "Account is closed for transactions!",
	AccountNotOpened:         "No account has been opened!",
	AccountAlreadyOpened:     "An account is already open!",
	AccountInvalidNumber:     "Generated account number is invalid!",

	// Input errors
	InputInvalidAmount: "Invalid amount entered.",
	InputInvalidChoice: "Invalid choice. Please try again.",
	InputUnavailable:   "No input available.",

	// Validation errors
	ValidationGeneral: "Validation failed",

	// System errors
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemConfigurationError: "System configuration error",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
