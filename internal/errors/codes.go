package errors

// ErrorCode identifies a specific, documented failure mode. Codes are
// stable API surface; messages may be reworded, codes may not.
type ErrorCode string

// Category errors
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryDuplicateName ErrorCode = "CATEGORY_002"
)

// Transaction errors
const (
	TransactionNotFound        ErrorCode = "TRANSACTION_001"
	TransactionInvalidCategory ErrorCode = "TRANSACTION_002"
	TransactionInvalidAmount   ErrorCode = "TRANSACTION_003"
)

// Validation errors
const (
	ValidationFailed        ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Resource errors
const (
	ResourceNotFound ErrorCode = "RESOURCE_001"
)

// System errors
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

var errorMessages = map[ErrorCode]string{
	CategoryNotFound:      "Category not found",
	CategoryDuplicateName: "A category with this name already exists",

	TransactionNotFound:        "Transaction not found",
	TransactionInvalidCategory: "Transaction references a category that does not exist",
	TransactionInvalidAmount:   "Transaction amount is not a valid decimal value",

	ValidationFailed:        "Request validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Field format is invalid",
	ValidationInvalidDate:   "Invalid date format, expected YYYY-MM-DD",

	ResourceNotFound: "Requested resource not found",

	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "Storage is temporarily unavailable",
	SystemServiceUnavailable: "Service is temporarily unavailable",
	SystemRateLimitExceeded:  "Too many requests, please slow down",
}

// GetErrorMessage returns the canonical message for a code.
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "Unknown error"
}
