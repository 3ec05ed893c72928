package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Category Not Found",
			code:     CategoryNotFound,
			expected: "Category not found",
		},
		{
			name:     "Category Duplicate Name",
			code:     CategoryDuplicateName,
			expected: "A category with this name already exists",
		},
		{
			name:     "Transaction Not Found",
			code:     TransactionNotFound,
			expected: "Transaction not found",
		},
		{
			name:     "Transaction Invalid Category",
			code:     TransactionInvalidCategory,
			expected: "Transaction references a category that does not exist",
		},
		{
			name:     "Validation Invalid Date",
			code:     ValidationInvalidDate,
			expected: "Invalid date format, expected YYYY-MM-DD",
		},
		{
			name:     "Storage Unavailable",
			code:     SystemDatabaseError,
			expected: "Storage is temporarily unavailable",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("Unknown error", GetErrorMessage(ErrorCode("BOGUS_999")))
}

func (s *CodesTestSuite) TestErrorCodes_AreDistinct() {
	codes := []ErrorCode{
		CategoryNotFound, CategoryDuplicateName,
		TransactionNotFound, TransactionInvalidCategory, TransactionInvalidAmount,
		ValidationFailed, ValidationRequiredField, ValidationInvalidFormat, ValidationInvalidDate,
		ResourceNotFound,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable, SystemRateLimitExceeded,
	}

	seen := make(map[ErrorCode]bool, len(codes))
	for _, code := range codes {
		s.False(seen[code], "duplicate error code %s", code)
		seen[code] = true
	}
}

func (s *CodesTestSuite) TestErrorCodes_AllHaveMessages() {
	for code := range errorMessages {
		s.NotEmpty(GetErrorMessage(code))
	}
}
