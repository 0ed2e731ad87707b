package appErrors

// Error codes grouped by domain.
const (
	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeArtisanNotFound  ErrorCode = "ARTISAN_NOT_FOUND"
	CodeReviewNotFound   ErrorCode = "REVIEW_NOT_FOUND"
	CodeReportNotFound   ErrorCode = "REPORT_NOT_FOUND"
	CodeCategoryNotFound ErrorCode = "CATEGORY_NOT_FOUND"
	CodeStateNotFound    ErrorCode = "STATE_NOT_FOUND"
	CodeCityNotFound     ErrorCode = "CITY_NOT_FOUND"

	// Business rules
	CodeDuplicateReview    ErrorCode = "DUPLICATE_REVIEW"
	CodeDuplicateReport    ErrorCode = "DUPLICATE_REPORT"
	CodeNotEligible        ErrorCode = "NOT_ELIGIBLE"
	CodeUsernameTaken      ErrorCode = "USERNAME_TAKEN"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"

	// System
	CodeInternalError      ErrorCode = "INTERNAL_ERROR"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)
