package response

const (
	DefaultErrorMessage = "Something went wrong"
	MessageSuccess      = "Success"

	ValidationErrorCode = 400
	ValidationErrorMsg  = "Validation error"

	PermissionErrorCode = 403
	PermissionErrorMsg  = "You don't have permission to do this"

	RateLimitErrorCode = 429
	RateLimitErrorMsg  = "Request rate limit exceeded"

	InternalServerErrorCode = 500

	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)
