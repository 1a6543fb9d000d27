package response

// Error code table. Codes are stable; messages are the generic user-visible
// fallbacks (handlers add specifics via WithTips or an explicit flash message).
var (
	ErrInvalidRequest     = newError(40001, "Invalid request")
	ErrUnauthorized       = newError(40101, "Login required")
	ErrInvalidCredentials = newError(40102, "Invalid username or password")
	ErrForbidden          = newError(40301, "You do not have permission to view this certificate")
	ErrNotFound           = newError(40401, "Not found")
	ErrAlreadyApproved    = newError(40901, "Certificate has already been approved")
	ErrDatabase           = newError(50001, "Database error")
	ErrInternal           = newError(50002, "Internal server error")
	ErrFileStore          = newError(50003, "Error saving file")
)
