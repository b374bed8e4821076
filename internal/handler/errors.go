package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgUserNotFoundError   = "User not found"
	ErrMsgTreeNotFoundError   = "Tree not found"
	ErrMsgNotFoundError       = "Resource not found"
	ErrMsgUnknownVarietyError = "Unknown coffee variety"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgInvalidTimeError    = "Invalid time"
	ErrMsgInvalidPlatformErr  = "Invalid platform"
	ErrMsgOnCooldownError     = "Action is on cooldown. Try again later"
	ErrMsgAlreadyHarvestedErr = "Tree has already been harvested"
	ErrMsgNotMatureError      = "Tree is not ready to harvest yet"
	ErrMsgAlreadyCheckedInErr = "You have already checked in today"
)

// Validation field messages
const (
	ValidationMsgRequired     = "This field is required"
	ValidationMsgPlatform     = "Invalid platform"
	ValidationMsgMaxFormat    = "Must be at most %s characters"
	ValidationMsgMinFormat    = "Must be at least %s characters"
	ValidationMsgInvalidChars = "Contains invalid characters"
	ValidationMsgInvalid      = "Invalid value"
	ValidationMsgBadFormat    = "Invalid request format"
)

// Log messages
const (
	LogMsgDecodeFailedFormat  = "Failed to decode %s request"
	LogMsgRequestDecoded      = "%s request decoded"
	LogMsgMissingQueryParam   = "Missing query parameter"
	LogMsgServiceError        = "Service call failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgIdentityResolveFail = "Failed to resolve caller identity"
)

// Query parameter names
const (
	ParamPlatform         = "platform"
	ParamPlatformID       = "platform_id"
	ParamUsername         = "username"
	ParamTreeID           = "tree_id"
	ParamLimit            = "limit"
	ParamOffset           = "offset"
	ParamYear             = "year"
	ParamMonth            = "month"
	ParamIncludeHarvested = "include_harvested"
	ParamFormat           = "format"

	FormatText = "text"
)

// Headers
const (
	HeaderRetryAfter     = "Retry-After"
	HeaderAcceptLanguage = "Accept-Language"
	HeaderContentLang    = "Content-Language"
)
