package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyAdminSID     = "admin_sid"
	ContextKeyAdminProfile = "admin_profile"
	ContextKeySessionToken = "session_token"

	// Person categories
	PersonCategoryTeam         = "team"
	PersonCategoryFaculty      = "faculty"
	PersonCategoryAlumni       = "alumni"
	PersonCategoryGoldenAlumni = "golden_alumni"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
)

// IsValidPersonCategory reports whether category is one of the known person
// categories.
func IsValidPersonCategory(category string) bool {
	switch category {
	case PersonCategoryTeam, PersonCategoryFaculty, PersonCategoryAlumni, PersonCategoryGoldenAlumni:
		return true
	}
	return false
}
