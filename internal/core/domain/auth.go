package domain

// UserInfo is the identity extracted from a verified OAuth token.
// UserID is the local part of the verified email address.
type UserInfo struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// TenantSource records where a request's tenant identifier came from.
type TenantSource string

const (
	// TenantFromToken - the bearer token verified and mapped to a user.
	TenantFromToken TenantSource = "token"

	// TenantFromRequest - the request supplied an explicit tenant identifier.
	TenantFromRequest TenantSource = "request"

	// TenantFallback - a token was presented but failed verification,
	// so resolution fell back to the explicit identifier or the default.
	TenantFallback TenantSource = "fallback"

	// TenantDefault - neither token nor identifier was supplied.
	TenantDefault TenantSource = "default"
)

// TenantResolution is the outcome of resolving a request to a tenant.
// Carrying the source makes the invalid-token fallback observable instead
// of a silently swallowed error.
type TenantResolution struct {
	TenantID string       `json:"tenant_id"`
	Source   TenantSource `json:"source"`
}
