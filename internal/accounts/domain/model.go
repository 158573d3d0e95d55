package domain

import "errors"

var (
	// ErrEmailExists is returned when signup hits an already-registered email.
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials covers bad email/password pairs on login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrProfileNotFound is the "account has no profile" condition: the
	// identity provider knows the user but no profile document exists.
	// Distinct from a credential failure.
	ErrProfileNotFound = errors.New("account has no profile")
)

// ValidationError flags an empty required field before any network call.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// Profile is the per-account profile document stored at users/{uid}.
// CreatedAt is an ISO 8601 string, matching the records already written by
// the web client.
type Profile struct {
	Name      string `firestore:"name" json:"name"`
	Age       string `firestore:"age" json:"age"`
	JobTitle  string `firestore:"jobTitle" json:"jobTitle"`
	Email     string `firestore:"email" json:"email"`
	CreatedAt string `firestore:"createdAt" json:"createdAt"`
}

// Account is a profile plus its identity-provider UID, as listed in the
// account directory.
type Account struct {
	ID string `firestore:"-" json:"id"`
	Profile
}

// SignUpRequest carries the full set of signup form fields.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      string `json:"age"`
	JobTitle string `json:"jobTitle"`
}

// Session is the authenticated state handed back on login. The ID token is
// what protected requests present as a bearer token.
type Session struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}
