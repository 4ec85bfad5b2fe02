// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// ProviderType identifies how a session was established.
type ProviderType string

const (
	// ProviderTypeEmail is the email/password login.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is Google Identity Services sign-in.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeFacebook is Facebook Login.
	ProviderTypeFacebook ProviderType = "facebook"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// TokenPair is the access/refresh token pair issued by the backend.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// IsComplete reports whether both tokens are present.
func (tp TokenPair) IsComplete() bool {
	return tp.AccessToken != "" && tp.RefreshToken != ""
}

// AuthSession is what the backend returns after a successful login or registration.
type AuthSession struct {
	User   *User     `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// AuthStatus is the client-side session state machine.
type AuthStatus int

const (
	// AuthStatusAnonymous means no session is held.
	AuthStatusAnonymous AuthStatus = iota
	// AuthStatusAuthenticating means a login, registration or OAuth exchange is in flight.
	AuthStatusAuthenticating
	// AuthStatusAuthenticated means valid tokens are stored and the user is loaded.
	AuthStatusAuthenticated
	// AuthStatusExpired means stored tokens were found invalid after having been authenticated.
	AuthStatusExpired
)

// String returns the string representation of the AuthStatus.
func (s AuthStatus) String() string {
	switch s {
	case AuthStatusAnonymous:
		return "anonymous"
	case AuthStatusAuthenticating:
		return "authenticating"
	case AuthStatusAuthenticated:
		return "authenticated"
	case AuthStatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// MarshalText renders the status by name.
func (s AuthStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
