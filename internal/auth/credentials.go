package auth

// The front desk runs with exactly two fixed accounts. There is no user
// store: credentials are compared verbatim against these constants.
var staticCredentials = map[string]struct {
	Password string
	Role     string
}{
	"admin": {Password: "admin123", Role: "admin"},
	"staff": {Password: "staff123", Role: "staff"},
}

// Authenticate checks a username/password pair against the fixed accounts
// and returns the role on success.
func Authenticate(username, password string) (string, error) {
	cred, ok := staticCredentials[username]
	if !ok || cred.Password != password {
		return "", ErrInvalidCredentials
	}
	return cred.Role, nil
}
