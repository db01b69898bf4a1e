package guard

import "github.com/golang-jwt/jwt/v5"

// Verifier checks carried bearer tokens against the process-wide
// signing secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify reports whether token is a valid, unexpired HMAC-signed JWT.
// Every failure mode counts as "not verified"; nothing here panics or
// propagates an error.
func (v *Verifier) Verify(token string) bool {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		return false
	}
	return parsed.Valid
}
