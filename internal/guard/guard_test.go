package guard

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "guard-test-secret"

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "5",
		"exp": expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func validToken(t *testing.T) string {
	return signToken(t, testSecret, time.Now().Add(time.Hour))
}

func expiredToken(t *testing.T) string {
	return signToken(t, testSecret, time.Now().Add(-time.Hour))
}

func forgedToken(t *testing.T) string {
	return signToken(t, "some-other-secret", time.Now().Add(time.Hour))
}

func TestDecideTable(t *testing.T) {
	v := NewVerifier(testSecret)

	tests := []struct {
		name     string
		path     string
		token    string
		redirect string
	}{
		{"signin with valid token", "/signin", validToken(t), "/products"},
		{"signin without token", "/signin", "", ""},
		{"signin with expired token", "/signin", expiredToken(t), ""},
		{"signin with forged token", "/signin", forgedToken(t), ""},
		{"signup with valid token", "/signup", validToken(t), "/products"},
		{"signup with garbage token", "/signup", "not-a-jwt", ""},

		{"products without token", "/products", "", "/signin"},
		{"products with valid token", "/products", validToken(t), ""},
		{"products with expired token", "/products", expiredToken(t), "/products"},
		{"products with forged token", "/products", forgedToken(t), "/products"},
		{"products subpath without token", "/products/new", "", "/signin"},
		{"products subpath with valid token", "/products/new", validToken(t), ""},
		{"categories without token", "/categories", "", "/signin"},
		{"categories with valid token", "/categories", validToken(t), ""},
		{"categories with invalid token", "/categories", "not-a-jwt", "/products"},

		{"root without token", "/", "", "/categories"},
		{"root with valid token", "/", validToken(t), "/categories"},
		{"root with invalid token", "/", "garbage", "/categories"},

		{"logout without token", "/logout", "", "/"},
		{"logout with token", "/logout", validToken(t), ""},
		{"logout with invalid token", "/logout", "garbage", ""},

		{"unknown path", "/about", "", ""},
		{"health", "/health", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.path, tt.token, v.Verify)
			if d.RedirectTo != tt.redirect {
				t.Errorf("Decide(%q) redirect = %q, want %q", tt.path, d.RedirectTo, tt.redirect)
			}
			if want := tt.redirect == ""; d.Allowed() != want {
				t.Errorf("Decide(%q).Allowed() = %v, want %v", tt.path, d.Allowed(), want)
			}
		})
	}
}

func TestVerifierFailsClosed(t *testing.T) {
	v := NewVerifier(testSecret)

	for name, token := range map[string]string{
		"empty":        "",
		"garbage":      "not-a-jwt-at-all",
		"expired":      expiredToken(t),
		"wrong secret": forgedToken(t),
	} {
		if v.Verify(token) {
			t.Errorf("%s token should not verify", name)
		}
	}

	if !v.Verify(validToken(t)) {
		t.Error("valid token should verify")
	}
}

// Alg confusion: a token claiming "none" must never verify.
func TestVerifierRejectsUnsignedToken(t *testing.T) {
	v := NewVerifier(testSecret)

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "5"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if v.Verify(token) {
		t.Error("unsigned token should not verify")
	}
}
