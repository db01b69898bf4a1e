package credential

import (
	"net/http"
	"strconv"
)

// Cookie names of the request-visible credential carrier. The route
// guard reads TokenCookie only; it never consults the durable store.
const (
	TokenCookie  = "access_token"
	UserIDCookie = "user_id"
)

// WriteCookies projects the credential into the carrier, both scoped to
// path "/". Called only alongside Store.Save so the two stay in sync.
func WriteCookies(w http.ResponseWriter, token string, userID int64) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     UserIDCookie,
		Value:    strconv.FormatInt(userID, 10),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie removes the bearer token from the carrier.
func ClearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token returns the carried bearer token, or "" when absent.
func Token(r *http.Request) string {
	c, err := r.Cookie(TokenCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// UserID returns the carried user id. ok is false when the cookie is
// absent or not a number.
func UserID(r *http.Request) (id int64, ok bool) {
	c, err := r.Cookie(UserIDCookie)
	if err != nil {
		return 0, false
	}
	id, err = strconv.ParseInt(c.Value, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
