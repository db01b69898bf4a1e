package guard

import (
	"log/slog"
	"net/http"

	"github.com/ebalci/pazaryeri/internal/credential"
)

// Middleware applies Decide to every request before any handler runs.
// A decision that would redirect a page to itself is let through to
// avoid a redirect loop.
// On a /logout pass-through it also removes the carried token, so the
// guard's view of the carrier matches the decision it just made.
func Middleware(v *Verifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := credential.Token(r)
			d := Decide(r.URL.Path, token, v.Verify)
			if !d.Allowed() && d.RedirectTo != r.URL.Path {
				logger.Debug("guard redirect", "path", r.URL.Path, "to", d.RedirectTo)
				http.Redirect(w, r, d.RedirectTo, http.StatusSeeOther)
				return
			}
			if r.URL.Path == "/logout" && token != "" {
				credential.ClearTokenCookie(w)
			}
			next.ServeHTTP(w, r)
		})
	}
}
