package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ebalci/pazaryeri/internal/commerce"
	"github.com/ebalci/pazaryeri/internal/session"
)

// AuthHandler serves the sign-in and sign-up pages and drives the
// session manager.
type AuthHandler struct {
	sessions  *session.Manager
	api       *commerce.Client
	templates *template.Template
	logger    *slog.Logger
}

func NewAuthHandler(sessions *session.Manager, api *commerce.Client, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions:  sessions,
		api:       api,
		templates: parseTemplates(),
		logger:    logger,
	}
}

func (h *AuthHandler) SignInPage(w http.ResponseWriter, r *http.Request) {
	render(w, h.templates, "signin.html", pageData{
		Title: "Giriş Yap",
		Flash: popFlash(w, r),
	}, h.logger)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if errs := validateSignIn(email, password); errs != nil {
		render(w, h.templates, "signin.html", pageData{
			Title:  "Giriş Yap",
			Errors: errs,
			Values: map[string]string{"email": email},
		}, h.logger)
		return
	}

	prior := h.sessions.Check(r)
	sess, message := h.sessions.Login(r.Context(), w, prior, email, password)
	if !sess.IsAuthenticated || sess.IsError {
		if message == "" {
			message = "Bir sorun oluştu!"
		}
		setFlash(w, "error", message)
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}

	if message == "" {
		message = "Giriş başarılı."
	}
	setFlash(w, "success", message)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) SignUpPage(w http.ResponseWriter, r *http.Request) {
	render(w, h.templates, "signup.html", pageData{
		Title: "Kayıt Ol",
		Flash: popFlash(w, r),
	}, h.logger)
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	confirmation := r.FormValue("password_confirmation")

	if errs := validateSignUp(name, email, password, confirmation); errs != nil {
		render(w, h.templates, "signup.html", pageData{
			Title:  "Kayıt Ol",
			Errors: errs,
			Values: map[string]string{"name": name, "email": email},
		}, h.logger)
		return
	}

	data, err := h.api.Register(r.Context(), name, email, password)
	if err != nil {
		h.logger.Warn("register call failed", "error", err)
		setFlash(w, "error", "Bir sorun oluştu!")
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}
	if !data.IsSuccess {
		message := data.Message
		if message == "" {
			message = "Bir sorun oluştu!"
		}
		setFlash(w, "error", message)
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	message := data.Message
	if message == "" {
		message = "Kayıt başarıyla tamamlandı."
	}
	setFlash(w, "success", message)
	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}

// Logout finishes what the route guard started: the guard already
// removed the carrier token before letting the request through, this
// clears the durable record and sends the visitor to the sign-in page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(w, r)
	setFlash(w, "info", "Çıkış yapıldı.")
	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}
