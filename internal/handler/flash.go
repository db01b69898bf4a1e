package handler

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookie = "pazar_flash"

// Flash is a one-shot toast: written on the redirecting response, read
// and expired on the next page render. Every failure surfaced to the
// user goes through exactly this mechanism.
type Flash struct {
	Type    string // "success" | "error" | "info" | "warning"
	Message string
}

func setFlash(w http.ResponseWriter, flashType, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:  flashCookie,
		Value: url.QueryEscape(flashType + "|" + message),
		Path:  "/",
	})
}

// popFlash reads and clears the pending flash, if any.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:   flashCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	kind, msg, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	return &Flash{Type: kind, Message: msg}
}
