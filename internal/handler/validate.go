package handler

import (
	"net/mail"
	"strings"
)

// Form validation messages match the storefront's original copy.
const (
	msgEmailRequired    = "E-Posta alanı gereklidir."
	msgEmailInvalid     = "E-Posta alanı geçerli değil."
	msgPasswordRequired = "Şifre alanı gereklidir."
	msgPasswordTooShort = "Şifre en az 8 karakter olmalıdır!"
	msgPasswordTooLong  = "Şifre en fazla 20 karakter olmalıdır!"
	msgNameRequired     = "Ad Soyad alanı gereklidir."
	msgPasswordMismatch = "Şifreler uyuşmuyor!"
)

func validateEmail(email string) string {
	if email == "" {
		return msgEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return msgEmailInvalid
	}
	return ""
}

func validatePassword(password string) string {
	switch {
	case password == "":
		return msgPasswordRequired
	case len(password) < 8:
		return msgPasswordTooShort
	case len(password) > 20:
		return msgPasswordTooLong
	}
	return ""
}

// validateSignIn returns field-keyed errors; an empty map means valid.
func validateSignIn(email, password string) map[string]string {
	errs := make(map[string]string)
	if msg := validateEmail(email); msg != "" {
		errs["email"] = msg
	}
	if msg := validatePassword(password); msg != "" {
		errs["password"] = msg
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateSignUp(name, email, password, confirmation string) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(name) == "" {
		errs["name"] = msgNameRequired
	}
	if msg := validateEmail(email); msg != "" {
		errs["email"] = msg
	}
	if msg := validatePassword(password); msg != "" {
		errs["password"] = msg
	} else if password != confirmation {
		errs["password_confirmation"] = msgPasswordMismatch
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
