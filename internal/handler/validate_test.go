package handler

import "testing"

func TestValidateSignIn(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     map[string]string
	}{
		{"valid", "a@b.com", "password1", nil},
		{"empty email", "", "password1", map[string]string{"email": msgEmailRequired}},
		{"bad email", "not-an-address", "password1", map[string]string{"email": msgEmailInvalid}},
		{"empty password", "a@b.com", "", map[string]string{"password": msgPasswordRequired}},
		{"short password", "a@b.com", "short", map[string]string{"password": msgPasswordTooShort}},
		{"long password", "a@b.com", "aaaaaaaaaaaaaaaaaaaaa", map[string]string{"password": msgPasswordTooLong}},
		{"both empty", "", "", map[string]string{"email": msgEmailRequired, "password": msgPasswordRequired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateSignIn(tt.email, tt.password)
			if len(got) != len(tt.want) {
				t.Fatalf("errors = %v, want %v", got, tt.want)
			}
			for field, msg := range tt.want {
				if got[field] != msg {
					t.Errorf("%s = %q, want %q", field, got[field], msg)
				}
			}
		})
	}
}

func TestValidateSignUp(t *testing.T) {
	if errs := validateSignUp("Ali Veli", "a@b.com", "password1", "password1"); errs != nil {
		t.Errorf("valid form produced errors: %v", errs)
	}

	errs := validateSignUp("  ", "a@b.com", "password1", "password1")
	if errs["name"] != msgNameRequired {
		t.Errorf("blank name: errors = %v", errs)
	}

	errs = validateSignUp("Ali", "a@b.com", "password1", "password2")
	if errs["password_confirmation"] != msgPasswordMismatch {
		t.Errorf("mismatch: errors = %v", errs)
	}

	// Mismatch is only reported once the password itself is valid.
	errs = validateSignUp("Ali", "a@b.com", "short", "other")
	if errs["password"] != msgPasswordTooShort {
		t.Errorf("short password: errors = %v", errs)
	}
	if _, ok := errs["password_confirmation"]; ok {
		t.Error("mismatch reported alongside invalid password")
	}
}
