package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ebalci/pazaryeri/internal/commerce"
	"github.com/ebalci/pazaryeri/internal/credential"
	"github.com/ebalci/pazaryeri/internal/database"
	"github.com/ebalci/pazaryeri/internal/model"
)

const testSecret = "session-test-secret"

func setupManager(t *testing.T, apiHandler http.Handler) (*Manager, *credential.Store, *sql.DB) {
	t.Helper()

	ts := httptest.NewServer(apiHandler)
	t.Cleanup(ts.Close)

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := credential.NewStore(db, testSecret)
	api := commerce.NewClient(ts.URL)
	m := NewManager(store, api, slog.New(slog.DiscardHandler))
	return m, store, db
}

func noAPI(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected API call: %s %s", r.Method, r.URL.Path)
	})
}

func requestWith(cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest("GET", "/products", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func tokenCookie(v string) *http.Cookie {
	return &http.Cookie{Name: credential.TokenCookie, Value: v}
}

func userIDCookie(v string) *http.Cookie {
	return &http.Cookie{Name: credential.UserIDCookie, Value: v}
}

func TestCheckRequiresAllThreeKeys(t *testing.T) {
	user := model.User{ID: 5, Name: "Ali", Email: "a@b.com"}

	tests := []struct {
		name       string
		storeToken string // "" means no durable record at all
		cookies    []*http.Cookie
		want       bool
	}{
		{
			name:       "all present",
			storeToken: "tok1",
			cookies:    []*http.Cookie{tokenCookie("tok1"), userIDCookie("5")},
			want:       true,
		},
		{
			name:       "carrier token missing",
			storeToken: "tok1",
			cookies:    []*http.Cookie{userIDCookie("5")},
			want:       false,
		},
		{
			name:       "user id missing",
			storeToken: "tok1",
			cookies:    []*http.Cookie{tokenCookie("tok1")},
			want:       false,
		},
		{
			name:       "durable record missing",
			storeToken: "",
			cookies:    []*http.Cookie{tokenCookie("tok1"), userIDCookie("5")},
			want:       false,
		},
		{
			name:       "nothing present",
			storeToken: "",
			cookies:    nil,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store, _ := setupManager(t, noAPI(t))
			if tt.storeToken != "" {
				if err := store.Save(user, tt.storeToken); err != nil {
					t.Fatalf("save: %v", err)
				}
			}

			sess := m.Check(requestWith(tt.cookies...))
			if sess.IsAuthenticated != tt.want {
				t.Errorf("IsAuthenticated = %v, want %v", sess.IsAuthenticated, tt.want)
			}
			if sess.IsAuthLoading {
				t.Error("snapshots must not be in the loading state")
			}
			if tt.want && sess.User.ID != user.ID {
				t.Errorf("user id = %d, want %d", sess.User.ID, user.ID)
			}
		})
	}
}

// A persisted profile that fails to parse rehydrates to unauthenticated
// instead of faulting.
func TestCheckMalformedProfile(t *testing.T) {
	m, store, db := setupManager(t, noAPI(t))

	if err := store.Save(model.User{ID: 5, Name: "Ali"}, "tok1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := db.Exec(`UPDATE credentials SET profile = '{broken' WHERE user_id = 5`); err != nil {
		t.Fatalf("corrupt profile: %v", err)
	}

	sess := m.Check(requestWith(tokenCookie("tok1"), userIDCookie("5")))
	if sess.IsAuthenticated {
		t.Error("malformed profile should rehydrate to unauthenticated")
	}
}

func loginAPI(t *testing.T, data commerce.LoginData) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Login" || r.Method != http.MethodPost {
			t.Errorf("unexpected API call: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
			return
		}
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode login request: %v", err)
		}
		if req.Email != "a@b.com" || req.Password != "pass1234" {
			t.Errorf("login request = %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	})
}

func TestLoginSuccess(t *testing.T) {
	m, store, _ := setupManager(t, loginAPI(t, commerce.LoginData{
		IsSuccess: true,
		Message:   "Giriş başarılı.",
		Token:     "tok1",
		UserID:    5,
		UserMail:  "a@b.com",
		UserName:  "Ali",
	}))

	rec := httptest.NewRecorder()
	sess, msg := m.Login(context.Background(), rec, model.Session{}, "a@b.com", "pass1234")

	if !sess.IsAuthenticated || sess.IsError {
		t.Fatalf("session = %+v, want authenticated without error", sess)
	}
	if sess.User == nil || sess.User.ID != 5 || sess.User.Name != "Ali" {
		t.Errorf("user = %+v, want id 5 name Ali", sess.User)
	}
	if sess.Token != "tok1" {
		t.Errorf("token = %q, want %q", sess.Token, "tok1")
	}
	if msg != "Giriş başarılı." {
		t.Errorf("message = %q", msg)
	}

	// Durable record holds the raw token.
	rec5, err := store.Load(5)
	if err != nil || rec5 == nil {
		t.Fatalf("load record: %v, %v", rec5, err)
	}
	if rec5.Token != "tok1" {
		t.Errorf("stored token = %q, want %q", rec5.Token, "tok1")
	}

	// Carrier projection: access_token and user_id, both path "/".
	var gotToken, gotUserID string
	for _, c := range rec.Result().Cookies() {
		switch c.Name {
		case credential.TokenCookie:
			gotToken = c.Value
			if c.Path != "/" {
				t.Errorf("access_token path = %q, want /", c.Path)
			}
		case credential.UserIDCookie:
			gotUserID = c.Value
			if c.Path != "/" {
				t.Errorf("user_id path = %q, want /", c.Path)
			}
		}
	}
	if gotToken != "tok1" {
		t.Errorf("carrier token = %q, want %q", gotToken, "tok1")
	}
	if gotUserID != "5" {
		t.Errorf("carrier user_id = %q, want %q", gotUserID, "5")
	}
}

func TestLoginRejectedKeepsPriorState(t *testing.T) {
	m, _, _ := setupManager(t, loginAPI(t, commerce.LoginData{
		IsSuccess: false,
		Message:   "E-Posta veya şifre hatalı.",
	}))

	user := model.User{ID: 7, Name: "Veli"}
	prior := model.Session{IsAuthenticated: true, User: &user, Token: "old"}

	rec := httptest.NewRecorder()
	sess, msg := m.Login(context.Background(), rec, prior, "a@b.com", "pass1234")

	if !sess.IsError {
		t.Error("IsError should be set on a rejected login")
	}
	if !sess.IsAuthenticated {
		t.Error("a rejected login must not revoke the prior session")
	}
	if sess.IsAuthLoading {
		t.Error("snapshot must not be in the loading state")
	}
	if msg != "E-Posta veya şifre hatalı." {
		t.Errorf("message = %q", msg)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("rejected login must not touch the carrier")
	}
}

func TestLoginTransportFailure(t *testing.T) {
	m, _, _ := setupManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	sess, _ := m.Login(context.Background(), rec, model.Session{}, "a@b.com", "pass1234")

	if !sess.IsError {
		t.Error("IsError should be set on a transport failure")
	}
	if sess.IsAuthenticated {
		t.Error("a failed login from a clean state must not authenticate")
	}
}

func TestLogoutThenCheck(t *testing.T) {
	m, store, _ := setupManager(t, noAPI(t))

	user := model.User{ID: 5, Name: "Ali", Email: "a@b.com"}
	if err := store.Save(user, "tok1"); err != nil {
		t.Fatalf("save: %v", err)
	}

	req := requestWith(tokenCookie("tok1"), userIDCookie("5"))
	rec := httptest.NewRecorder()
	sess := m.Logout(rec, req)
	if sess.IsAuthenticated {
		t.Error("logout snapshot should be unauthenticated")
	}

	// Even a client replaying stale cookies rehydrates unauthenticated:
	// the durable record is gone.
	after := m.Check(requestWith(tokenCookie("tok1"), userIDCookie("5")))
	if after.IsAuthenticated {
		t.Error("check after logout should be unauthenticated")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	m, store, _ := setupManager(t, noAPI(t))

	if err := store.Save(model.User{ID: 5, Name: "Ali"}, "tok1"); err != nil {
		t.Fatalf("save: %v", err)
	}

	req := requestWith(tokenCookie("tok1"), userIDCookie("5"))
	first := m.Logout(httptest.NewRecorder(), req)
	second := m.Logout(httptest.NewRecorder(), req)

	if first != second {
		t.Errorf("repeated logout diverged: %+v vs %+v", first, second)
	}
	if second.IsAuthenticated || second.IsAuthLoading || second.IsError {
		t.Errorf("logout end state = %+v, want zero flags", second)
	}
}
