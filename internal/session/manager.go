// Package session owns the authenticated-identity lifecycle: login,
// logout, and rehydration of a persisted credential into an in-memory
// session snapshot.
package session

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ebalci/pazaryeri/internal/commerce"
	"github.com/ebalci/pazaryeri/internal/credential"
	"github.com/ebalci/pazaryeri/internal/model"
)

// Manager is the single mutation entry point for session state. Each
// operation returns a fresh model.Session snapshot; callers never mutate
// one. Snapshots are terminal: IsAuthLoading is false on everything the
// manager hands out, the transient loading window lives inside the call.
type Manager struct {
	store  *credential.Store
	api    *commerce.Client
	logger *slog.Logger
}

func NewManager(store *credential.Store, api *commerce.Client, logger *slog.Logger) *Manager {
	return &Manager{store: store, api: api, logger: logger}
}

// Check rehydrates the session from the persisted credential. The user
// is authenticated iff the carrier token, the stored token and the
// stored profile are all present and non-empty; partial presence, and a
// stored value that fails to decrypt or parse, both yield an
// unauthenticated session rather than a fault.
func (m *Manager) Check(r *http.Request) model.Session {
	carried := credential.Token(r)
	userID, ok := credential.UserID(r)
	if carried == "" || !ok {
		return model.Session{}
	}

	rec, err := m.store.Load(userID)
	if err != nil {
		m.logger.Warn("credential rehydration failed", "user_id", userID, "error", err)
		return model.Session{}
	}
	if rec == nil || rec.Token == "" {
		return model.Session{}
	}

	user := rec.User
	return model.Session{
		IsAuthenticated: true,
		User:            &user,
		Token:           rec.Token,
	}
}

// Login exchanges credentials for a session. On success the durable
// record is written first, then the cookie carrier is projected from it;
// a crash between the two leaves a half-state the next Check resolves to
// unauthenticated. On rejection the prior session is returned with
// IsError set; a failed login does not revoke an existing session.
// The returned message is the collaborator's text, when it sent one.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, prior model.Session, email, password string) (model.Session, string) {
	data, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.logger.Warn("login call failed", "error", err)
		return failed(prior), ""
	}
	if !data.IsSuccess {
		return failed(prior), data.Message
	}

	user := model.User{
		ID:    data.UserID,
		Name:  data.UserName,
		Email: data.UserMail,
	}

	if err := m.store.Save(user, data.Token); err != nil {
		m.logger.Error("persist credential", "user_id", user.ID, "error", err)
		return failed(prior), ""
	}
	credential.WriteCookies(w, data.Token, user.ID)

	return model.Session{
		IsAuthenticated: true,
		User:            &user,
		Token:           data.Token,
	}, data.Message
}

// Logout clears the durable record and the carrier token. It always
// succeeds locally, even when there was nothing to clear.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) model.Session {
	if userID, ok := credential.UserID(r); ok {
		if err := m.store.Clear(userID); err != nil {
			m.logger.Warn("clear credential", "user_id", userID, "error", err)
		}
	}
	credential.ClearTokenCookie(w)
	return model.Session{}
}

func failed(prior model.Session) model.Session {
	s := prior
	s.IsError = true
	s.IsAuthLoading = false
	return s
}
