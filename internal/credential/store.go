// Package credential owns the persisted session credential: one
// authoritative record in the local database, with the browser cookies
// treated as a derived projection written by the same code paths.
package credential

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ebalci/pazaryeri/internal/model"
)

// Record is the durable credential for one user: the upstream bearer
// token and the user profile it was issued to.
type Record struct {
	UserID int64
	Token  string
	User   model.User
}

// Store persists credential records. The bearer token is encrypted at
// rest with a key derived from the process secret.
type Store struct {
	db     *sql.DB
	secret string
}

func NewStore(db *sql.DB, secret string) *Store {
	return &Store{db: db, secret: secret}
}

// Save upserts the record for user. This is the only write path for the
// durable half of the credential.
func (s *Store) Save(user model.User, token string) error {
	sealed, err := seal([]byte(token), s.secret)
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}
	profile, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO credentials (user_id, token, profile) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET token = excluded.token, profile = excluded.profile, updated_at = datetime('now')`,
		user.ID, sealed, string(profile),
	)
	if err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

// Load returns the record for userID, or nil when none is stored.
// A stored value that cannot be decrypted or parsed is an error; callers
// treat that the same as "no credential".
func (s *Store) Load(userID int64) (*Record, error) {
	var (
		sealed  []byte
		profile string
	)
	row := s.db.QueryRow(`SELECT token, profile FROM credentials WHERE user_id = ?`, userID)
	err := row.Scan(&sealed, &profile)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}

	token, err := open(sealed, s.secret)
	if err != nil {
		return nil, fmt.Errorf("open token: %w", err)
	}

	rec := &Record{UserID: userID, Token: string(token)}
	if err := json.Unmarshal([]byte(profile), &rec.User); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return rec, nil
}

// Clear deletes the record for userID. Deleting a record that never
// existed is not an error.
func (s *Store) Clear(userID int64) error {
	_, err := s.db.Exec(`DELETE FROM credentials WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}
