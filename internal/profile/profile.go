// Package profile stores the local player's identity: a stable user id and
// a validated username.
package profile

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Profile is the local player.
type Profile struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Complete reports whether both id and name are set.
func (p *Profile) Complete() bool {
	return p != nil && p.UserID != "" && p.Username != ""
}

// Repository reads and writes the profile in a KV store.
type Repository struct {
	kv    storage.KV
	newID func() string
}

// NewRepository creates a repository that generates ids with uuid.
func NewRepository(kv storage.KV) *Repository {
	return &Repository{kv: kv, newID: uuid.NewString}
}

// Get returns the stored profile, or nil if none was saved.
func (r *Repository) Get() (*Profile, error) {
	p, err := storage.GetJSON[*Profile](r.kv, storage.KeyUserProfile, nil)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// HasProfile reports whether a complete profile is stored.
// Read errors count as no profile.
func (r *Repository) HasProfile() bool {
	p, err := r.Get()
	return err == nil && p.Complete()
}

// Save validates username and stores it with the player's user id,
// generating the id on first use.
func (r *Repository) Save(username string) (*Profile, error) {
	v := ValidateUsername(username)
	if !v.Valid {
		return nil, &ValidationError{Messages: v.Errors}
	}

	id, err := r.userID()
	if err != nil {
		return nil, err
	}

	p := &Profile{UserID: id, Username: v.Trimmed}
	if err := storage.SetJSON(r.kv, storage.KeyUserProfile, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateUsername renames the stored profile, creating it if absent.
func (r *Repository) UpdateUsername(username string) (*Profile, error) {
	p, err := r.Get()
	if err != nil || p == nil || p.UserID == "" {
		return r.Save(username)
	}

	v := ValidateUsername(username)
	if !v.Valid {
		return nil, &ValidationError{Messages: v.Errors}
	}
	updated := &Profile{UserID: p.UserID, Username: v.Trimmed}
	if err := storage.SetJSON(r.kv, storage.KeyUserProfile, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository) userID() (string, error) {
	id, err := storage.GetJSON(r.kv, storage.KeyUserID, "")
	if err == nil && id != "" {
		return id, nil
	}
	id = r.newID()
	if err := storage.SetJSON(r.kv, storage.KeyUserID, id); err != nil {
		return "", err
	}
	return id, nil
}
