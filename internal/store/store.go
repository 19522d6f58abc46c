// Package store persists target profiles in an encrypted collection.
// Profile data is recon material about real people, so it never touches disk
// in the clear.
package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/zforge/internal/wordlist"
)

// ProfileRecord is a saved target profile.
type ProfileRecord struct {
	ID        string           `json:"id"`
	Profile   wordlist.Profile `json:"profile"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewProfileRecord wraps a profile with a fresh ID and timestamp.
func NewProfileRecord(p wordlist.Profile, now time.Time) ProfileRecord {
	return ProfileRecord{
		ID:        uuid.NewString(),
		Profile:   p,
		CreatedAt: now,
	}
}

// Store is an encrypted profile store on a filesystem.
type Store struct {
	s        *zstore.Store
	profiles *zstore.Collection[ProfileRecord]
}

// Open unlocks (or on first run initializes) the store with the master
// password. The password slice is erased before returning.
func Open(fsys zfilesystem.ReadWriteFileFS, password []byte) (*Store, error) {
	defer zcrypto.Erase(password)

	s, err := zstore.Open(fsys, password)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	profiles, err := zstore.NewCollection[ProfileRecord](s, "profiles")
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("open store: profiles collection: %w", err)
	}

	return &Store{s: s, profiles: profiles}, nil
}

// List returns all saved profiles sorted by CreatedAt descending.
func (s *Store) List() ([]ProfileRecord, error) {
	records, err := s.profiles.List()
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	// zstore.List does not guarantee order
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records, nil
}

// Get returns a saved profile by ID.
func (s *Store) Get(id string) (ProfileRecord, error) {
	rec, err := s.profiles.Get(id)
	if err != nil {
		return ProfileRecord{}, fmt.Errorf("get profile %s: %w", id, err)
	}
	return rec, nil
}

// Save persists a profile record.
func (s *Store) Save(rec ProfileRecord) error {
	if err := s.profiles.Put(rec.ID, rec); err != nil {
		return fmt.Errorf("save profile %s: %w", rec.ID, err)
	}
	return nil
}

// Delete removes a saved profile by ID.
func (s *Store) Delete(id string) error {
	if err := s.profiles.Delete(id); err != nil {
		return fmt.Errorf("delete profile %s: %w", id, err)
	}
	return nil
}

// Close releases the underlying store and its key material.
func (s *Store) Close() error {
	return s.s.Close()
}
