package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/thaedal/thaedal-admin/internal/client/storage"
)

// credentialsKey is the single record key: one admin session per client.
var credentialsKey = []byte("current")

// SaveCredentials stores the admin session credential.
func (s *Storage) SaveCredentials(ctx context.Context, creds *storage.Credentials) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		data, err := json.Marshal(creds)
		if err != nil {
			return fmt.Errorf("failed to marshal credentials: %w", err)
		}

		if err := bucket.Put(credentialsKey, data); err != nil {
			return fmt.Errorf("failed to save credentials: %w", err)
		}

		return nil
	})
}

// GetCredentials retrieves the stored admin session credential.
func (s *Storage) GetCredentials(ctx context.Context) (*storage.Credentials, error) {
	var creds *storage.Credentials

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		data := bucket.Get(credentialsKey)
		if data == nil {
			return storage.ErrCredentialsNotFound
		}

		creds = &storage.Credentials{}
		if err := json.Unmarshal(data, creds); err != nil {
			return fmt.Errorf("failed to unmarshal credentials: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return creds, nil
}

// DeleteCredentials removes the stored credential. Logout must succeed
// whether or not a credential exists, so a missing record is fine.
func (s *Storage) DeleteCredentials(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		if err := bucket.Delete(credentialsKey); err != nil {
			return fmt.Errorf("failed to delete credentials: %w", err)
		}

		return nil
	})
}
