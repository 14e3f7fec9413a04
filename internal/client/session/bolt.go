package session

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/dmitrijs2005/founderhub/internal/common"
)

var sessionBucket = []byte("session")

// BoltStore keeps the pair in a single bbolt bucket.
type BoltStore struct {
	db *bbolt.DB
}

var _ ClosableStore = (*BoltStore)(nil)

// OpenBolt opens (or creates) the bbolt file at path. The timeout bounds the
// wait for the file lock held by another founderhub process.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create session bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Get(_ context.Context) (*Credential, error) {
	var cred *Credential

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(sessionBucket)
		if bucket == nil {
			return nil
		}
		// values are only valid inside the transaction, fromValues copies them
		cred = fromValues(bucket.Get([]byte(common.AccessTokenKey)), bucket.Get([]byte(common.RefreshTokenKey)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("credential store: %w", err)
	}
	return cred, nil
}

func (b *BoltStore) Set(ctx context.Context, c Credential) error {
	if c.Access == "" {
		return b.Clear(ctx)
	}

	err := b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(sessionBucket)
		if err != nil {
			return err
		}
		if err := bucket.Put([]byte(common.AccessTokenKey), []byte(c.Access)); err != nil {
			return err
		}
		if c.Refresh == "" {
			return bucket.Delete([]byte(common.RefreshTokenKey))
		}
		return bucket.Put([]byte(common.RefreshTokenKey), []byte(c.Refresh))
	})
	if err != nil {
		return fmt.Errorf("credential store: %w", err)
	}
	return nil
}

func (b *BoltStore) Clear(_ context.Context) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(sessionBucket)
		if bucket == nil {
			return nil
		}
		if err := bucket.Delete([]byte(common.AccessTokenKey)); err != nil {
			return err
		}
		return bucket.Delete([]byte(common.RefreshTokenKey))
	})
	if err != nil {
		return fmt.Errorf("credential store: %w", err)
	}
	return nil
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
