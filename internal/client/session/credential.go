// Package session holds the client's credential pair and the stores that
// persist it.
//
// A Store has no cache in front of its backend: every Get reads the backend,
// so concurrent requests observe the same pair. Set replaces both tokens at
// once and Clear removes both; a pair is never left half-written.
package session

import "context"

// Credential is the access/refresh token pair issued by the API. Both values
// are opaque bearer strings.
type Credential struct {
	Access  string
	Refresh string
}

// Store persists at most one Credential.
type Store interface {
	// Get returns the stored pair, or (nil, nil) when there is none.
	Get(ctx context.Context) (*Credential, error)
	// Set replaces the stored pair.
	Set(ctx context.Context, c Credential) error
	// Clear removes the stored pair. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// ClosableStore is a Store backed by a resource that must be released.
type ClosableStore interface {
	Store
	Close() error
}

func fromValues(access, refresh []byte) *Credential {
	if len(access) == 0 {
		return nil
	}
	return &Credential{Access: string(access), Refresh: string(refresh)}
}
