package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/founderhub/internal/filex"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

// Open returns the store for backend. path is ignored for the memory backend
// and its parent directory is created for the others.
func Open(ctx context.Context, backend, path string) (ClosableStore, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite, "":
		if err := filex.EnsureParent(path); err != nil {
			return nil, err
		}
		return OpenSQLite(ctx, path)
	case BackendBolt:
		if err := filex.EnsureParent(path); err != nil {
			return nil, err
		}
		return OpenBolt(path)
	default:
		return nil, fmt.Errorf("unknown credential store backend %q", backend)
	}
}
