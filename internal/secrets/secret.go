// Package secrets provides the secret references used in a backend's
// configuration along with the stores they are resolved against
package secrets

import (
	"fmt"

	"github.com/10gen/realm-backend/internal/backend"
	"github.com/10gen/realm-backend/internal/construct"
)

// Secret is a reference to a named backend secret
type Secret struct {
	name string
}

// New creates a new reference to the named backend secret
func New(name string) Secret {
	return Secret{name}
}

// Name returns the secret name
func (s Secret) Name() string { return s.name }

// Resolve looks up the secret in the store for the specified backend
func (s Secret) Resolve(store backend.SecretStore, id backend.Identifier) (construct.SecretValue, error) {
	value, err := store.GetSecret(id, s.name)
	if err != nil {
		return construct.SecretValue{}, ResolveErr{s.name, err}
	}
	return construct.UnsafePlainText(value), nil
}

// ResolveErr is returned when a secret fails to resolve from its store
type ResolveErr struct {
	Name string
	Err  error
}

func (err ResolveErr) Error() string {
	return fmt.Sprintf("failed to resolve secret '%s': %s", err.Name, err.Err)
}

func (err ResolveErr) Unwrap() error { return err.Err }
