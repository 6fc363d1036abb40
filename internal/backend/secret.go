package backend

import (
	"github.com/10gen/realm-backend/internal/construct"
)

// SecretStore looks up the plaintext of a backend's secret
type SecretStore interface {
	GetSecret(id Identifier, name string) (string, error)
}

// Secret is a reference to a secret value which is not yet materialized
type Secret interface {
	Resolve(store SecretStore, id Identifier) (construct.SecretValue, error)
}

// SecretResolver resolves secret references into secret values
type SecretResolver interface {
	ResolveSecret(secret Secret) (construct.SecretValue, error)
}

// NewSecretResolver creates a secret resolver which resolves
// secrets against the store for the provided backend
func NewSecretResolver(store SecretStore, id Identifier) SecretResolver {
	return &secretResolver{store, id}
}

type secretResolver struct {
	store SecretStore
	id    Identifier
}

func (r *secretResolver) ResolveSecret(secret Secret) (construct.SecretValue, error) {
	return secret.Resolve(r.store, r.id)
}
