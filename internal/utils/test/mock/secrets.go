package mock

import (
	"github.com/10gen/realm-backend/internal/backend"
	"github.com/10gen/realm-backend/internal/construct"
)

// SecretResolver is a mocked secret resolver
type SecretResolver struct {
	backend.SecretResolver
	ResolveSecretFn func(secret backend.Secret) (construct.SecretValue, error)
}

// ResolveSecret calls the mocked ResolveSecret implementation if provided,
// otherwise the call falls back to the underlying backend.SecretResolver implementation.
// NOTE: this may panic if the underlying backend.SecretResolver is left undefined
func (r SecretResolver) ResolveSecret(secret backend.Secret) (construct.SecretValue, error) {
	if r.ResolveSecretFn != nil {
		return r.ResolveSecretFn(secret)
	}
	return r.SecretResolver.ResolveSecret(secret)
}

// Secret is a mocked secret which resolves to its own name
type Secret string

// Resolve resolves the secret as its own name
func (s Secret) Resolve(store backend.SecretStore, id backend.Identifier) (construct.SecretValue, error) {
	return construct.UnsafePlainText(string(s)), nil
}

// SecretStore is a mocked secrets store
type SecretStore struct {
	GetSecretFn    func(id backend.Identifier, name string) (string, error)
	SetSecretFn    func(id backend.Identifier, name, value string) error
	RemoveSecretFn func(id backend.Identifier, name string) error
}

// GetSecret calls the mocked GetSecret implementation if provided,
// otherwise the secret's name is returned as its value
func (s SecretStore) GetSecret(id backend.Identifier, name string) (string, error) {
	if s.GetSecretFn != nil {
		return s.GetSecretFn(id, name)
	}
	return name, nil
}

// SetSecret calls the mocked SetSecret implementation if provided
func (s SecretStore) SetSecret(id backend.Identifier, name, value string) error {
	if s.SetSecretFn != nil {
		return s.SetSecretFn(id, name, value)
	}
	return nil
}

// RemoveSecret calls the mocked RemoveSecret implementation if provided
func (s SecretStore) RemoveSecret(id backend.Identifier, name string) error {
	if s.RemoveSecretFn != nil {
		return s.RemoveSecretFn(id, name)
	}
	return nil
}
