package secrets

import (
	"errors"
	"fmt"

	"github.com/10gen/realm-backend/internal/backend"

	"github.com/zalando/go-keyring"
)

// KeyringService is the OS keyring service secrets are stored under
const KeyringService = backend.ToolName

// KeyringStore stores secrets in the OS keyring
type KeyringStore struct {
	service string
}

// NewKeyringStore creates a new keyring store
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{KeyringService}
}

// GetSecret gets the secret from the OS keyring
func (s *KeyringStore) GetSecret(id backend.Identifier, name string) (string, error) {
	value, err := keyring.Get(s.service, backend.SecretPath(id, name))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", errNotFound(id, name)
		}
		return "", fmt.Errorf("failed to read from keyring: %w", err)
	}
	return value, nil
}

// SetSecret sets the secret in the OS keyring
func (s *KeyringStore) SetSecret(id backend.Identifier, name, value string) error {
	if err := keyring.Set(s.service, backend.SecretPath(id, name), value); err != nil {
		return fmt.Errorf("failed to write to keyring: %w", err)
	}
	return nil
}

// RemoveSecret removes the secret from the OS keyring
func (s *KeyringStore) RemoveSecret(id backend.Identifier, name string) error {
	if err := keyring.Delete(s.service, backend.SecretPath(id, name)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errNotFound(id, name)
		}
		return fmt.Errorf("failed to delete from keyring: %w", err)
	}
	return nil
}
