package secrets

import (
	"sync"

	"github.com/10gen/realm-backend/internal/backend"
)

// MemoryStore holds secrets in memory for the lifetime of the process
type MemoryStore struct {
	mu          sync.RWMutex
	secrets     map[string]string
	placeholder *string
}

// NewMemoryStore creates a new, empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{secrets: map[string]string{}}
}

// NewPlaceholderStore creates a new memory store which
// returns the placeholder for every secret it does not hold
func NewPlaceholderStore(placeholder string) *MemoryStore {
	s := NewMemoryStore()
	s.placeholder = &placeholder
	return s
}

// GetSecret gets the secret
func (s *MemoryStore) GetSecret(id backend.Identifier, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if value, ok := s.secrets[backend.SecretPath(id, name)]; ok {
		return value, nil
	}
	if s.placeholder != nil {
		return *s.placeholder, nil
	}
	return "", errNotFound(id, name)
}

// SetSecret sets the secret
func (s *MemoryStore) SetSecret(id backend.Identifier, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.secrets[backend.SecretPath(id, name)] = value
	return nil
}

// RemoveSecret removes the secret
func (s *MemoryStore) RemoveSecret(id backend.Identifier, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := backend.SecretPath(id, name)
	if _, ok := s.secrets[path]; !ok {
		return errNotFound(id, name)
	}
	delete(s.secrets, path)
	return nil
}
