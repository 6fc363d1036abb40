package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/10gen/realm-backend/internal/backend"
)

// ErrNotFound is returned when a secret does not exist in a store
var ErrNotFound = errors.New("secret not found")

// IsNotFound reports whether the error signals a missing secret
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func errNotFound(id backend.Identifier, name string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, backend.SecretPath(id, name))
}

// ErrReadOnly is returned when a read-only store is asked to change a secret
var ErrReadOnly = errors.New("secrets store is read-only")

// Store manages the secrets of any backend
type Store interface {
	backend.SecretStore
	SetSecret(id backend.Identifier, name, value string) error
	RemoveSecret(id backend.Identifier, name string) error
}

// ProviderType is the secrets store provider type
type ProviderType string

// String returns the provider type display
func (pt ProviderType) String() string { return string(pt) }

// Type returns the ProviderType type
func (pt ProviderType) Type() string { return "string" }

// Set validates and sets the provider type value
func (pt *ProviderType) Set(val string) error {
	providerType := ProviderType(val)

	if !isValidProviderType(providerType) {
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(allProviderTypes(), ", "))
	}

	*pt = providerType
	return nil
}

// set of supported secrets store providers
const (
	ProviderTypeEmpty       ProviderType = ""
	ProviderTypeEnvironment ProviderType = "environment"
	ProviderTypeKeyring     ProviderType = "keyring"
	ProviderTypeMemory      ProviderType = "memory"
)

func allProviderTypes() []string {
	return []string{
		ProviderTypeEnvironment.String(),
		ProviderTypeKeyring.String(),
		ProviderTypeMemory.String(),
	}
}

func isValidProviderType(pt ProviderType) bool {
	switch pt {
	case
		ProviderTypeEmpty, // allow the zero-value to fall back to the default provider
		ProviderTypeEnvironment,
		ProviderTypeKeyring,
		ProviderTypeMemory:
		return true
	}
	return false
}

// NewStore creates a new secrets store for the provider type
// The env files are only read by the environment store
func NewStore(providerType ProviderType, envFiles ...string) (Store, error) {
	switch providerType {
	case ProviderTypeEmpty, ProviderTypeEnvironment:
		return NewEnvironmentStore(envFiles...)
	case ProviderTypeKeyring:
		return NewKeyringStore(), nil
	case ProviderTypeMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown secrets provider: %s", providerType)
}
