package secrets

import (
	"fmt"
	"os"
	"strings"

	"github.com/10gen/realm-backend/internal/backend"

	"github.com/joho/godotenv"
)

// EnvVarPrefix prefixes every environment variable read as a secret
const EnvVarPrefix = "REALM_BACKEND_SECRET_"

// EnvironmentStore reads secrets from environment variables
type EnvironmentStore struct {
	lookupEnv func(key string) (string, bool)
}

// NewEnvironmentStore creates a new environment store after loading the
// provided dotenv files; variables already set in the environment take precedence
// and files which do not exist are skipped
func NewEnvironmentStore(envFiles ...string) (*EnvironmentStore, error) {
	var files []string
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		files = append(files, file)
	}

	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, fmt.Errorf("failed to load env files: %w", err)
		}
	}

	return &EnvironmentStore{os.LookupEnv}, nil
}

// EnvVars returns the environment variables checked for a backend's secret
// in order of precedence: the one scoped to the backend branch, then the one
// shared by all backends
func EnvVars(id backend.Identifier, name string) []string {
	return []string{
		EnvVarPrefix + envVarName(id.BackendID()) + "_" + envVarName(id.Disambiguator()) + "_" + envVarName(name),
		EnvVarPrefix + envVarName(name),
	}
}

var envVarReplacer = strings.NewReplacer("-", "_", "/", "_", ".", "_")

func envVarName(s string) string {
	return strings.ToUpper(envVarReplacer.Replace(s))
}

// GetSecret gets the secret from the first environment variable set
func (s *EnvironmentStore) GetSecret(id backend.Identifier, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("secret name cannot be empty")
	}
	for _, key := range EnvVars(id, name) {
		if value, ok := s.lookupEnv(key); ok {
			return value, nil
		}
	}
	return "", errNotFound(id, name)
}

// SetSecret is not supported by the environment store
func (s *EnvironmentStore) SetSecret(id backend.Identifier, name, value string) error {
	return ErrReadOnly
}

// RemoveSecret is not supported by the environment store
func (s *EnvironmentStore) RemoveSecret(id backend.Identifier, name string) error {
	return ErrReadOnly
}
