package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/10gen/realm-backend/internal/secrets"
	"github.com/10gen/realm-backend/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// DefaultEnvFile is the dotenv file read from the working directory
	// when the profile does not specify one
	DefaultEnvFile = ".env"

	envPrefix   = "realm_backend"
	profileType = "yaml"
)

// set of supported CLI profile keys
const (
	keySecretsProvider = "secrets_provider"
	keyEnvFile         = "env_file"
	keyTelemetryMode   = "telemetry_mode"
)

var settingKeys = []string{keyEnvFile, keySecretsProvider, keyTelemetryMode}

// set of profile flags
const (
	flagProfile      = "profile"
	flagProfileUsage = "the CLI profile to read settings from"

	flagSecretsProvider      = "secrets-provider"
	flagSecretsProviderUsage = `the store secrets are read from, available options: ["environment", "keyring", "memory"]`
)

// Profile is the CLI profile
type Profile struct {
	Name             string
	WorkingDirectory string

	dir string
	fs  afero.Fs
	v   *viper.Viper

	secretsProvider secrets.ProviderType
	telemetryMode   telemetry.Mode
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := homeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %s", dirErr)
	}
	return newProfile(name, dir, afero.NewOsFs()), nil
}

func newProfile(name, dir string, fs afero.Fs) *Profile {
	v := viper.New()
	v.SetFs(fs)

	return &Profile{
		Name: name,
		dir:  dir,
		fs:   fs,
		v:    v,
	}
}

// Dir returns the CLI profile directory
func (p Profile) Dir() string {
	return p.dir
}

// Load loads the CLI profile
func (p Profile) Load() error {
	p.v.SetConfigName(p.Name)
	p.v.AddConfigPath(p.dir)
	p.v.SetConfigPermissions(0600)
	p.v.SetConfigType(profileType)

	p.v.SetEnvPrefix(envPrefix)
	p.v.AutomaticEnv()

	if err := p.v.ReadInConfig(); err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil // proceed if profile doesn't exist
		case viper.ConfigParseError:
			return NewErrw(fmt.Sprintf("CLI profile at %s is invalid yaml", p.Path()), err)
		}
		return NewPrivilegedErr("failed to load CLI profile", err)
	}
	return nil
}

// Save saves the CLI profile
func (p Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return NewPrivilegedErr("failed to save CLI profile", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return NewPrivilegedErr("failed to save CLI profile", err)
		}
	}

	if err := p.v.WriteConfigAs(p.Path()); err != nil {
		return NewPrivilegedErr("failed to save CLI profile", err)
	}
	return nil
}

// Path returns the CLI profile filepath
func (p Profile) Path() string {
	return filepath.Join(p.dir, p.Name+"."+profileType)
}

// SecretsProvider returns the secrets provider set by flag,
// falling back to the one configured by the profile
func (p Profile) SecretsProvider() secrets.ProviderType {
	if p.secretsProvider != secrets.ProviderTypeEmpty {
		return p.secretsProvider
	}
	return secrets.ProviderType(p.v.GetString(keySecretsProvider))
}

// SetSecretsProvider sets the secrets provider of the CLI profile
func (p Profile) SetSecretsProvider(providerType secrets.ProviderType) {
	p.v.Set(keySecretsProvider, string(providerType))
}

// EnvFile returns the dotenv file of the CLI profile resolved against the working directory
func (p Profile) EnvFile() string {
	envFile := p.v.GetString(keyEnvFile)
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if filepath.IsAbs(envFile) {
		return envFile
	}
	return filepath.Join(p.WorkingDirectory, envFile)
}

// SetEnvFile sets the dotenv file of the CLI profile
func (p Profile) SetEnvFile(envFile string) {
	p.v.Set(keyEnvFile, envFile)
}

// TelemetryMode returns the telemetry mode set by flag,
// falling back to the one configured by the profile
func (p Profile) TelemetryMode() telemetry.Mode {
	if p.telemetryMode != telemetry.ModeEmpty {
		return p.telemetryMode
	}
	return telemetry.NewMode(p.v.GetString(keyTelemetryMode))
}

// SetTelemetryMode sets the telemetry mode of the CLI profile
func (p Profile) SetTelemetryMode(mode telemetry.Mode) {
	p.v.Set(keyTelemetryMode, mode.String())
}

// Settings returns the settings of the CLI profile by key,
// with any flag and environment overrides applied
func (p Profile) Settings() map[string]string {
	return map[string]string{
		keyEnvFile:         p.EnvFile(),
		keySecretsProvider: p.SecretsProvider().String(),
		keyTelemetryMode:   p.TelemetryMode().String(),
	}
}

// Set validates and sets the value of the CLI profile setting
func (p Profile) Set(key, value string) error {
	switch key {
	case keyEnvFile:
		p.SetEnvFile(value)
	case keySecretsProvider:
		var providerType secrets.ProviderType
		if err := providerType.Set(value); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		p.SetSecretsProvider(providerType)
	case keyTelemetryMode:
		var mode telemetry.Mode
		if err := mode.Set(value); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		p.SetTelemetryMode(mode)
	default:
		return fmt.Errorf("unsupported profile setting '%s', use one of [%s] instead", key, strings.Join(settingKeys, ", "))
	}
	return nil
}

// NewSecretsStore creates the secrets store configured by the CLI profile
func (p Profile) NewSecretsStore() (secrets.Store, error) {
	return secrets.NewStore(p.SecretsProvider(), p.EnvFile())
}
