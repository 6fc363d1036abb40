package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/10gen/realm-backend/internal/backend"
	"github.com/10gen/realm-backend/internal/construct"
	"github.com/10gen/realm-backend/internal/secrets"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// set of supported auth config paths, relative to the project root
const (
	DirBackend = "backend"
	FileConfig = "auth.yaml"
)

// ConfigPath returns the path of the auth config within the project root
func ConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, DirBackend, FileConfig)
}

// DefaultVerificationMessage is the phone number verification message used by new projects
const DefaultVerificationMessage = "Your verification code is {####}"

type configFile struct {
	LoginWith loginWithFile `yaml:"loginWith"`
}

type loginWithFile struct {
	PhoneNumber       *construct.PhoneNumberLogin `yaml:"phoneNumber,omitempty"`
	ExternalProviders *externalProvidersFile      `yaml:"externalProviders,omitempty"`
}

type externalProvidersFile struct {
	Google       *googleFile `yaml:"google,omitempty"`
	Facebook     *clientFile `yaml:"facebook,omitempty"`
	Amazon       *clientFile `yaml:"amazon,omitempty"`
	OIDC         *oidcFile   `yaml:"oidc,omitempty"`
	Apple        *appleFile  `yaml:"apple,omitempty"`
	CallbackURLs []string    `yaml:"callbackUrls,omitempty"`
}

type secretRef struct {
	Secret string `yaml:"secret"`
}

type googleFile struct {
	ClientID          *secretRef `yaml:"clientId"`
	ClientSecretValue *secretRef `yaml:"clientSecretValue"`
}

type clientFile struct {
	ClientID     *secretRef `yaml:"clientId"`
	ClientSecret *secretRef `yaml:"clientSecret"`
}

type oidcFile struct {
	ClientID     *secretRef `yaml:"clientId"`
	ClientSecret *secretRef `yaml:"clientSecret"`
	IssuerURL    string     `yaml:"issuerUrl"`
}

type appleFile struct {
	ClientID   *secretRef `yaml:"clientId"`
	TeamID     *secretRef `yaml:"teamId"`
	KeyID      *secretRef `yaml:"keyId"`
	PrivateKey *secretRef `yaml:"privateKey"`
}

// LoadConfig reads the auth config at the specified path
func LoadConfig(fs afero.Fs, path string) (LoginWithFactoryProps, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoginWithFactoryProps{}, fmt.Errorf("could not find an auth config at %s", path)
		}
		return LoginWithFactoryProps{}, fmt.Errorf("failed to read auth config at %s: %w", path, err)
	}

	var config configFile
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return LoginWithFactoryProps{}, fmt.Errorf("failed to parse auth config at %s: %w", path, err)
	}

	var c converter
	loginWith := c.loginWith(config.LoginWith)
	if len(c.missing) > 0 {
		return LoginWithFactoryProps{}, fmt.Errorf(
			"invalid auth config at %s: the following fields must reference a secret: %s",
			path,
			strings.Join(c.missing, ", "),
		)
	}
	return loginWith, nil
}

// WriteDefaultConfig writes the auth config used by new projects to the specified path
func WriteDefaultConfig(fs afero.Fs, path string) error {
	data, err := yaml.Marshal(configFile{loginWithFile{
		PhoneNumber: &construct.PhoneNumberLogin{VerificationMessage: DefaultVerificationMessage},
	}})
	if err != nil {
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory at %s: %w", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write auth config at %s: %w", path, err)
	}
	return nil
}

// converter collects every secret field left blank while converting
type converter struct {
	missing []string
}

func (c *converter) secret(field string, ref *secretRef) backend.Secret {
	if ref == nil || ref.Secret == "" {
		c.missing = append(c.missing, field)
		return nil
	}
	return secrets.New(ref.Secret)
}

func (c *converter) loginWith(f loginWithFile) LoginWithFactoryProps {
	loginWith := LoginWithFactoryProps{PhoneNumber: f.PhoneNumber}

	ep := f.ExternalProviders
	if ep == nil {
		return loginWith
	}

	providers := ExternalProviders{CallbackURLs: ep.CallbackURLs}

	if p := ep.Google; p != nil {
		providers.Google = &GoogleProvider{
			ClientID:          c.secret("google.clientId", p.ClientID),
			ClientSecretValue: c.secret("google.clientSecretValue", p.ClientSecretValue),
		}
	}
	if p := ep.Facebook; p != nil {
		providers.Facebook = &FacebookProvider{
			ClientID:     c.secret("facebook.clientId", p.ClientID),
			ClientSecret: c.secret("facebook.clientSecret", p.ClientSecret),
		}
	}
	if p := ep.Amazon; p != nil {
		providers.Amazon = &AmazonProvider{
			ClientID:     c.secret("amazon.clientId", p.ClientID),
			ClientSecret: c.secret("amazon.clientSecret", p.ClientSecret),
		}
	}
	if p := ep.OIDC; p != nil {
		providers.OIDC = &OIDCProvider{
			ClientID:     c.secret("oidc.clientId", p.ClientID),
			ClientSecret: c.secret("oidc.clientSecret", p.ClientSecret),
			IssuerURL:    p.IssuerURL,
		}
	}
	if p := ep.Apple; p != nil {
		providers.Apple = &AppleProvider{
			ClientID:   c.secret("apple.clientId", p.ClientID),
			TeamID:     c.secret("apple.teamId", p.TeamID),
			KeyID:      c.secret("apple.keyId", p.KeyID),
			PrivateKey: c.secret("apple.privateKey", p.PrivateKey),
		}
	}

	loginWith.ExternalProviders = &providers
	return loginWith
}
