// Package auth translates a backend's user-authored auth configuration
// into the configuration consumed by the auth construct
package auth

import (
	"github.com/10gen/realm-backend/internal/backend"
	"github.com/10gen/realm-backend/internal/construct"
)

// LoginWithFactoryProps is the user-authored login configuration
type LoginWithFactoryProps struct {
	PhoneNumber       *construct.PhoneNumberLogin
	ExternalProviders *ExternalProviders
}

// ExternalProviders is the user-authored external identity providers configuration
type ExternalProviders struct {
	Google       *GoogleProvider
	Facebook     *FacebookProvider
	Amazon       *AmazonProvider
	OIDC         *OIDCProvider
	Apple        *AppleProvider
	CallbackURLs []string
}

// GoogleProvider is the Google identity provider configuration
type GoogleProvider struct {
	ClientID          backend.Secret
	ClientSecretValue backend.Secret
}

// FacebookProvider is the Facebook identity provider configuration
type FacebookProvider struct {
	ClientID     backend.Secret
	ClientSecret backend.Secret
}

// AmazonProvider is the Login with Amazon identity provider configuration
type AmazonProvider struct {
	ClientID     backend.Secret
	ClientSecret backend.Secret
}

// OIDCProvider is the OpenID Connect identity provider configuration
type OIDCProvider struct {
	ClientID     backend.Secret
	ClientSecret backend.Secret
	IssuerURL    string
}

// AppleProvider is the Sign in with Apple identity provider configuration
type AppleProvider struct {
	ClientID   backend.Secret
	TeamID     backend.Secret
	KeyID      backend.Secret
	PrivateKey backend.Secret
}
