// Package construct holds the configuration shapes consumed by the
// backend infrastructure constructs
package construct

// AuthLoginWith is the auth construct's login configuration
type AuthLoginWith struct {
	PhoneNumber       *PhoneNumberLogin  `json:"phoneNumber,omitempty" yaml:"phoneNumber,omitempty"`
	ExternalProviders *ExternalProviders `json:"externalProviders,omitempty" yaml:"externalProviders,omitempty"`
}

// PhoneNumberLogin is the phone number login configuration
type PhoneNumberLogin struct {
	VerificationMessage string `json:"verificationMessage,omitempty" yaml:"verificationMessage,omitempty"`
}

// ExternalProviders is the external identity providers configuration
type ExternalProviders struct {
	Google       *GoogleProvider   `json:"google,omitempty" yaml:"google,omitempty"`
	Facebook     *FacebookProvider `json:"facebook,omitempty" yaml:"facebook,omitempty"`
	Amazon       *AmazonProvider   `json:"amazon,omitempty" yaml:"amazon,omitempty"`
	OIDC         *OIDCProvider     `json:"oidc,omitempty" yaml:"oidc,omitempty"`
	Apple        *AppleProvider    `json:"apple,omitempty" yaml:"apple,omitempty"`
	CallbackURLs []string          `json:"callbackUrls,omitempty" yaml:"callbackUrls,omitempty"`
}

// GoogleProvider is the Google identity provider configuration
type GoogleProvider struct {
	ClientID          string      `json:"clientId" yaml:"clientId"`
	ClientSecretValue SecretValue `json:"clientSecretValue" yaml:"clientSecretValue"`
}

// FacebookProvider is the Facebook identity provider configuration
type FacebookProvider struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
}

// AmazonProvider is the Login with Amazon identity provider configuration
type AmazonProvider struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
}

// OIDCProvider is the OpenID Connect identity provider configuration
type OIDCProvider struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	IssuerURL    string `json:"issuerUrl" yaml:"issuerUrl"`
}

// AppleProvider is the Sign in with Apple identity provider configuration
type AppleProvider struct {
	ClientID   string `json:"clientId" yaml:"clientId"`
	TeamID     string `json:"teamId" yaml:"teamId"`
	KeyID      string `json:"keyId" yaml:"keyId"`
	PrivateKey string `json:"privateKey" yaml:"privateKey"`
}
