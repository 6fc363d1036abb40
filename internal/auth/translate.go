package auth

import (
	"github.com/10gen/realm-backend/internal/backend"
	"github.com/10gen/realm-backend/internal/construct"
)

// TranslateLoginWith translates the login configuration into the auth construct's
// login configuration, resolving every secret with the provided resolver
// Any error returned by the resolver is returned as-is
func TranslateLoginWith(loginWith LoginWithFactoryProps, resolver backend.SecretResolver) (construct.AuthLoginWith, error) {
	var result construct.AuthLoginWith

	if loginWith.PhoneNumber != nil {
		result.PhoneNumber = loginWith.PhoneNumber
	}

	if loginWith.ExternalProviders == nil {
		return result, nil
	}

	externalProviders, err := translateExternalProviders(*loginWith.ExternalProviders, resolver)
	if err != nil {
		return construct.AuthLoginWith{}, err
	}
	result.ExternalProviders = &externalProviders

	return result, nil
}

func translateExternalProviders(providers ExternalProviders, resolver backend.SecretResolver) (construct.ExternalProviders, error) {
	t := translator{resolver: resolver}

	var result construct.ExternalProviders

	if p := providers.Google; p != nil {
		result.Google = &construct.GoogleProvider{
			ClientID:          t.unwrap(p.ClientID),
			ClientSecretValue: t.resolve(p.ClientSecretValue),
		}
	}

	if p := providers.Facebook; p != nil {
		result.Facebook = &construct.FacebookProvider{
			ClientID:     t.unwrap(p.ClientID),
			ClientSecret: t.unwrap(p.ClientSecret),
		}
	}

	if p := providers.Amazon; p != nil {
		result.Amazon = &construct.AmazonProvider{
			ClientID:     t.unwrap(p.ClientID),
			ClientSecret: t.unwrap(p.ClientSecret),
		}
	}

	if p := providers.OIDC; p != nil {
		result.OIDC = &construct.OIDCProvider{
			ClientID:     t.unwrap(p.ClientID),
			ClientSecret: t.unwrap(p.ClientSecret),
			IssuerURL:    p.IssuerURL,
		}
	}

	if p := providers.Apple; p != nil {
		result.Apple = &construct.AppleProvider{
			ClientID:   t.unwrap(p.ClientID),
			TeamID:     t.unwrap(p.TeamID),
			KeyID:      t.unwrap(p.KeyID),
			PrivateKey: t.unwrap(p.PrivateKey),
		}
	}

	if providers.CallbackURLs != nil {
		result.CallbackURLs = providers.CallbackURLs
	}

	if t.err != nil {
		return construct.ExternalProviders{}, t.err
	}
	return result, nil
}

// translator resolves secrets until the first failure,
// after which every further resolution is skipped
type translator struct {
	resolver backend.SecretResolver
	err      error
}

func (t *translator) resolve(secret backend.Secret) construct.SecretValue {
	if t.err != nil {
		return construct.SecretValue{}
	}
	sv, err := t.resolver.ResolveSecret(secret)
	if err != nil {
		t.err = err
		return construct.SecretValue{}
	}
	return sv
}

func (t *translator) unwrap(secret backend.Secret) string {
	return t.resolve(secret).UnsafeUnwrap()
}
