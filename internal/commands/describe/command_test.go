package describe

import (
	"errors"
	"strings"
	"testing"

	"github.com/10gen/realm-backend/internal/backend"
	"github.com/10gen/realm-backend/internal/cli"
	"github.com/10gen/realm-backend/internal/secrets"
	"github.com/10gen/realm-backend/internal/utils/test/assert"
	"github.com/10gen/realm-backend/internal/utils/test/mock"

	"github.com/spf13/afero"
)

const (
	testDir = "/workspace/app"

	testAuthConfig = `loginWith:
  phoneNumber:
    verificationMessage: "Your code is {####}"
  externalProviders:
    callbackUrls:
      - https://example.com/callback
    google:
      clientId: {secret: google-client-id}
      clientSecretValue: {secret: google-client-secret}
    oidc:
      clientId: {secret: oidc-client-id}
      clientSecret: {secret: oidc-client-secret}
      issuerUrl: https://issuer.example.com
`
)

func setupProject(t *testing.T, packageJSON string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	assert.Nil(t, fs.MkdirAll(testDir+"/backend", 0755))
	assert.Nil(t, afero.WriteFile(fs, testDir+"/package.json", []byte(packageJSON), 0644))
	assert.Nil(t, afero.WriteFile(fs, testDir+"/backend/auth.yaml", []byte(testAuthConfig), 0644))
	return fs
}

func setupStore(t *testing.T, id backend.Identifier) secrets.Store {
	t.Helper()

	store := secrets.NewMemoryStore()
	for name, value := range map[string]string{
		"google-client-id":     "googleId",
		"google-client-secret": "googleSecret",
		"oidc-client-id":       "oidcId",
		"oidc-client-secret":   "oidcSecret",
	} {
		assert.Nil(t, store.SetSecret(id, name, value))
	}
	return store
}

func TestDescribeHandler(t *testing.T) {
	t.Run("Should describe the login methods of the backend", func(t *testing.T) {
		fs := setupProject(t, `{"name": "test-app", "version": "1.0.0"}`)
		store := setupStore(t, backend.NewSandboxIdentifier("test-app"))

		out, ui := mock.NewUI()

		cmd := &Command{
			inputs: inputs{ProjectDir: testDir, Env: backend.DisambiguatorSandbox},
			fs:     fs,
			store:  store,
		}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui))

		assert.Equal(t, `Stack: test-app-sandbox
Backend: test-app (sandbox)
Version: v1.0.0
Login methods
  Method       Details                                  
  -----------  -----------------------------------------
  phoneNumber  verification message: Your code is {####}
  google       credentials resolved                     
  oidc         issuer: https://issuer.example.com       
Callback URLs
  https://example.com/callback
`, out.String())

		for _, secret := range []string{"googleId", "googleSecret", "oidcId", "oidcSecret"} {
			assert.False(t, strings.Contains(out.String(), secret), "the output should not contain the secret %s", secret)
		}
	})

	t.Run("Should describe the backend of a branch with the project name flag", func(t *testing.T) {
		fs := setupProject(t, `{"name": "test-app"}`)
		store := setupStore(t, backend.NewBranchIdentifier("other-app", "main"))

		out, ui := mock.NewUI()

		cmd := &Command{
			inputs: inputs{ProjectDir: testDir, ProjectName: "other-app", Env: "main"},
			fs:     fs,
			store:  store,
		}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui))

		assert.True(t, strings.HasPrefix(out.String(), `Stack: other-app-main
Backend: other-app (branch: main)
Login methods
`), "unexpected output: %s", out.String())
	})

	t.Run("Should describe the backend without reading secrets during a dry run", func(t *testing.T) {
		fs := setupProject(t, `{"name": "test-app", "version": "latest"}`)

		out, ui := mock.NewUI()

		cmd := &Command{
			inputs: inputs{ProjectDir: testDir, Env: backend.DisambiguatorSandbox, DryRun: true},
			fs:     fs,
			store: mock.SecretStore{GetSecretFn: func(id backend.Identifier, name string) (string, error) {
				t.Fatalf("the store should not be read during a dry run")
				return "", nil
			}},
		}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui))

		assert.True(t, strings.Contains(out.String(), "WARN: package.json version 'latest' is not a semantic version\n"), "unexpected output: %s", out.String())
		assert.True(t, strings.Contains(out.String(), "Dry run: secrets were not read\n"), "unexpected output: %s", out.String())
		assert.True(t, strings.Contains(out.String(), "  google       credentials resolved"), "unexpected output: %s", out.String())
	})

	t.Run("Should suggest setting a secret which is missing", func(t *testing.T) {
		fs := setupProject(t, `{"name": "test-app"}`)

		_, ui := mock.NewUI()

		cmd := &Command{
			inputs: inputs{ProjectDir: testDir, Env: backend.DisambiguatorSandbox},
			fs:     fs,
			store:  secrets.NewMemoryStore(),
		}
		err := cmd.Handler(mock.NewProfile(t), ui)

		var userErr cli.UserErr
		assert.True(t, errors.As(err, &userErr), "expected a user error but got: %v", err)
		assert.Equal(t, "SecretNotFoundError", userErr.Name)
		assert.Equal(t, "Set the missing secret for the backend, or choose another secrets store with --secrets-provider.", userErr.Resolution)

		var suggester cli.CommandSuggester
		assert.True(t, errors.As(err, &suggester), "expected suggested commands but got: %v", err)
		assert.Equal(t, []interface{}{"realm-backend secrets set google-client-id --backend test-app --branch sandbox"}, suggester.SuggestedCommands())
		assert.Equal(t, "Failed to resolve the login config: failed to resolve secret 'google-client-id': secret not found: /realm-backend/test-app/sandbox/google-client-id", err.Error())
	})

	t.Run("Should return the store error when it is not a missing secret", func(t *testing.T) {
		fs := setupProject(t, `{"name": "test-app"}`)
		storeErr := errors.New("keyring is locked")

		_, ui := mock.NewUI()

		cmd := &Command{
			inputs: inputs{ProjectDir: testDir, Env: backend.DisambiguatorSandbox},
			fs:     fs,
			store: mock.SecretStore{GetSecretFn: func(id backend.Identifier, name string) (string, error) {
				return "", storeErr
			}},
		}
		err := cmd.Handler(mock.NewProfile(t), ui)
		assert.True(t, errors.Is(err, storeErr), "expected the store error but got: %v", err)
	})

	t.Run("Should fail when the project has no name", func(t *testing.T) {
		fs := setupProject(t, `{}`)

		_, ui := mock.NewUI()

		cmd := &Command{inputs: inputs{ProjectDir: testDir, Env: backend.DisambiguatorSandbox}, fs: fs}
		err := cmd.Handler(mock.NewProfile(t), ui)

		var userErr cli.UserErr
		assert.True(t, errors.As(err, &userErr), "expected a user error but got: %v", err)
		assert.Equal(t, "MissingProjectNameError", userErr.Name)
		assert.Equal(t, backend.ErrMissingContext{Key: backend.ContextProjectName}, userErr.Cause)
	})

	t.Run("Should fail when the project has no package.json", func(t *testing.T) {
		_, ui := mock.NewUI()

		cmd := &Command{inputs: inputs{ProjectDir: testDir, Env: backend.DisambiguatorSandbox}, fs: afero.NewMemMapFs()}
		err := cmd.Handler(mock.NewProfile(t), ui)
		assert.Equal(t, errors.New("Could not find a package.json file at /workspace/app/package.json"), err)
	})

	t.Run("Should fail when the project has no auth config", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		assert.Nil(t, afero.WriteFile(fs, testDir+"/package.json", []byte(`{"name": "test-app"}`), 0644))

		_, ui := mock.NewUI()

		cmd := &Command{inputs: inputs{ProjectDir: testDir, Env: backend.DisambiguatorSandbox}, fs: fs}
		err := cmd.Handler(mock.NewProfile(t), ui)
		assert.Equal(t, errors.New("could not find an auth config at /workspace/app/backend/auth.yaml"), err)
	})
}

func TestDescribeInputs(t *testing.T) {
	profile := mock.NewProfileFromWd(t, "/workspace")

	for _, tc := range []struct {
		description string
		inputs      inputs
		expected    inputs
	}{
		{
			description: "Should default to the working directory and the sandbox",
			expected:    inputs{ProjectDir: "/workspace", Env: backend.DisambiguatorSandbox},
		},
		{
			description: "Should resolve a relative project directory against the working directory",
			inputs:      inputs{ProjectDir: "app", Env: "main"},
			expected:    inputs{ProjectDir: "/workspace/app", Env: "main"},
		},
		{
			description: "Should keep an absolute project directory",
			inputs:      inputs{ProjectDir: "/elsewhere", Env: "main", DryRun: true},
			expected:    inputs{ProjectDir: "/elsewhere", Env: "main", DryRun: true},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			_, ui := mock.NewUI()

			i := tc.inputs
			assert.Nil(t, i.Resolve(profile, ui))
			assert.Equal(t, tc.expected, i)
		})
	}
}
