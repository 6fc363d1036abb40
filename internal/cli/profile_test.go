package cli

import (
	"path/filepath"
	"testing"

	"github.com/10gen/realm-backend/internal/secrets"
	"github.com/10gen/realm-backend/internal/telemetry"
	u "github.com/10gen/realm-backend/internal/utils/test"
	"github.com/10gen/realm-backend/internal/utils/test/assert"

	"github.com/spf13/afero"
)

func TestProfile(t *testing.T) {
	tmpDir, teardownTmpDir, tmpDirErr := u.NewTempDir("home")
	assert.Nil(t, tmpDirErr)
	defer teardownTmpDir()

	_, teardownHomeDir := u.SetupHomeDir(tmpDir)
	defer teardownHomeDir()

	profile, profileErr := NewDefaultProfile()
	assert.Nil(t, profileErr)

	t.Run("Should initialize as an empty, default profile", func(t *testing.T) {
		assert.Equal(t, DefaultProfile, profile.Name)
		assert.Equal(t, filepath.Join(tmpDir, profileDir), profile.Dir())
		assert.Equal(t, filepath.Join(tmpDir, profileDir, "default.yaml"), profile.Path())
		assert.NotNil(t, profile.fs)
	})

	t.Run("Should load a config that does not exist without error", func(t *testing.T) {
		assert.Nil(t, profile.Load())
		assert.Equal(t, secrets.ProviderTypeEmpty, profile.SecretsProvider())
		assert.Equal(t, telemetry.ModeEmpty, profile.TelemetryMode())
	})

	t.Run("Should save a config properly", func(t *testing.T) {
		profile.SetSecretsProvider(secrets.ProviderTypeKeyring)
		profile.SetEnvFile("/secrets/.env")
		profile.SetTelemetryMode(telemetry.ModeStdout)

		assert.Nil(t, profile.Save())

		config, err := afero.ReadFile(afero.NewOsFs(), profile.Path())
		assert.Nil(t, err)
		assert.Equal(t, `env_file: /secrets/.env
secrets_provider: keyring
telemetry_mode: stdout
`, string(config))
	})
}

func TestProfileSettings(t *testing.T) {
	const dir = "/home/.config/realm-backend"

	setup := func(t *testing.T, config string) *Profile {
		t.Helper()

		fs := afero.NewMemMapFs()
		if config != "" {
			assert.Nil(t, afero.WriteFile(fs, filepath.Join(dir, "test.yaml"), []byte(config), 0600))
		}

		profile := newProfile("test", dir, fs)
		profile.WorkingDirectory = "/project"
		assert.Nil(t, profile.Load())
		return profile
	}

	t.Run("Should read the settings from the profile file", func(t *testing.T) {
		profile := setup(t, "secrets_provider: memory\nenv_file: config/.env\ntelemetry_mode: stdout\n")

		assert.Equal(t, secrets.ProviderTypeMemory, profile.SecretsProvider())
		assert.Equal(t, "/project/config/.env", profile.EnvFile())
		assert.Equal(t, telemetry.ModeStdout, profile.TelemetryMode())
	})

	t.Run("Should default the env file to the working directory", func(t *testing.T) {
		profile := setup(t, "")
		assert.Equal(t, "/project/.env", profile.EnvFile())
	})

	t.Run("Should prefer the environment over the profile file", func(t *testing.T) {
		t.Setenv("REALM_BACKEND_SECRETS_PROVIDER", "keyring")

		profile := setup(t, "secrets_provider: memory\n")
		assert.Equal(t, secrets.ProviderTypeKeyring, profile.SecretsProvider())
	})

	t.Run("Should prefer the flags over the profile file", func(t *testing.T) {
		profile := setup(t, "secrets_provider: memory\ntelemetry_mode: stdout\n")
		profile.secretsProvider = secrets.ProviderTypeEnvironment
		profile.telemetryMode = telemetry.ModeOff

		assert.Equal(t, secrets.ProviderTypeEnvironment, profile.SecretsProvider())
		assert.Equal(t, telemetry.ModeOff, profile.TelemetryMode())
	})

	t.Run("Should ignore an unsupported telemetry mode", func(t *testing.T) {
		profile := setup(t, "telemetry_mode: loud\n")
		assert.Equal(t, telemetry.ModeEmpty, profile.TelemetryMode())
	})

	t.Run("Should fail to load a malformed profile", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		assert.Nil(t, afero.WriteFile(fs, filepath.Join(dir, "test.yaml"), []byte("secrets_provider: [\n"), 0600))

		err := newProfile("test", dir, fs).Load()

		_, ok := err.(Err)
		assert.True(t, ok, "expected a cli error but got: %T", err)
		assert.Equal(t, "CLI profile at /home/.config/realm-backend/test.yaml is invalid yaml", err.Error())
	})

	t.Run("Should create the secrets store configured by the profile", func(t *testing.T) {
		profile := setup(t, "secrets_provider: memory\n")

		store, err := profile.NewSecretsStore()
		assert.Nil(t, err)
		_, ok := store.(*secrets.MemoryStore)
		assert.True(t, ok, "expected a memory store but got: %T", store)
	})
}

func TestProfileSet(t *testing.T) {
	const dir = "/home/.config/realm-backend"

	t.Run("Should set and save each supported setting", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		profile := newProfile("test", dir, fs)
		profile.WorkingDirectory = "/project"

		assert.Nil(t, profile.Set("secrets_provider", "keyring"))
		assert.Nil(t, profile.Set("env_file", "/secrets/.env"))
		assert.Nil(t, profile.Set("telemetry_mode", "off"))
		assert.Nil(t, profile.Save())

		loaded := newProfile("test", dir, fs)
		loaded.WorkingDirectory = "/project"
		assert.Nil(t, loaded.Load())
		assert.Equal(t, map[string]string{
			"env_file":         "/secrets/.env",
			"secrets_provider": "keyring",
			"telemetry_mode":   "off",
		}, loaded.Settings())
	})

	for _, tc := range []struct {
		key         string
		value       string
		expectedErr string
	}{
		{"secrets_provider", "vault", "invalid secrets_provider: unsupported value, use one of [environment, keyring, memory] instead"},
		{"telemetry_mode", "loud", "invalid telemetry_mode: unsupported value, use one of [off, stdout] instead"},
		{"color", "red", "unsupported profile setting 'color', use one of [env_file, secrets_provider, telemetry_mode] instead"},
	} {
		t.Run("Should reject the value '"+tc.value+"' for "+tc.key, func(t *testing.T) {
			profile := newProfile("test", dir, afero.NewMemMapFs())

			err := profile.Set(tc.key, tc.value)
			assert.Equal(t, tc.expectedErr, err.Error())
			assert.Equal(t, "", profile.v.GetString(tc.key))
		})
	}
}
