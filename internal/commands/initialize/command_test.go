package initialize

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/10gen/realm-backend/internal/auth"
	"github.com/10gen/realm-backend/internal/cli"
	"github.com/10gen/realm-backend/internal/construct"
	"github.com/10gen/realm-backend/internal/packagejson"
	"github.com/10gen/realm-backend/internal/utils/test/assert"
	"github.com/10gen/realm-backend/internal/utils/test/mock"

	"github.com/spf13/afero"
)

func TestInitHandler(t *testing.T) {
	t.Run("Should write a new project into the working directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		profile := mock.NewProfileFromWd(t, "/workspace/My App")

		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, out)

		cmd := &Command{fs: fs}
		assert.Nil(t, cmd.Handler(profile, ui))

		assert.Equal(t, `Successfully initialized project at /workspace/My App
  File               Status 
  -----------------  -------
  package.json       created
  backend/auth.yaml  created
`, out.String())

		pkg, err := packagejson.NewReader(fs).Read("/workspace/My App/package.json")
		assert.Nil(t, err)
		assert.Equal(t, packagejson.PackageJSON{Name: "my-app", Version: "0.1.0", Type: packagejson.TypeModule}, pkg)

		loginWith, err := auth.LoadConfig(fs, auth.ConfigPath("/workspace/My App"))
		assert.Nil(t, err)
		assert.Equal(t, &construct.PhoneNumberLogin{VerificationMessage: auth.DefaultVerificationMessage}, loginWith.PhoneNumber)
		assert.Nil(t, loginWith.ExternalProviders)
	})

	t.Run("Should leave existing files untouched", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		assert.Nil(t, fs.MkdirAll("/workspace", 0755))
		assert.Nil(t, afero.WriteFile(fs, "/workspace/package.json", []byte(`{"name":"existing"}`), 0644))

		profile := mock.NewProfileFromWd(t, "/workspace")

		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, out)

		cmd := &Command{fs: fs}
		assert.Nil(t, cmd.Handler(profile, ui))

		assert.Equal(t, `Successfully initialized project at /workspace
  File               Status                  
  -----------------  ------------------------
  package.json       skipped (already exists)
  backend/auth.yaml  created                 
`, out.String())

		data, err := afero.ReadFile(fs, "/workspace/package.json")
		assert.Nil(t, err)
		assert.Equal(t, `{"name":"existing"}`, string(data))
	})

	t.Run("Should return the error when the project root cannot be created", func(t *testing.T) {
		profile := mock.NewProfileFromWd(t, "/workspace")
		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, new(bytes.Buffer))

		cmd := &Command{fs: afero.NewReadOnlyFs(afero.NewMemMapFs())}
		err := cmd.Handler(profile, ui)

		userErr, ok := err.(cli.UserErr)
		assert.True(t, ok, "expected a user error but got: %v", err)
		assert.Equal(t, "ProjectDirectoryCreationError", userErr.Name)
	})

	t.Run("Should write to the os filesystem by default", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "init_test")
		defer teardown()

		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, new(bytes.Buffer))

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(profile, ui))

		exists, err := afero.Exists(afero.NewOsFs(), filepath.Join(profile.WorkingDirectory, "backend", "auth.yaml"))
		assert.Nil(t, err)
		assert.True(t, exists, "expected the auth config to be written")
	})
}
