package mock

import (
	"testing"

	"github.com/10gen/realm-backend/internal/cli"
	u "github.com/10gen/realm-backend/internal/utils/test"
	"github.com/10gen/realm-backend/internal/utils/test/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewProfile returns a new CLI profile with a random name
func NewProfile(t *testing.T) *cli.Profile {
	t.Helper()
	profile, err := cli.NewProfile(primitive.NewObjectID().Hex())
	assert.Nil(t, err)
	return profile
}

// NewProfileFromWd returns a new CLI profile with a random name
// and the specified working directory
func NewProfileFromWd(t *testing.T, wd string) *cli.Profile {
	t.Helper()

	profile := NewProfile(t)
	profile.WorkingDirectory = wd

	return profile
}

// NewProfileFromTmpDir returns a new CLI profile with a random name
// and a working directory and $HOME based on a temporary directory
// along with the associated cleanup function
func NewProfileFromTmpDir(t *testing.T, name string) (*cli.Profile, func()) {
	t.Helper()

	tmpDir, teardown, err := u.NewTempDir(name)
	assert.Nil(t, err)

	_, resetHomeDir := u.SetupHomeDir(tmpDir)

	profile := NewProfileFromWd(t, tmpDir)

	return profile,
		func() {
			resetHomeDir()
			teardown()
		}
}
