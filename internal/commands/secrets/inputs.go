package secrets

import (
	"path/filepath"

	"github.com/10gen/realm-backend/internal/backend"
	"github.com/10gen/realm-backend/internal/cli"
	"github.com/10gen/realm-backend/internal/packagejson"
	secretsstore "github.com/10gen/realm-backend/internal/secrets"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

const (
	flagBackend      = "backend"
	flagBackendShort = "b"
	flagBackendUsage = "the id of the backend, defaults to the package.json name in the working directory"

	flagBranch      = "branch"
	flagBranchUsage = "the branch of the backend, leave empty for the sandbox"

	flagValue      = "value"
	flagValueUsage = "the value of the secret, you will be prompted for it when omitted"
)

var errNoBackend = cli.NewErr("backend id is not set")

type backendInputs struct {
	Backend string
	Branch  string
}

func (i *backendInputs) flags(fs *pflag.FlagSet) {
	fs.StringVarP(&i.Backend, flagBackend, flagBackendShort, "", flagBackendUsage)
	fs.StringVar(&i.Branch, flagBranch, "", flagBranchUsage)
}

// identifier resolves the backend the secret belongs to, falling back to
// the package.json found in the working directory when no backend is set
func (i backendInputs) identifier(fs afero.Fs, wd string) (backend.Identifier, error) {
	backendID := i.Backend
	if backendID == "" {
		pkg, err := packagejson.NewReader(fs).Read(filepath.Join(wd, packagejson.FileName))
		switch {
		case err == nil:
			backendID = pkg.Name
		case !packagejson.IsNotFound(err):
			return nil, err
		}
	}

	if backendID == "" {
		return nil, cli.NewUserErr(
			"MissingBackendError",
			"Failed to find the backend",
			"Pass the backend with --"+flagBackend+" or run the command from a project with a named package.json.",
			errNoBackend,
		)
	}
	return backend.NewIdentifier(backendID, i.Branch), nil
}

type commandBase struct {
	name   string
	inputs backendInputs
	fs     afero.Fs
	store  secretsstore.Store
}

func (cmd *commandBase) SetArgs(args []string) {
	if len(args) > 0 {
		cmd.name = args[0]
	}
}

func (cmd *commandBase) setup(profile *cli.Profile) (backend.Identifier, secretsstore.Store, error) {
	if cmd.fs == nil {
		cmd.fs = afero.NewOsFs()
	}

	id, err := cmd.inputs.identifier(cmd.fs, profile.WorkingDirectory)
	if err != nil {
		return nil, nil, err
	}

	if cmd.store != nil {
		return id, cmd.store, nil
	}

	store, err := profile.NewSecretsStore()
	if err != nil {
		return nil, nil, err
	}
	return id, store, nil
}
