package describe

import (
	"path/filepath"

	"github.com/10gen/realm-backend/internal/backend"
	"github.com/10gen/realm-backend/internal/cli"
	"github.com/10gen/realm-backend/internal/terminal"
)

const (
	flagProjectDir      = "project-dir"
	flagProjectDirUsage = "the directory of the backend project, defaults to the working directory"

	flagProjectName      = "project-name"
	flagProjectNameShort = "n"
	flagProjectNameUsage = "the name of the backend project, defaults to the package.json name"

	flagEnv      = "env"
	flagEnvShort = "e"
	flagEnvUsage = "the environment of the backend, a branch name or sandbox"

	flagDryRun      = "dry-run"
	flagDryRunUsage = "describe the backend without reading any secrets"
)

type inputs struct {
	ProjectDir  string
	ProjectName string
	Env         string
	DryRun      bool
}

func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	switch {
	case i.ProjectDir == "":
		i.ProjectDir = profile.WorkingDirectory
	case !filepath.IsAbs(i.ProjectDir):
		i.ProjectDir = filepath.Join(profile.WorkingDirectory, i.ProjectDir)
	}

	if i.Env == "" {
		i.Env = backend.DisambiguatorSandbox
	}
	return nil
}
