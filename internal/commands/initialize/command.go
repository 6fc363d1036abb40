package initialize

import (
	"path/filepath"
	"strings"

	"github.com/10gen/realm-backend/internal/auth"
	"github.com/10gen/realm-backend/internal/cli"
	"github.com/10gen/realm-backend/internal/packagejson"
	"github.com/10gen/realm-backend/internal/project"
	"github.com/10gen/realm-backend/internal/terminal"

	"github.com/spf13/afero"
)

const (
	headerFile   = "File"
	headerStatus = "Status"

	statusCreated = "created"
	statusSkipped = "skipped (already exists)"

	initialVersion = "0.1.0"
)

// Command is the `init` command
type Command struct {
	fs afero.Fs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI) error {
	if cmd.fs == nil {
		cmd.fs = afero.NewOsFs()
	}

	root, err := project.NewRootResolver(cmd.fs, profile.WorkingDirectory).Resolve(ui)
	if err != nil {
		return err
	}

	pkgRow, err := cmd.writeFile(root, filepath.Join(root, packagejson.FileName), func(path string) error {
		return packagejson.Write(cmd.fs, path, packagejson.PackageJSON{
			Name:    packageName(root),
			Version: initialVersion,
			Type:    packagejson.TypeModule,
		})
	})
	if err != nil {
		return err
	}

	authRow, err := cmd.writeFile(root, auth.ConfigPath(root), func(path string) error {
		return auth.WriteDefaultConfig(cmd.fs, path)
	})
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTableLog(
		"Successfully initialized project at "+root,
		[]string{headerFile, headerStatus},
		pkgRow,
		authRow,
	))
	return nil
}

func (cmd *Command) writeFile(root, path string, write func(path string) error) (terminal.TableRow, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	exists, err := afero.Exists(cmd.fs, path)
	if err != nil {
		return nil, err
	}
	if exists {
		return terminal.TableRow{headerFile: rel, headerStatus: statusSkipped}, nil
	}

	if err := write(path); err != nil {
		return nil, err
	}
	return terminal.TableRow{headerFile: rel, headerStatus: statusCreated}, nil
}

func packageName(root string) string {
	return strings.ReplaceAll(strings.ToLower(filepath.Base(root)), " ", "-")
}
