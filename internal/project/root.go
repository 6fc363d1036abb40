// Package project locates the directory a backend project lives in
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/10gen/realm-backend/internal/cli"
	"github.com/10gen/realm-backend/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
)

// EnvAutoConfirm is the environment variable which skips the project root prompt when set to true
const EnvAutoConfirm = "REALM_BACKEND_YES"

// set of project root prompt values
const (
	RootPromptMessage = "Where should we create your project?"
	RootPromptDefault = "."
)

// ErrNameDirectoryCreation is the name of the error returned when the project root cannot be created
const ErrNameDirectoryCreation = "ProjectDirectoryCreationError"

// RootResolver resolves the project root directory, creating it if necessary
type RootResolver struct {
	fs afero.Fs
	wd string
}

// NewRootResolver creates a new project root resolver
// which resolves relative paths against the working directory
func NewRootResolver(fs afero.Fs, wd string) *RootResolver {
	return &RootResolver{fs, wd}
}

// Resolve returns the absolute path of the project root
func (r *RootResolver) Resolve(ui terminal.UI) (string, error) {
	root := r.wd
	if !autoConfirm(ui) {
		var answer string
		if err := ui.AskOne(&answer, &survey.Input{
			Message: RootPromptMessage,
			Default: RootPromptDefault,
		}); err != nil {
			return "", err
		}
		root = r.abs(answer)
	}

	if err := r.ensureDir(root); err != nil {
		return "", cli.NewUserErr(
			ErrNameDirectoryCreation,
			"Failed to create project directory",
			fmt.Sprintf("Ensure that %s is the correct path and you have write permissions to this location.", root),
			err,
		)
	}
	return root, nil
}

func (r *RootResolver) abs(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == RootPromptDefault {
		return r.wd
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(r.wd, path)
}

func (r *RootResolver) ensureDir(path string) error {
	info, err := r.fs.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return r.fs.MkdirAll(path, 0755)
}

func autoConfirm(ui terminal.UI) bool {
	if ui.AutoConfirm() {
		return true
	}
	return strings.EqualFold(os.Getenv(EnvAutoConfirm), "true")
}
