package secrets

import (
	"errors"

	"github.com/10gen/realm-backend/internal/cli"
	secretsstore "github.com/10gen/realm-backend/internal/secrets"
	"github.com/10gen/realm-backend/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandRemove is the `secrets remove` command
type CommandRemove struct {
	commandBase
}

// Flags is the command flags
func (cmd *CommandRemove) Flags(fs *pflag.FlagSet) {
	cmd.inputs.flags(fs)
}

// Handler is the command handler
func (cmd *CommandRemove) Handler(profile *cli.Profile, ui terminal.UI) error {
	id, store, err := cmd.setup(profile)
	if err != nil {
		return err
	}

	proceed, err := ui.Confirm("Are you sure you want to remove secret '%s' for %s?", cmd.name, id)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if err := store.RemoveSecret(id, cmd.name); err != nil {
		switch {
		case errors.Is(err, secretsstore.ErrReadOnly):
			return errReadOnly("Failed to remove the secret", err)
		case secretsstore.IsNotFound(err):
			return cli.NewUserErr(
				"SecretNotFoundError",
				"Failed to remove the secret",
				"Check the secret name along with the --"+flagBackend+" and --"+flagBranch+" flags.",
				err,
			)
		}
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully removed secret '%s' for %s", cmd.name, id))
	return nil
}
