package secrets

import (
	"github.com/10gen/realm-backend/internal/cli"
	secretsstore "github.com/10gen/realm-backend/internal/secrets"
	"github.com/10gen/realm-backend/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandGet is the `secrets get` command
type CommandGet struct {
	commandBase
}

// Flags is the command flags
func (cmd *CommandGet) Flags(fs *pflag.FlagSet) {
	cmd.inputs.flags(fs)
}

// Handler is the command handler
// The secret value is never printed, only whether or not it is set
func (cmd *CommandGet) Handler(profile *cli.Profile, ui terminal.UI) error {
	id, store, err := cmd.setup(profile)
	if err != nil {
		return err
	}

	if _, err := store.GetSecret(id, cmd.name); err != nil {
		if secretsstore.IsNotFound(err) {
			ui.Print(terminal.NewTextLog("Secret '%s' is not set for %s", cmd.name, id))
			return nil
		}
		return err
	}

	ui.Print(terminal.NewTextLog("Secret '%s' is set for %s", cmd.name, id))
	return nil
}
