package secrets

import (
	"errors"

	"github.com/10gen/realm-backend/internal/cli"
	secretsstore "github.com/10gen/realm-backend/internal/secrets"
	"github.com/10gen/realm-backend/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

var errEmptyValue = cli.NewErr("secret value cannot be empty")

const keyringLink = "https://github.com/zalando/go-keyring"

// CommandSet is the `secrets set` command
type CommandSet struct {
	commandBase
	value string
}

// Flags is the command flags
func (cmd *CommandSet) Flags(fs *pflag.FlagSet) {
	cmd.inputs.flags(fs)
	fs.StringVar(&cmd.value, flagValue, "", flagValueUsage)
}

// Inputs is the command inputs
func (cmd *CommandSet) Inputs() cli.InputResolver {
	return setInputs{cmd}
}

type setInputs struct {
	cmd *CommandSet
}

func (i setInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.cmd.value == "" {
		if err := ui.AskOne(&i.cmd.value, &survey.Password{Message: "Secret value"}); err != nil {
			return err
		}
	}
	if i.cmd.value == "" {
		return errEmptyValue
	}
	return nil
}

// Handler is the command handler
func (cmd *CommandSet) Handler(profile *cli.Profile, ui terminal.UI) error {
	id, store, err := cmd.setup(profile)
	if err != nil {
		return err
	}

	if err := store.SetSecret(id, cmd.name, cmd.value); err != nil {
		if errors.Is(err, secretsstore.ErrReadOnly) {
			return errReadOnly("Failed to set the secret", err)
		}
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully set secret '%s' for %s", cmd.name, id))
	return nil
}

func errReadOnly(message string, err error) error {
	return cli.WithReferenceLinks(
		cli.NewUserErr(
			"ReadOnlySecretsStoreError",
			message,
			"Switch to a writable secrets store with --secrets-provider "+secretsstore.ProviderTypeKeyring.String()+".",
			err,
		),
		keyringLink,
	)
}
