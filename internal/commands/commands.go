package commands

import (
	"github.com/10gen/realm-backend/internal/cli"
	"github.com/10gen/realm-backend/internal/commands/describe"
	"github.com/10gen/realm-backend/internal/commands/initialize"
	"github.com/10gen/realm-backend/internal/commands/profile"
	"github.com/10gen/realm-backend/internal/commands/secrets"

	"github.com/spf13/cobra"
)

// set of commands
var (
	Init = cli.CommandDefinition{
		Command:     &initialize.Command{},
		Use:         "init",
		Aliases:     []string{"initialize"},
		Description: "Initialize a backend project",
		Help: `Initialize a backend project

	Creates the project directory when it does not exist yet, along with a
	package.json manifest and a backend/auth.yaml config that enables phone
	number login. Files which already exist are left untouched.`,
		Args: cobra.NoArgs,
	}

	Describe = cli.CommandDefinition{
		Command:     &describe.Command{},
		Use:         "describe",
		Description: "Describe the login methods of your backend",
		Help: `Describe the login methods of your backend

	Reads backend/auth.yaml, resolves every secret it references from the
	configured secrets store, and prints the login methods the backend will
	be deployed with. Secret values are never printed.`,
		Args: cobra.NoArgs,
	}

	Secrets = cli.CommandDefinition{
		Use:         "secrets",
		Aliases:     []string{"secret"},
		Description: "Manage the secrets referenced by your backend",
		Help:        "Manage the secrets referenced by your backend",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &secrets.CommandSet{},
				Use:         "set <name>",
				Display:     "secrets set",
				Description: "Set the value of a secret",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &secrets.CommandGet{},
				Use:         "get <name>",
				Display:     "secrets get",
				Description: "Check whether a secret is set",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &secrets.CommandRemove{},
				Use:         "remove <name>",
				Aliases:     []string{"rm", "delete"},
				Display:     "secrets remove",
				Description: "Remove a secret",
				Args:        cobra.ExactArgs(1),
			},
		},
	}

	Profile = cli.CommandDefinition{
		Use:         "profile",
		Aliases:     []string{"profiles"},
		Description: "Manage the settings of your CLI profile",
		Help:        "Manage the settings of your CLI profile",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &profile.CommandShow{},
				Use:         "show",
				Display:     "profile show",
				Description: "Show the settings of the CLI profile",
				Args:        cobra.NoArgs,
			},
			{
				Command:     &profile.CommandSet{},
				Use:         "set <key> <value>",
				Display:     "profile set",
				Description: "Set a setting of the CLI profile",
				Help: `Set a setting of the CLI profile

	Supported settings are env_file, secrets_provider and telemetry_mode.
	Use the --profile flag to choose which profile is saved.`,
				Args: cobra.ExactArgs(2),
			},
		},
	}
)
