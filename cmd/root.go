package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/10gen/realm-backend/internal/cli"
	"github.com/10gen/realm-backend/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "CLI tool to scaffold and describe the login config of your backend",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory, err := cli.NewCommandFactory()
	if err != nil {
		log.Fatal(err)
	}

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(commands.Init))
	cmd.AddCommand(factory.Build(commands.Describe))
	cmd.AddCommand(factory.Build(commands.Secrets))
	cmd.AddCommand(factory.Build(commands.Profile))

	os.Exit(factory.Run(cmd))
}
