package profile

import (
	"github.com/10gen/realm-backend/internal/cli"
	"github.com/10gen/realm-backend/internal/terminal"
)

// CommandSet is the `profile set` command
type CommandSet struct {
	key   string
	value string
}

// SetArgs receives the setting key and value
func (cmd *CommandSet) SetArgs(args []string) {
	if len(args) == 2 {
		cmd.key, cmd.value = args[0], args[1]
	}
}

// Handler is the command handler
func (cmd *CommandSet) Handler(profile *cli.Profile, ui terminal.UI) error {
	if err := profile.Set(cmd.key, cmd.value); err != nil {
		return err
	}

	if err := profile.Save(); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully set %s to '%s' for profile %s", cmd.key, cmd.value, profile.Name))
	return nil
}
