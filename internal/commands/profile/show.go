package profile

import (
	"github.com/10gen/realm-backend/internal/cli"
	"github.com/10gen/realm-backend/internal/terminal"
)

// CommandShow is the `profile show` command
type CommandShow struct{}

// Handler is the command handler
func (cmd *CommandShow) Handler(profile *cli.Profile, ui terminal.UI) error {
	ui.Print(terminal.NewTitledJSONLog("Profile "+profile.Name, profile.Settings()))
	return nil
}
