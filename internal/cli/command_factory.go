package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/10gen/realm-backend/internal/telemetry"
	"github.com/10gen/realm-backend/internal/terminal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile          *Profile
	ui               terminal.UI
	uiConfig         terminal.UIConfig
	inReader         io.Reader
	outWriter        io.Writer
	errWriter        io.Writer
	outFile          *os.File
	errLogger        *log.Logger
	telemetryService *telemetry.Service
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() (*CommandFactory, error) {
	errLogger := log.New(os.Stderr, "UTC ERROR ", log.Ltime|log.Lmsgprefix)

	profile, profileErr := NewDefaultProfile()
	if profileErr != nil {
		return nil, profileErr
	}

	return &CommandFactory{
		profile:   profile,
		errLogger: errLogger,
	}, nil
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
		Args:    command.Args,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command == nil {
		return &cmd
	}

	if command, ok := command.Command.(CommandFlags); ok {
		fs := cmd.Flags()
		fs.SortFlags = false // ensures command flags are added unsorted
		command.Flags(fs)
	}

	cmd.PersistentPreRun = func(c *cobra.Command, a []string) {
		factory.ensureUI()
		c.SetIn(factory.inReader)
		c.SetOut(factory.outWriter)
		c.SetErr(factory.errWriter)

		factory.telemetryService = telemetry.NewService(
			factory.profile.TelemetryMode(),
			factory.ui,
			display,
			Version,
		)
	}

	cmd.PreRunE = func(c *cobra.Command, a []string) error {
		if command, ok := command.Command.(CommandArgs); ok {
			command.SetArgs(a)
		}

		if command, ok := command.Command.(CommandInputs); ok {
			if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
				return fmt.Errorf("%s setup failed: %w", display, errDisableUsage{err})
			}
		}
		return nil
	}

	cmd.RunE = func(c *cobra.Command, a []string) error {
		factory.telemetryService.TrackEvent(telemetry.EventTypeCommandStart)

		if err := command.Command.Handler(factory.profile, factory.ui); err != nil {
			factory.telemetryService.TrackEvent(
				telemetry.EventTypeCommandError,
				telemetry.EventData{Key: telemetry.EventDataKeyError, Value: err},
			)
			return fmt.Errorf("%s failed: %w", display, errDisableUsage{err})
		}

		factory.telemetryService.TrackEvent(telemetry.EventTypeCommandComplete)
		return nil
	}

	return &cmd
}

// Close closes the command factory
func (factory *CommandFactory) Close() {
	if factory.telemetryService != nil {
		factory.telemetryService.Close()
	}

	if factory.outFile != nil {
		factory.outFile.Close()
	}
}

// Run executes the command and returns the process exit code
func (factory *CommandFactory) Run(cmd *cobra.Command) int {
	defer factory.Close()

	if c, err := cmd.ExecuteC(); err != nil {
		factory.ensureUI()
		factory.printErr(c, err)
		return 1
	}
	return 0
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, flagProfile, DefaultProfile, flagProfileUsage)
	fs.Var(&factory.profile.secretsProvider, flagSecretsProvider, flagSecretsProviderUsage)
	fs.Var(&factory.profile.telemetryMode, telemetry.FlagMode, telemetry.FlagModeUsage)

	// ui flags
	fs.StringVarP(&factory.uiConfig.OutputTarget, terminal.FlagOutputTarget, terminal.FlagOutputTargetShort, "", terminal.FlagOutputTargetUsage)
	fs.VarP(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatShort, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)
}

// Setup initializes the command factory
func (factory *CommandFactory) Setup() {
	if err := factory.profile.Load(); err != nil {
		factory.errLogger.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		factory.errLogger.Fatal(fmt.Errorf("failed to get working directory: %w", err))
	}
	factory.profile.WorkingDirectory = wd

	if filepath := factory.uiConfig.OutputTarget; filepath != "" {
		f, err := os.OpenFile(filepath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			factory.errLogger.Fatal(fmt.Errorf("failed to open target file: %w", err))
		}
		factory.outFile = f
		factory.outWriter = f
	}
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		if factory.uiConfig.OutputTarget != "" {
			factory.errWriter = factory.outWriter
		} else {
			factory.errWriter = os.Stderr
		}
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}

func (factory *CommandFactory) printErr(cmd *cobra.Command, err error) {
	logs := []terminal.Log{terminal.NewErrorLog(err)}

	var suggester CommandSuggester
	if errors.As(err, &suggester) {
		logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedCommands, suggester.SuggestedCommands()...))
	}

	var referrer LinkReferrer
	if errors.As(err, &referrer) {
		logs = append(logs, terminal.NewFollowupLog(terminal.MsgReferenceLinks, referrer.ReferenceLinks()...))
	}

	var resolver ResolutionSuggester
	if errors.As(err, &resolver) && resolver.SuggestedResolution() != "" {
		logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedResolution, resolver.SuggestedResolution()))
	}

	if !usageDisabled(err) {
		logs = append(logs, terminal.NewTextLog(cmd.UsageString()))
	}

	factory.ui.Print(logs...)
}

func usageDisabled(err error) bool {
	var disableUsage DisableUsage
	return errors.As(err, &disableUsage)
}
