package describe

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/10gen/realm-backend/internal/auth"
	"github.com/10gen/realm-backend/internal/backend"
	"github.com/10gen/realm-backend/internal/cli"
	"github.com/10gen/realm-backend/internal/construct"
	"github.com/10gen/realm-backend/internal/packagejson"
	"github.com/10gen/realm-backend/internal/secrets"
	"github.com/10gen/realm-backend/internal/terminal"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// DryRunPlaceholder is the value every secret resolves to during a dry run
const DryRunPlaceholder = "<dry-run>"

const (
	headerMethod  = "Method"
	headerDetails = "Details"

	detailsResolved = "credentials resolved"
)

// Command is the `describe` command
type Command struct {
	inputs inputs
	fs     afero.Fs
	store  secrets.Store
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.ProjectDir, flagProjectDir, "", flagProjectDirUsage)
	fs.StringVarP(&cmd.inputs.ProjectName, flagProjectName, flagProjectNameShort, "", flagProjectNameUsage)
	fs.StringVarP(&cmd.inputs.Env, flagEnv, flagEnvShort, backend.DisambiguatorSandbox, flagEnvUsage)
	fs.BoolVar(&cmd.inputs.DryRun, flagDryRun, false, flagDryRunUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI) error {
	if cmd.fs == nil {
		cmd.fs = afero.NewOsFs()
	}

	pkg, err := packagejson.NewReader(cmd.fs).Read(filepath.Join(cmd.inputs.ProjectDir, packagejson.FileName))
	if err != nil {
		return err
	}

	projectName := cmd.inputs.ProjectName
	if projectName == "" {
		projectName = pkg.Name
	}

	app := backend.NewApp()
	if projectName != "" {
		app.SetContext(backend.ContextProjectName, projectName)
	}
	app.SetContext(backend.ContextEnvironmentName, cmd.inputs.Env)

	stack, err := backend.CreateDefaultStack(app)
	if err != nil {
		return cli.NewUserErr(
			"MissingProjectNameError",
			"Failed to name the backend stack",
			"Set a name in package.json or pass one with --"+flagProjectName+".",
			err,
		)
	}

	loginWith, err := auth.LoadConfig(cmd.fs, auth.ConfigPath(cmd.inputs.ProjectDir))
	if err != nil {
		return err
	}

	store, err := cmd.secretsStore(profile)
	if err != nil {
		return err
	}

	id := backend.NewIdentifier(projectName, cmd.inputs.Env)

	translated, err := auth.TranslateLoginWith(loginWith, backend.NewSecretResolver(store, id))
	if err != nil {
		if secrets.IsNotFound(err) {
			name := "<name>"
			if resolveErr := (secrets.ResolveErr{}); errors.As(err, &resolveErr) {
				name = resolveErr.Name
			}

			return cli.WithSuggestedCommands(
				cli.NewUserErr(
					"SecretNotFoundError",
					"Failed to resolve the login config",
					"Set the missing secret for the backend, or choose another secrets store with --secrets-provider.",
					err,
				),
				fmt.Sprintf("%s secrets set %s --backend %s --branch %s", cli.Name, name, id.BackendID(), id.Disambiguator()),
			)
		}
		return err
	}
	stack.AddAuth(translated)

	cmd.print(ui, stack, pkg, id)
	return nil
}

func (cmd *Command) secretsStore(profile *cli.Profile) (backend.SecretStore, error) {
	if cmd.inputs.DryRun {
		return secrets.NewPlaceholderStore(DryRunPlaceholder), nil
	}
	if cmd.store != nil {
		return cmd.store, nil
	}
	return profile.NewSecretsStore()
}

func (cmd *Command) print(ui terminal.UI, stack *backend.Stack, pkg packagejson.PackageJSON, id backend.Identifier) {
	logs := []terminal.Log{terminal.NewTextLog("Stack: %s", stack.Name)}
	logs = append(logs, terminal.NewTextLog("Backend: %s", id))

	if pkg.Version != "" {
		if v, err := pkg.SemVer(); err != nil {
			logs = append(logs, terminal.NewWarningLog("package.json version '%s' is not a semantic version", pkg.Version))
		} else {
			logs = append(logs, terminal.NewTextLog("Version: v%s", v))
		}
	}

	if cmd.inputs.DryRun {
		logs = append(logs, terminal.NewTextLog("Dry run: secrets were not read"))
	}

	loginWith, _ := stack.Auth()

	rows := loginMethods(loginWith)
	if len(rows) == 0 {
		logs = append(logs, terminal.NewTextLog("No login methods are configured"))
	} else {
		logs = append(logs, terminal.NewTableLog("Login methods", []string{headerMethod, headerDetails}, rows...))
	}

	if ep := loginWith.ExternalProviders; ep != nil && len(ep.CallbackURLs) > 0 {
		urls := make([]interface{}, len(ep.CallbackURLs))
		for i, url := range ep.CallbackURLs {
			urls[i] = url
		}
		logs = append(logs, terminal.NewListLog("Callback URLs", urls...))
	}

	ui.Print(logs...)
}

func loginMethods(loginWith construct.AuthLoginWith) []terminal.TableRow {
	var rows []terminal.TableRow

	if p := loginWith.PhoneNumber; p != nil {
		rows = append(rows, terminal.TableRow{headerMethod: "phoneNumber", headerDetails: "verification message: " + p.VerificationMessage})
	}

	ep := loginWith.ExternalProviders
	if ep == nil {
		return rows
	}

	if ep.Google != nil {
		rows = append(rows, terminal.TableRow{headerMethod: "google", headerDetails: detailsResolved})
	}
	if ep.Facebook != nil {
		rows = append(rows, terminal.TableRow{headerMethod: "facebook", headerDetails: detailsResolved})
	}
	if ep.Amazon != nil {
		rows = append(rows, terminal.TableRow{headerMethod: "amazon", headerDetails: detailsResolved})
	}
	if ep.OIDC != nil {
		rows = append(rows, terminal.TableRow{headerMethod: "oidc", headerDetails: "issuer: " + ep.OIDC.IssuerURL})
	}
	if ep.Apple != nil {
		rows = append(rows, terminal.TableRow{headerMethod: "apple", headerDetails: detailsResolved})
	}
	return rows
}
