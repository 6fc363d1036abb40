package backend

import (
	"fmt"

	"github.com/10gen/realm-backend/internal/construct"
)

// set of supported app context keys
const (
	ContextProjectName     = "project-name"
	ContextEnvironmentName = "environment-name"
)

// App is the root of a backend's construct tree
type App struct {
	context map[string]string
}

// NewApp creates a new app
func NewApp() *App {
	return &App{map[string]string{}}
}

// SetContext sets the app context value
func (app *App) SetContext(key, value string) {
	app.context[key] = value
}

// Context returns the app context value and whether or not it was set
func (app *App) Context(key string) (string, bool) {
	value, ok := app.context[key]
	return value, ok
}

// Stack is a deployable unit of a backend
type Stack struct {
	Name string

	auth *construct.AuthLoginWith
}

// AddAuth attaches the auth login configuration to the stack
func (s *Stack) AddAuth(loginWith construct.AuthLoginWith) {
	s.auth = &loginWith
}

// Auth returns the stack's auth login configuration and whether or not one is attached
func (s *Stack) Auth() (construct.AuthLoginWith, bool) {
	if s.auth == nil {
		return construct.AuthLoginWith{}, false
	}
	return *s.auth, true
}

// ErrMissingContext is returned when a required app context value is not set
type ErrMissingContext struct {
	Key string
}

func (err ErrMissingContext) Error() string {
	return fmt.Sprintf("app context value '%s' must be set", err.Key)
}

// CreateDefaultStack creates the default stack for the app, named after
// the project and environment names found in the app context
func CreateDefaultStack(app *App) (*Stack, error) {
	projectName, ok := app.Context(ContextProjectName)
	if !ok || projectName == "" {
		return nil, ErrMissingContext{ContextProjectName}
	}

	environmentName, ok := app.Context(ContextEnvironmentName)
	if !ok || environmentName == "" {
		return nil, ErrMissingContext{ContextEnvironmentName}
	}

	return &Stack{Name: fmt.Sprintf("%s-%s", projectName, environmentName)}, nil
}
