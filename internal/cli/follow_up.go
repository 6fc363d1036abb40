package cli

// WithSuggestedCommands attaches the commands the user can try running instead to the error
func WithSuggestedCommands(err error, commands ...interface{}) error {
	return suggestedCommandsErr{err, commands}
}

type suggestedCommandsErr struct {
	error
	commands []interface{}
}

func (err suggestedCommandsErr) SuggestedCommands() []interface{} { return err.commands }

func (err suggestedCommandsErr) Unwrap() error { return err.error }

// WithReferenceLinks attaches links which give the user more context to the error
func WithReferenceLinks(err error, links ...interface{}) error {
	return referenceLinksErr{err, links}
}

type referenceLinksErr struct {
	error
	links []interface{}
}

func (err referenceLinksErr) ReferenceLinks() []interface{} { return err.links }

func (err referenceLinksErr) Unwrap() error { return err.error }
