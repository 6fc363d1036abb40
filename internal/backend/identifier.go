// Package backend holds the identity of a deployed backend along with
// the capabilities used while wiring its constructs
package backend

import (
	"fmt"
)

// ToolName prefixes every path this tool owns in a shared store
const ToolName = "realm-backend"

// set of reserved disambiguators
const (
	DisambiguatorSandbox = "sandbox"
)

// Identifier uniquely identifies a deployed backend
type Identifier interface {
	BackendID() string
	Disambiguator() string
}

// BranchIdentifier identifies a backend deployed from a source branch
type BranchIdentifier struct {
	backendID string
	branch    string
}

// NewBranchIdentifier creates a new branch backend identifier
func NewBranchIdentifier(backendID, branch string) BranchIdentifier {
	return BranchIdentifier{backendID, branch}
}

// BackendID returns the backend id
func (id BranchIdentifier) BackendID() string { return id.backendID }

// Disambiguator returns the branch name
func (id BranchIdentifier) Disambiguator() string { return id.branch }

func (id BranchIdentifier) String() string {
	return fmt.Sprintf("%s (branch: %s)", id.backendID, id.branch)
}

// SandboxIdentifier identifies a personal sandbox backend
type SandboxIdentifier struct {
	backendID string
}

// NewSandboxIdentifier creates a new sandbox backend identifier
func NewSandboxIdentifier(backendID string) SandboxIdentifier {
	return SandboxIdentifier{backendID}
}

// BackendID returns the backend id
func (id SandboxIdentifier) BackendID() string { return id.backendID }

// Disambiguator returns the sandbox disambiguator
func (id SandboxIdentifier) Disambiguator() string { return DisambiguatorSandbox }

func (id SandboxIdentifier) String() string {
	return fmt.Sprintf("%s (sandbox)", id.backendID)
}

// SecretPath returns the fully qualified path of a backend's secret
func SecretPath(id Identifier, name string) string {
	return fmt.Sprintf("/%s/%s/%s/%s", ToolName, id.BackendID(), id.Disambiguator(), name)
}

// NewIdentifier creates the identifier of a branch backend,
// or of the sandbox backend when no branch is specified
func NewIdentifier(backendID, branch string) Identifier {
	if branch == "" || branch == DisambiguatorSandbox {
		return NewSandboxIdentifier(backendID)
	}
	return NewBranchIdentifier(backendID, branch)
}
