// Package packagejson reads and writes the package.json manifest of a project
package packagejson

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/blang/semver"
	"github.com/spf13/afero"
	"github.com/xeipuuv/gojsonschema"
)

// FileName is the name of the package manifest
const FileName = "package.json"

// set of supported module types
const (
	TypeModule   = "module"
	TypeCommonJS = "commonjs"
)

const schema = `{
  "type": "object",
  "properties": {
    "name": { "type": "string" },
    "version": { "type": "string" },
    "type": { "enum": ["module", "commonjs"] }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schema)

// ErrNotFound matches the error returned when there is no package.json to read
var ErrNotFound = errors.New("package.json not found")

// IsNotFound reports whether the error signals a missing package.json
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

type notFoundErr struct {
	path string
}

func (err notFoundErr) Error() string {
	return fmt.Sprintf("Could not find a package.json file at %s", err.path)
}

func (err notFoundErr) Is(target error) bool { return target == ErrNotFound }

// PackageJSON is the subset of package.json fields read by the CLI
type PackageJSON struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
	Type    string `json:"type,omitempty"`
}

// SemVer parses the package version
func (p PackageJSON) SemVer() (semver.Version, error) {
	v, err := semver.Make(p.Version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("failed to parse version '%s': %w", p.Version, err)
	}
	return v, nil
}

// Reader reads package.json files
type Reader struct {
	fs afero.Fs
}

// NewReader creates a new package.json reader
func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs}
}

// Read reads and validates the package.json file at the absolute path
func (r *Reader) Read(absPath string) (PackageJSON, error) {
	data, err := afero.ReadFile(r.fs, absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return PackageJSON{}, notFoundErr{absPath}
		}
		return PackageJSON{}, fmt.Errorf("failed to read %s: %w", absPath, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return PackageJSON{}, fmt.Errorf("Could not JSON.parse the contents of %s", absPath)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return PackageJSON{}, fmt.Errorf("failed to validate %s: %w", absPath, err)
	}
	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			violations = append(violations, e.String())
		}
		return PackageJSON{}, fmt.Errorf("invalid package.json at %s: %s", absPath, strings.Join(violations, "; "))
	}

	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return PackageJSON{}, fmt.Errorf("Could not JSON.parse the contents of %s", absPath)
	}
	return pkg, nil
}

// Write writes the package.json file to the path
func Write(fs afero.Fs, path string, pkg PackageJSON) error {
	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
