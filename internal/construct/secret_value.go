package construct

import (
	"encoding/json"
)

// Redacted is the display value of every SecretValue
const Redacted = "********"

// SecretValue is a secret value which has been resolved for use by a construct
// The wrapped value is never printed nor marshaled; use UnsafeUnwrap to access it
type SecretValue struct {
	value string
}

// UnsafePlainText wraps the plaintext value as a SecretValue
func UnsafePlainText(value string) SecretValue {
	return SecretValue{value}
}

// UnsafeUnwrap returns the plaintext value
func (sv SecretValue) UnsafeUnwrap() string { return sv.value }

// String returns the redacted secret value
func (sv SecretValue) String() string { return Redacted }

// GoString returns the redacted secret value for %#v formatting
func (sv SecretValue) GoString() string { return "construct.SecretValue{" + Redacted + "}" }

// MarshalJSON marshals the redacted secret value
func (sv SecretValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(Redacted)
}

// MarshalYAML marshals the redacted secret value
func (sv SecretValue) MarshalYAML() (interface{}, error) {
	return Redacted, nil
}

// Equal reports whether both secret values wrap the same plaintext
func (sv SecretValue) Equal(other SecretValue) bool { return sv.value == other.value }
