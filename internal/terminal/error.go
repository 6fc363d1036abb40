package terminal

import (
	"errors"
)

const (
	logFieldErr     = "err"
	logFieldErrName = "name"
)

// namedErr is an error which carries a stable name for the kind of failure
type namedErr interface {
	ErrorName() string
}

type errorMessage struct {
	error
}

func (e errorMessage) Message() (string, error) {
	return e.Error(), nil
}

func (e errorMessage) Payload() ([]string, map[string]interface{}, error) {
	fields := []string{logFieldErr}
	payload := map[string]interface{}{logFieldErr: e.Error()}

	var named namedErr
	if errors.As(e.error, &named) && named.ErrorName() != "" {
		fields = append(fields, logFieldErrName)
		payload[logFieldErrName] = named.ErrorName()
	}
	return fields, payload, nil
}
