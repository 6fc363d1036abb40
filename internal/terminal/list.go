package terminal

import (
	"fmt"
	"strings"
)

var (
	listFields = []string{logFieldMessage, logFieldData}
)

type list struct {
	message string
	data    []string
}

func newList(message string, data []interface{}) list {
	l := list{message: message, data: make([]string, 0, len(data))}
	for _, item := range data {
		l.data = append(l.data, parseValue(item))
	}
	return l
}

func (l list) Message() (string, error) {
	if len(l.data) == 0 {
		return l.message, nil
	}
	return fmt.Sprintf("%s\n%s", l.message, l.dataString()), nil
}

func (l list) Payload() ([]string, map[string]interface{}, error) {
	return listFields, map[string]interface{}{
		logFieldMessage: l.message,
		logFieldData:    l.data,
	}, nil
}

func (l list) dataString() string {
	rows := make([]string, len(l.data))
	for i, item := range l.data {
		rows[i] = Indent + item
	}
	return strings.Join(rows, "\n")
}

// followup is a list whose message is suffixed by a colon
type followup struct {
	list
}

func newFollowup(message string, items []interface{}) followup {
	return followup{newList(message, items)}
}

func (f followup) Message() (string, error) {
	if len(f.data) == 0 {
		return f.message, nil
	}
	return fmt.Sprintf("%s:\n%s", f.message, f.dataString()), nil
}
