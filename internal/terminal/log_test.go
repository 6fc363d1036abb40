package terminal

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/10gen/realm-backend/internal/utils/test/assert"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func TestLogConstructor(t *testing.T) {
	assert.RegisterOpts(reflect.TypeOf(jsonDocument{}), cmp.AllowUnexported(jsonDocument{}))
	assert.RegisterOpts(reflect.TypeOf(titledJSONDocument{}), cmp.AllowUnexported(titledJSONDocument{}), cmp.AllowUnexported(jsonDocument{}))
	assert.RegisterOpts(reflect.TypeOf(followup{}), cmp.AllowUnexported(followup{}, list{}))

	for _, tc := range []struct {
		ctor          string
		log           Log
		expectedLevel LogLevel
		expectedData  LogData
	}{
		{
			ctor:          "NewTextLog",
			log:           NewTextLog("oh yeah"),
			expectedLevel: LogLevelInfo,
			expectedData:  textMessage("oh yeah"),
		},
		{
			ctor:          "NewDebugLog",
			log:           NewDebugLog("%d debug", 1),
			expectedLevel: LogLevelDebug,
			expectedData:  textMessage("1 debug"),
		},
		{
			ctor:          "NewWarningLog",
			log:           NewWarningLog("careful"),
			expectedLevel: LogLevelWarn,
			expectedData:  textMessage("careful"),
		},
		{
			ctor:          "NewTitledJSONLog",
			log:           NewTitledJSONLog("Test Title", map[string]interface{}{"a": "ayyy"}),
			expectedLevel: LogLevelInfo,
			expectedData:  titledJSONDocument{"Test Title", jsonDocument{map[string]interface{}{"a": "ayyy"}}},
		},
		{
			ctor:          "NewErrorLog",
			log:           NewErrorLog(errors.New("oh noz")),
			expectedLevel: LogLevelError,
			expectedData:  errorMessage{errors.New("oh noz")},
		},
		{
			ctor:          "NewFollowupLog",
			log:           NewFollowupLog(MsgSuggestedResolution, "do this"),
			expectedLevel: LogLevelInfo,
			expectedData:  followup{list{MsgSuggestedResolution, []string{"do this"}}},
		},
	} {
		t.Run(fmt.Sprintf("%s should create the expected Log", tc.ctor), func(t *testing.T) {
			time.Sleep(1 * time.Millisecond) // force tick
			assert.True(t, time.Now().After(tc.log.Time), "now should be later than the log's timestamp")
			assert.Equal(t, tc.expectedLevel, tc.log.Level)
			assert.Equal(t, tc.expectedData, tc.log.Data)
		})
	}
}

func TestLogPrint(t *testing.T) {
	color.NoColor = true

	logTime := time.Date(1989, 6, 22, 7, 54, 0, 0, time.UTC)

	for _, tc := range []struct {
		description     string
		level           LogLevel
		data            LogData
		expectedOutputs map[OutputFormat]string
	}{
		{
			description: "text message",
			level:       LogLevelInfo,
			data:        textMessage("this is a test log"),
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "this is a test log",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","message":"this is a test log"}`,
			},
		},
		{
			description: "warning message",
			level:       LogLevelWarn,
			data:        textMessage("this is a warning"),
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "WARN: this is a warning",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"warn","message":"this is a warning"}`,
			},
		},
		{
			description: "json document",
			level:       LogLevelInfo,
			data:        jsonDocument{map[string]interface{}{"a": true, "b": 1, "c": "sea"}},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: `{
  "a": true,
  "b": 1,
  "c": "sea"
}`,
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","doc":{"a":true,"b":1,"c":"sea"}}`,
			},
		},
		{
			description: "titled json document",
			level:       LogLevelInfo,
			data:        titledJSONDocument{"Title", jsonDocument{[]string{"x"}}},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "Title\n---\n[\n  \"x\"\n]",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","title":"Title","doc":["x"]}`,
			},
		},
		{
			description: "error message",
			level:       LogLevelError,
			data:        errorMessage{errors.New("something bad happened")},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "ERROR: something bad happened",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"error","err":"something bad happened"}`,
			},
		},
		{
			description: "follow up",
			level:       LogLevelInfo,
			data:        newFollowup(MsgSuggestedCommands, []interface{}{"realm-backend init"}),
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "Try running instead:\n  realm-backend init",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","message":"Try running instead","data":["realm-backend init"]}`,
			},
		},
	} {
		for outputFormat, expectedOutput := range tc.expectedOutputs {
			t.Run(fmt.Sprintf("Should print a %s with %s format", tc.description, outputFormat), func(t *testing.T) {
				log := Log{tc.level, logTime, tc.data}

				output, err := log.Print(outputFormat)
				assert.Nil(t, err)
				assert.Equal(t, expectedOutput, output)
			})
		}
	}

	t.Run("Should fail to print with an unsupported output format", func(t *testing.T) {
		_, err := NewTextLog("test").Print(OutputFormat("yaml"))
		assert.Equal(t, errors.New("unsupported output format type: yaml"), err)
	})
}
