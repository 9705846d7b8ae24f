package internal

import (
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error kinds surfaced at the request boundary. Causes are wrapped with
// fmt.Errorf("%w: %w", kind, cause) so both stay reachable through errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateAccount   = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrStorage            = errors.New("storage error")
	ErrUpstream           = errors.New("upstream error")
	ErrNotConnected       = errors.New("database not connected")
)

type ErrorFormat struct {
	ObjectID primitive.ObjectID `json:"objectID,omitempty"`
	Message  string             `json:"message,omitempty"`
	Error    error              `json:"-"`
	Function string             `json:"function,omitempty"`
	Level    logrus.Level       `json:"level,omitempty"`
	Package  string             `json:"package,omitempty"`
	Request  string             `json:"requestID,omitempty"`
}

func (e ErrorFormat) String() string {
	out := struct {
		ErrorFormat
		Cause string `json:"error,omitempty"`
	}{ErrorFormat: e}
	if e.Error != nil {
		out.Cause = e.Error.Error()
	}

	marshal, err := json.Marshal(out)
	if err != nil {
		return ""
	}

	return string(marshal)
}

// ToError prints the record and returns the wrapped cause, or the message
// when there is no cause.
func (e ErrorFormat) ToError() error {
	e.Print()
	if e.Error != nil {
		return e.Error
	}
	return errors.New(e.Message)
}

func (e ErrorFormat) Print() {
	entry := logrus.WithFields(e.Fields())
	switch e.Level {
	case logrus.WarnLevel:
		entry.Warn(e.Message)
	case logrus.ErrorLevel:
		entry.Error(e.Message)
	case logrus.DebugLevel:
		entry.Debug(e.Message)
	default:
		entry.Info(e.Message)
	}
}

// Fields flattens the record for structured log output.
func (e ErrorFormat) Fields() logrus.Fields {
	f := logrus.Fields{}
	if e.Package != "" {
		f["package"] = e.Package
	}
	if e.Function != "" {
		f["function"] = e.Function
	}
	if !e.ObjectID.IsZero() {
		f["objectID"] = e.ObjectID.Hex()
	}
	if e.Request != "" {
		f["request_id"] = e.Request
	}
	if e.Error != nil {
		f[logrus.ErrorKey] = e.Error
	}
	return f
}
