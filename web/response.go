package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kataras/iris/v12"
	log "github.com/sirupsen/logrus"
	"medcost-api/internal"
)

const (
	msgInvalidBody        = "Invalid request body"
	msgUserExists         = "User already exists"
	msgUserRegistered     = "User registered successfully"
	msgRegisterFailed     = "Error registering user"
	msgInvalidCredentials = "Invalid email or password"
	msgLoginSuccessful    = "Login successful"
	msgLoginFailed        = "Error logging in"
	msgContactSaved       = "Message received successfully"
	msgContactSaveFailed  = "Error saving message"
	msgContactListFailed  = "Error fetching messages"
	msgPredictFailed      = "Error processing prediction request"
)

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

func writeMessage(ctx iris.Context, status int, message string) error {
	return ctx.StopWithJSON(status, messageResponse{Message: message})
}

// writeError logs err with its detail and sends the caller only a status
// and a generic message. fallback is used for anything not classified.
func writeError(ctx iris.Context, function string, err error, fallback string) error {
	status, message, level := classify(err, fallback)

	internal.ErrorFormat{
		Package:  "web",
		Function: function,
		Level:    level,
		Message:  message,
		Error:    err,
		Request:  RequestID(ctx),
	}.Print()

	return writeMessage(ctx, status, message)
}

func classify(err error, fallback string) (int, string, log.Level) {
	switch {
	case errors.Is(err, internal.ErrInvalidInput):
		return http.StatusBadRequest, validationMessage(err), log.WarnLevel
	case errors.Is(err, internal.ErrDuplicateAccount):
		return http.StatusBadRequest, msgUserExists, log.WarnLevel
	case errors.Is(err, internal.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgInvalidCredentials, log.WarnLevel
	default:
		return http.StatusInternalServerError, fallback, log.ErrorLevel
	}
}

// validationMessage reports which field was missing; input errors carry no
// internal detail so they are safe to return.
func validationMessage(err error) string {
	if msg, ok := strings.CutPrefix(err.Error(), internal.ErrInvalidInput.Error()+": "); ok && msg != "" {
		return msg
	}
	return msgInvalidBody
}
