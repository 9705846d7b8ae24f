package web

import (
	"time"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	log "github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestIDMiddleware keeps a caller supplied X-Request-ID or generates one,
// and echoes it on the response.
func RequestIDMiddleware(ctx iris.Context) {
	id := ctx.GetHeader(RequestIDHeader)
	if id == "" || len(id) > 128 {
		id = uuid.NewString()
	}
	ctx.Values().Set(requestIDKey, id)
	ctx.Header(RequestIDHeader, id)
	ctx.Next()
}

func RequestID(ctx iris.Context) string {
	return ctx.Values().GetString(requestIDKey)
}

func RequestLogger(ctx iris.Context) {
	start := time.Now()
	ctx.Next()

	log.WithFields(log.Fields{
		"request_id": RequestID(ctx),
		"client_ip":  ClientIP(ctx),
		"method":     ctx.Method(),
		"path":       ctx.Path(),
		"status":     ctx.GetStatusCode(),
		"latency":    time.Since(start).String(),
	}).Info("request")
}
