// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/models"
)

// withAPIVersion decorates every JSON object response with a trailing
// "meta" block carrying the API version of the route group and the response
// timestamp.
//
// The middleware buffers the downstream response, inspects the body after
// the handler has produced its envelope, and injects meta only when the body
// is a JSON object that does not already declare a "meta" key. Non-JSON
// bodies, JSON arrays, and responses with an explicit meta pass through
// byte-for-byte.
func (h *Handler) withAPIVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buffered := &bufferingResponseWriter{ResponseWriter: w}

		next.ServeHTTP(buffered, r)

		body := buffered.body.Bytes()
		if isJSONResponse(buffered.Header()) {
			if decorated, ok := injectMeta(body, apiVersionFromPath(r.URL.Path)); ok {
				body = decorated
			}
		}

		w.WriteHeader(buffered.Status())
		if _, err := w.Write(body); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing decorated response")
		}
	})
}

// injectMeta adds a meta block to a JSON object body lacking one.
// Returns the decorated body and true, or nil and false when the body is
// left untouched.
func injectMeta(body []byte, apiVersion string) ([]byte, bool) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return nil, false
	}

	if _, exists := payload["meta"]; exists {
		return nil, false
	}

	meta, err := json.Marshal(models.Meta{
		APIVersion: apiVersion,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, false
	}
	payload["meta"] = meta

	decorated, err := json.Marshal(payload)
	if err != nil {
		return nil, false
	}

	return decorated, true
}

// apiVersionFromPath derives the meta api_version from the request path's
// route-group prefix. Requests outside a versioned group report "v1", the
// default version.
func apiVersionFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "/api")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}

	switch trimmed {
	case "v1", "legacy":
		return trimmed
	default:
		return "v1"
	}
}

func isJSONResponse(header http.Header) bool {
	return strings.Contains(header.Get("Content-Type"), "application/json")
}

// bufferingResponseWriter holds back the status code and body of the
// downstream handler so the versioning middleware can rewrite the body
// before anything reaches the wire. Headers are not buffered; they pass
// through to the underlying writer's header map and are flushed on the
// outer WriteHeader call.
type bufferingResponseWriter struct {
	http.ResponseWriter

	// status is the buffered HTTP status code; zero until WriteHeader
	// (or an implicit WriteHeader via Write) is called.
	status int

	// body accumulates everything the downstream handler wrote.
	body bytes.Buffer
}

func (w *bufferingResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *bufferingResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

// Status returns the buffered status code, defaulting to 200 when the
// downstream handler never set one.
func (w *bufferingResponseWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
