// Package httputil holds the JSON response helpers shared by all HTTP
// handlers: one success writer, one error envelope.
package httputil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	dErrors "gatekeep/pkg/domain-errors"
)

const maxBodyBytes = 1 << 20

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

type errorEnvelope struct {
	Error            string            `json:"error"`
	ErrorDescription string            `json:"error_description,omitempty"`
	Fields           map[string]string `json:"fields,omitempty"`
}

// WriteError maps a domain error to its HTTP status and writes the standard
// envelope. Internal errors deliberately omit the description; everything a
// client can act on keeps it, plus per-field detail when present.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := dErrors.ToHTTPStatus(code)

	envelope := errorEnvelope{Error: string(code)}
	if code != dErrors.CodeInternal {
		envelope.ErrorDescription = dErrors.MessageOf(err)
		envelope.Fields = dErrors.FieldsOf(err)
	}
	WriteJSON(w, status, envelope)
}

// DecodeAndPrepare decodes the request body into T, rejecting unknown fields
// and oversized bodies. On failure it writes the error response itself and
// returns ok=false.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (T, bool) {
	var payload T

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		logger.WarnContext(ctx, "failed to decode request body",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "request body is not valid JSON"))
		return payload, false
	}
	return payload, true
}
