package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/upandey0/bookmarks/internal/errors"
	"github.com/upandey0/bookmarks/internal/httpserver/deps"
	"github.com/upandey0/bookmarks/internal/logger"
)

type dataEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// respondData writes the success envelope every endpoint uses.
func respondData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dataEnvelope{Success: true, Data: data})
}

// respondError maps a domain error to its HTTP status and writes the
// error envelope. Internal causes are logged, never sent to clients.
func respondError(w http.ResponseWriter, d deps.Deps, err error) {
	var domErr *errors.Error
	if !errors.As(err, &domErr) {
		domErr = errors.Internal(err)
	}

	if domErr.Code == errors.CodeInternal {
		d.Logger.Error("request failed", logger.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(domErr.HTTPStatus())
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: domErr.Message})
}

// decodeJSON decodes a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Validation("invalid request body")
	}
	return nil
}
