// Package body decodes JSON request bodies and writes JSON responses.
package body

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	httperrors "github.com/ayodejiAA/trivia/pkg/http/errors"
)

// MaxBytes caps every decoded request body.
const MaxBytes = 1 << 20

// DecodeObject reads exactly one JSON object from r. Numbers are kept as json.Number so callers can
// tell integers from fractions. Anything that is not a single object is a bad request.
func DecodeObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode body: %w: %w", httperrors.ErrBadRequest, err)
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("body is not a JSON object: %w", httperrors.ErrBadRequest)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after JSON object: %w", httperrors.ErrBadRequest)
	}
	return obj, nil
}

// DecodeRequest limits the request body to MaxBytes and decodes it with DecodeObject.
func DecodeRequest(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	return DecodeObject(http.MaxBytesReader(w, r.Body, MaxBytes))
}

// WriteJSON encodes payload with the given status code.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
