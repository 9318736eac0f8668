package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/fittrack/internal/common"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto the four user-visible outcomes.
// Anything unmatched is a server fault: logged, reported as a bare 500 and
// never conflated with a validation failure.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorInvalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, common.ErrorUnauthenticated):
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
	case errors.Is(err, common.ErrorForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, common.ErrorNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// decodeJSON reads the request body into dst, rejecting unknown fields so a
// misspelled attribute fails loudly instead of being silently dropped.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return common.ErrorInvalid
	}
	return nil
}

// pathID parses a path-segment id. Malformed ids return 0, which no row
// ever carries, so the ownership walk misses and the caller sees the same
// NotFound as for any other dead path id.
func pathID(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(chiURLParam(r, name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
