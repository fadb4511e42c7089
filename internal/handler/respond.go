package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
)

// respondJSON writes v as a JSON response with the given status code.
// Encoding failures are logged but cannot be reported to the client because
// the status line has already been written.
func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.ErrorContext(r.Context(), "encode response", "error", err, "path", r.URL.Path)
	}
}

// decodeJSON decodes the request body into dst, rejecting unknown fields so
// client typos fail loudly instead of silently dropping data.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %v", err)
	}
	return nil
}

// pageParams reads ?page= and ?limit= query parameters.
// Absent or malformed values fall back to the defaults in NewPaginationParams.
func pageParams(r *http.Request) domain.PaginationParams {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return domain.NewPaginationParams(page, limit)
}
