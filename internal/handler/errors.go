package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
	"github.com/THIRUSELVAN-V/travellaV2/internal/plan"
)

// errorDetail is the machine-readable error body shared by all endpoints.
// Step and MissingDays are populated only for planning step failures, so
// clients can highlight the exact days that still need attention.
type errorDetail struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Step        string `json:"step,omitempty"`
	MissingDays []int  `json:"missingDays,omitempty"`
}

// errorResponse wraps errorDetail under an "error" key.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// respondError maps service/domain errors to HTTP responses:
//
//	domain.ErrNotFound           -> 404
//	domain.ErrValidation         -> 422 (with step details for *plan.StepError)
//	domain.ErrCatalogUnavailable -> 502
//	anything else                -> 500 (body hides the internal message)
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var stepErr *plan.StepError
	switch {
	case errors.As(err, &stepErr):
		s.respondJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{
			Code:        "validation_error",
			Message:     stepErr.Error(),
			Step:        stepErr.Step.String(),
			MissingDays: stepErr.MissingDays,
		}})
	case errors.Is(err, domain.ErrNotFound):
		s.respondJSON(w, r, http.StatusNotFound, errorResponse{Error: errorDetail{
			Code:    "not_found",
			Message: "resource not found",
		}})
	case errors.Is(err, domain.ErrValidation):
		s.respondJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{
			Code:    "validation_error",
			Message: unwrapMessage(err),
		}})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		s.respondJSON(w, r, http.StatusBadGateway, errorResponse{Error: errorDetail{
			Code:    "catalog_unavailable",
			Message: "upstream catalog is unavailable",
		}})
	default:
		s.log.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
		s.respondJSON(w, r, http.StatusInternalServerError, errorResponse{Error: errorDetail{
			Code:    "internal_error",
			Message: "internal server error",
		}})
	}
}

// respondBadRequest rejects a request before it reaches the service layer
// (malformed body, bad path or query parameter).
func (s *Server) respondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	s.respondJSON(w, r, http.StatusBadRequest, errorResponse{Error: errorDetail{
		Code:    "bad_request",
		Message: message,
	}})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.BookingService.Create: validation error: guests must be at
// least 1" becomes "guests must be at least 1".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, domain.ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(domain.ErrValidation.Error())+2:]
	}
	return msg
}
