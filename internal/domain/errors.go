package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database or session store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service and plan functions when input fails
// business rule validation (e.g. day index out of range, empty day plans).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrCatalogUnavailable is returned by the catalog client when the upstream
// catalog service fails or returns an unexpected payload. It degrades only the
// affected listing; planning operations are never blocked by it.
// Handlers should map this to HTTP 502.
var ErrCatalogUnavailable = errors.New("catalog unavailable")
