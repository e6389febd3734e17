package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/andrelms/comercio-api/internal/httpx"
	"github.com/andrelms/comercio-api/internal/repository"
)

// writeRepoError maps the repository error taxonomy onto transport status
// codes. This is the only place that decision is made.
func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	case errors.Is(err, repository.ErrDuplicateKey):
		httpx.JSONError(w, http.StatusConflict, "duplicate_key", nil)
	case errors.Is(err, repository.ErrValidation):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, repository.ErrIntegrity):
		httpx.JSONError(w, http.StatusConflict, "dependent_records_exist", err.Error())
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}

// pathID parses the named path segment as an id. Zero return means the
// response has already been written.
func pathID(w http.ResponseWriter, r *http.Request, name string) uint {
	n, err := strconv.ParseUint(r.PathValue(name), 10, 32)
	if err != nil || n == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return 0
	}
	return uint(n)
}
