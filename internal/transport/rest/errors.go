package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/willyuhot/ehexam/internal/domain"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// handleError maps domain sentinels to HTTP statuses. Unknown errors are
// logged and reported as 500 without details.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		maxErr *http.MaxBytesError
		valErr *domain.ValidationError
	)

	switch {
	case errors.As(err, &maxErr):
		writeError(w, http.StatusRequestEntityTooLarge, "request_too_large",
			"request body exceeds "+strconv.FormatInt(maxErr.Limit, 10)+" bytes")
	case errors.As(err, &valErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  valErr.Error(),
			Code:   "validation",
			Fields: valErr.Errors,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", "already exists")
	case errors.Is(err, domain.ErrConfigurationMissing):
		writeError(w, http.StatusPreconditionFailed, "configuration_missing", "model API key is not configured")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "upstream_unauthorized", "model API key was rejected")
	case errors.Is(err, domain.ErrDecodeFailure), errors.Is(err, domain.ErrMalformedResponse):
		log.WarnContext(r.Context(), "malformed model response", slog.String("error", err.Error()))
		writeError(w, http.StatusUnprocessableEntity, "malformed_response", "model returned an unusable response")
	case errors.Is(err, domain.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "upstream_timeout", "model request timed out")
	case errors.Is(err, domain.ErrNetwork):
		log.WarnContext(r.Context(), "upstream unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "upstream_unavailable", "model service is unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeBody reads a JSON request body into v. Oversized bodies keep their
// *http.MaxBytesError so handleError can answer 413.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// pathID parses the {id} path value as a positive question id.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

// queryInt reads an integer query parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

// queryBool reports whether a flag query parameter is set to a true value.
func queryBool(r *http.Request, name string) (bool, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, domain.NewValidationError(name, "must be a boolean")
	}
	return b, nil
}
