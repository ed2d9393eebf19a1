package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/i18n"
)

// maxJSONBody caps request bodies decoded as JSON.
const maxJSONBody = 1 << 20

// responder holds what every handler needs to write localized responses.
type responder struct {
	log  *slog.Logger
	i18n *i18n.Localizer
}

type fieldBody struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorBody struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Fields  []fieldBody `json:"fields,omitempty"`
}

// explainFunc picks a more specific message for err. It reports false to
// fall back to the default message for the error class.
type explainFunc func(err error) (key string, args []any, ok bool)

// fail maps err onto a status and a localized message. Unexpected errors are
// logged and reported as internal.
func (h responder) fail(w http.ResponseWriter, r *http.Request, err error, explain ...explainFunc) {
	status, code, key := classify(err)
	var args []any
	for _, fn := range explain {
		if k, a, ok := fn(err); ok {
			key, args = k, a
			break
		}
	}

	body := errorBody{Error: code, Message: h.i18n.Sprintf(r.Context(), key, args...)}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Errors {
			body.Fields = append(body.Fields, fieldBody{Field: fe.Field, Message: fe.Message})
		}
	}

	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	writeJSON(w, status, body)
}

func classify(err error) (status int, code, key string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, "validation", i18n.MsgValidation
	case errors.Is(err, domain.ErrUnauthorized):
		var cerr *domain.CredentialError
		if errors.As(err, &cerr) {
			return http.StatusUnauthorized, "invalid_credentials", i18n.MsgInvalidCredentials
		}
		return http.StatusUnauthorized, "unauthorized", i18n.MsgSignInRequired
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden", i18n.MsgForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found", i18n.MsgNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "already_exists", i18n.MsgAlreadyExists
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict", i18n.MsgConflict
	case errors.Is(err, domain.ErrBucketMissing):
		return http.StatusServiceUnavailable, "storage_missing", i18n.MsgStorageMissing
	default:
		return http.StatusInternalServerError, "internal", i18n.MsgInternal
	}
}

// fieldMessage returns the message of the first validation failure on field.
func fieldMessage(err error, field string) (string, bool) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return "", false
	}
	for _, fe := range verr.Errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// explainUpload localizes the size and type failures of an image upload
// reported on field.
func explainUpload(field string, maxBytes int64) explainFunc {
	return func(err error) (string, []any, bool) {
		msg, ok := fieldMessage(err, field)
		if !ok {
			return "", nil, false
		}
		if ct, found := strings.CutPrefix(msg, "unsupported type "); found {
			return i18n.MsgFileType, []any{ct}, true
		}
		if strings.HasPrefix(msg, "max ") {
			return i18n.MsgFileTooLarge, []any{max(maxBytes>>20, 1)}, true
		}
		return "", nil, false
	}
}

// decode reads a JSON body into v. Unknown fields are rejected.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid json")
	}
	return nil
}

// pathID parses the named path wildcard as a UUID.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "invalid id")
	}
	return id, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be a number")
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
