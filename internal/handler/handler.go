package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"totem-api/internal/model"

	"github.com/rs/zerolog"
)

// Messages rendered by the global error responder.
const (
	msgInternalError = "Erro interno do servidor"
	msgRouteNotFound = "Rota não encontrada"
)

// errorBody is the inner error object of the uniform error envelope.
// Details carries the ordered field violations for validation errors, or the
// raw error text for internal failures outside production.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// errorEnvelope is the fixed JSON shape of every non-2xx response.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// ErrorResponder renders every error surfacing from the HTTP layer into the
// uniform error envelope. Operational errors pass through verbatim;
// unclassified errors are logged in full and rendered with a generic message,
// with the original text exposed under details only outside production.
type ErrorResponder struct {
	logger         zerolog.Logger
	exposeInternal bool
}

// NewErrorResponder creates the global error responder. exposeInternal should
// be true in non-production environments only.
func NewErrorResponder(logger zerolog.Logger, exposeInternal bool) *ErrorResponder {
	return &ErrorResponder{
		logger:         logger.With().Str("handler", "error").Logger(),
		exposeInternal: exposeInternal,
	}
}

// Respond writes the error envelope for err.
func (e *ErrorResponder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	e.logger.Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")

	var appErr *model.Error
	if errors.As(err, &appErr) {
		body := errorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if appErr.Kind == model.KindValidation {
			body.Details = appErr.Details
		}
		writeJSON(w, appErr.Status, errorEnvelope{Error: body})
		return
	}

	body := errorBody{
		Code:    model.ErrCodeInternalError,
		Message: msgInternalError,
	}
	if e.exposeInternal {
		body.Details = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: body})
}

// RouteNotFound writes the envelope for a request that matched no route.
func (e *ErrorResponder) RouteNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorEnvelope{Error: errorBody{
		Code:    model.ErrCodeNotFound,
		Message: msgRouteNotFound,
	}})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already written; nothing left to do.
		return
	}
}
