package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"totem-api/internal/model"
	"totem-api/internal/service"
	"totem-api/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests. Every failure is
// delegated to the global error responder rather than handled locally.
type ProductHandler struct {
	service service.ProductService
	errors  *ErrorResponder
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, errors *ErrorResponder, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		errors:  errors,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /products requests with optional filters.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters, violations := validation.ValidateFilters(
		query.Get("category"),
		query.Get("inStock"),
		query.Get("search"),
	)
	if violations != nil {
		h.errors.Respond(w, r, model.NewValidation(validation.MsgFailed, violations))
		return
	}

	products, err := h.service.GetAll(r.Context(), filters)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetBySKU handles GET /products/sku/{sku} requests.
func (h *ProductHandler) GetBySKU(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")

	product, err := h.service.GetBySKU(r.Context(), sku)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	input, violations := validation.ValidateCreate(payload)
	if violations != nil {
		h.errors.Respond(w, r, model.NewValidation(validation.MsgFailed, violations))
		return
	}

	product, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /products/{id} requests with a partial payload.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	input, violations := validation.ValidateUpdate(payload)
	if violations != nil {
		h.errors.Respond(w, r, model.NewValidation(validation.MsgFailed, violations))
		return
	}

	product, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// productID parses the {id} path parameter. A non-numeric id behaves like a
// miss and yields the same 404 as an unknown id.
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errors.Respond(w, r, model.NewNotFound("Produto"))
		return 0, false
	}
	return id, true
}

// decodePayload decodes a create/update body, rendering malformed JSON as a
// validation error.
func (h *ProductHandler) decodePayload(w http.ResponseWriter, r *http.Request) (validation.ProductPayload, bool) {
	var payload validation.ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Debug().Err(err).Msg("malformed request body")
		h.errors.Respond(w, r, model.NewValidation(validation.MsgFailed, []model.FieldError{
			{Field: "body", Message: validation.MsgInvalidJSON},
		}))
		return validation.ProductPayload{}, false
	}
	return payload, true
}
