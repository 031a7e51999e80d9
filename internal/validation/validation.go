// Package validation implements the request validation layer: one explicit
// function per input shape, each returning either a normalized value or the
// full ordered list of field violations. Normalization is never partial.
package validation

import (
	"strings"
	"unicode/utf8"

	"totem-api/internal/model"
)

// Validation messages surfaced to clients.
const (
	MsgRequired       = "Campo obrigatório"
	MsgSKULength      = "SKU deve ter entre 1 e 50 caracteres"
	MsgNameLength     = "Nome deve ter entre 3 e 255 caracteres"
	MsgPricePositive  = "Preço deve ser positivo"
	MsgStockNegative  = "Estoque não pode ser negativo"
	MsgCategoryLength = "Categoria deve ter entre 1 e 100 caracteres"
	MsgInStockLiteral = `inStock deve ser "true" ou "false"`
	MsgFailed         = "Validação falhou"
	MsgInvalidJSON    = "JSON inválido"
)

// ProductPayload is the raw JSON body of a create or update request. Pointer
// fields distinguish absent fields from zero values.
type ProductPayload struct {
	SKU      *string  `json:"sku"`
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	Category *string  `json:"category"`
}

// ValidateCreate checks a create payload. All five fields are required;
// string fields are trimmed before length checks.
func ValidateCreate(payload ProductPayload) (model.CreateProductInput, []model.FieldError) {
	var violations []model.FieldError
	var input model.CreateProductInput

	if payload.SKU == nil {
		violations = append(violations, model.FieldError{Field: "sku", Message: MsgRequired})
	} else {
		sku := strings.TrimSpace(*payload.SKU)
		if n := utf8.RuneCountInString(sku); n < 1 || n > 50 {
			violations = append(violations, model.FieldError{Field: "sku", Message: MsgSKULength})
		} else {
			input.SKU = sku
		}
	}

	if payload.Name == nil {
		violations = append(violations, model.FieldError{Field: "name", Message: MsgRequired})
	} else {
		name := strings.TrimSpace(*payload.Name)
		if n := utf8.RuneCountInString(name); n < 3 || n > 255 {
			violations = append(violations, model.FieldError{Field: "name", Message: MsgNameLength})
		} else {
			input.Name = name
		}
	}

	if payload.Price == nil {
		violations = append(violations, model.FieldError{Field: "price", Message: MsgRequired})
	} else if *payload.Price <= 0 {
		violations = append(violations, model.FieldError{Field: "price", Message: MsgPricePositive})
	} else {
		input.Price = *payload.Price
	}

	if payload.Stock == nil {
		violations = append(violations, model.FieldError{Field: "stock", Message: MsgRequired})
	} else if *payload.Stock < 0 {
		violations = append(violations, model.FieldError{Field: "stock", Message: MsgStockNegative})
	} else {
		input.Stock = *payload.Stock
	}

	if payload.Category == nil {
		violations = append(violations, model.FieldError{Field: "category", Message: MsgRequired})
	} else {
		category := strings.TrimSpace(*payload.Category)
		if n := utf8.RuneCountInString(category); n < 1 || n > 100 {
			violations = append(violations, model.FieldError{Field: "category", Message: MsgCategoryLength})
		} else {
			input.Category = category
		}
	}

	if violations != nil {
		return model.CreateProductInput{}, violations
	}

	return input, nil
}

// ValidateUpdate checks an update payload. Field constraints match the create
// schema, but every field is optional; absent fields are left untouched.
func ValidateUpdate(payload ProductPayload) (model.UpdateProductInput, []model.FieldError) {
	var violations []model.FieldError
	var input model.UpdateProductInput

	if payload.SKU != nil {
		sku := strings.TrimSpace(*payload.SKU)
		if n := utf8.RuneCountInString(sku); n < 1 || n > 50 {
			violations = append(violations, model.FieldError{Field: "sku", Message: MsgSKULength})
		} else {
			input.SKU = &sku
		}
	}

	if payload.Name != nil {
		name := strings.TrimSpace(*payload.Name)
		if n := utf8.RuneCountInString(name); n < 3 || n > 255 {
			violations = append(violations, model.FieldError{Field: "name", Message: MsgNameLength})
		} else {
			input.Name = &name
		}
	}

	if payload.Price != nil {
		if *payload.Price <= 0 {
			violations = append(violations, model.FieldError{Field: "price", Message: MsgPricePositive})
		} else {
			input.Price = payload.Price
		}
	}

	if payload.Stock != nil {
		if *payload.Stock < 0 {
			violations = append(violations, model.FieldError{Field: "stock", Message: MsgStockNegative})
		} else {
			input.Stock = payload.Stock
		}
	}

	if payload.Category != nil {
		category := strings.TrimSpace(*payload.Category)
		if n := utf8.RuneCountInString(category); n < 1 || n > 100 {
			violations = append(violations, model.FieldError{Field: "category", Message: MsgCategoryLength})
		} else {
			input.Category = &category
		}
	}

	if violations != nil {
		return model.UpdateProductInput{}, violations
	}

	return input, nil
}

// ValidateFilters checks the listing query parameters. The inStock parameter
// must be the literal string "true" or "false" when present; the stock filter
// only applies when it is "true".
func ValidateFilters(category, inStock, search string) (model.ProductFilters, []model.FieldError) {
	if inStock != "" && inStock != "true" && inStock != "false" {
		return model.ProductFilters{}, []model.FieldError{
			{Field: "inStock", Message: MsgInStockLiteral},
		}
	}

	return model.ProductFilters{
		Category: category,
		InStock:  inStock == "true",
		Search:   search,
	}, nil
}
