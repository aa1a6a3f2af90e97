package course

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/Perlera89/campus/core"
)

var (
	priceNumberText = "el precio debe ser un número"
	priceRangeText  = "el precio no puede ser negativo"
)

// coercePrice turns the form's price string into a nullable number.
// An empty string means "no price" and normalizes to null.
func coercePrice(s string) (null.Float64, error) {
	s = core.CleanString(s)
	if s == "" {
		return null.Float64{}, nil
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.Float64{}, core.NewValidationError(
			errors.New(priceNumberText), core.FieldError{Field: "price", Error: priceNumberText})
	}
	if price < 0 {
		return null.Float64{}, core.NewValidationError(
			errors.New(priceRangeText), core.FieldError{Field: "price", Error: priceRangeText})
	}
	return null.Float64From(price), nil
}
