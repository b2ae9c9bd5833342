package handlers

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	"github.com/danilosilva441/projeto-faturamento/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// registerValidators installs the custom binding tags on gin's validator.
// A failed registration is a programming error and panics.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("handlers: gin binding engine is not a *validator.Validate")
		}
		if err := registerCustomValidators(v); err != nil {
			panic(fmt.Sprintf("handlers: registering validators: %v", err))
		}
	})
}

// registerCustomValidators adds the tags used by the request DTOs:
//
//	dateonly  string holding a YYYY-MM-DD calendar date
//	dgt0      decimal strictly greater than zero
//	dgte0     decimal greater than or equal to zero
//	dmoney    decimal with at most two places, below utils.MaxMoneyAmount
func registerCustomValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	validations := map[string]validator.Func{
		"dateonly": validateDateOnly,
		"dgt0": func(fl validator.FieldLevel) bool {
			d, ok := decimalField(fl)
			return ok && d.IsPositive()
		},
		"dgte0": func(fl validator.FieldLevel) bool {
			d, ok := decimalField(fl)
			return ok && !d.IsNegative()
		},
		"dmoney": func(fl validator.FieldLevel) bool {
			d, ok := decimalField(fl)
			return ok && utils.HasMoneyPrecision(d) && utils.InMoneyRange(d)
		},
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("tag %q: %w", tag, err)
		}
	}
	return nil
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}

func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		d, err := decimal.NewFromString(field.String())
		return d, err == nil
	case reflect.Struct:
		d, ok := field.Interface().(decimal.Decimal)
		return d, ok
	}
	return decimal.Zero, false
}
