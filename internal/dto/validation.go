package dto

import (
	"sync"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding rules used by the request DTOs
// to gin's validator engine. It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("currency", validateCurrency)
	})
	return err
}

// validateCurrency accepts only codes from the currency catalog.
func validateCurrency(fl validator.FieldLevel) bool {
	return domain.Currency(fl.Field().String()).IsValid()
}
