// Package validator registers custom validation functions with Gin's
// binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SohamBhandary/MoneyFrontend/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ledger_type", validateLedgerType)
		_ = v.RegisterValidation("iso_date", validateISODate)
	}
}

func validateLedgerType(fl validator.FieldLevel) bool {
	return models.LedgerType(fl.Field().String()).Valid()
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}
