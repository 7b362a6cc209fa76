// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	monthRegex    = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// supportedCurrencies are the display currencies users can select.
var supportedCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true,
	"PKR": true, "INR": true, "AED": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("month_format", validateMonthFormat)
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("category_type", validateCategoryType)
		_ = v.RegisterValidation("payment_method", validatePaymentMethod)
		_ = v.RegisterValidation("currency", validateCurrency)
	}
}

func validateMonthFormat(fl validator.FieldLevel) bool {
	return monthRegex.MatchString(fl.Field().String())
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateCategoryType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "cash", "card", "bank", "other":
		return true
	}
	return false
}

func validateCurrency(fl validator.FieldLevel) bool {
	return supportedCurrencies[fl.Field().String()]
}
