package validation

import (
	"reflect"
	"regexp"
	"strings"

	"finsight/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("period", validatePeriod)
	_ = v.RegisterValidation("take_range", validateTakeRange)
	_ = v.RegisterValidation("page_range", validatePageRange)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("transaction_category", validateTransactionCategory)
	_ = v.RegisterValidation("transaction_intent", validateTransactionIntent)
	_ = v.RegisterValidation("transaction_emotion", validateTransactionEmotion)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

var periodPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Custom validation functions

// validatePeriod validates a YYYY-MM period label. An empty value is
// allowed; it resolves to the current month.
func validatePeriod(fl validator.FieldLevel) bool {
	period := fl.Field().String()
	if period == "" {
		return true
	}
	return periodPattern.MatchString(period)
}

// validateTakeRange validates a page-size parameter (1-50)
func validateTakeRange(fl validator.FieldLevel) bool {
	take := fl.Field().Int()
	return take >= 1 && take <= 50
}

// validatePageRange validates a page number (1-1000)
func validatePageRange(fl validator.FieldLevel) bool {
	page := fl.Field().Int()
	return page >= 1 && page <= 1000
}

// validateTransactionType validates that transaction type is INCOME or EXPENSE
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(models.TransactionType(fl.Field().String()))
}

// validateTransactionCategory validates against the known category set
func validateTransactionCategory(fl validator.FieldLevel) bool {
	return models.IsValidTransactionCategory(models.TransactionCategory(fl.Field().String()))
}

// validateTransactionIntent validates against the known intent set
func validateTransactionIntent(fl validator.FieldLevel) bool {
	return models.IsValidTransactionIntent(models.TransactionIntent(fl.Field().String()))
}

// validateTransactionEmotion validates against the known emotion set
func validateTransactionEmotion(fl validator.FieldLevel) bool {
	return models.IsValidTransactionEmotion(models.TransactionEmotion(fl.Field().String()))
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}
