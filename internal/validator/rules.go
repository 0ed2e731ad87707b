package validator

import (
	"log"

	"craftlink/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags. Registration
// failure is a startup-time configuration error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-availability", validateAvailability)
	mustRegister("is-report-reason", validateReportReason)
	mustRegister("is-sort-key", validateSortKey)
	mustRegister("is-user-role", validateUserRole)
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.Availability(value).Valid()
}

func validateReportReason(fl validator.FieldLevel) bool {
	return models.ReportReason(fl.Field().String()).Valid()
}

func validateSortKey(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "rating", "price_low", "price_high", "newest":
		return true
	}
	return false
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.UserRole(fl.Field().String()).Valid()
}
