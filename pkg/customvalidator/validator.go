package customvalidator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations wires all GearGuard-specific rules into the
// shared validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("strong_password", isStrongPassword); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_stage", isRequestStage); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_priority", isRequestPriority); err != nil {
		return err
	}
	if err := v.RegisterValidation("maintenance_type", isMaintenanceType); err != nil {
		return err
	}
	return nil
}

var (
	upperRe  = regexp.MustCompile(`[A-Z]`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	symbolRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
)

// A password needs at least 8 characters, one uppercase letter, one lowercase
// letter and one symbol from the fixed set.
func isStrongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 {
		return false
	}
	return upperRe.MatchString(s) && lowerRe.MatchString(s) && symbolRe.MatchString(s)
}

func isOneOfFold(value string, allowed ...string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}

func isRequestStage(fl validator.FieldLevel) bool {
	return isOneOfFold(fl.Field().String(), "NEW", "IN_PROGRESS", "REPAIRED", "SCRAP")
}

func isRequestPriority(fl validator.FieldLevel) bool {
	return isOneOfFold(fl.Field().String(), "LOW", "MEDIUM", "HIGH", "URGENT")
}

func isMaintenanceType(fl validator.FieldLevel) bool {
	return isOneOfFold(fl.Field().String(), "CORRECTIVE", "PREVENTIVE")
}
