package roster

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"staffdesk.com/staffdesk/staffdesk/v1/common"
)

// Sanity ceilings for department figures. Anything above these is a typo, not
// a payroll decision.
const (
	maxSalary       = 10_000_000
	maxOverTimeRate = 1_000
)

var (
	nonDigits = regexp.MustCompile(`\D`)
	nicShape  = regexp.MustCompile(`^([0-9]{9}[vVxX]|[0-9]{12})$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// A phone is valid when it reduces to exactly ten digits once punctuation
	// and spacing are stripped.
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		digits := nonDigits.ReplaceAllString(fl.Field().String(), "")
		return len(digits) == 10
	})
	return v
}

type employeeDraft struct {
	Email   string `validate:"required,email"`
	Phone   string `validate:"required,phone10"`
	Address string `validate:"required"`
}

// validateEmployeeDraft returns field-keyed messages; an empty map means the
// draft may be submitted.
func validateEmployeeDraft(d common.EmployeeUpdate) map[string]string {
	errs := make(map[string]string)
	err := validate.Struct(employeeDraft{
		Email:   strings.TrimSpace(d.Email),
		Phone:   strings.TrimSpace(d.Phone),
		Address: strings.TrimSpace(d.Address),
	})
	if err == nil {
		return errs
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		errs["email"] = err.Error()
		return errs
	}
	for _, fe := range ve {
		switch fe.StructField() {
		case "Email":
			if fe.Tag() == "required" {
				errs["email"] = "Email is required"
			} else {
				errs["email"] = "Please enter a valid email address"
			}
		case "Phone":
			if fe.Tag() == "required" {
				errs["phone"] = "Phone number is required"
			} else {
				errs["phone"] = "Please enter a valid 10-digit phone number"
			}
		case "Address":
			errs["address"] = "Address is required"
		}
	}
	return errs
}

// Tag order matters on NewPassword: "different from current" outranks the
// length message when both apply.
type passwordDraft struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,nefield=CurrentPassword,min=8"`
	ConfirmPassword string `validate:"eqfield=NewPassword"`
}

func validatePasswordDraft(d common.PasswordUpdate) map[string]string {
	errs := make(map[string]string)
	err := validate.Struct(passwordDraft(d))
	if err == nil {
		return errs
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		errs["currentPassword"] = err.Error()
		return errs
	}
	for _, fe := range ve {
		switch fe.StructField() {
		case "CurrentPassword":
			errs["currentPassword"] = "Current password is required"
		case "NewPassword":
			switch fe.Tag() {
			case "required":
				errs["newPassword"] = "New password is required"
			case "nefield":
				errs["newPassword"] = "New password must be different from current password"
			default:
				errs["newPassword"] = "New password must be at least 8 characters"
			}
		case "ConfirmPassword":
			errs["confirmPassword"] = "Passwords do not match"
		}
	}
	return errs
}

func validateDepartmentDraft(d common.DepartmentUpdate) map[string]string {
	errs := make(map[string]string)
	if d.Salary <= 0 {
		errs["salary"] = "Salary must be greater than 0"
	} else if d.Salary > maxSalary {
		errs["salary"] = "Salary exceeds the allowed maximum"
	}
	if d.OverTimeRate < 0 {
		errs["overTimeRate"] = "Overtime rate cannot be negative"
	} else if d.OverTimeRate > maxOverTimeRate {
		errs["overTimeRate"] = "Overtime rate exceeds the allowed maximum"
	}
	return errs
}

func validateDepartmentFields(name string, salary int64, rate float64) map[string]string {
	errs := validateDepartmentDraft(common.DepartmentUpdate{Salary: salary, OverTimeRate: rate})
	if strings.TrimSpace(name) == "" {
		errs["name"] = "Department name is required"
	}
	return errs
}

// validateEmployeeCreate mirrors the add-employee form checks: a flat list of
// messages rather than a field map, matching how that screen reports them.
func validateEmployeeCreate(dto *common.EmployeeCreate) []string {
	var errs []string

	if strings.TrimSpace(dto.FirstName) == "" {
		errs = append(errs, "First name is required")
	}
	if strings.TrimSpace(dto.LastName) == "" {
		errs = append(errs, "Last name is required")
	}
	if strings.TrimSpace(dto.NIC) == "" {
		errs = append(errs, "NIC is required")
	} else if !nicShape.MatchString(strings.TrimSpace(dto.NIC)) {
		errs = append(errs, "NIC must be 9 digits followed by V/X or 12 digits")
	}
	if dto.Gender == "" {
		errs = append(errs, "Gender is required")
	}
	if strings.TrimSpace(dto.Address) == "" {
		errs = append(errs, "Address is required")
	}
	if strings.TrimSpace(dto.Phone) == "" {
		errs = append(errs, "Phone number is required")
	} else if len(nonDigits.ReplaceAllString(dto.Phone, "")) != 10 {
		errs = append(errs, "Please enter a valid 10-digit phone number")
	}
	if strings.TrimSpace(dto.Email) == "" {
		errs = append(errs, "Email is required")
	} else if validate.Var(strings.TrimSpace(dto.Email), "email") != nil {
		errs = append(errs, "Please enter a valid email address")
	}
	if dto.Password == "" {
		errs = append(errs, "Password is required")
	} else if len(dto.Password) < 6 {
		errs = append(errs, "Password must be at least 6 characters")
	}
	if dto.Birthday == "" {
		errs = append(errs, "Birthday is required")
	}
	if dto.DepartmentID == "" {
		errs = append(errs, "Department is required")
	}
	if dto.Role == "" {
		errs = append(errs, "Role is required")
	}
	return errs
}
