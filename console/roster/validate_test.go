package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staffdesk.com/staffdesk/staffdesk/v1/common"
)

func TestValidateEmployeeDraft(t *testing.T) {
	valid := common.EmployeeUpdate{
		Phone:   "071-234 5678",
		Email:   "amara@staffdesk.local",
		Address: "12 Lake Rd",
	}

	tests := []struct {
		name   string
		mutate func(*common.EmployeeUpdate)
		field  string
		msg    string
	}{
		{
			name:   "Valid draft",
			mutate: func(d *common.EmployeeUpdate) {},
		},
		{
			name:   "Missing email",
			mutate: func(d *common.EmployeeUpdate) { d.Email = "  " },
			field:  "email",
			msg:    "Email is required",
		},
		{
			name:   "Malformed email",
			mutate: func(d *common.EmployeeUpdate) { d.Email = "not-an-email" },
			field:  "email",
			msg:    "Please enter a valid email address",
		},
		{
			name:   "Missing phone",
			mutate: func(d *common.EmployeeUpdate) { d.Phone = "" },
			field:  "phone",
			msg:    "Phone number is required",
		},
		{
			name:   "Short phone",
			mutate: func(d *common.EmployeeUpdate) { d.Phone = "07112" },
			field:  "phone",
			msg:    "Please enter a valid 10-digit phone number",
		},
		{
			name:   "Phone with too many digits",
			mutate: func(d *common.EmployeeUpdate) { d.Phone = "071234567890" },
			field:  "phone",
			msg:    "Please enter a valid 10-digit phone number",
		},
		{
			name:   "Missing address",
			mutate: func(d *common.EmployeeUpdate) { d.Address = " " },
			field:  "address",
			msg:    "Address is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)
			errs := validateEmployeeDraft(draft)
			if tt.field == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestValidatePasswordDraft(t *testing.T) {
	tests := []struct {
		name  string
		draft common.PasswordUpdate
		field string
		msg   string
	}{
		{
			name:  "Valid",
			draft: common.PasswordUpdate{CurrentPassword: "oldsecret", NewPassword: "newsecret1", ConfirmPassword: "newsecret1"},
		},
		{
			name:  "Missing current",
			draft: common.PasswordUpdate{NewPassword: "newsecret1", ConfirmPassword: "newsecret1"},
			field: "currentPassword",
			msg:   "Current password is required",
		},
		{
			name:  "Missing new",
			draft: common.PasswordUpdate{CurrentPassword: "oldsecret"},
			field: "newPassword",
			msg:   "New password is required",
		},
		{
			name:  "New too short",
			draft: common.PasswordUpdate{CurrentPassword: "oldsecret", NewPassword: "short", ConfirmPassword: "short"},
			field: "newPassword",
			msg:   "New password must be at least 8 characters",
		},
		{
			name:  "Same as current outranks length",
			draft: common.PasswordUpdate{CurrentPassword: "short", NewPassword: "short", ConfirmPassword: "short"},
			field: "newPassword",
			msg:   "New password must be different from current password",
		},
		{
			name:  "Confirmation mismatch",
			draft: common.PasswordUpdate{CurrentPassword: "oldsecret", NewPassword: "newsecret1", ConfirmPassword: "newsecret2"},
			field: "confirmPassword",
			msg:   "Passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validatePasswordDraft(tt.draft)
			if tt.field == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestValidateDepartmentDraft(t *testing.T) {
	assert.Empty(t, validateDepartmentDraft(common.DepartmentUpdate{Salary: 50000, OverTimeRate: 1.5}))

	errs := validateDepartmentDraft(common.DepartmentUpdate{Salary: 0, OverTimeRate: -1})
	assert.Equal(t, "Salary must be greater than 0", errs["salary"])
	assert.Equal(t, "Overtime rate cannot be negative", errs["overTimeRate"])

	errs = validateDepartmentDraft(common.DepartmentUpdate{Salary: maxSalary + 1, OverTimeRate: maxOverTimeRate + 1})
	assert.Equal(t, "Salary exceeds the allowed maximum", errs["salary"])
	assert.Equal(t, "Overtime rate exceeds the allowed maximum", errs["overTimeRate"])

	errs = validateDepartmentFields("  ", 50000, 1.5)
	assert.Equal(t, "Department name is required", errs["name"])
}

func TestValidateEmployeeCreate(t *testing.T) {
	valid := common.EmployeeCreate{
		FirstName:    "Farah",
		LastName:     "Nazeer",
		NIC:          "950231234V",
		Gender:       "Female",
		Address:      "2 Canal Rd",
		Phone:        "0781234567",
		Email:        "farah@staffdesk.local",
		Password:     "secret99",
		Birthday:     "1995-01-23",
		DepartmentID: "HUMA",
		Role:         common.RoleUser,
	}
	assert.Empty(t, validateEmployeeCreate(&valid))

	t.Run("New NIC format", func(t *testing.T) {
		dto := valid
		dto.NIC = "199502301234"
		assert.Empty(t, validateEmployeeCreate(&dto))
	})

	t.Run("Bad NIC", func(t *testing.T) {
		dto := valid
		dto.NIC = "12345"
		assert.Contains(t, validateEmployeeCreate(&dto), "NIC must be 9 digits followed by V/X or 12 digits")
	})

	t.Run("Short password", func(t *testing.T) {
		dto := valid
		dto.Password = "abc"
		assert.Contains(t, validateEmployeeCreate(&dto), "Password must be at least 6 characters")
	})

	t.Run("Empty form reports every field", func(t *testing.T) {
		errs := validateEmployeeCreate(&common.EmployeeCreate{})
		assert.Len(t, errs, 11)
	})
}
