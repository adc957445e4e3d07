package common

// Employee is the record shape served by the employee endpoints. Role and
// department arrive in more than one shape depending on which backend code
// path produced the response, so both go through tagged-union types.
type Employee struct {
	ID           string         `json:"id"`
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	NIC          string         `json:"nic,omitempty"`
	Gender       string         `json:"gender,omitempty"`
	Address      string         `json:"address"`
	Phone        string         `json:"phone"`
	Email        string         `json:"email"`
	Age          *int           `json:"age,omitempty"`
	BirthDate    *DateOnly      `json:"birthday,omitempty"`
	DepartmentID string         `json:"department_id,omitempty"`
	Department   *DepartmentRef `json:"department,omitempty"`
	Role         RoleRef        `json:"role,omitempty"`
}

// DepartmentKey returns the department id whichever way it arrived.
func (e *Employee) DepartmentKey() string {
	if e.DepartmentID != "" {
		return e.DepartmentID
	}
	if e.Department != nil {
		return e.Department.ID
	}
	return ""
}

// FullName is the display name used by attendance enrichment.
func (e *Employee) FullName() string {
	if e.FirstName == "" && e.LastName == "" {
		return ""
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type Department struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Salary       int64   `json:"salary"`
	OverTimeRate float64 `json:"overTimeRate"`
}

type Attendance struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employeeId"`
	DepartmentID string           `json:"departmentId"`
	Status       AttendanceStatus `json:"status"`
	Date         DateOnly         `json:"date"`

	// View annotations attached by enrichment, never sent on mutation.
	EmployeeName   string `json:"employeeName,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
}

// EmployeeUpdate carries the only fields editable from the roster modal.
type EmployeeUpdate struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type EmployeeCreate struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	NIC          string `json:"nic"`
	Gender       string `json:"gender"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Birthday     string `json:"birthday"` // yyyy-MM-dd
	DepartmentID string `json:"departmentId"`
	Role         string `json:"role"`
}

type DepartmentCreate struct {
	Name         string  `json:"name"`
	Salary       int64   `json:"salary"`
	OverTimeRate float64 `json:"overTimeRate"`
}

type DepartmentUpdate struct {
	Salary       int64   `json:"salary"`
	OverTimeRate float64 `json:"overTimeRate"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Email string `json:"email"`
}
