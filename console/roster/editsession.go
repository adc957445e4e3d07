package roster

import (
	"context"
	"errors"
	"time"

	v1 "staffdesk.com/staffdesk/staffdesk/v1"
	"staffdesk.com/staffdesk/staffdesk/v1/common"
	"staffdesk.com/staffdesk/utils"
)

type Tab int

const (
	TabPersonal Tab = iota
	TabPassword
)

// EmployeeEditSession is the modal-scoped edit state for one employee. It
// exists only while the modal is open; every exit path resets it completely
// so nothing leaks into the next session.
type EmployeeEditSession struct {
	Open       bool
	Tab        Tab
	EmployeeID string

	Draft    common.EmployeeUpdate
	Password common.PasswordUpdate

	FieldErrors    map[string]string
	PasswordErrors map[string]string
	SubmitError    string

	Saving            bool
	Succeeded         bool
	PasswordSucceeded bool
	closeAt           time.Time
}

func (c *Controller) EditSession() *EmployeeEditSession { return &c.edit }

// OpenEdit starts an edit session for the cached record with the given id,
// snapshotting its editable fields into the draft. The cache entry itself is
// untouched until the server confirms a mutation.
func (c *Controller) OpenEdit(id string) bool {
	target := utils.Find(c.cache, func(e *common.Employee) bool { return e.ID == id })
	if target == nil {
		return false
	}

	c.edit = EmployeeEditSession{
		Open:       true,
		Tab:        TabPersonal,
		EmployeeID: id,
		Draft: common.EmployeeUpdate{
			Phone:   target.Phone,
			Email:   target.Email,
			Address: target.Address,
		},
		FieldErrors:    make(map[string]string),
		PasswordErrors: make(map[string]string),
	}
	return true
}

// CloseEdit tears the session down on any exit path: cancel, success
// auto-close, or external dismissal.
func (c *Controller) CloseEdit() {
	c.edit = EmployeeEditSession{}
}

// SwitchTab clears the other tab's draft and errors so stale state from one
// tab can never surface on the other.
func (c *Controller) SwitchTab(tab Tab) {
	if !c.edit.Open || c.edit.Tab == tab {
		return
	}
	c.edit.Tab = tab
	c.edit.Succeeded = false
	c.edit.PasswordSucceeded = false
	c.edit.SubmitError = ""

	switch tab {
	case TabPersonal:
		c.edit.Password = common.PasswordUpdate{}
		c.edit.PasswordErrors = make(map[string]string)
	case TabPassword:
		// Re-snapshot the personal draft from the cache entry.
		if target := utils.Find(c.cache, func(e *common.Employee) bool { return e.ID == c.edit.EmployeeID }); target != nil {
			c.edit.Draft = common.EmployeeUpdate{Phone: target.Phone, Email: target.Email, Address: target.Address}
		}
		c.edit.FieldErrors = make(map[string]string)
		c.edit.Password = common.PasswordUpdate{}
		c.edit.PasswordErrors = make(map[string]string)
	}
}

// SetDraftField updates one personal field and clears its pending error, so
// the message disappears as soon as the operator starts typing.
func (c *Controller) SetDraftField(field, value string) {
	if !c.edit.Open {
		return
	}
	switch field {
	case "phone":
		c.edit.Draft.Phone = value
	case "email":
		c.edit.Draft.Email = value
	case "address":
		c.edit.Draft.Address = value
	default:
		return
	}
	delete(c.edit.FieldErrors, field)
}

// SetPasswordField updates one credential field and revalidates the whole
// sub-form, keeping the error map live while the operator types.
func (c *Controller) SetPasswordField(field, value string) {
	if !c.edit.Open {
		return
	}
	switch field {
	case "currentPassword":
		c.edit.Password.CurrentPassword = value
	case "newPassword":
		c.edit.Password.NewPassword = value
	case "confirmPassword":
		c.edit.Password.ConfirmPassword = value
	default:
		return
	}
	c.edit.PasswordErrors = validatePasswordDraft(c.edit.Password)
}

// SubmitEdit validates the personal draft and, if clean, issues the update.
// On success only the submitted fields are patched into the cache entry and
// the session arms its auto-close. On failure the draft survives so the
// operator can retry without re-entering anything.
func (c *Controller) SubmitEdit(ctx context.Context) error {
	if !c.edit.Open || c.edit.Saving {
		return nil
	}

	if errs := validateEmployeeDraft(c.edit.Draft); len(errs) > 0 {
		c.edit.FieldErrors = errs
		return ErrValidationFailed
	}

	c.edit.Saving = true
	err := c.client.Employees.Update(ctx, c.edit.EmployeeID, &c.edit.Draft)
	c.edit.Saving = false
	if err != nil {
		c.edit.SubmitError = updateMessage(err)
		return err
	}

	if target := utils.Find(c.cache, func(e *common.Employee) bool { return e.ID == c.edit.EmployeeID }); target != nil {
		target.Phone = c.edit.Draft.Phone
		target.Email = c.edit.Draft.Email
		target.Address = c.edit.Draft.Address
	}

	c.edit.SubmitError = ""
	c.edit.Succeeded = true
	c.edit.closeAt = c.now().Add(c.autoCloseDelay)
	return nil
}

// SubmitPassword runs the credential sub-session. Validation failures never
// reach the network.
func (c *Controller) SubmitPassword(ctx context.Context) error {
	if !c.edit.Open || c.edit.Saving {
		return nil
	}

	if errs := validatePasswordDraft(c.edit.Password); len(errs) > 0 {
		c.edit.PasswordErrors = errs
		return ErrValidationFailed
	}

	c.edit.Saving = true
	err := c.client.Employees.ChangePassword(ctx, c.edit.EmployeeID, &c.edit.Password)
	c.edit.Saving = false
	if err != nil {
		c.edit.PasswordErrors = map[string]string{"currentPassword": passwordMessage(err)}
		return err
	}

	c.edit.Password = common.PasswordUpdate{}
	c.edit.PasswordErrors = make(map[string]string)
	c.edit.PasswordSucceeded = true
	c.edit.closeAt = c.now().Add(c.autoCloseDelay)
	return nil
}

// Tick drives the success auto-close. The UI loop calls it on its timer; a
// session that displayed its success message long enough closes itself.
func (c *Controller) Tick(now time.Time) {
	if c.edit.Open && (c.edit.Succeeded || c.edit.PasswordSucceeded) && !c.edit.closeAt.IsZero() && !now.Before(c.edit.closeAt) {
		c.CloseEdit()
	}
	if c.deptEdit.Open && c.deptEdit.Succeeded && !c.deptEdit.closeAt.IsZero() && !now.Before(c.deptEdit.closeAt) {
		c.CloseDepartmentEdit()
	}
}

// DepartmentEditSession is the simpler, tabless sibling used for department
// salary figures.
type DepartmentEditSession struct {
	Open         bool
	DepartmentID string

	Draft common.DepartmentUpdate

	FieldErrors map[string]string
	SubmitError string

	Saving    bool
	Succeeded bool
	closeAt   time.Time
}

func (c *Controller) DepartmentEditSession() *DepartmentEditSession { return &c.deptEdit }

func (c *Controller) OpenDepartmentEdit(id string) bool {
	target := utils.Find(c.departments, func(d *common.Department) bool { return d.ID == id })
	if target == nil {
		return false
	}
	c.deptEdit = DepartmentEditSession{
		Open:         true,
		DepartmentID: id,
		Draft: common.DepartmentUpdate{
			Salary:       target.Salary,
			OverTimeRate: target.OverTimeRate,
		},
		FieldErrors: make(map[string]string),
	}
	return true
}

func (c *Controller) CloseDepartmentEdit() {
	c.deptEdit = DepartmentEditSession{}
}

func (c *Controller) SetDepartmentDraft(salary int64, overTimeRate float64) {
	if !c.deptEdit.Open {
		return
	}
	c.deptEdit.Draft.Salary = salary
	c.deptEdit.Draft.OverTimeRate = overTimeRate
	c.deptEdit.FieldErrors = make(map[string]string)
}

func (c *Controller) SubmitDepartmentEdit(ctx context.Context) error {
	if !c.deptEdit.Open || c.deptEdit.Saving {
		return nil
	}

	if errs := validateDepartmentDraft(c.deptEdit.Draft); len(errs) > 0 {
		c.deptEdit.FieldErrors = errs
		return ErrValidationFailed
	}

	c.deptEdit.Saving = true
	err := c.client.Departments.Update(ctx, c.deptEdit.DepartmentID, &c.deptEdit.Draft)
	c.deptEdit.Saving = false
	if err != nil {
		c.deptEdit.SubmitError = deptUpdateMessage(err)
		return err
	}

	if target := utils.Find(c.departments, func(d *common.Department) bool { return d.ID == c.deptEdit.DepartmentID }); target != nil {
		target.Salary = c.deptEdit.Draft.Salary
		target.OverTimeRate = c.deptEdit.Draft.OverTimeRate
	}

	c.deptEdit.SubmitError = ""
	c.deptEdit.Succeeded = true
	c.deptEdit.closeAt = c.now().Add(c.autoCloseDelay)
	return nil
}

func deptUpdateMessage(err error) string {
	switch {
	case errors.Is(err, v1.ErrUnauthenticated):
		return msgLoginRequired
	case errors.Is(err, v1.ErrNotFound):
		return "Department not found."
	default:
		return msgDeptUpdateFailed
	}
}
