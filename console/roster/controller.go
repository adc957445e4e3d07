// Package roster is the stateful core of the personnel console: it owns the
// record cache, the retrieval mode, the derived (filtered, paginated) view,
// modal edit sessions, and the attendance enrichment pipeline. Methods are
// meant to be driven from a single UI goroutine; in-flight requests are
// guarded by sequence numbers rather than locks, mirroring how the console
// disables its controls while a request is outstanding.
package roster

import (
	"context"
	"errors"
	"time"

	"staffdesk.com/staffdesk/config"
	"staffdesk.com/staffdesk/session"
	v1 "staffdesk.com/staffdesk/staffdesk/v1"
	"staffdesk.com/staffdesk/staffdesk/v1/common"
	"staffdesk.com/staffdesk/utils"
)

// ErrValidationFailed marks client-side field failures; no request was sent.
var ErrValidationFailed = errors.New("validation failed")

// ErrSuperseded marks a result that arrived after a newer request was
// initiated; the caller must drop it rather than apply it.
var ErrSuperseded = errors.New("superseded by a newer request")

type Mode int

const (
	ModeNone Mode = iota
	ModeAll
	ModeByID
	ModeByDepartment
)

type Controller struct {
	client  *v1.Client
	session *session.Session

	pageSize       int
	autoCloseDelay time.Duration
	now            func() time.Time

	// Record cache: the most recently fetched employee list. Replaced
	// wholesale on every fetch, patched element-wise on edit/delete.
	cache   []common.Employee
	mode    Mode
	modeKey string

	departments []common.Department

	search     string
	roleFilter string
	page       int

	fetchSeq  uint64
	enrichSeq uint64

	fetchErr  string
	deleteErr string

	edit     EmployeeEditSession
	deptEdit DepartmentEditSession

	pendingDelete string
}

func NewController(client *v1.Client, sess *session.Session, cfg *config.Config) *Controller {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Controller{
		client:         client,
		session:        sess,
		pageSize:       cfg.PageSize,
		autoCloseDelay: cfg.AutoCloseDelay.Std(),
		now:            time.Now,
		page:           1,
	}
}

func (c *Controller) Mode() Mode                 { return c.mode }
func (c *Controller) ModeKey() string            { return c.modeKey }
func (c *Controller) FetchError() string         { return c.fetchErr }
func (c *Controller) DeleteError() string        { return c.deleteErr }
func (c *Controller) Records() []common.Employee { return c.cache }

func (c *Controller) Departments() []common.Department { return c.departments }

// Login authenticates and primes the session.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	result, err := c.client.Auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	c.session.Set(result.Token, result.Role, result.Email)
	return nil
}

// Logout clears the session and every piece of view state.
func (c *Controller) Logout() {
	c.session.Clear()
	c.cache = nil
	c.mode = ModeNone
	c.modeKey = ""
	c.page = 1
	c.fetchErr = ""
	c.deleteErr = ""
	c.pendingDelete = ""
	c.CloseEdit()
	c.CloseDepartmentEdit()
}

// beginFetch bumps the fetch sequence. Only the result carrying the newest
// sequence may touch the cache, so a slow earlier request can never overwrite
// a newer one.
func (c *Controller) beginFetch() uint64 {
	c.fetchSeq++
	return c.fetchSeq
}

func (c *Controller) applyFetch(seq uint64, records []common.Employee, mode Mode, key string) bool {
	if seq != c.fetchSeq {
		return false
	}
	c.cache = records
	c.mode = mode
	c.modeKey = key
	c.page = 1 // search and role filters persist across mode switches
	c.fetchErr = ""
	return true
}

func (c *Controller) FetchAll(ctx context.Context) error {
	if !c.session.Authenticated() {
		c.fetchErr = msgLoginRequired
		return v1.ErrUnauthenticated
	}

	seq := c.beginFetch()
	records, err := c.client.Employees.List(ctx)
	if err != nil {
		if seq == c.fetchSeq {
			c.fetchErr = fetchMessage(err)
		}
		return err
	}
	if !c.applyFetch(seq, records, ModeAll, "") {
		return ErrSuperseded
	}
	return nil
}

func (c *Controller) FetchByID(ctx context.Context, id string) error {
	if id == "" {
		c.fetchErr = msgEnterID
		return v1.ErrInvalidArgument
	}
	if !c.session.Authenticated() {
		c.fetchErr = msgLoginRequired
		return v1.ErrUnauthenticated
	}

	seq := c.beginFetch()
	emp, err := c.client.Employees.Get(ctx, id)
	if err != nil {
		// An unknown id is an empty result for this mode, not a hard failure.
		if errors.Is(err, v1.ErrNotFound) {
			if c.applyFetch(seq, []common.Employee{}, ModeByID, id) {
				c.fetchErr = msgIDNotFound
			}
			return nil
		}
		if seq == c.fetchSeq {
			c.fetchErr = fetchMessage(err)
		}
		return err
	}
	if !c.applyFetch(seq, []common.Employee{*emp}, ModeByID, id) {
		return ErrSuperseded
	}
	return nil
}

func (c *Controller) FetchByDepartment(ctx context.Context, deptID string) error {
	if deptID == "" {
		c.fetchErr = msgSelectDept
		return v1.ErrInvalidArgument
	}
	if !c.session.Authenticated() {
		c.fetchErr = msgLoginRequired
		return v1.ErrUnauthenticated
	}

	seq := c.beginFetch()
	records, err := c.client.Employees.ListByDepartment(ctx, deptID)
	if err != nil {
		if errors.Is(err, v1.ErrNotFound) {
			if c.applyFetch(seq, []common.Employee{}, ModeByDepartment, deptID) {
				c.fetchErr = msgDeptNotFound
			}
			return nil
		}
		if seq == c.fetchSeq {
			c.fetchErr = fetchMessage(err)
		}
		return err
	}
	if !c.applyFetch(seq, records, ModeByDepartment, deptID) {
		return ErrSuperseded
	}
	return nil
}

// LoadDepartments refreshes the department lookup used by enrichment, the
// by-department selector, and department display names. Best effort: the
// previous list survives a failure.
func (c *Controller) LoadDepartments(ctx context.Context) error {
	departments, err := c.client.Departments.GetAll(ctx)
	if err != nil {
		return err
	}
	c.departments = departments
	return nil
}

func (c *Controller) departmentName(id string) string {
	if d := utils.Find(c.departments, func(d *common.Department) bool { return d.ID == id }); d != nil {
		return d.Name
	}
	return id
}

// RequestDelete stages a deletion pending confirmation.
func (c *Controller) RequestDelete(id string) {
	c.pendingDelete = id
}

func (c *Controller) CancelDelete() {
	c.pendingDelete = ""
}

func (c *Controller) PendingDelete() string { return c.pendingDelete }

// ConfirmDelete issues the staged deletion. On success the entry is removed
// from the cache in place; nothing is refetched. On any failure the cache is
// untouched.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	id := c.pendingDelete
	if id == "" {
		return nil
	}
	if !c.session.Authenticated() {
		c.deleteErr = msgLoginRequired
		return v1.ErrUnauthenticated
	}

	if err := c.client.Employees.Delete(ctx, id); err != nil {
		c.deleteErr = deleteMessage(err)
		return err
	}

	c.cache = utils.Filter(c.cache, func(e common.Employee) bool { return e.ID != id })
	c.pendingDelete = ""
	c.deleteErr = ""
	return nil
}

// CreateEmployee submits a new record. The roster is not refetched; callers
// re-run a retrieval mode when they want the new record listed.
func (c *Controller) CreateEmployee(ctx context.Context, dto *common.EmployeeCreate) (*common.Employee, error) {
	if errs := validateEmployeeCreate(dto); len(errs) > 0 {
		return nil, ErrValidationFailed
	}
	return c.client.Employees.Create(ctx, dto)
}

// CreateDepartment mirrors the create-department screen's client-side checks.
func (c *Controller) CreateDepartment(ctx context.Context, dto *common.DepartmentCreate) (*common.Department, error) {
	if errs := validateDepartmentFields(dto.Name, dto.Salary, dto.OverTimeRate); len(errs) > 0 {
		return nil, ErrValidationFailed
	}
	created, err := c.client.Departments.Create(ctx, dto)
	if err != nil {
		return nil, err
	}
	if created != nil {
		c.departments = append(c.departments, *created)
	}
	return created, nil
}
