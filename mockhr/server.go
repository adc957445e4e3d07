package mockhr

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staffdesk.com/staffdesk/security"
	"staffdesk.com/staffdesk/staffdesk/v1/common"
	"staffdesk.com/staffdesk/utils"
)

const tokenTTL = time.Hour

// Server is an in-memory stand-in for the HR backend. It reproduces the real
// API's quirks on purpose: mixed response envelopes, 204 for empty attendance
// lists, 404 for an empty department roster, and a polymorphic role field.
type Server struct {
	secret []byte

	mu          sync.Mutex
	employees   map[string]*employeeRecord
	order       []string
	departments map[string]*common.Department
	deptOrder   []string
	attendance  []common.Attendance
}

type employeeRecord struct {
	common.Employee
	Password string
}

func New(secret []byte) *Server {
	return &Server{
		secret:      secret,
		employees:   make(map[string]*employeeRecord),
		departments: make(map[string]*common.Department),
	}
}

// Router wires the same route table the staffdesk client targets.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	api.POST("/auth/login", s.login)

	authed := api.Group("", Authentication(s.secret))

	authed.GET("/employee", s.listEmployees)
	authed.GET("/employee/:id", s.getEmployee)
	authed.GET("/employee/department/:deptId", s.listEmployeesByDepartment)
	authed.POST("/employee", s.createEmployee)
	authed.PUT("/employee/:id", s.updateEmployee)
	authed.PUT("/employee/change-password/:id", s.changePassword)
	authed.DELETE("/employee/:id", s.deleteEmployee)

	authed.GET("/department/getAll", s.listDepartments)
	authed.POST("/department/create", s.createDepartment)
	authed.PUT("/department/update/:id", s.updateDepartment)

	authed.GET("/attendance/date/:date/department/:deptId", s.attendanceByDateAndDepartment)
	authed.GET("/attendance/date/:date/status/:status", s.attendanceByDateAndStatus)
	authed.GET("/attendance/employee/:id/:dayQuery", s.attendanceByEmployee)

	return router
}

func (s *Server) login(c *gin.Context) {
	var req common.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
		return
	}

	s.mu.Lock()
	rec := s.findByEmail(req.Email)
	s.mu.Unlock()

	if rec == nil || rec.Password != req.Password {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("Invalid email or password"))
		return
	}

	token, err := security.CreateSessionToken(rec.Email, rec.Role.String(), s.secret, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse("failed to sign token"))
		return
	}

	c.JSON(http.StatusOK, common.LoginResult{
		Token: token,
		Role:  rec.Role.String(),
		Email: rec.Email,
	})
}

// listEmployees answers with the {data: [...]} envelope; the by-department
// variant answers with a bare array. Both shapes exist in the real backend.
func (s *Server) listEmployees(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]common.Employee, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.employees[id].Employee)
	}
	c.JSON(http.StatusOK, NewSuccessResponse(out))
}

func (s *Server) getEmployee(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.employees[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, NewErrorResponse("Employee not found"))
		return
	}
	c.JSON(http.StatusOK, rec.Employee)
}

func (s *Server) listEmployeesByDepartment(c *gin.Context) {
	deptID := c.Param("deptId")

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []common.Employee
	for _, id := range s.order {
		rec := s.employees[id]
		if rec.DepartmentKey() == deptID {
			out = append(out, rec.Employee)
		}
	}
	if len(out) == 0 {
		c.JSON(http.StatusNotFound, NewErrorResponse("No employees found in department "+deptID))
		return
	}
	c.JSON(http.StatusOK, out)
}

type employeeCreateRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	NIC          string `json:"nic" binding:"required"`
	Gender       string `json:"gender" binding:"required,oneof=Male Female"`
	Address      string `json:"address" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Birthday     string `json:"birthday" binding:"required"`
	DepartmentID string `json:"departmentId" binding:"required"`
	Role         string `json:"role" binding:"required,oneof=USER HR ADMIN"`
}

func (s *Server) createEmployee(c *gin.Context) {
	var req employeeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
		return
	}

	birthday, err := time.Parse("2006-01-02", req.Birthday)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse("Field 'birthday' must be a yyyy-MM-dd date"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.departments[req.DepartmentID]; !ok {
		c.JSON(http.StatusBadRequest, NewErrorResponse("Department not found: "+req.DepartmentID))
		return
	}
	if s.findByEmail(req.Email) != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse("Email already registered"))
		return
	}

	age := yearsSince(birthday, time.Now())
	birth := common.NewDateOnly(birthday)
	rec := &employeeRecord{
		Employee: common.Employee{
			ID:           uuid.NewString(),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			NIC:          req.NIC,
			Gender:       req.Gender,
			Address:      req.Address,
			Phone:        req.Phone,
			Email:        req.Email,
			Age:          &age,
			BirthDate:    &birth,
			DepartmentID: req.DepartmentID,
			Role:         common.RoleRef{Name: req.Role},
		},
		Password: req.Password,
	}
	s.employees[rec.ID] = rec
	s.order = append(s.order, rec.ID)

	c.JSON(http.StatusCreated, rec.Employee)
}

func (s *Server) updateEmployee(c *gin.Context) {
	var req common.EmployeeUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.employees[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, NewErrorResponse("Employee not found"))
		return
	}
	rec.Phone = req.Phone
	rec.Email = req.Email
	rec.Address = req.Address

	c.JSON(http.StatusOK, rec.Employee)
}

func (s *Server) changePassword(c *gin.Context) {
	var req common.PasswordUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.employees[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, NewErrorResponse("Employee not found"))
		return
	}
	if rec.Password != req.CurrentPassword {
		c.JSON(http.StatusBadRequest, NewErrorResponse("Current password is incorrect"))
		return
	}
	rec.Password = req.NewPassword

	c.JSON(http.StatusOK, NewSuccessResponse("Password updated"))
}

func (s *Server) deleteEmployee(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		c.JSON(http.StatusNotFound, NewErrorResponse("Employee not found"))
		return
	}
	delete(s.employees, id)
	s.order = utils.Filter(s.order, func(v string) bool { return v != id })

	c.JSON(http.StatusOK, NewSuccessResponse("Employee deleted"))
}

func (s *Server) listDepartments(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]common.Department, 0, len(s.deptOrder))
	for _, id := range s.deptOrder {
		out = append(out, *s.departments[id])
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createDepartment(c *gin.Context) {
	var req struct {
		Name         string  `json:"name" binding:"required"`
		Salary       int64   `json:"salary" binding:"required,min=1"`
		OverTimeRate float64 `json:"overTimeRate" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.departments {
		if strings.EqualFold(d.Name, req.Name) {
			c.JSON(http.StatusBadRequest, NewErrorResponse("Department already exists: "+req.Name))
			return
		}
	}

	dept := &common.Department{
		ID:           departmentID(req.Name),
		Name:         req.Name,
		Salary:       req.Salary,
		OverTimeRate: req.OverTimeRate,
	}
	s.departments[dept.ID] = dept
	s.deptOrder = append(s.deptOrder, dept.ID)

	c.JSON(http.StatusCreated, dept)
}

func (s *Server) updateDepartment(c *gin.Context) {
	var req common.DepartmentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dept, ok := s.departments[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, NewErrorResponse("Department not found"))
		return
	}
	dept.Salary = req.Salary
	dept.OverTimeRate = req.OverTimeRate

	c.JSON(http.StatusOK, dept)
}

func (s *Server) attendanceByDateAndDepartment(c *gin.Context) {
	date := c.Param("date")
	deptID := c.Param("deptId")

	s.mu.Lock()
	defer s.mu.Unlock()

	out := utils.Filter(s.attendance, func(a common.Attendance) bool {
		return a.Date.String() == date && a.DepartmentID == deptID
	})
	if len(out) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) attendanceByDateAndStatus(c *gin.Context) {
	date := c.Param("date")
	status := common.AttendanceStatus(c.Param("status"))

	if !status.Valid() {
		c.JSON(http.StatusBadRequest, NewErrorResponse("Unknown attendance status: "+string(status)))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := utils.Filter(s.attendance, func(a common.Attendance) bool {
		return a.Date.String() == date && a.Status == status
	})
	if len(out) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, out)
}

// attendanceByEmployee serves /attendance/employee/:id/date=yyyy-MM-dd. The
// real backend routes the query as a literal path segment, so the mock does
// the same and strips the prefix by hand.
func (s *Server) attendanceByEmployee(c *gin.Context) {
	id := c.Param("id")
	date, ok := strings.CutPrefix(c.Param("dayQuery"), "date=")
	if !ok {
		c.JSON(http.StatusBadRequest, NewErrorResponse("Expected date=yyyy-MM-dd"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := utils.Find(s.attendance, func(a *common.Attendance) bool {
		return a.EmployeeID == id && a.Date.String() == date
	})
	if record == nil {
		c.JSON(http.StatusNotFound, NewErrorResponse("No attendance found"))
		return
	}
	c.JSON(http.StatusOK, *record)
}

func (s *Server) findByEmail(email string) *employeeRecord {
	for _, rec := range s.employees {
		if strings.EqualFold(rec.Email, email) {
			return rec
		}
	}
	return nil
}

// departmentID mimics the backend's generated ids: the first four letters of
// the name, uppercased.
func departmentID(name string) string {
	cleaned := strings.ToUpper(strings.ReplaceAll(name, " ", ""))
	if len(cleaned) > 4 {
		cleaned = cleaned[:4]
	}
	return cleaned
}

func yearsSince(birthday, now time.Time) int {
	years := now.Year() - birthday.Year()
	if now.YearDay() < birthday.YearDay() {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}
