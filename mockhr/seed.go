package mockhr

import (
	"github.com/google/uuid"

	"staffdesk.com/staffdesk/staffdesk/v1/common"
	"staffdesk.com/staffdesk/utils"
)

// AddDepartment registers a department directly in the store, bypassing the
// HTTP surface. Used by tests and the sample seed.
func (s *Server) AddDepartment(dept common.Department) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := dept
	s.departments[d.ID] = &d
	s.deptOrder = append(s.deptOrder, d.ID)
}

// AddEmployee registers an employee with a login password. A missing id gets
// a generated one; the id actually stored is returned either way.
func (s *Server) AddEmployee(emp common.Employee, password string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	s.employees[emp.ID] = &employeeRecord{Employee: emp, Password: password}
	s.order = append(s.order, emp.ID)
	return emp.ID
}

// AddAttendance appends a raw attendance record, generating an id when absent.
func (s *Server) AddAttendance(record common.Attendance) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	s.attendance = append(s.attendance, record)
}

// SeedSample loads a small roster: three departments, one admin account and a
// handful of staff, plus one day of attendance. Enough to click through every
// console screen.
func (s *Server) SeedSample() {
	s.AddDepartment(common.Department{ID: "ENGI", Name: "Engineering", Salary: 95000, OverTimeRate: 1.5})
	s.AddDepartment(common.Department{ID: "FINA", Name: "Finance", Salary: 78000, OverTimeRate: 1.25})
	s.AddDepartment(common.Department{ID: "HUMA", Name: "Human Resources", Salary: 64000, OverTimeRate: 1.25})

	staff := []struct {
		emp      common.Employee
		password string
	}{
		{common.Employee{ID: "e-1001", FirstName: "Amara", LastName: "Perera", NIC: "902341234V", Gender: "Female", Address: "12 Lake Rd, Colombo", Phone: "0712345678", Email: "amara@staffdesk.local", DepartmentID: "ENGI", Role: common.RoleRef{Name: common.RoleAdmin}}, "admin123"},
		{common.Employee{ID: "e-1002", FirstName: "Bimal", LastName: "Silva", NIC: "911202345V", Gender: "Male", Address: "88 Hill St, Kandy", Phone: "0723456789", Email: "bimal@staffdesk.local", DepartmentID: "ENGI", Role: common.RoleRef{Name: common.RoleUser}}, "user123"},
		{common.Employee{ID: "e-1003", FirstName: "Chamari", LastName: "Fernando", NIC: "925670123V", Gender: "Female", Address: "5 Beach Ave, Galle", Phone: "0734567890", Email: "chamari@staffdesk.local", DepartmentID: "FINA", Role: common.RoleRef{Name: common.RoleUser}}, "user123"},
		{common.Employee{ID: "e-1004", FirstName: "Dinesh", LastName: "Jayawardena", NIC: "930451234V", Gender: "Male", Address: "31 Temple Ln, Matara", Phone: "0745678901", Email: "dinesh@staffdesk.local", DepartmentID: "HUMA", Role: common.RoleRef{Name: common.RoleHR}}, "hr1234"},
		{common.Employee{ID: "e-1005", FirstName: "Eshani", LastName: "Wickramasinghe", NIC: "941230567V", Gender: "Female", Address: "7 Park Dr, Negombo", Phone: "0756789012", Email: "eshani@staffdesk.local", DepartmentID: "FINA", Role: common.RoleRef{Name: common.RoleUser}}, "user123"},
	}
	for _, s2 := range staff {
		s.AddEmployee(s2.emp, s2.password)
	}

	today := common.NewDateOnly(utils.Today())
	s.AddAttendance(common.Attendance{EmployeeID: "e-1001", DepartmentID: "ENGI", Status: common.StatusPresent, Date: today})
	s.AddAttendance(common.Attendance{EmployeeID: "e-1002", DepartmentID: "ENGI", Status: common.StatusHalfDay, Date: today})
	s.AddAttendance(common.Attendance{EmployeeID: "e-1003", DepartmentID: "FINA", Status: common.StatusAbsent, Date: today})
	s.AddAttendance(common.Attendance{EmployeeID: "e-1004", DepartmentID: "HUMA", Status: common.StatusPresent, Date: today})
}
