package roster

import (
	"context"
	"errors"
	"sync"

	v1 "staffdesk.com/staffdesk/staffdesk/v1"
	"staffdesk.com/staffdesk/staffdesk/v1/common"
	"staffdesk.com/staffdesk/utils"
)

// AttendanceBoard maps department id to that department's enriched attendance
// records for one date. Every known department has an entry, empty or not.
type AttendanceBoard map[string][]common.Attendance

// FetchAttendanceBoard runs the enrichment pipeline for one date: one
// attendance query per department, then one employee lookup per returned
// record, all concurrent. Each secondary request is failure-isolated: a
// failed department query contributes an empty list, a failed employee
// lookup falls back to the raw id as the display name.
//
// The batch is tagged with a sequence snapshot; if a newer batch was started
// while this one was in flight, the result is discarded and ErrSuperseded
// returned, so an old date can never bleed into a new one.
func (c *Controller) FetchAttendanceBoard(ctx context.Context, date common.DateOnly) (AttendanceBoard, error) {
	c.enrichSeq++
	seq := c.enrichSeq

	departments := make([]common.Department, len(c.departments))
	copy(departments, c.departments)

	results := make([][]common.Attendance, len(departments))
	var wg sync.WaitGroup
	for i, dept := range departments {
		wg.Add(1)
		go func(i int, dept common.Department) {
			defer wg.Done()
			results[i] = c.enrichDepartment(ctx, date, dept)
		}(i, dept)
	}
	wg.Wait()

	if seq != c.enrichSeq {
		return nil, ErrSuperseded
	}

	board := make(AttendanceBoard, len(departments))
	for i, dept := range departments {
		board[dept.ID] = results[i]
	}
	return board, nil
}

func (c *Controller) enrichDepartment(ctx context.Context, date common.DateOnly, dept common.Department) []common.Attendance {
	records, err := c.client.Attendance.ListByDateAndDepartment(ctx, date, dept.ID)
	if err != nil {
		return []common.Attendance{}
	}

	var wg sync.WaitGroup
	for i := range records {
		wg.Add(1)
		go func(record *common.Attendance) {
			defer wg.Done()
			record.DepartmentName = dept.Name
			record.EmployeeName = c.resolveEmployeeName(ctx, record.EmployeeID)
		}(&records[i])
	}
	wg.Wait()
	return records
}

func (c *Controller) resolveEmployeeName(ctx context.Context, employeeID string) string {
	emp, err := c.client.Employees.Get(ctx, employeeID)
	if err != nil || emp == nil {
		return employeeID
	}
	if name := emp.FullName(); name != "" {
		return name
	}
	return employeeID
}

// EmployeeAttendance looks up one employee's record for a date and enriches
// it the same way the board does. A day with no record returns (nil, nil) so
// the caller can show the original's "no attendance found" message.
func (c *Controller) EmployeeAttendance(ctx context.Context, employeeID string, date common.DateOnly) (*common.Attendance, error) {
	record, err := c.client.Attendance.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, v1.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	record.EmployeeName = c.resolveEmployeeName(ctx, employeeID)
	if dept := utils.Find(c.departments, func(d *common.Department) bool { return d.ID == record.DepartmentID }); dept != nil {
		record.DepartmentName = dept.Name
	} else {
		record.DepartmentName = record.DepartmentID
	}
	return record, nil
}

// AttendanceByStatus fetches one date's records for a single status across
// all departments, enriched, for the status-grouped dashboard view.
func (c *Controller) AttendanceByStatus(ctx context.Context, date common.DateOnly, status common.AttendanceStatus) ([]common.Attendance, error) {
	records, err := c.client.Attendance.ListByDateAndStatus(ctx, date, status)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	for i := range records {
		wg.Add(1)
		go func(record *common.Attendance) {
			defer wg.Done()
			record.EmployeeName = c.resolveEmployeeName(ctx, record.EmployeeID)
			record.DepartmentName = c.departmentName(record.DepartmentID)
		}(&records[i])
	}
	wg.Wait()
	return records, nil
}
