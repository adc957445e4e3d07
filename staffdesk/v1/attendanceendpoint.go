package v1

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"staffdesk.com/staffdesk/staffdesk/v1/common"
)

type AttendanceEndpoint struct {
	transport *Transport
}

func (a *AttendanceEndpoint) ListByDateAndDepartment(ctx context.Context, date common.DateOnly, deptID string) ([]common.Attendance, error) {
	if strings.TrimSpace(deptID) == "" {
		return nil, invalidArgument(http.MethodGet, basePath+"/attendance/date/{date}/department/{deptId}", "department id is required")
	}
	resp, err := a.transport.Get(ctx, fmt.Sprintf("%s/attendance/date/%s/department/%s", basePath, date, deptID), nil)
	if err != nil {
		return nil, err
	}
	return DecodeList[common.Attendance](resp.Data)
}

func (a *AttendanceEndpoint) ListByDateAndStatus(ctx context.Context, date common.DateOnly, status common.AttendanceStatus) ([]common.Attendance, error) {
	if !status.Valid() {
		return nil, invalidArgument(http.MethodGet, basePath+"/attendance/date/{date}/status/{status}", "unknown attendance status")
	}
	resp, err := a.transport.Get(ctx, fmt.Sprintf("%s/attendance/date/%s/status/%s", basePath, date, status), nil)
	if err != nil {
		return nil, err
	}
	return DecodeList[common.Attendance](resp.Data)
}

// GetByEmployeeAndDate returns the employee's record for the day, or nil when
// none exists. The path segment is "date=..." rather than "date/..." because
// that is what the backend actually routes.
func (a *AttendanceEndpoint) GetByEmployeeAndDate(ctx context.Context, employeeID string, date common.DateOnly) (*common.Attendance, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, invalidArgument(http.MethodGet, basePath+"/attendance/employee/{id}/date={date}", "employee id is required")
	}
	resp, err := a.transport.Get(ctx, fmt.Sprintf("%s/attendance/employee/%s/date=%s", basePath, employeeID, date), nil)
	if err != nil {
		return nil, err
	}

	// The endpoint answers with a single object on some deployments and a
	// one-element list on others. Branch on the body shape: probing the list
	// decoder first would swallow a bare object as an empty result.
	trimmed := bytes.TrimSpace(resp.Data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		records, err := DecodeList[common.Attendance](trimmed)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		return &records[0], nil
	}
	return DecodeObject[common.Attendance](trimmed)
}
