package v1

import "time"

const basePath = "/api/v1"

type Client struct {
	Transport   *Transport
	Employees   *EmployeeEndpoint
	Departments *DepartmentEndpoint
	Attendance  *AttendanceEndpoint
	Auth        *AuthEndpoint
}

// NewClient initializes the API client against the given backend.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	t := NewTransport(baseURL, tokens, timeout)
	return &Client{
		Transport:   t,
		Employees:   &EmployeeEndpoint{transport: t},
		Departments: &DepartmentEndpoint{transport: t},
		Attendance:  &AttendanceEndpoint{transport: t},
		Auth:        &AuthEndpoint{transport: t},
	}
}
