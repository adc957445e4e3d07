package v1

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"staffdesk.com/staffdesk/staffdesk/v1/common"
)

type EmployeeEndpoint struct {
	transport *Transport
}

func (e *EmployeeEndpoint) List(ctx context.Context) ([]common.Employee, error) {
	resp, err := e.transport.Get(ctx, basePath+"/employee", nil)
	if err != nil {
		return nil, err
	}
	return DecodeList[common.Employee](resp.Data)
}

func (e *EmployeeEndpoint) Get(ctx context.Context, id string) (*common.Employee, error) {
	if strings.TrimSpace(id) == "" {
		return nil, invalidArgument(http.MethodGet, basePath+"/employee/{id}", "employee id is required")
	}
	resp, err := e.transport.Get(ctx, fmt.Sprintf("%s/employee/%s", basePath, id), nil)
	if err != nil {
		return nil, err
	}
	return DecodeObject[common.Employee](resp.Data)
}

func (e *EmployeeEndpoint) ListByDepartment(ctx context.Context, deptID string) ([]common.Employee, error) {
	if strings.TrimSpace(deptID) == "" {
		return nil, invalidArgument(http.MethodGet, basePath+"/employee/department/{deptId}", "department id is required")
	}
	resp, err := e.transport.Get(ctx, fmt.Sprintf("%s/employee/department/%s", basePath, deptID), nil)
	if err != nil {
		return nil, err
	}
	return DecodeList[common.Employee](resp.Data)
}

func (e *EmployeeEndpoint) Create(ctx context.Context, dto *common.EmployeeCreate) (*common.Employee, error) {
	resp, err := e.transport.Post(ctx, basePath+"/employee", dto)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return DecodeObject[common.Employee](resp.Data)
}

// Update submits only the modal-editable fields; everything else on the
// record is immutable from the roster view.
func (e *EmployeeEndpoint) Update(ctx context.Context, id string, dto *common.EmployeeUpdate) error {
	if strings.TrimSpace(id) == "" {
		return invalidArgument(http.MethodPut, basePath+"/employee/{id}", "employee id is required")
	}
	_, err := e.transport.Put(ctx, fmt.Sprintf("%s/employee/%s", basePath, id), dto)
	return err
}

func (e *EmployeeEndpoint) ChangePassword(ctx context.Context, id string, dto *common.PasswordUpdate) error {
	if strings.TrimSpace(id) == "" {
		return invalidArgument(http.MethodPut, basePath+"/employee/change-password/{id}", "employee id is required")
	}
	_, err := e.transport.Put(ctx, fmt.Sprintf("%s/employee/change-password/%s", basePath, id), dto)
	return err
}

func (e *EmployeeEndpoint) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalidArgument(http.MethodDelete, basePath+"/employee/{id}", "employee id is required")
	}
	_, err := e.transport.Delete(ctx, fmt.Sprintf("%s/employee/%s", basePath, id))
	return err
}
