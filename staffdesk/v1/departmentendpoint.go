package v1

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"staffdesk.com/staffdesk/staffdesk/v1/common"
)

type DepartmentEndpoint struct {
	transport *Transport
}

func (d *DepartmentEndpoint) GetAll(ctx context.Context) ([]common.Department, error) {
	resp, err := d.transport.Get(ctx, basePath+"/department/getAll", nil)
	if err != nil {
		return nil, err
	}
	return DecodeList[common.Department](resp.Data)
}

func (d *DepartmentEndpoint) Create(ctx context.Context, dto *common.DepartmentCreate) (*common.Department, error) {
	resp, err := d.transport.Post(ctx, basePath+"/department/create", dto)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return DecodeObject[common.Department](resp.Data)
}

func (d *DepartmentEndpoint) Update(ctx context.Context, id string, dto *common.DepartmentUpdate) error {
	if strings.TrimSpace(id) == "" {
		return invalidArgument(http.MethodPut, basePath+"/department/update/{id}", "department id is required")
	}
	_, err := d.transport.Put(ctx, fmt.Sprintf("%s/department/update/%s", basePath, id), dto)
	return err
}
