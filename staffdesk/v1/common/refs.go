package common

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RoleRef normalizes the polymorphic role field: the backend serializes it as
// a bare string on some paths and as {"name": "..."} on others.
type RoleRef struct {
	Name string
}

const (
	RoleUser  = "USER"
	RoleHR    = "HR"
	RoleAdmin = "ADMIN"
)

func (r *RoleRef) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		r.Name = ""
		return nil
	}

	switch trimmed[0] {
	case '"':
		return json.Unmarshal(trimmed, &r.Name)
	case '{':
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		r.Name = obj.Name
		return nil
	default:
		// Anything else (numbers, booleans) is kept as its literal text so a
		// misbehaving backend still renders something comparable.
		r.Name = string(trimmed)
		return nil
	}
}

func (r RoleRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Name)
}

// String is the canonical display form used for comparison and filtering.
func (r RoleRef) String() string { return r.Name }

// DepartmentRef accepts either a department id string or an embedded
// {id, name} object.
type DepartmentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (d *DepartmentRef) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*d = DepartmentRef{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		return json.Unmarshal(trimmed, &d.ID)
	case '{':
		type alias DepartmentRef
		var obj alias
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		*d = DepartmentRef(obj)
		return nil
	default:
		return fmt.Errorf("department reference is neither string nor object: %s", trimmed)
	}
}

func (d DepartmentRef) MarshalJSON() ([]byte, error) {
	if d.Name == "" {
		return json.Marshal(d.ID)
	}
	type alias DepartmentRef
	return json.Marshal(alias(d))
}
