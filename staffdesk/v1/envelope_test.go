package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staffdesk.com/staffdesk/staffdesk/v1/common"
)

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{
			name: "Bare array",
			body: `[{"id":"a"},{"id":"b"}]`,
			want: 2,
		},
		{
			name: "Data envelope",
			body: `{"data":[{"id":"a"}]}`,
			want: 1,
		},
		{
			name: "Empty body (204)",
			body: "",
			want: 0,
		},
		{
			name: "Null body",
			body: "null",
			want: 0,
		},
		{
			name: "Envelope with null data",
			body: `{"data":null}`,
			want: 0,
		},
		{
			name: "Envelope with missing data",
			body: `{"message":"ok"}`,
			want: 0,
		},
		{
			name:    "Envelope with object data",
			body:    `{"data":{"id":"a"}}`,
			wantErr: true,
		},
		{
			name:    "Scalar body",
			body:    `42`,
			wantErr: true,
		},
		{
			name:    "Malformed array",
			body:    `[{"id":]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := DecodeList[common.Employee]([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnexpectedShape)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestDecodeObject(t *testing.T) {
	t.Run("Bare object", func(t *testing.T) {
		emp, err := DecodeObject[common.Employee]([]byte(`{"id":"e1","firstName":"Amara"}`))
		assert.NoError(t, err)
		assert.Equal(t, "e1", emp.ID)
		assert.Equal(t, "Amara", emp.FirstName)
	})

	t.Run("Data envelope", func(t *testing.T) {
		emp, err := DecodeObject[common.Employee]([]byte(`{"data":{"id":"e2"}}`))
		assert.NoError(t, err)
		assert.Equal(t, "e2", emp.ID)
	})

	t.Run("Array body rejected", func(t *testing.T) {
		_, err := DecodeObject[common.Employee]([]byte(`[{"id":"e1"}]`))
		assert.ErrorIs(t, err, ErrUnexpectedShape)
	})

	t.Run("Empty body rejected", func(t *testing.T) {
		_, err := DecodeObject[common.Employee](nil)
		assert.ErrorIs(t, err, ErrUnexpectedShape)
	})
}
