package roster

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()
	require.NoError(t, f.controller.LoadDepartments(ctx))
	require.NoError(t, f.controller.FetchAll(ctx))

	// The export covers the filtered set, not just the visible page.
	f.controller.SetRoleFilter("USER")
	f.controller.SetPage(99)

	var buf bytes.Buffer
	require.NoError(t, f.controller.ExportXLSX(&buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + three USER records

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Department", rows[0][8])
	for _, row := range rows[1:] {
		assert.Equal(t, "USER", row[7])
	}

	// Department ids are resolved to display names.
	for _, row := range rows[1:] {
		assert.Contains(t, []string{"Engineering", "Finance", "Human Resources"}, row[8])
	}
}
