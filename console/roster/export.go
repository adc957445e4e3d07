package roster

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"staffdesk.com/staffdesk/utils"
)

const exportSheet = "Employees"

// ExportXLSX writes the current filtered roster (all pages, not just the
// visible one) as an Excel workbook.
func (c *Controller) ExportXLSX(w io.Writer) error {
	filtered := utils.Filter(c.cache, c.matches)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	headers := []string{"ID", "First Name", "Last Name", "Email", "Phone", "Address", "Age", "Role", "Department"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for row, e := range filtered {
		values := []any{
			e.ID,
			e.FirstName,
			e.LastName,
			e.Email,
			e.Phone,
			e.Address,
			ageCell(e.Age),
			e.Role.String(),
			c.departmentName(e.DepartmentKey()),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func ageCell(age *int) any {
	if age == nil {
		return ""
	}
	return *age
}
