// Package export turns schedule lists into downloadable Excel workbooks.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/schedule-studio/internal/application"
)

const sheetName = "Schedules"

// WorkbookFilename is the suggested download name for schedule exports.
const WorkbookFilename = "Schedules.xlsx"

var headers = []string{"ID", "Title", "Date", "Status", "Location", "Description", "Assignees", "Created At", "Updated At"}

// BuildWorkbook renders one row per schedule onto a single sheet. The
// assignee lineup is flattened into a "Role: Member" list; unbound roles are
// omitted.
func BuildWorkbook(schedules []application.Schedule) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("export: write header: %w", err)
		}
	}

	for i, schedule := range schedules {
		row := i + 2
		values := []any{
			schedule.ID,
			schedule.Title,
			schedule.Date.UTC().Format(time.RFC3339),
			string(schedule.Status),
			schedule.Location,
			schedule.Description,
			flattenAssignees(schedule.Assignees),
			schedule.CreatedAt.UTC().Format(time.RFC3339),
			schedule.UpdatedAt.UTC().Format(time.RFC3339),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("export: cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("export: write cell: %w", err)
			}
		}
	}

	return f, nil
}

func flattenAssignees(assignees []application.Assignee) string {
	parts := make([]string, 0, len(assignees))
	for _, assignee := range assignees {
		if !assignee.Bound() {
			continue
		}
		parts = append(parts, assignee.RoleName+": "+assignee.Member.Name)
	}
	return strings.Join(parts, "; ")
}
