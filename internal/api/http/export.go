package http

import (
	"fmt"
	"io"
	"time"

	"lifeline/internal/domain"

	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []string{
	"Request ID", "Patient", "Requester Phone", "Hospital", "Hospital ID",
	"Blood Group", "Location", "Status", "Created At", "Updated At",
}

// writeRequestsWorkbook writes one sheet per status, header row frozen.
func writeRequestsWorkbook(w io.Writer, lists *domain.HospitalRequests) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F4CCCC"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	sheets := []struct {
		name string
		rows []domain.BloodRequest
	}{
		{"Pending", lists.Pending},
		{"Approved", lists.Approved},
		{"Rejected", lists.Rejected},
	}

	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
		}
		for col, header := range exportHeaders {
			if err := setCell(f, sheet.name, col+1, 1, header); err != nil {
				return err
			}
		}
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		if err := f.SetCellStyle(sheet.name, first, last, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}

		for i, req := range sheet.rows {
			row := i + 2
			values := []any{
				req.ID, req.PatientName, req.RequesterPhone, req.HospitalName, req.HospitalID,
				req.BloodGroup, req.Location, string(req.Status),
				req.CreatedAt.UTC().Format(time.RFC3339), req.UpdatedAt.UTC().Format(time.RFC3339),
			}
			for col, v := range values {
				if err := setCell(f, sheet.name, col+1, row, v); err != nil {
					return err
				}
			}
		}

		if err := f.SetPanes(sheet.name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("failed to freeze header: %w", err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex("Pending"); err == nil {
		f.SetActiveSheet(idx)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s!%s: %w", sheet, cell, err)
	}
	return nil
}
