// Package export формирует выгрузки отчетов: Excel, PDF и QR-этикетки оборудования.
package export

import (
	"fmt"
	"strconv"

	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/xuri/excelize/v2"
)

const reportsSheet = "Reports"

// ReportsHeader - заголовки колонок выгрузки отчетов
var ReportsHeader = []string{
	"Report ID",
	"Date of Injury",
	"Report Date",
	"Reported By",
	"Injured Employee",
	"Witness",
	"Location",
	"Injury Type",
	"Severity",
	"Description",
	"Status",
}

var reportsColumnWidths = []float64{12, 14, 14, 20, 20, 20, 22, 12, 14, 50, 12}

// ReportsWorkbook собирает xlsx-файл со списком постоянных отчетов
func ReportsWorkbook(reports []*models.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FDE9D9"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range ReportsHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(reportsSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(reportsSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, width := range reportsColumnWidths {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(reportsSheet, colName, colName, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, r := range reports {
		row := []any{
			r.ReportID,
			r.DateOfInjury.Format("2006-01-02"),
			r.ReportDate.Format("2006-01-02"),
			partyName(r.Parties.ReportByFirstName, r.ReportBy),
			partyName(r.Parties.InjuredEmployeeFirstName, r.InjuredEmployeeID),
			witnessName(r),
			locationName(r),
			r.InjuryTypeID,
			fmt.Sprintf("%d - %s", r.Severity, models.SeverityLabel(r.Severity)),
			r.Description,
			string(r.Status),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(reportsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func partyName(firstName string, id int) string {
	if firstName == "" {
		return strconv.Itoa(id)
	}
	return fmt.Sprintf("%s (%d)", firstName, id)
}

func witnessName(r *models.Report) string {
	if r.WitnessID == nil {
		return ""
	}
	return partyName(r.Parties.WitnessFirstName, *r.WitnessID)
}

func locationName(r *models.Report) string {
	if r.Parties.LocationName == "" {
		return r.LocationID
	}
	return fmt.Sprintf("%s (%s)", r.Parties.LocationName, r.LocationID)
}
