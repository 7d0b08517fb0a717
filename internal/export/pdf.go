package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/skip2/go-qrcode"
)

// ReportPDF формирует одностраничный PDF постоянного отчета
func ReportPDF(r *models.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Injury Report "+r.ReportID), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, tr("Status: "+string(r.Status)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	witness := "none"
	if r.WitnessID != nil {
		witness = witnessName(r)
	}

	rows := [][2]string{
		{"Date of Injury", r.DateOfInjury.Format("2006-01-02")},
		{"Report Date", r.ReportDate.Format("2006-01-02")},
		{"Reviewed", r.ReviewDate.Format("2006-01-02 15:04")},
		{"Reported By", partyName(r.Parties.ReportByFirstName, r.ReportBy)},
		{"Injured Employee", partyName(r.Parties.InjuredEmployeeFirstName, r.InjuredEmployeeID)},
		{"Witness", witness},
		{"Location", locationName(r)},
		{"Injury Type", r.InjuryTypeID},
		{"Severity", fmt.Sprintf("%d - %s", r.Severity, models.SeverityLabel(r.Severity))},
	}

	pdf.SetFont("Arial", "", 11)
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(50, 8, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, tr(row[1]), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Description", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr(r.Description), "", "L", false)

	if len(r.Images) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Images", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, url := range r.Images {
			pdf.CellFormat(0, 6, tr(url), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// EquipmentLabel формирует этикетку с QR-кодом для проверки оборудования.
// QR-код ведет на страницу оборудования: {appBaseURL}/equipments/{id}.
func EquipmentLabel(e *models.Equipment, appBaseURL string) ([]byte, error) {
	qrContent := fmt.Sprintf("%s/equipments/%s", appBaseURL, e.EquipmentID)
	qrPng, err := qrcode.Encode(qrContent, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}

	// Этикетка 100x60 мм
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: 60, Ht: 100},
	})
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(4, 4, 4)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader("qr", imgOptions, bytes.NewReader(qrPng))
	pdf.ImageOptions("qr", 4, 6, 48, 48, false, imgOptions, 0, "")

	pdf.SetXY(54, 8)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(42, 8, e.EquipmentID, "", 2, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(42, 5, tr(e.EquipmentName), "", "L", false)
	pdf.SetX(54)
	pdf.CellFormat(42, 5, tr("Location: "+e.LocationID), "", 2, "L", false, 0, "")
	pdf.CellFormat(42, 5, "Every "+fmt.Sprint(e.InspectionInterval)+" days", "", 2, "L", false, 0, "")
	pdf.CellFormat(42, 5, "Next: "+e.NextInspectionDue().Format("2006-01-02"), "", 2, "L", false, 0, "")

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render equipment label: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render equipment label: %w", err)
	}
	return buf.Bytes(), nil
}
