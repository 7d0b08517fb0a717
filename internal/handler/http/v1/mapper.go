package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/safety_incident_tracker/internal/models"
)

// DTOToPendingReport преобразует запрос подачи отчета в доменную модель
func (h *Handler) DTOToPendingReport(dto SubmitReportRequest) (*models.PendingReport, error) {
	dateOfInjury, err := h.parseDate(dto.DateOfInjury)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dateOfInjury", models.ErrValidation)
	}
	return &models.PendingReport{
		ReportBy:          dto.ReportBy,
		InjuredEmployeeID: dto.InjuredEmployeeID,
		DateOfInjury:      dateOfInjury,
		LocationID:        strings.TrimSpace(dto.LocationID),
		InjuryTypeID:      strings.TrimSpace(dto.InjuryTypeID),
		Severity:          dto.Severity,
		Description:       dto.Description,
		WitnessID:         dto.WitnessID,
	}, nil
}

// DTOToReportUpdate преобразует запрос исправления черновика в частичное обновление
func (h *Handler) DTOToReportUpdate(dto UpdateReportRequest) (models.PendingReportUpdate, error) {
	update := models.PendingReportUpdate{
		InjuredEmployeeID: dto.InjuredEmployeeID,
		LocationID:        dto.LocationID,
		InjuryTypeID:      dto.InjuryTypeID,
		Severity:          dto.Severity,
		Description:       dto.Description,
		WitnessID:         dto.WitnessID,
	}
	if dto.DateOfInjury != nil {
		date, err := h.parseDate(*dto.DateOfInjury)
		if err != nil {
			return update, fmt.Errorf("%w: invalid dateOfInjury", models.ErrValidation)
		}
		update.DateOfInjury = &date
	}
	return update, nil
}

// splitRecipients принимает получателей и повторяющимися полями, и одной строкой через запятую
func splitRecipients(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, r := range strings.Split(v, ",") {
			if r = strings.TrimSpace(r); r != "" {
				out = append(out, r)
			}
		}
	}
	return out
}

func (h *Handler) DTOToAlert(companyID int, dto CreateAlertRequest) (*models.Alert, error) {
	sentAt, err := h.parseOptionalDate(dto.SentAt)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid sentAt", models.ErrValidation)
	}
	alert := &models.Alert{
		AlertName:     dto.AlertName,
		CompanyID:     companyID,
		Description:   dto.Description,
		Type:          dto.Type,
		RecipientType: models.RecipientType(dto.RecipientType),
		Recipients:    splitRecipients(dto.Recipients),
		CC:            dto.CC,
	}
	if sentAt != nil {
		alert.SentAt = *sentAt
	}
	return alert, nil
}

func (h *Handler) DTOToAlertUpdate(dto UpdateAlertRequest) (models.AlertUpdate, error) {
	update := models.AlertUpdate{
		AlertName:          dto.AlertName,
		Description:        dto.Description,
		CC:                 dto.CC,
		RemovedAttachments: splitRecipients(dto.RemovedAttachments),
	}
	if dto.SentAt != nil {
		sentAt, err := h.parseDate(*dto.SentAt)
		if err != nil {
			return update, fmt.Errorf("%w: invalid sentAt", models.ErrValidation)
		}
		update.SentAt = &sentAt
	}
	return update, nil
}

func (h *Handler) DTOToEmployee(companyID int, dto CreateEmployeeRequest) (*models.Employee, error) {
	dob, err := h.parseDate(dto.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dateOfBirth", models.ErrValidation)
	}
	return &models.Employee{
		DepartmentID: strings.TrimSpace(dto.DepartmentID),
		CompanyID:    companyID,
		FirstName:    strings.TrimSpace(dto.FirstName),
		LastName:     strings.TrimSpace(dto.LastName),
		DateOfBirth:  dob,
		Email:        dto.Email,
		Role:         models.EmployeeRole(dto.Role),
	}, nil
}

func (h *Handler) DTOToEmployeeUpdate(dto UpdateEmployeeRequest) (models.EmployeeUpdate, error) {
	update := models.EmployeeUpdate{
		DepartmentID: trimmedPtr(dto.DepartmentID),
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
	}
	if dto.DateOfBirth != nil {
		dob, err := h.parseDate(*dto.DateOfBirth)
		if err != nil {
			return update, fmt.Errorf("%w: invalid dateOfBirth", models.ErrValidation)
		}
		update.DateOfBirth = &dob
	}
	if dto.Role != nil {
		role := models.EmployeeRole(*dto.Role)
		update.Role = &role
	}
	return update, nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func (h *Handler) DTOToEquipment(companyID int, dto CreateEquipmentRequest) (*models.Equipment, error) {
	inspectionDate, err := h.parseOptionalDate(dto.InspectionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid inspectionDate", models.ErrValidation)
	}
	e := &models.Equipment{
		EquipmentName:      dto.EquipmentName,
		CompanyID:          companyID,
		LocationID:         strings.TrimSpace(dto.LocationID),
		IsChecked:          dto.IsChecked,
		InspectionInterval: dto.InspectionInterval,
		InspectedBy:        dto.InspectedBy,
		Status:             models.EquipmentStatus(dto.Status),
		Description:        dto.Description,
		Image:              dto.Image,
	}
	if inspectionDate != nil {
		e.InspectionDate = *inspectionDate
	}
	return e, nil
}

func (h *Handler) DTOToInspection(dto InspectionRequest) (models.InspectionRecord, error) {
	inspectionDate, err := h.parseOptionalDate(dto.InspectionDate)
	if err != nil {
		return models.InspectionRecord{}, fmt.Errorf("%w: invalid inspectionDate", models.ErrValidation)
	}
	rec := models.InspectionRecord{
		InspectedBy: dto.InspectedBy,
		IsChecked:   dto.IsChecked,
		Status:      models.EquipmentStatus(dto.Status),
		Description: dto.Description,
	}
	if inspectionDate != nil {
		rec.InspectionDate = *inspectionDate
	}
	return rec, nil
}

// ModelToEquipmentResponse добавляет к модели дату следующей проверки
func ModelToEquipmentResponse(e *models.Equipment, now time.Time) *EquipmentResponse {
	return &EquipmentResponse{
		EquipmentID:        e.EquipmentID,
		EquipmentName:      e.EquipmentName,
		CompanyID:          e.CompanyID,
		LocationID:         e.LocationID,
		InspectionDate:     e.InspectionDate,
		IsChecked:          e.IsChecked,
		InspectionInterval: e.InspectionInterval,
		InspectedBy:        e.InspectedBy,
		Status:             string(e.Status),
		Description:        e.Description,
		Image:              e.Image,
		NextInspectionDue:  e.NextInspectionDue(),
		Overdue:            e.IsOverdue(now),
	}
}

func ModelsToEquipmentResponses(equipments []*models.Equipment, now time.Time) []*EquipmentResponse {
	responses := make([]*EquipmentResponse, len(equipments))
	for i, e := range equipments {
		responses[i] = ModelToEquipmentResponse(e, now)
	}
	return responses
}
