package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReportStatus - статус отчета о травме
type ReportStatus string

const (
	StatusOnGoing   ReportStatus = "On going"
	StatusOnHold    ReportStatus = "On hold"
	StatusCompleted ReportStatus = "Completed"
)

// ReviewAction - решение проверяющего по отчету
type ReviewAction string

const (
	ActionApprove ReviewAction = "approve"
	ActionReject  ReviewAction = "reject"
)

// Severity: 1 - Minor, 2 - Severe, 3 - Moderate, 4 - Significant, 5 - Fatal
const (
	MinSeverity = 1
	MaxSeverity = 5
)

var severityLabels = map[int]string{
	1: "Minor",
	2: "Severe",
	3: "Moderate",
	4: "Significant",
	5: "Fatal",
}

// SeverityLabel возвращает название уровня тяжести
func SeverityLabel(severity int) string {
	if label, ok := severityLabels[severity]; ok {
		return label
	}
	return "Unknown"
}

// ReportParties - имена участников и название локации, подтягиваются при чтении
type ReportParties struct {
	ReportByFirstName        string `json:"reportByFirstName,omitempty"`
	ReportByRole             string `json:"reportByRole,omitempty"`
	InjuredEmployeeFirstName string `json:"injuredEmployeeFirstName,omitempty"`
	InjuredEmployeeRole      string `json:"injuredEmployeeRole,omitempty"`
	WitnessFirstName         string `json:"witnessEmployeeFirstName,omitempty"`
	WitnessRole              string `json:"witnessEmployeeRole,omitempty"`
	LocationName             string `json:"locationName,omitempty"`
}

// PendingReport - черновик отчета, ожидающий решения проверяющего
type PendingReport struct {
	ID                uuid.UUID     `json:"_id"`
	CompanyID         int           `json:"companyID"`
	ReportBy          int           `json:"reportBy"`
	InjuredEmployeeID int           `json:"injuredEmployeeID"`
	DateOfInjury      time.Time     `json:"dateOfInjury"`
	ReportDate        time.Time     `json:"reportDate"`
	LocationID        string        `json:"locationID"`
	InjuryTypeID      string        `json:"injuryTypeID"`
	Severity          int           `json:"severity"`
	Description       string        `json:"description"`
	Images            []string      `json:"image"`
	WitnessID         *int          `json:"witnessID"`
	Status            ReportStatus  `json:"status"`
	HoldReason        string        `json:"holdReason,omitempty"`
	ReviewDate        time.Time     `json:"reviewDate"`
	Parties           ReportParties `json:"parties"`
}

// Report - постоянная запись, создается только при утверждении черновика
type Report struct {
	ReportID          string        `json:"reportID"`
	SourcePendingID   uuid.UUID     `json:"sourcePendingID"`
	CompanyID         int           `json:"companyID"`
	ReportBy          int           `json:"reportBy"`
	InjuredEmployeeID int           `json:"injuredEmployeeID"`
	DateOfInjury      time.Time     `json:"dateOfInjury"`
	ReportDate        time.Time     `json:"reportDate"`
	LocationID        string        `json:"locationID"`
	InjuryTypeID      string        `json:"injuryTypeID"`
	Severity          int           `json:"severity"`
	Description       string        `json:"description"`
	Images            []string      `json:"image"`
	WitnessID         *int          `json:"witnessID"`
	Status            ReportStatus  `json:"status"`
	ReviewDate        time.Time     `json:"reviewDate"`
	CreatedAt         time.Time     `json:"createdAt"`
	Parties           ReportParties `json:"parties"`
}

// NewReportFromPending копирует поля черновика в постоянную запись со статусом Completed
func NewReportFromPending(p *PendingReport, reportID string, reviewedAt time.Time) *Report {
	images := make([]string, len(p.Images))
	copy(images, p.Images)

	var witness *int
	if p.WitnessID != nil {
		w := *p.WitnessID
		witness = &w
	}

	return &Report{
		ReportID:          reportID,
		SourcePendingID:   p.ID,
		CompanyID:         p.CompanyID,
		ReportBy:          p.ReportBy,
		InjuredEmployeeID: p.InjuredEmployeeID,
		DateOfInjury:      p.DateOfInjury,
		ReportDate:        p.ReportDate,
		LocationID:        p.LocationID,
		InjuryTypeID:      p.InjuryTypeID,
		Severity:          p.Severity,
		Description:       p.Description,
		Images:            images,
		WitnessID:         witness,
		Status:            StatusCompleted,
		ReviewDate:        reviewedAt,
		Parties:           p.Parties,
	}
}

// PendingReportUpdate - частичное обновление черновика при повторной подаче
type PendingReportUpdate struct {
	InjuredEmployeeID *int
	DateOfInjury      *time.Time
	LocationID        *string
	InjuryTypeID      *string
	Severity          *int
	Description       *string
	WitnessID         *int
}

// IsEmpty сообщает, что ни одно поле не задано
func (u PendingReportUpdate) IsEmpty() bool {
	return u.InjuredEmployeeID == nil && u.DateOfInjury == nil && u.LocationID == nil &&
		u.InjuryTypeID == nil && u.Severity == nil && u.Description == nil && u.WitnessID == nil
}

// Apply переносит заданные поля в черновик
func (u PendingReportUpdate) Apply(p *PendingReport) {
	if u.InjuredEmployeeID != nil {
		p.InjuredEmployeeID = *u.InjuredEmployeeID
	}
	if u.DateOfInjury != nil {
		p.DateOfInjury = *u.DateOfInjury
	}
	if u.LocationID != nil {
		p.LocationID = *u.LocationID
	}
	if u.InjuryTypeID != nil {
		p.InjuryTypeID = *u.InjuryTypeID
	}
	if u.Severity != nil {
		p.Severity = *u.Severity
	}
	if u.Description != nil {
		p.Description = strings.TrimSpace(*u.Description)
	}
	if u.WitnessID != nil {
		w := *u.WitnessID
		p.WitnessID = &w
	}
}

// ReportFilter - фильтр списка постоянных отчетов компании
type ReportFilter struct {
	InjuryTypeID string
	// DateOfInjury выбирает отчеты за сутки, начинающиеся в этот момент
	DateOfInjury *time.Time
}

// ReviewOutcome - результат проверки черновика
type ReviewOutcome struct {
	Status   ReportStatus `json:"status"`
	ReportID string       `json:"reportID,omitempty"`
}

// NormalizeDescription приводит описание к виду для поиска дубликатов
func NormalizeDescription(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
