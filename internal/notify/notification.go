package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/safety_incident_tracker/internal/models"
)

// Kind - тип уведомления
type Kind string

const (
	KindReportHold     Kind = "report.hold"
	KindReportApproved Kind = "report.approved"
	KindAlert          Kind = "alert"
	KindReportRequest  Kind = "report.request"
)

// Notification - одно письмо одному получателю, кладется в очередь Redis
type Notification struct {
	Kind            Kind      `json:"kind"`
	To              string    `json:"to"`
	CC              string    `json:"cc,omitempty"`
	Subject         string    `json:"subject"`
	Body            string    `json:"body"`
	Attachments     []string  `json:"attachments,omitempty"`
	PendingReportID string    `json:"pending_report_id,omitempty"`
	ReportID        string    `json:"report_id,omitempty"`
	AlertID         string    `json:"alert_id,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

func reportDetails(b *strings.Builder, p *models.PendingReport) {
	witness := "none"
	if p.WitnessID != nil {
		witness = fmt.Sprint(*p.WitnessID)
	}
	fmt.Fprintf(b, "Report Details:\n")
	fmt.Fprintf(b, "- Reported By: %d\n", p.ReportBy)
	fmt.Fprintf(b, "- Injured Employee ID: %d\n", p.InjuredEmployeeID)
	fmt.Fprintf(b, "- Date of Injury: %s\n", p.DateOfInjury.Format("2006-01-02"))
	fmt.Fprintf(b, "- Location ID: %s\n", p.LocationID)
	fmt.Fprintf(b, "- Injury Type ID: %s\n", p.InjuryTypeID)
	fmt.Fprintf(b, "- Severity: %d (%s)\n", p.Severity, models.SeverityLabel(p.Severity))
	fmt.Fprintf(b, "- Description: %s\n", p.Description)
	fmt.Fprintf(b, "- Witness ID: %s\n", witness)
}

// NewHoldNotification - письмо автору отчета со ссылкой на исправление
func NewHoldNotification(to string, p *models.PendingReport, reason, appBaseURL string, now time.Time) Notification {
	link := fmt.Sprintf("%s/update-report/%s", appBaseURL, p.ID)

	var b strings.Builder
	b.WriteString("Hello,\n\n")
	fmt.Fprintf(&b, "The following injury report has been placed on hold with the reason: %q\n\n", reason)
	reportDetails(&b, p)
	fmt.Fprintf(&b, "\nPlease edit and resubmit the report by following the link:\n%s\n\nThank you.", link)

	return Notification{
		Kind:            KindReportHold,
		To:              to,
		Subject:         fmt.Sprintf("Report #%s placed on hold", p.ID),
		Body:            b.String(),
		PendingReportID: p.ID.String(),
		Timestamp:       now,
	}
}

// NewApprovalNotification - письмо автору отчета с постоянным идентификатором
func NewApprovalNotification(to string, r *models.Report, now time.Time) Notification {
	p := &models.PendingReport{
		ID:                r.SourcePendingID,
		ReportBy:          r.ReportBy,
		InjuredEmployeeID: r.InjuredEmployeeID,
		DateOfInjury:      r.DateOfInjury,
		LocationID:        r.LocationID,
		InjuryTypeID:      r.InjuryTypeID,
		Severity:          r.Severity,
		Description:       r.Description,
		WitnessID:         r.WitnessID,
	}

	var b strings.Builder
	b.WriteString("Hello,\n\n")
	fmt.Fprintf(&b, "The following injury report has been approved, its official report ID is %s.\n\n", r.ReportID)
	reportDetails(&b, p)
	b.WriteString("\nThank you.")

	return Notification{
		Kind:            KindReportApproved,
		To:              to,
		Subject:         fmt.Sprintf("Report #%s Approved", r.ReportID),
		Body:            b.String(),
		PendingReportID: r.SourcePendingID.String(),
		ReportID:        r.ReportID,
		Timestamp:       now,
	}
}

// NewAlertNotification - письмо с оповещением одному получателю
func NewAlertNotification(to string, a *models.Alert, now time.Time) Notification {
	var b strings.Builder
	b.WriteString("Hello,\n\nAn important alert has been issued.\n\n")
	fmt.Fprintf(&b, "Alert Details:\n- Alert Name: %s\n- Description: %s\n", a.AlertName, a.Description)
	if len(a.Attachments) > 0 {
		b.WriteString("\nAttachments:\n")
		for _, url := range a.Attachments {
			fmt.Fprintf(&b, "- %s\n", url)
		}
	}
	b.WriteString("\nPlease review the details and take the necessary actions.\n\nThank you.")

	return Notification{
		Kind:        KindAlert,
		To:          to,
		CC:          a.CC,
		Subject:     "Alert: " + a.AlertName,
		Body:        b.String(),
		Attachments: a.Attachments,
		AlertID:     a.AlertID,
		Timestamp:   now,
	}
}

// NewReportRequestNotification - просьба заполнить отчет о травме
func NewReportRequestNotification(to, remark, appBaseURL string, now time.Time) Notification {
	var b strings.Builder
	b.WriteString("Hello,\n\nPlease fill in this Injury Report.\n")
	fmt.Fprintf(&b, "Here is the link to the injury report: %s/injury-report\n", appBaseURL)
	if remark != "" {
		fmt.Fprintf(&b, "Remarks: %s\n", remark)
	}
	b.WriteString("\nThank you.")

	return Notification{
		Kind:      KindReportRequest,
		To:        to,
		Subject:   "Please fill in this Injury Report",
		Body:      b.String(),
		Timestamp: now,
	}
}
