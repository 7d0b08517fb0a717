package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/safety_incident_tracker/internal/export"
	"github.com/shenikar/safety_incident_tracker/internal/identifier"
	"github.com/shenikar/safety_incident_tracker/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// @Summary Submit an injury report
// @Description Create a pending injury report in status "On going". Accepts JSON or multipart form with up to MAX_UPLOAD_FILES "image" files. Requires API key.
// @Tags Reports
// @Accept json,mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param report body SubmitReportRequest true "Injury report"
// @Success 201 {object} models.PendingReport
// @Failure 400 {object} map[string]string "Invalid request body, validation error or duplicate report"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Reporter not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/submit [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input SubmitReportRequest
	log := h.logger.WithField("method", "submitReport")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	report, err := h.DTOToPendingReport(input)
	if err != nil {
		respondError(c, log, err)
		return
	}

	images, err := formFiles(c, "image")
	if err != nil {
		log.WithError(err).Warn("Failed to read uploaded images")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	if err := h.reportService.SubmitReport(c.Request.Context(), report, images); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// @Summary Review a pending report
// @Description Approve (promote to a permanent report) or reject (put on hold) a pending report. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param review body ReviewReportRequest true "Review decision"
// @Success 200 {object} models.ReviewOutcome
// @Failure 400 {object} map[string]string "Invalid request body or duplicate injury report"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Pending report not found"
// @Failure 409 {object} map[string]string "Invalid status transition"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/review [put]
func (h *Handler) reviewReport(c *gin.Context) {
	var input ReviewReportRequest
	log := h.logger.WithField("method", "reviewReport")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	outcome, err := h.reportService.ReviewReport(c.Request.Context(), uuid.MustParse(input.ID), models.ReviewAction(input.Action), input.Reason)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// @Summary Approve a pending report
// @Description Promote a pending report to a permanent report with a new R#### id. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param approve body ApproveReportRequest true "Pending report id"
// @Success 200 {object} models.Report
// @Failure 400 {object} map[string]string "Invalid request body or duplicate injury report"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Pending report not found"
// @Failure 409 {object} map[string]string "Invalid status transition"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/approve [post]
func (h *Handler) approveReport(c *gin.Context) {
	var input ApproveReportRequest
	log := h.logger.WithField("method", "approveReport")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	report, err := h.reportService.ApproveReport(c.Request.Context(), uuid.MustParse(input.ID))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Put a pending report on hold
// @Description Move a pending report to "On hold" and email the reporter a link to revise it. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param hold body HoldReportRequest true "Pending report id and reason"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Pending report not found"
// @Failure 409 {object} map[string]string "Invalid status transition"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/hold [post]
func (h *Handler) holdReport(c *gin.Context) {
	var input HoldReportRequest
	log := h.logger.WithField("method", "holdReport")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.reportService.HoldReport(c.Request.Context(), uuid.MustParse(input.ID), input.Reason); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: string(models.StatusOnHold)})
}

// @Summary Get a pending report
// @Description Get a pending report that has not been approved yet. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Pending report ID"
// @Success 200 {object} models.PendingReport
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Pending report not found"
// @Router /reports/pending/{id} [get]
func (h *Handler) getPendingReport(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getPendingReport").WithField("id", id)

	report, err := h.reportService.GetPendingReport(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Get a report for revision
// @Description Get a pending report for revision. Only reports "On hold" can be revised. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Pending report ID"
// @Success 200 {object} models.PendingReport
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found or cannot be updated"
// @Router /update-report/{id} [get]
func (h *Handler) getSubmittedReport(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSubmittedReport").WithField("id", id)

	report, err := h.reportService.GetSubmittedReport(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Resubmit a report on hold
// @Description Apply the reporter's corrections to a report "On hold" and move it back to "On going". New "image" files replace the old images. Requires API key.
// @Tags Reports
// @Accept json,mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Pending report ID"
// @Param report body UpdateReportRequest true "Corrected fields"
// @Success 200 {object} models.PendingReport
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Pending report not found"
// @Failure 409 {object} map[string]string "Report is not on hold"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /update-report/{id} [put]
func (h *Handler) updateSubmittedReport(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateSubmittedReport").WithField("id", id)

	var input UpdateReportRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	update, err := h.DTOToReportUpdate(input)
	if err != nil {
		respondError(c, log, err)
		return
	}

	images, err := formFiles(c, "image")
	if err != nil {
		log.WithError(err).Warn("Failed to read uploaded images")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	report, err := h.reportService.UpdatePendingReport(c.Request.Context(), id, update, images)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary List pending reports of a company
// @Description List reports "On going" and "On hold" of a company. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Success 200 {array} models.PendingReport
// @Failure 400 {object} map[string]string "Invalid company ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/reports/pending [get]
func (h *Handler) listPendingReports(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listPendingReports").WithField("company_id", companyID)

	reports, err := h.reportService.ListPendingReports(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// reportFilter читает фильтр списка отчетов из query-параметров
func (h *Handler) reportFilter(c *gin.Context) (models.ReportFilter, error) {
	filter := models.ReportFilter{InjuryTypeID: c.Query("injuryTypeID")}
	date, err := h.parseOptionalDate(c.Query("dateOfInjury"))
	if err != nil {
		return filter, fmt.Errorf("%w: invalid dateOfInjury", models.ErrValidation)
	}
	filter.DateOfInjury = date
	return filter, nil
}

// @Summary List permanent reports of a company
// @Description List approved reports of a company, optionally filtered by injury type and date of injury. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Param injuryTypeID query string false "Injury type ID"
// @Param dateOfInjury query string false "Date of injury (YYYY-MM-DD)"
// @Success 200 {array} models.Report
// @Failure 400 {object} map[string]string "Invalid company ID or filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/reports [get]
func (h *Handler) listReports(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listReports").WithField("company_id", companyID)

	filter, err := h.reportFilter(c)
	if err != nil {
		respondError(c, log, err)
		return
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), companyID, filter)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// @Summary Export permanent reports to Excel
// @Description Download approved reports of a company as an xlsx workbook. Accepts the same filters as the list. Requires API key.
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Param injuryTypeID query string false "Injury type ID"
// @Param dateOfInjury query string false "Date of injury (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid company ID or filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/reports/export [get]
func (h *Handler) exportReports(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "exportReports").WithField("company_id", companyID)

	filter, err := h.reportFilter(c)
	if err != nil {
		respondError(c, log, err)
		return
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), companyID, filter)
	if err != nil {
		respondError(c, log, err)
		return
	}

	data, err := export.ReportsWorkbook(reports)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="injury-reports-%d.xlsx"`, companyID))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// @Summary Get a permanent report
// @Description Get an approved report by its R#### id. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} models.Report
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	reportID, ok := codeParam(c, "id", identifier.PrefixReport)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("report_id", reportID)

	report, err := h.reportService.GetReport(c.Request.Context(), reportID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Download a report as PDF
// @Description Render an approved report as a PDF document. Requires API key.
// @Tags Reports
// @Produce application/pdf
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/pdf [get]
func (h *Handler) getReportPDF(c *gin.Context) {
	reportID, ok := codeParam(c, "id", identifier.PrefixReport)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getReportPDF").WithField("report_id", reportID)

	report, err := h.reportService.GetReport(c.Request.Context(), reportID)
	if err != nil {
		respondError(c, log, err)
		return
	}

	data, err := export.ReportPDF(report)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s.pdf"`, report.ReportID))
	c.Data(http.StatusOK, "application/pdf", data)
}

// @Summary Ask employees to fill in an injury report
// @Description Email each recipient a link to the injury report form. Requires API key.
// @Tags Email
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body SendReportEmailRequest true "Recipients and remark"
// @Success 202 {object} map[string]string "Queued"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /email/send-report-email [post]
func (h *Handler) sendReportEmail(c *gin.Context) {
	var input SendReportEmailRequest
	log := h.logger.WithField("method", "sendReportEmail")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.reportService.RequestReports(c.Request.Context(), input.Recipients, input.Remark); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
