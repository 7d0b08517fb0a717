package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_incident_tracker/internal/identifier"
)

// @Summary Create an alert
// @Description Create an alert for employees or departments of a company. Accepts JSON or multipart form with "attachments" files. An alert without sentAt, or with sentAt in the past, is dispatched immediately; otherwise it is scheduled. Requires API key.
// @Tags Alerts
// @Accept json,mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Param alert body CreateAlertRequest true "Alert"
// @Success 201 {object} models.Alert
// @Failure 400 {object} map[string]string "Invalid request body, validation error or duplicate alert"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "createAlert").WithField("company_id", companyID)

	var input CreateAlertRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	alert, err := h.DTOToAlert(companyID, input)
	if err != nil {
		respondError(c, log, err)
		return
	}

	attachments, err := formFiles(c, "attachments")
	if err != nil {
		log.WithError(err).Warn("Failed to read uploaded attachments")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	if err := h.alertService.CreateAlert(c.Request.Context(), alert, attachments); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// @Summary List alerts of a company
// @Description List alerts of a company ordered by send time. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Success 200 {array} models.Alert
// @Failure 400 {object} map[string]string "Invalid company ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listAlerts").WithField("company_id", companyID)

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// @Summary Get alert by ID
// @Description Get a single alert by its A#### id. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} models.Alert
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	alertID, ok := codeParam(c, "id", identifier.PrefixAlert)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAlert").WithField("alert_id", alertID)

	alert, err := h.alertService.GetAlert(c.Request.Context(), alertID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// @Summary Update a scheduled alert
// @Description Rename, reschedule or edit a scheduled alert; drop attachments listed in removedAttachments and add new "attachments" files. Dispatched alerts cannot be changed. Requires API key.
// @Tags Alerts
// @Accept json,mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param alert body UpdateAlertRequest true "Changes"
// @Success 200 {object} models.Alert
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert has already been dispatched"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [put]
func (h *Handler) updateAlert(c *gin.Context) {
	alertID, ok := codeParam(c, "id", identifier.PrefixAlert)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateAlert").WithField("alert_id", alertID)

	var input UpdateAlertRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	update, err := h.DTOToAlertUpdate(input)
	if err != nil {
		respondError(c, log, err)
		return
	}

	attachments, err := formFiles(c, "attachments")
	if err != nil {
		log.WithError(err).Warn("Failed to read uploaded attachments")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	alert, err := h.alertService.UpdateAlert(c.Request.Context(), alertID, update, attachments)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}
