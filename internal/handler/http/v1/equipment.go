package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_incident_tracker/internal/export"
	"github.com/shenikar/safety_incident_tracker/internal/identifier"
)

// @Summary Register equipment
// @Description Register a piece of equipment with its first inspection. Requires API key.
// @Tags Equipment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Param equipment body CreateEquipmentRequest true "Equipment"
// @Success 201 {object} EquipmentResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or duplicate equipment"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/equipments [post]
func (h *Handler) createEquipment(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "createEquipment").WithField("company_id", companyID)

	var input CreateEquipmentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	equipment, err := h.DTOToEquipment(companyID, input)
	if err != nil {
		respondError(c, log, err)
		return
	}

	if err := h.equipmentService.CreateEquipment(c.Request.Context(), equipment); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToEquipmentResponse(equipment, time.Now()))
}

// @Summary List equipment of a company
// @Tags Equipment
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Success 200 {array} EquipmentResponse
// @Failure 400 {object} map[string]string "Invalid company ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/equipments [get]
func (h *Handler) listEquipments(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listEquipments").WithField("company_id", companyID)

	equipments, err := h.equipmentService.ListEquipments(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEquipmentResponses(equipments, time.Now()))
}

// @Summary Get equipment by ID
// @Tags Equipment
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Equipment ID"
// @Success 200 {object} EquipmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Equipment not found"
// @Router /equipments/{id} [get]
func (h *Handler) getEquipment(c *gin.Context) {
	equipmentID, ok := codeParam(c, "id", identifier.PrefixEquipment)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getEquipment").WithField("equipment_id", equipmentID)

	equipment, err := h.equipmentService.GetEquipment(c.Request.Context(), equipmentID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToEquipmentResponse(equipment, time.Now()))
}

// @Summary Record an inspection
// @Description Record the result of an equipment inspection. Requires API key.
// @Tags Equipment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Equipment ID"
// @Param inspection body InspectionRequest true "Inspection result"
// @Success 200 {object} EquipmentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Equipment not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /equipments/{id} [put]
func (h *Handler) recordInspection(c *gin.Context) {
	equipmentID, ok := codeParam(c, "id", identifier.PrefixEquipment)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "recordInspection").WithField("equipment_id", equipmentID)

	var input InspectionRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	rec, err := h.DTOToInspection(input)
	if err != nil {
		respondError(c, log, err)
		return
	}

	equipment, err := h.equipmentService.RecordInspection(c.Request.Context(), equipmentID, rec)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToEquipmentResponse(equipment, time.Now()))
}

// @Summary Delete equipment
// @Tags Equipment
// @Security ApiKeyAuth
// @Param id path string true "Equipment ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Equipment not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /equipments/{id} [delete]
func (h *Handler) deleteEquipment(c *gin.Context) {
	equipmentID, ok := codeParam(c, "id", identifier.PrefixEquipment)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteEquipment").WithField("equipment_id", equipmentID)

	if err := h.equipmentService.DeleteEquipment(c.Request.Context(), equipmentID); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Download an inspection label
// @Description Render a printable PDF label with a QR code linking to the equipment page. Requires API key.
// @Tags Equipment
// @Produce application/pdf
// @Security ApiKeyAuth
// @Param id path string true "Equipment ID"
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Equipment not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /equipments/{id}/label [get]
func (h *Handler) getEquipmentLabel(c *gin.Context) {
	equipmentID, ok := codeParam(c, "id", identifier.PrefixEquipment)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getEquipmentLabel").WithField("equipment_id", equipmentID)

	equipment, err := h.equipmentService.GetEquipment(c.Request.Context(), equipmentID)
	if err != nil {
		respondError(c, log, err)
		return
	}

	data, err := export.EquipmentLabel(equipment, h.cfg.AppBaseURL)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s-label.pdf"`, equipment.EquipmentID))
	c.Data(http.StatusOK, "application/pdf", data)
}
