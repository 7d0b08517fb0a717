package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/safety_incident_tracker/internal/config"
	"github.com/shenikar/safety_incident_tracker/internal/identifier"
	"github.com/shenikar/safety_incident_tracker/internal/service"
	"github.com/sirupsen/logrus"
)

// Форматы дат, принимаемые от клиента
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

type Handler struct {
	reportService    service.ReportService
	alertService     service.AlertService
	directoryService service.DirectoryService
	equipmentService service.EquipmentService
	statsService     service.StatsService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	reportService service.ReportService,
	alertService service.AlertService,
	directoryService service.DirectoryService,
	equipmentService service.EquipmentService,
	statsService service.StatsService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		reportService:    reportService,
		alertService:     alertService,
		directoryService: directoryService,
		equipmentService: equipmentService,
		statsService:     statsService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// bindAndValidate разбирает тело запроса (JSON или multipart) и проверяет теги validate
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBind(input); err != nil {
		log.WithError(err).Warn("Failed to bind request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// parseDate разбирает дату в часовом поясе отчетов; дата без времени означает начало суток
func (h *Handler) parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, strings.TrimSpace(value), h.cfg.Location())
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (h *Handler) parseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := h.parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func companyIDParam(c *gin.Context) (int, bool) {
	companyID, err := strconv.Atoi(c.Param("id"))
	if err != nil || companyID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return 0, false
	}
	return companyID, true
}

func companyIDQuery(c *gin.Context) (int, bool) {
	companyID, err := strconv.Atoi(c.Query("companyID"))
	if err != nil || companyID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID query parameter is required"})
		return 0, false
	}
	return companyID, true
}

// codeParam проверяет идентификатор вида R0001 в параметре пути
func codeParam(c *gin.Context, name string, prefix identifier.Prefix) (string, bool) {
	id := c.Param(name)
	if _, err := identifier.Parse(prefix, id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
		return "", false
	}
	return id, true
}

func uuidParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
