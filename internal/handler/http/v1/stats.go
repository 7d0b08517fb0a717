package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Injury counts by injury type
// @Description Count permanent reports of a company grouped by injury type. Requires API key.
// @Tags Stats
// @Produce json
// @Security ApiKeyAuth
// @Param companyID query int true "Company ID"
// @Success 200 {array} models.InjuryTypeCount
// @Failure 400 {object} map[string]string "Missing companyID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /injury-type-stats [get]
func (h *Handler) injuryTypeStats(c *gin.Context) {
	companyID, ok := companyIDQuery(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "injuryTypeStats").WithField("company_id", companyID)

	counts, err := h.statsService.InjuryTypeStats(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary Injuries of the current week
// @Description Count injuries of the current week (Monday to Sunday) by day of week, 1 is Sunday. Requires API key.
// @Tags Stats
// @Produce json
// @Security ApiKeyAuth
// @Param companyID query int true "Company ID"
// @Success 200 {array} models.WeekdayCount
// @Failure 400 {object} map[string]string "Missing companyID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weekly-injury-stats [get]
func (h *Handler) weeklyInjuryStats(c *gin.Context) {
	companyID, ok := companyIDQuery(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "weeklyInjuryStats").WithField("company_id", companyID)

	counts, err := h.statsService.WeeklyInjuryStats(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary Injuries of the previous week
// @Description Count injuries of the previous week by day of week, 1 is Sunday. Requires API key.
// @Tags Stats
// @Produce json
// @Security ApiKeyAuth
// @Param companyID query int true "Company ID"
// @Success 200 {array} models.WeekdayCount
// @Failure 400 {object} map[string]string "Missing companyID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /previous-weekly-injury-stats [get]
func (h *Handler) previousWeeklyInjuryStats(c *gin.Context) {
	companyID, ok := companyIDQuery(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "previousWeeklyInjuryStats").WithField("company_id", companyID)

	counts, err := h.statsService.PreviousWeeklyInjuryStats(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary Daily injuries of one type in the current month
// @Description Count injuries of one injury type per day of the current month. Defaults to T0006. Requires API key.
// @Tags Stats
// @Produce json
// @Security ApiKeyAuth
// @Param companyID query int true "Company ID"
// @Param injuryTypeID query string false "Injury type ID" default(T0006)
// @Success 200 {array} models.DateCount
// @Failure 400 {object} map[string]string "Missing companyID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /monthly-epidemic-data [get]
func (h *Handler) monthlyEpidemicData(c *gin.Context) {
	companyID, ok := companyIDQuery(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "monthlyEpidemicData").WithField("company_id", companyID)

	counts, err := h.statsService.MonthlyInjuryData(c.Request.Context(), companyID, c.Query("injuryTypeID"))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
