package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// respondError сопоставляет доменную ошибку с HTTP-статусом
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrDuplicate):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidTransition):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	log.WithError(err).Warn("Request rejected")
	c.JSON(status, gin.H{"error": err.Error()})
}
