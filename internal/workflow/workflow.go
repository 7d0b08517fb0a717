// Package workflow описывает допустимые переходы статуса отчета о травме.
package workflow

import (
	"fmt"

	"github.com/shenikar/safety_incident_tracker/internal/models"
)

// On hold -> On hold разрешен: повторный отказ оставляет статус прежним.
// On hold -> On going - повторная подача после исправления.
// Completed - конечное состояние.
var allowedTransitions = map[models.ReportStatus][]models.ReportStatus{
	models.StatusOnGoing:   {models.StatusOnHold, models.StatusCompleted},
	models.StatusOnHold:    {models.StatusOnHold, models.StatusOnGoing, models.StatusCompleted},
	models.StatusCompleted: {},
}

// Valid сообщает, что статус входит в перечень известных
func Valid(status models.ReportStatus) bool {
	_, ok := allowedTransitions[status]
	return ok
}

// CanTransition проверяет, разрешен ли переход from -> to
func CanTransition(from, to models.ReportStatus) bool {
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Transition возвращает ErrInvalidTransition, если переход запрещен
func Transition(from, to models.ReportStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %q -> %q", models.ErrInvalidTransition, from, to)
	}
	return nil
}

// AllowedFrom возвращает статусы, в которые можно перейти из from
func AllowedFrom(from models.ReportStatus) []models.ReportStatus {
	allowed := allowedTransitions[from]
	out := make([]models.ReportStatus, len(allowed))
	copy(out, allowed)
	return out
}
