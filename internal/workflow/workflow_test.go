package workflow

import (
	"testing"

	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.ReportStatus
		want     bool
	}{
		{models.StatusOnGoing, models.StatusOnHold, true},
		{models.StatusOnGoing, models.StatusCompleted, true},
		{models.StatusOnGoing, models.StatusOnGoing, false},
		{models.StatusOnHold, models.StatusOnHold, true},
		{models.StatusOnHold, models.StatusOnGoing, true},
		{models.StatusOnHold, models.StatusCompleted, true},
		{models.StatusCompleted, models.StatusOnHold, false},
		{models.StatusCompleted, models.StatusOnGoing, false},
		{models.ReportStatus("Archived"), models.StatusOnGoing, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransition_ReturnsSentinel(t *testing.T) {
	err := Transition(models.StatusCompleted, models.StatusOnHold)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	assert.NoError(t, Transition(models.StatusOnGoing, models.StatusOnHold))
}

func TestAllowedFrom(t *testing.T) {
	assert.Empty(t, AllowedFrom(models.StatusCompleted))
	assert.ElementsMatch(t,
		[]models.ReportStatus{models.StatusOnHold, models.StatusCompleted},
		AllowedFrom(models.StatusOnGoing))
	assert.True(t, Valid(models.StatusOnHold))
	assert.False(t, Valid("Draft"))
}
