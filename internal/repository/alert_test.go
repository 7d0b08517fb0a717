package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAlert(t *testing.T, ctx context.Context, repo *AlertRepository, name string, sentAt time.Time) string {
	t.Helper()
	alert := &models.Alert{
		AlertName:      name,
		CompanyID:      7,
		SentAt:         sentAt,
		Description:    "Floor in warehouse B is wet",
		Type:           "Safety",
		RecipientType:  models.RecipientEmployee,
		Recipients:     []string{"100400001"},
		DeliveryStatus: models.DeliveryScheduled,
	}
	require.NoError(t, repo.Create(ctx, alert))
	return alert.AlertID
}

// Оповещения, рассылка которых постоянно падает, не должны занимать всю пачку
func TestClaimDueAlerts_FailingAlertsDoNotStarveNewOnes(t *testing.T) {
	// Подготовка
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAlertRepository(db).(*AlertRepository)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	broken1 := createTestAlert(t, ctx, repo, "Broken 1", now.Add(-3*time.Hour))
	broken2 := createTestAlert(t, ctx, repo, "Broken 2", now.Add(-2*time.Hour))
	failing := map[string]bool{broken1: true, broken2: true}

	var handled []string
	handle := func(_ context.Context, a *models.Alert) error {
		handled = append(handled, a.AlertID)
		if failing[a.AlertID] {
			return errors.New("smtp unavailable")
		}
		return nil
	}

	// Действие: первая пачка целиком из сбойных оповещений
	n, err := repo.ClaimDueAlerts(ctx, now, 2, handle)

	// Проверки
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, []string{broken1, broken2}, handled)

	stored, err := repo.GetByID(ctx, broken1)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.DispatchAttempts)
	require.NotNil(t, stored.LastAttemptAt)
	assert.True(t, stored.LastAttemptAt.Equal(now))
	assert.Equal(t, models.DeliveryScheduled, stored.DeliveryStatus)

	// Действие: появилось новое оповещение с более поздним сроком
	fresh := createTestAlert(t, ctx, repo, "Fresh", now.Add(-time.Minute))
	handled = nil
	n, err = repo.ClaimDueAlerts(ctx, now.Add(time.Minute), 2, handle)

	// Проверки
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{fresh, broken1}, handled)

	stored, err = repo.GetByID(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryDispatched, stored.DeliveryStatus)
	assert.Equal(t, 0, stored.DispatchAttempts)

	stored, err = repo.GetByID(ctx, broken1)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.DispatchAttempts)
}

func TestClaimAlert_SkipsDispatched(t *testing.T) {
	// Подготовка
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAlertRepository(db).(*AlertRepository)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	alertID := createTestAlert(t, ctx, repo, "Drill", now.Add(-time.Hour))
	calls := 0
	handle := func(context.Context, *models.Alert) error {
		calls++
		return nil
	}

	// Действие
	first, err := repo.ClaimAlert(ctx, alertID, now, handle)
	require.NoError(t, err)
	second, err := repo.ClaimAlert(ctx, alertID, now, handle)
	require.NoError(t, err)

	// Проверки
	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, 1, calls)
}
