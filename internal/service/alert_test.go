package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/shenikar/safety_incident_tracker/internal/notify"
	notify_mocks "github.com/shenikar/safety_incident_tracker/internal/notify/mocks"
	"github.com/shenikar/safety_incident_tracker/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAlertService(t *testing.T) (*alertService, *mocks.MockAlertRepository, *mocks.MockFileStorage, *notify_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	filesMock := mocks.NewMockFileStorage(ctrl)
	publisherMock := notify_mocks.NewMockPublisher(ctrl)

	svc := NewAlertService(repoMock, filesMock, publisherMock, newTestLogger(), newTestConfig()).(*alertService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repoMock, filesMock, publisherMock
}

func newAlert() *models.Alert {
	return &models.Alert{
		AlertName:     " Wet floor ",
		CompanyID:     7,
		Description:   "Floor in warehouse B is wet",
		Type:          "Safety",
		RecipientType: models.RecipientDepartment,
		Recipients:    []string{"D0001"},
	}
}

// claimWith эмулирует захват оповещения репозиторием: вызывает обработчик для alert
func claimWith(alert *models.Alert) func(context.Context, string, time.Time, models.AlertHandler) (bool, error) {
	return func(ctx context.Context, _ string, _ time.Time, handle models.AlertHandler) (bool, error) {
		if err := handle(ctx, alert); err != nil {
			return false, err
		}
		return true, nil
	}
}

func TestCreateAlert_DispatchesImmediately(t *testing.T) {
	// Подготовка
	svc, repoMock, _, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	alert := newAlert()
	var sent []notify.Notification

	// Ожидания
	repoMock.EXPECT().FindDuplicate(ctx, "Wet floor", alert.Description).Return(false, nil)
	repoMock.EXPECT().
		Create(ctx, alert).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.AlertID = "A0001"
			return nil
		})
	repoMock.EXPECT().ClaimAlert(ctx, "A0001", fixedNow, gomock.Any()).DoAndReturn(claimWith(alert))
	repoMock.EXPECT().RecipientEmails(ctx, alert).Return([]string{"a@helpmet.test", "b@helpmet.test"}, nil)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n notify.Notification) error {
			sent = append(sent, n)
			return nil
		}).
		Times(2)

	// Действие
	err := svc.CreateAlert(ctx, alert, nil)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Wet floor", alert.AlertName)
	assert.Equal(t, fixedNow, alert.SentAt)
	assert.Equal(t, models.DeliveryDispatched, alert.DeliveryStatus)
	require.NotNil(t, alert.DispatchedAt)
	require.Len(t, sent, 2)
	assert.Equal(t, notify.KindAlert, sent[0].Kind)
	assert.Equal(t, "A0001", sent[1].AlertID)
}

func TestCreateAlert_ScheduledForLater(t *testing.T) {
	// Подготовка
	svc, repoMock, filesMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alert := newAlert()
	alert.SentAt = fixedNow.Add(2 * time.Hour)
	upload := models.Upload{Filename: "plan.pdf"}

	// Ожидания
	repoMock.EXPECT().FindDuplicate(ctx, gomock.Any(), gomock.Any()).Return(false, nil)
	filesMock.EXPECT().Save(ctx, "alert", upload).Return("/uploads/alert_1.pdf", nil)
	repoMock.EXPECT().Create(ctx, alert).Return(nil)
	repoMock.EXPECT().ClaimAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.CreateAlert(ctx, alert, []models.Upload{upload})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryScheduled, alert.DeliveryStatus)
	assert.Equal(t, []string{"/uploads/alert_1.pdf"}, alert.Attachments)
}

func TestCreateAlert_DispatchFailureKeepsAlertScheduled(t *testing.T) {
	// Подготовка
	svc, repoMock, _, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	alert := newAlert()

	// Ожидания
	repoMock.EXPECT().FindDuplicate(ctx, gomock.Any(), gomock.Any()).Return(false, nil)
	repoMock.EXPECT().Create(ctx, alert).Return(nil)
	repoMock.EXPECT().ClaimAlert(ctx, gomock.Any(), fixedNow, gomock.Any()).DoAndReturn(claimWith(alert))
	repoMock.EXPECT().RecipientEmails(ctx, alert).Return([]string{"a@helpmet.test"}, nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis is down"))

	// Действие
	err := svc.CreateAlert(ctx, alert, nil)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryScheduled, alert.DeliveryStatus)
	assert.Nil(t, alert.DispatchedAt)
}

func TestCreateAlert_Duplicate(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().FindDuplicate(ctx, gomock.Any(), gomock.Any()).Return(true, nil)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.CreateAlert(ctx, newAlert(), nil)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestCreateAlert_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(a *models.Alert)
	}{
		{name: "Нет получателей", mutate: func(a *models.Alert) { a.Recipients = nil }},
		{name: "Неизвестный тип получателя", mutate: func(a *models.Alert) { a.RecipientType = "team" }},
		{name: "Сотрудник с нечисловым id", mutate: func(a *models.Alert) {
			a.RecipientType = models.RecipientEmployee
			a.Recipients = []string{"abc"}
		}},
		{name: "Пустое название", mutate: func(a *models.Alert) { a.AlertName = "  " }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Подготовка
			svc, _, _, _ := newTestAlertService(t)
			alert := newAlert()
			tc.mutate(alert)

			// Действие
			err := svc.CreateAlert(context.Background(), alert, nil)

			// Проверки
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestUpdateAlert_ReplacesAttachments(t *testing.T) {
	// Подготовка
	svc, repoMock, filesMock, _ := newTestAlertService(t)
	ctx := context.Background()
	stored := newAlert()
	stored.AlertID = "A0002"
	stored.SentAt = fixedNow.Add(time.Hour)
	stored.DeliveryStatus = models.DeliveryScheduled
	stored.Attachments = []string{"/uploads/old.pdf"}
	upload := models.Upload{Filename: "new.pdf"}
	name := "Wet floor (updated)"
	update := models.AlertUpdate{AlertName: &name, RemovedAttachments: []string{"/uploads/old.pdf"}}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "A0002").Return(stored, nil)
	filesMock.EXPECT().Save(ctx, "alert", upload).Return("/uploads/new.pdf", nil)
	repoMock.EXPECT().Update(ctx, stored).Return(nil)
	filesMock.EXPECT().Delete(ctx, "/uploads/old.pdf").Return(nil)

	// Действие
	updated, err := svc.UpdateAlert(ctx, "A0002", update, []models.Upload{upload})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, name, updated.AlertName)
	assert.Equal(t, []string{"/uploads/new.pdf"}, updated.Attachments)
	assert.Equal(t, models.DeliveryScheduled, updated.DeliveryStatus)
}

func TestUpdateAlert_DispatchedIsImmutable(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestAlertService(t)
	ctx := context.Background()
	stored := newAlert()
	stored.DeliveryStatus = models.DeliveryDispatched
	cc := "boss@helpmet.test"

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "A0003").Return(stored, nil)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.UpdateAlert(ctx, "A0003", models.AlertUpdate{CC: &cc}, nil)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestUpdateAlert_MovedToPastDispatches(t *testing.T) {
	// Подготовка
	svc, repoMock, _, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	stored := newAlert()
	stored.AlertID = "A0004"
	stored.SentAt = fixedNow.Add(24 * time.Hour)
	stored.DeliveryStatus = models.DeliveryScheduled
	sentAt := fixedNow.Add(-time.Minute)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "A0004").Return(stored, nil)
	repoMock.EXPECT().Update(ctx, stored).Return(nil)
	repoMock.EXPECT().ClaimAlert(ctx, "A0004", fixedNow, gomock.Any()).DoAndReturn(claimWith(stored))
	repoMock.EXPECT().RecipientEmails(ctx, stored).Return([]string{"a@helpmet.test"}, nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	updated, err := svc.UpdateAlert(ctx, "A0004", models.AlertUpdate{SentAt: &sentAt}, nil)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryDispatched, updated.DeliveryStatus)
}

func TestDispatchDueAlerts(t *testing.T) {
	// Подготовка
	svc, repoMock, _, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	due := []*models.Alert{newAlert(), newAlert()}
	due[0].AlertID, due[1].AlertID = "A0005", "A0006"

	// Ожидания
	repoMock.EXPECT().
		ClaimDueAlerts(ctx, fixedNow, 10, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ time.Time, _ int, handle models.AlertHandler) (int, error) {
			n := 0
			var errs []error
			for _, a := range due {
				if err := handle(ctx, a); err != nil {
					errs = append(errs, err)
					continue
				}
				n++
			}
			return n, errors.Join(errs...)
		})
	repoMock.EXPECT().RecipientEmails(ctx, due[0]).Return([]string{"a@helpmet.test"}, nil)
	repoMock.EXPECT().RecipientEmails(ctx, due[1]).Return(nil, errors.New("connection reset"))
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	n, err := svc.DispatchDueAlerts(ctx)

	// Проверки
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.ErrorContains(t, err, "connection reset")
}
