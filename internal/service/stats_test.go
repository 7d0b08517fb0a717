package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/shenikar/safety_incident_tracker/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStatsService(t *testing.T) (*statsService, *mocks.MockStatsRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockStatsRepository(ctrl)

	svc := NewStatsService(repoMock, newTestLogger(), newTestConfig()).(*statsService)
	svc.now = func() time.Time { return fixedNow } // четверг, 14 марта 2024
	return svc, repoMock
}

func vancouver(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Vancouver")
	require.NoError(t, err)
	return loc
}

func TestWeekBounds(t *testing.T) {
	loc := vancouver(t)

	testCases := []struct {
		name      string
		now       time.Time
		offset    int
		wantStart time.Time
	}{
		{
			name:      "Четверг",
			now:       time.Date(2024, 3, 14, 10, 0, 0, 0, loc),
			wantStart: time.Date(2024, 3, 11, 0, 0, 0, 0, loc),
		},
		{
			name:      "Понедельник",
			now:       time.Date(2024, 3, 11, 0, 0, 0, 0, loc),
			wantStart: time.Date(2024, 3, 11, 0, 0, 0, 0, loc),
		},
		{
			name:      "Воскресенье относится к уходящей неделе",
			now:       time.Date(2024, 3, 17, 23, 59, 0, 0, loc),
			wantStart: time.Date(2024, 3, 11, 0, 0, 0, 0, loc),
		},
		{
			name:      "Прошлая неделя через переход на летнее время",
			now:       time.Date(2024, 3, 14, 10, 0, 0, 0, loc),
			offset:    -1,
			wantStart: time.Date(2024, 3, 4, 0, 0, 0, 0, loc),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := weekBounds(tc.now, loc, tc.offset)

			assert.True(t, start.Equal(tc.wantStart), "start = %s", start)
			assert.True(t, end.Equal(tc.wantStart.AddDate(0, 0, 7)), "end = %s", end)
			assert.Equal(t, time.Monday, start.Weekday())
		})
	}
}

func TestWeeklyInjuryStats(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestStatsService(t)
	ctx := context.Background()
	loc := vancouver(t)
	expected := []models.WeekdayCount{{Day: 2, Count: 1}, {Day: 5, Count: 3}}

	// Ожидания
	repoMock.EXPECT().
		CountByWeekday(ctx, 7,
			timeEq{time.Date(2024, 3, 11, 0, 0, 0, 0, loc)},
			timeEq{time.Date(2024, 3, 18, 0, 0, 0, 0, loc)},
			"America/Vancouver").
		Return(expected, nil)

	// Действие
	counts, err := svc.WeeklyInjuryStats(ctx, 7)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, counts)
}

func TestPreviousWeeklyInjuryStats(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestStatsService(t)
	ctx := context.Background()
	loc := vancouver(t)

	// Ожидания
	repoMock.EXPECT().
		CountByWeekday(ctx, 7,
			timeEq{time.Date(2024, 3, 4, 0, 0, 0, 0, loc)},
			timeEq{time.Date(2024, 3, 11, 0, 0, 0, 0, loc)},
			"America/Vancouver").
		Return([]models.WeekdayCount{}, nil)

	// Действие
	counts, err := svc.PreviousWeeklyInjuryStats(ctx, 7)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestMonthlyInjuryData_DefaultInjuryType(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestStatsService(t)
	ctx := context.Background()
	loc := vancouver(t)
	expected := []models.DateCount{{Date: "2024-03-02", Count: 2}}

	// Ожидания
	repoMock.EXPECT().
		CountByDay(ctx, 7, DefaultEpidemicInjuryType,
			timeEq{time.Date(2024, 3, 1, 0, 0, 0, 0, loc)},
			timeEq{time.Date(2024, 4, 1, 0, 0, 0, 0, loc)},
			"America/Vancouver").
		Return(expected, nil)

	// Действие
	counts, err := svc.MonthlyInjuryData(ctx, 7, "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, counts)
}

func TestInjuryTypeStats_RepositoryError(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestStatsService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().CountByInjuryType(ctx, 7).Return(nil, errors.New("db is down"))

	// Действие
	counts, err := svc.InjuryTypeStats(ctx, 7)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, counts)
	assert.ErrorContains(t, err, "could not get injury type stats")
}
