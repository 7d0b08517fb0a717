package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/safety_incident_tracker/internal/config"
	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultEpidemicInjuryType - тип травмы для помесячной статистики по умолчанию
const DefaultEpidemicInjuryType = "T0006"

// StatsRepository определяет контракт агрегатов по отчетам
type StatsRepository interface {
	CountByInjuryType(ctx context.Context, companyID int) ([]models.InjuryTypeCount, error)
	CountByWeekday(ctx context.Context, companyID int, from, to time.Time, tz string) ([]models.WeekdayCount, error)
	CountByDay(ctx context.Context, companyID int, injuryTypeID string, from, to time.Time, tz string) ([]models.DateCount, error)
}

// StatsService определяет контракт статистики для дашборда
type StatsService interface {
	InjuryTypeStats(ctx context.Context, companyID int) ([]models.InjuryTypeCount, error)
	WeeklyInjuryStats(ctx context.Context, companyID int) ([]models.WeekdayCount, error)
	PreviousWeeklyInjuryStats(ctx context.Context, companyID int) ([]models.WeekdayCount, error)
	MonthlyInjuryData(ctx context.Context, companyID int, injuryTypeID string) ([]models.DateCount, error)
}

type statsService struct {
	repo   StatsRepository
	logger *logrus.Logger
	cfg    *config.Config
	now    func() time.Time
}

func NewStatsService(repo StatsRepository, logger *logrus.Logger, cfg *config.Config) StatsService {
	return &statsService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// weekBounds возвращает [понедельник 00:00, следующий понедельник 00:00) для недели,
// содержащей t, со сдвигом на offset недель
func weekBounds(t time.Time, loc *time.Location, offset int) (time.Time, time.Time) {
	day := startOfDay(t, loc)
	sinceMonday := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -sinceMonday+7*offset)
	return start, start.AddDate(0, 0, 7)
}

func monthBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, _ := t.In(loc).Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

func (s *statsService) InjuryTypeStats(ctx context.Context, companyID int) ([]models.InjuryTypeCount, error) {
	counts, err := s.repo.CountByInjuryType(ctx, companyID)
	if err != nil {
		s.logger.WithError(err).WithField("company_id", companyID).Error("Failed to get injury type stats")
		return nil, fmt.Errorf("service: could not get injury type stats: %w", err)
	}
	return counts, nil
}

// WeeklyInjuryStats - травмы текущей недели по дням недели
func (s *statsService) WeeklyInjuryStats(ctx context.Context, companyID int) ([]models.WeekdayCount, error) {
	return s.weekly(ctx, companyID, 0)
}

// PreviousWeeklyInjuryStats - травмы прошлой недели по дням недели
func (s *statsService) PreviousWeeklyInjuryStats(ctx context.Context, companyID int) ([]models.WeekdayCount, error) {
	return s.weekly(ctx, companyID, -1)
}

func (s *statsService) weekly(ctx context.Context, companyID, offset int) ([]models.WeekdayCount, error) {
	loc := s.cfg.Location()
	from, to := weekBounds(s.now(), loc, offset)

	counts, err := s.repo.CountByWeekday(ctx, companyID, from, to, loc.String())
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"company_id": companyID,
			"from":       from,
		}).Error("Failed to get weekly injury stats")
		return nil, fmt.Errorf("service: could not get weekly injury stats: %w", err)
	}
	return counts, nil
}

// MonthlyInjuryData - травмы одного типа за текущий месяц по дням
func (s *statsService) MonthlyInjuryData(ctx context.Context, companyID int, injuryTypeID string) ([]models.DateCount, error) {
	if injuryTypeID == "" {
		injuryTypeID = DefaultEpidemicInjuryType
	}
	loc := s.cfg.Location()
	from, to := monthBounds(s.now(), loc)

	counts, err := s.repo.CountByDay(ctx, companyID, injuryTypeID, from, to, loc.String())
	if err != nil {
		s.logger.WithError(err).WithField("company_id", companyID).Error("Failed to get monthly injury data")
		return nil, fmt.Errorf("service: could not get monthly injury data: %w", err)
	}
	return counts, nil
}
