package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/shenikar/safety_incident_tracker/internal/service"
)

// StatsRepository считает агрегаты по постоянным отчетам
type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) service.StatsRepository {
	return &StatsRepository{db: db}
}

// CountByInjuryType возвращает число отчетов компании по каждому типу травмы
func (r *StatsRepository) CountByInjuryType(ctx context.Context, companyID int) ([]models.InjuryTypeCount, error) {
	query := `
		SELECT injury_type_id, COUNT(*)
		FROM reports
		WHERE company_id = $1
		GROUP BY injury_type_id
		ORDER BY injury_type_id;
	`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports by injury type: %w", err)
	}
	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InjuryTypeCount, error) {
		var c models.InjuryTypeCount
		err := row.Scan(&c.InjuryTypeID, &c.Count)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan injury type counts: %w", err)
	}
	return counts, nil
}

// CountByWeekday группирует травмы в [from, to) по дню недели в часовом поясе tz (1 - воскресенье)
func (r *StatsRepository) CountByWeekday(ctx context.Context, companyID int, from, to time.Time, tz string) ([]models.WeekdayCount, error) {
	query := `
		SELECT EXTRACT(DOW FROM date_of_injury AT TIME ZONE $4)::INTEGER + 1 AS day, COUNT(*)
		FROM reports
		WHERE company_id = $1 AND date_of_injury >= $2 AND date_of_injury < $3
		GROUP BY day
		ORDER BY day;
	`
	rows, err := r.db.Query(ctx, query, companyID, from, to, tz)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports by weekday: %w", err)
	}
	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.WeekdayCount, error) {
		var c models.WeekdayCount
		err := row.Scan(&c.Day, &c.Count)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan weekday counts: %w", err)
	}
	return counts, nil
}

// CountByDay группирует травмы одного типа в [from, to) по календарным дням в часовом поясе tz
func (r *StatsRepository) CountByDay(ctx context.Context, companyID int, injuryTypeID string, from, to time.Time, tz string) ([]models.DateCount, error) {
	query := `
		SELECT to_char(date_of_injury AT TIME ZONE $5, 'YYYY-MM-DD') AS day, COUNT(*)
		FROM reports
		WHERE company_id = $1 AND injury_type_id = $2 AND date_of_injury >= $3 AND date_of_injury < $4
		GROUP BY day
		ORDER BY day;
	`
	rows, err := r.db.Query(ctx, query, companyID, injuryTypeID, from, to, tz)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports by day: %w", err)
	}
	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DateCount, error) {
		var c models.DateCount
		err := row.Scan(&c.Date, &c.Count)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily counts: %w", err)
	}
	return counts, nil
}
