package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_incident_tracker/internal/identifier"
	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/shenikar/safety_incident_tracker/internal/service"
	"github.com/shenikar/safety_incident_tracker/pkg/postgres"
)

const alertColumns = `
	alert_id,
	alert_name,
	company_id,
	sent_at,
	description,
	type,
	recipient_type,
	recipients,
	cc,
	attachments,
	delivery_status,
	dispatched_at,
	created_at,
	dispatch_attempts,
	last_attempt_at`

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	a := &models.Alert{}
	err := row.Scan(
		&a.AlertID,
		&a.AlertName,
		&a.CompanyID,
		&a.SentAt,
		&a.Description,
		&a.Type,
		&a.RecipientType,
		&a.Recipients,
		&a.CC,
		&a.Attachments,
		&a.DeliveryStatus,
		&a.DispatchedAt,
		&a.CreatedAt,
		&a.DispatchAttempts,
		&a.LastAttemptAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create выдает номер A#### и сохраняет оповещение вместе со связями получателей
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	return postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		alertID, err := nextID(ctx, tx, identifier.PrefixAlert)
		if err != nil {
			return err
		}
		alert.AlertID = alertID

		query := `
			INSERT INTO alerts (
				alert_id, alert_name, company_id, sent_at, description, type,
				recipient_type, recipients, cc, attachments, delivery_status
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING created_at;
		`
		err = tx.QueryRow(ctx, query,
			alert.AlertID,
			alert.AlertName,
			alert.CompanyID,
			alert.SentAt,
			alert.Description,
			alert.Type,
			string(alert.RecipientType),
			nonNil(alert.Recipients),
			alert.CC,
			nonNil(alert.Attachments),
			string(alert.DeliveryStatus),
		).Scan(&alert.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("alert %q: %w", alert.AlertName, models.ErrDuplicate)
			}
			return fmt.Errorf("failed to create alert: %w", err)
		}

		// Связи создаются только для получателей, существующих в компании
		var linkQuery string
		switch alert.RecipientType {
		case models.RecipientEmployee:
			linkQuery = `
				INSERT INTO employee_alerts (employee_id, alert_id)
				SELECT employee_id, $2 FROM employees
				WHERE employee_id::text = ANY($1) AND company_id = $3
				ON CONFLICT DO NOTHING;
			`
		case models.RecipientDepartment:
			linkQuery = `
				INSERT INTO department_alerts (department_id, alert_id)
				SELECT department_id, $2 FROM departments
				WHERE department_id = ANY($1) AND company_id = $3
				ON CONFLICT DO NOTHING;
			`
		default:
			return fmt.Errorf("%w: unknown recipient type %q", models.ErrValidation, alert.RecipientType)
		}
		if _, err := tx.Exec(ctx, linkQuery, nonNil(alert.Recipients), alert.AlertID, alert.CompanyID); err != nil {
			return fmt.Errorf("failed to link alert recipients: %w", err)
		}
		return nil
	})
}

// FindDuplicate ищет оповещение с тем же названием и описанием
func (r *AlertRepository) FindDuplicate(ctx context.Context, alertName, description string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM alerts WHERE alert_name = $1 AND description = $2);`,
		alertName, description,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate alert: %w", err)
	}
	return exists, nil
}

func (r *AlertRepository) GetByID(ctx context.Context, alertID string) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE alert_id = $1;`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, alertID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert %s: %w", alertID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// ListByCompany возвращает оповещения компании по возрастанию времени отправки
func (r *AlertRepository) ListByCompany(ctx context.Context, companyID int) ([]*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE company_id = $1 ORDER BY sent_at;`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return collectAlerts(rows)
}

func collectAlerts(rows pgx.Rows) ([]*models.Alert, error) {
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alerts iteration: %w", err)
	}
	return alerts, nil
}

// Update сохраняет изменения оповещения, пока оно не разослано
func (r *AlertRepository) Update(ctx context.Context, alert *models.Alert) error {
	query := `
		UPDATE alerts SET
			alert_name = $1,
			description = $2,
			cc = $3,
			sent_at = $4,
			attachments = $5
		WHERE alert_id = $6 AND delivery_status = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		alert.AlertName,
		alert.Description,
		alert.CC,
		alert.SentAt,
		nonNil(alert.Attachments),
		alert.AlertID,
		string(models.DeliveryScheduled),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("alert %q: %w", alert.AlertName, models.ErrDuplicate)
		}
		return fmt.Errorf("failed to update alert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, alert.AlertID); err != nil {
			return err
		}
		return fmt.Errorf("%w: alert %s has already been dispatched", models.ErrInvalidTransition, alert.AlertID)
	}
	return nil
}

// RecipientEmails возвращает адреса получателей на момент рассылки
func (r *AlertRepository) RecipientEmails(ctx context.Context, alert *models.Alert) ([]string, error) {
	var query string
	switch alert.RecipientType {
	case models.RecipientEmployee:
		query = `
			SELECT DISTINCT e.email
			FROM employee_alerts ea
			JOIN employees e ON e.employee_id = ea.employee_id
			WHERE ea.alert_id = $1 AND e.company_id = $2
			ORDER BY e.email;
		`
	case models.RecipientDepartment:
		query = `
			SELECT DISTINCT e.email
			FROM department_alerts da
			JOIN employees e ON e.department_id = da.department_id
			WHERE da.alert_id = $1 AND e.company_id = $2
			ORDER BY e.email;
		`
	default:
		return nil, fmt.Errorf("%w: unknown recipient type %q", models.ErrValidation, alert.RecipientType)
	}

	rows, err := r.db.Query(ctx, query, alert.AlertID, alert.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve alert recipients: %w", err)
	}
	emails, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan alert recipients: %w", err)
	}
	return emails, nil
}

// ClaimDueAlerts блокирует до limit запланированных оповещений со сроком <= now
// (FOR UPDATE SKIP LOCKED), вызывает handle для каждого и помечает успешно обработанные как разосланные.
// Неудачная попытка записывается в dispatch_attempts и last_attempt_at, а сортировка
// ставит такие оповещения после еще не опробованных. Возвращает число разосланных.
func (r *AlertRepository) ClaimDueAlerts(ctx context.Context, now time.Time, limit int, handle models.AlertHandler) (int, error) {
	query := `SELECT ` + alertColumns + `
		FROM alerts
		WHERE delivery_status = $1 AND sent_at <= $2
		ORDER BY last_attempt_at NULLS FIRST, sent_at
		LIMIT $3
		FOR UPDATE SKIP LOCKED;
	`
	return r.claim(ctx, now, handle, query, string(models.DeliveryScheduled), now, limit)
}

// ClaimAlert то же самое для одного оповещения. Уже захваченное или разосланное пропускается.
func (r *AlertRepository) ClaimAlert(ctx context.Context, alertID string, now time.Time, handle models.AlertHandler) (bool, error) {
	query := `SELECT ` + alertColumns + `
		FROM alerts
		WHERE alert_id = $1 AND delivery_status = $2 AND sent_at <= $3
		FOR UPDATE SKIP LOCKED;
	`
	n, err := r.claim(ctx, now, handle, query, alertID, string(models.DeliveryScheduled), now)
	return n > 0, err
}

func (r *AlertRepository) claim(ctx context.Context, now time.Time, handle models.AlertHandler, query string, args ...any) (int, error) {
	dispatched := 0
	var handleErrs []error

	err := postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to claim due alerts: %w", err)
		}
		alerts, err := collectAlerts(rows)
		if err != nil {
			return err
		}

		for _, alert := range alerts {
			if err := handle(ctx, alert); err != nil {
				handleErrs = append(handleErrs, fmt.Errorf("alert %s: %w", alert.AlertID, err))
				_, err := tx.Exec(ctx, `
					UPDATE alerts SET dispatch_attempts = dispatch_attempts + 1, last_attempt_at = $1
					WHERE alert_id = $2;
				`, now, alert.AlertID)
				if err != nil {
					return fmt.Errorf("failed to record dispatch attempt for alert %s: %w", alert.AlertID, err)
				}
				alert.DispatchAttempts++
				alert.LastAttemptAt = &now
				continue
			}
			_, err := tx.Exec(ctx, `
				UPDATE alerts SET delivery_status = $1, dispatched_at = $2
				WHERE alert_id = $3;
			`, string(models.DeliveryDispatched), now, alert.AlertID)
			if err != nil {
				return fmt.Errorf("failed to mark alert %s dispatched: %w", alert.AlertID, err)
			}
			alert.DeliveryStatus = models.DeliveryDispatched
			alert.DispatchedAt = &now
			dispatched++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return dispatched, errors.Join(handleErrs...)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
