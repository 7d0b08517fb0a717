package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_incident_tracker/internal/identifier"
	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/shenikar/safety_incident_tracker/internal/service"
	"github.com/shenikar/safety_incident_tracker/internal/workflow"
	"github.com/shenikar/safety_incident_tracker/pkg/postgres"
)

const pendingColumns = `
	p.id,
	p.company_id,
	p.report_by,
	p.injured_employee_id,
	p.date_of_injury,
	p.report_date,
	p.location_id,
	p.injury_type_id,
	p.severity,
	p.description,
	p.images,
	p.witness_id,
	p.status,
	p.hold_reason,
	p.review_date`

const reportColumns = `
	p.report_id,
	p.source_pending_id,
	p.company_id,
	p.report_by,
	p.injured_employee_id,
	p.date_of_injury,
	p.report_date,
	p.location_id,
	p.injury_type_id,
	p.severity,
	p.description,
	p.images,
	p.witness_id,
	p.status,
	p.review_date,
	p.created_at`

// Имена и роли участников, название локации
const partiesColumns = `
	COALESCE(rb.first_name, ''),
	COALESCE(rb.role, ''),
	COALESCE(ie.first_name, ''),
	COALESCE(ie.role, ''),
	COALESCE(w.first_name, ''),
	COALESCE(w.role, ''),
	COALESCE(l.location_name, '')`

const partiesJoins = `
	LEFT JOIN employees rb ON rb.employee_id = p.report_by
	LEFT JOIN employees ie ON ie.employee_id = p.injured_employee_id
	LEFT JOIN employees w ON w.employee_id = p.witness_id
	LEFT JOIN locations l ON l.location_id = p.location_id`

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func scanPending(row pgx.Row, withParties bool) (*models.PendingReport, error) {
	p := &models.PendingReport{}
	dest := []any{
		&p.ID,
		&p.CompanyID,
		&p.ReportBy,
		&p.InjuredEmployeeID,
		&p.DateOfInjury,
		&p.ReportDate,
		&p.LocationID,
		&p.InjuryTypeID,
		&p.Severity,
		&p.Description,
		&p.Images,
		&p.WitnessID,
		&p.Status,
		&p.HoldReason,
		&p.ReviewDate,
	}
	if withParties {
		dest = append(dest, partiesDest(&p.Parties)...)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return p, nil
}

func scanReport(row pgx.Row) (*models.Report, error) {
	r := &models.Report{}
	dest := []any{
		&r.ReportID,
		&r.SourcePendingID,
		&r.CompanyID,
		&r.ReportBy,
		&r.InjuredEmployeeID,
		&r.DateOfInjury,
		&r.ReportDate,
		&r.LocationID,
		&r.InjuryTypeID,
		&r.Severity,
		&r.Description,
		&r.Images,
		&r.WitnessID,
		&r.Status,
		&r.ReviewDate,
		&r.CreatedAt,
	}
	dest = append(dest, partiesDest(&r.Parties)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return r, nil
}

func partiesDest(p *models.ReportParties) []any {
	return []any{
		&p.ReportByFirstName,
		&p.ReportByRole,
		&p.InjuredEmployeeFirstName,
		&p.InjuredEmployeeRole,
		&p.WitnessFirstName,
		&p.WitnessRole,
		&p.LocationName,
	}
}

// CreatePending сохраняет новый черновик отчета
func (r *ReportRepository) CreatePending(ctx context.Context, report *models.PendingReport) error {
	query := `
		INSERT INTO pending_reports (
			company_id, report_by, injured_employee_id, date_of_injury, report_date, location_id,
			injury_type_id, severity, description, images, witness_id, status, review_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
	`
	images := report.Images
	if images == nil {
		images = []string{}
	}
	err := r.db.QueryRow(ctx, query,
		report.CompanyID,
		report.ReportBy,
		report.InjuredEmployeeID,
		report.DateOfInjury,
		report.ReportDate,
		report.LocationID,
		report.InjuryTypeID,
		report.Severity,
		report.Description,
		images,
		report.WitnessID,
		string(report.Status),
		report.ReviewDate,
	).Scan(&report.ID)
	if err != nil {
		return fmt.Errorf("failed to create pending report: %w", err)
	}
	return nil
}

// GetPendingByID возвращает черновик с именами участников
func (r *ReportRepository) GetPendingByID(ctx context.Context, id uuid.UUID) (*models.PendingReport, error) {
	query := `SELECT ` + pendingColumns + `,` + partiesColumns + `
		FROM pending_reports p` + partiesJoins + `
		WHERE p.id = $1;
	`
	report, err := scanPending(r.db.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("pending report with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pending report by id: %w", err)
	}
	return report, nil
}

// UpdatePending перезаписывает поля черновика, если его статус все еще равен from
func (r *ReportRepository) UpdatePending(ctx context.Context, report *models.PendingReport, from models.ReportStatus) error {
	query := `
		UPDATE pending_reports SET
			injured_employee_id = $1,
			date_of_injury = $2,
			location_id = $3,
			injury_type_id = $4,
			severity = $5,
			description = $6,
			images = $7,
			witness_id = $8,
			status = $9,
			hold_reason = $10
		WHERE id = $11 AND status = $12;
	`
	images := report.Images
	if images == nil {
		images = []string{}
	}
	cmdTag, err := r.db.Exec(ctx, query,
		report.InjuredEmployeeID,
		report.DateOfInjury,
		report.LocationID,
		report.InjuryTypeID,
		report.Severity,
		report.Description,
		images,
		report.WitnessID,
		string(report.Status),
		report.HoldReason,
		report.ID,
		string(from),
	)
	if err != nil {
		return fmt.Errorf("failed to update pending report: %w", err)
	}

	// Ни одной строки: черновик удален или его статус успел измениться
	if cmdTag.RowsAffected() == 0 {
		return r.missingOrConflict(ctx, report.ID, from)
	}
	return nil
}

// UpdateStatus переводит черновик из статуса from в статус to
func (r *ReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ReportStatus, reason string, reviewedAt time.Time) error {
	query := `
		UPDATE pending_reports SET
			status = $1,
			hold_reason = $2,
			review_date = $3
		WHERE id = $4 AND status = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query, string(to), reason, reviewedAt, id, string(from))
	if err != nil {
		return fmt.Errorf("failed to update pending report status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.missingOrConflict(ctx, id, from)
	}
	return nil
}

func (r *ReportRepository) missingOrConflict(ctx context.Context, id uuid.UUID, from models.ReportStatus) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pending_reports WHERE id = $1);`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check pending report: %w", err)
	}
	if !exists {
		return fmt.Errorf("pending report with id %s: %w", id, models.ErrNotFound)
	}
	return fmt.Errorf("%w: pending report %s is no longer %q", models.ErrInvalidTransition, id, from)
}

// Promote переносит черновик в постоянные отчеты одной транзакцией:
// блокировка черновика, выдача номера R####, вставка отчета и связи с сотрудником, удаление черновика.
// Параллельный вызов для того же черновика ждет блокировку и получает ErrNotFound.
func (r *ReportRepository) Promote(ctx context.Context, id uuid.UUID, reviewedAt time.Time) (*models.Report, error) {
	var report *models.Report

	err := postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		lockQuery := `SELECT ` + pendingColumns + `
			FROM pending_reports p
			WHERE p.id = $1
			FOR UPDATE;
		`
		pending, err := scanPending(tx.QueryRow(ctx, lockQuery, id), false)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("pending report with id %s: %w", id, models.ErrNotFound)
			}
			return fmt.Errorf("failed to lock pending report: %w", err)
		}

		if err := workflow.Transition(pending.Status, models.StatusCompleted); err != nil {
			return err
		}

		reportID, err := nextID(ctx, tx, identifier.PrefixReport)
		if err != nil {
			return err
		}
		report = models.NewReportFromPending(pending, reportID, reviewedAt)

		insertQuery := `
			INSERT INTO reports (
				report_id, source_pending_id, company_id, report_by, injured_employee_id, date_of_injury,
				report_date, location_id, injury_type_id, severity, description, images, witness_id,
				status, review_date
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING created_at;
		`
		err = tx.QueryRow(ctx, insertQuery,
			report.ReportID,
			report.SourcePendingID,
			report.CompanyID,
			report.ReportBy,
			report.InjuredEmployeeID,
			report.DateOfInjury,
			report.ReportDate,
			report.LocationID,
			report.InjuryTypeID,
			report.Severity,
			report.Description,
			report.Images,
			report.WitnessID,
			string(report.Status),
			report.ReviewDate,
		).Scan(&report.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("pending report %s already promoted: %w", id, models.ErrDuplicate)
			}
			return fmt.Errorf("failed to insert report: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO employee_reports (employee_id, report_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING;
		`, report.InjuredEmployeeID, report.ReportID)
		if err != nil {
			return fmt.Errorf("failed to link report to employee: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM pending_reports WHERE id = $1;`, id); err != nil {
			return fmt.Errorf("failed to delete pending report: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ListPendingByCompany возвращает черновики компании в статусах On going и On hold
func (r *ReportRepository) ListPendingByCompany(ctx context.Context, companyID int) ([]*models.PendingReport, error) {
	query := `SELECT ` + pendingColumns + `,` + partiesColumns + `
		FROM pending_reports p` + partiesJoins + `
		WHERE p.company_id = $1 AND p.status IN ($2, $3)
		ORDER BY p.report_date DESC;
	`
	rows, err := r.db.Query(ctx, query, companyID, string(models.StatusOnGoing), string(models.StatusOnHold))
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.PendingReport, 0)
	for rows.Next() {
		report, err := scanPending(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error pending reports iteration: %w", err)
	}
	return reports, nil
}

// ListByCompany возвращает постоянные отчеты компании с необязательными фильтрами
func (r *ReportRepository) ListByCompany(ctx context.Context, companyID int, filter models.ReportFilter) ([]*models.Report, error) {
	var b strings.Builder
	b.WriteString(`SELECT ` + reportColumns + `,` + partiesColumns + `
		FROM reports p` + partiesJoins + `
		WHERE p.company_id = $1`)
	args := []any{companyID}

	if filter.InjuryTypeID != "" {
		args = append(args, filter.InjuryTypeID)
		fmt.Fprintf(&b, " AND p.injury_type_id = $%d", len(args))
	}
	if filter.DateOfInjury != nil {
		args = append(args, *filter.DateOfInjury, filter.DateOfInjury.AddDate(0, 0, 1))
		fmt.Fprintf(&b, " AND p.date_of_injury >= $%d AND p.date_of_injury < $%d", len(args)-1, len(args))
	}
	b.WriteString(" ORDER BY p.report_id;")

	rows, err := r.db.Query(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reports iteration: %w", err)
	}
	return reports, nil
}

// GetByReportID возвращает постоянный отчет по номеру R####
func (r *ReportRepository) GetByReportID(ctx context.Context, reportID string) (*models.Report, error) {
	query := `SELECT ` + reportColumns + `,` + partiesColumns + `
		FROM reports p` + partiesJoins + `
		WHERE p.report_id = $1;
	`
	report, err := scanReport(r.db.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", reportID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// FindDuplicate ищет черновик или отчет о той же травме с тем же описанием
func (r *ReportRepository) FindDuplicate(ctx context.Context, injuredEmployeeID int, dateOfInjury time.Time, description string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM pending_reports
			WHERE injured_employee_id = $1 AND date_of_injury = $2
				AND lower(regexp_replace(btrim(description), '\s+', ' ', 'g')) = $3
			UNION ALL
			SELECT 1 FROM reports
			WHERE injured_employee_id = $1 AND date_of_injury = $2
				AND lower(regexp_replace(btrim(description), '\s+', ' ', 'g')) = $3
		);
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, injuredEmployeeID, dateOfInjury, models.NormalizeDescription(description)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate report: %w", err)
	}
	return exists, nil
}

// ExistsForInjury проверяет, есть ли постоянный отчет о травме того же типа у сотрудника в тот же день
func (r *ReportRepository) ExistsForInjury(ctx context.Context, injuredEmployeeID int, dateOfInjury time.Time, injuryTypeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reports
			WHERE injured_employee_id = $1 AND date_of_injury = $2 AND injury_type_id = $3
		);
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, injuredEmployeeID, dateOfInjury, injuryTypeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing injury report: %w", err)
	}
	return exists, nil
}

// GetReportFromCache пытается получить отчет из Redis. Промах кэша - (nil, nil).
func (r *ReportRepository) GetReportFromCache(ctx context.Context, reportID string) (*models.Report, error) {
	key := fmt.Sprintf("report:%s", reportID)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}

	report := &models.Report{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report from cache: %w", err)
	}
	return report, nil
}

// SetReportCache сохраняет отчет в Redis. Отчеты не меняются, поэтому кэш не инвалидируется.
func (r *ReportRepository) SetReportCache(ctx context.Context, report *models.Report) error {
	key := fmt.Sprintf("report:%s", report.ReportID)
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set report in cache: %w", err)
	}
	return nil
}
