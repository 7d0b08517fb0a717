package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPending(t *testing.T, ctx context.Context, repo *ReportRepository) uuid.UUID {
	t.Helper()
	now := time.Date(2024, 3, 14, 17, 30, 0, 0, time.UTC)
	pending := &models.PendingReport{
		CompanyID:         7,
		ReportBy:          100400001,
		InjuredEmployeeID: 100400002,
		DateOfInjury:      time.Date(2024, 3, 14, 7, 0, 0, 0, time.UTC),
		ReportDate:        now,
		LocationID:        "L0001",
		InjuryTypeID:      "T0002",
		Severity:          4,
		Description:       "Fell from the ladder",
		Status:            models.StatusOnGoing,
		ReviewDate:        now,
	}
	require.NoError(t, repo.CreatePending(ctx, pending))
	require.NotEqual(t, uuid.Nil, pending.ID)
	return pending.ID
}

func countRows(t *testing.T, ctx context.Context, db *pgxpool.Pool, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(ctx, query, args...).Scan(&n))
	return n
}

func TestPromote_AllocatesNextReportID(t *testing.T) {
	// Подготовка
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewReportRepository(db, nil, time.Minute).(*ReportRepository)

	// Последний выданный номер - R0007
	_, err := db.Exec(ctx, `UPDATE id_counters SET value = 7 WHERE namespace = 'R';`)
	require.NoError(t, err)
	id := createTestPending(t, ctx, repo)

	// Действие
	report, err := repo.Promote(ctx, id, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "R0008", report.ReportID)
	assert.Equal(t, id, report.SourcePendingID)
	assert.Equal(t, models.StatusCompleted, report.Status)

	_, err = repo.GetPendingByID(ctx, id)
	assert.ErrorIs(t, err, models.ErrNotFound)

	stored, err := repo.GetByReportID(ctx, "R0008")
	require.NoError(t, err)
	assert.Equal(t, "Fell from the ladder", stored.Description)
	assert.Equal(t, 1, countRows(t, ctx, db, `SELECT COUNT(*) FROM employee_reports WHERE report_id = 'R0008';`))
}

func TestPromote_ConcurrentApprovalsCreateOneReport(t *testing.T) {
	// Подготовка
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewReportRepository(db, nil, time.Minute).(*ReportRepository)
	id := createTestPending(t, ctx, repo)

	const approvers = 2
	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		reports = make([]*models.Report, approvers)
		errs    = make([]error, approvers)
	)

	// Действие
	for i := 0; i < approvers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			reports[i], errs[i] = repo.Promote(ctx, id, time.Now())
		}(i)
	}
	close(start)
	wg.Wait()

	// Проверки
	var promoted, notFound int
	for i := 0; i < approvers; i++ {
		switch {
		case errs[i] == nil:
			promoted++
			assert.Equal(t, "R0001", reports[i].ReportID)
		default:
			assert.ErrorIs(t, errs[i], models.ErrNotFound)
			notFound++
		}
	}
	assert.Equal(t, 1, promoted)
	assert.Equal(t, 1, notFound)
	assert.Equal(t, 1, countRows(t, ctx, db, `SELECT COUNT(*) FROM reports WHERE source_pending_id = $1;`, id))
	assert.Equal(t, 0, countRows(t, ctx, db, `SELECT COUNT(*) FROM pending_reports WHERE id = $1;`, id))
	// Проигравшая транзакция не расходует номер
	assert.Equal(t, 1, countRows(t, ctx, db, `SELECT value FROM id_counters WHERE namespace = 'R';`))
}

func TestPromote_UnknownPendingKeepsCounter(t *testing.T) {
	// Подготовка
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewReportRepository(db, nil, time.Minute).(*ReportRepository)

	// Действие
	_, err := repo.Promote(ctx, uuid.New(), time.Now())

	// Проверки
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, 0, countRows(t, ctx, db, `SELECT COUNT(*) FROM reports;`))
	assert.Equal(t, 0, countRows(t, ctx, db, `SELECT value FROM id_counters WHERE namespace = 'R';`))
}
