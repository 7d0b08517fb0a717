package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_incident_tracker/internal/config"
	"github.com/shenikar/safety_incident_tracker/internal/metrics"
	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/shenikar/safety_incident_tracker/internal/notify"
	"github.com/shenikar/safety_incident_tracker/internal/workflow"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks . ReportRepository,AlertRepository,DirectoryRepository,EquipmentRepository,StatsRepository,FileStorage
//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . ReportService,AlertService,DirectoryService,EquipmentService,StatsService

// ReportRepository определяет контракт для работы с бд черновиков и постоянных отчетов
type ReportRepository interface {
	CreatePending(ctx context.Context, report *models.PendingReport) error
	GetPendingByID(ctx context.Context, id uuid.UUID) (*models.PendingReport, error)
	UpdatePending(ctx context.Context, report *models.PendingReport, from models.ReportStatus) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ReportStatus, reason string, reviewedAt time.Time) error
	Promote(ctx context.Context, id uuid.UUID, reviewedAt time.Time) (*models.Report, error)
	ListPendingByCompany(ctx context.Context, companyID int) ([]*models.PendingReport, error)
	ListByCompany(ctx context.Context, companyID int, filter models.ReportFilter) ([]*models.Report, error)
	GetByReportID(ctx context.Context, reportID string) (*models.Report, error)
	FindDuplicate(ctx context.Context, injuredEmployeeID int, dateOfInjury time.Time, description string) (bool, error)
	ExistsForInjury(ctx context.Context, injuredEmployeeID int, dateOfInjury time.Time, injuryTypeID string) (bool, error)
	GetReportFromCache(ctx context.Context, reportID string) (*models.Report, error)
	SetReportCache(ctx context.Context, report *models.Report) error
}

// FileStorage сохраняет загруженные файлы и возвращает их URL
type FileStorage interface {
	Save(ctx context.Context, prefix string, upload models.Upload) (string, error)
	Delete(ctx context.Context, url string) error
}

// ReportService определяет контракт бизнес-логики отчетов о травмах
type ReportService interface {
	SubmitReport(ctx context.Context, report *models.PendingReport, images []models.Upload) error
	ReviewReport(ctx context.Context, id uuid.UUID, action models.ReviewAction, reason string) (*models.ReviewOutcome, error)
	HoldReport(ctx context.Context, id uuid.UUID, reason string) error
	ApproveReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
	GetPendingReport(ctx context.Context, id uuid.UUID) (*models.PendingReport, error)
	GetSubmittedReport(ctx context.Context, id uuid.UUID) (*models.PendingReport, error)
	UpdatePendingReport(ctx context.Context, id uuid.UUID, update models.PendingReportUpdate, images []models.Upload) (*models.PendingReport, error)
	ListPendingReports(ctx context.Context, companyID int) ([]*models.PendingReport, error)
	ListReports(ctx context.Context, companyID int, filter models.ReportFilter) ([]*models.Report, error)
	GetReport(ctx context.Context, reportID string) (*models.Report, error)
	RequestReports(ctx context.Context, recipients []string, remark string) error
}

// Причина по умолчанию для отказа через /reports/review
const defaultRejectReason = "Rejected during review"

type reportService struct {
	repo      ReportRepository
	directory DirectoryRepository
	files     FileStorage
	publisher notify.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewReportService(
	repo ReportRepository,
	directory DirectoryRepository,
	files FileStorage,
	publisher notify.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) ReportService {
	return &reportService{
		repo:      repo,
		directory: directory,
		files:     files,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// startOfDay возвращает начало суток t в часовом поясе loc
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func validateReportFields(r *models.PendingReport) error {
	switch {
	case r.InjuredEmployeeID <= 0:
		return fmt.Errorf("%w: injuredEmployeeID is required", models.ErrValidation)
	case r.DateOfInjury.IsZero():
		return fmt.Errorf("%w: dateOfInjury is required", models.ErrValidation)
	case strings.TrimSpace(r.LocationID) == "":
		return fmt.Errorf("%w: locationID is required", models.ErrValidation)
	case strings.TrimSpace(r.InjuryTypeID) == "":
		return fmt.Errorf("%w: injuryTypeID is required", models.ErrValidation)
	case r.Severity < models.MinSeverity || r.Severity > models.MaxSeverity:
		return fmt.Errorf("%w: severity must be between %d and %d", models.ErrValidation, models.MinSeverity, models.MaxSeverity)
	case strings.TrimSpace(r.Description) == "":
		return fmt.Errorf("%w: description is required", models.ErrValidation)
	}
	return nil
}

func (s *reportService) saveImages(ctx context.Context, images []models.Upload) ([]string, error) {
	if len(images) > s.cfg.MaxUploadFiles {
		return nil, fmt.Errorf("%w: at most %d images are allowed", models.ErrValidation, s.cfg.MaxUploadFiles)
	}
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.files.Save(ctx, "report", img)
		if err != nil {
			s.deleteImages(ctx, urls)
			return nil, fmt.Errorf("failed to save image %s: %w", img.Filename, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// deleteImages удаляет файлы, на которые больше не ссылается ни один черновик.
// Ошибки удаления только логируются.
func (s *reportService) deleteImages(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.files.Delete(ctx, url); err != nil {
			s.logger.WithError(err).WithField("image", url).Warn("Failed to delete report image")
		}
	}
}

// SubmitReport создает черновик отчета в статусе On going
func (s *reportService) SubmitReport(ctx context.Context, report *models.PendingReport, images []models.Upload) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "SubmitReport",
		"report_by": report.ReportBy,
	})
	log.Info("Attempting to submit a new injury report")

	report.Description = strings.TrimSpace(report.Description)
	if err := validateReportFields(report); err != nil {
		log.WithError(err).Warn("Invalid injury report")
		return fmt.Errorf("service: could not submit report: %w", err)
	}

	reporter, err := s.directory.GetEmployee(ctx, report.ReportBy)
	if err != nil {
		log.WithError(err).Warn("Reporter not found")
		return fmt.Errorf("service: could not submit report: %w", err)
	}

	report.CompanyID = reporter.CompanyID
	report.DateOfInjury = startOfDay(report.DateOfInjury, s.cfg.Location())
	if report.WitnessID != nil && *report.WitnessID <= 0 {
		report.WitnessID = nil
	}

	duplicate, err := s.repo.FindDuplicate(ctx, report.InjuredEmployeeID, report.DateOfInjury, report.Description)
	if err != nil {
		log.WithError(err).Error("Failed to check duplicate report")
		return fmt.Errorf("service: could not submit report: %w", err)
	}
	if duplicate {
		log.Warn("Duplicate injury report")
		return fmt.Errorf("service: %w: a report with the same description already exists for this employee and date", models.ErrDuplicate)
	}

	urls, err := s.saveImages(ctx, images)
	if err != nil {
		log.WithError(err).Error("Failed to save report images")
		return fmt.Errorf("service: could not submit report: %w", err)
	}

	now := s.now()
	report.Images = urls
	report.Status = models.StatusOnGoing
	report.HoldReason = ""
	report.ReportDate = now
	report.ReviewDate = now

	if err := s.repo.CreatePending(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create pending report in repository")
		s.deleteImages(ctx, urls)
		return fmt.Errorf("service: could not submit report: %w", err)
	}
	metrics.ReportTransitionsTotal.WithLabelValues(string(models.StatusOnGoing)).Inc()

	log.WithField("pending_report_id", report.ID).Info("Injury report submitted successfully")
	return nil
}

// ReviewReport выполняет решение проверяющего: approve - утверждение, reject - перевод в On hold
func (s *reportService) ReviewReport(ctx context.Context, id uuid.UUID, action models.ReviewAction, reason string) (*models.ReviewOutcome, error) {
	switch action {
	case models.ActionApprove:
		report, err := s.ApproveReport(ctx, id)
		if err != nil {
			return nil, err
		}
		return &models.ReviewOutcome{Status: models.StatusCompleted, ReportID: report.ReportID}, nil
	case models.ActionReject:
		if strings.TrimSpace(reason) == "" {
			reason = defaultRejectReason
		}
		if err := s.HoldReport(ctx, id, reason); err != nil {
			return nil, err
		}
		return &models.ReviewOutcome{Status: models.StatusOnHold}, nil
	default:
		return nil, fmt.Errorf("service: %w: invalid action %q", models.ErrValidation, action)
	}
}

// HoldReport переводит черновик в On hold и отправляет автору письмо со ссылкой на исправление
func (s *reportService) HoldReport(ctx context.Context, id uuid.UUID, reason string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":           "report",
		"method":            "HoldReport",
		"pending_report_id": id,
	})
	log.Info("Attempting to put report on hold")

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("service: %w: hold reason is required", models.ErrValidation)
	}

	pending, err := s.repo.GetPendingByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Pending report not found")
		return fmt.Errorf("service: could not hold report: %w", err)
	}

	if err := workflow.Transition(pending.Status, models.StatusOnHold); err != nil {
		log.WithError(err).Warn("Invalid status transition")
		return fmt.Errorf("service: could not hold report: %w", err)
	}

	now := s.now()
	if err := s.repo.UpdateStatus(ctx, id, pending.Status, models.StatusOnHold, reason, now); err != nil {
		log.WithError(err).Error("Failed to update report status in repository")
		return fmt.Errorf("service: could not hold report: %w", err)
	}
	metrics.ReportTransitionsTotal.WithLabelValues(string(models.StatusOnHold)).Inc()

	pending.Status = models.StatusOnHold
	pending.HoldReason = reason
	pending.ReviewDate = now

	// Статус уже изменен: ошибка уведомления не отменяет перевод
	s.notifyReporter(ctx, log, pending.ReportBy, func(email string) notify.Notification {
		return notify.NewHoldNotification(email, pending, reason, s.cfg.AppBaseURL, now)
	})

	log.Info("Report put on hold successfully")
	return nil
}

// ApproveReport переносит черновик в постоянные отчеты и отправляет автору письмо с номером отчета
func (s *reportService) ApproveReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":           "report",
		"method":            "ApproveReport",
		"pending_report_id": id,
	})
	log.Info("Attempting to approve report")

	pending, err := s.repo.GetPendingByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Pending report not found")
		return nil, fmt.Errorf("service: could not approve report: %w", err)
	}

	if err := workflow.Transition(pending.Status, models.StatusCompleted); err != nil {
		log.WithError(err).Warn("Invalid status transition")
		return nil, fmt.Errorf("service: could not approve report: %w", err)
	}

	exists, err := s.repo.ExistsForInjury(ctx, pending.InjuredEmployeeID, pending.DateOfInjury, pending.InjuryTypeID)
	if err != nil {
		log.WithError(err).Error("Failed to check existing injury report")
		return nil, fmt.Errorf("service: could not approve report: %w", err)
	}
	if exists {
		log.Warn("Duplicate injury report for this employee on the same date")
		return nil, fmt.Errorf("service: %w: injury report for this employee on the same date already exists", models.ErrDuplicate)
	}

	now := s.now()
	report, err := s.repo.Promote(ctx, id, now)
	if err != nil {
		log.WithError(err).Error("Failed to promote pending report")
		return nil, fmt.Errorf("service: could not approve report: %w", err)
	}
	metrics.ReportTransitionsTotal.WithLabelValues(string(models.StatusCompleted)).Inc()
	report.Parties = pending.Parties

	s.notifyReporter(ctx, log, report.ReportBy, func(email string) notify.Notification {
		return notify.NewApprovalNotification(email, report, now)
	})

	log.WithField("report_id", report.ReportID).Info("Report approved successfully")
	return report, nil
}

func (s *reportService) notifyReporter(ctx context.Context, log *logrus.Entry, reporterID int, build func(email string) notify.Notification) {
	reporter, err := s.directory.GetEmployee(ctx, reporterID)
	if err != nil {
		log.WithError(err).Warn("Failed to find reporter, notification skipped")
		return
	}
	if err := s.publisher.Publish(ctx, build(reporter.Email)); err != nil {
		log.WithError(err).Error("Failed to publish notification")
	}
}

// GetPendingReport возвращает черновик, пока он не утвержден
func (s *reportService) GetPendingReport(ctx context.Context, id uuid.UUID) (*models.PendingReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":           "report",
		"method":            "GetPendingReport",
		"pending_report_id": id,
	})
	log.Info("Fetching pending report by ID")

	pending, err := s.repo.GetPendingByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get pending report in repository")
		return nil, fmt.Errorf("service: could not get pending report: %w", err)
	}
	if pending.Status == models.StatusCompleted {
		return nil, fmt.Errorf("service: %w: report is approved", models.ErrNotFound)
	}
	return pending, nil
}

// GetSubmittedReport возвращает черновик для исправления; доступен только в статусе On hold
func (s *reportService) GetSubmittedReport(ctx context.Context, id uuid.UUID) (*models.PendingReport, error) {
	pending, err := s.repo.GetPendingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get submitted report: %w", err)
	}
	if pending.Status != models.StatusOnHold {
		return nil, fmt.Errorf("service: %w: report cannot be updated", models.ErrNotFound)
	}
	return pending, nil
}

// UpdatePendingReport применяет исправления автора к черновику в On hold и возвращает его в On going
func (s *reportService) UpdatePendingReport(ctx context.Context, id uuid.UUID, update models.PendingReportUpdate, images []models.Upload) (*models.PendingReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":           "report",
		"method":            "UpdatePendingReport",
		"pending_report_id": id,
	})
	log.Info("Attempting to resubmit pending report")

	if update.IsEmpty() && len(images) == 0 {
		return nil, fmt.Errorf("service: %w: no fields to update", models.ErrValidation)
	}

	pending, err := s.repo.GetPendingByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Pending report not found")
		return nil, fmt.Errorf("service: could not update pending report: %w", err)
	}

	from := pending.Status
	if err := workflow.Transition(from, models.StatusOnGoing); err != nil {
		log.WithError(err).Warn("Report is not on hold")
		return nil, fmt.Errorf("service: could not update pending report: %w", err)
	}

	update.Apply(pending)
	pending.DateOfInjury = startOfDay(pending.DateOfInjury, s.cfg.Location())
	if pending.WitnessID != nil && *pending.WitnessID <= 0 {
		pending.WitnessID = nil
	}
	if err := validateReportFields(pending); err != nil {
		log.WithError(err).Warn("Invalid report update")
		return nil, fmt.Errorf("service: could not update pending report: %w", err)
	}

	// Новые фото заменяют прежний набор целиком
	var added, replaced []string
	if len(images) > 0 {
		urls, err := s.saveImages(ctx, images)
		if err != nil {
			log.WithError(err).Error("Failed to save report images")
			return nil, fmt.Errorf("service: could not update pending report: %w", err)
		}
		added, replaced = urls, pending.Images
		pending.Images = urls
	}

	pending.Status = models.StatusOnGoing
	pending.HoldReason = ""

	if err := s.repo.UpdatePending(ctx, pending, from); err != nil {
		log.WithError(err).Error("Failed to update pending report in repository")
		s.deleteImages(ctx, added)
		return nil, fmt.Errorf("service: could not update pending report: %w", err)
	}
	s.deleteImages(ctx, replaced)
	metrics.ReportTransitionsTotal.WithLabelValues(string(models.StatusOnGoing)).Inc()

	log.Info("Pending report resubmitted successfully")
	return pending, nil
}

// ListPendingReports возвращает черновики компании
func (s *reportService) ListPendingReports(ctx context.Context, companyID int) ([]*models.PendingReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "ListPendingReports",
		"company_id": companyID,
	})
	log.Info("Listing pending reports")

	reports, err := s.repo.ListPendingByCompany(ctx, companyID)
	if err != nil {
		log.WithError(err).Error("Failed to list pending reports from repository")
		return nil, fmt.Errorf("service: could not list pending reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Pending reports listed successfully")
	return reports, nil
}

// ListReports возвращает постоянные отчеты компании
func (s *reportService) ListReports(ctx context.Context, companyID int, filter models.ReportFilter) ([]*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "ListReports",
		"company_id": companyID,
	})
	log.Info("Listing reports")

	if filter.DateOfInjury != nil {
		day := startOfDay(*filter.DateOfInjury, s.cfg.Location())
		filter.DateOfInjury = &day
	}

	reports, err := s.repo.ListByCompany(ctx, companyID, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Reports listed successfully")
	return reports, nil
}

// GetReport получает постоянный отчет, сначала из кэша
func (s *reportService) GetReport(ctx context.Context, reportID string) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": reportID,
	})
	log.Info("Fetching report by ID")

	cached, err := s.repo.GetReportFromCache(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from cache")
	}
	if cached != nil {
		log.Debug("Report served from cache")
		return cached, nil
	}

	report, err := s.repo.GetByReportID(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Failed to get report in repository")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}

	if err := s.repo.SetReportCache(ctx, report); err != nil {
		log.WithError(err).Warn("Failed to set report cache")
	}
	return report, nil
}

// RequestReports просит сотрудников заполнить отчет о травме
func (s *reportService) RequestReports(ctx context.Context, recipients []string, remark string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "RequestReports",
		"recipients": len(recipients),
	})
	log.Info("Requesting injury reports")

	if len(recipients) == 0 {
		return fmt.Errorf("service: %w: at least one recipient is required", models.ErrValidation)
	}

	now := s.now()
	var errs []error
	for _, to := range recipients {
		n := notify.NewReportRequestNotification(to, strings.TrimSpace(remark), s.cfg.AppBaseURL, now)
		if err := s.publisher.Publish(ctx, n); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", to, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.WithError(err).Error("Failed to publish report requests")
		return fmt.Errorf("service: could not request reports: %w", err)
	}

	log.Info("Report requests queued successfully")
	return nil
}
