package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/safety_incident_tracker/internal/config"
	"github.com/shenikar/safety_incident_tracker/internal/metrics"
	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/shenikar/safety_incident_tracker/internal/notify"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт для работы с бд оповещений
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	FindDuplicate(ctx context.Context, alertName, description string) (bool, error)
	GetByID(ctx context.Context, alertID string) (*models.Alert, error)
	ListByCompany(ctx context.Context, companyID int) ([]*models.Alert, error)
	Update(ctx context.Context, alert *models.Alert) error
	RecipientEmails(ctx context.Context, alert *models.Alert) ([]string, error)
	ClaimDueAlerts(ctx context.Context, now time.Time, limit int, handle models.AlertHandler) (int, error)
	ClaimAlert(ctx context.Context, alertID string, now time.Time, handle models.AlertHandler) (bool, error)
}

// AlertService определяет контракт бизнес-логики оповещений
type AlertService interface {
	CreateAlert(ctx context.Context, alert *models.Alert, attachments []models.Upload) error
	GetAlert(ctx context.Context, alertID string) (*models.Alert, error)
	ListAlerts(ctx context.Context, companyID int) ([]*models.Alert, error)
	UpdateAlert(ctx context.Context, alertID string, update models.AlertUpdate, attachments []models.Upload) (*models.Alert, error)
	DispatchDueAlerts(ctx context.Context) (int, error)
}

type alertService struct {
	repo      AlertRepository
	files     FileStorage
	publisher notify.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewAlertService(repo AlertRepository, files FileStorage, publisher notify.Publisher, logger *logrus.Logger, cfg *config.Config) AlertService {
	return &alertService{
		repo:      repo,
		files:     files,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

func validateAlert(a *models.Alert) error {
	switch {
	case a.CompanyID <= 0:
		return fmt.Errorf("%w: companyID is required", models.ErrValidation)
	case a.AlertName == "":
		return fmt.Errorf("%w: alertName is required", models.ErrValidation)
	case a.Description == "":
		return fmt.Errorf("%w: description is required", models.ErrValidation)
	case a.Type == "":
		return fmt.Errorf("%w: type is required", models.ErrValidation)
	case len(a.Recipients) == 0:
		return fmt.Errorf("%w: at least one recipient is required", models.ErrValidation)
	}

	switch a.RecipientType {
	case models.RecipientEmployee:
		for _, r := range a.Recipients {
			if _, err := strconv.Atoi(r); err != nil {
				return fmt.Errorf("%w: invalid employee id %q", models.ErrValidation, r)
			}
		}
	case models.RecipientDepartment:
	default:
		return fmt.Errorf("%w: recipientType must be employee or department", models.ErrValidation)
	}
	return nil
}

// CreateAlert сохраняет оповещение. Если время отправки наступило, оно рассылается сразу,
// иначе остается запланированным до очередного прохода AlertSweeper.
func (s *alertService) CreateAlert(ctx context.Context, alert *models.Alert, attachments []models.Upload) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "CreateAlert",
		"company_id": alert.CompanyID,
		"alert_name": alert.AlertName,
	})
	log.Info("Attempting to create a new alert")

	alert.AlertName = strings.TrimSpace(alert.AlertName)
	alert.Description = strings.TrimSpace(alert.Description)
	alert.CC = strings.TrimSpace(alert.CC)
	if err := validateAlert(alert); err != nil {
		log.WithError(err).Warn("Invalid alert")
		return fmt.Errorf("service: could not create alert: %w", err)
	}

	duplicate, err := s.repo.FindDuplicate(ctx, alert.AlertName, alert.Description)
	if err != nil {
		log.WithError(err).Error("Failed to check duplicate alert")
		return fmt.Errorf("service: could not create alert: %w", err)
	}
	if duplicate {
		log.Warn("Duplicate alert")
		return fmt.Errorf("service: %w: alert with the same name and description already exists", models.ErrDuplicate)
	}

	if len(attachments) > s.cfg.MaxUploadFiles {
		return fmt.Errorf("service: %w: at most %d attachments are allowed", models.ErrValidation, s.cfg.MaxUploadFiles)
	}
	urls := make([]string, 0, len(attachments))
	for _, a := range attachments {
		url, err := s.files.Save(ctx, "alert", a)
		if err != nil {
			log.WithError(err).Error("Failed to save alert attachment")
			return fmt.Errorf("service: could not create alert: %w", err)
		}
		urls = append(urls, url)
	}

	now := s.now()
	if alert.SentAt.IsZero() {
		alert.SentAt = now
	}
	alert.Attachments = urls
	alert.DeliveryStatus = models.DeliveryScheduled

	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}
	log = log.WithField("alert_id", alert.AlertID)

	if !alert.SentAt.After(now) {
		s.dispatchNow(ctx, log, alert, now)
	} else {
		log.WithField("sent_at", alert.SentAt).Info("Alert scheduled")
	}

	log.Info("Alert created successfully")
	return nil
}

// dispatchNow рассылает оповещение сразу. При ошибке оповещение остается запланированным
// и будет разослано следующим проходом AlertSweeper.
func (s *alertService) dispatchNow(ctx context.Context, log *logrus.Entry, alert *models.Alert, now time.Time) {
	dispatched, err := s.repo.ClaimAlert(ctx, alert.AlertID, now, s.dispatch)
	if err != nil {
		log.WithError(err).Error("Failed to dispatch alert, it will be retried by the sweeper")
		return
	}
	if dispatched {
		alert.DeliveryStatus = models.DeliveryDispatched
		alert.DispatchedAt = &now
	}
}

// dispatch ставит в очередь письма всем получателям оповещения
func (s *alertService) dispatch(ctx context.Context, alert *models.Alert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "dispatch",
		"alert_id": alert.AlertID,
	})

	emails, err := s.repo.RecipientEmails(ctx, alert)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		log.Warn("Alert has no resolvable recipients")
	}

	now := s.now()
	for _, email := range emails {
		if err := s.publisher.Publish(ctx, notify.NewAlertNotification(email, alert, now)); err != nil {
			return fmt.Errorf("failed to publish alert to %s: %w", email, err)
		}
	}
	metrics.AlertsDispatchedTotal.Inc()

	log.WithField("recipients", len(emails)).Info("Alert dispatched")
	return nil
}

// DispatchDueAlerts рассылает запланированные оповещения, срок которых наступил
func (s *alertService) DispatchDueAlerts(ctx context.Context) (int, error) {
	n, err := s.repo.ClaimDueAlerts(ctx, s.now(), s.cfg.AlertSweepBatch, s.dispatch)
	if err != nil {
		return n, fmt.Errorf("service: could not dispatch due alerts: %w", err)
	}
	return n, nil
}

func (s *alertService) GetAlert(ctx context.Context, alertID string) (*models.Alert, error) {
	alert, err := s.repo.GetByID(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	return alert, nil
}

func (s *alertService) ListAlerts(ctx context.Context, companyID int) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "ListAlerts",
		"company_id": companyID,
	})
	log.Info("Listing alerts")

	alerts, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// UpdateAlert изменяет запланированное оповещение. Разосланные оповещения не изменяются.
func (s *alertService) UpdateAlert(ctx context.Context, alertID string, update models.AlertUpdate, attachments []models.Upload) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateAlert",
		"alert_id": alertID,
	})
	log.Info("Attempting to update alert")

	if update.IsEmpty() && len(attachments) == 0 {
		return nil, fmt.Errorf("service: %w: no fields to update", models.ErrValidation)
	}

	alert, err := s.repo.GetByID(ctx, alertID)
	if err != nil {
		log.WithError(err).Warn("Alert not found")
		return nil, fmt.Errorf("service: could not update alert: %w", err)
	}
	if alert.DeliveryStatus == models.DeliveryDispatched {
		return nil, fmt.Errorf("service: %w: alert %s has already been dispatched", models.ErrInvalidTransition, alertID)
	}

	for _, a := range attachments {
		url, err := s.files.Save(ctx, "alert", a)
		if err != nil {
			log.WithError(err).Error("Failed to save alert attachment")
			return nil, fmt.Errorf("service: could not update alert: %w", err)
		}
		update.AddedAttachments = append(update.AddedAttachments, url)
	}

	previous := alert.Attachments
	update.Apply(alert)
	if alert.AlertName == "" || alert.Description == "" {
		return nil, fmt.Errorf("service: %w: alertName and description cannot be empty", models.ErrValidation)
	}
	if len(alert.Attachments) > s.cfg.MaxUploadFiles {
		return nil, fmt.Errorf("service: %w: at most %d attachments are allowed", models.ErrValidation, s.cfg.MaxUploadFiles)
	}

	if err := s.repo.Update(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to update alert in repository")
		return nil, fmt.Errorf("service: could not update alert: %w", err)
	}

	kept := make(map[string]struct{}, len(alert.Attachments))
	for _, url := range alert.Attachments {
		kept[url] = struct{}{}
	}
	for _, url := range previous {
		if _, ok := kept[url]; ok {
			continue
		}
		if err := s.files.Delete(ctx, url); err != nil {
			log.WithError(err).WithField("attachment", url).Warn("Failed to delete removed attachment")
		}
	}

	now := s.now()
	if !alert.SentAt.After(now) {
		s.dispatchNow(ctx, log, alert, now)
	}

	log.Info("Alert updated successfully")
	return alert, nil
}
