package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// EquipmentRepository определяет контракт для работы с бд оборудования
type EquipmentRepository interface {
	Create(ctx context.Context, e *models.Equipment) error
	FindDuplicate(ctx context.Context, name, locationID, description string) (bool, error)
	GetByID(ctx context.Context, equipmentID string) (*models.Equipment, error)
	ListByCompany(ctx context.Context, companyID int) ([]*models.Equipment, error)
	RecordInspection(ctx context.Context, equipmentID string, rec models.InspectionRecord) (*models.Equipment, error)
	Delete(ctx context.Context, equipmentID string) error
}

// EquipmentService определяет контракт бизнес-логики проверок оборудования
type EquipmentService interface {
	CreateEquipment(ctx context.Context, e *models.Equipment) error
	GetEquipment(ctx context.Context, equipmentID string) (*models.Equipment, error)
	ListEquipments(ctx context.Context, companyID int) ([]*models.Equipment, error)
	RecordInspection(ctx context.Context, equipmentID string, rec models.InspectionRecord) (*models.Equipment, error)
	DeleteEquipment(ctx context.Context, equipmentID string) error
}

var equipmentStatuses = map[models.EquipmentStatus]struct{}{
	models.EquipmentGood:             {},
	models.EquipmentNeedsMaintenance: {},
	models.EquipmentOutOfService:     {},
}

type equipmentService struct {
	repo   EquipmentRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewEquipmentService(repo EquipmentRepository, logger *logrus.Logger) EquipmentService {
	return &equipmentService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func validateEquipmentStatus(status models.EquipmentStatus) error {
	if _, ok := equipmentStatuses[status]; !ok {
		return fmt.Errorf("%w: unknown equipment status %q", models.ErrValidation, status)
	}
	return nil
}

// CreateEquipment регистрирует оборудование и его первую проверку
func (s *equipmentService) CreateEquipment(ctx context.Context, e *models.Equipment) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "equipment",
		"method":     "CreateEquipment",
		"company_id": e.CompanyID,
	})
	log.Info("Attempting to create equipment")

	e.EquipmentName = strings.TrimSpace(e.EquipmentName)
	e.Description = strings.TrimSpace(e.Description)
	if e.Status == "" {
		e.Status = models.EquipmentGood
	}
	if err := validateEquipmentStatus(e.Status); err != nil {
		return fmt.Errorf("service: could not create equipment: %w", err)
	}
	if e.InspectionInterval <= 0 {
		return fmt.Errorf("service: %w: inspectionInterval must be positive", models.ErrValidation)
	}
	if e.InspectionDate.IsZero() {
		e.InspectionDate = s.now()
	}

	duplicate, err := s.repo.FindDuplicate(ctx, e.EquipmentName, e.LocationID, e.Description)
	if err != nil {
		log.WithError(err).Error("Failed to check duplicate equipment")
		return fmt.Errorf("service: could not create equipment: %w", err)
	}
	if duplicate {
		log.Warn("Duplicate equipment")
		return fmt.Errorf("service: %w: equipment in this location with this name already exists", models.ErrDuplicate)
	}

	if err := s.repo.Create(ctx, e); err != nil {
		log.WithError(err).Error("Failed to create equipment in repository")
		return fmt.Errorf("service: could not create equipment: %w", err)
	}

	log.WithField("equipment_id", e.EquipmentID).Info("Equipment created successfully")
	return nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, equipmentID string) (*models.Equipment, error) {
	e, err := s.repo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get equipment: %w", err)
	}
	return e, nil
}

func (s *equipmentService) ListEquipments(ctx context.Context, companyID int) ([]*models.Equipment, error) {
	equipments, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list equipments: %w", err)
	}
	return equipments, nil
}

// RecordInspection сохраняет результат очередной проверки
func (s *equipmentService) RecordInspection(ctx context.Context, equipmentID string, rec models.InspectionRecord) (*models.Equipment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "equipment",
		"method":       "RecordInspection",
		"equipment_id": equipmentID,
	})
	log.Info("Recording equipment inspection")

	if err := validateEquipmentStatus(rec.Status); err != nil {
		return nil, fmt.Errorf("service: could not record inspection: %w", err)
	}
	if rec.InspectedBy <= 0 {
		return nil, fmt.Errorf("service: %w: inspectedBy is required", models.ErrValidation)
	}
	if rec.InspectionDate.IsZero() {
		rec.InspectionDate = s.now()
	}

	e, err := s.repo.RecordInspection(ctx, equipmentID, rec)
	if err != nil {
		log.WithError(err).Error("Failed to record inspection in repository")
		return nil, fmt.Errorf("service: could not record inspection: %w", err)
	}

	log.WithField("next_inspection", e.NextInspectionDue()).Info("Inspection recorded successfully")
	return e, nil
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, equipmentID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "equipment",
		"method":       "DeleteEquipment",
		"equipment_id": equipmentID,
	})
	if err := s.repo.Delete(ctx, equipmentID); err != nil {
		log.WithError(err).Warn("Failed to delete equipment")
		return fmt.Errorf("service: could not delete equipment: %w", err)
	}
	log.Info("Equipment deleted successfully")
	return nil
}
