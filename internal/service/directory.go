package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// DirectoryRepository определяет контракт для работы со справочниками
type DirectoryRepository interface {
	CreateEmployee(ctx context.Context, e *models.Employee) error
	GetEmployee(ctx context.Context, employeeID int) (*models.Employee, error)
	ListEmployeesByCompany(ctx context.Context, companyID int) ([]*models.Employee, error)
	ListEmployeesByDepartment(ctx context.Context, companyID int, departmentID string) ([]*models.Employee, error)
	CreateDepartment(ctx context.Context, d *models.Department) error
	GetDepartment(ctx context.Context, departmentID string) (*models.Department, error)
	ListDepartments(ctx context.Context, companyID int) ([]*models.Department, error)
	CreateLocation(ctx context.Context, l *models.Location) error
	GetLocation(ctx context.Context, locationID string) (*models.Location, error)
	ListLocations(ctx context.Context, companyID int) ([]*models.Location, error)
	CreateInjuryType(ctx context.Context, t *models.InjuryType) error
	GetInjuryType(ctx context.Context, injuryTypeID string) (*models.InjuryType, error)
	ListInjuryTypes(ctx context.Context) ([]*models.InjuryType, error)
	ListInjuryTypesByCompany(ctx context.Context, companyID int) ([]*models.InjuryType, error)
	UpdateEmployee(ctx context.Context, e *models.Employee) error
	DeleteEmployee(ctx context.Context, employeeID int) error
	UpdateDepartment(ctx context.Context, d *models.Department) error
	DeleteDepartment(ctx context.Context, departmentID string) error
	UpdateLocation(ctx context.Context, l *models.Location) error
	DeleteLocation(ctx context.Context, locationID string) error
	UpdateInjuryType(ctx context.Context, t *models.InjuryType) error
	DeleteInjuryType(ctx context.Context, injuryTypeID string) error
}

// DirectoryService определяет контракт бизнес-логики справочников
type DirectoryService interface {
	CreateEmployee(ctx context.Context, e *models.Employee) error
	GetEmployee(ctx context.Context, employeeID int) (*models.Employee, error)
	ListEmployees(ctx context.Context, companyID int) ([]*models.Employee, error)
	ListDepartmentEmployees(ctx context.Context, companyID int, departmentID string) ([]*models.Employee, error)
	CreateDepartment(ctx context.Context, d *models.Department) error
	GetDepartment(ctx context.Context, departmentID string) (*models.Department, error)
	ListDepartments(ctx context.Context, companyID int) ([]*models.Department, error)
	CreateLocation(ctx context.Context, l *models.Location) error
	GetLocation(ctx context.Context, locationID string) (*models.Location, error)
	ListLocations(ctx context.Context, companyID int) ([]*models.Location, error)
	CreateInjuryType(ctx context.Context, t *models.InjuryType) error
	GetInjuryType(ctx context.Context, injuryTypeID string) (*models.InjuryType, error)
	ListInjuryTypes(ctx context.Context) ([]*models.InjuryType, error)
	ListCompanyInjuryTypes(ctx context.Context, companyID int) ([]*models.InjuryType, error)
	UpdateEmployee(ctx context.Context, employeeID int, upd models.EmployeeUpdate) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID int) error
	UpdateDepartment(ctx context.Context, departmentID, name string) (*models.Department, error)
	DeleteDepartment(ctx context.Context, departmentID string) error
	UpdateLocation(ctx context.Context, locationID string, upd models.LocationUpdate) (*models.Location, error)
	DeleteLocation(ctx context.Context, locationID string) error
	UpdateInjuryType(ctx context.Context, injuryTypeID, name string) (*models.InjuryType, error)
	DeleteInjuryType(ctx context.Context, injuryTypeID string) error
}

var employeeRoles = map[models.EmployeeRole]struct{}{
	models.RoleHR:            {},
	models.RoleEmployee:      {},
	models.RoleManager:       {},
	models.RoleSafetyOfficer: {},
}

type directoryService struct {
	repo   DirectoryRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewDirectoryService(repo DirectoryRepository, logger *logrus.Logger) DirectoryService {
	return &directoryService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// CreateEmployee создает сотрудника. Email вместе с датой рождения должны быть уникальны.
func (s *directoryService) CreateEmployee(ctx context.Context, e *models.Employee) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "directory",
		"method":     "CreateEmployee",
		"company_id": e.CompanyID,
	})
	log.Info("Attempting to create employee")

	if err := s.normalizeEmployee(e); err != nil {
		return err
	}

	if err := s.repo.CreateEmployee(ctx, e); err != nil {
		log.WithError(err).Error("Failed to create employee in repository")
		return fmt.Errorf("service: could not create employee: %w", err)
	}

	log.WithField("employee_id", e.EmployeeID).Info("Employee created successfully")
	return nil
}

// normalizeEmployee приводит email к нижнему регистру и проверяет роль и дату рождения
func (s *directoryService) normalizeEmployee(e *models.Employee) error {
	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
	switch {
	case e.FirstName == "" || e.LastName == "":
		return fmt.Errorf("service: %w: firstName and lastName are required", models.ErrValidation)
	case e.Email == "":
		return fmt.Errorf("service: %w: email is required", models.ErrValidation)
	}
	if _, ok := employeeRoles[e.Role]; !ok {
		return fmt.Errorf("service: %w: unknown role %q", models.ErrValidation, e.Role)
	}
	if e.DateOfBirth.IsZero() || e.DateOfBirth.After(s.now()) {
		return fmt.Errorf("service: %w: date of birth must be in the past", models.ErrValidation)
	}
	return nil
}

func normalizeLocation(l *models.Location) error {
	l.LocationName = strings.TrimSpace(l.LocationName)
	switch {
	case l.LocationName == "":
		return fmt.Errorf("service: %w: locationName is required", models.ErrValidation)
	case l.Latitude < -90 || l.Latitude > 90:
		return fmt.Errorf("service: %w: latitude must be between -90 and 90", models.ErrValidation)
	case l.Longitude < -180 || l.Longitude > 180:
		return fmt.Errorf("service: %w: longitude must be between -180 and 180", models.ErrValidation)
	}
	return nil
}

func (s *directoryService) GetEmployee(ctx context.Context, employeeID int) (*models.Employee, error) {
	e, err := s.repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get employee: %w", err)
	}
	return e, nil
}

func (s *directoryService) ListEmployees(ctx context.Context, companyID int) ([]*models.Employee, error) {
	employees, err := s.repo.ListEmployeesByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list employees: %w", err)
	}
	return employees, nil
}

func (s *directoryService) ListDepartmentEmployees(ctx context.Context, companyID int, departmentID string) ([]*models.Employee, error) {
	employees, err := s.repo.ListEmployeesByDepartment(ctx, companyID, departmentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list department employees: %w", err)
	}
	return employees, nil
}

func (s *directoryService) CreateDepartment(ctx context.Context, d *models.Department) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "directory",
		"method":     "CreateDepartment",
		"company_id": d.CompanyID,
	})

	d.DepartmentName = strings.TrimSpace(d.DepartmentName)
	if d.DepartmentName == "" {
		return fmt.Errorf("service: %w: departmentName is required", models.ErrValidation)
	}

	if err := s.repo.CreateDepartment(ctx, d); err != nil {
		log.WithError(err).Error("Failed to create department in repository")
		return fmt.Errorf("service: could not create department: %w", err)
	}

	log.WithField("department_id", d.DepartmentID).Info("Department created successfully")
	return nil
}

func (s *directoryService) GetDepartment(ctx context.Context, departmentID string) (*models.Department, error) {
	d, err := s.repo.GetDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get department: %w", err)
	}
	return d, nil
}

func (s *directoryService) ListDepartments(ctx context.Context, companyID int) ([]*models.Department, error) {
	departments, err := s.repo.ListDepartments(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list departments: %w", err)
	}
	return departments, nil
}

func (s *directoryService) CreateLocation(ctx context.Context, l *models.Location) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "directory",
		"method":     "CreateLocation",
		"company_id": l.CompanyID,
	})

	if err := normalizeLocation(l); err != nil {
		return err
	}

	if err := s.repo.CreateLocation(ctx, l); err != nil {
		log.WithError(err).Error("Failed to create location in repository")
		return fmt.Errorf("service: could not create location: %w", err)
	}

	log.WithField("location_id", l.LocationID).Info("Location created successfully")
	return nil
}

func (s *directoryService) GetLocation(ctx context.Context, locationID string) (*models.Location, error) {
	l, err := s.repo.GetLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get location: %w", err)
	}
	return l, nil
}

func (s *directoryService) ListLocations(ctx context.Context, companyID int) ([]*models.Location, error) {
	locations, err := s.repo.ListLocations(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list locations: %w", err)
	}
	return locations, nil
}

func (s *directoryService) CreateInjuryType(ctx context.Context, t *models.InjuryType) error {
	t.InjuryType = strings.TrimSpace(t.InjuryType)
	if t.InjuryType == "" {
		return fmt.Errorf("service: %w: injuryType is required", models.ErrValidation)
	}
	if err := s.repo.CreateInjuryType(ctx, t); err != nil {
		s.logger.WithError(err).Error("Failed to create injury type in repository")
		return fmt.Errorf("service: could not create injury type: %w", err)
	}
	return nil
}

func (s *directoryService) GetInjuryType(ctx context.Context, injuryTypeID string) (*models.InjuryType, error) {
	t, err := s.repo.GetInjuryType(ctx, injuryTypeID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get injury type: %w", err)
	}
	return t, nil
}

func (s *directoryService) ListInjuryTypes(ctx context.Context) ([]*models.InjuryType, error) {
	types, err := s.repo.ListInjuryTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list injury types: %w", err)
	}
	return types, nil
}

// ListCompanyInjuryTypes возвращает типы травм, встречающиеся в отчетах компании
func (s *directoryService) ListCompanyInjuryTypes(ctx context.Context, companyID int) ([]*models.InjuryType, error) {
	types, err := s.repo.ListInjuryTypesByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list company injury types: %w", err)
	}
	return types, nil
}

// UpdateEmployee меняет только переданные поля и повторно проверяет результат
func (s *directoryService) UpdateEmployee(ctx context.Context, employeeID int, upd models.EmployeeUpdate) (*models.Employee, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "directory",
		"method":      "UpdateEmployee",
		"employee_id": employeeID,
	})

	if upd.IsEmpty() {
		return nil, fmt.Errorf("service: %w: no fields to update", models.ErrValidation)
	}
	e, err := s.repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get employee: %w", err)
	}
	upd.Apply(e)
	if err := s.normalizeEmployee(e); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateEmployee(ctx, e); err != nil {
		log.WithError(err).Error("Failed to update employee in repository")
		return nil, fmt.Errorf("service: could not update employee: %w", err)
	}

	log.Info("Employee updated successfully")
	return e, nil
}

func (s *directoryService) DeleteEmployee(ctx context.Context, employeeID int) error {
	if err := s.repo.DeleteEmployee(ctx, employeeID); err != nil {
		s.logger.WithError(err).WithField("employee_id", employeeID).Error("Failed to delete employee")
		return fmt.Errorf("service: could not delete employee: %w", err)
	}
	s.logger.WithField("employee_id", employeeID).Info("Employee deleted")
	return nil
}

func (s *directoryService) UpdateDepartment(ctx context.Context, departmentID, name string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("service: %w: departmentName is required", models.ErrValidation)
	}
	d, err := s.repo.GetDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get department: %w", err)
	}
	d.DepartmentName = name
	if err := s.repo.UpdateDepartment(ctx, d); err != nil {
		s.logger.WithError(err).WithField("department_id", departmentID).Error("Failed to update department")
		return nil, fmt.Errorf("service: could not update department: %w", err)
	}
	return d, nil
}

// DeleteDepartment удаляет отдел без сотрудников
func (s *directoryService) DeleteDepartment(ctx context.Context, departmentID string) error {
	if err := s.repo.DeleteDepartment(ctx, departmentID); err != nil {
		s.logger.WithError(err).WithField("department_id", departmentID).Error("Failed to delete department")
		return fmt.Errorf("service: could not delete department: %w", err)
	}
	s.logger.WithField("department_id", departmentID).Info("Department deleted")
	return nil
}

func (s *directoryService) UpdateLocation(ctx context.Context, locationID string, upd models.LocationUpdate) (*models.Location, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "directory",
		"method":      "UpdateLocation",
		"location_id": locationID,
	})

	if upd.IsEmpty() {
		return nil, fmt.Errorf("service: %w: no fields to update", models.ErrValidation)
	}
	l, err := s.repo.GetLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get location: %w", err)
	}
	upd.Apply(l)
	if err := normalizeLocation(l); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateLocation(ctx, l); err != nil {
		log.WithError(err).Error("Failed to update location in repository")
		return nil, fmt.Errorf("service: could not update location: %w", err)
	}

	log.Info("Location updated successfully")
	return l, nil
}

// DeleteLocation удаляет локацию, на которую не ссылаются отчеты и оборудование
func (s *directoryService) DeleteLocation(ctx context.Context, locationID string) error {
	if err := s.repo.DeleteLocation(ctx, locationID); err != nil {
		s.logger.WithError(err).WithField("location_id", locationID).Error("Failed to delete location")
		return fmt.Errorf("service: could not delete location: %w", err)
	}
	s.logger.WithField("location_id", locationID).Info("Location deleted")
	return nil
}

func (s *directoryService) UpdateInjuryType(ctx context.Context, injuryTypeID, name string) (*models.InjuryType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("service: %w: injuryType is required", models.ErrValidation)
	}
	t := &models.InjuryType{InjuryTypeID: injuryTypeID, InjuryType: name}
	if err := s.repo.UpdateInjuryType(ctx, t); err != nil {
		s.logger.WithError(err).WithField("injury_type_id", injuryTypeID).Error("Failed to update injury type")
		return nil, fmt.Errorf("service: could not update injury type: %w", err)
	}
	return t, nil
}

func (s *directoryService) DeleteInjuryType(ctx context.Context, injuryTypeID string) error {
	if err := s.repo.DeleteInjuryType(ctx, injuryTypeID); err != nil {
		s.logger.WithError(err).WithField("injury_type_id", injuryTypeID).Error("Failed to delete injury type")
		return fmt.Errorf("service: could not delete injury type: %w", err)
	}
	return nil
}
